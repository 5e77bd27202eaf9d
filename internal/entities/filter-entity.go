package entities

// FilterDimension - одно из пяти независимых измерений панели фильтров.
type FilterDimension string

const (
	FilterTimeRange  FilterDimension = "timeRange"
	FilterUnit       FilterDimension = "unit"
	FilterDepartment FilterDimension = "department"
	FilterMachine    FilterDimension = "machine"
	FilterShift      FilterDimension = "shift"
)

// FilterOption - пара "значение / подпись" для выпадающего списка.
type FilterOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Порядок измерений совпадает с порядком селектов на панели.
var filterDimensions = []FilterDimension{
	FilterTimeRange, FilterUnit, FilterDepartment, FilterMachine, FilterShift,
}

var filterOptions = map[FilterDimension][]FilterOption{
	FilterTimeRange: {
		{"today", "Today"},
		{"week", "This Week"},
		{"month", "This Month"},
		{"quarter", "This Quarter"},
		{"year", "This Year"},
	},
	FilterUnit: {
		{"all", "All Units"},
		{"unit-a", "Unit A"},
		{"unit-b", "Unit B"},
		{"unit-c", "Unit C"},
	},
	FilterDepartment: {
		{"all", "All Departments"},
		{"spinning", "Spinning"},
		{"weaving", "Weaving"},
		{"dyeing", "Dyeing"},
		{"finishing", "Finishing"},
	},
	FilterMachine: {
		{"all", "All Machines"},
		{"ring-frame", "Ring Frame"},
		{"air-jet-loom", "Air-Jet Loom"},
		{"jet-dyer", "Jet Dyer"},
		{"stenter", "Stenter"},
	},
	FilterShift: {
		{"all", "All Shifts"},
		{"morning", "Morning"},
		{"afternoon", "Afternoon"},
		{"night", "Night"},
	},
}

func FilterDimensions() []FilterDimension {
	return append([]FilterDimension(nil), filterDimensions...)
}

func (d FilterDimension) Valid() bool {
	_, ok := filterOptions[d]
	return ok
}

// Options возвращает копию списка допустимых значений измерения.
func (d FilterDimension) Options() []FilterOption {
	return append([]FilterOption(nil), filterOptions[d]...)
}

func (d FilterDimension) Allows(value string) bool {
	for _, o := range filterOptions[d] {
		if o.Value == value {
			return true
		}
	}
	return false
}

// FilterState - выбранные значения фильтров. Ровно одно значение на измерение.
// Фильтры пока только отображаются и не влияют на показатели.
type FilterState struct {
	TimeRange  string `json:"timeRange"`
	Unit       string `json:"unit"`
	Department string `json:"department"`
	Machine    string `json:"machine"`
	Shift      string `json:"shift"`
}

func DefaultFilters() FilterState {
	return FilterState{
		TimeRange:  "today",
		Unit:       "all",
		Department: "all",
		Machine:    "all",
		Shift:      "all",
	}
}

func (f FilterState) Get(d FilterDimension) string {
	switch d {
	case FilterTimeRange:
		return f.TimeRange
	case FilterUnit:
		return f.Unit
	case FilterDepartment:
		return f.Department
	case FilterMachine:
		return f.Machine
	case FilterShift:
		return f.Shift
	}
	return ""
}

// With возвращает новую копию фильтров с заменённым значением одного измерения.
// Проверку значения выполняет вызывающий.
func (f FilterState) With(d FilterDimension, value string) FilterState {
	next := f
	switch d {
	case FilterTimeRange:
		next.TimeRange = value
	case FilterUnit:
		next.Unit = value
	case FilterDepartment:
		next.Department = value
	case FilterMachine:
		next.Machine = value
	case FilterShift:
		next.Shift = value
	}
	return next
}
