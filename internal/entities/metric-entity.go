package entities

// Metric - одна из отслеживаемых метрик устойчивого производства.
// Значения используются как индекс в таблицах Dataset, поэтому порядок важен.
type Metric int

const (
	MetricEnergy Metric = iota
	MetricWater
	MetricWaste
	MetricEmissions

	MetricCount
)

var metricKeys = [MetricCount]string{"energy", "water", "waste", "emissions"}

// Заголовки страниц аналитики, по ним же привязываются заметки.
var metricTitles = [MetricCount]string{
	"Energy Consumption",
	"Water Usage",
	"Waste Generated",
	"CO2 Emissions",
}

// Короткие подписи для осей радара.
var metricLabels = [MetricCount]string{"Energy", "Water", "Waste", "Emissions"}

// OverallTitle - заголовок страницы общей эффективности.
const OverallTitle = "Overall Performance"

func AllMetrics() []Metric {
	return []Metric{MetricEnergy, MetricWater, MetricWaste, MetricEmissions}
}

func (m Metric) Valid() bool { return m >= 0 && m < MetricCount }

func (m Metric) Key() string {
	if !m.Valid() {
		return ""
	}
	return metricKeys[m]
}

func (m Metric) Title() string {
	if !m.Valid() {
		return ""
	}
	return metricTitles[m]
}

func (m Metric) Label() string {
	if !m.Valid() {
		return ""
	}
	return metricLabels[m]
}

// ParseMetricKey ищет метрику по ключу ("energy", "water", ...).
func ParseMetricKey(key string) (Metric, bool) {
	for i, k := range metricKeys {
		if k == key {
			return Metric(i), true
		}
	}
	return 0, false
}

// IsNoteSubject сообщает, можно ли привязать заметку к странице с таким заголовком.
func IsNoteSubject(title string) bool {
	if title == OverallTitle {
		return true
	}
	for _, t := range metricTitles {
		if t == title {
			return true
		}
	}
	return false
}

// NoteSubjects возвращает заголовки всех страниц аналитики.
func NoteSubjects() []string {
	out := make([]string, 0, MetricCount+1)
	out = append(out, metricTitles[:]...)
	return append(out, OverallTitle)
}
