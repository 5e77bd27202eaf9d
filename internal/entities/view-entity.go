package entities

// ViewSelector - активный экран дашборда.
type ViewSelector string

const (
	ViewOverview  ViewSelector = "overview"
	ViewEnergy    ViewSelector = "energy"
	ViewWater     ViewSelector = "water"
	ViewWaste     ViewSelector = "waste"
	ViewEmissions ViewSelector = "emissions"
	ViewOverall   ViewSelector = "overall"
)

var viewMetrics = map[ViewSelector]Metric{
	ViewEnergy:    MetricEnergy,
	ViewWater:     MetricWater,
	ViewWaste:     MetricWaste,
	ViewEmissions: MetricEmissions,
}

func AllViews() []ViewSelector {
	return []ViewSelector{ViewOverview, ViewEnergy, ViewWater, ViewWaste, ViewEmissions, ViewOverall}
}

func (v ViewSelector) Valid() bool {
	switch v {
	case ViewOverview, ViewEnergy, ViewWater, ViewWaste, ViewEmissions, ViewOverall:
		return true
	}
	return false
}

// IsInsights - true для всех экранов, кроме обзора.
func (v ViewSelector) IsInsights() bool {
	return v.Valid() && v != ViewOverview
}

// Metric возвращает метрику страницы аналитики; для обзора и общей эффективности ok=false.
func (v ViewSelector) Metric() (Metric, bool) {
	m, ok := viewMetrics[v]
	return m, ok
}

// Title - заголовок страницы аналитики, он же ключ для заметок.
func (v ViewSelector) Title() string {
	if m, ok := v.Metric(); ok {
		return m.Title()
	}
	if v == ViewOverall {
		return OverallTitle
	}
	return ""
}

func ViewForMetric(m Metric) ViewSelector {
	for v, vm := range viewMetrics {
		if vm == m {
			return v
		}
	}
	return ViewOverview
}
