package entities

// RadarPoint - точка радара общей эффективности, в процентах от цели.
type RadarPoint struct {
	Metric  string  `json:"metric" yaml:"metric"`
	Current float64 `json:"current" yaml:"current"`
	Target  float64 `json:"target" yaml:"target"`
}

// TrendPoint - значение всех метрик на дату.
type TrendPoint struct {
	Date   string               `json:"date"`
	Values [MetricCount]float64 `json:"values"`
}

// DepartmentStat - вклад цеха в каждую метрику.
type DepartmentStat struct {
	Department string               `json:"department"`
	Values     [MetricCount]float64 `json:"values"`
}

// Dataset - встроенные мок-данные дашборда. Только для чтения.
type Dataset struct {
	KPIs        [MetricCount]KPIRecord `json:"kpis"`
	Overall     []RadarPoint           `json:"overall"`
	Trend       []TrendPoint           `json:"trend"`
	Departments []DepartmentStat       `json:"departments"`
	Alerts      []Alert                `json:"alerts"`
}

func (d *Dataset) KPI(m Metric) KPIRecord {
	return d.KPIs[m]
}
