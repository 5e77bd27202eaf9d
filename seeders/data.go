package seeders

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"sustainability-dashboard/internal/entities"
)

//go:embed dataset.yaml
var embeddedDataset []byte

// metricValues - строка графика в том виде, как она лежит в YAML.
type metricValues struct {
	Energy    float64 `yaml:"energy"`
	Water     float64 `yaml:"water"`
	Waste     float64 `yaml:"waste"`
	Emissions float64 `yaml:"emissions"`
}

func (v metricValues) toArray() [entities.MetricCount]float64 {
	var out [entities.MetricCount]float64
	out[entities.MetricEnergy] = v.Energy
	out[entities.MetricWater] = v.Water
	out[entities.MetricWaste] = v.Waste
	out[entities.MetricEmissions] = v.Emissions
	return out
}

type rawDataset struct {
	KPIs    map[string]entities.KPIRecord `yaml:"kpis"`
	Overall []entities.RadarPoint         `yaml:"overall"`
	Trend   []struct {
		Date         string `yaml:"date"`
		metricValues `yaml:",inline"`
	} `yaml:"trend"`
	Departments []struct {
		Dept         string `yaml:"dept"`
		metricValues `yaml:",inline"`
	} `yaml:"departments"`
	Alerts []entities.Alert `yaml:"alerts"`
}

// LoadDataset разбирает встроенный набор мок-данных.
func LoadDataset() (*entities.Dataset, error) {
	return ParseDataset(embeddedDataset)
}

// LoadDatasetFile читает набор данных с диска. Пустой путь - встроенный набор.
func LoadDatasetFile(path string) (*entities.Dataset, error) {
	if path == "" {
		return LoadDataset()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать %s: %w", path, err)
	}
	return ParseDataset(raw)
}

// ParseDataset разбирает и проверяет набор данных.
// Нераспознанные статусы и тренды не считаются ошибкой: они становятся Unknown.
func ParseDataset(raw []byte) (*entities.Dataset, error) {
	var in rawDataset
	if err := yaml.Unmarshal(raw, &in); err != nil {
		return nil, fmt.Errorf("не удалось разобрать набор данных: %w", err)
	}

	ds := &entities.Dataset{
		Overall: in.Overall,
	}

	for _, m := range entities.AllMetrics() {
		kpi, ok := in.KPIs[m.Key()]
		if !ok {
			return nil, fmt.Errorf("в наборе данных нет KPI для метрики %q", m.Key())
		}
		ds.KPIs[m] = kpi
	}
	for key := range in.KPIs {
		if _, ok := entities.ParseMetricKey(key); !ok {
			return nil, fmt.Errorf("неизвестная метрика %q в разделе kpis", key)
		}
	}

	for _, row := range in.Trend {
		ds.Trend = append(ds.Trend, entities.TrendPoint{Date: row.Date, Values: row.toArray()})
	}
	for _, row := range in.Departments {
		ds.Departments = append(ds.Departments, entities.DepartmentStat{Department: row.Dept, Values: row.toArray()})
	}

	seen := make(map[int]bool, len(in.Alerts))
	for _, a := range in.Alerts {
		if seen[a.ID] {
			return nil, fmt.Errorf("повторяющийся id уведомления: %d", a.ID)
		}
		if !a.Type.Valid() {
			return nil, fmt.Errorf("уведомление %d: неизвестный тип %q", a.ID, a.Type)
		}
		seen[a.ID] = true
	}
	ds.Alerts = in.Alerts

	return ds, nil
}
