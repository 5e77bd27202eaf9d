package repositories

import (
	"sustainability-dashboard/internal/entities"
)

// DatasetRepositoryInterface - доступ только на чтение к встроенным мок-данным.
// Все срезы возвращаются копиями.
type DatasetRepositoryInterface interface {
	KPI(m entities.Metric) entities.KPIRecord
	KPIs() [entities.MetricCount]entities.KPIRecord
	Overall() []entities.RadarPoint
	Trend() []entities.TrendPoint
	Departments() []entities.DepartmentStat
	Alerts() []entities.Alert
}

type DatasetRepository struct {
	ds *entities.Dataset
}

func NewDatasetRepository(ds *entities.Dataset) DatasetRepositoryInterface {
	return &DatasetRepository{ds: ds}
}

func (r *DatasetRepository) KPI(m entities.Metric) entities.KPIRecord {
	if !m.Valid() {
		return entities.KPIRecord{}
	}
	return r.ds.KPI(m)
}

func (r *DatasetRepository) KPIs() [entities.MetricCount]entities.KPIRecord {
	return r.ds.KPIs
}

func (r *DatasetRepository) Overall() []entities.RadarPoint {
	return append([]entities.RadarPoint(nil), r.ds.Overall...)
}

func (r *DatasetRepository) Trend() []entities.TrendPoint {
	return append([]entities.TrendPoint(nil), r.ds.Trend...)
}

func (r *DatasetRepository) Departments() []entities.DepartmentStat {
	return append([]entities.DepartmentStat(nil), r.ds.Departments...)
}

func (r *DatasetRepository) Alerts() []entities.Alert {
	return append([]entities.Alert(nil), r.ds.Alerts...)
}
