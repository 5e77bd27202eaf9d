package seeders

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sustainability-dashboard/internal/entities"
)

func TestLoadDataset(t *testing.T) {
	ds, err := LoadDataset()
	require.NoError(t, err)

	energy := ds.KPI(entities.MetricEnergy)
	assert.Equal(t, 2850.0, energy.Current)
	assert.Equal(t, 3000.0, energy.Target)
	assert.Equal(t, "kWh", energy.Unit)
	assert.Equal(t, entities.StatusOnTrack, energy.Status)
	assert.Equal(t, entities.TrendDown, energy.Trend)

	water := ds.KPI(entities.MetricWater)
	assert.Equal(t, entities.StatusOverTarget, water.Status)
	assert.Equal(t, entities.TrendUp, water.Trend)
	assert.Equal(t, 25.0, water.Change)

	assert.Len(t, ds.Overall, 4)
	assert.Len(t, ds.Trend, 5)
	assert.Equal(t, "05/11", ds.Trend[4].Date)
	assert.Equal(t, 185.0, ds.Trend[4].Values[entities.MetricEmissions])

	require.Len(t, ds.Departments, 4)
	assert.Equal(t, "Dyeing", ds.Departments[2].Department)
	assert.Equal(t, 3800.0, ds.Departments[2].Values[entities.MetricWater])

	require.Len(t, ds.Alerts, 3)
	assert.Equal(t, entities.AlertCritical, ds.Alerts[0].Type)
	assert.Equal(t, entities.AlertInfo, ds.Alerts[2].Type)
}

func TestParseDataset_UnknownStatusAndTrend(t *testing.T) {
	raw := []byte(`
kpis:
  energy: {current: 1, target: 2, unit: kWh, status: Paused, trend: sideways, change: 0}
  water: {current: 1, target: 2, unit: L, status: On Track, trend: up, change: 0}
  waste: {current: 1, target: 2, unit: kg, status: Behind Schedule, trend: down, change: 0}
  emissions: {current: 1, target: 0, unit: kg, status: "on track", change: 0}
`)
	ds, err := ParseDataset(raw)
	require.NoError(t, err)

	assert.Equal(t, entities.StatusUnknown, ds.KPI(entities.MetricEnergy).Status)
	assert.Equal(t, entities.TrendUnknown, ds.KPI(entities.MetricEnergy).Trend)
	assert.Equal(t, entities.StatusBehindSchedule, ds.KPI(entities.MetricWaste).Status)
	assert.Equal(t, entities.TrendUnknown, ds.KPI(entities.MetricEmissions).Trend)
	assert.Equal(t, entities.StatusUnknown, ds.KPI(entities.MetricEmissions).Status)
}

func TestParseDataset_Errors(t *testing.T) {
	cases := map[string]string{
		"missing metric": `
kpis:
  energy: {current: 1, target: 2}
`,
		"unknown metric": `
kpis:
  energy: {current: 1, target: 2}
  water: {current: 1, target: 2}
  waste: {current: 1, target: 2}
  emissions: {current: 1, target: 2}
  noise: {current: 1, target: 2}
`,
		"duplicate alert": `
kpis:
  energy: {current: 1, target: 2}
  water: {current: 1, target: 2}
  waste: {current: 1, target: 2}
  emissions: {current: 1, target: 2}
alerts:
  - {id: 1, type: info, message: a, time: now}
  - {id: 1, type: info, message: b, time: now}
`,
		"bad alert type": `
kpis:
  energy: {current: 1, target: 2}
  water: {current: 1, target: 2}
  waste: {current: 1, target: 2}
  emissions: {current: 1, target: 2}
alerts:
  - {id: 1, type: fatal, message: a, time: now}
`,
		"broken yaml": "kpis: [",
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseDataset([]byte(raw))
			assert.Error(t, err)
		})
	}
}

func TestLoadDatasetFile(t *testing.T) {
	embedded, err := LoadDatasetFile("")
	require.NoError(t, err)
	assert.Equal(t, 12500.0, embedded.KPI(entities.MetricWater).Current)

	path := filepath.Join(t.TempDir(), "dataset.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
kpis:
  energy: {current: 10, target: 20, unit: kWh, status: On Track, trend: down}
  water: {current: 1, target: 2, unit: L}
  waste: {current: 1, target: 2, unit: kg}
  emissions: {current: 1, target: 2, unit: kg CO2}
`), 0o600))

	ds, err := LoadDatasetFile(path)
	require.NoError(t, err)
	assert.Equal(t, 10.0, ds.KPI(entities.MetricEnergy).Current)
	assert.Empty(t, ds.Alerts)

	_, err = LoadDatasetFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
