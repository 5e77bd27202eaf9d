package views

import (
	"fmt"
	"time"

	"sustainability-dashboard/internal/entities"
	"sustainability-dashboard/internal/repositories"
	"sustainability-dashboard/internal/services"
	"sustainability-dashboard/pkg/utils"
)

// PageModel - всё, что нужно шаблону для отрисовки страницы. Строится из снимка
// состояния и мок-данных и сам ничего не меняет.
type PageModel struct {
	Facility    string
	LastUpdated string
	View        string
	Version     uint64
	Alerts      AlertPanelModel
	Filters     []FilterSelectModel
	Export      []ExportEntryModel
	Overview    *OverviewModel
	Insights    *InsightsModel
}

type AlertPanelModel struct {
	Open       bool
	BadgeCount int
	Items      []AlertItemModel
}

type AlertItemModel struct {
	ID      int
	Type    string
	Icon    string
	Tone    services.Tone
	Message string
	Time    string
}

type FilterSelectModel struct {
	Dimension string
	Options   []FilterOptionModel
}

type FilterOptionModel struct {
	Value    string
	Label    string
	Selected bool
}

type ExportEntryModel struct {
	Format string
	Label  string
	Href   string
}

type OverviewModel struct {
	Tiles   []KPITileModel
	Overall OverallTileModel
}

type KPITileModel struct {
	View         string
	Title        string
	Value        string
	Unit         string
	StatusText   string
	StatusTone   services.Tone
	ChangeText   string
	Trend        services.TrendGlyph
	BarWidth     string
	BarTone      services.Tone
	ProgressText string
	TargetText   string
}

type OverallTileModel struct {
	View        string
	Radar       RadarChart
	AverageText string
}

type InsightsModel struct {
	Title        string
	Metric       string
	IsOverall    bool
	CurrentText  string
	TargetText   string
	Unit         string
	ProgressText string
	ProgressTone services.Tone
	Trend        services.TrendGlyph
	ChangeText   string
	ChangeTone   services.Tone
	TrendChart   *LineChart
	DeptChart    *BarChart
	Radar        *RadarChart
	Breakdown    []BreakdownRowModel
	Notes        []NoteModel
	Draft        string
}

type BreakdownRowModel struct {
	Title        string
	ProgressText string
	BarWidth     string
	BarTone      services.Tone
}

type NoteModel struct {
	ID        string
	Text      string
	Timestamp string
}

// BuildOptions - параметры страницы, не входящие в состояние.
type BuildOptions struct {
	Facility string
	Now      time.Time
}

var exportEntries = []ExportEntryModel{
	{Format: "pdf", Label: "Export as PDF", Href: "/export/pdf"},
	{Format: "csv", Label: "Export as CSV", Href: "/export/csv"},
	{Format: "excel", Label: "Export as Excel", Href: "/export/excel"},
}

// BuildPage собирает модель страницы для текущего экрана.
// Фильтры влияют только на выбранные пункты селектов, но не на цифры.
func BuildPage(state entities.DashboardState, data repositories.DatasetRepositoryInterface, opts BuildOptions) PageModel {
	page := PageModel{
		Facility:    opts.Facility,
		LastUpdated: utils.FormatDisplayTime(opts.Now),
		View:        string(state.View),
		Version:     state.Version,
		Alerts:      buildAlertPanel(state),
		Filters:     buildFilterBar(state.Filters),
		Export:      append([]ExportEntryModel(nil), exportEntries...),
	}

	if state.View.IsInsights() {
		page.Insights = buildInsights(state, data)
	} else {
		page.Overview = buildOverview(data)
	}
	return page
}

func buildAlertPanel(state entities.DashboardState) AlertPanelModel {
	panel := AlertPanelModel{
		Open:       state.ShowAlerts,
		BadgeCount: services.AlertBadgeCount(state.Alerts),
	}
	for _, a := range state.Alerts {
		item := AlertItemModel{ID: a.ID, Type: string(a.Type), Message: a.Message, Time: a.Time}
		switch a.Type {
		case entities.AlertCritical:
			item.Icon, item.Tone = "⚠", services.ToneRed
		case entities.AlertWarning:
			item.Icon, item.Tone = "⚠", services.ToneYellow
		default:
			item.Icon, item.Tone = "✔", services.ToneGreen
		}
		panel.Items = append(panel.Items, item)
	}
	return panel
}

func buildFilterBar(f entities.FilterState) []FilterSelectModel {
	var out []FilterSelectModel
	for _, d := range entities.FilterDimensions() {
		sel := FilterSelectModel{Dimension: string(d)}
		current := f.Get(d)
		for _, o := range d.Options() {
			sel.Options = append(sel.Options, FilterOptionModel{
				Value:    o.Value,
				Label:    o.Label,
				Selected: o.Value == current,
			})
		}
		out = append(out, sel)
	}
	return out
}

func buildKPITile(m entities.Metric, kpi entities.KPIRecord) KPITileModel {
	progress := services.ProgressPercentage(kpi)
	return KPITileModel{
		View:         string(entities.ViewForMetric(m)),
		Title:        m.Title(),
		Value:        utils.FormatNumber(kpi.Current),
		Unit:         kpi.Unit,
		StatusText:   kpi.Status.String(),
		StatusTone:   services.StatusColor(kpi.Status),
		ChangeText:   utils.FormatSignedPercent(kpi.Change),
		Trend:        services.TrendIndicator(kpi.Trend),
		BarWidth:     fmt.Sprintf("%.1f%%", progress.Width),
		BarTone:      barTone(progress),
		ProgressText: progressText(progress),
		TargetText:   fmt.Sprintf("Target: %s %s", utils.FormatNumber(kpi.Target), kpi.Unit),
	}
}

func buildOverview(data repositories.DatasetRepositoryInterface) *OverviewModel {
	ov := &OverviewModel{}
	kpis := data.KPIs()
	for _, m := range entities.AllMetrics() {
		ov.Tiles = append(ov.Tiles, buildKPITile(m, kpis[m]))
	}
	ov.Overall = OverallTileModel{
		View:        string(entities.ViewOverall),
		Radar:       NewRadarChart(data.Overall(), 220),
		AverageText: averageText(data.Overall()),
	}
	return ov
}

func buildInsights(state entities.DashboardState, data repositories.DatasetRepositoryInterface) *InsightsModel {
	title := state.View.Title()
	in := &InsightsModel{
		Title:  title,
		Metric: title,
		Draft:  state.NoteDraft,
	}
	for _, n := range services.ListNotes(state, title) {
		in.Notes = append(in.Notes, NoteModel{ID: n.ID, Text: n.Text, Timestamp: n.Timestamp})
	}

	m, ok := state.View.Metric()
	if !ok {
		// Общая эффективность: своих рядов в данных нет, показываем радар и разбивку по метрикам.
		in.IsOverall = true
		avg, defined := services.AveragePerformance(data.Overall())
		in.CurrentText = averageText(data.Overall())
		in.TargetText = "100%"
		in.ProgressText = "n/a"
		in.ProgressTone = services.ToneGray
		if defined {
			in.ProgressText = fmt.Sprintf("%.0f%%", avg)
			in.ProgressTone = services.ToneGreen
			if avg < 90 {
				in.ProgressTone = services.ToneYellow
			}
		}
		in.Trend = services.TrendIndicator(entities.TrendUnknown)
		radar := NewRadarChart(data.Overall(), 320)
		in.Radar = &radar
		kpis := data.KPIs()
		for _, metric := range entities.AllMetrics() {
			p := services.ProgressPercentage(kpis[metric])
			in.Breakdown = append(in.Breakdown, BreakdownRowModel{
				Title:        metric.Title(),
				ProgressText: progressText(p),
				BarWidth:     fmt.Sprintf("%.1f%%", p.Width),
				BarTone:      barTone(p),
			})
		}
		return in
	}

	kpi := data.KPI(m)
	progress := services.ProgressPercentage(kpi)
	in.CurrentText = utils.FormatNumber(kpi.Current)
	in.TargetText = utils.FormatNumber(kpi.Target)
	in.Unit = kpi.Unit
	in.ProgressText = "n/a"
	if progress.Defined {
		in.ProgressText = fmt.Sprintf("%d%%", progress.Rounded())
	}
	in.ProgressTone = services.StatusColor(kpi.Status)
	in.Trend = services.TrendIndicator(kpi.Trend)
	in.ChangeText = utils.FormatSignedPercent(kpi.Change)
	in.ChangeTone = in.Trend.Tone

	trend := NewLineChart(data.Trend(), m)
	in.TrendChart = &trend
	dept := NewBarChart(data.Departments(), m)
	in.DeptChart = &dept
	return in
}

func barTone(p services.Progress) services.Tone {
	if !p.Defined {
		return services.ToneGray
	}
	if p.Exceeded() {
		return services.ToneRed
	}
	return services.ToneGreen
}

// progressText - необрезанный процент от цели, например "125% of target".
func progressText(p services.Progress) string {
	if !p.Defined {
		return "n/a"
	}
	return fmt.Sprintf("%s%% of target", utils.FormatNumber(float64(p.Rounded())))
}

func averageText(points []entities.RadarPoint) string {
	avg, ok := services.AveragePerformance(points)
	if !ok {
		return "Average Performance: n/a"
	}
	return fmt.Sprintf("Average Performance: %.0f%% of targets", avg)
}
