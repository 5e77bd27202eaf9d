package services

import (
	"math"

	"sustainability-dashboard/internal/entities"
)

// Tone - цветовой тон индикатора. Перевод в CSS-классы делает слой представления.
type Tone string

const (
	ToneGreen  Tone = "green"
	ToneRed    Tone = "red"
	ToneYellow Tone = "yellow"
	ToneGray   Tone = "gray"
)

// StatusColor определена для любого значения статуса; всё неизвестное - серый.
func StatusColor(status entities.KPIStatus) Tone {
	switch status {
	case entities.StatusOnTrack:
		return ToneGreen
	case entities.StatusOverTarget:
		return ToneRed
	case entities.StatusBehindSchedule:
		return ToneYellow
	default:
		return ToneGray
	}
}

// TrendGlyph - значок тренда. Рост потребления считается ухудшением.
type TrendGlyph struct {
	Symbol string `json:"symbol"`
	Label  string `json:"label"`
	Tone   Tone   `json:"tone"`
}

var (
	glyphWorsening = TrendGlyph{Symbol: "▲", Label: "worsening", Tone: ToneRed}
	glyphImproving = TrendGlyph{Symbol: "▼", Label: "improving", Tone: ToneGreen}
	glyphSteady    = TrendGlyph{Symbol: "●", Label: "steady", Tone: ToneGray}
)

func TrendIndicator(trend entities.Trend) TrendGlyph {
	switch trend {
	case entities.TrendUp:
		return glyphWorsening
	case entities.TrendDown:
		return glyphImproving
	default:
		return glyphSteady
	}
}

// Progress - выполнение цели. Raw показывается текстом, Width - ширина полосы.
// При нулевой цели Defined=false, а Raw и Width равны нулю.
type Progress struct {
	Raw     float64 `json:"raw"`
	Width   float64 `json:"width"`
	Defined bool    `json:"defined"`
}

func ProgressPercentage(record entities.KPIRecord) Progress {
	if record.Target == 0 {
		return Progress{}
	}
	raw := record.Current / record.Target * 100
	if math.IsNaN(raw) || math.IsInf(raw, 0) {
		return Progress{}
	}
	return Progress{
		Raw:     raw,
		Width:   math.Max(0, math.Min(raw, 100)),
		Defined: true,
	}
}

// Exceeded - полоса прогресса краснеет, когда значение вышло за цель.
func (p Progress) Exceeded() bool {
	return p.Defined && p.Raw > 100
}

// Rounded - процент для карточки статуса на странице аналитики.
func (p Progress) Rounded() int {
	return int(math.Round(p.Raw))
}

// AveragePerformance - средний процент выполнения целей по точкам радара.
// Точки с нулевой целью пропускаются.
func AveragePerformance(points []entities.RadarPoint) (float64, bool) {
	var sum float64
	var n int
	for _, p := range points {
		if p.Target == 0 {
			continue
		}
		sum += p.Current / p.Target * 100
		n++
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// AlertBadgeCount - число критических и предупреждающих уведомлений.
// Информационные в счётчик не входят.
func AlertBadgeCount(alerts []entities.Alert) int {
	count := 0
	for _, a := range alerts {
		if a.Type == entities.AlertCritical || a.Type == entities.AlertWarning {
			count++
		}
	}
	return count
}
