package dto

type TrendGlyphDTO struct {
	Symbol string `json:"symbol"`
	Label  string `json:"label"`
	Tone   string `json:"tone"`
}

type ProgressDTO struct {
	Raw     float64 `json:"raw"`
	Width   float64 `json:"width"`
	Defined bool    `json:"defined"`
	Text    string  `json:"text"`
}

// KPIDTO - карточка метрики вместе с производными показателями.
type KPIDTO struct {
	Metric      string        `json:"metric"`
	Title       string        `json:"title"`
	Current     float64       `json:"current"`
	Target      float64       `json:"target"`
	Unit        string        `json:"unit"`
	Status      string        `json:"status"`
	StatusColor string        `json:"status_color"`
	Trend       TrendGlyphDTO `json:"trend"`
	Change      float64       `json:"change"`
	Progress    ProgressDTO   `json:"progress"`
}

type KPIListDTO struct {
	KPIs               []KPIDTO `json:"kpis"`
	AveragePerformance *float64 `json:"average_performance"`
}

type AlertDTO struct {
	ID      int    `json:"id"`
	Type    string `json:"type"`
	Message string `json:"message"`
	Time    string `json:"time"`
}

type AlertListDTO struct {
	Alerts     []AlertDTO `json:"alerts"`
	BadgeCount int        `json:"badge_count"`
}
