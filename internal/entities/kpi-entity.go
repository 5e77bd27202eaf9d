package entities

import "strings"

type KPIStatus int

const (
	StatusUnknown KPIStatus = iota
	StatusOnTrack
	StatusOverTarget
	StatusBehindSchedule
)

var statusNames = map[KPIStatus]string{
	StatusOnTrack:        "On Track",
	StatusOverTarget:     "Over Target",
	StatusBehindSchedule: "Behind Schedule",
}

func (s KPIStatus) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Unknown"
}

// ParseKPIStatus никогда не возвращает ошибку: всё, что не совпало с названием
// статуса буква в букву, - StatusUnknown.
func ParseKPIStatus(raw string) KPIStatus {
	for status, name := range statusNames {
		if raw == name {
			return status
		}
	}
	return StatusUnknown
}

func (s KPIStatus) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *KPIStatus) UnmarshalText(text []byte) error {
	*s = ParseKPIStatus(string(text))
	return nil
}

type Trend int

const (
	TrendUnknown Trend = iota
	TrendUp
	TrendDown
)

func (t Trend) String() string {
	switch t {
	case TrendUp:
		return "up"
	case TrendDown:
		return "down"
	default:
		return "unknown"
	}
}

func ParseTrend(raw string) Trend {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "up":
		return TrendUp
	case "down":
		return TrendDown
	default:
		return TrendUnknown
	}
}

func (t Trend) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *Trend) UnmarshalText(text []byte) error {
	*t = ParseTrend(string(text))
	return nil
}

// KPIRecord - текущее значение метрики относительно цели. Мок-данные, не меняются.
type KPIRecord struct {
	Current float64   `json:"current" yaml:"current"`
	Target  float64   `json:"target" yaml:"target"`
	Unit    string    `json:"unit" yaml:"unit"`
	Status  KPIStatus `json:"status" yaml:"status"`
	Trend   Trend     `json:"trend" yaml:"trend"`
	Change  float64   `json:"change" yaml:"change"`
}
