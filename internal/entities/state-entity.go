package entities

// DashboardState - неизменяемый снимок состояния одной сессии.
// Каждое событие порождает новый снимок, старый не трогается.
type DashboardState struct {
	View       ViewSelector `json:"view"`
	Filters    FilterState  `json:"filters"`
	ShowAlerts bool         `json:"showAlerts"`
	Alerts     []Alert      `json:"alerts"`
	Notes      []Note       `json:"notes"`
	NoteDraft  string       `json:"noteDraft"`
	// Version растёт только при изменении состояния.
	Version uint64 `json:"version"`
}

// NewDashboardState - начальный снимок: обзор, фильтры по умолчанию, панель уведомлений скрыта.
func NewDashboardState(alerts []Alert) DashboardState {
	return DashboardState{
		View:    ViewOverview,
		Filters: DefaultFilters(),
		Alerts:  append([]Alert(nil), alerts...),
		Notes:   []Note{},
	}
}

func (s DashboardState) HasNote(id string) bool {
	for _, n := range s.Notes {
		if n.ID == id {
			return true
		}
	}
	return false
}
