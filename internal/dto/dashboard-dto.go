package dto

// Формы страницы. Поля приходят как application/x-www-form-urlencoded,
// для JSON те же структуры читаются по json-тегам.

type SelectViewDTO struct {
	View string `form:"view" json:"view" validate:"required,view_selector"`
}

// FilterFormDTO - все селекты панели фильтров. Пустое поле значит "не менялось".
type FilterFormDTO struct {
	TimeRange  string `form:"timeRange" json:"timeRange"`
	Unit       string `form:"unit" json:"unit"`
	Department string `form:"department" json:"department"`
	Machine    string `form:"machine" json:"machine"`
	Shift      string `form:"shift" json:"shift"`
}

type AddNoteDTO struct {
	Metric string `form:"metric" json:"metric" validate:"required,metric_name"`
	Text   string `form:"text" json:"text"`
}

type NoteDraftDTO struct {
	Text string `form:"text" json:"text"`
}

// EventDTO - событие для POST /api/events.
type EventDTO struct {
	Type      string `json:"type" validate:"required,oneof=select_view back toggle_alerts set_filter set_note_draft add_note"`
	View      string `json:"view,omitempty" validate:"required_if=Type select_view"`
	Dimension string `json:"dimension,omitempty" validate:"required_if=Type set_filter"`
	Value     string `json:"value,omitempty" validate:"required_if=Type set_filter"`
	Metric    string `json:"metric,omitempty" validate:"required_if=Type add_note"`
	Text      string `json:"text,omitempty"`
}

type NotesQueryDTO struct {
	Metric string `query:"metric" validate:"required,metric_name"`
}
