package entities

// Note - заметка к странице аналитики. Живёт только в памяти процесса.
type Note struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
	Metric    string `json:"metric"`
}
