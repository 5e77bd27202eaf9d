package entities

type AlertType string

const (
	AlertCritical AlertType = "critical"
	AlertWarning  AlertType = "warning"
	AlertInfo     AlertType = "info"
)

func (t AlertType) Valid() bool {
	switch t {
	case AlertCritical, AlertWarning, AlertInfo:
		return true
	}
	return false
}

// Alert - уведомление из начального набора. Жизненного цикла нет:
// ни подтверждения, ни удаления.
type Alert struct {
	ID      int       `json:"id" yaml:"id"`
	Type    AlertType `json:"type" yaml:"type"`
	Message string    `json:"message" yaml:"message"`
	Time    string    `json:"time" yaml:"time"`
}
