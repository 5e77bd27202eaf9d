package events

// StateChangedEvent - событие после успешного применения действия к сессии.
type StateChangedEvent struct {
	SessionID string
	Version   uint64
	EventKind string
	View      string
}

// Name - реализуем интерфейс eventbus.Event
func (e StateChangedEvent) Name() string {
	return "dashboard.state.changed"
}
