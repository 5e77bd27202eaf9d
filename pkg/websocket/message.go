package websocket

import "time"

// Envelope - "конверт" сообщения. По полю Type страница решает, что делать.
type Envelope struct {
	Type      string      `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

// StateChangedPayload - уведомление о новом снимке состояния сессии.
type StateChangedPayload struct {
	Version uint64 `json:"version"`
	Event   string `json:"event"`
	View    string `json:"view"`
}

const MessageStateChanged = "state.changed"
