package listeners

import (
	"context"

	"go.uber.org/zap"

	"sustainability-dashboard/internal/events"
	"sustainability-dashboard/pkg/eventbus"
	"sustainability-dashboard/pkg/websocket"
)

// SessionNotifier - всё, что нужно слушателю от хаба веб-сокетов.
type SessionNotifier interface {
	SendToSession(sessionID string, payload interface{}, messageType string) (int, error)
}

// LiveUpdateListener пересылает изменения состояния во все вкладки той же сессии,
// чтобы они перерисовались.
type LiveUpdateListener struct {
	notifier SessionNotifier
	logger   *zap.Logger
}

func NewLiveUpdateListener(notifier SessionNotifier, logger *zap.Logger) *LiveUpdateListener {
	return &LiveUpdateListener{notifier: notifier, logger: logger}
}

func (l *LiveUpdateListener) Register(bus *eventbus.Bus) {
	bus.Subscribe(events.StateChangedEvent{}.Name(), l.Handle)
}

func (l *LiveUpdateListener) Handle(ctx context.Context, e eventbus.Event) error {
	changed, ok := e.(events.StateChangedEvent)
	if !ok {
		return nil
	}

	delivered, err := l.notifier.SendToSession(changed.SessionID, websocket.StateChangedPayload{
		Version: changed.Version,
		Event:   changed.EventKind,
		View:    changed.View,
	}, websocket.MessageStateChanged)
	if err != nil {
		return err
	}

	l.logger.Debug("Изменение состояния отправлено во вкладки",
		zap.String("session", changed.SessionID),
		zap.Uint64("version", changed.Version),
		zap.Int("delivered", delivered),
	)
	return nil
}
