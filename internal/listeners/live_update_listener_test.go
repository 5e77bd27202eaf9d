package listeners

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"sustainability-dashboard/internal/events"
	"sustainability-dashboard/pkg/eventbus"
	"sustainability-dashboard/pkg/websocket"
)

type recordingNotifier struct {
	mu    sync.Mutex
	calls []websocket.StateChangedPayload
	ids   []string
}

func (r *recordingNotifier) SendToSession(sessionID string, payload interface{}, messageType string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ids = append(r.ids, sessionID)
	r.calls = append(r.calls, payload.(websocket.StateChangedPayload))
	return 1, nil
}

func TestLiveUpdateListenerForwardsStateChanges(t *testing.T) {
	notifier := &recordingNotifier{}
	bus := eventbus.New(zap.NewNop())
	NewLiveUpdateListener(notifier, zap.NewNop()).Register(bus)

	bus.Publish(context.Background(), events.StateChangedEvent{
		SessionID: "sess-1",
		Version:   4,
		EventKind: "select_view",
		View:      "water",
	})
	bus.Wait()

	require.Len(t, notifier.calls, 1)
	assert.Equal(t, "sess-1", notifier.ids[0])
	assert.Equal(t, websocket.StateChangedPayload{Version: 4, Event: "select_view", View: "water"}, notifier.calls[0])
}
