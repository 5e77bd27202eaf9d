package repositories

import (
	"context"
	"sync"
	"time"

	"sustainability-dashboard/internal/entities"
	apperrors "sustainability-dashboard/pkg/errors"
	"sustainability-dashboard/pkg/utils"
)

// SessionRepositoryInterface хранит снимки состояния сессий в памяти процесса.
type SessionRepositoryInterface interface {
	Get(ctx context.Context, id string) (entities.DashboardState, error)
	GetOrCreate(ctx context.Context, id string, init func() entities.DashboardState) (entities.DashboardState, bool, error)
	Update(ctx context.Context, id string, fn func(entities.DashboardState) (entities.DashboardState, error)) (entities.DashboardState, error)
	Sweep(ctx context.Context, idleSince time.Time) int
	Count() int
}

type sessionEntry struct {
	state    entities.DashboardState
	lastSeen time.Time
}

type InMemorySessionRepository struct {
	mu       sync.Mutex
	sessions map[string]*sessionEntry
	clock    utils.Clock
}

func NewInMemorySessionRepository(clock utils.Clock) SessionRepositoryInterface {
	if clock == nil {
		clock = utils.SystemClock
	}
	return &InMemorySessionRepository{
		sessions: make(map[string]*sessionEntry),
		clock:    clock,
	}
}

func (r *InMemorySessionRepository) Get(ctx context.Context, id string) (entities.DashboardState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.sessions[id]
	if !ok {
		return entities.DashboardState{}, apperrors.ErrSessionNotFound
	}
	entry.lastSeen = r.clock.Now()
	return entry.state, nil
}

// GetOrCreate возвращает снимок сессии, при необходимости создав его через init.
// Второе значение - true, если сессия создана сейчас.
func (r *InMemorySessionRepository) GetOrCreate(ctx context.Context, id string, init func() entities.DashboardState) (entities.DashboardState, bool, error) {
	if err := ctx.Err(); err != nil {
		return entities.DashboardState{}, false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock.Now()
	if entry, ok := r.sessions[id]; ok {
		entry.lastSeen = now
		return entry.state, false, nil
	}
	state := init()
	r.sessions[id] = &sessionEntry{state: state, lastSeen: now}
	return state, true, nil
}

// Update выполняет чтение-изменение-запись снимка под одной блокировкой.
// Если fn вернула ошибку, сохранённый снимок не меняется.
func (r *InMemorySessionRepository) Update(ctx context.Context, id string, fn func(entities.DashboardState) (entities.DashboardState, error)) (entities.DashboardState, error) {
	if err := ctx.Err(); err != nil {
		return entities.DashboardState{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.sessions[id]
	if !ok {
		return entities.DashboardState{}, apperrors.ErrSessionNotFound
	}
	entry.lastSeen = r.clock.Now()

	next, err := fn(entry.state)
	if err != nil {
		return entry.state, err
	}
	entry.state = next
	return next, nil
}

// Sweep удаляет сессии, к которым не обращались с момента idleSince.
func (r *InMemorySessionRepository) Sweep(ctx context.Context, idleSince time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, entry := range r.sessions {
		if entry.lastSeen.Before(idleSince) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

func (r *InMemorySessionRepository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
