package services

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"sustainability-dashboard/internal/entities"
	"sustainability-dashboard/internal/events"
	"sustainability-dashboard/internal/repositories"
	"sustainability-dashboard/pkg/eventbus"
	"sustainability-dashboard/pkg/metrics"
)

type DashboardServiceInterface interface {
	Session(ctx context.Context, sessionID string) (entities.DashboardState, error)
	Dispatch(ctx context.Context, sessionID string, event Event) (entities.DashboardState, error)
	ListNotes(ctx context.Context, sessionID, metric string) ([]entities.Note, error)
	Dataset() repositories.DatasetRepositoryInterface
	SweepIdle(ctx context.Context, idleTTL time.Duration) int
	Now() time.Time
}

// EventPublisher - шина событий с точки зрения сервиса.
type EventPublisher interface {
	Publish(ctx context.Context, event eventbus.Event)
}

type DashboardService struct {
	sessions repositories.SessionRepositoryInterface
	dataset  repositories.DatasetRepositoryInterface
	bus      EventPublisher
	deps     ReducerDeps
	logger   *zap.Logger
}

func NewDashboardService(
	sessions repositories.SessionRepositoryInterface,
	dataset repositories.DatasetRepositoryInterface,
	bus EventPublisher,
	deps ReducerDeps,
	logger *zap.Logger,
) DashboardServiceInterface {
	return &DashboardService{
		sessions: sessions,
		dataset:  dataset,
		bus:      bus,
		deps:     deps.withDefaults(),
		logger:   logger,
	}
}

func (s *DashboardService) initialState() entities.DashboardState {
	return entities.NewDashboardState(s.dataset.Alerts())
}

// Session возвращает снимок сессии, создавая начальный при первом обращении.
func (s *DashboardService) Session(ctx context.Context, sessionID string) (entities.DashboardState, error) {
	state, created, err := s.sessions.GetOrCreate(ctx, sessionID, s.initialState)
	if err != nil {
		return entities.DashboardState{}, err
	}
	if created {
		s.logger.Info("Создана новая сессия дашборда", zap.String("session", sessionID))
		metrics.SetActiveSessions(s.sessions.Count())
	}
	return state, nil
}

// Dispatch применяет событие к снимку сессии. Отклонённое событие снимок не меняет.
func (s *DashboardService) Dispatch(ctx context.Context, sessionID string, event Event) (entities.DashboardState, error) {
	if _, err := s.Session(ctx, sessionID); err != nil {
		return entities.DashboardState{}, err
	}

	kind := "unknown"
	if event != nil {
		kind = event.Kind()
	}

	next, err := s.sessions.Update(ctx, sessionID, func(current entities.DashboardState) (entities.DashboardState, error) {
		return Reduce(current, event, s.deps)
	})
	if err != nil {
		metrics.ObserveEvent(kind, metrics.OutcomeRejected)
		s.logger.Debug("Событие отклонено",
			zap.String("session", sessionID),
			zap.String("event", kind),
			zap.Error(err),
		)
		return next, err
	}

	metrics.ObserveEvent(kind, metrics.OutcomeApplied)
	s.logger.Debug("Событие применено",
		zap.String("session", sessionID),
		zap.String("event", kind),
		zap.Uint64("version", next.Version),
		zap.String("view", string(next.View)),
	)

	if s.bus != nil {
		s.bus.Publish(ctx, events.StateChangedEvent{
			SessionID: sessionID,
			Version:   next.Version,
			EventKind: kind,
			View:      string(next.View),
		})
	}
	return next, nil
}

func (s *DashboardService) ListNotes(ctx context.Context, sessionID, metric string) ([]entities.Note, error) {
	state, err := s.Session(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return ListNotes(state, metric), nil
}

func (s *DashboardService) Dataset() repositories.DatasetRepositoryInterface {
	return s.dataset
}

// SweepIdle удаляет сессии, простаивавшие дольше idleTTL.
func (s *DashboardService) SweepIdle(ctx context.Context, idleTTL time.Duration) int {
	removed := s.sessions.Sweep(ctx, s.deps.Clock.Now().Add(-idleTTL))
	if removed > 0 {
		s.logger.Info("Удалены простаивающие сессии", zap.Int("removed", removed))
	}
	metrics.SetActiveSessions(s.sessions.Count())
	return removed
}

// Now - "сейчас" для строки "Last updated". Читается при рендере и на состояние не влияет.
func (s *DashboardService) Now() time.Time {
	return s.deps.Clock.Now()
}

// RunSessionJanitor периодически чистит простаивающие сессии до отмены контекста.
func RunSessionJanitor(ctx context.Context, svc DashboardServiceInterface, interval, idleTTL time.Duration, logger *zap.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			if err := ctx.Err(); err != nil && !errors.Is(err, context.Canceled) {
				logger.Warn("Очистка сессий остановлена", zap.Error(err))
			}
			return
		case <-ticker.C:
			svc.SweepIdle(ctx, idleTTL)
		}
	}
}
