package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sustainability-dashboard/internal/entities"
	apperrors "sustainability-dashboard/pkg/errors"
	"sustainability-dashboard/pkg/utils"
)

func TestSessionRepository_GetOrCreate(t *testing.T) {
	repo := NewInMemorySessionRepository(nil)
	ctx := context.Background()
	calls := 0
	init := func() entities.DashboardState {
		calls++
		return entities.NewDashboardState(nil)
	}

	_, created, err := repo.GetOrCreate(ctx, "x", init)
	require.NoError(t, err)
	assert.True(t, created)

	_, created, err = repo.GetOrCreate(ctx, "x", init)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, repo.Count())
}

func TestSessionRepository_UpdateKeepsSnapshotOnError(t *testing.T) {
	repo := NewInMemorySessionRepository(nil)
	ctx := context.Background()
	_, _, err := repo.GetOrCreate(ctx, "x", func() entities.DashboardState { return entities.NewDashboardState(nil) })
	require.NoError(t, err)

	boom := errors.New("boom")
	_, err = repo.Update(ctx, "x", func(s entities.DashboardState) (entities.DashboardState, error) {
		s.View = entities.ViewWater
		return s, boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := repo.Get(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, entities.ViewOverview, got.View)

	_, err = repo.Update(ctx, "missing", func(s entities.DashboardState) (entities.DashboardState, error) { return s, nil })
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
}

func TestSessionRepository_CancelledContext(t *testing.T) {
	repo := NewInMemorySessionRepository(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := repo.GetOrCreate(ctx, "x", func() entities.DashboardState { return entities.NewDashboardState(nil) })
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, repo.Count())
}

func TestSessionRepository_Sweep(t *testing.T) {
	now := time.Date(2024, 11, 5, 12, 0, 0, 0, time.UTC)
	repo := NewInMemorySessionRepository(utils.ClockFunc(func() time.Time { return now }))
	ctx := context.Background()
	init := func() entities.DashboardState { return entities.NewDashboardState(nil) }

	_, _, _ = repo.GetOrCreate(ctx, "a", init)
	now = now.Add(time.Hour)
	_, _, _ = repo.GetOrCreate(ctx, "b", init)

	removed := repo.Sweep(ctx, now.Add(-30*time.Minute))
	assert.Equal(t, 1, removed)

	_, err := repo.Get(ctx, "a")
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
	_, err = repo.Get(ctx, "b")
	assert.NoError(t, err)
}
