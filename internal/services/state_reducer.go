package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"sustainability-dashboard/internal/entities"
	apperrors "sustainability-dashboard/pkg/errors"
	"sustainability-dashboard/pkg/utils"
)

// Event - действие пользователя, которое переводит снимок состояния в следующий.
type Event interface {
	Kind() string
}

// SelectViewEvent - клик по плитке KPI или по плитке общей эффективности.
type SelectViewEvent struct {
	View entities.ViewSelector
}

// BackEvent - "← Back to Overview" на странице аналитики.
type BackEvent struct{}

type ToggleAlertsEvent struct{}

type SetFilterEvent struct {
	Dimension entities.FilterDimension
	Value     string
}

// SetNoteDraftEvent - ввод в поле заметки.
type SetNoteDraftEvent struct {
	Text string
}

type AddNoteEvent struct {
	Metric string
	Text   string
}

func (SelectViewEvent) Kind() string   { return "select_view" }
func (BackEvent) Kind() string         { return "back" }
func (ToggleAlertsEvent) Kind() string { return "toggle_alerts" }
func (SetFilterEvent) Kind() string    { return "set_filter" }
func (SetNoteDraftEvent) Kind() string { return "set_note_draft" }
func (AddNoteEvent) Kind() string      { return "add_note" }

// NoteIDGenerator выдаёт id заметки по названию метрики и времени создания.
type NoteIDGenerator func(metric string, at time.Time) string

// DefaultNoteID - название метрики, миллисекунды и случайный суффикс.
// Суффикс нужен, чтобы две заметки в один тик часов не получили одинаковый id.
func DefaultNoteID(metric string, at time.Time) string {
	return fmt.Sprintf("%s_%d_%s", metric, at.UnixMilli(), uuid.NewString()[:8])
}

// ReducerDeps - внешние зависимости редьюсера: часы и генератор id.
type ReducerDeps struct {
	Clock     utils.Clock
	NewNoteID NoteIDGenerator
}

func (d ReducerDeps) withDefaults() ReducerDeps {
	if d.Clock == nil {
		d.Clock = utils.SystemClock
	}
	if d.NewNoteID == nil {
		d.NewNoteID = DefaultNoteID
	}
	return d
}

// Reduce применяет событие к снимку и возвращает новый снимок.
// При ошибке возвращается исходный снимок без изменений.
func Reduce(state entities.DashboardState, event Event, deps ReducerDeps) (entities.DashboardState, error) {
	deps = deps.withDefaults()

	next := state
	switch e := event.(type) {
	case SelectViewEvent:
		if !e.View.Valid() {
			return state, fmt.Errorf("экран %q: %w", e.View, apperrors.ErrUnknownView)
		}
		// Переход возможен только с обзора на одну из страниц аналитики.
		if state.View != entities.ViewOverview || !e.View.IsInsights() {
			return state, fmt.Errorf("%s -> %s: %w", state.View, e.View, apperrors.ErrInvalidTransition)
		}
		next.View = e.View

	case BackEvent:
		if !state.View.IsInsights() {
			return state, fmt.Errorf("%s -> back: %w", state.View, apperrors.ErrInvalidTransition)
		}
		next.View = entities.ViewOverview

	case ToggleAlertsEvent:
		next.ShowAlerts = !state.ShowAlerts

	case SetFilterEvent:
		if !e.Dimension.Valid() {
			return state, fmt.Errorf("измерение %q: %w", e.Dimension, apperrors.ErrUnknownFilterDimension)
		}
		if !e.Dimension.Allows(e.Value) {
			return state, fmt.Errorf("%s=%q: %w", e.Dimension, e.Value, apperrors.ErrUnknownFilterValue)
		}
		next.Filters = state.Filters.With(e.Dimension, e.Value)

	case SetNoteDraftEvent:
		next.NoteDraft = e.Text

	case AddNoteEvent:
		if !entities.IsNoteSubject(e.Metric) {
			return state, fmt.Errorf("метрика %q: %w", e.Metric, apperrors.ErrUnknownMetric)
		}
		if strings.TrimSpace(e.Text) == "" {
			return state, apperrors.ErrEmptyNote
		}
		now := deps.Clock.Now()
		id := deps.NewNoteID(e.Metric, now)
		if state.HasNote(id) {
			return state, fmt.Errorf("id %q: %w", id, apperrors.ErrNoteIDConflict)
		}
		notes := make([]entities.Note, 0, len(state.Notes)+1)
		notes = append(notes, state.Notes...)
		next.Notes = append(notes, entities.Note{
			ID:        id,
			Text:      e.Text,
			Timestamp: utils.FormatDisplayTimestamp(now),
			Metric:    e.Metric,
		})
		next.NoteDraft = ""

	default:
		return state, fmt.Errorf("%T: %w", event, apperrors.ErrUnknownEvent)
	}

	next.Version = state.Version + 1
	return next, nil
}

// ListNotes - заметки страницы в порядке добавления.
func ListNotes(state entities.DashboardState, metric string) []entities.Note {
	out := make([]entities.Note, 0)
	for _, n := range state.Notes {
		if n.Metric == metric {
			out = append(out, n)
		}
	}
	return out
}
