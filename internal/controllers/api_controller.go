package controllers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"sustainability-dashboard/internal/dto"
	"sustainability-dashboard/internal/entities"
	"sustainability-dashboard/internal/services"
	apperrors "sustainability-dashboard/pkg/errors"
	"sustainability-dashboard/pkg/middleware"
	"sustainability-dashboard/pkg/utils"
)

// ApiController - JSON-доступ к той же сессии, что и у HTML-страницы.
type ApiController struct {
	dashboardService services.DashboardServiceInterface
	logger           *zap.Logger
}

func NewApiController(ds services.DashboardServiceInterface, logger *zap.Logger) *ApiController {
	return &ApiController{dashboardService: ds, logger: logger}
}

func (ctrl *ApiController) GetState(c echo.Context) error {
	state, err := ctrl.dashboardService.Session(c.Request().Context(), middleware.SessionID(c))
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, state, "Состояние дашборда получено", http.StatusOK)
}

func (ctrl *ApiController) PostEvent(c echo.Context) error {
	var req dto.EventDTO
	if err := c.Bind(&req); err != nil {
		return utils.ErrorResponse(c, apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат запроса", err, nil), ctrl.logger)
	}
	if err := c.Validate(&req); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	event, err := eventFromDTO(req)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	state, err := ctrl.dashboardService.Dispatch(c.Request().Context(), middleware.SessionID(c), event)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, state, "Событие применено", http.StatusOK)
}

func (ctrl *ApiController) GetKPIs(c echo.Context) error {
	data := ctrl.dashboardService.Dataset()
	kpis := data.KPIs()

	body := dto.KPIListDTO{KPIs: make([]dto.KPIDTO, 0, entities.MetricCount)}
	for _, m := range entities.AllMetrics() {
		body.KPIs = append(body.KPIs, kpiToDTO(m, kpis[m]))
	}
	if avg, ok := services.AveragePerformance(data.Overall()); ok {
		body.AveragePerformance = &avg
	}
	return utils.SuccessResponse(c, body, "Показатели получены", http.StatusOK)
}

func (ctrl *ApiController) GetAlerts(c echo.Context) error {
	state, err := ctrl.dashboardService.Session(c.Request().Context(), middleware.SessionID(c))
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	body := dto.AlertListDTO{
		Alerts:     make([]dto.AlertDTO, 0, len(state.Alerts)),
		BadgeCount: services.AlertBadgeCount(state.Alerts),
	}
	for _, a := range state.Alerts {
		body.Alerts = append(body.Alerts, dto.AlertDTO{ID: a.ID, Type: string(a.Type), Message: a.Message, Time: a.Time})
	}
	return utils.SuccessResponse(c, body, "Уведомления получены", http.StatusOK)
}

func (ctrl *ApiController) GetNotes(c echo.Context) error {
	var req dto.NotesQueryDTO
	if err := c.Bind(&req); err != nil {
		return utils.ErrorResponse(c, apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат запроса", err, nil), ctrl.logger)
	}
	if err := c.Validate(&req); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	notes, err := ctrl.dashboardService.ListNotes(c.Request().Context(), middleware.SessionID(c), req.Metric)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, notes, "Заметки получены", http.StatusOK)
}

func kpiToDTO(m entities.Metric, kpi entities.KPIRecord) dto.KPIDTO {
	progress := services.ProgressPercentage(kpi)
	glyph := services.TrendIndicator(kpi.Trend)

	text := "n/a"
	if progress.Defined {
		text = fmt.Sprintf("%d%%", progress.Rounded())
	}
	return dto.KPIDTO{
		Metric:      m.Key(),
		Title:       m.Title(),
		Current:     kpi.Current,
		Target:      kpi.Target,
		Unit:        kpi.Unit,
		Status:      kpi.Status.String(),
		StatusColor: string(services.StatusColor(kpi.Status)),
		Trend:       dto.TrendGlyphDTO{Symbol: glyph.Symbol, Label: glyph.Label, Tone: string(glyph.Tone)},
		Change:      kpi.Change,
		Progress: dto.ProgressDTO{
			Raw:     progress.Raw,
			Width:   progress.Width,
			Defined: progress.Defined,
			Text:    text,
		},
	}
}

// eventFromDTO переводит JSON-событие в событие редьюсера.
func eventFromDTO(req dto.EventDTO) (services.Event, error) {
	switch req.Type {
	case services.SelectViewEvent{}.Kind():
		return services.SelectViewEvent{View: entities.ViewSelector(req.View)}, nil
	case services.BackEvent{}.Kind():
		return services.BackEvent{}, nil
	case services.ToggleAlertsEvent{}.Kind():
		return services.ToggleAlertsEvent{}, nil
	case services.SetFilterEvent{}.Kind():
		return services.SetFilterEvent{Dimension: entities.FilterDimension(req.Dimension), Value: req.Value}, nil
	case services.SetNoteDraftEvent{}.Kind():
		return services.SetNoteDraftEvent{Text: req.Text}, nil
	case services.AddNoteEvent{}.Kind():
		return services.AddNoteEvent{Metric: req.Metric, Text: req.Text}, nil
	default:
		return nil, fmt.Errorf("тип %q: %w", req.Type, apperrors.ErrUnknownEvent)
	}
}
