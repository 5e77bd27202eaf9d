package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"sustainability-dashboard/internal/dto"
	"sustainability-dashboard/internal/entities"
	"sustainability-dashboard/internal/services"
	"sustainability-dashboard/internal/views"
	apperrors "sustainability-dashboard/pkg/errors"
	"sustainability-dashboard/pkg/middleware"
	"sustainability-dashboard/pkg/utils"
)

// DashboardController отдаёт HTML-страницу и принимает формы с неё.
// Каждая форма превращается в событие, после чего браузер уходит обратно на "/".
type DashboardController struct {
	dashboardService services.DashboardServiceInterface
	facility         string
	logger           *zap.Logger
}

func NewDashboardController(ds services.DashboardServiceInterface, facility string, logger *zap.Logger) *DashboardController {
	return &DashboardController{
		dashboardService: ds,
		facility:         facility,
		logger:           logger,
	}
}

func (ctrl *DashboardController) Index(c echo.Context) error {
	state, err := ctrl.dashboardService.Session(c.Request().Context(), middleware.SessionID(c))
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	page := views.BuildPage(state, ctrl.dashboardService.Dataset(), views.BuildOptions{
		Facility: ctrl.facility,
		Now:      ctrl.dashboardService.Now(),
	})
	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")
	return c.Render(http.StatusOK, views.LayoutTemplate, page)
}

func (ctrl *DashboardController) SelectView(c echo.Context) error {
	var req dto.SelectViewDTO
	if err := c.Bind(&req); err != nil {
		return utils.ErrorResponse(c, apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат запроса", err, nil), ctrl.logger)
	}
	if err := c.Validate(&req); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return ctrl.dispatch(c, services.SelectViewEvent{View: entities.ViewSelector(req.View)})
}

func (ctrl *DashboardController) Back(c echo.Context) error {
	return ctrl.dispatch(c, services.BackEvent{})
}

func (ctrl *DashboardController) ToggleAlerts(c echo.Context) error {
	return ctrl.dispatch(c, services.ToggleAlertsEvent{})
}

// SetFilters применяет только изменившиеся селекты, по одному событию на измерение.
func (ctrl *DashboardController) SetFilters(c echo.Context) error {
	var req dto.FilterFormDTO
	if err := c.Bind(&req); err != nil {
		return utils.ErrorResponse(c, apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат запроса", err, nil), ctrl.logger)
	}

	ctx := c.Request().Context()
	sessionID := middleware.SessionID(c)
	state, err := ctrl.dashboardService.Session(ctx, sessionID)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	submitted := map[entities.FilterDimension]string{
		entities.FilterTimeRange:  req.TimeRange,
		entities.FilterUnit:       req.Unit,
		entities.FilterDepartment: req.Department,
		entities.FilterMachine:    req.Machine,
		entities.FilterShift:      req.Shift,
	}
	// Сначала проверяем все значения: форма применяется целиком или не применяется вовсе.
	var changed []services.SetFilterEvent
	for _, dim := range entities.FilterDimensions() {
		value := submitted[dim]
		if value == "" || value == state.Filters.Get(dim) {
			continue
		}
		if !dim.Allows(value) {
			return utils.ErrorResponse(c, fmt.Errorf("%s=%q: %w", dim, value, apperrors.ErrUnknownFilterValue), ctrl.logger)
		}
		changed = append(changed, services.SetFilterEvent{Dimension: dim, Value: value})
	}

	for _, event := range changed {
		if _, err := ctrl.dashboardService.Dispatch(ctx, sessionID, event); err != nil {
			return utils.ErrorResponse(c, err, ctrl.logger)
		}
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

func (ctrl *DashboardController) AddNote(c echo.Context) error {
	var req dto.AddNoteDTO
	if err := c.Bind(&req); err != nil {
		return utils.ErrorResponse(c, apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат запроса", err, nil), ctrl.logger)
	}
	if err := c.Validate(&req); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return ctrl.dispatch(c, services.AddNoteEvent{Metric: req.Metric, Text: req.Text})
}

func (ctrl *DashboardController) SetNoteDraft(c echo.Context) error {
	var req dto.NoteDraftDTO
	if err := c.Bind(&req); err != nil {
		return utils.ErrorResponse(c, apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат запроса", err, nil), ctrl.logger)
	}
	return ctrl.dispatch(c, services.SetNoteDraftEvent{Text: req.Text})
}

// dispatch применяет событие и возвращает браузер на страницу. Отклонённые переходы
// и пустые заметки для формы - не ошибка: снимок не меняется, страница рисуется заново.
func (ctrl *DashboardController) dispatch(c echo.Context, event services.Event) error {
	_, err := ctrl.dashboardService.Dispatch(c.Request().Context(), middleware.SessionID(c), event)
	if err != nil && !isNoOpRejection(err) {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

func isNoOpRejection(err error) bool {
	return errors.Is(err, apperrors.ErrInvalidTransition) ||
		errors.Is(err, apperrors.ErrEmptyNote)
}
