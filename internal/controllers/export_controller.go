package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "sustainability-dashboard/pkg/errors"
	"sustainability-dashboard/pkg/metrics"
	"sustainability-dashboard/pkg/utils"
)

var exportFormats = map[string]string{
	"pdf":   "PDF",
	"csv":   "CSV",
	"excel": "Excel",
}

// ExportController - пункты меню экспорта. Файлы пока не формируются.
type ExportController struct {
	logger *zap.Logger
}

func NewExportController(logger *zap.Logger) *ExportController {
	return &ExportController{logger: logger}
}

func (ctrl *ExportController) Export(c echo.Context) error {
	format := strings.ToLower(c.Param("format"))
	label, ok := exportFormats[format]
	if !ok {
		metrics.ObserveExport("unknown")
		return utils.ErrorResponse(c, fmt.Errorf("формат %q: %w", format, apperrors.ErrUnknownExportFormat), ctrl.logger)
	}

	metrics.ObserveExport(format)
	ctrl.logger.Info("Запрошен экспорт", zap.String("format", format))
	return utils.ErrorResponse(c, apperrors.NewHttpError(
		http.StatusNotImplemented,
		fmt.Sprintf("Экспорт в %s пока не реализован", label),
		apperrors.ErrExportNotImplemented,
		map[string]interface{}{"format": format},
	), ctrl.logger)
}
