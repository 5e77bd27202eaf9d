package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"sustainability-dashboard/internal/controllers"
)

func runExportRouter(e *echo.Echo, logger *zap.Logger) {
	ctrl := controllers.NewExportController(logger)
	e.GET("/export/:format", ctrl.Export)
}
