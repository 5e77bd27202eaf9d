package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"sustainability-dashboard/internal/controllers"
	"sustainability-dashboard/internal/services"
)

func runApiRouter(api *echo.Group, ds services.DashboardServiceInterface, logger *zap.Logger) {
	ctrl := controllers.NewApiController(ds, logger)

	api.GET("/state", ctrl.GetState)
	api.POST("/events", ctrl.PostEvent)
	api.GET("/kpis", ctrl.GetKPIs)
	api.GET("/alerts", ctrl.GetAlerts)
	api.GET("/notes", ctrl.GetNotes)
}
