package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"sustainability-dashboard/internal/controllers"
	"sustainability-dashboard/internal/services"
)

func runDashboardRouter(group *echo.Group, ds services.DashboardServiceInterface, facility string, logger *zap.Logger) {
	ctrl := controllers.NewDashboardController(ds, facility, logger)

	group.GET("/", ctrl.Index)

	actions := group.Group("/actions")
	{
		actions.POST("/view", ctrl.SelectView)
		actions.POST("/back", ctrl.Back)
		actions.POST("/alerts/toggle", ctrl.ToggleAlerts)
		actions.POST("/filters", ctrl.SetFilters)
		actions.POST("/notes", ctrl.AddNote)
		actions.POST("/notes/draft", ctrl.SetNoteDraft)
	}
}
