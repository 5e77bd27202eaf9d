package routes

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"sustainability-dashboard/internal/services"
	"sustainability-dashboard/internal/views"
	"sustainability-dashboard/pkg/config"
	"sustainability-dashboard/pkg/middleware"
	"sustainability-dashboard/pkg/websocket"
)

// Dependencies - всё, что собрано в main и нужно роутерам.
type Dependencies struct {
	Config    *config.Config
	Dashboard services.DashboardServiceInterface
	Renderer  *views.Renderer
	Hub       *websocket.Hub
	Gatherer  prometheus.Gatherer
	Logger    *zap.Logger
}

func InitRouter(e *echo.Echo, deps Dependencies) {
	deps.Logger.Info("InitRouter: Начало создания маршрутов")

	e.Renderer = deps.Renderer

	sessionMW := middleware.NewSessionMiddleware(
		deps.Config.Session.CookieName,
		deps.Config.Session.IdleTTL,
		deps.Logger,
	)
	sessionGroup := e.Group("", sessionMW.Session)

	runDashboardRouter(sessionGroup, deps.Dashboard, deps.Config.Dashboard.FacilityName, deps.Logger)
	runApiRouter(sessionGroup.Group("/api"), deps.Dashboard, deps.Logger)
	runWebSocketRouter(sessionGroup, deps.Hub, deps.Logger)
	runExportRouter(e, deps.Logger)
	runSystemRouter(e, deps.Gatherer)

	deps.Logger.Info("INIT_ROUTER: Создание маршрутов завершено")
}
