package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"sustainability-dashboard/internal/controllers"
	"sustainability-dashboard/pkg/websocket"
)

func runWebSocketRouter(group *echo.Group, hub *websocket.Hub, logger *zap.Logger) {
	ctrl := controllers.NewWebSocketController(hub, logger)
	group.GET("/ws", ctrl.ServeWs)
}
