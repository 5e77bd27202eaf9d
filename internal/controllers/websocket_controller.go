package controllers

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"sustainability-dashboard/pkg/middleware"
	appwebsocket "sustainability-dashboard/pkg/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// WebSocketController подписывает вкладку на изменения её сессии.
// Сессия берётся из той же cookie, что и у страницы.
type WebSocketController struct {
	hub    *appwebsocket.Hub
	logger *zap.Logger
}

func NewWebSocketController(hub *appwebsocket.Hub, logger *zap.Logger) *WebSocketController {
	return &WebSocketController{hub: hub, logger: logger}
}

func (c *WebSocketController) ServeWs(ctx echo.Context) error {
	sessionID := middleware.SessionID(ctx)
	if sessionID == "" {
		return ctx.String(http.StatusUnauthorized, "Missing session")
	}

	conn, err := upgrader.Upgrade(ctx.Response(), ctx.Request(), nil)
	if err != nil {
		c.logger.Error("WebSocket: не удалось улучшить соединение", zap.Error(err))
		return err
	}

	client := appwebsocket.NewClient(c.hub, conn, sessionID)
	c.hub.Register(client)

	go client.WritePump()
	go client.ReadPump()

	c.logger.Info("WebSocket: клиент подключен", zap.String("session", sessionID))
	return nil
}
