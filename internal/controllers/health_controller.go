package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"sustainability-dashboard/pkg/utils"
)

func Healthz(c echo.Context) error {
	return utils.SuccessResponse(c, map[string]string{"status": "ok"}, "Сервис работает", http.StatusOK)
}
