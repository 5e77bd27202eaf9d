package routes

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"sustainability-dashboard/internal/controllers"
)

func runSystemRouter(e *echo.Echo, gatherer prometheus.Gatherer) {
	e.GET("/healthz", controllers.Healthz)
	if gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}
}
