package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"sustainability-dashboard/internal/listeners"
	"sustainability-dashboard/internal/repositories"
	"sustainability-dashboard/internal/routes"
	"sustainability-dashboard/internal/services"
	"sustainability-dashboard/internal/views"
	"sustainability-dashboard/pkg/config"
	"sustainability-dashboard/pkg/customvalidator"
	apperrors "sustainability-dashboard/pkg/errors"
	"sustainability-dashboard/pkg/eventbus"
	applogger "sustainability-dashboard/pkg/logger"
	"sustainability-dashboard/pkg/metrics"
	appmiddleware "sustainability-dashboard/pkg/middleware"
	"sustainability-dashboard/pkg/utils"
	"sustainability-dashboard/pkg/websocket"
	"sustainability-dashboard/seeders"
)

func main() {
	cfg := config.New()
	logger := applogger.NewLogger(cfg.Log)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("!!! ОБНАРУЖЕНА ПАНИКА (PANIC) !!!",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "Внутренняя ошибка сервера", err, nil)
				utils.ErrorResponse(c, httpErr, logger)
			}
			return err
		},
	}))
	e.Use(appmiddleware.RequestLogger(logger))

	v := validator.New()
	if err := customvalidator.RegisterCustomValidations(v); err != nil {
		logger.Fatal("Ошибка регистрации кастомных правил валидации", zap.Error(err))
	}
	e.Validator = utils.NewValidator(v)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	if err := metrics.Register(registry); err != nil {
		logger.Fatal("Ошибка регистрации метрик", zap.Error(err))
	}

	dataset, err := seeders.LoadDatasetFile(cfg.Dashboard.DatasetFile)
	if err != nil {
		logger.Fatal("Не удалось загрузить мок-данные", zap.Error(err), zap.String("file", cfg.Dashboard.DatasetFile))
	}

	renderer, err := views.NewRenderer()
	if err != nil {
		logger.Fatal("Не удалось подготовить шаблоны", zap.Error(err))
	}

	hub := websocket.NewHub(logger)
	go hub.Run(ctx)

	bus := eventbus.New(logger)
	listeners.NewLiveUpdateListener(hub, logger).Register(bus)

	clock := utils.SystemClock
	dashboardService := services.NewDashboardService(
		repositories.NewInMemorySessionRepository(clock),
		repositories.NewDatasetRepository(dataset),
		bus,
		services.ReducerDeps{Clock: clock},
		logger,
	)
	go services.RunSessionJanitor(ctx, dashboardService, cfg.Session.SweepInterval, cfg.Session.IdleTTL, logger)

	routes.InitRouter(e, routes.Dependencies{
		Config:    cfg,
		Dashboard: dashboardService,
		Renderer:  renderer,
		Hub:       hub,
		Gatherer:  registry,
		Logger:    logger,
	})

	go func() {
		logger.Info("🚀 Сервер запущен", zap.String("port", cfg.Server.Port))
		if err := e.Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Ошибка запуска сервера", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Получен сигнал остановки, завершаем работу")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Ошибка при остановке сервера", zap.Error(err))
	}
	bus.Wait()
}
