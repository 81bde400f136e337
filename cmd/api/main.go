package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"tenantconsole/internal/app"
	"tenantconsole/internal/config"
	"tenantconsole/internal/database"
	handlers "tenantconsole/internal/http/handler"
	"tenantconsole/internal/http/middleware"
	"tenantconsole/internal/logging"
	tracing "tenantconsole/internal/otel"
	"tenantconsole/internal/scheduler"
)

const (
	bodyLimit       = 50 << 20
	shutdownTimeout = 15 * time.Second
)

// @title       Tenant Console API
// @version     1.0
// @description Administration API for the multi-tenant salon platform.
// @BasePath    /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	loc := cfg.Location()
	log := logging.NewStdout(loc, cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Init(ctx, log)
	if err != nil {
		log.Fatal("tracing init failed", zap.Error(err))
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	a, err := app.New(ctx, cfg, log, app.Options{Registry: reg})
	if err != nil {
		log.Fatal("startup failed", zap.Error(err))
	}
	if err := database.RegisterPoolMetrics(reg, a.DB, cfg.Database.Name); err != nil {
		log.Warn("database pool metrics not registered", zap.Error(err))
	}

	var sched *scheduler.Scheduler
	if cfg.Schedule.Enabled {
		sched, err = a.Scheduler()
		if err != nil {
			log.Fatal("scheduler init failed", zap.Error(err))
		}
		sched.Start()
	}

	promMw, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatal("http metrics init failed", zap.Error(err))
	}

	srv := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		BodyLimit:             bodyLimit,
		DisableStartupMessage: true,
	})

	srv.Use(recover.New())
	srv.Use(otelfiber.Middleware(otelfiber.WithNext(func(c *fiber.Ctx) bool {
		return c.Path() == "/metrics"
	})))
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	srv.Use(middleware.RequestID())
	srv.Use(middleware.Logger(log.Named("http")))
	srv.Use(promMw.Handler())

	srv.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))
	handlers.RegisterRoutes(srv, a.DB, handlers.Services(a.Services))

	go func() {
		<-ctx.Done()
		log.Info("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if sched != nil {
			if err := sched.Stop(sctx); err != nil {
				log.Warn("scheduler stop", zap.Error(err))
			}
		}
		if err := srv.ShutdownWithContext(sctx); err != nil {
			log.Warn("http shutdown", zap.Error(err))
		}
	}()

	addr := ":" + cfg.Port
	log.Info("listening", zap.String("addr", addr), zap.String("timezone", loc.String()))
	if err := srv.Listen(addr); err != nil {
		log.Error("server stopped", zap.Error(err))
	}

	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := shutdownTracing(sctx); err != nil {
		log.Warn("tracing shutdown", zap.Error(err))
	}
	if err := a.Close(); err != nil {
		log.Warn("close resources", zap.Error(err))
	}
}
