package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"orderdispatch/cmd"
	"orderdispatch/internal/adapters/out/bus"
	"orderdispatch/internal/adapters/out/postgres"
	"orderdispatch/internal/core/ports"
	"orderdispatch/internal/platform/observability"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := run(); err != nil {
		slog.Error("order dispatch stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	config := cmd.LoadConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	settings := observability.Settings{
		ServiceName:  config.ServiceName,
		Environment:  config.Environment,
		LogLevel:     config.LogLevel,
		LogOutput:    os.Stdout,
		OTLPEndpoint: config.OTLPEndpoint,
		OTLPInsecure: config.OTLPInsecure,
	}
	if config.TraceStdout {
		settings.TraceWriter = os.Stderr
	}
	instruments, shutdownTelemetry, err := observability.Init(ctx, settings)
	if err != nil {
		return fmt.Errorf("init observability: %w", err)
	}
	logger := instruments.Logger
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			logger.Error("failed to flush telemetry", "error", err)
		}
	}()

	if err = postgres.Migrate(config.DSN(), logger); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	gormDB, err := gorm.Open(pgdriver.Open(config.DSN()), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	hub := bus.NewHub(bus.WithLogger(logger), bus.WithMeter(instruments.Meter("orderdispatch/bus")))
	var publisher ports.NotificationPublisher = hub

	if config.AMQPURL != "" {
		dial := func() (*amqp.Connection, error) { return bus.Dial(config.AMQPURL) }
		conn, err := dial()
		if err != nil {
			return fmt.Errorf("connect to rabbitmq: %w", err)
		}

		relay, err := bus.NewRelay(conn, hub, config.AMQPExchange, logger, bus.WithRedial(dial))
		if err != nil {
			_ = conn.Close()
			return err
		}
		defer relay.Close()
		go func() { _ = relay.Serve(ctx) }()
		publisher = relay
	}

	app := cmd.NewCompositionRoot(config, gormDB, hub, publisher, logger)

	jobManager, err := app.CreateJobManager()
	if err != nil {
		return err
	}
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(otelecho.Middleware(config.ServiceName, otelecho.WithTracerProvider(instruments.TracerProvider)))
	if err = app.CreateHTTPServer().Register(e); err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server started", "port", config.HTTPPort)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%d", config.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err = <-errCh:
		return err
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
