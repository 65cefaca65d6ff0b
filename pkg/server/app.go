package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"FinFrame/pkg/config"
	xhttp "FinFrame/pkg/http"
	pkgkafka "FinFrame/pkg/kafka"
	applogger "FinFrame/pkg/logger"
)

// App encapsulates the HTTP service lifecycle.
type App struct {
	cfg        *config.Config
	logger     *applogger.Logger
	httpServer *xhttp.Server
	producer   *pkgkafka.Producer
}

// New creates the App. producer may be nil when log publishing is disabled.
// opts are applied after the config-derived server options.
func New(cfg *config.Config, logger *applogger.Logger, handler xhttp.Handler, producer *pkgkafka.Producer, opts ...xhttp.ServerOption) *App {
	metricsPath := ""
	if cfg.Metrics.Enabled {
		metricsPath = cfg.Metrics.Path
	}
	opts = append([]xhttp.ServerOption{
		xhttp.WithPort(cfg.Server.Port),
		xhttp.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.ShutdownTimeout),
		xhttp.WithMetricsPath(metricsPath),
		xhttp.WithCORS(cfg.Server.CORS.AllowOrigins, cfg.Server.CORS.AllowMethods),
		xhttp.WithRateLimit(cfg.Server.RateLimit.RPS, cfg.Server.RateLimit.Burst),
	}, opts...)
	srv := xhttp.NewServer(handler, logger, opts...)
	return &App{
		cfg:        cfg,
		logger:     logger,
		httpServer: srv,
		producer:   producer,
	}
}

// Server returns the HTTP server.
func (a *App) Server() *xhttp.Server { return a.httpServer }

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	if err := a.httpServer.Start(); err != nil {
		a.logger.Error("http server start error", applogger.Error(err))
		return err
	}
	a.logger.Info("finframe started",
		applogger.String("env", a.cfg.Environment),
		applogger.String("bridge", a.cfg.Bridge.Mode),
		applogger.Int("port", a.cfg.Server.Port),
	)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.logger.Info("shutdown signal received")
	return a.Shutdown(context.Background())
}

// Shutdown stops the HTTP server, flushes the error-log collector and closes
// the Kafka producer, in that order.
func (a *App) Shutdown(ctx context.Context) error {
	if err := a.httpServer.Stop(ctx); err != nil {
		a.logger.Error("http shutdown error", applogger.Error(err))
	}

	// flushes pending entries through the producer
	a.logger.RemoveCollector()

	if a.producer != nil {
		if err := a.producer.Close(); err != nil {
			a.logger.Warn("kafka producer close error", applogger.Error(err))
		}
	}

	a.logger.Info("shutdown complete")
	return nil
}
