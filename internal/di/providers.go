package di

import (
	"fmt"

	"FinFrame/internal/bridge"
	"FinFrame/internal/domain/repository"
	"FinFrame/internal/handler/api"
	"FinFrame/internal/service/yahoo"
	"FinFrame/internal/usecase"
	"FinFrame/pkg/config"
	xhttp "FinFrame/pkg/http"
	pkgkafka "FinFrame/pkg/kafka"
	applogger "FinFrame/pkg/logger"
	"FinFrame/pkg/metrics"
	"FinFrame/pkg/server"
)

// ProvideLogPublisher creates the Kafka producer behind the error-log
// collector. It returns nil when the collector is disabled.
func ProvideLogPublisher(cfg *config.Config) (*pkgkafka.Producer, error) {
	if !cfg.LogCollector.Enabled {
		return nil, nil
	}
	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.LogCollector.Brokers),
		pkgkafka.WithCompression(cfg.LogCollector.Compression),
		pkgkafka.WithAsync(false),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return producer, nil
}

// ProvideLogger creates the root logger and attaches the collector when a
// publisher is available.
func ProvideLogger(cfg *config.Config, producer *pkgkafka.Producer) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	if producer != nil {
		l.AddCollector(&applogger.CollectionConfig{
			TimeInterval:   cfg.LogCollector.Interval,
			CountThreshold: cfg.LogCollector.CountThreshold,
			Topic:          cfg.LogCollector.Topic,
			Environment:    cfg.Environment,
			Publisher:      producer,
		})
	}
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideMarketDataFactory builds a fresh fetch client per call.
func ProvideMarketDataFactory(cfg *config.Config) repository.MarketDataFactory {
	return yahoo.NewFactory(cfg.Client)
}

// ProvideExecutor selects the bridge mode from config.
func ProvideExecutor(cfg *config.Config, factory repository.MarketDataFactory, m repository.Metrics, l *applogger.Logger) bridge.Executor {
	if cfg.Bridge.Mode == config.BridgePooled {
		return bridge.NewPooled(factory, cfg.Bridge.Workers, m, l)
	}
	return bridge.NewPerCall(factory, m, l)
}

// ProvideTickers creates the ticker factory shared by every surface.
func ProvideTickers(exec bridge.Executor, l *applogger.Logger, m repository.Metrics) *usecase.Tickers {
	return usecase.NewTickers(exec, usecase.WithLogger(l), usecase.WithMetrics(m))
}

// ProvideTickerHandler creates the HTTP handler.
func ProvideTickerHandler(l *applogger.Logger, tickers *usecase.Tickers) xhttp.Handler {
	return api.NewTickerEchoHandler(l, tickers)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, l *applogger.Logger, h xhttp.Handler, producer *pkgkafka.Producer) *server.App {
	return server.New(cfg, l, h, producer)
}
