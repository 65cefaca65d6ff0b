//go:build wireinject
// +build wireinject

package di

import (
	"FinFrame/internal/usecase"
	"FinFrame/pkg/config"
	applogger "FinFrame/pkg/logger"
	"FinFrame/pkg/server"

	"github.com/google/wire"
)

var tickerSet = wire.NewSet(
	ProvideMetrics,
	ProvideMarketDataFactory,
	ProvideExecutor,
	ProvideTickers,
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Logging
		ProvideLogPublisher,
		ProvideLogger,

		tickerSet,

		// HTTP
		ProvideTickerHandler,
		ProvideApp,
	)
	return &server.App{}, nil
}

// InitializeTickers wires the ticker layer for command-line use.
func InitializeTickers(cfg *config.Config, l *applogger.Logger) (*usecase.Tickers, error) {
	wire.Build(tickerSet)
	return &usecase.Tickers{}, nil
}
