package repository

import (
	"context"

	"FinFrame/internal/domain/models"
)

//go:generate mockgen -destination=mocks/mock_market_data.go -package=mocks FinFrame/internal/domain/repository MarketData

// HistoryRequest carries the resolved history fetch parameters.
type HistoryRequest struct {
	Range      Range
	Interval   Interval
	AutoAdjust bool
	Prepost    bool
	Actions    bool
}

// MarketData is the market data fetch client. Implementations own transport,
// auth, parsing and timeouts. Event slices are returned in provider order.
type MarketData interface {
	History(ctx context.Context, symbol string, req HistoryRequest) (models.Candles, error)
	Info(ctx context.Context, symbol string) (*models.Info, error)
	FastInfo(ctx context.Context, symbol string) (*models.FastInfo, error)
	ISIN(ctx context.Context, symbol string) (string, error)

	Dividends(ctx context.Context, symbol string) ([]models.Dividend, error)
	Splits(ctx context.Context, symbol string) ([]models.Split, error)
	CapitalGains(ctx context.Context, symbol string) ([]models.CapitalGain, error)
	Actions(ctx context.Context, symbol string) ([]models.Action, error)

	IncomeStatement(ctx context.Context, symbol string, freq models.Frequency) (models.IncomeStatement, error)
	BalanceSheet(ctx context.Context, symbol string, freq models.Frequency) (models.BalanceSheet, error)
	Cashflow(ctx context.Context, symbol string, freq models.Frequency) (models.Cashflow, error)
	Earnings(ctx context.Context, symbol string) (*models.Earnings, error)
	Calendar(ctx context.Context, symbol string) (*models.Calendar, error)

	Recommendations(ctx context.Context, symbol string) (models.Recommendations, error)
	UpgradesDowngrades(ctx context.Context, symbol string) (models.UpgradesDowngrades, error)
	MajorHolders(ctx context.Context, symbol string) ([]models.MajorHolder, error)
	InstitutionalHolders(ctx context.Context, symbol string) (models.Holders, error)
	MutualFundHolders(ctx context.Context, symbol string) (models.Holders, error)
	InsiderTransactions(ctx context.Context, symbol string) (models.InsiderTransactions, error)
	InsiderRosterHolders(ctx context.Context, symbol string) (models.InsiderRoster, error)

	// OptionExpirations lists expirations as Unix seconds.
	OptionExpirations(ctx context.Context, symbol string) ([]int64, error)
	// OptionChain fetches one expiration. A nil expiration lets the client pick
	// its default (usually the nearest).
	OptionChain(ctx context.Context, symbol string, expiration *int64) (*models.OptionChain, error)
}

// MarketDataFactory builds a fresh client handle for one call.
type MarketDataFactory func() (MarketData, error)

type Metrics interface {
	RecordCall(op string, seconds float64, err error)
	RecordError(kind string)
	RecordRows(op string, rows int)
}
