package usecase

import (
	"context"

	"FinFrame/internal/domain/models"
	"FinFrame/internal/domain/repository"
	"FinFrame/internal/projection"
	"FinFrame/pkg/frame"
)

func (t *Ticker) Dividends() (*frame.Table, error) {
	return project(t, "dividends", func(ctx context.Context, md repository.MarketData) ([]models.Dividend, error) {
		return md.Dividends(ctx, t.symbol)
	}, projection.Dividends)
}

func (t *Ticker) Splits() (*frame.Table, error) {
	return project(t, "splits", func(ctx context.Context, md repository.MarketData) ([]models.Split, error) {
		return md.Splits(ctx, t.symbol)
	}, projection.Splits)
}

func (t *Ticker) CapitalGains() (*frame.Table, error) {
	return project(t, "capital_gains", func(ctx context.Context, md repository.MarketData) ([]models.CapitalGain, error) {
		return md.CapitalGains(ctx, t.symbol)
	}, projection.CapitalGains)
}

// Actions returns dividends and splits aligned in one table, one row per
// event in source order. Capital gains are not included.
func (t *Ticker) Actions() (*frame.Table, error) {
	return project(t, "actions", func(ctx context.Context, md repository.MarketData) ([]models.Action, error) {
		return md.Actions(ctx, t.symbol)
	}, projection.Actions)
}
