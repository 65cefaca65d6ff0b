package usecase

import (
	"context"

	"FinFrame/internal/domain/models"
	"FinFrame/internal/domain/repository"
	"FinFrame/internal/projection"
	"FinFrame/pkg/frame"
)

// MajorHolders returns the ownership breakdown as Breakdown/Value strings.
func (t *Ticker) MajorHolders() (*frame.Table, error) {
	return project(t, "major_holders", func(ctx context.Context, md repository.MarketData) ([]models.MajorHolder, error) {
		return md.MajorHolders(ctx, t.symbol)
	}, projection.MajorHolders)
}

func (t *Ticker) InstitutionalHolders() (*frame.Table, error) {
	return framed(t, "institutional_holders", func(ctx context.Context, md repository.MarketData) (models.Holders, error) {
		return md.InstitutionalHolders(ctx, t.symbol)
	})
}

func (t *Ticker) MutualFundHolders() (*frame.Table, error) {
	return framed(t, "mutualfund_holders", func(ctx context.Context, md repository.MarketData) (models.Holders, error) {
		return md.MutualFundHolders(ctx, t.symbol)
	})
}

func (t *Ticker) InsiderTransactions() (*frame.Table, error) {
	return framed(t, "insider_transactions", func(ctx context.Context, md repository.MarketData) (models.InsiderTransactions, error) {
		return md.InsiderTransactions(ctx, t.symbol)
	})
}

func (t *Ticker) InsiderRosterHolders() (*frame.Table, error) {
	return framed(t, "insider_roster_holders", func(ctx context.Context, md repository.MarketData) (models.InsiderRoster, error) {
		return md.InsiderRosterHolders(ctx, t.symbol)
	})
}
