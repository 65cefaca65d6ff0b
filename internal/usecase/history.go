package usecase

import (
	"context"

	"FinFrame/internal/domain/models"
	"FinFrame/internal/domain/repository"
	"FinFrame/pkg/frame"
	applogger "FinFrame/pkg/logger"
)

// HistoryParams are the user-facing history options. Empty Period and
// Interval mean 1mo and 1d. Start and End are accepted but not applied.
type HistoryParams struct {
	Period     string
	Interval   string
	Start      string
	End        string
	Prepost    bool
	AutoAdjust bool
	Actions    bool
}

func DefaultHistoryParams() HistoryParams {
	return HistoryParams{
		Period:     repository.DefaultRange().String(),
		Interval:   repository.DefaultInterval().String(),
		AutoAdjust: true,
		Actions:    true,
	}
}

func (t *Ticker) historyRequest(p HistoryParams) repository.HistoryRequest {
	period := p.Period
	if period == "" {
		period = repository.DefaultRange().String()
	}
	interval := p.Interval
	if interval == "" {
		interval = repository.DefaultInterval().String()
	}

	if !repository.IsKnownRange(period) {
		t.logger.Debug("unknown period, using default",
			applogger.String("period", period),
			applogger.String("default", repository.DefaultRange().String()),
		)
	}
	if !repository.IsKnownInterval(interval) {
		t.logger.Debug("unknown interval, using default",
			applogger.String("interval", interval),
			applogger.String("default", repository.DefaultInterval().String()),
		)
	}
	if p.Start != "" || p.End != "" {
		t.logger.Warn("history start/end are not applied, period governs the window",
			applogger.String("start", p.Start),
			applogger.String("end", p.End),
		)
	}

	return repository.HistoryRequest{
		Range:      repository.ParseRange(period),
		Interval:   repository.ParseInterval(interval),
		AutoAdjust: p.AutoAdjust,
		Prepost:    p.Prepost,
		Actions:    p.Actions,
	}
}

// History returns OHLCV candles as a table.
func (t *Ticker) History(p HistoryParams) (*frame.Table, error) {
	req := t.historyRequest(p)
	return framed(t, "history", func(ctx context.Context, md repository.MarketData) (models.Candles, error) {
		return md.History(ctx, t.symbol, req)
	})
}
