package usecase

import (
	"context"

	"FinFrame/internal/domain/models"
	"FinFrame/internal/domain/repository"
	"FinFrame/pkg/frame"
	"FinFrame/pkg/util"
)

func (t *Ticker) incomeStmt(op string, freq models.Frequency) (*frame.Table, error) {
	return framed(t, op, func(ctx context.Context, md repository.MarketData) (models.IncomeStatement, error) {
		return md.IncomeStatement(ctx, t.symbol, freq)
	})
}

func (t *Ticker) balanceSheet(op string, freq models.Frequency) (*frame.Table, error) {
	return framed(t, op, func(ctx context.Context, md repository.MarketData) (models.BalanceSheet, error) {
		return md.BalanceSheet(ctx, t.symbol, freq)
	})
}

func (t *Ticker) cashflow(op string, freq models.Frequency) (*frame.Table, error) {
	return framed(t, op, func(ctx context.Context, md repository.MarketData) (models.Cashflow, error) {
		return md.Cashflow(ctx, t.symbol, freq)
	})
}

func (t *Ticker) IncomeStmt() (*frame.Table, error) {
	return t.incomeStmt("income_stmt", models.Annual)
}

func (t *Ticker) QuarterlyIncomeStmt() (*frame.Table, error) {
	return t.incomeStmt("quarterly_income_stmt", models.Quarterly)
}

func (t *Ticker) BalanceSheet() (*frame.Table, error) {
	return t.balanceSheet("balance_sheet", models.Annual)
}

func (t *Ticker) QuarterlyBalanceSheet() (*frame.Table, error) {
	return t.balanceSheet("quarterly_balance_sheet", models.Quarterly)
}

func (t *Ticker) Cashflow() (*frame.Table, error) { return t.cashflow("cashflow", models.Annual) }

func (t *Ticker) QuarterlyCashflow() (*frame.Table, error) {
	return t.cashflow("quarterly_cashflow", models.Quarterly)
}

// Earnings reports how many yearly, quarterly and quarterly EPS records exist.
func (t *Ticker) Earnings() (map[string]any, error) {
	e, err := fetch(t, "earnings", func(ctx context.Context, md repository.MarketData) (*models.Earnings, error) {
		return md.Earnings(ctx, t.symbol)
	})
	if err != nil {
		return nil, err
	}
	out := map[string]any{
		"symbol":              t.symbol,
		"yearly_count":        0,
		"quarterly_count":     0,
		"quarterly_eps_count": 0,
	}
	if e != nil {
		out["yearly_count"] = len(e.Yearly)
		out["quarterly_count"] = len(e.Quarterly)
		out["quarterly_eps_count"] = len(e.QuarterlyEPS)
	}
	return out, nil
}

// Calendar returns upcoming earnings and dividend dates as YYYY-MM-DD.
func (t *Ticker) Calendar() (map[string]any, error) {
	c, err := fetch(t, "calendar", func(ctx context.Context, md repository.MarketData) (*models.Calendar, error) {
		return md.Calendar(ctx, t.symbol)
	})
	if err != nil {
		return nil, err
	}
	out := map[string]any{"symbol": t.symbol}
	dates := []string{}
	if c != nil {
		for _, d := range c.EarningsDates {
			dates = append(dates, util.FormatDay(d))
		}
		if c.ExDividendDate != nil {
			out["exDividendDate"] = util.FormatDay(*c.ExDividendDate)
		}
		if c.DividendPaymentDate != nil {
			out["dividendDate"] = util.FormatDay(*c.DividendPaymentDate)
		}
	}
	out["earningsDates"] = dates
	return out, nil
}

func (t *Ticker) Recommendations() (*frame.Table, error) {
	return framed(t, "recommendations", func(ctx context.Context, md repository.MarketData) (models.Recommendations, error) {
		return md.Recommendations(ctx, t.symbol)
	})
}

func (t *Ticker) UpgradesDowngrades() (*frame.Table, error) {
	return framed(t, "upgrades_downgrades", func(ctx context.Context, md repository.MarketData) (models.UpgradesDowngrades, error) {
		return md.UpgradesDowngrades(ctx, t.symbol)
	})
}
