package usecase

import (
	"context"

	"FinFrame/internal/bridge"
	"FinFrame/internal/domain/errs"
	"FinFrame/internal/domain/models"
	"FinFrame/internal/domain/repository"
	"FinFrame/pkg/frame"
	"FinFrame/pkg/util"
)

// Options lists the available expirations as YYYY-MM-DD in client order.
func (t *Ticker) Options() ([]string, error) {
	ts, err := fetch(t, "options", func(ctx context.Context, md repository.MarketData) ([]int64, error) {
		return md.OptionExpirations(ctx, t.symbol)
	})
	if err != nil {
		return nil, err
	}
	dates := make([]string, 0, len(ts))
	for _, s := range ts {
		dates = append(dates, util.FormatDate(s))
	}
	return dates, nil
}

// resolveExpiration turns a YYYY-MM-DD date into the expiration timestamp
// (UTC midnight). An empty date yields nil and lets the client choose.
func resolveExpiration(date string) (*int64, error) {
	if date == "" {
		return nil, nil
	}
	ts, err := util.MidnightUTC(date)
	if err != nil {
		return nil, err
	}
	return &ts, nil
}

// OptionChain returns the calls and puts tables for one expiration. A
// malformed date fails before anything is fetched.
func (t *Ticker) OptionChain(date string) (calls, puts *frame.Table, err error) {
	const op = "option_chain"
	exp, err := resolveExpiration(date)
	if err != nil {
		ierr := errs.InputFormat(op, err)
		t.metrics.RecordError(ierr.Kind.String())
		return nil, nil, ierr
	}

	type pair struct{ calls, puts *frame.Table }
	p, err := bridge.Do(t.exec, t.call(op), func(ctx context.Context, md repository.MarketData) (pair, error) {
		chain, err := md.OptionChain(ctx, t.symbol, exp)
		if err != nil {
			return pair{}, errs.Fetch(op, err)
		}
		if chain == nil {
			chain = &models.OptionChain{}
		}
		c, err := chain.Calls.Frame()
		if err != nil {
			return pair{}, errs.TableConstruction(op, err)
		}
		pt, err := chain.Puts.Frame()
		if err != nil {
			return pair{}, errs.TableConstruction(op, err)
		}
		return pair{calls: c, puts: pt}, nil
	})
	if err != nil {
		return nil, nil, err
	}
	t.metrics.RecordRows(op, p.calls.Len()+p.puts.Len())
	return p.calls, p.puts, nil
}
