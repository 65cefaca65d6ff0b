package usecase

import (
	"context"
	"fmt"

	"FinFrame/internal/bridge"
	"FinFrame/internal/domain/errs"
	"FinFrame/internal/domain/repository"
	"FinFrame/pkg/frame"
	applogger "FinFrame/pkg/logger"
	"FinFrame/pkg/metrics"
)

// Ticker is the public per-symbol API. Every method is synchronous and runs
// exactly one fetch in its own scope; a Ticker holds no fetched state.
type Ticker struct {
	symbol  string
	exec    bridge.Executor
	logger  *applogger.Logger
	metrics repository.Metrics
}

type Option func(*Ticker)

func WithLogger(l *applogger.Logger) Option {
	return func(t *Ticker) {
		if l != nil {
			t.logger = l
		}
	}
}

func WithMetrics(m repository.Metrics) Option {
	return func(t *Ticker) {
		if m != nil {
			t.metrics = m
		}
	}
}

func NewTicker(symbol string, exec bridge.Executor, opts ...Option) *Ticker {
	t := &Ticker{
		symbol:  symbol,
		exec:    exec,
		logger:  applogger.Nop(),
		metrics: metrics.Nop{},
	}
	for _, opt := range opts {
		opt(t)
	}
	t.logger = t.logger.With(applogger.String("symbol", symbol))
	return t
}

func (t *Ticker) Symbol() string { return t.symbol }

func (t *Ticker) String() string { return fmt.Sprintf("Ticker('%s')", t.symbol) }

func (t *Ticker) call(op string) bridge.Call {
	return bridge.Call{Op: op, Symbol: t.symbol}
}

type fetchFunc[T any] func(ctx context.Context, md repository.MarketData) (T, error)

// fetch runs one client call and flattens its failure to a FetchError.
func fetch[T any](t *Ticker, op string, fn fetchFunc[T]) (T, error) {
	return bridge.Do(t.exec, t.call(op), func(ctx context.Context, md repository.MarketData) (T, error) {
		v, err := fn(ctx, md)
		if err != nil {
			var zero T
			return zero, errs.Fetch(op, err)
		}
		return v, nil
	})
}

// project fetches and builds the table inside the same scope.
func project[T any](t *Ticker, op string, fn fetchFunc[T], build func(T) (*frame.Table, error)) (*frame.Table, error) {
	tbl, err := bridge.Do(t.exec, t.call(op), func(ctx context.Context, md repository.MarketData) (*frame.Table, error) {
		v, err := fn(ctx, md)
		if err != nil {
			return nil, errs.Fetch(op, err)
		}
		tbl, err := build(v)
		if err != nil {
			return nil, errs.TableConstruction(op, err)
		}
		return tbl, nil
	})
	if err != nil {
		return nil, err
	}
	t.metrics.RecordRows(op, tbl.Len())
	return tbl, nil
}

// framed projects a collection through its own schema.
func framed[T frame.Framer](t *Ticker, op string, fn fetchFunc[T]) (*frame.Table, error) {
	return project(t, op, fn, func(v T) (*frame.Table, error) { return v.Frame() })
}

// Tickers builds per-symbol Tickers that share an executor and options.
type Tickers struct {
	exec bridge.Executor
	opts []Option
}

func NewTickers(exec bridge.Executor, opts ...Option) *Tickers {
	return &Tickers{exec: exec, opts: opts}
}

func (f *Tickers) Ticker(symbol string) *Ticker {
	return NewTicker(symbol, f.exec, f.opts...)
}
