package bridge

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"FinFrame/internal/domain/errs"
	"FinFrame/internal/domain/repository"
	applogger "FinFrame/pkg/logger"
	"FinFrame/pkg/metrics"
)

// Call identifies one ticker operation for logging and metrics.
type Call struct {
	Op     string
	Symbol string
}

// Op is the single fetch-and-shape step run inside a scope.
type Op func(ctx context.Context, md repository.MarketData) error

// Executor runs one Op per call in an isolated scope.
type Executor interface {
	Run(call Call, fn Op) error
}

// Do runs fn through e and returns its value.
func Do[T any](e Executor, call Call, fn func(ctx context.Context, md repository.MarketData) (T, error)) (T, error) {
	var out T
	err := e.Run(call, func(ctx context.Context, md repository.MarketData) error {
		v, err := fn(ctx, md)
		if err != nil {
			return err
		}
		out = v
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

var errNilClient = errors.New("market data factory returned nil client")

type callIDKey struct{}

// CallID returns the id of the scope ctx belongs to, or "".
func CallID(ctx context.Context) string {
	id, _ := ctx.Value(callIDKey{}).(string)
	return id
}

type scope struct {
	id     string
	ctx    context.Context
	cancel context.CancelFunc
	client repository.MarketData
}

func openScope(factory repository.MarketDataFactory) (*scope, error) {
	if factory == nil {
		return nil, errors.New("market data factory is nil")
	}
	client, err := factory()
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, errNilClient
	}
	id := uuid.NewString()
	ctx, cancel := context.WithCancel(context.WithValue(context.Background(), callIDKey{}, id))
	return &scope{id: id, ctx: ctx, cancel: cancel, client: client}, nil
}

// run awaits fn on its own goroutine. A panic fails this call only.
func (s *scope) run(op string, fn Op) error {
	done := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- errs.Fetch(op, fmt.Errorf("panic: %v", r))
			}
		}()
		done <- fn(s.ctx, s.client)
	}()
	return <-done
}

func (s *scope) close() error {
	s.cancel()
	if c, ok := s.client.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

type runner struct {
	factory repository.MarketDataFactory
	metrics repository.Metrics
	logger  *applogger.Logger
}

func newRunner(factory repository.MarketDataFactory, m repository.Metrics, l *applogger.Logger) runner {
	if m == nil {
		m = metrics.Nop{}
	}
	if l == nil {
		l = applogger.Nop()
	}
	return runner{factory: factory, metrics: m, logger: l}
}

func (r runner) execute(call Call, fn Op) error {
	start := time.Now()
	sc, err := openScope(r.factory)
	if err != nil {
		cerr := errs.ExecutionContext(call.Op, err)
		r.logger.Error("scope allocation failed",
			applogger.String("op", call.Op),
			applogger.String("symbol", call.Symbol),
			applogger.Error(err),
		)
		r.metrics.RecordCall(call.Op, time.Since(start).Seconds(), cerr)
		return cerr
	}

	l := r.logger.With(
		applogger.String("call_id", sc.id),
		applogger.String("op", call.Op),
		applogger.String("symbol", call.Symbol),
	)
	err = sc.run(call.Op, fn)
	if cerr := sc.close(); cerr != nil {
		l.Warn("scope close error", applogger.Error(cerr))
	}

	elapsed := time.Since(start)
	r.metrics.RecordCall(call.Op, elapsed.Seconds(), err)
	if err != nil {
		l.Error("call failed", applogger.Duration("duration_ms", elapsed), applogger.Error(err))
		return err
	}
	l.Debug("call done", applogger.Duration("duration_ms", elapsed))
	return nil
}

// PerCall opens a new scope for every call with no admission limit.
type PerCall struct {
	r runner
}

func NewPerCall(factory repository.MarketDataFactory, m repository.Metrics, l *applogger.Logger) *PerCall {
	return &PerCall{r: newRunner(factory, m, l)}
}

func (e *PerCall) Run(call Call, fn Op) error { return e.r.execute(call, fn) }

// Pooled opens a new scope for every call but lets at most workers scopes
// exist at the same time. Calls beyond that wait their turn.
type Pooled struct {
	r   runner
	sem *semaphore.Weighted
}

func NewPooled(factory repository.MarketDataFactory, workers int, m repository.Metrics, l *applogger.Logger) *Pooled {
	if workers < 1 {
		workers = 1
	}
	return &Pooled{
		r:   newRunner(factory, m, l),
		sem: semaphore.NewWeighted(int64(workers)),
	}
}

func (e *Pooled) Run(call Call, fn Op) error {
	if err := e.sem.Acquire(context.Background(), 1); err != nil {
		return errs.ExecutionContext(call.Op, err)
	}
	defer e.sem.Release(1)
	return e.r.execute(call, fn)
}
