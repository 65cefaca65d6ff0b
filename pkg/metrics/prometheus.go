package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"FinFrame/internal/domain/errs"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	calls       *prometheus.CounterVec
	errorsTotal *prometheus.CounterVec
	rows        *prometheus.CounterVec
	latency     *prometheus.HistogramVec
}

// New creates a recorder registered on the default registry.
func New() *Recorder {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer creates a recorder registered on reg.
func NewWithRegisterer(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		calls: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finframe_ticker_calls_total",
				Help: "Total number of ticker calls by operation and result",
			},
			[]string{"op", "result"},
		),
		errorsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finframe_ticker_errors_total",
				Help: "Total number of failed ticker calls by error kind",
			},
			[]string{"kind"},
		),
		rows: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finframe_ticker_rows_projected_total",
				Help: "Total number of table rows produced",
			},
			[]string{"op"},
		),
		latency: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "finframe_ticker_call_duration_seconds",
				Help:    "Duration of ticker calls in seconds, scope setup and teardown included",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"op"},
		),
	}
}

// RecordCall records one finished call.
func (r *Recorder) RecordCall(op string, seconds float64, err error) {
	result := "ok"
	if err != nil {
		result = "error"
		r.RecordError(errs.KindOf(err).String())
	}
	r.calls.WithLabelValues(op, result).Inc()
	r.latency.WithLabelValues(op).Observe(seconds)
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordRows records the row count of a projected table.
func (r *Recorder) RecordRows(op string, rows int) {
	r.rows.WithLabelValues(op).Add(float64(rows))
}

// Nop discards all measurements.
type Nop struct{}

func (Nop) RecordCall(string, float64, error) {}
func (Nop) RecordError(string)                {}
func (Nop) RecordRows(string, int)            {}
