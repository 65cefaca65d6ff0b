package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"FinFrame/internal/domain/errs"
)

func TestRecorderCountsCallsAndErrorKinds(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewWithRegisterer(reg)

	r.RecordCall("dividends", 0.01, nil)
	r.RecordCall("dividends", 0.02, errs.Fetch("dividends", errors.New("timeout")))
	r.RecordCall("option_chain", 0.0, errs.InputFormat("option_chain", errors.New("bad")))
	r.RecordRows("dividends", 12)

	assert.Equal(t, 1.0, testutil.ToFloat64(r.calls.WithLabelValues("dividends", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.calls.WithLabelValues("dividends", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.errorsTotal.WithLabelValues("fetch")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.errorsTotal.WithLabelValues("input_format")))
	assert.Equal(t, 12.0, testutil.ToFloat64(r.rows.WithLabelValues("dividends")))
}
