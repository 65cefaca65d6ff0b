package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FinFrame/internal/domain/errs"
)

func TestFromTickerError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"input format", errs.InputFormat("option_chain", errors.New("invalid date format")), http.StatusBadRequest, "ERR_INPUT_FORMAT"},
		{"fetch", errs.Fetch("info", errors.New("http 429")), http.StatusBadGateway, "ERR_FETCH"},
		{"execution context", errs.ExecutionContext("info", errors.New("no client")), http.StatusServiceUnavailable, "ERR_EXECUTION_CONTEXT"},
		{"table construction", errs.TableConstruction("splits", errors.New("bad row")), http.StatusInternalServerError, "ERR_TABLE_CONSTRUCTION"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "ERR_INTERNAL"},
		{"app error", NotFoundError("missing"), http.StatusNotFound, "ERR_NOT_FOUND"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := FromTickerError(tt.err)
			assert.Equal(t, tt.status, appErr.Status)
			assert.Equal(t, tt.code, appErr.Code)
		})
	}
}

func TestFromTickerErrorKeepsOp(t *testing.T) {
	appErr := FromTickerError(errs.Fetch("dividends", errors.New("timeout")))
	assert.Equal(t, "dividends", appErr.Params["op"])
	assert.Equal(t, "timeout", appErr.Message)
	assert.ErrorIs(t, appErr, errs.ErrFetch)
}

func TestAppErrorResponseEnvelope(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, AppErrorResponse(c, errs.InputFormat("option_chain", errors.New("invalid date format"))))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Status  int        `json:"status"`
		Message string     `json:"message"`
		Data    []AppError `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusBadRequest, body.Status)
	assert.Equal(t, "Bad Request", body.Message)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "ERR_INPUT_FORMAT", body.Data[0].Code)
}

func TestServerHealthAndMetrics(t *testing.T) {
	s := NewServer(nil, nil)

	rec := httptest.NewRecorder()
	s.Echo().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)

	rec = httptest.NewRecorder()
	s.Echo().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "finframe_http_requests_total")
}
