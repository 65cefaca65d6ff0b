package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

type routes func(e *echo.Echo)

func (r routes) RegisterRoutes(e *echo.Echo) { r(e) }

func pingRoutes() routes {
	return func(e *echo.Echo) {
		e.GET("/api/ping", func(c echo.Context) error { return SuccessResponse(c, "pong") })
	}
}

func serve(s *Server, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.Echo().ServeHTTP(rec, req)
	return rec
}

func TestServerRateLimitsAPIOnly(t *testing.T) {
	// one token, refilled far slower than the test runs
	s := NewServer(pingRoutes(), nil, WithRateLimit(0.001, 1), WithMetricsPath(""))

	assert.Equal(t, http.StatusOK, serve(s, httptest.NewRequest(http.MethodGet, "/api/ping", nil)).Code)

	rec := serve(s, httptest.NewRequest(http.MethodGet, "/api/ping", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "ERR_RATE_LIMITED")

	assert.Equal(t, http.StatusOK, serve(s, httptest.NewRequest(http.MethodGet, "/healthz", nil)).Code)
}

func TestServerRateLimitIsPerClient(t *testing.T) {
	s := NewServer(pingRoutes(), nil, WithRateLimit(0.001, 1), WithMetricsPath(""))

	a := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	a.RemoteAddr = "10.0.0.1:1234"
	b := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	b.RemoteAddr = "10.0.0.2:1234"

	assert.Equal(t, http.StatusOK, serve(s, a).Code)
	assert.Equal(t, http.StatusOK, serve(s, b).Code)
}

func TestServerCORSPreflight(t *testing.T) {
	s := NewServer(pingRoutes(), nil,
		WithCORS([]string{"https://dash.local"}, []string{http.MethodGet, http.MethodOptions}),
		WithMetricsPath(""),
	)

	preflight := func(origin string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodOptions, "/api/ping", nil)
		req.Header.Set(echo.HeaderOrigin, origin)
		req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodGet)
		return serve(s, req)
	}

	rec := preflight("https://dash.local")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://dash.local", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Contains(t, rec.Header().Get(echo.HeaderAccessControlAllowMethods), http.MethodGet)

	rec = preflight("https://evil.local")
	assert.Empty(t, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func TestServerCORSDisabled(t *testing.T) {
	s := NewServer(pingRoutes(), nil, WithCORS(nil, nil), WithMetricsPath(""))

	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.Header.Set(echo.HeaderOrigin, "https://dash.local")
	rec := serve(s, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}
