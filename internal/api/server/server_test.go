package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DjordjeVuckovic/green-bench/internal/apperr"
	"github.com/DjordjeVuckovic/green-bench/internal/metrics"
	pkgserver "github.com/DjordjeVuckovic/green-bench/pkg/server"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type downChecker struct{}

func (downChecker) Healthy(context.Context) bool { return false }

func serve(s *Server, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestHealth(t *testing.T) {
	cfg := &Config{Port: DefaultPort, CorsOrigins: []string{"*"}}

	ok := New(cfg, pkgserver.NewOkHealthChecker()).SetupHealthChecks("/health")
	assert.Equal(t, http.StatusOK, serve(ok, http.MethodGet, "/health").Code)

	down := New(cfg, pkgserver.AllHealthy{pkgserver.NewOkHealthChecker(), downChecker{}}).SetupHealthChecks("/health")
	assert.Equal(t, http.StatusServiceUnavailable, serve(down, http.MethodGet, "/health").Code)
}

func TestMetricsEndpoint(t *testing.T) {
	s := New(&Config{Port: DefaultPort, CorsOrigins: []string{"*"}}, nil).
		SetupMiddlewares().
		SetupMetrics(metrics.New(), "/metrics").
		SetupHealthChecks("/health")

	require.Equal(t, http.StatusOK, serve(s, http.MethodGet, "/health").Code)

	rec := serve(s, http.MethodGet, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `greenbench_http_requests_total{method="GET",path="/health",status="200"} 1`)
}

func TestErrorHandler(t *testing.T) {
	s := New(&Config{Port: DefaultPort, CorsOrigins: []string{"*"}}, nil).SetupErrorHandler()
	s.Echo.GET("/bad", func(echo.Context) error { return apperr.NewValidation("nope") })
	s.Echo.GET("/upstream", func(echo.Context) error {
		return &apperr.TimeoutError{Endpoint: "/api/benchmark", Err: context.DeadlineExceeded}
	})

	assert.Equal(t, http.StatusBadRequest, serve(s, http.MethodGet, "/bad").Code)
	assert.Equal(t, http.StatusGatewayTimeout, serve(s, http.MethodGet, "/upstream").Code)
	assert.Equal(t, http.StatusNotFound, serve(s, http.MethodGet, "/missing").Code)
}

func TestSkipLogging(t *testing.T) {
	s := New(&Config{Port: DefaultPort}, nil).SetupHealthChecks("/health")
	s.quiet = append(s.quiet, "/swagger/*")

	c := s.Echo.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), httptest.NewRecorder())
	assert.True(t, s.skipLogging(c))
	c = s.Echo.NewContext(httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil), httptest.NewRecorder())
	assert.True(t, s.skipLogging(c))
	c = s.Echo.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/status", nil), httptest.NewRecorder())
	assert.False(t, s.skipLogging(c))
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("ENV_PATH", "/nonexistent/.env")
	t.Setenv("ENV", "")
	t.Setenv("PORT", "9090")
	t.Setenv("USE_HTTP2", "true")
	t.Setenv("CORS_ORIGINS", "http://a.test, ,http://b.test")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.UseHttp2)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CorsOrigins)

	t.Setenv("PORT", "70000")
	_, err = LoadConfig()
	assert.Error(t, err)
}
