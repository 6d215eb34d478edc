package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"timeservice/internal/api"
	"timeservice/internal/api/handler/v1handler"
	"timeservice/internal/clock"
	"timeservice/internal/timeops"
	"timeservice/internal/timezone"
	"timeservice/pkg/logger"

	"github.com/stretchr/testify/require"
)

// The otel prometheus exporter registers on the default registerer, so the
// server is built once and shared by the tests below.
func newTestServer(t *testing.T) *http.Server {
	t.Helper()
	logger.Setup(logger.DevelopmentEnvironment)

	svc := timeops.New(timezone.NewResolver(),
		clock.Fixed(time.Date(2025, time.January, 15, 17, 0, 0, 0, time.UTC)))

	server, err := api.NewServer(api.Deps{
		Deps: v1handler.Deps{Time: svc},
	}, api.Options{
		Addr:           ":0",
		RequestTimeout: 5 * time.Second,
		MetricsPath:    "/metrics",
	})
	require.NoError(t, err)

	return server
}

func TestServerRoutes(t *testing.T) {
	server := newTestServer(t)

	get := func(path string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		return rec
	}

	t.Run("health", func(t *testing.T) {
		rec := get("/v1/healthz")
		require.Equal(t, http.StatusOK, rec.Code)
		require.NotEmpty(t, rec.Header().Get("X-Request-Id"))
	})

	t.Run("current time", func(t *testing.T) {
		rec := get("/v1/time/current?timezone=UTC")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"2025-01-15T17:00:00+00:00"`)
	})

	t.Run("openapi spec", func(t *testing.T) {
		rec := get("/specs/v1.yaml")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))
		require.Contains(t, rec.Body.String(), "Time Service API")
	})

	t.Run("metrics", func(t *testing.T) {
		rec := get("/metrics")
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown route", func(t *testing.T) {
		rec := get("/nope")
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}
