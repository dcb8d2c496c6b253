package health_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/maildraft/pkg/health"
)

func TestRun_AllHealthy(t *testing.T) {
	t.Parallel()

	resp := health.Run(context.Background(), health.Checks{
		"store": func(ctx context.Context) error { return nil },
		"redis": func(ctx context.Context) error { return nil },
	}, time.Second)

	require.Equal(t, health.StatusHealthy, resp.Status)
	require.Len(t, resp.Checks, 2)
}

func TestRun_OneFailing(t *testing.T) {
	t.Parallel()

	resp := health.Run(context.Background(), health.Checks{
		"store": func(ctx context.Context) error { return nil },
		"redis": func(ctx context.Context) error { return errors.New("connection refused") },
	}, time.Second)

	require.Equal(t, health.StatusUnhealthy, resp.Status)
	require.Equal(t, health.StatusUnhealthy, resp.Checks["redis"].Status)
	require.Equal(t, "connection refused", resp.Checks["redis"].Error)
}

func TestRun_NoChecks(t *testing.T) {
	t.Parallel()

	resp := health.Run(context.Background(), nil, time.Second)
	require.Equal(t, health.StatusHealthy, resp.Status)
	require.Empty(t, resp.Checks)
}

func TestHandler(t *testing.T) {
	t.Parallel()

	h := health.Handler(health.Checks{
		"store": func(ctx context.Context) error { return errors.New("down") },
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.Contains(t, rec.Body.String(), `"status":"unhealthy"`)
}
