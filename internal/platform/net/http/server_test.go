package http

import (
	"context"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/platform/config"

	"github.com/stretchr/testify/require"
)

func TestNewServer_Addr(t *testing.T) {
	require.Equal(t, ":4000", NewServer(config.New().Prefix("CORE_API_")).addr)

	t.Setenv("CORE_API_PORT", "8081")
	require.Equal(t, ":8081", NewServer(config.New().Prefix("CORE_API_")).addr)

	t.Setenv("CORE_API_ADDR", "127.0.0.1:9000")
	require.Equal(t, "127.0.0.1:9000", NewServer(config.New().Prefix("CORE_API_")).addr)
}

func TestServer_HandlerServesRoutes(t *testing.T) {
	s := NewServer(config.New())
	s.Router().Get("/meta/health", CallHandler(func(*stdhttp.Request) (any, error) { return true, nil }))

	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(stdhttp.MethodGet, "/meta/health", nil))
	require.Equal(t, stdhttp.StatusOK, w.Code)
}

func TestServer_RunStopsOnCancel(t *testing.T) {
	t.Setenv("CORE_API_ADDR", "127.0.0.1:0")
	s := NewServer(config.New().Prefix("CORE_API_"))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(ShutdownTimeout + time.Second):
		t.Fatal("server did not stop")
	}
}
