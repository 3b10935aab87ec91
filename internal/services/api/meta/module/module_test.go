package module

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/modkit"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/platform/config"
	phttp "github.com/PhysikOnline-FFM/fpraktikum2.0/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func TestNew_ReadyWithoutBackends(t *testing.T) {
	t.Setenv("SERVICE", "fpraktikum-test")
	m := New(modkit.Deps{Cfg: config.New()})
	require.Equal(t, "meta", m.Name())
	require.Nil(t, m.Ports())

	mux := chi.NewRouter()
	m.MountRoutes(phttp.AdaptChi(mux))

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/meta/ready", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var env struct {
		Data struct {
			Status string `json:"status"`
			Checks []struct {
				Name   string `json:"name"`
				Status string `json:"status"`
			} `json:"checks"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.Equal(t, "degraded", env.Data.Status, "postgres is required")
	require.Len(t, env.Data.Checks, 2)
	require.Equal(t, "skipped", env.Data.Checks[1].Status)

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/meta/health", nil))
	require.Contains(t, w.Body.String(), `"service":"fpraktikum-test"`)
}
