package http

import (
	"context"
	"encoding/json"
	"errors"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	phttp "github.com/PhysikOnline-FFM/fpraktikum2.0/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

type slowPinger struct{}

func (slowPinger) Ping(ctx context.Context) error {
	<-ctx.Done()
	return ctx.Err()
}

func serve(t *testing.T, d Deps, path string) map[string]any {
	t.Helper()
	m := chi.NewRouter()
	Register(phttp.AdaptChi(m), d)
	w := httptest.NewRecorder()
	m.ServeHTTP(w, httptest.NewRequest(stdhttp.MethodGet, path, nil))
	require.Equal(t, stdhttp.StatusOK, w.Code, w.Body.String())

	var env struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	out := map[string]any{}
	if len(env.Data) > 0 && env.Data[0] == '[' {
		var list []any
		require.NoError(t, json.Unmarshal(env.Data, &list))
		out["list"] = list
		return out
	}
	require.NoError(t, json.Unmarshal(env.Data, &out))
	return out
}

func TestReady(t *testing.T) {
	cases := []struct {
		name   string
		pg, ch any
		want   string
	}{
		{"all up", pinger{}, pinger{}, StatusOK},
		{"journal disabled", pinger{}, nil, StatusOK},
		{"pg down", pinger{err: errors.New("refused")}, nil, StatusFail},
		{"ch down", pinger{}, pinger{err: errors.New("refused")}, StatusFail},
		{"pg missing", nil, pinger{}, StatusDegraded},
		{"cannot ping", struct{}{}, nil, StatusDegraded},
		{"fail beats degraded", nil, pinger{err: errors.New("refused")}, StatusFail},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := Deps{ServiceName: "fpraktikum-api", Backends: []Backend{
				{Name: "pg", Required: true, Seam: tc.pg},
				{Name: "ch", Seam: tc.ch},
			}}
			got := serve(t, d, "/ready")
			require.Equal(t, tc.want, got["status"])
			require.Len(t, got["checks"], 2)
		})
	}
}

func TestReady_PingHonorsTimeout(t *testing.T) {
	old := PingTimeout
	PingTimeout = 10 * time.Millisecond
	t.Cleanup(func() { PingTimeout = old })

	d := Deps{Backends: []Backend{{Name: "pg", Required: true, Seam: slowPinger{}}}}
	got := serve(t, d, "/ready")
	require.Equal(t, StatusFail, got["status"])
	check := got["checks"].([]any)[0].(map[string]any)
	require.Equal(t, context.DeadlineExceeded.Error(), check["error"])
}

func TestHealthAndService(t *testing.T) {
	d := Deps{ServiceName: "fpraktikum-api", StartedAt: time.Now().Add(-time.Minute)}
	h := serve(t, d, "/health")
	require.Equal(t, true, h["ok"])
	require.Equal(t, "fpraktikum-api", h["service"])

	s := serve(t, d, "/service")
	require.GreaterOrEqual(t, s["uptime"].(float64), float64(60))
}

func TestRules(t *testing.T) {
	got := serve(t, Deps{}, "/rules")["list"].([]any)
	require.Len(t, got, 3)
	byGrad := map[string]map[string]any{}
	for _, r := range got {
		m := r.(map[string]any)
		byGrad[m["graduation"].(string)] = m
	}
	require.Equal(t, float64(2), byGrad["BA"]["required_institutes"])
	require.Equal(t, float64(2), byGrad["MA"]["required_institutes"])
	require.Equal(t, float64(1), byGrad["LA"]["required_institutes"])
	require.Equal(t, true, byGrad["LA"]["choose_only_one"])
}
