package modkit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/modkit/httpkit"
	phttp "github.com/PhysikOnline-FFM/fpraktikum2.0/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func TestBuild_LaterOptionsWin(t *testing.T) {
	b := Build(WithName("wizard"), WithPrefix("/wizard"), WithPrefix("/wizard/v2"))
	require.Equal(t, "wizard", b.Name)
	require.Equal(t, "/wizard/v2", b.Prefix)
	require.Nil(t, b.Ports)

	require.Panics(t, func() { Build(WithPrefix("/wizard")) }, "a module needs a name")
}

func TestBuilt_Mount(t *testing.T) {
	tag := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Module", "wizard")
			next.ServeHTTP(w, r)
		})
	}
	b := Build(WithName("wizard"), WithPrefix("wizard/"), WithMiddlewares(tag))

	mux := chi.NewRouter()
	b.Mount(phttp.AdaptChi(mux), func(r httpkit.Router) {
		httpkit.Get(r, "/registration", func(*http.Request) (any, error) { return "WS25", nil })
	})

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/wizard/registration", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "wizard", w.Header().Get("X-Module"))
	require.Contains(t, w.Body.String(), `"data":"WS25"`)

	require.Panics(t, func() {
		Build(WithName("meta")).Mount(phttp.AdaptChi(chi.NewRouter()), func(httpkit.Router) {})
	}, "route owning modules need a prefix")
}
