package module

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/core/selection"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/core/wizard"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/modkit"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/platform/config"
	phttp "github.com/PhysikOnline-FFM/fpraktikum2.0/internal/platform/net/http"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/platform/net/middleware"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/services/api/wizard/domain"
	partdom "github.com/PhysikOnline-FFM/fpraktikum2.0/internal/services/partners/domain"
	regdom "github.com/PhysikOnline-FFM/fpraktikum2.0/internal/services/registrations/domain"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

type fakeRegs struct{ regdom.Port }

func (fakeRegs) Current(context.Context) (wizard.Registration, error) {
	return wizard.Registration{Semester: "WS25", Institutes: []wizard.Institute{}}, nil
}

type fakePartners struct{ partdom.Port }

func (fakePartners) Check(_ context.Context, number, name string) (wizard.Partner, error) {
	return wizard.Partner{Number: number, Name: name, Type: selection.PartnerNotRegistered}, nil
}

func TestFromConfig_Defaults(t *testing.T) {
	o := FromConfig(config.New())
	require.Equal(t, 30*time.Minute, o.SessionTTL)
	require.Equal(t, 5*time.Second, o.LoadTimeout)
}

func TestFromConfig_Env(t *testing.T) {
	t.Setenv("WIZARD_SESSION_TTL", "10m")
	t.Setenv("WIZARD_LOAD_TIMEOUT", "2s")
	o := FromConfig(config.New())
	require.Equal(t, 10*time.Minute, o.SessionTTL)
	require.Equal(t, 2*time.Second, o.LoadTimeout)
}

func TestNew_RequiresPorts(t *testing.T) {
	require.Panics(t, func() { New(modkit.Deps{Cfg: config.New()}) })
	require.Panics(t, func() {
		New(modkit.Deps{Cfg: config.New()}, modkit.WithPorts(domain.Ports{Registrations: fakeRegs{}}))
	})
}

func TestNew_MountsUnderPrefix(t *testing.T) {
	m := New(modkit.Deps{Cfg: config.New()}, modkit.WithPorts(domain.Ports{
		Registrations: fakeRegs{},
		Partners:      fakePartners{},
	}))
	require.Equal(t, "wizard", m.Name())

	mux := chi.NewRouter()
	m.MountRoutes(phttp.AdaptChi(mux))

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/wizard/registration", nil))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Contains(t, w.Body.String(), "WS25")
	require.Nil(t, m.Ports())
}

func TestNew_ModuleMiddleware(t *testing.T) {
	m := New(modkit.Deps{Cfg: config.New()},
		modkit.WithPorts(domain.Ports{Registrations: fakeRegs{}, Partners: fakePartners{}}),
		modkit.WithMiddlewares(middleware.AllowContentType("application/json")),
	)
	mux := chi.NewRouter()
	m.MountRoutes(phttp.AdaptChi(mux))

	req := httptest.NewRequest(http.MethodPost, "/wizard/sessions", strings.NewReader("user_id=s1"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnsupportedMediaType, w.Code)

	req = httptest.NewRequest(http.MethodPost, "/wizard/sessions", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}
