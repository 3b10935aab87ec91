package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/core/selection"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/core/wizard"
	perr "github.com/PhysikOnline-FFM/fpraktikum2.0/internal/platform/errors"
	phttp "github.com/PhysikOnline-FFM/fpraktikum2.0/internal/platform/net/http"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/services/api/wizard/domain"
	auditdom "github.com/PhysikOnline-FFM/fpraktikum2.0/internal/services/audit/domain"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

// fakeSvc records the last call and answers with a fixed session
type fakeSvc struct {
	domain.ServicePort

	call  string
	id    string
	args  []any
	err   error
	limit int
}

func (f *fakeSvc) answer(call, id string, args ...any) (domain.Session, error) {
	f.call, f.id, f.args = call, id, args
	if f.err != nil {
		return domain.Session{}, f.err
	}
	return domain.Session{ID: id, View: wizard.Project(wizard.Initial())}, nil
}

func (f *fakeSvc) Start(_ context.Context, userID string) (domain.Session, error) {
	return f.answer("start", "new", userID)
}
func (f *fakeSvc) Get(_ context.Context, id string) (domain.Session, error) {
	return f.answer("get", id)
}
func (f *fakeSvc) End(_ context.Context, id string) error {
	_, err := f.answer("end", id)
	return err
}
func (f *fakeSvc) LoadRegistration(_ context.Context, id string) (domain.Session, error) {
	return f.answer("loadRegistration", id)
}
func (f *fakeSvc) LoadUser(_ context.Context, id string) (domain.Session, error) {
	return f.answer("loadUser", id)
}
func (f *fakeSvc) SetGraduation(_ context.Context, id string, g selection.Graduation) (domain.Session, error) {
	return f.answer("graduation", id, g)
}
func (f *fakeSvc) SelectInstitutes(_ context.Context, id string, ids []int64) (domain.Session, error) {
	return f.answer("institutes", id, ids)
}
func (f *fakeSvc) CheckPartner(_ context.Context, id, number, name string) (domain.Session, error) {
	return f.answer("checkPartner", id, number, name)
}
func (f *fakeSvc) RemovePartner(_ context.Context, id string) (domain.Session, error) {
	return f.answer("removePartner", id)
}
func (f *fakeSvc) SetNoPartner(_ context.Context, id string, v bool) (domain.Session, error) {
	return f.answer("noPartner", id, v)
}
func (f *fakeSvc) SetNotes(_ context.Context, id, notes string) (domain.Session, error) {
	return f.answer("notes", id, notes)
}
func (f *fakeSvc) SetStep(_ context.Context, id string, step wizard.Step) (domain.Session, error) {
	return f.answer("step", id, step)
}
func (f *fakeSvc) Submit(_ context.Context, id string) (domain.Session, error) {
	return f.answer("submit", id)
}
func (f *fakeSvc) Events(_ context.Context, id string, limit int) ([]auditdom.Event, error) {
	f.call, f.id, f.limit = "events", id, limit
	return []auditdom.Event{{SessionID: id, Action: "[Session] Start"}}, f.err
}
func (f *fakeSvc) Registration(context.Context) (wizard.Registration, error) {
	f.call = "registration"
	return wizard.Registration{Semester: "WS25", Institutes: []wizard.Institute{}}, f.err
}

func newServer(t *testing.T) (*fakeSvc, stdhttp.Handler) {
	t.Helper()
	f := &fakeSvc{}
	m := chi.NewRouter()
	r := phttp.AdaptChi(m)
	r.Route("/wizard", func(rr phttp.Router) { Register(rr, f) })
	return f, m
}

func do(h stdhttp.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *stdhttp.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestRoutes_Dispatch(t *testing.T) {
	cases := []struct {
		method, path, body string
		status             int
		call               string
		args               []any
	}{
		{"POST", "/wizard/sessions", `{"user_id":"s1"}`, 201, "start", []any{"s1"}},
		{"POST", "/wizard/sessions", `{}`, 201, "start", []any{""}},
		{"GET", "/wizard/sessions/abc", "", 200, "get", nil},
		{"DELETE", "/wizard/sessions/abc", "", 204, "end", nil},
		{"POST", "/wizard/sessions/abc/registration/load", "", 200, "loadRegistration", nil},
		{"POST", "/wizard/sessions/abc/user/load", "", 200, "loadUser", nil},
		{"PUT", "/wizard/sessions/abc/graduation", `{"graduation":"LA"}`, 200, "graduation", []any{selection.GraduationLA}},
		{"PUT", "/wizard/sessions/abc/institutes", `{"ids":[2,1]}`, 200, "institutes", []any{[]int64{2, 1}}},
		{"POST", "/wizard/sessions/abc/partner", `{"number":"7002","name":"Ada"}`, 200, "checkPartner", []any{"7002", "Ada"}},
		{"DELETE", "/wizard/sessions/abc/partner", "", 200, "removePartner", nil},
		{"PUT", "/wizard/sessions/abc/no-partner", `{"value":true}`, 200, "noPartner", []any{true}},
		{"PUT", "/wizard/sessions/abc/notes", `{"notes":"mornings"}`, 200, "notes", []any{"mornings"}},
		{"POST", "/wizard/sessions/abc/step", `{"step":"main"}`, 200, "step", []any{wizard.StepMain}},
		{"POST", "/wizard/sessions/abc/submit", "", 200, "submit", nil},
	}
	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			f, h := newServer(t)
			w := do(h, tc.method, tc.path, tc.body)
			require.Equal(t, tc.status, w.Code, w.Body.String())
			require.Equal(t, tc.call, f.call)
			require.Equal(t, tc.args, f.args)
			if tc.call != "start" {
				require.Equal(t, "abc", f.id)
			}
		})
	}
}

func TestRoutes_SessionBody(t *testing.T) {
	_, h := newServer(t)
	w := do(h, "GET", "/wizard/sessions/abc", "")
	require.Equal(t, 200, w.Code)

	var env struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.Equal(t, "abc", env.Data["id"])
	require.Equal(t, "start", env.Data["step"])
	require.Contains(t, env.Data, "can_advance")
	require.Contains(t, env.Data, "registration")
}

func TestRoutes_RejectInvalidBodies(t *testing.T) {
	cases := []struct{ method, path, body string }{
		{"PUT", "/wizard/sessions/abc/graduation", `{"graduation":"PhD"}`},
		{"PUT", "/wizard/sessions/abc/institutes", `{"ids":[1,2,3]}`},
		{"PUT", "/wizard/sessions/abc/institutes", `{"ids":[0]}`},
		{"POST", "/wizard/sessions/abc/partner", `{"number":"70a2","name":"Ada"}`},
		{"POST", "/wizard/sessions/abc/partner", `{"number":"7002"}`},
		{"POST", "/wizard/sessions/abc/step", `{"step":"review"}`},
		{"PUT", "/wizard/sessions/abc/notes", `{"notes":` + `"` + strings.Repeat("x", 2001) + `"}`},
	}
	for _, tc := range cases {
		t.Run(tc.path+" "+tc.body[:min(len(tc.body), 24)], func(t *testing.T) {
			f, h := newServer(t)
			w := do(h, tc.method, tc.path, tc.body)
			require.Equal(t, stdhttp.StatusBadRequest, w.Code, w.Body.String())
			require.Empty(t, f.call)
		})
	}
}

func TestRoutes_ErrorStatus(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{perr.NotFoundf("session abc not found or expired"), 404},
		{perr.Conflictf("session already submitted"), 409},
		{perr.InvalidArgf("partner cannot be yourself"), 422},
		{perr.Unavailablef("event journal is disabled"), 503},
	}
	for _, tc := range cases {
		f, h := newServer(t)
		f.err = tc.err
		w := do(h, "POST", "/wizard/sessions/abc/submit", "")
		require.Equal(t, tc.status, w.Code, w.Body.String())
	}
}

func TestRoutes_EventsLimit(t *testing.T) {
	f, h := newServer(t)
	w := do(h, "GET", "/wizard/sessions/abc/events?limit=7", "")
	require.Equal(t, 200, w.Code, w.Body.String())
	require.Equal(t, 7, f.limit)

	do(h, "GET", "/wizard/sessions/abc/events", "")
	require.Equal(t, 100, f.limit)
}

func TestRoutes_Registration(t *testing.T) {
	f, h := newServer(t)
	w := do(h, "GET", "/wizard/registration", "")
	require.Equal(t, 200, w.Code)
	require.Equal(t, "registration", f.call)
	require.Contains(t, w.Body.String(), `"semester":"WS25"`)
}
