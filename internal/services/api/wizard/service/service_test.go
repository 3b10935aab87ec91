package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/core/loadstate"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/core/selection"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/core/wizard"
	perr "github.com/PhysikOnline-FFM/fpraktikum2.0/internal/platform/errors"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/services/api/wizard/domain"
	auditdom "github.com/PhysikOnline-FFM/fpraktikum2.0/internal/services/audit/domain"
	regdom "github.com/PhysikOnline-FFM/fpraktikum2.0/internal/services/registrations/domain"

	"github.com/stretchr/testify/require"
)

type fakeRegs struct {
	mu        sync.Mutex
	regErr    error
	user      *wizard.User
	submitErr error
	subs      []regdom.Submission
}

func (f *fakeRegs) Current(context.Context) (wizard.Registration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.regErr != nil {
		return wizard.Registration{}, f.regErr
	}
	return wizard.Registration{Semester: "WS25", Institutes: []wizard.Institute{
		{ID: 1, Name: "IAP", SemesterHalf: 1, Places: 3},
		{ID: 2, Name: "PI", SemesterHalf: 2, Places: 3},
		{ID: 3, Name: "Didaktik", Graduation: selection.GraduationLA, SemesterHalf: 1, Places: 1},
	}}, nil
}

func (f *fakeRegs) User(_ context.Context, id string) (*wizard.User, error) {
	if f.user == nil {
		return nil, perr.NotFoundf("user %s not found", id)
	}
	u := *f.user
	return &u, nil
}

func (f *fakeRegs) Submit(_ context.Context, sub regdom.Submission) (regdom.Receipt, error) {
	if f.submitErr != nil {
		return regdom.Receipt{}, f.submitErr
	}
	f.subs = append(f.subs, sub)
	return regdom.Receipt{ID: int64(len(f.subs)), Semester: "WS25"}, nil
}

type fakePartners struct {
	types map[string]selection.PartnerType
	err   error
}

func (f *fakePartners) Check(_ context.Context, number, name string) (wizard.Partner, error) {
	if f.err != nil {
		return wizard.Partner{}, f.err
	}
	t, ok := f.types[number]
	if !ok {
		t = selection.PartnerNotFound
	}
	return wizard.Partner{Number: number, Name: name, Type: t}, nil
}

type fakeJournal struct {
	mu     sync.Mutex
	events []auditdom.Event
}

func (f *fakeJournal) Record(ev auditdom.Event) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, ev)
}

func (f *fakeJournal) actions() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.events))
	for _, e := range f.events {
		out = append(out, e.Action)
	}
	return out
}

type fixture struct {
	svc      *Svc
	regs     *fakeRegs
	partners *fakePartners
	journal  *fakeJournal
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	f := fixture{
		regs: &fakeRegs{user: &wizard.User{ID: "s1", StudentNumber: "7001", FirstName: "Ada", Graduation: selection.GraduationBA}},
		partners: &fakePartners{types: map[string]selection.PartnerType{
			"7002": selection.PartnerNotRegistered,
			"7003": selection.PartnerHasPartner,
		}},
		journal: &fakeJournal{},
	}
	f.svc = New(domain.Ports{Registrations: f.regs, Partners: f.partners, Journal: f.journal}, Config{})
	f.svc.spawn = func(fn func()) { fn() }
	return f
}

// ready starts a session for s1 and lands both loads
func (f fixture) ready(t *testing.T) string {
	t.Helper()
	s, err := f.svc.Start(context.Background(), "s1")
	require.NoError(t, err)
	return s.ID
}

func TestNew_PanicsWithoutPorts(t *testing.T) {
	require.Panics(t, func() { New(domain.Ports{}, Config{}) })
	require.Panics(t, func() { New(domain.Ports{Registrations: &fakeRegs{}}, Config{}) })
}

func TestStart_LoadsRegistrationAndUser(t *testing.T) {
	f := newFixture(t)
	s, err := f.svc.Start(context.Background(), "s1")
	require.NoError(t, err)
	require.NotEmpty(t, s.ID)
	// the returned view is taken before the loads land
	require.True(t, s.Registration.Loading)

	got, err := f.svc.Get(context.Background(), s.ID)
	require.NoError(t, err)
	require.True(t, got.Registration.Loaded)
	require.Equal(t, "WS25", got.Registration.Data.Semester)
	require.True(t, got.User.Loaded)
	require.Equal(t, selection.GraduationBA, got.Graduation, "graduation seeded from the user record")
	require.Len(t, got.Available, 2)
}

func TestStart_Anonymous(t *testing.T) {
	f := newFixture(t)
	s, err := f.svc.Start(context.Background(), "")
	require.NoError(t, err)
	got, err := f.svc.Get(context.Background(), s.ID)
	require.NoError(t, err)
	require.Equal(t, loadstate.PhaseIdle, got.User.Phase)

	_, err = f.svc.LoadUser(context.Background(), s.ID)
	require.True(t, perr.IsCode(err, perr.ErrorCodeConflict))
}

func TestLoadRegistration_RetryAfterFailure(t *testing.T) {
	f := newFixture(t)
	f.regs.regErr = errors.New("db down")
	id := f.ready(t)

	got, err := f.svc.Get(context.Background(), id)
	require.NoError(t, err)
	require.True(t, got.Registration.Failed())

	f.regs.mu.Lock()
	f.regs.regErr = nil
	f.regs.mu.Unlock()
	_, err = f.svc.LoadRegistration(context.Background(), id)
	require.NoError(t, err)
	got, _ = f.svc.Get(context.Background(), id)
	require.True(t, got.Registration.Loaded)
}

func TestHappyPath_SubmitsAndLocks(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.ready(t)

	_, err := f.svc.SelectInstitutes(ctx, id, []int64{1, 2})
	require.NoError(t, err)
	_, err = f.svc.CheckPartner(ctx, id, "7002", "Bob Builder")
	require.NoError(t, err)
	_, err = f.svc.SetNotes(ctx, id, "mornings")
	require.NoError(t, err)

	s, err := f.svc.Get(ctx, id)
	require.NoError(t, err)
	require.Equal(t, selection.PartnerNotRegistered, s.PartnerType)
	require.True(t, s.CanAdvance)

	_, err = f.svc.SetStep(ctx, id, wizard.StepEnd)
	require.NoError(t, err)
	s, err = f.svc.Submit(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, s.Submitted)

	require.Len(t, f.regs.subs, 1)
	sub := f.regs.subs[0]
	require.Equal(t, "s1", sub.StudentID)
	require.Equal(t, []int64{1, 2}, sub.InstituteIDs)
	require.Equal(t, "7002", sub.PartnerNumber)
	require.Equal(t, "mornings", sub.Notes)
	require.Equal(t, id, sub.SessionID)

	_, err = f.svc.SetNotes(ctx, id, "late change")
	require.True(t, perr.IsCode(err, perr.ErrorCodeConflict))
	_, err = f.svc.Submit(ctx, id)
	require.True(t, perr.IsCode(err, perr.ErrorCodeConflict))

	acts := f.journal.actions()
	require.Equal(t, actionStart, acts[0])
	require.Equal(t, actionSubmit, acts[len(acts)-1])
	require.Contains(t, acts, string(wizard.TypeCheckPartnerSuccess))
}

func TestGating(t *testing.T) {
	ctx := context.Background()

	t.Run("institutes need a loaded registration", func(t *testing.T) {
		f := newFixture(t)
		f.svc.spawn = func(func()) {} // loads never land
		s, err := f.svc.Start(ctx, "")
		require.NoError(t, err)
		_, err = f.svc.SelectInstitutes(ctx, s.ID, []int64{1})
		require.True(t, perr.IsCode(err, perr.ErrorCodeConflict))
	})

	t.Run("institutes need a graduation", func(t *testing.T) {
		f := newFixture(t)
		s, _ := f.svc.Start(ctx, "")
		_, err := f.svc.SelectInstitutes(ctx, s.ID, []int64{1})
		require.True(t, perr.IsCode(err, perr.ErrorCodeConflict))
	})

	t.Run("unoffered institute", func(t *testing.T) {
		f := newFixture(t)
		id := f.ready(t)
		_, err := f.svc.SelectInstitutes(ctx, id, []int64{1, 3})
		require.True(t, perr.IsCode(err, perr.ErrorCodeValidation))
	})

	t.Run("too many for LA", func(t *testing.T) {
		f := newFixture(t)
		id := f.ready(t)
		_, err := f.svc.SetGraduation(ctx, id, selection.GraduationLA)
		require.NoError(t, err)
		_, err = f.svc.SelectInstitutes(ctx, id, []int64{1, 3})
		require.True(t, perr.IsCode(err, perr.ErrorCodeValidation))
		_, err = f.svc.SelectInstitutes(ctx, id, []int64{3})
		require.NoError(t, err)
	})

	t.Run("main needs graduation", func(t *testing.T) {
		f := newFixture(t)
		s, _ := f.svc.Start(ctx, "")
		_, err := f.svc.SetStep(ctx, s.ID, wizard.StepMain)
		require.True(t, perr.IsCode(err, perr.ErrorCodeConflict))
		_, err = f.svc.SetStep(ctx, s.ID, "nowhere")
		require.True(t, perr.IsCode(err, perr.ErrorCodeValidation))
	})

	t.Run("end needs a complete registration", func(t *testing.T) {
		f := newFixture(t)
		id := f.ready(t)
		_, err := f.svc.SetStep(ctx, id, wizard.StepEnd)
		require.True(t, perr.IsCode(err, perr.ErrorCodeConflict))
		_, err = f.svc.Submit(ctx, id)
		require.True(t, perr.IsCode(err, perr.ErrorCodeConflict))
	})

	t.Run("submit needs a user", func(t *testing.T) {
		f := newFixture(t)
		s, _ := f.svc.Start(ctx, "")
		id := s.ID
		_, _ = f.svc.SetGraduation(ctx, id, selection.GraduationLA)
		_, _ = f.svc.SelectInstitutes(ctx, id, []int64{3})
		_, _ = f.svc.SetNoPartner(ctx, id, true)
		_, err := f.svc.SetStep(ctx, id, wizard.StepEnd)
		require.NoError(t, err)
		_, err = f.svc.Submit(ctx, id)
		require.True(t, perr.IsCode(err, perr.ErrorCodeConflict))
	})

	t.Run("unknown graduation", func(t *testing.T) {
		f := newFixture(t)
		id := f.ready(t)
		_, err := f.svc.SetGraduation(ctx, id, "PhD")
		require.True(t, perr.IsCode(err, perr.ErrorCodeValidation))
	})
}

func TestCheckPartner_RejectsSelf(t *testing.T) {
	f := newFixture(t)
	id := f.ready(t)
	_, err := f.svc.CheckPartner(context.Background(), id, " 7001 ", "Ada")
	require.True(t, perr.IsCode(err, perr.ErrorCodeInvalidArgument))
}

func TestCheckPartner_FailureLands(t *testing.T) {
	f := newFixture(t)
	f.partners.err = errors.New("timeout")
	id := f.ready(t)
	_, err := f.svc.CheckPartner(context.Background(), id, "7002", "Bob")
	require.NoError(t, err)
	s, _ := f.svc.Get(context.Background(), id)
	require.True(t, s.Partner.Failed())
	require.False(t, s.PartnerAcceptable)
}

func TestCheckPartner_LateAnswerForSupersededLookupIsDropped(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.ready(t)

	var jobs []func()
	f.svc.spawn = func(fn func()) { jobs = append(jobs, fn) }

	_, err := f.svc.CheckPartner(ctx, id, "7003", "Cy")
	require.NoError(t, err)
	_, err = f.svc.CheckPartner(ctx, id, "7002", "Bob")
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	jobs[0]() // answer for 7003 arrives after the user retyped
	s, _ := f.svc.Get(ctx, id)
	require.True(t, s.Partner.Loading)

	jobs[1]()
	s, _ = f.svc.Get(ctx, id)
	require.Equal(t, selection.PartnerNotRegistered, s.PartnerType)
}

func TestSessions_NotFoundAndEnd(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Get(ctx, "nope")
	require.True(t, perr.IsCode(err, perr.ErrorCodeNotFound))

	id := f.ready(t)
	require.NoError(t, f.svc.End(ctx, id))
	_, err = f.svc.Get(ctx, id)
	require.True(t, perr.IsCode(err, perr.ErrorCodeNotFound))
	require.True(t, perr.IsCode(f.svc.End(ctx, id), perr.ErrorCodeNotFound))
}

func TestEvents_Disabled(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.Events(context.Background(), "x", 10)
	require.True(t, perr.IsCode(err, perr.ErrorCodeUnavailable))
}

func TestDetail(t *testing.T) {
	require.Equal(t, "1,2", detail(wizard.UpdateSelectedInstitutes{Institutes: []wizard.Institute{{ID: 1}, {ID: 2}}}))
	require.Equal(t, "LA", detail(wizard.UpdateGraduation{Graduation: selection.GraduationLA}))
	require.Equal(t, "", detail(wizard.CheckPartner{Number: "7002", Name: "Bob"}), "no personal data in the journal")
	require.Equal(t, "unavailable", detail(wizard.LoadRegistrationFail{Reason: "unavailable"}))
}

func TestFailureDetail_JournalsCodeOnly(t *testing.T) {
	f := newFixture(t)
	f.regs.user = nil
	f.partners.err = perr.Unavailablef("partner lookup for %s timed out", "7002")
	id, err := f.svc.Start(context.Background(), "s1234567")
	require.NoError(t, err)
	_, err = f.svc.CheckPartner(context.Background(), id.ID, "7002", "Bob")
	require.NoError(t, err)

	got := map[string]string{}
	f.journal.mu.Lock()
	for _, ev := range f.journal.events {
		got[ev.Action] = ev.Detail
		require.NotContains(t, ev.Detail, "s1234567")
		require.NotContains(t, ev.Detail, "7002")
	}
	f.journal.mu.Unlock()
	require.Equal(t, "not_found", got[string(wizard.TypeLoadUserFail)])
	require.Equal(t, "unavailable", got[string(wizard.TypeCheckPartnerFail)])
}

func TestSessions_ExpiryIsJournaled(t *testing.T) {
	journal := &fakeJournal{}
	svc := New(domain.Ports{Registrations: &fakeRegs{}, Partners: &fakePartners{}, Journal: journal},
		Config{SessionTTL: 40 * time.Millisecond})
	svc.spawn = func(fn func()) { fn() }

	idle, err := svc.Start(context.Background(), "")
	require.NoError(t, err)
	ended, err := svc.Start(context.Background(), "")
	require.NoError(t, err)
	require.NoError(t, svc.End(context.Background(), ended.ID))

	require.Eventually(t, func() bool {
		journal.mu.Lock()
		defer journal.mu.Unlock()
		for _, ev := range journal.events {
			if ev.Action == actionExpire && ev.SessionID == idle.ID {
				return true
			}
		}
		return false
	}, time.Second, 10*time.Millisecond)

	_, err = svc.Get(context.Background(), idle.ID)
	require.True(t, perr.IsCode(err, perr.ErrorCodeNotFound))

	journal.mu.Lock()
	defer journal.mu.Unlock()
	for _, ev := range journal.events {
		if ev.SessionID == ended.ID {
			require.NotEqual(t, actionExpire, ev.Action, "an ended session is not expired")
		}
	}
}

func TestSetNotes_DropsControlCharacters(t *testing.T) {
	f := newFixture(t)
	id := f.ready(t)
	s, err := f.svc.SetNotes(context.Background(), id, "early\x00 slot\r\nplease\x1b")
	require.NoError(t, err)
	require.Equal(t, "early slot\r\nplease", s.Notes)
}
