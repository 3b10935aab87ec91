// Package service runs wizard sessions: it gates actions, applies them through the
// reducer and performs the loads the actions ask for
package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/core/normalize"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/core/selection"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/core/wizard"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/platform/cache"
	perr "github.com/PhysikOnline-FFM/fpraktikum2.0/internal/platform/errors"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/platform/logger"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/services/api/wizard/domain"
	auditdom "github.com/PhysikOnline-FFM/fpraktikum2.0/internal/services/audit/domain"
	regdom "github.com/PhysikOnline-FFM/fpraktikum2.0/internal/services/registrations/domain"

	"github.com/google/uuid"
)

// Journal actions that are not reducer actions
const (
	actionStart  = "[Session] Start"
	actionEnd    = "[Session] End"
	actionExpire = "[Session] Expire"
	actionSubmit = "[Registration] Submit"
)

// Config tunes sessions and loads
type Config struct {
	// SessionTTL is the idle time after which a session is forgotten
	SessionTTL time.Duration
	// LoadTimeout bounds each background load
	LoadTimeout time.Duration
}

// Service defines the service contract for the wizard
type Service interface{ domain.ServicePort }

// Svc implements Service
type Svc struct {
	ports    domain.Ports
	cfg      Config
	sessions *cache.TTL[*session]

	// seams
	spawn func(func())
	newID func() string
}

var _ Service = (*Svc)(nil)

type nopJournal struct{}

func (nopJournal) Record(auditdom.Event) {}

// New creates the wizard service
func New(p domain.Ports, cfg Config) *Svc {
	if p.Registrations == nil {
		panic("wizard.Service requires a Registrations port")
	}
	if p.Partners == nil {
		panic("wizard.Service requires a Partners port")
	}
	if p.Journal == nil {
		p.Journal = nopJournal{}
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 30 * time.Minute
	}
	if cfg.LoadTimeout <= 0 {
		cfg.LoadTimeout = 5 * time.Second
	}
	s := &Svc{
		ports:    p,
		cfg:      cfg,
		sessions: cache.New[*session]("wizard-sessions", cfg.SessionTTL, cfg.SessionTTL/2),
		spawn:    func(f func()) { go f() },
		newID:    uuid.NewString,
	}
	s.sessions.OnEvicted(s.expired)
	return s
}

// expired journals sessions the cache dropped for idling, End has journaled the rest
func (s *Svc) expired(id string, sess *session) {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.ended {
		return
	}
	sess.ended = true
	s.record(sess, actionExpire, "")
	logger.Named("wizard").Info().Str("session_id", id).Uint64("version", sess.state.Version).Msg("wizard session expired")
}

// Start opens a session and starts loading the registration period and the user
func (s *Svc) Start(ctx context.Context, userID string) (domain.Session, error) {
	sess := &session{id: s.newID(), userID: strings.TrimSpace(userID), state: wizard.Initial()}
	s.sessions.Set(sess.id, sess)
	logger.C(ctx).Info().Str("session_id", sess.id).Bool("user", sess.userID != "").Msg("wizard session started")

	return s.act(ctx, sess.id, func(sess *session) error {
		s.record(sess, actionStart, "")
		s.loadRegistration(ctx, sess)
		if sess.userID != "" {
			s.loadUser(ctx, sess)
		}
		return nil
	})
}

// Get returns the current view of a session and keeps it alive
func (s *Svc) Get(ctx context.Context, id string) (domain.Session, error) {
	return s.act(ctx, id, func(*session) error { return nil })
}

// End forgets a session
func (s *Svc) End(ctx context.Context, id string) error {
	sess, err := s.lookup(id)
	if err != nil {
		return err
	}
	sess.mu.Lock()
	s.record(sess, actionEnd, "")
	sess.ended = true
	sess.mu.Unlock()
	s.sessions.Delete(id)
	return nil
}

// LoadRegistration issues a fresh registration load, eg after a failure
func (s *Svc) LoadRegistration(ctx context.Context, id string) (domain.Session, error) {
	return s.act(ctx, id, func(sess *session) error {
		s.loadRegistration(ctx, sess)
		return nil
	})
}

// LoadUser issues a fresh user load
func (s *Svc) LoadUser(ctx context.Context, id string) (domain.Session, error) {
	return s.act(ctx, id, func(sess *session) error {
		if sess.userID == "" {
			return perr.Conflictf("session has no user")
		}
		s.loadUser(ctx, sess)
		return nil
	})
}

// SetGraduation picks the track, a change clears the institute selection
func (s *Svc) SetGraduation(ctx context.Context, id string, g selection.Graduation) (domain.Session, error) {
	g, ok := selection.ParseGraduation(string(g))
	if !ok {
		return domain.Session{}, perr.Validationf("graduation", "unknown graduation")
	}
	return s.mutate(ctx, id, func(sess *session) error {
		s.dispatch(sess, wizard.UpdateGraduation{Graduation: g})
		return nil
	})
}

// SelectInstitutes replaces the selection with offered institutes only
func (s *Svc) SelectInstitutes(ctx context.Context, id string, ids []int64) (domain.Session, error) {
	return s.mutate(ctx, id, func(sess *session) error {
		st := sess.state
		if !st.Registration.Loaded {
			return perr.Conflictf("registration info is not loaded")
		}
		if st.Graduation == "" {
			return perr.Conflictf("choose a graduation first")
		}
		picked, bad, ok := wizard.IsOffered(st, ids)
		if !ok {
			return perr.Validationf("ids", "institute %d is not offered to %s", bad, st.Graduation)
		}
		if need := selection.RequiredInstitutes(st.Graduation); len(picked) > need {
			return perr.Validationf("ids", "%s picks at most %d institutes", st.Graduation, need)
		}
		s.dispatch(sess, wizard.UpdateSelectedInstitutes{Institutes: picked})
		return nil
	})
}

// CheckPartner starts a partner lookup; the view shows it loading until the answer lands
func (s *Svc) CheckPartner(ctx context.Context, id, number, name string) (domain.Session, error) {
	return s.mutate(ctx, id, func(sess *session) error {
		if u := sess.state.User.Data; u != nil && u.StudentNumber != "" && u.StudentNumber == strings.TrimSpace(number) {
			return perr.WithField(perr.InvalidArgf("you cannot be your own partner"), "number")
		}
		s.dispatch(sess, wizard.CheckPartner{Number: number, Name: name})

		log := logger.C(ctx)
		sess.jobs = append(sess.jobs, func() {
			lctx, cancel := context.WithTimeout(context.Background(), s.cfg.LoadTimeout)
			defer cancel()
			p, err := s.ports.Partners.Check(lctx, number, name)
			if err != nil {
				log.Warn().Err(err).Msg("partner check failed")
				s.complete(sess, wizard.CheckPartnerFail{Number: number, Name: name, Reason: perr.CodeOf(err).String()})
				return
			}
			s.complete(sess, wizard.CheckPartnerSuccess{Partner: p})
		})
		return nil
	})
}

// RemovePartner drops any partner and pending lookup
func (s *Svc) RemovePartner(ctx context.Context, id string) (domain.Session, error) {
	return s.mutate(ctx, id, func(sess *session) error {
		s.dispatch(sess, wizard.RemovePartner{})
		return nil
	})
}

// SetNoPartner toggles registering alone
func (s *Svc) SetNoPartner(ctx context.Context, id string, v bool) (domain.Session, error) {
	return s.mutate(ctx, id, func(sess *session) error {
		s.dispatch(sess, wizard.SetNoPartner{Value: v})
		return nil
	})
}

// SetNotes replaces the notes, control characters other than line breaks and tabs are dropped
func (s *Svc) SetNotes(ctx context.Context, id, notes string) (domain.Session, error) {
	return s.mutate(ctx, id, func(sess *session) error {
		s.dispatch(sess, wizard.UpdateNotes{Notes: normalize.Sanitize(notes)})
		return nil
	})
}

// SetStep moves the wizard; main needs a graduation and end needs a complete registration
func (s *Svc) SetStep(ctx context.Context, id string, step wizard.Step) (domain.Session, error) {
	step, ok := wizard.ParseStep(string(step))
	if !ok {
		return domain.Session{}, perr.Validationf("step", "unknown step")
	}
	return s.mutate(ctx, id, func(sess *session) error {
		switch step {
		case wizard.StepMain:
			if sess.state.Graduation == "" {
				return perr.Conflictf("choose a graduation first")
			}
		case wizard.StepEnd:
			if !wizard.CanAdvance(sess.state) {
				return perr.Conflictf("registration is not complete")
			}
		}
		s.dispatch(sess, wizard.UpdateRegistrationStep{Step: step})
		return nil
	})
}

// Submit stores the registration, the session is read only afterwards
func (s *Svc) Submit(ctx context.Context, id string) (domain.Session, error) {
	return s.mutate(ctx, id, func(sess *session) error {
		st := sess.state
		if st.Step != wizard.StepEnd || !wizard.CanAdvance(st) {
			return perr.Conflictf("registration is not complete")
		}
		if sess.userID == "" || !st.User.Loaded || st.User.Data == nil {
			return perr.Conflictf("no user loaded for this session")
		}
		sub := regdom.Submission{
			StudentID:  sess.userID,
			Graduation: st.Graduation,
			Notes:      st.Notes,
			SessionID:  sess.id,
		}
		for _, in := range st.Selected {
			sub.InstituteIDs = append(sub.InstituteIDs, in.ID)
		}
		if !st.NoPartner && st.Partner.Data != nil {
			sub.PartnerNumber = strings.TrimSpace(st.Partner.Data.Number)
		}

		rc, err := s.ports.Registrations.Submit(ctx, sub)
		if err != nil {
			return err
		}
		sess.submitted = &rc
		s.record(sess, actionSubmit, strconv.FormatInt(rc.ID, 10))
		return nil
	})
}

// Events lists what a session did, newest first
func (s *Svc) Events(ctx context.Context, id string, limit int) ([]auditdom.Event, error) {
	if s.ports.Events == nil {
		return nil, perr.Unavailablef("event journal is disabled")
	}
	return s.ports.Events.Recent(ctx, id, limit)
}

// Registration returns the open period without a session
func (s *Svc) Registration(ctx context.Context) (wizard.Registration, error) {
	return s.ports.Registrations.Current(ctx)
}

func (s *Svc) lookup(id string) (*session, error) {
	sess, ok := s.sessions.GetWithRefresh(id)
	if !ok {
		return nil, perr.NotFoundf("session %s not found or expired", id)
	}
	return sess, nil
}

// act runs fn under the session lock, then starts the jobs fn queued
func (s *Svc) act(_ context.Context, id string, fn func(*session) error) (domain.Session, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return domain.Session{}, err
	}
	sess.mu.Lock()
	err = fn(sess)
	out := sess.snapshot()
	jobs := sess.jobs
	sess.jobs = nil
	sess.mu.Unlock()

	for _, j := range jobs {
		s.spawn(j)
	}
	if err != nil {
		return domain.Session{}, err
	}
	return out, nil
}

// mutate is act for sessions that still accept changes
func (s *Svc) mutate(ctx context.Context, id string, fn func(*session) error) (domain.Session, error) {
	return s.act(ctx, id, func(sess *session) error {
		if sess.submitted != nil {
			return perr.Conflictf("session already submitted")
		}
		return fn(sess)
	})
}

// dispatch applies a with mu held and journals it when the state moved
func (s *Svc) dispatch(sess *session, a wizard.Action) {
	before := sess.state.Version
	sess.state = wizard.Reduce(sess.state, a)
	if sess.state.Version == before {
		return
	}
	s.record(sess, string(a.Type()), detail(a))
}

func (s *Svc) record(sess *session, action, info string) {
	s.ports.Journal.Record(auditdom.Event{
		At:        time.Now(),
		SessionID: sess.id,
		UserID:    sess.userID,
		Action:    action,
		Version:   sess.state.Version,
		Detail:    info,
	})
}

// complete lands the answer of a background job
func (s *Svc) complete(sess *session, a wizard.Action) {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	s.dispatch(sess, a)
}

func (s *Svc) loadRegistration(ctx context.Context, sess *session) {
	s.dispatch(sess, wizard.LoadRegistration{})
	log := logger.C(ctx)
	sess.jobs = append(sess.jobs, func() {
		lctx, cancel := context.WithTimeout(context.Background(), s.cfg.LoadTimeout)
		defer cancel()
		reg, err := s.ports.Registrations.Current(lctx)
		if err != nil {
			log.Warn().Err(err).Msg("registration load failed")
			s.complete(sess, wizard.LoadRegistrationFail{Reason: perr.CodeOf(err).String()})
			return
		}
		s.complete(sess, wizard.LoadRegistrationSuccess{Registration: reg})
	})
}

func (s *Svc) loadUser(ctx context.Context, sess *session) {
	s.dispatch(sess, wizard.LoadUser{})
	log := logger.C(ctx)
	userID := sess.userID
	sess.jobs = append(sess.jobs, func() {
		lctx, cancel := context.WithTimeout(context.Background(), s.cfg.LoadTimeout)
		defer cancel()
		u, err := s.ports.Registrations.User(lctx, userID)
		if err != nil {
			// students without a record are expected, anything else is an outage
			ev := log.Warn()
			if perr.IsCode(err, perr.ErrorCodeNotFound) {
				ev = log.Info()
			}
			ev.Err(err).Msg("user load failed")
			s.complete(sess, wizard.LoadUserFail{Reason: perr.CodeOf(err).String()})
			return
		}
		s.complete(sess, wizard.LoadUserSuccess{User: u})
	})
}
