// Package service contains registration workflows
package service

import (
	"context"
	"errors"
	"time"

	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/core/selection"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/core/wizard"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/modkit/repokit"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/platform/cache"
	perr "github.com/PhysikOnline-FFM/fpraktikum2.0/internal/platform/errors"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/platform/logger"
	ptime "github.com/PhysikOnline-FFM/fpraktikum2.0/internal/platform/time"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/services/registrations/domain"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/services/registrations/repo"
)

const currentKey = "current"

// Config tunes the service
type Config struct {
	// CurrentTTL is how long the open period is served from memory
	CurrentTTL time.Duration
}

// Service defines the service contract for registrations
type Service interface{ domain.Port }

// Svc implements the Service interface
type Svc struct {
	Repo    repo.Repo
	binder  repokit.Binder[repo.Repo]
	db      repokit.TxRunner
	current *cache.TTL[wizard.Registration]
}

// New creates a new registrations service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], cfg Config) *Svc {
	if db == nil {
		panic("registrations.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("registrations.Service requires a non nil Repo binder")
	}
	if cfg.CurrentTTL <= 0 {
		cfg.CurrentTTL = 30 * time.Second
	}
	return &Svc{
		Repo:    binder.Bind(db),
		binder:  binder,
		db:      db,
		current: cache.New[wizard.Registration]("registration-period", cfg.CurrentTTL, 2*cfg.CurrentTTL),
	}
}

// Current returns the open registration period and its institutes
func (s *Svc) Current(ctx context.Context) (wizard.Registration, error) {
	if reg, ok := s.current.Get(currentKey); ok {
		return reg, nil
	}
	per, err := s.Repo.OpenPeriod(ctx)
	if errors.Is(err, perr.ErrNotFound) {
		return wizard.Registration{}, perr.NotFoundf("no open registration period")
	}
	if err != nil {
		return wizard.Registration{}, perr.FromPostgres(err, "load registration period")
	}
	rows, err := s.Repo.Institutes(ctx, per.ID)
	if err != nil {
		return wizard.Registration{}, perr.FromPostgres(err, "load institutes")
	}
	reg := wizard.Registration{
		Semester:   per.Semester,
		Start:      ptime.Ptr(per.StartsAt),
		End:        ptime.Ptr(per.EndsAt),
		Institutes: make([]wizard.Institute, 0, len(rows)),
	}
	for _, r := range rows {
		reg.Institutes = append(reg.Institutes, wizard.Institute{
			ID:           r.ID,
			Name:         r.Name,
			Graduation:   selection.Graduation(r.Graduation),
			SemesterHalf: r.SemesterHalf,
			Places:       r.Places,
		})
	}
	s.current.Set(currentKey, reg)
	return reg, nil
}

// User loads the student record for id
func (s *Svc) User(ctx context.Context, id string) (*wizard.User, error) {
	row, err := s.Repo.Student(ctx, id)
	if errors.Is(err, perr.ErrNotFound) {
		return nil, perr.NotFoundf("user %s not found", id)
	}
	if err != nil {
		return nil, perr.FromPostgres(err, "load user")
	}
	return &wizard.User{
		ID:            row.ID,
		StudentNumber: row.StudentNumber,
		FirstName:     row.FirstName,
		LastName:      row.LastName,
		Email:         row.Email,
		Graduation:    selection.Graduation(row.Graduation),
		Notes:         row.Notes,
	}, nil
}

// Submit stores sub inside one transaction
// the selection is checked again here, the wizard gate is not trusted
func (s *Svc) Submit(ctx context.Context, sub domain.Submission) (domain.Receipt, error) {
	if _, ok := selection.ParseGraduation(string(sub.Graduation)); !ok {
		return domain.Receipt{}, perr.Validationf("graduation", "unknown graduation %q", sub.Graduation)
	}
	ids := uniqueIDs(sub.InstituteIDs)
	if !selection.IsSelectionComplete(sub.Graduation, len(ids)) {
		return domain.Receipt{}, perr.Validationf("institutes",
			"%s needs exactly %d institutes, got %d", sub.Graduation, selection.RequiredInstitutes(sub.Graduation), len(ids))
	}

	var out domain.Receipt
	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)

		per, err := r.OpenPeriod(ctx)
		if errors.Is(err, perr.ErrNotFound) {
			return perr.Closedf("registration is closed")
		}
		if err != nil {
			return err
		}
		if _, err := r.Student(ctx, sub.StudentID); err != nil {
			if errors.Is(err, perr.ErrNotFound) {
				return perr.NotFoundf("user %s not found", sub.StudentID)
			}
			return err
		}
		offered, err := r.Institutes(ctx, per.ID)
		if err != nil {
			return err
		}
		if err := checkOffered(offered, ids, sub.Graduation); err != nil {
			return err
		}

		partnerID, err := resolvePartner(ctx, r, per.ID, sub)
		if err != nil {
			return err
		}

		id, at, err := r.InsertRegistration(ctx, repo.RegistrationRow{
			PeriodID:   per.ID,
			StudentID:  sub.StudentID,
			Graduation: string(sub.Graduation),
			PartnerID:  partnerID,
			Notes:      sub.Notes,
			SessionID:  sub.SessionID,
		})
		if perr.IsDuplicateKey(err) {
			return perr.Conflictf("already registered for %s", per.Semester)
		}
		if err != nil {
			return err
		}
		for _, inst := range ids {
			if err := r.InsertChoice(ctx, id, inst); err != nil {
				return err
			}
			if err := r.TakePlace(ctx, inst); err != nil {
				if errors.Is(err, perr.ErrNotFound) {
					return perr.WithField(perr.Fullf("institute %d has no places left", inst), "institutes")
				}
				return err
			}
		}
		if err := r.UpdateStudent(ctx, sub.StudentID, string(sub.Graduation), sub.Notes); err != nil {
			return err
		}
		out = domain.Receipt{ID: id, Semester: per.Semester, SubmittedAt: at}
		return nil
	})
	if err != nil {
		if _, ok := perr.As(err); ok {
			return domain.Receipt{}, err
		}
		return domain.Receipt{}, perr.FromPostgres(err, "submit registration")
	}

	// places changed
	s.current.Delete(currentKey)
	logger.C(ctx).Info().
		Int64("registration_id", out.ID).
		Str("semester", out.Semester).
		Str("graduation", string(sub.Graduation)).
		Bool("partner", sub.PartnerNumber != "").
		Msg("registration stored")
	return out, nil
}

func resolvePartner(ctx context.Context, r repo.Repo, periodID int64, sub domain.Submission) (string, error) {
	if sub.PartnerNumber == "" {
		return "", nil
	}
	id, err := r.StudentIDByNumber(ctx, sub.PartnerNumber)
	if errors.Is(err, perr.ErrNotFound) {
		return "", perr.WithField(perr.NotFoundf("partner %s not found", sub.PartnerNumber), "partner")
	}
	if err != nil {
		return "", err
	}
	if id == sub.StudentID {
		return "", perr.WithField(perr.InvalidArgf("cannot register with yourself as partner"), "partner")
	}
	taken, err := r.PartnerTaken(ctx, periodID, id)
	if err != nil {
		return "", err
	}
	if taken {
		return "", perr.WithField(perr.Conflictf("partner %s is already registered", sub.PartnerNumber), "partner")
	}
	return id, nil
}

func checkOffered(offered []repo.InstituteRow, ids []int64, g selection.Graduation) error {
	byID := make(map[int64]repo.InstituteRow, len(offered))
	for _, in := range offered {
		byID[in.ID] = in
	}
	for _, id := range ids {
		in, ok := byID[id]
		if !ok || (in.Graduation != "" && selection.Graduation(in.Graduation) != g) {
			return perr.Validationf("institutes", "institute %d is not offered to %s", id, g)
		}
	}
	return nil
}

func uniqueIDs(in []int64) []int64 {
	seen := make(map[int64]struct{}, len(in))
	out := make([]int64, 0, len(in))
	for _, id := range in {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
