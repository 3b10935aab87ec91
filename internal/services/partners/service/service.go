// Package service classifies partner lookups
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/core/normalize"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/core/selection"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/core/wizard"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/modkit/repokit"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/platform/cache"
	perr "github.com/PhysikOnline-FFM/fpraktikum2.0/internal/platform/errors"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/platform/logger"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/services/partners/domain"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/services/partners/repo"
)

// Config tunes matching and caching
type Config struct {
	// Threshold is the minimum name similarity in [0,1]
	Threshold float64
	// CacheTTL bounds how stale a classification may be
	CacheTTL time.Duration
}

// Service defines the service contract for partners
type Service interface{ domain.Port }

// Svc implements the Service interface
type Svc struct {
	repo      repo.Repo
	threshold float64
	results   *cache.TTL[selection.PartnerType]
}

// New creates a partners service
func New(db repokit.Queryer, binder repokit.Binder[repo.Repo], cfg Config) *Svc {
	if db == nil {
		panic("partners.Service requires a non nil Queryer")
	}
	if binder == nil {
		panic("partners.Service requires a non nil Repo binder")
	}
	if cfg.Threshold <= 0 || cfg.Threshold > 1 {
		cfg.Threshold = 0.8
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = time.Minute
	}
	return &Svc{
		repo:      binder.Bind(db),
		threshold: cfg.Threshold,
		results:   cache.New[selection.PartnerType]("partners", cfg.CacheTTL, 2*cfg.CacheTTL),
	}
}

// Check classifies the student behind number and name
// the returned Partner echoes the query so callers can match answers to lookups
func (s *Svc) Check(ctx context.Context, number, name string) (wizard.Partner, error) {
	out := wizard.Partner{Number: number, Name: name}
	num := strings.TrimSpace(number)
	if num == "" {
		return out, perr.WithField(perr.InvalidArgf("partner number is required"), "number")
	}
	if normalize.Key(name) == "" {
		return out, perr.WithField(perr.InvalidArgf("partner name is required"), "name")
	}

	key := num + "|" + normalize.Key(name)
	if t, ok := s.results.Get(key); ok {
		out.Type = t
		return out, nil
	}

	row, err := s.repo.ByNumber(ctx, num)
	switch {
	case errors.Is(err, perr.ErrNotFound):
		out.Type = selection.PartnerNotFound
	case err != nil:
		return out, perr.FromPostgres(err, "partner lookup")
	default:
		out.Type = s.classify(row, name)
	}

	s.results.Set(key, out.Type)
	logger.C(ctx).Debug().Str("partner_type", string(out.Type)).Msg("partner checked")
	return out, nil
}

func (s *Svc) classify(row repo.PartnerRow, typed string) selection.PartnerType {
	if !normalize.Matches(typed, row.FirstName+" "+row.LastName, s.threshold) {
		return selection.PartnerNotFound
	}
	switch {
	case row.HasPartner:
		return selection.PartnerHasPartner
	case row.Registered:
		return selection.PartnerRegistered
	default:
		return selection.PartnerNotRegistered
	}
}
