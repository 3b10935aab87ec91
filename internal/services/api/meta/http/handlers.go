// Package http serves liveness, readiness, build info and the selection rules
package http

import (
	"context"
	"net/http"
	"time"

	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/core/selection"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/core/version"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/modkit/httpkit"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/platform/logger"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/platform/store"
)

// PingTimeout bounds each readiness ping
var PingTimeout = 2 * time.Second

// Backend is a storage seam readiness reports on
type Backend struct {
	Name string
	// Required backends degrade readiness when missing, optional ones are skipped
	Required bool
	// Seam is pinged when it implements store.Pinger, nil means disabled
	Seam any
}

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Backends    []Backend
}

type handlers struct{ deps Deps }

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}
	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
	httpkit.Get(r, "/rules", h.rules)
}

// Check states
const (
	StatusOK       = "ok"
	StatusFail     = "fail"
	StatusSkipped  = "skipped"
	StatusUnknown  = "unknown"
	StatusDegraded = "degraded"
)

// HealthResponse says the process serves requests
type HealthResponse struct {
	OK      bool   `json:"ok"      example:"true"`
	Service string `json:"service" example:"fpraktikum-api"`
	Started string `json:"started" example:"2025-10-01T08:00:00Z"`
	Now     string `json:"now"     example:"2025-10-01T08:05:00Z"`
}

// ReadyCheck is the outcome for one backend
type ReadyCheck struct {
	Name   string `json:"name"            example:"pg"`
	Status string `json:"status"          example:"ok"`
	Error  string `json:"error,omitempty" example:"context deadline exceeded"`
}

// ReadyResponse is ok, degraded or fail over all backends
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"`
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2025-10-01T08:05:00Z"`
}

// ServiceResponse reports uptime in seconds
type ServiceResponse struct {
	Name    string `json:"name"    example:"fpraktikum-api"`
	Started string `json:"started" example:"2025-10-01T08:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
}

// RuleResponse is the selection rule of one graduation track
type RuleResponse struct {
	Graduation         selection.Graduation `json:"graduation"          example:"LA"`
	RequiredInstitutes int                  `json:"required_institutes" example:"1"`
	ChooseOnlyOne      bool                 `json:"choose_only_one"     example:"true"`
}

func stamp(t time.Time) string { return t.UTC().Format(time.RFC3339) }

// health godoc
// @Summary Liveness
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse "alive"
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{OK: true, Service: h.deps.ServiceName, Started: stamp(h.deps.StartedAt), Now: stamp(time.Now())}, nil
}

// ready godoc
// @Summary Readiness with one check per storage backend
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse "ok, degraded or fail"
// @Router /meta/ready [get]
func (h *handlers) ready(r *http.Request) (any, error) {
	checks := make([]ReadyCheck, 0, len(h.deps.Backends))
	overall := StatusOK
	for _, b := range h.deps.Backends {
		c := ping(r.Context(), b)
		switch {
		case c.Status == StatusFail:
			overall = StatusFail
		case overall == StatusOK && (c.Status == StatusUnknown || c.Status == StatusSkipped && b.Required):
			overall = StatusDegraded
		}
		checks = append(checks, c)
	}
	return ReadyResponse{Status: overall, Checks: checks, Now: stamp(time.Now())}, nil
}

func ping(ctx context.Context, b Backend) ReadyCheck {
	if b.Seam == nil {
		return ReadyCheck{Name: b.Name, Status: StatusSkipped}
	}
	p, ok := b.Seam.(store.Pinger)
	if !ok {
		return ReadyCheck{Name: b.Name, Status: StatusUnknown}
	}
	ctx, cancel := context.WithTimeout(ctx, PingTimeout)
	defer cancel()
	if err := p.Ping(ctx); err != nil {
		logger.C(ctx).Warn().Err(err).Str("backend", b.Name).Msg("readiness ping failed")
		return ReadyCheck{Name: b.Name, Status: StatusFail, Error: err.Error()}
	}
	return ReadyCheck{Name: b.Name, Status: StatusOK}
}

// version godoc
// @Summary Build info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo "ok"
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) { return version.Info(), nil }

// service godoc
// @Summary Service name and uptime
// @Tags Meta
// @Produce json
// @Success 200 {object} ServiceResponse "ok"
// @Router /meta/service [get]
func (h *handlers) service(_ *http.Request) (any, error) {
	return ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: stamp(h.deps.StartedAt),
		Uptime:  int64(time.Since(h.deps.StartedAt) / time.Second),
	}, nil
}

// rules godoc
// @Summary Institute selection rules per graduation track
// @Tags Meta
// @Produce json
// @Success 200 {array} RuleResponse "ok"
// @Router /meta/rules [get]
func (h *handlers) rules(_ *http.Request) (any, error) {
	out := make([]RuleResponse, 0, len(selection.Graduations))
	for _, g := range selection.Graduations {
		out = append(out, RuleResponse{
			Graduation:         g,
			RequiredInstitutes: selection.RequiredInstitutes(g),
			ChooseOnlyOne:      selection.ChooseOnlyOneInstitute(g),
		})
	}
	return out, nil
}
