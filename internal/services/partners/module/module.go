// Package module wires the partners service and exposes its ports
package module

import (
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/modkit"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/modkit/httpkit"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/services/partners/domain"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/services/partners/repo"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/services/partners/service"
)

// Ports holds the ports exposed by the partners module
type Ports struct {
	Partners domain.Port
}

// Module defines the partners module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs the module; zero override fields keep the configured values
func New(deps modkit.Deps, overrides Options) *Module {
	opts := FromConfig(deps.Cfg)
	if overrides.Threshold != 0 {
		opts.Threshold = overrides.Threshold
	}
	if overrides.CacheTTL != 0 {
		opts.CacheTTL = overrides.CacheTTL
	}

	svc := service.New(deps.PG, repo.NewPG(), service.Config{
		Threshold: opts.Threshold,
		CacheTTL:  opts.CacheTTL,
	})
	return &Module{deps: deps, ports: Ports{Partners: svc}}
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// Name returns the module name
func (m *Module) Name() string { return "partners" }

// MountRoutes mounts nothing
func (m *Module) MountRoutes(_ httpkit.Router) {}
