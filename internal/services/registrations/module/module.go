// Package module wires the registrations service and exposes its ports
package module

import (
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/modkit"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/modkit/httpkit"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/services/registrations/domain"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/services/registrations/repo"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/services/registrations/service"
)

// Ports holds the ports exposed by the registrations module
type Ports struct {
	Registrations domain.Port
}

// Module defines the registrations module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs the module; zero override fields keep the configured values
func New(deps modkit.Deps, overrides Options) *Module {
	opts := FromConfig(deps.Cfg)
	if overrides.CurrentTTL != 0 {
		opts.CurrentTTL = overrides.CurrentTTL
	}

	svc := service.New(deps.PG, repo.NewPG(), service.Config{CurrentTTL: opts.CurrentTTL})
	return &Module{deps: deps, ports: Ports{Registrations: svc}}
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// Name returns the module name
func (m *Module) Name() string { return "registrations" }

// MountRoutes mounts nothing, the wizard module owns the HTTP surface
func (m *Module) MountRoutes(_ httpkit.Router) {}
