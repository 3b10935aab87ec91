// Package module wires the registration wizard into the API
package module

import (
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/modkit"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/modkit/httpkit"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/services/api/wizard/domain"
	whttp "github.com/PhysikOnline-FFM/fpraktikum2.0/internal/services/api/wizard/http"
	wsvc "github.com/PhysikOnline-FFM/fpraktikum2.0/internal/services/api/wizard/service"
)

// Ports are the ports the wizard is built from
type Ports = domain.Ports

// Module owns the wizard session endpoints
type Module struct {
	b   modkit.Built
	svc wsvc.Service
}

// New builds the wizard, modkit.WithPorts must carry Registrations and Partners
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("wizard"),
		modkit.WithPrefix("/wizard"),
	}, opts...)...)

	injected, _ := b.Ports.(Ports)
	if injected.Registrations == nil || injected.Partners == nil {
		panic("wizard module requires Registrations and Partners ports")
	}

	cfg := FromConfig(deps.Cfg)
	return &Module{b: b, svc: wsvc.New(injected, wsvc.Config{
		SessionTTL:  cfg.SessionTTL,
		LoadTimeout: cfg.LoadTimeout,
	})}
}

// MountRoutes mounts the wizard routes
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { whttp.Register(rr, m.svc) })
}

// Name returns the module name
func (m *Module) Name() string { return m.b.Name }

// Ports is nil, the wizard is the top of the module graph
func (m *Module) Ports() any { return nil }
