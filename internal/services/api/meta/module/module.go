// Package module mounts the meta endpoints
package module

import (
	"time"

	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/modkit"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/modkit/httpkit"

	metahttp "github.com/PhysikOnline-FFM/fpraktikum2.0/internal/services/api/meta/http"
)

// Module serves health, readiness, version and the selection rules
type Module struct {
	b    modkit.Built
	deps metahttp.Deps
}

// New builds the meta module, mounted under /meta unless opts say otherwise
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	d := metahttp.Deps{
		ServiceName: deps.Cfg.MayString("SERVICE", "fpraktikum-api"),
		StartedAt:   time.Now(),
		Backends: []metahttp.Backend{
			{Name: "pg", Required: true, Seam: deps.PG},
			{Name: "ch", Seam: deps.CH},
		},
	}
	return &Module{b: b, deps: d}
}

// MountRoutes mounts the meta routes
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { metahttp.Register(rr, m.deps) })
}

// Name returns the module name
func (m *Module) Name() string { return m.b.Name }

// Ports is nil, nothing depends on meta
func (m *Module) Ports() any { return nil }
