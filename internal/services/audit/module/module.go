// Package module wires the audit journal and exposes its ports
package module

import (
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/modkit"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/modkit/httpkit"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/services/audit/domain"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/services/audit/repo"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/services/audit/service"
)

// Ports holds the ports exposed by the audit module
type Ports struct {
	Journal domain.Journal
	Reader  domain.Reader
	Worker  domain.WorkerPort
}

// Module defines the audit module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs the module; without clickhouse the journal drops events
func New(deps modkit.Deps, overrides Options) *Module {
	opts := FromConfig(deps.Cfg)
	if overrides.Buffer != 0 {
		opts.Buffer = overrides.Buffer
	}
	if overrides.BatchSize != 0 {
		opts.BatchSize = overrides.BatchSize
	}
	if overrides.FlushInterval != 0 {
		opts.FlushInterval = overrides.FlushInterval
	}

	var r repo.Repo
	if deps.CH != nil {
		r = repo.NewCH(deps.CH)
	}
	svc := service.New(r, service.Config{
		Buffer:        opts.Buffer,
		BatchSize:     opts.BatchSize,
		FlushInterval: opts.FlushInterval,
	})
	return &Module{deps: deps, ports: Ports{Journal: svc, Reader: svc, Worker: svc}}
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// Name returns the module name
func (m *Module) Name() string { return "audit" }

// MountRoutes mounts nothing, events are served by the wizard module
func (m *Module) MountRoutes(_ httpkit.Router) {}
