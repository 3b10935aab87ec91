// Package module is the contract api.Mount wires modules through
// it sits apart from modkit so a module can export its own ports type without an import cycle
package module

import (
	phttp "github.com/PhysikOnline-FFM/fpraktikum2.0/internal/platform/net/http"
)

// Module mounts routes and exposes ports for other modules
// port-only modules mount nothing, route-only modules expose nil ports
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
