// Package modkit builds API modules from shared deps and options
package modkit

import "github.com/PhysikOnline-FFM/fpraktikum2.0/internal/modkit/module"

// Module is what api.Mount wires, see module.Module
type Module = module.Module
