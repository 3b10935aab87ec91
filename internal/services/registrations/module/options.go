package module

import (
	"time"

	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/platform/config"
)

// Options controls the registrations module
type Options struct {
	CurrentTTL time.Duration
}

// FromConfig reads with REGISTRATIONS_ prefix
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("REGISTRATIONS_")
	return Options{
		CurrentTTL: c.MayDuration("CURRENT_CACHE_TTL", 30*time.Second),
	}
}
