package module

import (
	"time"

	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/platform/config"
)

// Options controls partner matching
type Options struct {
	Threshold float64
	CacheTTL  time.Duration
}

// FromConfig reads with PARTNERS_ prefix
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("PARTNERS_")
	return Options{
		Threshold: c.MayFloat64("NAME_THRESHOLD", 0.8),
		CacheTTL:  c.MayDuration("CACHE_TTL", time.Minute),
	}
}
