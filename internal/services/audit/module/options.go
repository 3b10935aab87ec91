package module

import (
	"time"

	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/platform/config"
)

// Options controls the audit journal
type Options struct {
	Buffer        int
	BatchSize     int
	FlushInterval time.Duration
}

// FromConfig reads with AUDIT_ prefix
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("AUDIT_")
	return Options{
		Buffer:        c.MayInt("BUFFER", 1024),
		BatchSize:     c.MayInt("BATCH_SIZE", 256),
		FlushInterval: c.MayDuration("FLUSH_INTERVAL", 2*time.Second),
	}
}
