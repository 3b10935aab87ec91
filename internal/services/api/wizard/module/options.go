package module

import (
	"time"

	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/platform/config"
)

// Options controls wizard sessions
type Options struct {
	SessionTTL  time.Duration // idle time before a session is forgotten
	LoadTimeout time.Duration // bound on each background load
}

// FromConfig reads WIZARD_* values from process config/env
func FromConfig(cfg config.Conf) Options {
	wc := cfg.Prefix("WIZARD_")
	return Options{
		SessionTTL:  wc.MayDuration("SESSION_TTL", 30*time.Minute),
		LoadTimeout: wc.MayDuration("LOAD_TIMEOUT", 5*time.Second),
	}
}
