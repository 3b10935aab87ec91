package loadstate

// Phase names the four lifecycle states
type Phase string

const (
	// PhaseIdle is the initial phase before any request
	PhaseIdle Phase = "idle"
	// PhaseLoading means a request is in flight
	PhaseLoading Phase = "loading"
	// PhaseLoaded means the last request succeeded
	PhaseLoaded Phase = "loaded"
	// PhaseFailed means the last request failed
	PhaseFailed Phase = "failed"
)

// Machine pairs a State with its explicit Phase
// State alone cannot tell Failed from Idle since both carry loaded=false loading=false
type Machine[T any] struct {
	State[T]
	Phase Phase `json:"phase"`
}

// NewMachine returns an idle machine holding initial
func NewMachine[T any](initial T) Machine[T] {
	return Machine[T]{State: New(initial), Phase: PhaseIdle}
}

// Apply reduces ev into m and advances the phase
// events that are not valid from the current phase still reduce the State (the reducer is
// total) but only known kinds move the phase
func Apply[T any](m Machine[T], ev Event[T]) Machine[T] {
	m.State = Reduce(m.State, ev)
	switch ev.Kind {
	case KindRequest:
		m.Phase = PhaseLoading
	case KindSuccess:
		m.Phase = PhaseLoaded
	case KindFail:
		m.Phase = PhaseFailed
	}
	return m
}

// Failed reports whether the last load failed
func (m Machine[T]) Failed() bool { return m.Phase == PhaseFailed }

// Reset returns m to idle with initial as data
func Reset[T any](initial T) Machine[T] { return NewMachine(initial) }
