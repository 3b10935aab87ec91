// Package loadstate models the lifecycle of an asynchronously fetched record
//
// A State moves idle -> loading -> loaded|failed and can always be re-entered with a
// request. Reduce is pure: callers own the state value and apply one event at a time
package loadstate

// Kind tags an Event
type Kind string

const (
	// KindRequest marks a load as started
	KindRequest Kind = "request"
	// KindSuccess delivers the loaded payload
	KindSuccess Kind = "success"
	// KindFail reports that the load did not complete
	KindFail Kind = "fail"
)

// Event drives a State transition, Payload is only read for KindSuccess
type Event[T any] struct {
	Kind    Kind
	Payload T
}

// State is the load lifecycle of one record
// Loaded and Loading are never both true
type State[T any] struct {
	Data    T    `json:"data"`
	Loaded  bool `json:"loaded"`
	Loading bool `json:"loading"`
}

// New returns the idle state holding initial
func New[T any](initial T) State[T] {
	return State[T]{Data: initial}
}

// Request is sugar for a request event
func Request[T any]() Event[T] { return Event[T]{Kind: KindRequest} }

// Success is sugar for a success event carrying payload
func Success[T any](payload T) Event[T] { return Event[T]{Kind: KindSuccess, Payload: payload} }

// Fail is sugar for a fail event
func Fail[T any]() Event[T] { return Event[T]{Kind: KindFail} }

// Reduce applies ev to s and returns the next state
// unknown kinds return s unchanged; a failed load keeps the last good Data
func Reduce[T any](s State[T], ev Event[T]) State[T] {
	switch ev.Kind {
	case KindRequest:
		s.Loading = true
		// a reload invalidates the loaded flag so the pair stays exclusive
		s.Loaded = false
		return s
	case KindSuccess:
		s.Data = ev.Payload
		s.Loaded = true
		s.Loading = false
		return s
	case KindFail:
		s.Loaded = false
		s.Loading = false
		return s
	}
	return s
}

// IsLoading reports whether a load is in flight
func IsLoading[T any](s State[T]) bool { return s.Loading }

// IsLoaded reports whether the last load succeeded
func IsLoaded[T any](s State[T]) bool { return s.Loaded }

// Data returns the current (possibly stale) payload
func Data[T any](s State[T]) T { return s.Data }
