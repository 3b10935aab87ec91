// Package errors is the coded error every layer returns
// handlers map the code to a status, the audit journal records its name
//
// import it as perr
package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
)

// ErrorCode classifies an error for clients and logs
// the numbers go over the wire, only ever append
type ErrorCode uint16

// Codes, in wire order
const (
	ErrorCodeUnknown         ErrorCode = iota // unclassified
	ErrorCodePanic                            // recovered panic
	ErrorCodeUnavailable                      // dependency down or disabled, retry may help
	ErrorCodeConflict                         // does not fit the current state
	ErrorCodeInvalidArgument                  // well formed but unusable values
	ErrorCodeValidation                       // body failed validation
	ErrorCodeJSON                             // body is not the expected JSON
	ErrorCodeNotFound                         // missing session, student, partner or period
	ErrorCodeDuplicateKey                     // unique constraint hit
	ErrorCodeDB                               // any other database failure
	ErrorCodeClosed                           // no registration period is open
	ErrorCodeFull                             // an institute has no places left
)

var codeNames = [...]string{
	ErrorCodeUnknown:         "unknown",
	ErrorCodePanic:           "panic",
	ErrorCodeUnavailable:     "unavailable",
	ErrorCodeConflict:        "conflict",
	ErrorCodeInvalidArgument: "invalid_argument",
	ErrorCodeValidation:      "validation",
	ErrorCodeJSON:            "json",
	ErrorCodeNotFound:        "not_found",
	ErrorCodeDuplicateKey:    "duplicate_key",
	ErrorCodeDB:              "db",
	ErrorCodeClosed:          "closed",
	ErrorCodeFull:            "full",
}

// String is the snake case name, safe to log and journal
func (c ErrorCode) String() string {
	if int(c) < len(codeNames) {
		return codeNames[c]
	}
	return fmt.Sprintf("code_%d", uint16(c))
}

// HTTPStatus is the reply status for c
func (c ErrorCode) HTTPStatus() int {
	switch c {
	case ErrorCodeValidation, ErrorCodeJSON:
		return http.StatusBadRequest
	case ErrorCodeNotFound:
		return http.StatusNotFound
	case ErrorCodeConflict, ErrorCodeDuplicateKey, ErrorCodeClosed, ErrorCodeFull:
		return http.StatusConflict
	case ErrorCodeInvalidArgument:
		return http.StatusUnprocessableEntity
	case ErrorCodeUnavailable:
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// ErrNotFound is what the store helpers return for zero rows
var ErrNotFound = New(ErrorCodeNotFound, "not found")

// Error is a message with a code, optionally naming the input field at fault
type Error struct {
	code  ErrorCode
	msg   string
	field string
	cause error
}

func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.cause == nil:
		return e.msg
	}
	return e.msg + ": " + e.cause.Error()
}

// Unwrap returns the cause
func (e *Error) Unwrap() error { return e.cause }

// Code returns the code
func (e *Error) Code() ErrorCode { return e.code }

// Field names the offending input, empty when none
func (e *Error) Field() string { return e.field }

// Wire is the error part of a reply
type Wire struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Field   string    `json:"field,omitempty"`
}

// WireFrom builds the reply fields for err
// causes stay server side, foreign errors keep their text
func WireFrom(err error) Wire {
	if err == nil {
		return Wire{}
	}
	e, ok := As(err)
	if !ok {
		return Wire{Code: ErrorCodeUnknown, Message: err.Error()}
	}
	return Wire{Code: e.code, Message: e.msg, Field: e.field}
}

// As returns the outermost *Error in err's chain
func As(err error) (*Error, bool) {
	var e *Error
	ok := stderrs.As(err, &e)
	return e, ok
}

// CodeOf is err's code, ErrorCodeUnknown for foreign errors
func CodeOf(err error) ErrorCode {
	if e, ok := As(err); ok {
		return e.code
	}
	return ErrorCodeUnknown
}

// IsCode reports whether err carries code
func IsCode(err error, code ErrorCode) bool { return CodeOf(err) == code }

// HTTPStatus is the reply status for any error
func HTTPStatus(err error) int { return CodeOf(err).HTTPStatus() }

// WithField returns a copy of err that names field, foreign errors come back unchanged
func WithField(err error, field string) error {
	e, ok := As(err)
	if !ok {
		return err
	}
	cp := *e
	cp.field = field
	return &cp
}

// New returns a coded error
func New(code ErrorCode, msg string) error { return &Error{code: code, msg: msg} }

// Wrap puts code and msg in front of cause
func Wrap(cause error, code ErrorCode, msg string) error {
	return &Error{code: code, msg: msg, cause: cause}
}

func newf(code ErrorCode, format string, a []any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...)}
}

// NotFoundf reports a missing session, student or period
func NotFoundf(format string, a ...any) error { return newf(ErrorCodeNotFound, format, a) }

// InvalidArgf reports a value that cannot be used
func InvalidArgf(format string, a ...any) error { return newf(ErrorCodeInvalidArgument, format, a) }

// Validationf reports a failed input rule on field
func Validationf(field, format string, a ...any) error {
	return WithField(newf(ErrorCodeValidation, format, a), field)
}

// JSONErrf reports an unreadable body
func JSONErrf(format string, a ...any) error { return newf(ErrorCodeJSON, format, a) }

// Conflictf reports a request the current state rules out
func Conflictf(format string, a ...any) error { return newf(ErrorCodeConflict, format, a) }

// Unavailablef reports a dependency that is down
func Unavailablef(format string, a ...any) error { return newf(ErrorCodeUnavailable, format, a) }

// Closedf reports that no registration period is open
func Closedf(format string, a ...any) error { return newf(ErrorCodeClosed, format, a) }

// Fullf reports an institute without places
func Fullf(format string, a ...any) error { return newf(ErrorCodeFull, format, a) }

// root is the innermost cause
func root(err error) error {
	for {
		next := stderrs.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}
