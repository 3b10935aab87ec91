package errors

import (
	"context"
	stderrs "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestErrorCode_HTTPStatus(t *testing.T) {
	cases := map[ErrorCode]int{
		ErrorCodeNotFound:        http.StatusNotFound,
		ErrorCodeInvalidArgument: http.StatusUnprocessableEntity,
		ErrorCodeConflict:        http.StatusConflict,
		ErrorCodeDuplicateKey:    http.StatusConflict,
		ErrorCodeClosed:          http.StatusConflict,
		ErrorCodeFull:            http.StatusConflict,
		ErrorCodeValidation:      http.StatusBadRequest,
		ErrorCodeJSON:            http.StatusBadRequest,
		ErrorCodeUnavailable:     http.StatusServiceUnavailable,
		ErrorCodeDB:              http.StatusInternalServerError,
		ErrorCodePanic:           http.StatusInternalServerError,
		ErrorCodeUnknown:         http.StatusInternalServerError,
	}
	for code, want := range cases {
		require.Equal(t, want, code.HTTPStatus(), code.String())
	}
}

func TestErrorCode_String(t *testing.T) {
	require.Equal(t, "not_found", ErrorCodeNotFound.String())
	require.Equal(t, "full", ErrorCodeFull.String())
	require.Equal(t, "closed", ErrorCodeClosed.String())
	require.Equal(t, "code_999", ErrorCode(999).String())
}

func TestWithField_CopiesAndKeepsCode(t *testing.T) {
	base := Fullf("institute %d has no places left", 3)
	withField := WithField(base, "institutes")

	e, ok := As(withField)
	require.True(t, ok)
	require.Equal(t, "institutes", e.Field())
	require.Equal(t, ErrorCodeFull, e.Code())

	orig, _ := As(base)
	require.Empty(t, orig.Field(), "original must not change")

	foreign := stderrs.New("boom")
	require.Same(t, foreign, WithField(foreign, "x"))
}

func TestWrap_UnwrapsToCause(t *testing.T) {
	cause := context.DeadlineExceeded
	err := fmt.Errorf("load user: %w", Wrap(cause, ErrorCodeUnavailable, "registration lookup"))

	require.Equal(t, ErrorCodeUnavailable, CodeOf(err))
	require.Equal(t, http.StatusServiceUnavailable, HTTPStatus(err))
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.Equal(t, cause, root(err))
	require.Equal(t, "registration lookup: context deadline exceeded", stderrs.Unwrap(err).Error())
}

func TestWireFrom(t *testing.T) {
	require.Equal(t, Wire{}, WireFrom(nil))

	w := WireFrom(Validationf("graduation", "unknown graduation %q", "PhD"))
	require.Equal(t, Wire{Code: ErrorCodeValidation, Message: `unknown graduation "PhD"`, Field: "graduation"}, w)

	// the cause stays server side
	w = WireFrom(Wrap(stderrs.New("dial tcp 10.0.0.5:5432"), ErrorCodeDB, "submit registration"))
	require.Equal(t, "submit registration", w.Message)

	w = WireFrom(stderrs.New("plain"))
	require.Equal(t, ErrorCodeUnknown, w.Code)
}

func TestErrNotFound_IsMatchable(t *testing.T) {
	err := fmt.Errorf("student s1: %w", ErrNotFound)
	require.ErrorIs(t, err, ErrNotFound)
	require.True(t, IsCode(err, ErrorCodeNotFound))
}

func TestFromPostgres(t *testing.T) {
	require.NoError(t, FromPostgres(nil, "x"))

	dup := &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "registrations_period_id_student_id_key"}
	err := FromPostgres(dup, "submit registration")
	require.True(t, IsDuplicateKey(err))
	require.Equal(t, ErrorCodeDuplicateKey, CodeOf(err))

	notNull := &pgconn.PgError{Code: pgNotNullViolation, ColumnName: "graduation"}
	e, ok := As(FromPostgres(notNull, "update student"))
	require.True(t, ok)
	require.Equal(t, ErrorCodeValidation, e.Code())
	require.Equal(t, "graduation", e.Field())

	fk := &pgconn.PgError{Code: pgForeignKeyViolation}
	require.Equal(t, ErrorCodeInvalidArgument, CodeOf(FromPostgres(fk, "insert choice")))

	down := &pgconn.PgError{Code: pgCannotConnectNow}
	require.Equal(t, ErrorCodeUnavailable, CodeOf(FromPostgres(down, "ping")))

	require.Equal(t, ErrorCodeDB, CodeOf(FromPostgres(stderrs.New("conn reset"), "x")))
}

func TestIsRetryable(t *testing.T) {
	require.False(t, IsRetryable(nil))
	require.True(t, IsRetryable(&pgconn.PgError{Code: pgSerializationFailure}))
	require.True(t, IsRetryable(fmt.Errorf("take place: %w", &pgconn.PgError{Code: pgDeadlock})))
	require.True(t, IsRetryable(stderrs.New("commit unexpectedly resulted in rollback")))
	require.False(t, IsRetryable(&pgconn.PgError{Code: pgUniqueViolation}))
	require.False(t, IsRetryable(context.Canceled))
	require.False(t, IsRetryable(stderrs.New("conn reset")))
}
