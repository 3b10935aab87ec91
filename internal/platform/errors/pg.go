package errors

// Postgres error classification for repos and the store's transaction retry

import (
	"context"
	stderrs "errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes the registration schema can raise
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
	pgStringTooLong       = "22001"
	pgInvalidText         = "22P02"

	pgSerializationFailure = "40001"
	pgDeadlock             = "40P01"
	pgLockNotAvailable     = "55P03"
	pgReadOnly             = "25006"
	pgCannotConnectNow     = "57P03"
)

func pgError(err error) (*pgconn.PgError, bool) {
	var pe *pgconn.PgError
	if stderrs.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

func sqlState(err error) string {
	if pe, ok := pgError(err); ok {
		return pe.Code
	}
	return ""
}

// IsDuplicateKey reports a unique constraint hit, eg a second registration in one period
func IsDuplicateKey(err error) bool { return sqlState(err) == pgUniqueViolation }

// pgCode maps a postgres error to an ErrorCode, ok is false for non postgres errors
func pgCode(err error) (ErrorCode, bool) {
	pe, ok := pgError(err)
	if !ok {
		return ErrorCodeUnknown, false
	}
	switch pe.Code {
	case pgUniqueViolation:
		return ErrorCodeDuplicateKey, true
	case pgForeignKeyViolation, pgStringTooLong, pgInvalidText:
		return ErrorCodeInvalidArgument, true
	case pgNotNullViolation, pgCheckViolation:
		return ErrorCodeValidation, true
	case pgReadOnly, pgCannotConnectNow:
		return ErrorCodeUnavailable, true
	}
	return ErrorCodeDB, true
}

// FromPostgres wraps err with the mapped code and msg
// the column, when postgres names one, becomes the field
func FromPostgres(err error, msg string) error {
	if err == nil {
		return nil
	}
	code, ok := pgCode(err)
	if !ok {
		code = ErrorCodeDB
	}
	out := Wrap(err, code, msg)
	if pe, ok := pgError(err); ok {
		if col := strings.TrimSpace(pe.ColumnName); col != "" {
			out = WithField(out, col)
		}
	}
	return out
}

// IsRetryable reports contention worth running a transaction again for
// context cancellation is never retryable
func IsRetryable(err error) bool {
	if err == nil || stderrs.Is(err, context.Canceled) || stderrs.Is(err, context.DeadlineExceeded) {
		return false
	}
	switch sqlState(err) {
	case pgSerializationFailure, pgDeadlock, pgLockNotAvailable:
		return true
	case "":
	default:
		return false
	}
	// pgx reports a failed serializable commit as text only
	s := strings.ToLower(root(err).Error())
	return strings.Contains(s, "commit unexpectedly resulted in rollback") ||
		strings.Contains(s, "could not serialize access")
}
