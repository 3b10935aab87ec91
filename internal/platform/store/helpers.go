package store

import (
	"context"
	"fmt"

	perr "github.com/PhysikOnline-FFM/fpraktikum2.0/internal/platform/errors"
)

// ExecOne runs a guarded write that must touch exactly one row
// touching none is perr.ErrNotFound, eg an institute without places left
func ExecOne(ctx context.Context, q RowQuerier, sql string, args ...any) error {
	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if n := tag.RowsAffected(); n != 1 {
		if n == 0 {
			return perr.ErrNotFound
		}
		return fmt.Errorf("%d rows affected, want 1", n)
	}
	return nil
}

// Scalar reads a single value
func Scalar[T any](ctx context.Context, q RowQuerier, sql string, args ...any) (v T, err error) {
	err = q.QueryRow(ctx, sql, args...).Scan(&v)
	return v, err
}

// Many maps every row with scan, never returning a nil slice on success
func Many[T any](ctx context.Context, q RowQuerier, scan func(Row) (T, error), sql string, args ...any) ([]T, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

// One is Many for queries that must yield exactly one row
// no row is perr.ErrNotFound
func One[T any](ctx context.Context, q RowQuerier, scan func(Row) (T, error), sql string, args ...any) (T, error) {
	var zero T
	all, err := Many(ctx, q, scan, sql, args...)
	switch {
	case err != nil:
		return zero, err
	case len(all) == 0:
		return zero, perr.ErrNotFound
	case len(all) > 1:
		return zero, fmt.Errorf("%d rows, want 1", len(all))
	}
	return all[0], nil
}
