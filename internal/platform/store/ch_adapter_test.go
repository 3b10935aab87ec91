package store

import (
	"context"
	"errors"
	"testing"

	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/platform/store/ch"

	"github.com/stretchr/testify/require"
)

type fakeCHRows struct {
	ch.Rows
	closed bool
}

func (f *fakeCHRows) Next() bool        { return false }
func (f *fakeCHRows) Err() error        { return nil }
func (f *fakeCHRows) Close() error      { f.closed = true; return nil }
func (f *fakeCHRows) Columns() []string { return []string{"alpha", "beta"} }
func (f *fakeCHRows) Scan(...any) error { return nil }

type fakeCHClient struct {
	table    string
	rows     [][]any
	queryErr error
	pingErr  error
	result   *fakeCHRows
	execs    []string
}

func (f *fakeCHClient) Exec(_ context.Context, sql string, _ ...any) error {
	f.execs = append(f.execs, sql)
	return nil
}

func (f *fakeCHClient) Insert(_ context.Context, table string, rows [][]any) error {
	f.table, f.rows = table, rows
	return nil
}

func (f *fakeCHClient) Query(context.Context, string, ...any) (ch.Rows, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return f.result, nil
}
func (f *fakeCHClient) Ping(context.Context) error { return f.pingErr }
func (f *fakeCHClient) Close() error               { return nil }

func TestCHAdapter_Delegates(t *testing.T) {
	f := &fakeCHClient{}
	a := newCHAdapter(f)
	ctx := context.Background()

	require.NoError(t, a.Insert(ctx, "wizard_events", [][]any{{1}}))
	require.Equal(t, "wizard_events", f.table)
	require.Len(t, f.rows, 1)

	require.NoError(t, a.Exec(ctx, "SELECT 1"))
	require.Equal(t, []string{"SELECT 1"}, f.execs)

	f.pingErr = errors.New("down")
	require.ErrorIs(t, a.(Pinger).Ping(ctx), f.pingErr)
}

func TestCHAdapter_QueryWrapsRows(t *testing.T) {
	f := &fakeCHClient{result: &fakeCHRows{}}
	rows, err := newCHAdapter(f).Query(context.Background(), "SELECT 1")
	require.NoError(t, err)
	require.Equal(t, []string{"alpha", "beta"}, rows.Columns())
	rows.Close()
	require.True(t, f.result.closed)
}

func TestCHAdapter_QueryError(t *testing.T) {
	boom := errors.New("boom")
	rows, err := newCHAdapter(&fakeCHClient{queryErr: boom}).Query(context.Background(), "SELECT 1")
	require.ErrorIs(t, err, boom)
	require.Nil(t, rows)
}
