package repo

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/platform/store"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/services/audit/domain"

	"github.com/stretchr/testify/require"
)

type fakeCH struct {
	execs    []string
	table    string
	rows     [][]any
	querySQL string
	args     []any
	result   store.Rows
}

func (f *fakeCH) Insert(_ context.Context, table string, rows [][]any) error {
	f.table, f.rows = table, rows
	return nil
}

func (f *fakeCH) Exec(_ context.Context, sql string, _ ...any) error {
	f.execs = append(f.execs, sql)
	return nil
}

func (f *fakeCH) Query(_ context.Context, sql string, args ...any) (store.Rows, error) {
	f.querySQL, f.args = sql, args
	return f.result, nil
}

func (f *fakeCH) Close() error { return nil }

type eventRows struct {
	evs []domain.Event
	i   int
}

func (r *eventRows) Next() bool { r.i++; return r.i <= len(r.evs) }
func (r *eventRows) Scan(dest ...any) error {
	e := r.evs[r.i-1]
	*dest[0].(*time.Time) = e.At
	*dest[1].(*string) = e.SessionID
	*dest[2].(*string) = e.UserID
	*dest[3].(*string) = e.Action
	*dest[4].(*uint64) = e.Version
	*dest[5].(*string) = e.Detail
	return nil
}
func (r *eventRows) Err() error        { return nil }
func (r *eventRows) Close()            {}
func (r *eventRows) Columns() []string { return nil }

func TestNewCH_PanicsOnNil(t *testing.T) {
	require.Panics(t, func() { NewCH(nil) })
}

func TestEnsureTable(t *testing.T) {
	f := &fakeCH{}
	require.NoError(t, NewCH(f).EnsureTable(context.Background()))
	require.Len(t, f.execs, 1)
	require.True(t, strings.Contains(f.execs[0], "CREATE TABLE IF NOT EXISTS wizard_events"))
}

func TestInsert_ColumnOrder(t *testing.T) {
	f := &fakeCH{}
	at := time.Date(2025, 10, 1, 9, 0, 0, 0, time.FixedZone("CEST", 2*3600))
	err := NewCH(f).Insert(context.Background(), []domain.Event{
		{At: at, SessionID: "s", UserID: "u", Action: "[Meta] Update Notes", Version: 3, Detail: "x"},
	})
	require.NoError(t, err)
	require.Equal(t, Table, f.table)
	require.Equal(t, []any{at.UTC(), "s", "u", "[Meta] Update Notes", uint64(3), "x"}, f.rows[0])
}

func TestRecent_ScansAndClampsLimit(t *testing.T) {
	at := time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC)
	f := &fakeCH{result: &eventRows{evs: []domain.Event{
		{At: at, SessionID: "s", Action: "b", Version: 2},
		{At: at, SessionID: "s", Action: "a", Version: 1},
	}}}
	got, err := NewCH(f).Recent(context.Background(), "s", 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "b", got[0].Action)
	require.Equal(t, []any{"s", 100}, f.args)
}

func TestRecent_LimitBounds(t *testing.T) {
	cases := map[int]int{-1: DefaultLimit, 0: DefaultLimit, 20: 20, MaxLimit: MaxLimit, 501: MaxLimit, 10000: MaxLimit}
	for in, want := range cases {
		f := &fakeCH{result: &eventRows{}}
		_, err := NewCH(f).Recent(context.Background(), "s", in)
		require.NoError(t, err)
		require.Equal(t, []any{"s", want}, f.args, "limit %d", in)
	}
}
