// Package repo stores audit events in clickhouse
package repo

import (
	"context"

	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/modkit/repokit"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/services/audit/domain"
)

// Table is the clickhouse table events land in
const Table = "wizard_events"

const ddl = `
CREATE TABLE IF NOT EXISTS ` + Table + ` (
    at         DateTime64(3, 'UTC'),
    session_id String,
    user_id    String,
    action     LowCardinality(String),
    version    UInt64,
    detail     String
) ENGINE = MergeTree
ORDER BY (session_id, at)
TTL toDateTime(at) + INTERVAL 1 YEAR
`

// Repo defines the event store
type Repo interface {
	EnsureTable(ctx context.Context) error
	Insert(ctx context.Context, evs []domain.Event) error
	Recent(ctx context.Context, sessionID string, limit int) ([]domain.Event, error)
}

// CH implements Repo over the clickhouse seam
type CH struct{ db repokit.Clickhouse }

// NewCH binds the repo to db
func NewCH(db repokit.Clickhouse) *CH {
	if db == nil {
		panic("audit.Repo requires a non nil Clickhouse")
	}
	return &CH{db: db}
}

// EnsureTable creates the events table when missing
func (r *CH) EnsureTable(ctx context.Context) error { return r.db.Exec(ctx, ddl) }

// Insert writes evs in one batch, column order matches ddl
func (r *CH) Insert(ctx context.Context, evs []domain.Event) error {
	rows := make([][]any, 0, len(evs))
	for _, e := range evs {
		rows = append(rows, []any{e.At.UTC(), e.SessionID, e.UserID, e.Action, e.Version, e.Detail})
	}
	return r.db.Insert(ctx, Table, rows)
}

// Recent limits
const (
	DefaultLimit = 100
	MaxLimit     = 500
)

// Recent lists a session's newest events
// a non positive limit means DefaultLimit, larger ones are capped at MaxLimit
func (r *CH) Recent(ctx context.Context, sessionID string, limit int) ([]domain.Event, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	limit = min(limit, MaxLimit)
	const sql = `
SELECT at, session_id, user_id, action, version, detail
FROM ` + Table + `
WHERE session_id = ?
ORDER BY at DESC, version DESC
LIMIT ?
`
	rows, err := r.db.Query(ctx, sql, sessionID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Event{}
	for rows.Next() {
		var e domain.Event
		if err := rows.Scan(&e.At, &e.SessionID, &e.UserID, &e.Action, &e.Version, &e.Detail); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
