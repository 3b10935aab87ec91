// Package repo provides postgres access for partner lookups
package repo

import (
	"context"

	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/modkit/repokit"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/platform/store"
)

// Repo defines the repository contract for partners
type Repo interface {
	ByNumber(ctx context.Context, number string) (PartnerRow, error)
}

// PartnerRow is a student plus their standing in the open period
type PartnerRow struct {
	ID         string
	FirstName  string
	LastName   string
	Registered bool
	HasPartner bool
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

// ByNumber returns perr.ErrNotFound for unknown numbers
func (r *queries) ByNumber(ctx context.Context, number string) (PartnerRow, error) {
	const sql = `
with open as (
  select id from registration_periods
  where (starts_at is null or starts_at <= now())
  and (ends_at is null or ends_at > now())
  order by starts_at desc nulls last, id desc
  limit 1
)
select s.id, s.first_name, s.last_name,
  exists (
    select 1 from registrations r
    where r.period_id = (select id from open) and r.student_id = s.id
  ) as registered,
  exists (
    select 1 from registrations r
    where r.period_id = (select id from open)
    and (r.partner_id = s.id or (r.student_id = s.id and r.partner_id is not null))
  ) as has_partner
from students s
where s.student_number = $1
`
	return store.One(ctx, r.q, func(row store.Row) (PartnerRow, error) {
		var p PartnerRow
		err := row.Scan(&p.ID, &p.FirstName, &p.LastName, &p.Registered, &p.HasPartner)
		return p, err
	}, sql, number)
}
