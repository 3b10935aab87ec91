// Package repo provides postgres access for registrations
package repo

import (
	"context"
	"time"

	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/modkit/repokit"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/platform/store"
)

// Repo defines the repository contract for registrations
type Repo interface {
	OpenPeriod(ctx context.Context) (PeriodRow, error)
	Institutes(ctx context.Context, periodID int64) ([]InstituteRow, error)
	Student(ctx context.Context, id string) (StudentRow, error)
	StudentIDByNumber(ctx context.Context, number string) (string, error)
	UpdateStudent(ctx context.Context, id, graduation, notes string) error
	PartnerTaken(ctx context.Context, periodID int64, studentID string) (bool, error)
	InsertRegistration(ctx context.Context, r RegistrationRow) (int64, time.Time, error)
	InsertChoice(ctx context.Context, registrationID, instituteID int64) error
	TakePlace(ctx context.Context, instituteID int64) error
}

// PeriodRow is a registration_periods row
type PeriodRow struct {
	ID       int64
	Semester string
	StartsAt time.Time
	EndsAt   time.Time
}

// InstituteRow is an institutes row, Graduation empty when offered to all tracks
type InstituteRow struct {
	ID           int64
	Name         string
	Graduation   string
	SemesterHalf int
	Places       int
}

// StudentRow is a students row
type StudentRow struct {
	ID            string
	StudentNumber string
	FirstName     string
	LastName      string
	Email         string
	Graduation    string
	Notes         string
}

// RegistrationRow is the insert shape for registrations
type RegistrationRow struct {
	PeriodID   int64
	StudentID  string
	Graduation string
	PartnerID  string
	Notes      string
	SessionID  string
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	// queries holds the database query methods
	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func (r *queries) OpenPeriod(ctx context.Context) (PeriodRow, error) {
	const sql = `
select id, semester, starts_at, ends_at
from registration_periods
where (starts_at is null or starts_at <= now())
and (ends_at is null or ends_at > now())
order by starts_at desc nulls last, id desc
limit 1
`
	return store.One(ctx, r.q, func(row store.Row) (PeriodRow, error) {
		var p PeriodRow
		err := row.Scan(&p.ID, &p.Semester, &p.StartsAt, &p.EndsAt)
		return p, err
	}, sql)
}

func (r *queries) Institutes(ctx context.Context, periodID int64) ([]InstituteRow, error) {
	const sql = `
select id, name, coalesce(graduation, ''), semester_half, places
from institutes
where period_id = $1
order by semester_half, name
`
	return store.Many(ctx, r.q, func(row store.Row) (InstituteRow, error) {
		var in InstituteRow
		err := row.Scan(&in.ID, &in.Name, &in.Graduation, &in.SemesterHalf, &in.Places)
		return in, err
	}, sql, periodID)
}

func (r *queries) Student(ctx context.Context, id string) (StudentRow, error) {
	const sql = `
select id, coalesce(student_number, ''), first_name, last_name, email, coalesce(graduation, ''), notes
from students
where id = $1
`
	return store.One(ctx, r.q, scanStudent, sql, id)
}

func scanStudent(row store.Row) (StudentRow, error) {
	var s StudentRow
	err := row.Scan(&s.ID, &s.StudentNumber, &s.FirstName, &s.LastName, &s.Email, &s.Graduation, &s.Notes)
	return s, err
}

func (r *queries) StudentIDByNumber(ctx context.Context, number string) (string, error) {
	return store.One(ctx, r.q, func(row store.Row) (string, error) {
		var id string
		err := row.Scan(&id)
		return id, err
	}, `select id from students where student_number = $1`, number)
}

func (r *queries) UpdateStudent(ctx context.Context, id, graduation, notes string) error {
	return store.ExecOne(ctx, r.q,
		`update students set graduation = nullif($2, ''), notes = $3 where id = $1`,
		id, graduation, notes)
}

// PartnerTaken reports whether the student already appears in a registration of the period
func (r *queries) PartnerTaken(ctx context.Context, periodID int64, studentID string) (bool, error) {
	const sql = `
select exists (
  select 1 from registrations
  where period_id = $1 and (student_id = $2 or partner_id = $2)
)
`
	return store.Scalar[bool](ctx, r.q, sql, periodID, studentID)
}

func (r *queries) InsertRegistration(ctx context.Context, in RegistrationRow) (int64, time.Time, error) {
	const sql = `
insert into registrations (period_id, student_id, graduation, partner_id, notes, session_id)
values ($1, $2, $3, nullif($4, ''), $5, $6)
returning id, submitted_at
`
	var (
		id int64
		at time.Time
	)
	err := r.q.QueryRow(ctx, sql, in.PeriodID, in.StudentID, in.Graduation, in.PartnerID, in.Notes, in.SessionID).Scan(&id, &at)
	return id, at, err
}

func (r *queries) InsertChoice(ctx context.Context, registrationID, instituteID int64) error {
	_, err := r.q.Exec(ctx,
		`insert into registration_choices (registration_id, institute_id) values ($1, $2)`,
		registrationID, instituteID)
	return err
}

// TakePlace decrements places, perr.ErrNotFound when none are left
func (r *queries) TakePlace(ctx context.Context, instituteID int64) error {
	return store.ExecOne(ctx, r.q,
		`update institutes set places = places - 1 where id = $1 and places > 0`,
		instituteID)
}
