// Package domain defines the registrations contract other modules consume
package domain

import (
	"context"
	"time"

	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/core/selection"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/core/wizard"
)

// Submission is a completed wizard session ready to be stored
type Submission struct {
	StudentID     string
	Graduation    selection.Graduation
	InstituteIDs  []int64
	PartnerNumber string // empty registers alone
	Notes         string
	SessionID     string
}

// Receipt confirms a stored registration
type Receipt struct {
	ID          int64     `json:"id"          example:"42"`
	Semester    string    `json:"semester"    example:"WS25"`
	SubmittedAt time.Time `json:"submitted_at" example:"2025-10-01T09:00:00Z"`
}

// Port is what the wizard needs from registrations
type Port interface {
	// Current returns the open registration period with its institutes
	Current(ctx context.Context) (wizard.Registration, error)
	// User loads a student record
	User(ctx context.Context, id string) (*wizard.User, error)
	// Submit stores a registration and takes one place per chosen institute
	Submit(ctx context.Context, sub Submission) (Receipt, error)
}
