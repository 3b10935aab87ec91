// Package domain holds DTOs and ports for the wizard http surface
package domain

import (
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/core/wizard"
	regdom "github.com/PhysikOnline-FFM/fpraktikum2.0/internal/services/registrations/domain"
)

// StartInput opens a session, UserID is optional for anonymous browsing
type StartInput struct {
	UserID string `json:"user_id,omitempty" validate:"omitempty,max=64,printascii" example:"s1234567"`
}

// GraduationInput picks the track
type GraduationInput struct {
	Graduation string `json:"graduation" validate:"required,graduation" example:"BA"`
}

// InstitutesInput replaces the institute selection
type InstitutesInput struct {
	IDs []int64 `json:"ids" validate:"max=2,dive,gt=0" example:"1,2"`
}

// PartnerInput starts a partner lookup
type PartnerInput struct {
	Number string `json:"number" validate:"required,max=16,numeric" example:"7002"`
	Name   string `json:"name"   validate:"required,min=2,max=200" example:"Ada Lovelace"`
}

// NoPartnerInput toggles registering alone
type NoPartnerInput struct {
	Value bool `json:"value" example:"true"`
}

// NotesInput replaces the free text notes
type NotesInput struct {
	Notes string `json:"notes" validate:"max=2000" example:"mornings only"`
}

// StepInput moves the wizard
type StepInput struct {
	Step string `json:"step" validate:"required,wizard_step" example:"end"`
}

// Session is what every session endpoint returns
type Session struct {
	ID        string          `json:"id" example:"0b6a2f9e-7a43-4c8e-9d7f-2b1f3f8e5c11"`
	Submitted *regdom.Receipt `json:"submitted,omitempty"`
	wizard.View
}
