// Package wizard is the registration wizard store: one explicit state value per session,
// pure actions, a reducer, and selectors the transport reads derived flags from
package wizard

import (
	"time"

	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/core/loadstate"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/core/selection"
)

// Step is the wizard page a session is on
type Step string

const (
	// StepStart picks the graduation track
	StepStart Step = "start"
	// StepMain picks institutes, partner and notes
	StepMain Step = "main"
	// StepEnd reviews and submits
	StepEnd Step = "end"
)

// ParseStep maps a wire value to a Step
func ParseStep(s string) (Step, bool) {
	switch Step(s) {
	case StepStart, StepMain, StepEnd:
		return Step(s), true
	}
	return "", false
}

// Institute is a lab that offers places in a semester half
type Institute struct {
	ID           int64                `json:"id"`
	Name         string               `json:"name"`
	Graduation   selection.Graduation `json:"graduation"`
	SemesterHalf int                  `json:"semester_half"`
	Places       int                  `json:"places"`
}

// Registration is the open registration period and what it offers
type Registration struct {
	Semester   string      `json:"semester"`
	Start      *time.Time  `json:"start,omitempty"`
	End        *time.Time  `json:"end,omitempty"`
	Institutes []Institute `json:"institutes"`
}

// User is the student driving the session
type User struct {
	ID            string               `json:"id"`
	StudentNumber string               `json:"student_number,omitempty"`
	FirstName     string               `json:"first_name"`
	LastName      string               `json:"last_name"`
	Email         string               `json:"email"`
	Graduation    selection.Graduation `json:"graduation,omitempty"`
	Notes         string               `json:"notes,omitempty"`
}

// Partner is the outcome of a partner lookup
type Partner struct {
	Number string                `json:"number"`
	Name   string                `json:"name"`
	Type   selection.PartnerType `json:"type"`
}

// PartnerQuery is the lookup a session is waiting on
type PartnerQuery struct {
	Number string `json:"number"`
	Name   string `json:"name"`
}

// State is everything a wizard session knows
// the zero value is not usable, start from Initial
type State struct {
	Step       Step                 `json:"step"`
	Graduation selection.Graduation `json:"graduation,omitempty"`
	Selected   []Institute          `json:"selected"`
	NoPartner  bool                 `json:"no_partner"`
	Notes      string               `json:"notes"`

	PartnerQuery *PartnerQuery `json:"partner_query,omitempty"`

	Registration loadstate.Machine[Registration] `json:"registration"`
	User         loadstate.Machine[*User]        `json:"user"`
	Partner      loadstate.Machine[*Partner]     `json:"partner"`

	// Version counts applied actions
	Version uint64 `json:"version"`
}

// Initial returns a fresh session state
func Initial() State {
	return State{
		Step:         StepStart,
		Selected:     []Institute{},
		Registration: loadstate.NewMachine(Registration{Institutes: []Institute{}}),
		User:         loadstate.NewMachine[*User](nil),
		Partner:      loadstate.NewMachine[*Partner](nil),
	}
}
