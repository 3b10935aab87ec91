// Package selection holds the decision predicates of the registration wizard:
// how many institutes a student must pick and which partner lookups are acceptable
package selection

import (
	"strings"
)

// Graduation is the degree track a student registers under
type Graduation string

const (
	// GraduationBA is the bachelor track
	GraduationBA Graduation = "BA"
	// GraduationMA is the master track
	GraduationMA Graduation = "MA"
	// GraduationLA is the teaching degree track (Lehramt), which picks a single institute
	GraduationLA Graduation = "LA"
)

// Graduations lists every known track in display order
var Graduations = []Graduation{GraduationBA, GraduationMA, GraduationLA}

// ParseGraduation maps a wire value to a Graduation, case-insensitive
func ParseGraduation(s string) (Graduation, bool) {
	g := Graduation(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range Graduations {
		if g == known {
			return g, true
		}
	}
	return "", false
}

// PartnerType classifies the result of a partner lookup
type PartnerType string

const (
	// PartnerNone means no lookup happened yet
	PartnerNone PartnerType = "none"
	// PartnerNotRegistered means the partner exists and has no registration of their own
	PartnerNotRegistered PartnerType = "notRegistered"
	// PartnerRegistered means the partner already registered on their own
	PartnerRegistered PartnerType = "registered"
	// PartnerHasPartner means the partner is already paired with someone else
	PartnerHasPartner PartnerType = "hasPartner"
	// PartnerNotFound means number and name matched nobody
	PartnerNotFound PartnerType = "notFound"
)

// ChooseOnlyOneInstitute reports whether g selects a single institute
func ChooseOnlyOneInstitute(g Graduation) bool { return g == GraduationLA }

// RequiredInstitutes is the exact number of institutes g has to select
func RequiredInstitutes(g Graduation) int {
	if ChooseOnlyOneInstitute(g) {
		return 1
	}
	return 2
}

// IsSelectionComplete reports whether selected institutes satisfy g
func IsSelectionComplete(g Graduation, selectedCount int) bool {
	return selectedCount == RequiredInstitutes(g)
}

// IsPartnerAcceptable reports whether a partner of type t may be chosen
func IsPartnerAcceptable(t PartnerType) bool { return t == PartnerNotRegistered }
