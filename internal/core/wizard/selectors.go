package wizard

import (
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/core/selection"
)

// AvailableInstitutes are the institutes of the loaded registration period offered to the
// session's graduation track; an institute without a track is offered to everyone
func AvailableInstitutes(s State) []Institute {
	all := s.Registration.Data.Institutes
	out := make([]Institute, 0, len(all))
	for _, in := range all {
		if in.Graduation == "" || in.Graduation == s.Graduation {
			out = append(out, in)
		}
	}
	return out
}

// ChooseOnlyOneInstitute reports whether the track selects a single institute
func ChooseOnlyOneInstitute(s State) bool { return selection.ChooseOnlyOneInstitute(s.Graduation) }

// SelectedInstitutesOK reports whether the selection has the required size
func SelectedInstitutesOK(s State) bool {
	return selection.IsSelectionComplete(s.Graduation, len(s.Selected))
}

// PartnerType is the classification of the loaded partner, PartnerNone otherwise
func PartnerType(s State) selection.PartnerType {
	if !s.Partner.Loaded || s.Partner.Data == nil {
		return selection.PartnerNone
	}
	return s.Partner.Data.Type
}

// PartnerAcceptable reports whether the loaded partner may be chosen
func PartnerAcceptable(s State) bool { return selection.IsPartnerAcceptable(PartnerType(s)) }

// PartnerOK is true when the partner question is settled: either no partner, or an
// acceptable one
func PartnerOK(s State) bool { return s.NoPartner || PartnerAcceptable(s) }

// CanAdvance reports whether the session may move to StepEnd
func CanAdvance(s State) bool {
	return s.Registration.Loaded &&
		s.Graduation != "" &&
		SelectedInstitutesOK(s) &&
		PartnerOK(s)
}

// IsOffered reports whether every id is among AvailableInstitutes and returns them in
// request order; the second result names the first unknown id
func IsOffered(s State, ids []int64) ([]Institute, int64, bool) {
	byID := make(map[int64]Institute)
	for _, in := range AvailableInstitutes(s) {
		byID[in.ID] = in
	}
	out := make([]Institute, 0, len(ids))
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		in, ok := byID[id]
		if !ok {
			return nil, id, false
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, in)
	}
	return out, 0, true
}

// View is the read model handed to transports: the state plus derived flags
type View struct {
	State
	Available              []Institute           `json:"available"`
	ChooseOnlyOneInstitute bool                  `json:"choose_only_one_institute"`
	RequiredInstitutes     int                   `json:"required_institutes"`
	SelectedInstitutesOK   bool                  `json:"selected_institutes_ok"`
	PartnerType            selection.PartnerType `json:"partner_type"`
	PartnerAcceptable      bool                  `json:"partner_acceptable"`
	CanAdvance             bool                  `json:"can_advance"`
	RegistrationFailed     bool                  `json:"registration_failed"`
	UserFailed             bool                  `json:"user_failed"`
	PartnerFailed          bool                  `json:"partner_failed"`
}

// Project builds the View for s
func Project(s State) View {
	return View{
		State:                  s,
		Available:              AvailableInstitutes(s),
		ChooseOnlyOneInstitute: ChooseOnlyOneInstitute(s),
		RequiredInstitutes:     selection.RequiredInstitutes(s.Graduation),
		SelectedInstitutesOK:   SelectedInstitutesOK(s),
		PartnerType:            PartnerType(s),
		PartnerAcceptable:      PartnerAcceptable(s),
		CanAdvance:             CanAdvance(s),
		RegistrationFailed:     s.Registration.Failed(),
		UserFailed:             s.User.Failed(),
		PartnerFailed:          s.Partner.Failed(),
	}
}
