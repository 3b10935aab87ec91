package wizard

import (
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/core/loadstate"
)

// Reduce applies a to s and returns the next state
// it never fails: gating (may this step be entered, are these institutes offered) is the
// caller's job, and unknown actions return s unchanged
func Reduce(s State, a Action) State {
	switch act := a.(type) {
	case LoadRegistration:
		s.Registration = loadstate.Apply(s.Registration, loadstate.Request[Registration]())
	case LoadRegistrationSuccess:
		s.Registration = loadstate.Apply(s.Registration, loadstate.Success(act.Registration))
	case LoadRegistrationFail:
		s.Registration = loadstate.Apply(s.Registration, loadstate.Fail[Registration]())

	case LoadUser:
		s.User = loadstate.Apply(s.User, loadstate.Request[*User]())
	case LoadUserSuccess:
		s.User = loadstate.Apply(s.User, loadstate.Success(act.User))
		if act.User != nil {
			if s.Graduation == "" && act.User.Graduation != "" {
				s.Graduation = act.User.Graduation
			}
			if s.Notes == "" {
				s.Notes = act.User.Notes
			}
		}
	case LoadUserFail:
		s.User = loadstate.Apply(s.User, loadstate.Fail[*User]())

	case CheckPartner:
		s.NoPartner = false
		s.PartnerQuery = &PartnerQuery{Number: act.Number, Name: act.Name}
		s.Partner = loadstate.Apply(s.Partner, loadstate.Request[*Partner]())
	case CheckPartnerSuccess:
		if !awaiting(s, act.Partner.Number, act.Partner.Name) {
			return s
		}
		p := act.Partner
		s.Partner = loadstate.Apply(s.Partner, loadstate.Success(&p))
		s.PartnerQuery = nil
	case CheckPartnerFail:
		if !awaiting(s, act.Number, act.Name) {
			return s
		}
		s.Partner = loadstate.Apply(s.Partner, loadstate.Fail[*Partner]())
		s.PartnerQuery = nil
	case RemovePartner:
		s.Partner = loadstate.Reset[*Partner](nil)
		s.PartnerQuery = nil
	case SetNoPartner:
		s.NoPartner = act.Value
		if act.Value {
			s.Partner = loadstate.Reset[*Partner](nil)
			s.PartnerQuery = nil
		}

	case UpdateGraduation:
		if act.Graduation != s.Graduation {
			// the required count depends on the track, start the pick over
			s.Selected = []Institute{}
		}
		s.Graduation = act.Graduation
	case UpdateSelectedInstitutes:
		s.Selected = append([]Institute{}, act.Institutes...)
	case UpdateRegistrationStep:
		s.Step = act.Step
	case UpdateNotes:
		s.Notes = act.Notes

	default:
		return s
	}
	s.Version++
	return s
}

// awaiting reports whether a partner answer for number/name is still wanted
// answers for a removed or superseded lookup are dropped
func awaiting(s State, number, name string) bool {
	q := s.PartnerQuery
	return s.Partner.Loading && q != nil && q.Number == number && q.Name == name
}
