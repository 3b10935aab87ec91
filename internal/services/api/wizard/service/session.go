package service

import (
	"strconv"
	"strings"
	"sync"

	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/core/wizard"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/services/api/wizard/domain"
	regdom "github.com/PhysikOnline-FFM/fpraktikum2.0/internal/services/registrations/domain"
)

// session is one wizard run; mu serializes every action on state
type session struct {
	mu        sync.Mutex
	id        string
	userID    string
	state     wizard.State
	submitted *regdom.Receipt
	ended     bool

	// jobs run after mu is released
	jobs []func()
}

func (s *session) snapshot() domain.Session {
	return domain.Session{
		ID:        s.id,
		Submitted: s.submitted,
		View:      wizard.Project(s.state),
	}
}

// detail is the short audit payload for a, failures carry their error code name
// and never personal data
func detail(a wizard.Action) string {
	switch act := a.(type) {
	case wizard.UpdateGraduation:
		return string(act.Graduation)
	case wizard.UpdateRegistrationStep:
		return string(act.Step)
	case wizard.UpdateSelectedInstitutes:
		ids := make([]string, 0, len(act.Institutes))
		for _, in := range act.Institutes {
			ids = append(ids, strconv.FormatInt(in.ID, 10))
		}
		return strings.Join(ids, ",")
	case wizard.SetNoPartner:
		return strconv.FormatBool(act.Value)
	case wizard.CheckPartnerSuccess:
		return string(act.Partner.Type)
	case wizard.LoadRegistrationSuccess:
		return act.Registration.Semester
	case wizard.LoadRegistrationFail:
		return act.Reason
	case wizard.LoadUserFail:
		return act.Reason
	case wizard.CheckPartnerFail:
		return act.Reason
	}
	return ""
}
