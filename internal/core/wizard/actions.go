package wizard

import "github.com/PhysikOnline-FFM/fpraktikum2.0/internal/core/selection"

// ActionType names an action on the wire and in the audit journal
type ActionType string

// Action is anything Reduce understands
type Action interface {
	Type() ActionType
}

// Action types
const (
	TypeLoadRegistration         ActionType = "[Registration] Load Registration Info"
	TypeLoadRegistrationSuccess  ActionType = "[Registration] Load Registration Info Success"
	TypeLoadRegistrationFail     ActionType = "[Registration] Load Registration Info Fail"
	TypeLoadUser                 ActionType = "[User] Load User"
	TypeLoadUserSuccess          ActionType = "[User] Load User Success"
	TypeLoadUserFail             ActionType = "[User] Load User Fail"
	TypeCheckPartner             ActionType = "[Partner] Check Partner"
	TypeCheckPartnerSuccess      ActionType = "[Partner] Check Partner Success"
	TypeCheckPartnerFail         ActionType = "[Partner] Check Partner Fail"
	TypeRemovePartner            ActionType = "[Partner] Remove Partner"
	TypeSetNoPartner             ActionType = "[Partner] Set No Partner"
	TypeUpdateGraduation         ActionType = "[Meta] Update Graduation"
	TypeUpdateSelectedInstitutes ActionType = "[Meta] Update Selected Institutes"
	TypeUpdateRegistrationStep   ActionType = "[Meta] Update Registration Step"
	TypeUpdateNotes              ActionType = "[User] Update Notes"
)

type (
	// LoadRegistration starts loading the open registration period
	LoadRegistration struct{}
	// LoadRegistrationSuccess delivers the registration period
	LoadRegistrationSuccess struct{ Registration Registration }
	// LoadRegistrationFail reports a failed registration load, Reason is an error code name
	LoadRegistrationFail struct{ Reason string }

	// LoadUser starts loading the session's user
	LoadUser struct{}
	// LoadUserSuccess delivers the user record
	LoadUserSuccess struct{ User *User }
	// LoadUserFail reports a failed user load, Reason is an error code name
	LoadUserFail struct{ Reason string }

	// CheckPartner starts a partner lookup
	CheckPartner struct{ Number, Name string }
	// CheckPartnerSuccess delivers the classified partner
	CheckPartnerSuccess struct{ Partner Partner }
	// CheckPartnerFail reports a failed lookup (transport or store error, not "not found")
	CheckPartnerFail struct{ Number, Name, Reason string }
	// RemovePartner clears any partner
	RemovePartner struct{}
	// SetNoPartner toggles registering without a partner
	SetNoPartner struct{ Value bool }

	// UpdateGraduation picks the graduation track
	UpdateGraduation struct{ Graduation selection.Graduation }
	// UpdateSelectedInstitutes replaces the institute selection
	UpdateSelectedInstitutes struct{ Institutes []Institute }
	// UpdateRegistrationStep moves the wizard to Step
	UpdateRegistrationStep struct{ Step Step }
	// UpdateNotes replaces the free-text notes
	UpdateNotes struct{ Notes string }
)

func (LoadRegistration) Type() ActionType         { return TypeLoadRegistration }
func (LoadRegistrationSuccess) Type() ActionType  { return TypeLoadRegistrationSuccess }
func (LoadRegistrationFail) Type() ActionType     { return TypeLoadRegistrationFail }
func (LoadUser) Type() ActionType                 { return TypeLoadUser }
func (LoadUserSuccess) Type() ActionType          { return TypeLoadUserSuccess }
func (LoadUserFail) Type() ActionType             { return TypeLoadUserFail }
func (CheckPartner) Type() ActionType             { return TypeCheckPartner }
func (CheckPartnerSuccess) Type() ActionType      { return TypeCheckPartnerSuccess }
func (CheckPartnerFail) Type() ActionType         { return TypeCheckPartnerFail }
func (RemovePartner) Type() ActionType            { return TypeRemovePartner }
func (SetNoPartner) Type() ActionType             { return TypeSetNoPartner }
func (UpdateGraduation) Type() ActionType         { return TypeUpdateGraduation }
func (UpdateSelectedInstitutes) Type() ActionType { return TypeUpdateSelectedInstitutes }
func (UpdateRegistrationStep) Type() ActionType   { return TypeUpdateRegistrationStep }
func (UpdateNotes) Type() ActionType              { return TypeUpdateNotes }
