package domain

import (
	"context"

	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/core/selection"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/core/wizard"
	auditdom "github.com/PhysikOnline-FFM/fpraktikum2.0/internal/services/audit/domain"
	partdom "github.com/PhysikOnline-FFM/fpraktikum2.0/internal/services/partners/domain"
	regdom "github.com/PhysikOnline-FFM/fpraktikum2.0/internal/services/registrations/domain"
)

// Ports are the cross module dependencies the wizard is built from
type Ports struct {
	Registrations regdom.Port
	Partners      partdom.Port
	Journal       auditdom.Journal
	Events        auditdom.Reader
}

// ServicePort is the wizard session contract
type ServicePort interface {
	Start(ctx context.Context, userID string) (Session, error)
	Get(ctx context.Context, id string) (Session, error)
	End(ctx context.Context, id string) error

	LoadRegistration(ctx context.Context, id string) (Session, error)
	LoadUser(ctx context.Context, id string) (Session, error)

	SetGraduation(ctx context.Context, id string, g selection.Graduation) (Session, error)
	SelectInstitutes(ctx context.Context, id string, ids []int64) (Session, error)
	CheckPartner(ctx context.Context, id, number, name string) (Session, error)
	RemovePartner(ctx context.Context, id string) (Session, error)
	SetNoPartner(ctx context.Context, id string, v bool) (Session, error)
	SetNotes(ctx context.Context, id, notes string) (Session, error)
	SetStep(ctx context.Context, id string, step wizard.Step) (Session, error)
	Submit(ctx context.Context, id string) (Session, error)

	Events(ctx context.Context, id string, limit int) ([]auditdom.Event, error)
	Registration(ctx context.Context) (wizard.Registration, error)
}
