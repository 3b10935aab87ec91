// Package domain defines the partner lookup contract
package domain

import (
	"context"

	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/core/wizard"
)

// Port classifies a prospective lab partner
type Port interface {
	// Check looks up number and compares name against the stored record
	// an unknown number or a mismatched name is a PartnerNotFound result, not an error
	Check(ctx context.Context, number, name string) (wizard.Partner, error)
}
