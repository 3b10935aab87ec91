package http

import (
	"fmt"

	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/core/selection"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/core/wizard"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/platform/net/http/bind"
)

// body tags for the wizard inputs, registered before any request is bound
func init() {
	mustTag("graduation", fmt.Sprintf("{0} must be one of %v", selection.Graduations), func(v string) bool {
		_, ok := selection.ParseGraduation(v)
		return ok
	})
	mustTag("wizard_step", "{0} must be start, main or end", func(v string) bool {
		_, ok := wizard.ParseStep(v)
		return ok
	})
}

func mustTag(tag, msg string, fn func(string) bool) {
	if err := bind.RegisterTag(tag, msg, fn); err != nil {
		panic(fmt.Sprintf("register %s tag: %v", tag, err))
	}
}
