// Package http provides the wizard http transport
package http

import (
	"context"
	stdhttp "net/http"

	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/core/selection"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/core/wizard"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/modkit/httpkit"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/platform/logger"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/services/api/wizard/domain"
)

// Register mounts wizard endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/registration", h.registration)

	httpkit.PostJSON[domain.StartInput](r, "/sessions", h.start)
	httpkit.Get(r, "/sessions/{id}", h.get)
	httpkit.Delete(r, "/sessions/{id}", h.end)

	httpkit.Post(r, "/sessions/{id}/registration/load", h.loadRegistration)
	httpkit.Post(r, "/sessions/{id}/user/load", h.loadUser)

	httpkit.PutJSON[domain.GraduationInput](r, "/sessions/{id}/graduation", h.graduation)
	httpkit.PutJSON[domain.InstitutesInput](r, "/sessions/{id}/institutes", h.institutes)
	httpkit.PostJSON[domain.PartnerInput](r, "/sessions/{id}/partner", h.checkPartner)
	httpkit.Delete(r, "/sessions/{id}/partner", h.removePartner)
	httpkit.PutJSON[domain.NoPartnerInput](r, "/sessions/{id}/no-partner", h.noPartner)
	httpkit.PutJSON[domain.NotesInput](r, "/sessions/{id}/notes", h.notes)
	httpkit.PostJSON[domain.StepInput](r, "/sessions/{id}/step", h.step)
	httpkit.Post(r, "/sessions/{id}/submit", h.submit)

	httpkit.Get(r, "/sessions/{id}/events", h.events)
}

type handlers struct{ svc domain.ServicePort }

// scoped returns the session id and a context that logs it
func scoped(r *stdhttp.Request) (string, context.Context) {
	id := httpkit.Param(r, "id")
	return id, logger.WithRequest(r.Context(), "", id)
}

// swagger:route GET /wizard/registration Wizard wizardRegistration
// @Summary Open registration period and its institutes
// @Tags Wizard
// @Produce json
// @Success 200 {object} wizard.Registration "ok"
// @Failure 404 {object} httpkit.Envelope "no open period"
// @Router /wizard/registration [get]
func (h *handlers) registration(r *stdhttp.Request) (any, error) {
	return h.svc.Registration(r.Context())
}

// swagger:route POST /wizard/sessions Wizard wizardStart
// @Summary Open a wizard session
// @Description Starts loading the registration period and, when user_id is set, the student record
// @Tags Wizard
// @Accept json
// @Produce json
// @Param payload body domain.StartInput true "Session"
// @Success 201 {object} domain.Session "created"
// @Router /wizard/sessions [post]
func (h *handlers) start(r *stdhttp.Request, in domain.StartInput) (any, error) {
	s, err := h.svc.Start(r.Context(), in.UserID)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(s), nil
}

// swagger:route GET /wizard/sessions/{id} Wizard wizardGet
// @Summary Session state with derived flags
// @Tags Wizard
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} domain.Session "ok"
// @Failure 404 {object} httpkit.Envelope "unknown or expired"
// @Router /wizard/sessions/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	id, ctx := scoped(r)
	return h.svc.Get(ctx, id)
}

// swagger:route DELETE /wizard/sessions/{id} Wizard wizardEnd
// @Summary End a session
// @Tags Wizard
// @Param id path string true "Session id"
// @Success 204 "gone"
// @Router /wizard/sessions/{id} [delete]
func (h *handlers) end(r *stdhttp.Request) (any, error) {
	id, ctx := scoped(r)
	if err := h.svc.End(ctx, id); err != nil {
		return nil, err
	}
	return httpkit.NoContent(), nil
}

// swagger:route POST /wizard/sessions/{id}/registration/load Wizard wizardLoadRegistration
// @Summary Reload the registration period
// @Tags Wizard
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} domain.Session "loading"
// @Router /wizard/sessions/{id}/registration/load [post]
func (h *handlers) loadRegistration(r *stdhttp.Request) (any, error) {
	id, ctx := scoped(r)
	return h.svc.LoadRegistration(ctx, id)
}

// swagger:route POST /wizard/sessions/{id}/user/load Wizard wizardLoadUser
// @Summary Reload the student record
// @Tags Wizard
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} domain.Session "loading"
// @Failure 409 {object} httpkit.Envelope "anonymous session"
// @Router /wizard/sessions/{id}/user/load [post]
func (h *handlers) loadUser(r *stdhttp.Request) (any, error) {
	id, ctx := scoped(r)
	return h.svc.LoadUser(ctx, id)
}

// swagger:route PUT /wizard/sessions/{id}/graduation Wizard wizardGraduation
// @Summary Pick the graduation track
// @Description Changing the track clears the institute selection
// @Tags Wizard
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param payload body domain.GraduationInput true "Track"
// @Success 200 {object} domain.Session "ok"
// @Router /wizard/sessions/{id}/graduation [put]
func (h *handlers) graduation(r *stdhttp.Request, in domain.GraduationInput) (any, error) {
	id, ctx := scoped(r)
	return h.svc.SetGraduation(ctx, id, selection.Graduation(in.Graduation))
}

// swagger:route PUT /wizard/sessions/{id}/institutes Wizard wizardInstitutes
// @Summary Replace the institute selection
// @Tags Wizard
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param payload body domain.InstitutesInput true "Institute ids"
// @Success 200 {object} domain.Session "ok"
// @Failure 400 {object} httpkit.Envelope "not offered or too many"
// @Failure 409 {object} httpkit.Envelope "registration not loaded or no graduation"
// @Router /wizard/sessions/{id}/institutes [put]
func (h *handlers) institutes(r *stdhttp.Request, in domain.InstitutesInput) (any, error) {
	id, ctx := scoped(r)
	return h.svc.SelectInstitutes(ctx, id, in.IDs)
}

// swagger:route POST /wizard/sessions/{id}/partner Wizard wizardCheckPartner
// @Summary Look up a partner
// @Description Returns while the lookup runs; poll the session for partner_type
// @Tags Wizard
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param payload body domain.PartnerInput true "Partner"
// @Success 200 {object} domain.Session "loading"
// @Failure 422 {object} httpkit.Envelope "own student number"
// @Router /wizard/sessions/{id}/partner [post]
func (h *handlers) checkPartner(r *stdhttp.Request, in domain.PartnerInput) (any, error) {
	id, ctx := scoped(r)
	return h.svc.CheckPartner(ctx, id, in.Number, in.Name)
}

// swagger:route DELETE /wizard/sessions/{id}/partner Wizard wizardRemovePartner
// @Summary Remove the partner
// @Tags Wizard
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} domain.Session "ok"
// @Router /wizard/sessions/{id}/partner [delete]
func (h *handlers) removePartner(r *stdhttp.Request) (any, error) {
	id, ctx := scoped(r)
	return h.svc.RemovePartner(ctx, id)
}

// swagger:route PUT /wizard/sessions/{id}/no-partner Wizard wizardNoPartner
// @Summary Register without a partner
// @Tags Wizard
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param payload body domain.NoPartnerInput true "Flag"
// @Success 200 {object} domain.Session "ok"
// @Router /wizard/sessions/{id}/no-partner [put]
func (h *handlers) noPartner(r *stdhttp.Request, in domain.NoPartnerInput) (any, error) {
	id, ctx := scoped(r)
	return h.svc.SetNoPartner(ctx, id, in.Value)
}

// swagger:route PUT /wizard/sessions/{id}/notes Wizard wizardNotes
// @Summary Replace the notes
// @Tags Wizard
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param payload body domain.NotesInput true "Notes"
// @Success 200 {object} domain.Session "ok"
// @Router /wizard/sessions/{id}/notes [put]
func (h *handlers) notes(r *stdhttp.Request, in domain.NotesInput) (any, error) {
	id, ctx := scoped(r)
	return h.svc.SetNotes(ctx, id, in.Notes)
}

// swagger:route POST /wizard/sessions/{id}/step Wizard wizardStep
// @Summary Move to another wizard step
// @Tags Wizard
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param payload body domain.StepInput true "Step"
// @Success 200 {object} domain.Session "ok"
// @Failure 409 {object} httpkit.Envelope "step not reachable yet"
// @Router /wizard/sessions/{id}/step [post]
func (h *handlers) step(r *stdhttp.Request, in domain.StepInput) (any, error) {
	id, ctx := scoped(r)
	return h.svc.SetStep(ctx, id, wizard.Step(in.Step))
}

// swagger:route POST /wizard/sessions/{id}/submit Wizard wizardSubmit
// @Summary Store the registration
// @Tags Wizard
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} domain.Session "stored"
// @Failure 409 {object} httpkit.Envelope "incomplete, full or already registered"
// @Router /wizard/sessions/{id}/submit [post]
func (h *handlers) submit(r *stdhttp.Request) (any, error) {
	id, ctx := scoped(r)
	return h.svc.Submit(ctx, id)
}

// swagger:route GET /wizard/sessions/{id}/events Wizard wizardEvents
// @Summary Journal of a session, newest first
// @Tags Wizard
// @Produce json
// @Param id path string true "Session id"
// @Param limit query int false "Max events (1-500)"
// @Success 200 {array} object "ok"
// @Failure 503 {object} httpkit.Envelope "journal disabled"
// @Router /wizard/sessions/{id}/events [get]
func (h *handlers) events(r *stdhttp.Request) (any, error) {
	id, ctx := scoped(r)
	return h.svc.Events(ctx, id, httpkit.QueryInt(r, "limit", 100))
}
