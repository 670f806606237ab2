package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"wedding-backend/internal/service"
)

// InvitationHandler serves the public invitation endpoints reached from the
// link in the invitation email, plus the organizer's send action.
type InvitationHandler struct {
	invitationSvc service.InvitationService
}

func NewInvitationHandler(invitationSvc service.InvitationService) *InvitationHandler {
	return &InvitationHandler{invitationSvc: invitationSvc}
}

// Open resolves an invitation slug and records the open.
func (h *InvitationHandler) Open(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	view, err := h.invitationSvc.OpenInvitation(r.Context(), slug)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// SubmitRSVP accepts the group's answer from the public form.
func (h *InvitationHandler) SubmitRSVP(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	var sub service.RSVPSubmission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	getter, err := h.invitationSvc.SubmitRSVP(r.Context(), slug, &sub)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, getter)
}

// Send marks a getter's invitation as sent and emails the link.
func (h *InvitationHandler) Send(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	getter, err := h.invitationSvc.SendInvitation(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, getter)
}
