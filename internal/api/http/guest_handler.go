package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"wedding-backend/internal/domain"
	"wedding-backend/internal/guest"
	"wedding-backend/internal/service"
)

// GuestHandler serves the organizer's guest CRUD endpoints.
type GuestHandler struct {
	guestSvc service.GuestService
}

func NewGuestHandler(guestSvc service.GuestService) *GuestHandler {
	return &GuestHandler{guestSvc: guestSvc}
}

type groupedGuestsResponse struct {
	Groups   []guest.Group   `json:"groups"`
	Orphans  []domain.Guest  `json:"orphans"`
	Warnings []guest.Warning `json:"warnings"`
}

func (h *GuestHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("grouped") == "true" {
		graph, err := h.guestSvc.ListGrouped(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, groupedGuestsResponse{
			Groups:   graph.Groups,
			Orphans:  graph.Orphans,
			Warnings: graph.Warnings,
		})
		return
	}

	guests, err := h.guestSvc.ListGuests(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, guests)
}

func (h *GuestHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	g, err := h.guestSvc.GetGuest(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, g)
}

type createGuestRequest struct {
	FirstName                string  `json:"first_name"`
	LastName                 string  `json:"last_name"`
	TableNumber              int     `json:"table_number"`
	IsChild                  bool    `json:"is_child"`
	IsInvitationGetter       bool    `json:"is_invitation_getter"`
	LinkedInvitationGetterID *string `json:"linked_invitation_getter_id,omitempty"`
	PhoneNumber              string  `json:"phone_number,omitempty"`
	Email                    string  `json:"email,omitempty"`
	Location                 string  `json:"location,omitempty"`
}

func (h *GuestHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createGuestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	g := &domain.Guest{
		FirstName:                req.FirstName,
		LastName:                 req.LastName,
		TableNumber:              req.TableNumber,
		IsChild:                  req.IsChild,
		IsInvitationGetter:       req.IsInvitationGetter,
		LinkedInvitationGetterID: req.LinkedInvitationGetterID,
		PhoneNumber:              req.PhoneNumber,
		Email:                    req.Email,
		Location:                 req.Location,
	}
	if err := h.guestSvc.CreateGuest(r.Context(), g); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, g)
}

type updateGuestRequest struct {
	FirstName                *string `json:"first_name,omitempty"`
	LastName                 *string `json:"last_name,omitempty"`
	TableNumber              *int    `json:"table_number,omitempty"`
	IsChild                  *bool   `json:"is_child,omitempty"`
	IsInvitationGetter       *bool   `json:"is_invitation_getter,omitempty"`
	LinkedInvitationGetterID *string `json:"linked_invitation_getter_id,omitempty"`
	PhoneNumber              *string `json:"phone_number,omitempty"`
	Email                    *string `json:"email,omitempty"`
	Location                 *string `json:"location,omitempty"`
}

func (h *GuestHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var req updateGuestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	// Organizer edits cover identity, seating, classification and linking.
	// Lifecycle fields move only through the invitation endpoints.
	patch := &domain.GuestPatch{
		FirstName:                req.FirstName,
		LastName:                 req.LastName,
		TableNumber:              req.TableNumber,
		IsChild:                  req.IsChild,
		IsInvitationGetter:       req.IsInvitationGetter,
		LinkedInvitationGetterID: req.LinkedInvitationGetterID,
		PhoneNumber:              req.PhoneNumber,
		Email:                    req.Email,
		Location:                 req.Location,
	}
	result, err := h.guestSvc.UpdateGuest(r.Context(), id, patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *GuestHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	result, err := h.guestSvc.DeleteGuest(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
