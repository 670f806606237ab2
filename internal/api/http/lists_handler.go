package http

import (
	"net/http"

	"wedding-backend/internal/guest"
	"wedding-backend/internal/service"
)

// ListsHandler serves the derived operational views. Integrity warnings ride
// alongside each result so one bad record never hides the rest.
type ListsHandler struct {
	listsSvc service.ListsService
}

func NewListsHandler(listsSvc service.ListsService) *ListsHandler {
	return &ListsHandler{listsSvc: listsSvc}
}

type listResponse struct {
	Entries  []guest.ListEntry `json:"entries"`
	Warnings []guest.Warning   `json:"warnings"`
}

type transportListResponse struct {
	Entries  []service.TransportEntry `json:"entries"`
	Warnings []guest.Warning          `json:"warnings"`
}

func (h *ListsHandler) Accommodation(w http.ResponseWriter, r *http.Request) {
	entries, warnings, err := h.listsSvc.AccommodationList(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Entries: entries, Warnings: warnings})
}

func (h *ListsHandler) Transport(w http.ResponseWriter, r *http.Request) {
	entries, warnings, err := h.listsSvc.TransportList(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, transportListResponse{Entries: entries, Warnings: warnings})
}

func (h *ListsHandler) Dietary(w http.ResponseWriter, r *http.Request) {
	entries, warnings, err := h.listsSvc.DietaryList(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Entries: entries, Warnings: warnings})
}

func (h *ListsHandler) Seating(w http.ResponseWriter, r *http.Request) {
	entries, warnings, err := h.listsSvc.SeatingList(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Entries: entries, Warnings: warnings})
}
