package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"wedding-backend/internal/security"
	"wedding-backend/internal/service"
)

// NewRouter wires the public invitation routes and the token-guarded
// organizer API onto one mux router.
func NewRouter(
	tokens security.TokenManager,
	authSvc service.AuthService,
	guestSvc service.GuestService,
	invitationSvc service.InvitationService,
	listsSvc service.ListsService,
	statsSvc service.StatsService,
) *mux.Router {
	authHandler := NewAuthHandler(authSvc)
	guestHandler := NewGuestHandler(guestSvc)
	invitationHandler := NewInvitationHandler(invitationSvc)
	listsHandler := NewListsHandler(listsSvc)
	statsHandler := NewStatsHandler(statsSvc)

	router := mux.NewRouter()

	// Public: the invitation link is the guest's only credential.
	router.HandleFunc("/invitation/{slug}", invitationHandler.Open).Methods(http.MethodGet)
	router.HandleFunc("/invitation/{slug}/rsvp", invitationHandler.SubmitRSVP).Methods(http.MethodPost)
	router.HandleFunc("/api/v1/login", authHandler.Login).Methods(http.MethodPost)

	admin := router.PathPrefix("/api/v1").Subrouter()
	admin.Use(AuthMiddleware(tokens))
	admin.HandleFunc("/guests", guestHandler.List).Methods(http.MethodGet)
	admin.HandleFunc("/guests", guestHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/guests/{id}", guestHandler.Get).Methods(http.MethodGet)
	admin.HandleFunc("/guests/{id}", guestHandler.Update).Methods(http.MethodPatch)
	admin.HandleFunc("/guests/{id}", guestHandler.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/guests/{id}/send-invitation", invitationHandler.Send).Methods(http.MethodPost)
	admin.HandleFunc("/lists/accommodation", listsHandler.Accommodation).Methods(http.MethodGet)
	admin.HandleFunc("/lists/transport", listsHandler.Transport).Methods(http.MethodGet)
	admin.HandleFunc("/lists/dietary", listsHandler.Dietary).Methods(http.MethodGet)
	admin.HandleFunc("/lists/tables", listsHandler.Seating).Methods(http.MethodGet)
	admin.HandleFunc("/stats", statsHandler.Get).Methods(http.MethodGet)

	return router
}
