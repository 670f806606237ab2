package service

import (
	"context"

	"wedding-backend/internal/domain"
	"wedding-backend/internal/guest"
)

// DeleteResult reports what a guest deletion left behind. Deleting a getter
// orphans its linked guests; the orphans are surfaced, never silently
// repaired.
type DeleteResult struct {
	Deleted  domain.Guest    `json:"deleted"`
	Orphaned []domain.Guest  `json:"orphaned,omitempty"`
	Warnings []guest.Warning `json:"warnings,omitempty"`
}

// UpdateResult is the post-update guest plus any linked guests stranded when
// an edit turns their getter into a linked guest.
type UpdateResult struct {
	Guest    domain.Guest    `json:"guest"`
	Orphaned []domain.Guest  `json:"orphaned,omitempty"`
	Warnings []guest.Warning `json:"warnings,omitempty"`
}

type GuestService interface {
	ListGuests(ctx context.Context) ([]domain.Guest, error)
	GetGuest(ctx context.Context, id string) (*domain.Guest, error)
	CreateGuest(ctx context.Context, g *domain.Guest) error
	UpdateGuest(ctx context.Context, id string, patch *domain.GuestPatch) (*UpdateResult, error)
	DeleteGuest(ctx context.Context, id string) (*DeleteResult, error)
	ListGrouped(ctx context.Context) (*guest.Graph, error)
}

// RSVPSubmission is the payload the public invitation form posts on behalf
// of a whole invitation group.
type RSVPSubmission struct {
	Attending              bool     `json:"attending"`
	AttendingGuestIDs      []string `json:"attending_guest_ids"`
	RequiresAccommodation  bool     `json:"requires_accommodation"`
	NeedsTransport         bool     `json:"needs_transport"`
	TransportDetails       string   `json:"transport_details,omitempty"`
	HasDietaryRestrictions bool     `json:"has_dietary_restrictions"`
	DietaryNote            string   `json:"dietary_note,omitempty"`
}

// InvitationView is what the public invitation page renders: the resolved
// group plus its slug.
type InvitationView struct {
	Slug         string         `json:"slug"`
	Getter       domain.Guest   `json:"getter"`
	LinkedGuests []domain.Guest `json:"linked_guests"`
}

type InvitationService interface {
	// SlugFor encodes a getter into its invitation URL slug.
	SlugFor(g *domain.Guest) (string, error)
	// Resolve looks a slug up without touching open tracking.
	Resolve(ctx context.Context, slug string) (*InvitationView, error)
	// OpenInvitation resolves a slug and records the open: bumps the open
	// count, stamps the open times and advances the invitation status when
	// it may still move forward.
	OpenInvitation(ctx context.Context, slug string) (*InvitationView, error)
	// SubmitRSVP validates and persists a group's RSVP answer.
	SubmitRSVP(ctx context.Context, slug string, sub *RSVPSubmission) (*domain.Guest, error)
	// SendInvitation marks a getter's invitation as sent and emails the link.
	SendInvitation(ctx context.Context, getterID string) (*domain.Guest, error)
}

// TransportEntry pairs a transport-eligible group with its parsed origin
// and pickup location.
type TransportEntry struct {
	guest.ListEntry
	Details guest.TransportDetails `json:"details"`
}

type ListsService interface {
	AccommodationList(ctx context.Context) ([]guest.ListEntry, []guest.Warning, error)
	TransportList(ctx context.Context) ([]TransportEntry, []guest.Warning, error)
	DietaryList(ctx context.Context) ([]guest.ListEntry, []guest.Warning, error)
	SeatingList(ctx context.Context) ([]guest.ListEntry, []guest.Warning, error)
}

type StatsService interface {
	Statistics(ctx context.Context) (*guest.Statistics, error)
}

type AuthService interface {
	// Login checks the organizer credential and returns a session token.
	Login(ctx context.Context, username, password string) (string, error)
}

type EmailService interface {
	SendInvitation(ctx context.Context, g *domain.Guest, link string) error
	SendRSVPReminder(ctx context.Context, g *domain.Guest, link string) error
}
