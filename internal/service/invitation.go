package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"wedding-backend/internal/domain"
	"wedding-backend/internal/guest"
	"wedding-backend/internal/logger"
	"wedding-backend/internal/repository"
)

// ErrMalformedSlug rejects invitation slugs that do not split into exactly
// two non-empty name parts.
var ErrMalformedSlug = errors.New("malformed invitation slug")

type invitationService struct {
	guestRepo repository.GuestRepository
	emailSvc  EmailService
	baseURL   string
}

func NewInvitationService(guestRepo repository.GuestRepository, emailSvc EmailService, baseURL string) InvitationService {
	return &invitationService{
		guestRepo: guestRepo,
		emailSvc:  emailSvc,
		baseURL:   strings.TrimRight(baseURL, "/"),
	}
}

func (s *invitationService) SlugFor(g *domain.Guest) (string, error) {
	if !g.IsInvitationGetter {
		return "", domain.NewValidationError("guest", "only an invitation getter has a slug")
	}
	return g.FirstName + "&" + g.LastName, nil
}

// DecodeSlug splits a slug into its name parts.
func DecodeSlug(slug string) (firstName, lastName string, err error) {
	parts := strings.Split(slug, "&")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", ErrMalformedSlug
	}
	return parts[0], parts[1], nil
}

func (s *invitationService) Resolve(ctx context.Context, slug string) (*InvitationView, error) {
	getter, err := s.resolveGetter(ctx, slug)
	if err != nil {
		return nil, err
	}
	return s.viewFor(ctx, getter)
}

func (s *invitationService) OpenInvitation(ctx context.Context, slug string) (*InvitationView, error) {
	getter, err := s.resolveGetter(ctx, slug)
	if err != nil {
		return nil, err
	}

	// Read-modify-write on a single record. Concurrent opens race
	// last-writer-wins; exact open counts are not required.
	now := time.Now()
	openCount := getter.InvitationOpenCount + 1
	patch := &domain.GuestPatch{
		InvitationOpenCount: &openCount,
		LastOpenedAt:        &now,
	}
	if getter.InvitationOpenedAt == nil {
		patch.InvitationOpenedAt = &now
	}
	// The status only moves forward to opened; it never regresses from a
	// submitted response.
	switch getter.InvitationStatus {
	case domain.InvitationStatusNotSent, domain.InvitationStatusSent:
		opened := domain.InvitationStatusOpened
		patch.InvitationStatus = &opened
	}

	if err := s.guestRepo.Update(ctx, getter.ID, patch); err != nil {
		return nil, err
	}
	patch.Apply(getter)
	logger.Debug("invitation opened", "guest_id", getter.ID, "open_count", openCount)

	return s.viewFor(ctx, getter)
}

func (s *invitationService) SubmitRSVP(ctx context.Context, slug string, sub *RSVPSubmission) (*domain.Guest, error) {
	getter, err := s.resolveGetter(ctx, slug)
	if err != nil {
		return nil, err
	}

	responses := domain.RSVPResponses{
		AttendingGuestIDs:      sub.AttendingGuestIDs,
		RequiresAccommodation:  sub.RequiresAccommodation,
		NeedsTransport:         sub.NeedsTransport,
		TransportDetails:       sub.TransportDetails,
		HasDietaryRestrictions: sub.HasDietaryRestrictions,
		DietaryNote:            sub.DietaryNote,
	}
	if err := responses.Validate(); err != nil {
		return nil, err
	}

	// Every attending id must belong to the getter's own invitation group.
	guests, err := s.guestRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	graph := guest.BuildGraph(guests)
	group, ok := graph.GroupFor(getter.ID)
	if !ok {
		return nil, domain.ErrInvitationNotFound
	}
	for _, id := range responses.AttendingGuestIDs {
		if !group.ContainsID(id) {
			return nil, domain.NewValidationError("attending_guest_ids",
				fmt.Sprintf("guest %s is not part of this invitation", id))
		}
	}

	status := domain.RSVPStatusNotAttending
	invStatus := domain.InvitationStatusDeclined
	if sub.Attending {
		status = domain.RSVPStatusAttending
		invStatus = domain.InvitationStatusResponded
	} else {
		// A declined invitation carries no attending ids.
		responses.AttendingGuestIDs = nil
	}

	now := time.Now()
	patch := &domain.GuestPatch{
		RSVPStatus:       &status,
		RSVPSubmittedAt:  &now,
		RSVPResponses:    &responses,
		InvitationStatus: &invStatus,
	}
	if err := s.guestRepo.Update(ctx, getter.ID, patch); err != nil {
		return nil, err
	}
	patch.Apply(getter)
	logger.Info("rsvp submitted", "guest_id", getter.ID, "status", status, "attending", len(responses.AttendingGuestIDs))
	return getter, nil
}

func (s *invitationService) SendInvitation(ctx context.Context, getterID string) (*domain.Guest, error) {
	getter, err := s.guestRepo.GetByID(ctx, getterID)
	if err != nil {
		return nil, err
	}
	if !getter.IsInvitationGetter {
		return nil, domain.NewValidationError("guest", "only an invitation getter can be sent an invitation")
	}
	if getter.Email == "" {
		return nil, domain.NewValidationError("email", "guest has no email address")
	}

	slug, err := s.SlugFor(getter)
	if err != nil {
		return nil, err
	}
	link := fmt.Sprintf("%s/invitation/%s", s.baseURL, slug)
	if err := s.emailSvc.SendInvitation(ctx, getter, link); err != nil {
		return nil, fmt.Errorf("failed to send invitation email: %w", err)
	}

	// Resending never regresses the lifecycle; only a fresh invitation
	// advances to sent.
	if getter.InvitationStatus == domain.InvitationStatusNotSent {
		now := time.Now()
		sent := domain.InvitationStatusSent
		patch := &domain.GuestPatch{
			InvitationStatus: &sent,
			InvitationSentAt: &now,
		}
		if err := s.guestRepo.Update(ctx, getter.ID, patch); err != nil {
			return nil, err
		}
		patch.Apply(getter)
	}
	logger.Info("invitation sent", "guest_id", getter.ID)
	return getter, nil
}

func (s *invitationService) resolveGetter(ctx context.Context, slug string) (*domain.Guest, error) {
	firstName, lastName, err := DecodeSlug(slug)
	if err != nil {
		return nil, err
	}
	getter, err := s.guestRepo.FindGetterByName(ctx, firstName, lastName)
	if err != nil {
		if errors.Is(err, domain.ErrGuestNotFound) {
			return nil, domain.ErrInvitationNotFound
		}
		return nil, err
	}
	return getter, nil
}

func (s *invitationService) viewFor(ctx context.Context, getter *domain.Guest) (*InvitationView, error) {
	slug, err := s.SlugFor(getter)
	if err != nil {
		return nil, err
	}
	linked, err := s.guestRepo.ListByGetter(ctx, getter.ID)
	if err != nil {
		return nil, err
	}
	return &InvitationView{
		Slug:         slug,
		Getter:       *getter,
		LinkedGuests: linked,
	}, nil
}
