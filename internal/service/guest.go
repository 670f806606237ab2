package service

import (
	"context"
	"errors"
	"fmt"

	"wedding-backend/internal/domain"
	"wedding-backend/internal/guest"
	"wedding-backend/internal/logger"
	"wedding-backend/internal/repository"
)

type guestService struct {
	guestRepo repository.GuestRepository
}

func NewGuestService(guestRepo repository.GuestRepository) GuestService {
	return &guestService{guestRepo: guestRepo}
}

func (s *guestService) ListGuests(ctx context.Context) ([]domain.Guest, error) {
	return s.guestRepo.List(ctx)
}

func (s *guestService) GetGuest(ctx context.Context, id string) (*domain.Guest, error) {
	return s.guestRepo.GetByID(ctx, id)
}

func (s *guestService) CreateGuest(ctx context.Context, g *domain.Guest) error {
	// New guests always start at the beginning of both lifecycles.
	g.InvitationStatus = domain.InvitationStatusNotSent
	g.InvitationOpenCount = 0
	g.RSVPStatus = domain.RSVPStatusPending

	if err := g.Validate(); err != nil {
		return err
	}

	if g.IsInvitationGetter {
		// The invitation slug is derived from the name, so two getters with
		// the same name would share a link. Reject at creation time.
		existing, err := s.guestRepo.FindGetterByName(ctx, g.FirstName, g.LastName)
		if err != nil && !errors.Is(err, domain.ErrGuestNotFound) {
			return err
		}
		if existing != nil {
			return domain.NewValidationError("name", "another invitation getter already has this name")
		}
	} else {
		getter, err := s.guestRepo.GetByID(ctx, *g.LinkedInvitationGetterID)
		if err != nil {
			if errors.Is(err, domain.ErrGuestNotFound) {
				return domain.NewValidationError("linked_invitation_getter_id", "referenced getter does not exist")
			}
			return err
		}
		// Depth-one graph: a linked guest may only hang off a getter.
		if !getter.IsInvitationGetter {
			return domain.NewValidationError("linked_invitation_getter_id", "referenced guest is not an invitation getter")
		}
	}

	if err := s.guestRepo.Create(ctx, g); err != nil {
		return err
	}
	logger.Info("guest created", "guest_id", g.ID, "getter", g.IsInvitationGetter)
	return nil
}

func (s *guestService) UpdateGuest(ctx context.Context, id string, patch *domain.GuestPatch) (*UpdateResult, error) {
	current, err := s.guestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Validate the guest the patch would produce before touching the store.
	updated := *current
	patch.Apply(&updated)
	if err := updated.Validate(); err != nil {
		return nil, err
	}
	if updated.LinkedInvitationGetterID != nil && *updated.LinkedInvitationGetterID == id {
		return nil, domain.NewValidationError("linked_invitation_getter_id", "guest cannot link to itself")
	}
	if !updated.IsInvitationGetter && updated.LinkedInvitationGetterID != nil {
		getter, err := s.guestRepo.GetByID(ctx, *updated.LinkedInvitationGetterID)
		if err != nil {
			if errors.Is(err, domain.ErrGuestNotFound) {
				return nil, domain.NewValidationError("linked_invitation_getter_id", "referenced getter does not exist")
			}
			return nil, err
		}
		if !getter.IsInvitationGetter {
			return nil, domain.NewValidationError("linked_invitation_getter_id", "referenced guest is not an invitation getter")
		}
	}
	// A rename or a promotion to getter must not collide with another
	// getter's invitation slug, same rule as at creation.
	if updated.IsInvitationGetter && (patch.FirstName != nil || patch.LastName != nil || patch.IsInvitationGetter != nil) {
		existing, err := s.guestRepo.FindGetterByName(ctx, updated.FirstName, updated.LastName)
		if err != nil && !errors.Is(err, domain.ErrGuestNotFound) {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, domain.NewValidationError("name", "another invitation getter already has this name")
		}
	}

	result := &UpdateResult{}
	// Demoting a getter to a linked guest strands its group the same way
	// deletion does; surface the orphans instead of fixing them up.
	if current.IsInvitationGetter && !updated.IsInvitationGetter {
		linked, err := s.guestRepo.ListByGetter(ctx, id)
		if err != nil {
			return nil, err
		}
		result.Orphaned = linked
		for _, lg := range linked {
			result.Warnings = append(result.Warnings, guest.Warning{
				GuestID: lg.ID,
				Message: fmt.Sprintf("guest is orphaned by demotion of getter %s", id),
			})
		}
	}

	if err := s.guestRepo.Update(ctx, id, patch); err != nil {
		return nil, err
	}
	fresh, err := s.guestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	result.Guest = *fresh
	if len(result.Orphaned) > 0 {
		logger.Warn("getter demoted with linked guests remaining", "guest_id", id, "orphaned", len(result.Orphaned))
	}
	return result, nil
}

func (s *guestService) DeleteGuest(ctx context.Context, id string) (*DeleteResult, error) {
	g, err := s.guestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	result := &DeleteResult{Deleted: *g}
	if g.IsInvitationGetter {
		linked, err := s.guestRepo.ListByGetter(ctx, id)
		if err != nil {
			return nil, err
		}
		result.Orphaned = linked
		for _, lg := range linked {
			result.Warnings = append(result.Warnings, guest.Warning{
				GuestID: lg.ID,
				Message: fmt.Sprintf("guest is orphaned by deletion of getter %s", id),
			})
		}
	}

	if err := s.guestRepo.Delete(ctx, id); err != nil {
		return nil, err
	}
	if len(result.Orphaned) > 0 {
		logger.Warn("getter deleted with linked guests remaining", "guest_id", id, "orphaned", len(result.Orphaned))
	}
	return result, nil
}

func (s *guestService) ListGrouped(ctx context.Context) (*guest.Graph, error) {
	guests, err := s.guestRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return guest.BuildGraph(guests), nil
}
