package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"wedding-backend/internal/domain"
	"wedding-backend/internal/service"
)

func newGetter(id, first, last string) *domain.Guest {
	return &domain.Guest{
		ID:                 id,
		FirstName:          first,
		LastName:           last,
		TableNumber:        2,
		IsInvitationGetter: true,
		InvitationStatus:   domain.InvitationStatusNotSent,
		RSVPStatus:         domain.RSVPStatusPending,
	}
}

func newLinked(id, first, last, getterID string) domain.Guest {
	return domain.Guest{
		ID:                       id,
		FirstName:                first,
		LastName:                 last,
		TableNumber:              2,
		LinkedInvitationGetterID: &getterID,
		InvitationStatus:         domain.InvitationStatusNotSent,
		RSVPStatus:               domain.RSVPStatusPending,
	}
}

func TestDecodeSlug(t *testing.T) {
	tests := []struct {
		name    string
		slug    string
		first   string
		last    string
		wantErr bool
	}{
		{"valid", "Mari&Tamm", "Mari", "Tamm", false},
		{"no separator", "MariTamm", "", "", true},
		{"empty first", "&Tamm", "", "", true},
		{"empty last", "Mari&", "", "", true},
		{"too many parts", "Mari&Tamm&Extra", "", "", true},
		{"empty", "", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last, err := service.DecodeSlug(tt.slug)
			if tt.wantErr {
				assert.ErrorIs(t, err, service.ErrMalformedSlug)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.first, first)
			assert.Equal(t, tt.last, last)
		})
	}
}

func TestInvitationService_OpenInvitation(t *testing.T) {
	ctx := context.Background()

	t.Run("AdvancesToOpened", func(t *testing.T) {
		repo := new(MockGuestRepo)
		svc := service.NewInvitationService(repo, new(MockEmailService), "https://wedding.example")

		g := newGetter("a", "Mari", "Tamm")
		g.InvitationStatus = domain.InvitationStatusSent
		g.InvitationOpenCount = 2

		repo.On("FindGetterByName", ctx, "Mari", "Tamm").Return(g, nil)
		repo.On("Update", ctx, "a", mock.MatchedBy(func(p *domain.GuestPatch) bool {
			return p.InvitationOpenCount != nil && *p.InvitationOpenCount == 3 &&
				p.InvitationStatus != nil && *p.InvitationStatus == domain.InvitationStatusOpened &&
				p.LastOpenedAt != nil && p.InvitationOpenedAt != nil
		})).Return(nil)
		repo.On("ListByGetter", ctx, "a").Return([]domain.Guest{}, nil)

		view, err := svc.OpenInvitation(ctx, "Mari&Tamm")
		require.NoError(t, err)
		assert.Equal(t, "Mari&Tamm", view.Slug)
		assert.Equal(t, 3, view.Getter.InvitationOpenCount)
		assert.Equal(t, domain.InvitationStatusOpened, view.Getter.InvitationStatus)
		repo.AssertExpectations(t)
	})

	t.Run("NeverRegressesFromResponded", func(t *testing.T) {
		repo := new(MockGuestRepo)
		svc := service.NewInvitationService(repo, new(MockEmailService), "https://wedding.example")

		now := time.Now()
		g := newGetter("a", "Mari", "Tamm")
		g.InvitationStatus = domain.InvitationStatusResponded
		g.InvitationOpenCount = 5
		g.InvitationOpenedAt = &now

		repo.On("FindGetterByName", ctx, "Mari", "Tamm").Return(g, nil)
		repo.On("Update", ctx, "a", mock.MatchedBy(func(p *domain.GuestPatch) bool {
			return p.InvitationStatus == nil && p.InvitationOpenedAt == nil &&
				p.InvitationOpenCount != nil && *p.InvitationOpenCount == 6
		})).Return(nil)
		repo.On("ListByGetter", ctx, "a").Return([]domain.Guest{}, nil)

		view, err := svc.OpenInvitation(ctx, "Mari&Tamm")
		require.NoError(t, err)
		assert.Equal(t, domain.InvitationStatusResponded, view.Getter.InvitationStatus)
		assert.Equal(t, 6, view.Getter.InvitationOpenCount)
	})

	t.Run("MalformedSlug", func(t *testing.T) {
		repo := new(MockGuestRepo)
		svc := service.NewInvitationService(repo, new(MockEmailService), "https://wedding.example")

		_, err := svc.OpenInvitation(ctx, "nonsense")
		assert.ErrorIs(t, err, service.ErrMalformedSlug)
	})

	t.Run("UnknownName", func(t *testing.T) {
		repo := new(MockGuestRepo)
		svc := service.NewInvitationService(repo, new(MockEmailService), "https://wedding.example")

		repo.On("FindGetterByName", ctx, "No", "Body").Return(nil, domain.ErrGuestNotFound)

		_, err := svc.OpenInvitation(ctx, "No&Body")
		assert.ErrorIs(t, err, domain.ErrInvitationNotFound)
	})
}

func TestInvitationService_SubmitRSVP(t *testing.T) {
	ctx := context.Background()

	t.Run("Attending", func(t *testing.T) {
		repo := new(MockGuestRepo)
		svc := service.NewInvitationService(repo, new(MockEmailService), "https://wedding.example")

		g := newGetter("a", "Mari", "Tamm")
		all := []domain.Guest{*g, newLinked("b", "Jaan", "Tamm", "a")}

		repo.On("FindGetterByName", ctx, "Mari", "Tamm").Return(g, nil)
		repo.On("List", ctx).Return(all, nil)
		repo.On("Update", ctx, "a", mock.MatchedBy(func(p *domain.GuestPatch) bool {
			return p.RSVPStatus != nil && *p.RSVPStatus == domain.RSVPStatusAttending &&
				p.InvitationStatus != nil && *p.InvitationStatus == domain.InvitationStatusResponded &&
				p.RSVPSubmittedAt != nil && p.RSVPResponses != nil &&
				len(p.RSVPResponses.AttendingGuestIDs) == 2
		})).Return(nil)

		updated, err := svc.SubmitRSVP(ctx, "Mari&Tamm", &service.RSVPSubmission{
			Attending:         true,
			AttendingGuestIDs: []string{"a", "b"},
		})
		require.NoError(t, err)
		assert.Equal(t, domain.RSVPStatusAttending, updated.RSVPStatus)
		assert.Equal(t, domain.InvitationStatusResponded, updated.InvitationStatus)
	})

	t.Run("IDOutsideGroupRejected", func(t *testing.T) {
		repo := new(MockGuestRepo)
		svc := service.NewInvitationService(repo, new(MockEmailService), "https://wedding.example")

		g := newGetter("a", "Mari", "Tamm")
		stranger := newGetter("z", "Some", "Stranger")
		all := []domain.Guest{*g, *stranger}

		repo.On("FindGetterByName", ctx, "Mari", "Tamm").Return(g, nil)
		repo.On("List", ctx).Return(all, nil)

		_, err := svc.SubmitRSVP(ctx, "Mari&Tamm", &service.RSVPSubmission{
			Attending:         true,
			AttendingGuestIDs: []string{"a", "z"},
		})
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("NotAttendingClearsIDs", func(t *testing.T) {
		repo := new(MockGuestRepo)
		svc := service.NewInvitationService(repo, new(MockEmailService), "https://wedding.example")

		g := newGetter("a", "Mari", "Tamm")
		repo.On("FindGetterByName", ctx, "Mari", "Tamm").Return(g, nil)
		repo.On("List", ctx).Return([]domain.Guest{*g}, nil)
		repo.On("Update", ctx, "a", mock.MatchedBy(func(p *domain.GuestPatch) bool {
			return p.RSVPStatus != nil && *p.RSVPStatus == domain.RSVPStatusNotAttending &&
				p.InvitationStatus != nil && *p.InvitationStatus == domain.InvitationStatusDeclined &&
				p.RSVPResponses != nil && len(p.RSVPResponses.AttendingGuestIDs) == 0
		})).Return(nil)

		updated, err := svc.SubmitRSVP(ctx, "Mari&Tamm", &service.RSVPSubmission{
			Attending:         false,
			AttendingGuestIDs: []string{"a"},
		})
		require.NoError(t, err)
		assert.Equal(t, domain.RSVPStatusNotAttending, updated.RSVPStatus)
	})

	t.Run("EmptyAttendingListIsValid", func(t *testing.T) {
		repo := new(MockGuestRepo)
		svc := service.NewInvitationService(repo, new(MockEmailService), "https://wedding.example")

		g := newGetter("a", "Mari", "Tamm")
		repo.On("FindGetterByName", ctx, "Mari", "Tamm").Return(g, nil)
		repo.On("List", ctx).Return([]domain.Guest{*g}, nil)
		repo.On("Update", ctx, "a", mock.MatchedBy(func(p *domain.GuestPatch) bool {
			return p.RSVPStatus != nil && *p.RSVPStatus == domain.RSVPStatusAttending
		})).Return(nil)

		updated, err := svc.SubmitRSVP(ctx, "Mari&Tamm", &service.RSVPSubmission{Attending: true})
		require.NoError(t, err)
		assert.Equal(t, domain.RSVPStatusAttending, updated.RSVPStatus)
	})
}

func TestInvitationService_SendInvitation(t *testing.T) {
	ctx := context.Background()

	t.Run("SendsAndAdvances", func(t *testing.T) {
		repo := new(MockGuestRepo)
		email := new(MockEmailService)
		svc := service.NewInvitationService(repo, email, "https://wedding.example/")

		g := newGetter("a", "Mari", "Tamm")
		g.Email = "mari@example.com"

		repo.On("GetByID", ctx, "a").Return(g, nil)
		email.On("SendInvitation", ctx, g, "https://wedding.example/invitation/Mari&Tamm").Return(nil)
		repo.On("Update", ctx, "a", mock.MatchedBy(func(p *domain.GuestPatch) bool {
			return p.InvitationStatus != nil && *p.InvitationStatus == domain.InvitationStatusSent &&
				p.InvitationSentAt != nil
		})).Return(nil)

		updated, err := svc.SendInvitation(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, domain.InvitationStatusSent, updated.InvitationStatus)
		email.AssertExpectations(t)
	})

	t.Run("ResendDoesNotRegress", func(t *testing.T) {
		repo := new(MockGuestRepo)
		email := new(MockEmailService)
		svc := service.NewInvitationService(repo, email, "https://wedding.example")

		g := newGetter("a", "Mari", "Tamm")
		g.Email = "mari@example.com"
		g.InvitationStatus = domain.InvitationStatusOpened

		repo.On("GetByID", ctx, "a").Return(g, nil)
		email.On("SendInvitation", ctx, g, mock.Anything).Return(nil)

		updated, err := svc.SendInvitation(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, domain.InvitationStatusOpened, updated.InvitationStatus)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("LinkedGuestRejected", func(t *testing.T) {
		repo := new(MockGuestRepo)
		svc := service.NewInvitationService(repo, new(MockEmailService), "https://wedding.example")

		lg := newLinked("b", "Jaan", "Tamm", "a")
		lg.Email = "jaan@example.com"
		repo.On("GetByID", ctx, "b").Return(&lg, nil)

		_, err := svc.SendInvitation(ctx, "b")
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("NoEmailRejected", func(t *testing.T) {
		repo := new(MockGuestRepo)
		svc := service.NewInvitationService(repo, new(MockEmailService), "https://wedding.example")

		g := newGetter("a", "Mari", "Tamm")
		repo.On("GetByID", ctx, "a").Return(g, nil)

		_, err := svc.SendInvitation(ctx, "a")
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})
}
