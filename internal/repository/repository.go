package repository

import (
	"context"

	"wedding-backend/internal/domain"
)

// GuestRepository is the persistence port for the single Guest entity. The
// core never assumes the backing store backfills defaults: fields absent
// from a patch are left untouched.
type GuestRepository interface {
	List(ctx context.Context) ([]domain.Guest, error)
	GetByID(ctx context.Context, id string) (*domain.Guest, error)
	Create(ctx context.Context, guest *domain.Guest) error
	Update(ctx context.Context, id string, patch *domain.GuestPatch) error
	Delete(ctx context.Context, id string) error

	// FindGetterByName resolves an invitation slug: case-insensitive exact
	// match on (first, last), restricted to invitation getters. First match
	// wins.
	FindGetterByName(ctx context.Context, firstName, lastName string) (*domain.Guest, error)

	// ListByGetter returns the guests linked to getterID.
	ListByGetter(ctx context.Context, getterID string) ([]domain.Guest, error)
}
