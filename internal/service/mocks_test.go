package service_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"wedding-backend/internal/domain"
)

// MockGuestRepo
type MockGuestRepo struct {
	mock.Mock
}

func (m *MockGuestRepo) List(ctx context.Context) ([]domain.Guest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Guest), args.Error(1)
}
func (m *MockGuestRepo) GetByID(ctx context.Context, id string) (*domain.Guest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Guest), args.Error(1)
}
func (m *MockGuestRepo) Create(ctx context.Context, g *domain.Guest) error {
	args := m.Called(ctx, g)
	return args.Error(0)
}
func (m *MockGuestRepo) Update(ctx context.Context, id string, patch *domain.GuestPatch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}
func (m *MockGuestRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockGuestRepo) FindGetterByName(ctx context.Context, firstName, lastName string) (*domain.Guest, error) {
	args := m.Called(ctx, firstName, lastName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Guest), args.Error(1)
}
func (m *MockGuestRepo) ListByGetter(ctx context.Context, getterID string) ([]domain.Guest, error) {
	args := m.Called(ctx, getterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Guest), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendInvitation(ctx context.Context, g *domain.Guest, link string) error {
	args := m.Called(ctx, g, link)
	return args.Error(0)
}
func (m *MockEmailService) SendRSVPReminder(ctx context.Context, g *domain.Guest, link string) error {
	args := m.Called(ctx, g, link)
	return args.Error(0)
}
