package service

import (
	"context"

	"wedding-backend/internal/guest"
	"wedding-backend/internal/repository"
)

type statsService struct {
	guestRepo repository.GuestRepository
}

func NewStatsService(guestRepo repository.GuestRepository) StatsService {
	return &statsService{guestRepo: guestRepo}
}

// Statistics recomputes the dashboard numbers from a fresh snapshot.
func (s *statsService) Statistics(ctx context.Context) (*guest.Statistics, error) {
	guests, err := s.guestRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	stats := guest.ComputeStatistics(guests, guest.BuildGraph(guests))
	return &stats, nil
}
