package service

import (
	"context"

	"wedding-backend/internal/guest"
	"wedding-backend/internal/repository"
)

// listsService rebuilds every derived view from a fresh repository snapshot
// on each call. Nothing is cached between requests.
type listsService struct {
	guestRepo repository.GuestRepository
}

func NewListsService(guestRepo repository.GuestRepository) ListsService {
	return &listsService{guestRepo: guestRepo}
}

func (s *listsService) AccommodationList(ctx context.Context) ([]guest.ListEntry, []guest.Warning, error) {
	graph, err := s.snapshot(ctx)
	if err != nil {
		return nil, nil, err
	}
	return guest.AccommodationList(graph), collectWarnings(graph), nil
}

func (s *listsService) TransportList(ctx context.Context) ([]TransportEntry, []guest.Warning, error) {
	graph, err := s.snapshot(ctx)
	if err != nil {
		return nil, nil, err
	}
	var entries []TransportEntry
	for _, e := range guest.TransportList(graph) {
		entry := TransportEntry{ListEntry: e}
		// The pickup details live on the owning getter's RSVP, which may
		// itself be filtered out of the entry when the getter stays home.
		if group, ok := graph.GroupFor(e.GetterID); ok {
			entry.Details = guest.ParseTransportDetails(group.Getter.RSVPResponses.TransportDetails)
		}
		entries = append(entries, entry)
	}
	return entries, collectWarnings(graph), nil
}

func (s *listsService) DietaryList(ctx context.Context) ([]guest.ListEntry, []guest.Warning, error) {
	graph, err := s.snapshot(ctx)
	if err != nil {
		return nil, nil, err
	}
	return guest.DietaryList(graph), collectWarnings(graph), nil
}

func (s *listsService) SeatingList(ctx context.Context) ([]guest.ListEntry, []guest.Warning, error) {
	graph, err := s.snapshot(ctx)
	if err != nil {
		return nil, nil, err
	}
	return guest.SeatingList(graph), collectWarnings(graph), nil
}

func (s *listsService) snapshot(ctx context.Context) (*guest.Graph, error) {
	guests, err := s.guestRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return guest.BuildGraph(guests), nil
}

// collectWarnings merges graph warnings with per-group attendance warnings
// so one bad record surfaces next to the result instead of aborting it.
func collectWarnings(graph *guest.Graph) []guest.Warning {
	warnings := append([]guest.Warning(nil), graph.Warnings...)
	for _, g := range graph.Groups {
		att := guest.GroupAttendance(g)
		warnings = append(warnings, att.Warnings...)
	}
	return warnings
}
