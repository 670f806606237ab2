package guest

import (
	"strings"

	"wedding-backend/internal/domain"
)

// ListEntry is one invitation group's contribution to a derived view. The
// same shape serves the accommodation, transport, dietary and seating lists.
// Getter is nil when the getter itself is not among the included members.
type ListEntry struct {
	// GetterID identifies the owning invitation group even when the getter
	// is filtered out of the entry members.
	GetterID     string         `json:"getter_id"`
	Getter       *domain.Guest  `json:"getter,omitempty"`
	LinkedGuests []domain.Guest `json:"linked_guests"`
}

// AccommodationList returns the groups that declared an accommodation need,
// filtered down to the members actually attending.
func AccommodationList(graph *Graph) []ListEntry {
	return attendeesByNeed(graph, func(r domain.RSVPResponses) bool {
		return r.RequiresAccommodation
	})
}

// TransportList returns the groups that declared a transport need, filtered
// down to the members actually attending.
func TransportList(graph *Graph) []ListEntry {
	return attendeesByNeed(graph, func(r domain.RSVPResponses) bool {
		return r.NeedsTransport
	})
}

// DietaryList returns the groups that declared dietary restrictions,
// filtered down to the members actually attending.
func DietaryList(graph *Graph) []ListEntry {
	return attendeesByNeed(graph, func(r domain.RSVPResponses) bool {
		return r.HasDietaryRestrictions
	})
}

// SeatingList mirrors the full graph in the derived-list shape, ordered by
// table for the seating roster view. No attendance filter is applied: the
// roster shows every invited guest.
func SeatingList(graph *Graph) []ListEntry {
	entries := make([]ListEntry, 0, len(graph.Groups))
	for i := range graph.Groups {
		g := graph.Groups[i]
		getter := g.Getter
		entries = append(entries, ListEntry{GetterID: getter.ID, Getter: &getter, LinkedGuests: g.LinkedGuests})
	}
	return entries
}

// attendeesByNeed applies the shared eligibility rule: the group must have an
// attending RSVP, the relevant flag set, and a non-empty attending set. The
// need is declared once per invitation but consumed only by the people
// actually coming, so non-attending members are excluded even when their
// getter qualifies.
func attendeesByNeed(graph *Graph, need func(domain.RSVPResponses) bool) []ListEntry {
	var entries []ListEntry
	for i := range graph.Groups {
		g := graph.Groups[i]
		if g.Getter.RSVPStatus != domain.RSVPStatusAttending {
			continue
		}
		if !need(g.Getter.RSVPResponses) {
			continue
		}
		att := GroupAttendance(g)
		if len(att.Attending) == 0 {
			continue
		}
		entry := ListEntry{GetterID: g.Getter.ID}
		for _, m := range att.Attending {
			if m.ID == g.Getter.ID {
				getter := g.Getter
				entry.Getter = &getter
				continue
			}
			entry.LinkedGuests = append(entry.LinkedGuests, m)
		}
		entries = append(entries, entry)
	}
	return entries
}

// TransportDetails is the parsed form of the "<origin>:<location>" string
// submitted with an RSVP.
type TransportDetails struct {
	Origin   string `json:"origin,omitempty"`
	Location string `json:"location"`
}

const (
	TransportOriginEstonia = "Estonia"
	TransportOriginUkraine = "Ukraine"
)

// ParseTransportDetails splits an origin-tagged transport string. The origin
// prefix match is case-sensitive; anything unrecognized is passed through
// verbatim as the location so the organizer still sees what was typed.
func ParseTransportDetails(s string) TransportDetails {
	for _, origin := range []string{TransportOriginEstonia, TransportOriginUkraine} {
		if strings.HasPrefix(s, origin+":") {
			return TransportDetails{
				Origin:   origin,
				Location: strings.TrimPrefix(s, origin+":"),
			}
		}
	}
	return TransportDetails{Location: s}
}
