package guest

import "wedding-backend/internal/domain"

// Statistics is a pure reduction over a guest snapshot, recomputed on demand
// and never incrementally maintained.
type Statistics struct {
	// Raw totals over the full collection, orphans included.
	TotalGuests int         `json:"total_guests"`
	Adults      int         `json:"adults"`
	Children    int         `json:"children"`
	TableCounts map[int]int `json:"table_counts"`

	// Invitation funnel, counted per getter.
	Invitations          int     `json:"invitations"`
	InvitationsSent      int     `json:"invitations_sent"`
	InvitationsOpened    int     `json:"invitations_opened"`
	InvitationsResponded int     `json:"invitations_responded"`
	SentRate             float64 `json:"sent_rate"`
	OpenRate             float64 `json:"open_rate"`
	ResponseRate         float64 `json:"response_rate"`

	// RSVP funnel: invitation-level outcomes plus individual headcounts.
	RSVPAttending      int `json:"rsvp_attending"`
	RSVPNotAttending   int `json:"rsvp_not_attending"`
	RSVPPending        int `json:"rsvp_pending"`
	AttendingGuests    int `json:"attending_guests"`
	AttendingAdults    int `json:"attending_adults"`
	AttendingChildren  int `json:"attending_children"`
	NotAttendingGuests int `json:"not_attending_guests"`
}

// ComputeStatistics folds the snapshot and the graph built from it into
// dashboard numbers. Orphans count toward the raw totals but are excluded
// from every getter-keyed figure.
func ComputeStatistics(guests []domain.Guest, graph *Graph) Statistics {
	stats := Statistics{TableCounts: make(map[int]int)}

	for _, g := range guests {
		stats.TotalGuests++
		if g.IsChild {
			stats.Children++
		} else {
			stats.Adults++
		}
		stats.TableCounts[g.TableNumber]++
	}

	for i := range graph.Groups {
		group := graph.Groups[i]
		getter := group.Getter
		stats.Invitations++

		if getter.InvitationStatus != domain.InvitationStatusNotSent {
			stats.InvitationsSent++
		}
		if getter.InvitationOpenCount > 0 {
			stats.InvitationsOpened++
		}

		att := GroupAttendance(group)
		switch getter.RSVPStatus {
		case domain.RSVPStatusAttending:
			stats.InvitationsResponded++
			stats.RSVPAttending++
		case domain.RSVPStatusNotAttending:
			stats.InvitationsResponded++
			stats.RSVPNotAttending++
		default:
			stats.RSVPPending++
		}

		stats.AttendingGuests += len(att.Attending)
		stats.AttendingAdults += att.AdultCount
		stats.AttendingChildren += att.ChildCount
		if att.Responded {
			stats.NotAttendingGuests += len(group.Members()) - len(att.Attending)
		}
	}

	if stats.Invitations > 0 {
		n := float64(stats.Invitations)
		stats.SentRate = float64(stats.InvitationsSent) / n
		stats.OpenRate = float64(stats.InvitationsOpened) / n
		stats.ResponseRate = float64(stats.InvitationsResponded) / n
	}

	return stats
}
