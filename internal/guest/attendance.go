package guest

import (
	"fmt"

	"wedding-backend/internal/domain"
)

// Attendance is the computed RSVP outcome for one invitation group. Only the
// getter's RSVP fields are authoritative; linked guests carry no independent
// answer.
type Attendance struct {
	// Attending lists the group members actually coming, getter first, then
	// linked guests in group order.
	Attending []domain.Guest
	// PerMember maps each member id to its attending flag. Empty while the
	// RSVP is pending.
	PerMember map[string]bool

	AdultCount int
	ChildCount int

	// Responded is true once the getter submitted any answer. An attending
	// response with an empty attending list keeps Responded true and
	// EmptyAttending true; it is a real answer, not a pending state.
	Responded      bool
	EmptyAttending bool

	Warnings []Warning
}

// GroupAttendance resolves who in the group is coming, per the getter's RSVP.
func GroupAttendance(g Group) Attendance {
	out := Attendance{PerMember: make(map[string]bool)}

	switch g.Getter.RSVPStatus {
	case domain.RSVPStatusPending:
		return out

	case domain.RSVPStatusNotAttending:
		out.Responded = true
		for _, m := range g.Members() {
			out.PerMember[m.ID] = false
		}
		return out

	case domain.RSVPStatusAttending:
		out.Responded = true
		ids := make(map[string]bool, len(g.Getter.RSVPResponses.AttendingGuestIDs))
		for _, id := range g.Getter.RSVPResponses.AttendingGuestIDs {
			if !g.ContainsID(id) {
				out.Warnings = append(out.Warnings, Warning{
					GuestID: g.Getter.ID,
					Message: fmt.Sprintf("attending guest id %s is outside the invitation group", id),
				})
				continue
			}
			ids[id] = true
		}
		for _, m := range g.Members() {
			attending := ids[m.ID]
			out.PerMember[m.ID] = attending
			if !attending {
				continue
			}
			out.Attending = append(out.Attending, m)
			if m.IsChild {
				out.ChildCount++
			} else {
				out.AdultCount++
			}
		}
		out.EmptyAttending = len(out.Attending) == 0
		return out
	}

	return out
}
