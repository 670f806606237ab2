package domain

import "strings"

const (
	MaxTransportDetailsLen = 200
	MaxDietaryNoteLen      = 500
)

// Validate checks the fields an organizer supplies when creating or fully
// editing a guest. A guest is either a getter with no link, or a linked
// guest referencing some other guest's id.
func (g *Guest) Validate() error {
	if strings.TrimSpace(g.FirstName) == "" {
		return NewValidationError("first_name", "required")
	}
	if strings.TrimSpace(g.LastName) == "" {
		return NewValidationError("last_name", "required")
	}
	if g.TableNumber <= 0 {
		return NewValidationError("table_number", "must be positive")
	}
	if g.IsInvitationGetter {
		if g.LinkedInvitationGetterID != nil {
			return NewValidationError("linked_invitation_getter_id", "must be empty for an invitation getter")
		}
	} else {
		if g.LinkedInvitationGetterID == nil || *g.LinkedInvitationGetterID == "" {
			return NewValidationError("linked_invitation_getter_id", "required for a linked guest")
		}
		if *g.LinkedInvitationGetterID == g.ID && g.ID != "" {
			return NewValidationError("linked_invitation_getter_id", "guest cannot link to itself")
		}
	}
	return g.RSVPResponses.Validate()
}

// Validate enforces the free-text length caps on an RSVP payload.
func (r *RSVPResponses) Validate() error {
	if len(r.TransportDetails) > MaxTransportDetailsLen {
		return NewValidationError("transport_details", "too long")
	}
	if len(r.DietaryNote) > MaxDietaryNoteLen {
		return NewValidationError("dietary_note", "too long")
	}
	return nil
}
