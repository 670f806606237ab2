package domain

import "time"

type InvitationStatus string

const (
	InvitationStatusNotSent   InvitationStatus = "not_sent"
	InvitationStatusSent      InvitationStatus = "sent"
	InvitationStatusOpened    InvitationStatus = "opened"
	InvitationStatusResponded InvitationStatus = "responded"
	InvitationStatusDeclined  InvitationStatus = "declined"
)

type RSVPStatus string

const (
	RSVPStatusPending      RSVPStatus = "pending"
	RSVPStatusAttending    RSVPStatus = "attending"
	RSVPStatusNotAttending RSVPStatus = "not_attending"
)

// Guest is the single persisted entity. A guest is either an invitation
// getter (the primary invitee who holds the invitation link and answers for
// the whole group) or a linked guest attached to exactly one getter.
type Guest struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	TableNumber int  `json:"table_number"`
	IsChild     bool `json:"is_child"`

	IsInvitationGetter       bool    `json:"is_invitation_getter"`
	LinkedInvitationGetterID *string `json:"linked_invitation_getter_id,omitempty"`

	InvitationStatus    InvitationStatus `json:"invitation_status"`
	InvitationSentAt    *time.Time       `json:"invitation_sent_at,omitempty"`
	InvitationOpenedAt  *time.Time       `json:"invitation_opened_at,omitempty"`
	LastOpenedAt        *time.Time       `json:"last_opened_at,omitempty"`
	InvitationOpenCount int              `json:"invitation_open_count"`

	RSVPStatus      RSVPStatus    `json:"rsvp_status"`
	RSVPSubmittedAt *time.Time    `json:"rsvp_submitted_at,omitempty"`
	RSVPResponses   RSVPResponses `json:"rsvp_responses"`

	PhoneNumber string `json:"phone_number,omitempty"`
	Email       string `json:"email,omitempty"`
	Location    string `json:"location,omitempty"`

	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}

// RSVPResponses carries the answers a getter submits on behalf of its group.
// AttendingGuestIDs is only meaningful when RSVPStatus is attending and may
// only name members of the getter's own invitation group.
type RSVPResponses struct {
	AttendingGuestIDs      []string `json:"attending_guest_ids"`
	RequiresAccommodation  bool     `json:"requires_accommodation"`
	NeedsTransport         bool     `json:"needs_transport"`
	TransportDetails       string   `json:"transport_details,omitempty"`
	HasDietaryRestrictions bool     `json:"has_dietary_restrictions"`
	DietaryNote            string   `json:"dietary_note,omitempty"`
}

// FullName returns "First Last" for display and email bodies.
func (g *Guest) FullName() string {
	return g.FirstName + " " + g.LastName
}

// GuestPatch is the closed set of fields an organizer edit may change.
// Nil fields are left untouched by the repository; the store never backfills
// defaults for absent fields.
type GuestPatch struct {
	FirstName                *string
	LastName                 *string
	TableNumber              *int
	IsChild                  *bool
	IsInvitationGetter       *bool
	LinkedInvitationGetterID *string
	PhoneNumber              *string
	Email                    *string
	Location                 *string

	InvitationStatus    *InvitationStatus
	InvitationSentAt    *time.Time
	InvitationOpenedAt  *time.Time
	LastOpenedAt        *time.Time
	InvitationOpenCount *int

	RSVPStatus      *RSVPStatus
	RSVPSubmittedAt *time.Time
	RSVPResponses   *RSVPResponses
}

// Apply overlays the patch onto g in memory. Used to validate the guest a
// partial update would produce before anything is persisted.
func (p *GuestPatch) Apply(g *Guest) {
	if p.FirstName != nil {
		g.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		g.LastName = *p.LastName
	}
	if p.TableNumber != nil {
		g.TableNumber = *p.TableNumber
	}
	if p.IsChild != nil {
		g.IsChild = *p.IsChild
	}
	if p.IsInvitationGetter != nil {
		g.IsInvitationGetter = *p.IsInvitationGetter
	}
	if p.LinkedInvitationGetterID != nil {
		if *p.LinkedInvitationGetterID == "" {
			g.LinkedInvitationGetterID = nil
		} else {
			id := *p.LinkedInvitationGetterID
			g.LinkedInvitationGetterID = &id
		}
	}
	if p.PhoneNumber != nil {
		g.PhoneNumber = *p.PhoneNumber
	}
	if p.Email != nil {
		g.Email = *p.Email
	}
	if p.Location != nil {
		g.Location = *p.Location
	}
	if p.InvitationStatus != nil {
		g.InvitationStatus = *p.InvitationStatus
	}
	if p.InvitationSentAt != nil {
		t := *p.InvitationSentAt
		g.InvitationSentAt = &t
	}
	if p.InvitationOpenedAt != nil {
		t := *p.InvitationOpenedAt
		g.InvitationOpenedAt = &t
	}
	if p.LastOpenedAt != nil {
		t := *p.LastOpenedAt
		g.LastOpenedAt = &t
	}
	if p.InvitationOpenCount != nil {
		g.InvitationOpenCount = *p.InvitationOpenCount
	}
	if p.RSVPStatus != nil {
		g.RSVPStatus = *p.RSVPStatus
	}
	if p.RSVPSubmittedAt != nil {
		t := *p.RSVPSubmittedAt
		g.RSVPSubmittedAt = &t
	}
	if p.RSVPResponses != nil {
		g.RSVPResponses = *p.RSVPResponses
	}
}

// IsEmpty reports whether the patch would change nothing.
func (p *GuestPatch) IsEmpty() bool {
	return p.FirstName == nil && p.LastName == nil && p.TableNumber == nil &&
		p.IsChild == nil && p.IsInvitationGetter == nil && p.LinkedInvitationGetterID == nil &&
		p.PhoneNumber == nil && p.Email == nil && p.Location == nil &&
		p.InvitationStatus == nil && p.InvitationSentAt == nil && p.InvitationOpenedAt == nil &&
		p.LastOpenedAt == nil && p.InvitationOpenCount == nil &&
		p.RSVPStatus == nil && p.RSVPSubmittedAt == nil && p.RSVPResponses == nil
}
