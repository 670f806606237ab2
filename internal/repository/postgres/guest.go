package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"wedding-backend/internal/domain"
	"wedding-backend/internal/logger"
	"wedding-backend/internal/repository"
)

const guestColumns = `id, first_name, last_name, table_number, is_child, is_invitation_getter, linked_invitation_getter_id,
	invitation_status, invitation_sent_at, invitation_opened_at, last_opened_at, invitation_open_count,
	rsvp_status, rsvp_submitted_at, attending_guest_ids, requires_accommodation, needs_transport,
	transport_details, has_dietary_restrictions, dietary_note,
	COALESCE(phone_number, ''), COALESCE(email, ''), COALESCE(location, ''), created_on, updated_on`

type guestRepository struct {
	db *sql.DB
}

func NewGuestRepository(db *sql.DB) repository.GuestRepository {
	return &guestRepository{db: db}
}

func (r *guestRepository) List(ctx context.Context) ([]domain.Guest, error) {
	query := `SELECT ` + guestColumns + ` FROM guests ORDER BY created_on`
	logger.DatabaseCall("List", query)
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var guests []domain.Guest
	for rows.Next() {
		g, err := scanGuest(rows)
		if err != nil {
			return nil, err
		}
		guests = append(guests, *g)
	}
	return guests, rows.Err()
}

func (r *guestRepository) GetByID(ctx context.Context, id string) (*domain.Guest, error) {
	query := `SELECT ` + guestColumns + ` FROM guests WHERE id = $1`
	g, err := scanGuest(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrGuestNotFound
	}
	return g, err
}

func (r *guestRepository) Create(ctx context.Context, g *domain.Guest) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	now := time.Now()
	g.CreatedOn = now
	g.UpdatedOn = now

	query := `INSERT INTO guests (id, first_name, last_name, table_number, is_child, is_invitation_getter, linked_invitation_getter_id,
		invitation_status, invitation_sent_at, invitation_opened_at, last_opened_at, invitation_open_count,
		rsvp_status, rsvp_submitted_at, attending_guest_ids, requires_accommodation, needs_transport,
		transport_details, has_dietary_restrictions, dietary_note, phone_number, email, location, created_on, updated_on)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25)`
	logger.DatabaseCall("Create", query, "guest_id", g.ID)
	_, err := r.db.ExecContext(ctx, query,
		g.ID, g.FirstName, g.LastName, g.TableNumber, g.IsChild, g.IsInvitationGetter, g.LinkedInvitationGetterID,
		g.InvitationStatus, g.InvitationSentAt, g.InvitationOpenedAt, g.LastOpenedAt, g.InvitationOpenCount,
		g.RSVPStatus, g.RSVPSubmittedAt, pq.Array(g.RSVPResponses.AttendingGuestIDs),
		g.RSVPResponses.RequiresAccommodation, g.RSVPResponses.NeedsTransport,
		g.RSVPResponses.TransportDetails, g.RSVPResponses.HasDietaryRestrictions, g.RSVPResponses.DietaryNote,
		g.PhoneNumber, g.Email, g.Location, g.CreatedOn, g.UpdatedOn,
	)
	return err
}

func (r *guestRepository) Update(ctx context.Context, id string, patch *domain.GuestPatch) error {
	if patch.IsEmpty() {
		return nil
	}

	var sets []string
	var args []interface{}
	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.FirstName != nil {
		add("first_name", *patch.FirstName)
	}
	if patch.LastName != nil {
		add("last_name", *patch.LastName)
	}
	if patch.TableNumber != nil {
		add("table_number", *patch.TableNumber)
	}
	if patch.IsChild != nil {
		add("is_child", *patch.IsChild)
	}
	if patch.IsInvitationGetter != nil {
		add("is_invitation_getter", *patch.IsInvitationGetter)
	}
	if patch.LinkedInvitationGetterID != nil {
		// An empty id clears the link.
		if *patch.LinkedInvitationGetterID == "" {
			add("linked_invitation_getter_id", nil)
		} else {
			add("linked_invitation_getter_id", *patch.LinkedInvitationGetterID)
		}
	}
	if patch.PhoneNumber != nil {
		add("phone_number", *patch.PhoneNumber)
	}
	if patch.Email != nil {
		add("email", *patch.Email)
	}
	if patch.Location != nil {
		add("location", *patch.Location)
	}
	if patch.InvitationStatus != nil {
		add("invitation_status", *patch.InvitationStatus)
	}
	if patch.InvitationSentAt != nil {
		add("invitation_sent_at", *patch.InvitationSentAt)
	}
	if patch.InvitationOpenedAt != nil {
		add("invitation_opened_at", *patch.InvitationOpenedAt)
	}
	if patch.LastOpenedAt != nil {
		add("last_opened_at", *patch.LastOpenedAt)
	}
	if patch.InvitationOpenCount != nil {
		add("invitation_open_count", *patch.InvitationOpenCount)
	}
	if patch.RSVPStatus != nil {
		add("rsvp_status", *patch.RSVPStatus)
	}
	if patch.RSVPSubmittedAt != nil {
		add("rsvp_submitted_at", *patch.RSVPSubmittedAt)
	}
	if patch.RSVPResponses != nil {
		add("attending_guest_ids", pq.Array(patch.RSVPResponses.AttendingGuestIDs))
		add("requires_accommodation", patch.RSVPResponses.RequiresAccommodation)
		add("needs_transport", patch.RSVPResponses.NeedsTransport)
		add("transport_details", patch.RSVPResponses.TransportDetails)
		add("has_dietary_restrictions", patch.RSVPResponses.HasDietaryRestrictions)
		add("dietary_note", patch.RSVPResponses.DietaryNote)
	}

	add("updated_on", time.Now())
	args = append(args, id)
	query := fmt.Sprintf("UPDATE guests SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))
	logger.DatabaseCall("Update", query, "guest_id", id)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrGuestNotFound
	}
	return nil
}

func (r *guestRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM guests WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrGuestNotFound
	}
	return nil
}

func (r *guestRepository) FindGetterByName(ctx context.Context, firstName, lastName string) (*domain.Guest, error) {
	query := `SELECT ` + guestColumns + ` FROM guests
		WHERE LOWER(first_name) = LOWER($1) AND LOWER(last_name) = LOWER($2) AND is_invitation_getter
		ORDER BY created_on LIMIT 1`
	g, err := scanGuest(r.db.QueryRowContext(ctx, query, firstName, lastName))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrGuestNotFound
	}
	return g, err
}

func (r *guestRepository) ListByGetter(ctx context.Context, getterID string) ([]domain.Guest, error) {
	query := `SELECT ` + guestColumns + ` FROM guests WHERE linked_invitation_getter_id = $1 ORDER BY last_name, first_name`
	rows, err := r.db.QueryContext(ctx, query, getterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var guests []domain.Guest
	for rows.Next() {
		g, err := scanGuest(rows)
		if err != nil {
			return nil, err
		}
		guests = append(guests, *g)
	}
	return guests, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanGuest(row rowScanner) (*domain.Guest, error) {
	g := &domain.Guest{}
	var linkedID sql.NullString
	var sentAt, openedAt, lastOpenedAt, submittedAt sql.NullTime

	err := row.Scan(
		&g.ID, &g.FirstName, &g.LastName, &g.TableNumber, &g.IsChild, &g.IsInvitationGetter, &linkedID,
		&g.InvitationStatus, &sentAt, &openedAt, &lastOpenedAt, &g.InvitationOpenCount,
		&g.RSVPStatus, &submittedAt, pq.Array(&g.RSVPResponses.AttendingGuestIDs),
		&g.RSVPResponses.RequiresAccommodation, &g.RSVPResponses.NeedsTransport,
		&g.RSVPResponses.TransportDetails, &g.RSVPResponses.HasDietaryRestrictions, &g.RSVPResponses.DietaryNote,
		&g.PhoneNumber, &g.Email, &g.Location, &g.CreatedOn, &g.UpdatedOn,
	)
	if err != nil {
		return nil, err
	}

	if linkedID.Valid {
		g.LinkedInvitationGetterID = &linkedID.String
	}
	if sentAt.Valid {
		g.InvitationSentAt = &sentAt.Time
	}
	if openedAt.Valid {
		g.InvitationOpenedAt = &openedAt.Time
	}
	if lastOpenedAt.Valid {
		g.LastOpenedAt = &lastOpenedAt.Time
	}
	if submittedAt.Valid {
		g.RSVPSubmittedAt = &submittedAt.Time
	}
	return g, nil
}
