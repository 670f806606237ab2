package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wedding-backend/internal/domain"
	"wedding-backend/internal/repository/postgres"
)

var guestRowColumns = []string{
	"id", "first_name", "last_name", "table_number", "is_child", "is_invitation_getter", "linked_invitation_getter_id",
	"invitation_status", "invitation_sent_at", "invitation_opened_at", "last_opened_at", "invitation_open_count",
	"rsvp_status", "rsvp_submitted_at", "attending_guest_ids", "requires_accommodation", "needs_transport",
	"transport_details", "has_dietary_restrictions", "dietary_note",
	"phone_number", "email", "location", "created_on", "updated_on",
}

func addGuestRow(rows *sqlmock.Rows, id, firstName, lastName string) *sqlmock.Rows {
	now := time.Now()
	return rows.AddRow(
		id, firstName, lastName, 1, false, true, nil,
		domain.InvitationStatusNotSent, nil, nil, nil, 0,
		domain.RSVPStatusPending, nil, "{}", false, false,
		"", false, "",
		"", "", "", now, now,
	)
}

func TestGuestRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewGuestRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := addGuestRow(sqlmock.NewRows(guestRowColumns), "g1", "Anna", "Tamm")
		mock.ExpectQuery("SELECT (.+) FROM guests WHERE id =").
			WithArgs("g1").
			WillReturnRows(rows)

		g, err := repo.GetByID(ctx, "g1")
		require.NoError(t, err)
		assert.Equal(t, "g1", g.ID)
		assert.Equal(t, "Anna", g.FirstName)
		assert.Equal(t, "Tamm", g.LastName)
		assert.True(t, g.IsInvitationGetter)
		assert.Nil(t, g.LinkedInvitationGetterID)
		assert.Empty(t, g.RSVPResponses.AttendingGuestIDs)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM guests WHERE id =").
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows(guestRowColumns))

		_, err := repo.GetByID(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrGuestNotFound)
	})
}

func TestGuestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewGuestRepository(db)
	ctx := context.Background()

	t.Run("AssignsIDAndTimestamps", func(t *testing.T) {
		g := &domain.Guest{
			FirstName:          "Anna",
			LastName:           "Tamm",
			TableNumber:        3,
			IsInvitationGetter: true,
			InvitationStatus:   domain.InvitationStatusNotSent,
			RSVPStatus:         domain.RSVPStatusPending,
		}

		mock.ExpectExec("INSERT INTO guests").
			WithArgs(
				sqlmock.AnyArg(), g.FirstName, g.LastName, g.TableNumber, g.IsChild, g.IsInvitationGetter, g.LinkedInvitationGetterID,
				g.InvitationStatus, g.InvitationSentAt, g.InvitationOpenedAt, g.LastOpenedAt, g.InvitationOpenCount,
				g.RSVPStatus, g.RSVPSubmittedAt, sqlmock.AnyArg(),
				false, false, "", false, "",
				"", "", "", sqlmock.AnyArg(), sqlmock.AnyArg(),
			).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Create(ctx, g)
		require.NoError(t, err)
		assert.NotEmpty(t, g.ID)
		assert.False(t, g.CreatedOn.IsZero())
		assert.Equal(t, g.CreatedOn, g.UpdatedOn)
	})
}

func TestGuestRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewGuestRepository(db)
	ctx := context.Background()

	t.Run("PatchedColumnsOnly", func(t *testing.T) {
		table := 5
		patch := &domain.GuestPatch{TableNumber: &table}

		mock.ExpectExec("UPDATE guests SET table_number = \\$1, updated_on = \\$2 WHERE id = \\$3").
			WithArgs(table, sqlmock.AnyArg(), "g1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Update(ctx, "g1", patch)
		assert.NoError(t, err)
	})

	t.Run("ClearLink", func(t *testing.T) {
		empty := ""
		patch := &domain.GuestPatch{LinkedInvitationGetterID: &empty}

		mock.ExpectExec("UPDATE guests SET linked_invitation_getter_id = \\$1, updated_on = \\$2 WHERE id = \\$3").
			WithArgs(nil, sqlmock.AnyArg(), "g2").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Update(ctx, "g2", patch)
		assert.NoError(t, err)
	})

	t.Run("RSVPResponsesExpand", func(t *testing.T) {
		patch := &domain.GuestPatch{
			RSVPResponses: &domain.RSVPResponses{
				AttendingGuestIDs:     []string{"g1", "g2"},
				RequiresAccommodation: true,
				NeedsTransport:        true,
				TransportDetails:      "Estonia: Tallinn",
			},
		}

		mock.ExpectExec("UPDATE guests SET attending_guest_ids = \\$1, requires_accommodation = \\$2, needs_transport = \\$3, transport_details = \\$4, has_dietary_restrictions = \\$5, dietary_note = \\$6, updated_on = \\$7 WHERE id = \\$8").
			WithArgs(sqlmock.AnyArg(), true, true, "Estonia: Tallinn", false, "", sqlmock.AnyArg(), "g1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Update(ctx, "g1", patch)
		assert.NoError(t, err)
	})

	t.Run("NotFound", func(t *testing.T) {
		table := 5
		patch := &domain.GuestPatch{TableNumber: &table}

		mock.ExpectExec("UPDATE guests SET").
			WithArgs(table, sqlmock.AnyArg(), "missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(ctx, "missing", patch)
		assert.ErrorIs(t, err, domain.ErrGuestNotFound)
	})

	t.Run("EmptyPatchIsNoop", func(t *testing.T) {
		err := repo.Update(ctx, "g1", &domain.GuestPatch{})
		assert.NoError(t, err)
	})
}

func TestGuestRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewGuestRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM guests WHERE id =").
			WithArgs("g1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Delete(ctx, "g1")
		assert.NoError(t, err)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM guests WHERE id =").
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrGuestNotFound)
	})
}

func TestGuestRepository_FindGetterByName(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewGuestRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := addGuestRow(sqlmock.NewRows(guestRowColumns), "g1", "Anna", "Tamm")
		mock.ExpectQuery("SELECT (.+) FROM guests\\s+WHERE LOWER\\(first_name\\) = LOWER\\(\\$1\\)").
			WithArgs("anna", "tamm").
			WillReturnRows(rows)

		g, err := repo.FindGetterByName(ctx, "anna", "tamm")
		require.NoError(t, err)
		assert.Equal(t, "g1", g.ID)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM guests\\s+WHERE LOWER\\(first_name\\)").
			WithArgs("Nobody", "Here").
			WillReturnRows(sqlmock.NewRows(guestRowColumns))

		_, err := repo.FindGetterByName(ctx, "Nobody", "Here")
		assert.ErrorIs(t, err, domain.ErrGuestNotFound)
	})
}

func TestGuestRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewGuestRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows(guestRowColumns)
		addGuestRow(rows, "g1", "Anna", "Tamm")
		addGuestRow(rows, "g2", "Oleh", "Shevchenko")
		mock.ExpectQuery("SELECT (.+) FROM guests ORDER BY created_on").
			WillReturnRows(rows)

		guests, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, guests, 2)
		assert.Equal(t, "g1", guests[0].ID)
		assert.Equal(t, "g2", guests[1].ID)
	})

	t.Run("Empty", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM guests ORDER BY created_on").
			WillReturnRows(sqlmock.NewRows(guestRowColumns))

		guests, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, guests)
	})
}

func TestGuestRepository_ListByGetter(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewGuestRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := addGuestRow(sqlmock.NewRows(guestRowColumns), "g2", "Mart", "Tamm")
		mock.ExpectQuery("SELECT (.+) FROM guests WHERE linked_invitation_getter_id =").
			WithArgs("g1").
			WillReturnRows(rows)

		guests, err := repo.ListByGetter(ctx, "g1")
		require.NoError(t, err)
		require.Len(t, guests, 1)
		assert.Equal(t, "g2", guests[0].ID)
	})
}
