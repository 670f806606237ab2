package postgres

import (
	"database/sql"

	_ "github.com/lib/pq"

	"wedding-backend/internal/repository"
)

type Store struct {
	db *sql.DB
	repository.GuestRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:              db,
		GuestRepository: NewGuestRepository(db),
	}
}
