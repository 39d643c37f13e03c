package postgres

import (
	"database/sql"

	"verdata-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.RequestRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                db,
		RequestRepository: NewRequestRepository(db),
	}
}
