package postgres

import (
	"database/sql"
	"errors"

	"rentfit-backend/internal/repository"

	"github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.AdminRepository
	repository.UserRepository
	repository.RenterRepository
	repository.CarRepository
	repository.RentalRepository
	repository.WorkoutRepository
	repository.RoutineRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                db,
		AdminRepository:   NewAdminRepository(db),
		UserRepository:    NewUserRepository(db),
		RenterRepository:  NewRenterRepository(db),
		CarRepository:     NewCarRepository(db),
		RentalRepository:  NewRentalRepository(db),
		WorkoutRepository: NewWorkoutRepository(db),
		RoutineRepository: NewRoutineRepository(db),
	}
}

// translateErr maps driver-level errors onto the repository sentinels so
// callers never depend on lib/pq directly.
func translateErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return repository.ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return repository.ErrDuplicate
	}
	return err
}
