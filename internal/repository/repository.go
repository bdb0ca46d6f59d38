package repository

import (
	"context"
	"errors"

	"rentfit-backend/internal/domain"
)

var (
	// ErrNotFound is returned when the referenced row does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when an insert or update violates a
	// uniqueness constraint (duplicate username, email, plate number).
	ErrDuplicate = errors.New("record already exists")
)

type AdminRepository interface {
	Create(ctx context.Context, admin *domain.Admin) error
	GetByID(ctx context.Context, id int32) (*domain.Admin, error)
	GetByUsername(ctx context.Context, username string) (*domain.Admin, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type RenterRepository interface {
	Create(ctx context.Context, renter *domain.Renter) error
	List(ctx context.Context) ([]domain.Renter, error)
	GetByID(ctx context.Context, id int32) (*domain.Renter, error)
	Update(ctx context.Context, renter *domain.Renter) error
	Delete(ctx context.Context, id int32) error
}

type CarRepository interface {
	Create(ctx context.Context, car *domain.Car) error
	List(ctx context.Context) ([]domain.Car, error)
	GetByID(ctx context.Context, id int32) (*domain.Car, error)
	Update(ctx context.Context, car *domain.Car) error
	Delete(ctx context.Context, id int32) error
}

type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) error
	List(ctx context.Context) ([]domain.Rental, error)
	GetByID(ctx context.Context, id int32) (*domain.Rental, error)
	Update(ctx context.Context, rental *domain.Rental) error
	Delete(ctx context.Context, id int32) error
}

type WorkoutRepository interface {
	Create(ctx context.Context, workout *domain.Workout) error
	ListByUser(ctx context.Context, userID int32) ([]domain.Workout, error)
	GetByID(ctx context.Context, id int32) (*domain.Workout, error)
	Update(ctx context.Context, workout *domain.Workout) error
	Delete(ctx context.Context, id int32) error
}

type RoutineRepository interface {
	Create(ctx context.Context, routine *domain.Routine) error
	ListByUser(ctx context.Context, userID int32) ([]domain.Routine, error)
	GetByID(ctx context.Context, id int32) (*domain.Routine, error)
	Update(ctx context.Context, routine *domain.Routine) error
	Delete(ctx context.Context, id int32) error

	// Workout-routine association
	AttachWorkout(ctx context.Context, routineID, workoutID int32) error
	DetachWorkout(ctx context.Context, routineID, workoutID int32) error
	ListWorkouts(ctx context.Context, routineID int32) ([]domain.Workout, error)
}
