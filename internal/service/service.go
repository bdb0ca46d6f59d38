package service

import (
	"context"
	"errors"

	"rentfit-backend/internal/domain"
)

var (
	// ErrInvalidCredentials covers both an unknown username and a password
	// mismatch so the login response never reveals which one failed.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrValidation marks input rejected before it reaches the data model.
	ErrValidation = errors.New("invalid input")
	// ErrInvalidTransition marks a rental status change outside the lifecycle.
	ErrInvalidTransition = errors.New("invalid rental status transition")
)

type AuthService interface {
	RegisterAdmin(ctx context.Context, username, email, password string) (*domain.Admin, error)
	LoginAdmin(ctx context.Context, username, password string) (string, error)
	RegisterUser(ctx context.Context, username, password string) (*domain.User, error)
	LoginUser(ctx context.Context, username, password string) (string, error)
}

type RenterService interface {
	CreateRenter(ctx context.Context, renter *domain.Renter) error
	ListRenters(ctx context.Context) ([]domain.Renter, error)
	GetRenter(ctx context.Context, id int32) (*domain.Renter, error)
	UpdateRenter(ctx context.Context, id int32, update domain.RenterUpdate) (*domain.Renter, error)
	DeleteRenter(ctx context.Context, id int32) error
}

type CarService interface {
	CreateCar(ctx context.Context, car *domain.Car) error
	ListCars(ctx context.Context) ([]domain.Car, error)
	GetCar(ctx context.Context, id int32) (*domain.Car, error)
	UpdateCar(ctx context.Context, id int32, update domain.CarUpdate) (*domain.Car, error)
	DeleteCar(ctx context.Context, id int32) error
}

type RentalService interface {
	CreateRental(ctx context.Context, rental *domain.Rental) error
	ListRentals(ctx context.Context) ([]domain.Rental, error)
	GetRental(ctx context.Context, id int32) (*domain.Rental, error)
	UpdateRental(ctx context.Context, id int32, update domain.RentalUpdate) (*domain.Rental, error)
	DeleteRental(ctx context.Context, id int32) error
}

type WorkoutService interface {
	CreateWorkout(ctx context.Context, userID int32, name, description string) (*domain.Workout, error)
	ListWorkouts(ctx context.Context, userID int32) ([]domain.Workout, error)
	GetWorkout(ctx context.Context, userID, id int32) (*domain.Workout, error)
	UpdateWorkout(ctx context.Context, userID, id int32, update domain.WorkoutUpdate) (*domain.Workout, error)
	DeleteWorkout(ctx context.Context, userID, id int32) error
}

type RoutineService interface {
	CreateRoutine(ctx context.Context, userID int32, name, description string) (*domain.Routine, error)
	ListRoutines(ctx context.Context, userID int32) ([]domain.Routine, error)
	GetRoutine(ctx context.Context, userID, id int32) (*domain.Routine, error)
	UpdateRoutine(ctx context.Context, userID, id int32, update domain.RoutineUpdate) (*domain.Routine, error)
	DeleteRoutine(ctx context.Context, userID, id int32) error
	AttachWorkout(ctx context.Context, userID, routineID, workoutID int32) error
	DetachWorkout(ctx context.Context, userID, routineID, workoutID int32) error
}
