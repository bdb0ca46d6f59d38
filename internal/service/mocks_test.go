package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"rentfit-backend/internal/domain"
	"rentfit-backend/internal/security"
)

type mockAdminRepo struct {
	mock.Mock
}

func (m *mockAdminRepo) Create(ctx context.Context, admin *domain.Admin) error {
	args := m.Called(ctx, admin)
	return args.Error(0)
}

func (m *mockAdminRepo) GetByID(ctx context.Context, id int32) (*domain.Admin, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Admin), args.Error(1)
}

func (m *mockAdminRepo) GetByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Admin), args.Error(1)
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type mockTokenManager struct {
	mock.Mock
}

func (m *mockTokenManager) Generate(subjectID int32, username string, role domain.Role, ttl time.Duration) (string, error) {
	args := m.Called(subjectID, username, role, ttl)
	return args.String(0), args.Error(1)
}

func (m *mockTokenManager) Validate(tokenString string) (*security.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*security.Claims), args.Error(1)
}

type mockRenterRepo struct {
	mock.Mock
}

func (m *mockRenterRepo) Create(ctx context.Context, renter *domain.Renter) error {
	args := m.Called(ctx, renter)
	return args.Error(0)
}

func (m *mockRenterRepo) List(ctx context.Context) ([]domain.Renter, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Renter), args.Error(1)
}

func (m *mockRenterRepo) GetByID(ctx context.Context, id int32) (*domain.Renter, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Renter), args.Error(1)
}

func (m *mockRenterRepo) Update(ctx context.Context, renter *domain.Renter) error {
	args := m.Called(ctx, renter)
	return args.Error(0)
}

func (m *mockRenterRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockCarRepo struct {
	mock.Mock
}

func (m *mockCarRepo) Create(ctx context.Context, car *domain.Car) error {
	args := m.Called(ctx, car)
	return args.Error(0)
}

func (m *mockCarRepo) List(ctx context.Context) ([]domain.Car, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Car), args.Error(1)
}

func (m *mockCarRepo) GetByID(ctx context.Context, id int32) (*domain.Car, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Car), args.Error(1)
}

func (m *mockCarRepo) Update(ctx context.Context, car *domain.Car) error {
	args := m.Called(ctx, car)
	return args.Error(0)
}

func (m *mockCarRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockRentalRepo struct {
	mock.Mock
}

func (m *mockRentalRepo) Create(ctx context.Context, rental *domain.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}

func (m *mockRentalRepo) List(ctx context.Context) ([]domain.Rental, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rental), args.Error(1)
}

func (m *mockRentalRepo) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}

func (m *mockRentalRepo) Update(ctx context.Context, rental *domain.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}

func (m *mockRentalRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockWorkoutRepo struct {
	mock.Mock
}

func (m *mockWorkoutRepo) Create(ctx context.Context, workout *domain.Workout) error {
	args := m.Called(ctx, workout)
	return args.Error(0)
}

func (m *mockWorkoutRepo) ListByUser(ctx context.Context, userID int32) ([]domain.Workout, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Workout), args.Error(1)
}

func (m *mockWorkoutRepo) GetByID(ctx context.Context, id int32) (*domain.Workout, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workout), args.Error(1)
}

func (m *mockWorkoutRepo) Update(ctx context.Context, workout *domain.Workout) error {
	args := m.Called(ctx, workout)
	return args.Error(0)
}

func (m *mockWorkoutRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockRoutineRepo struct {
	mock.Mock
}

func (m *mockRoutineRepo) Create(ctx context.Context, routine *domain.Routine) error {
	args := m.Called(ctx, routine)
	return args.Error(0)
}

func (m *mockRoutineRepo) ListByUser(ctx context.Context, userID int32) ([]domain.Routine, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Routine), args.Error(1)
}

func (m *mockRoutineRepo) GetByID(ctx context.Context, id int32) (*domain.Routine, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Routine), args.Error(1)
}

func (m *mockRoutineRepo) Update(ctx context.Context, routine *domain.Routine) error {
	args := m.Called(ctx, routine)
	return args.Error(0)
}

func (m *mockRoutineRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockRoutineRepo) AttachWorkout(ctx context.Context, routineID, workoutID int32) error {
	args := m.Called(ctx, routineID, workoutID)
	return args.Error(0)
}

func (m *mockRoutineRepo) DetachWorkout(ctx context.Context, routineID, workoutID int32) error {
	args := m.Called(ctx, routineID, workoutID)
	return args.Error(0)
}

func (m *mockRoutineRepo) ListWorkouts(ctx context.Context, routineID int32) ([]domain.Workout, error) {
	args := m.Called(ctx, routineID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Workout), args.Error(1)
}
