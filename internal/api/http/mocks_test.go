package http

import (
	"context"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/mock"

	"rentfit-backend/internal/domain"
	"rentfit-backend/internal/security"
)

const testSecret = "handler-test-secret-key-0123456789abcdef"

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) RegisterAdmin(ctx context.Context, username, email, password string) (*domain.Admin, error) {
	args := m.Called(ctx, username, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Admin), args.Error(1)
}

func (m *mockAuthService) LoginAdmin(ctx context.Context, username, password string) (string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Error(1)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, username, password string) (*domain.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockAuthService) LoginUser(ctx context.Context, username, password string) (string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Error(1)
}

type mockRenterService struct {
	mock.Mock
}

func (m *mockRenterService) CreateRenter(ctx context.Context, renter *domain.Renter) error {
	args := m.Called(ctx, renter)
	return args.Error(0)
}

func (m *mockRenterService) ListRenters(ctx context.Context) ([]domain.Renter, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Renter), args.Error(1)
}

func (m *mockRenterService) GetRenter(ctx context.Context, id int32) (*domain.Renter, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Renter), args.Error(1)
}

func (m *mockRenterService) UpdateRenter(ctx context.Context, id int32, update domain.RenterUpdate) (*domain.Renter, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Renter), args.Error(1)
}

func (m *mockRenterService) DeleteRenter(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockCarService struct {
	mock.Mock
}

func (m *mockCarService) CreateCar(ctx context.Context, car *domain.Car) error {
	args := m.Called(ctx, car)
	return args.Error(0)
}

func (m *mockCarService) ListCars(ctx context.Context) ([]domain.Car, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Car), args.Error(1)
}

func (m *mockCarService) GetCar(ctx context.Context, id int32) (*domain.Car, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Car), args.Error(1)
}

func (m *mockCarService) UpdateCar(ctx context.Context, id int32, update domain.CarUpdate) (*domain.Car, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Car), args.Error(1)
}

func (m *mockCarService) DeleteCar(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockRentalService struct {
	mock.Mock
}

func (m *mockRentalService) CreateRental(ctx context.Context, rental *domain.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}

func (m *mockRentalService) ListRentals(ctx context.Context) ([]domain.Rental, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rental), args.Error(1)
}

func (m *mockRentalService) GetRental(ctx context.Context, id int32) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}

func (m *mockRentalService) UpdateRental(ctx context.Context, id int32, update domain.RentalUpdate) (*domain.Rental, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}

func (m *mockRentalService) DeleteRental(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockWorkoutService struct {
	mock.Mock
}

func (m *mockWorkoutService) CreateWorkout(ctx context.Context, userID int32, name, description string) (*domain.Workout, error) {
	args := m.Called(ctx, userID, name, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workout), args.Error(1)
}

func (m *mockWorkoutService) ListWorkouts(ctx context.Context, userID int32) ([]domain.Workout, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Workout), args.Error(1)
}

func (m *mockWorkoutService) GetWorkout(ctx context.Context, userID, id int32) (*domain.Workout, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workout), args.Error(1)
}

func (m *mockWorkoutService) UpdateWorkout(ctx context.Context, userID, id int32, update domain.WorkoutUpdate) (*domain.Workout, error) {
	args := m.Called(ctx, userID, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workout), args.Error(1)
}

func (m *mockWorkoutService) DeleteWorkout(ctx context.Context, userID, id int32) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

type mockRoutineService struct {
	mock.Mock
}

func (m *mockRoutineService) CreateRoutine(ctx context.Context, userID int32, name, description string) (*domain.Routine, error) {
	args := m.Called(ctx, userID, name, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Routine), args.Error(1)
}

func (m *mockRoutineService) ListRoutines(ctx context.Context, userID int32) ([]domain.Routine, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Routine), args.Error(1)
}

func (m *mockRoutineService) GetRoutine(ctx context.Context, userID, id int32) (*domain.Routine, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Routine), args.Error(1)
}

func (m *mockRoutineService) UpdateRoutine(ctx context.Context, userID, id int32, update domain.RoutineUpdate) (*domain.Routine, error) {
	args := m.Called(ctx, userID, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Routine), args.Error(1)
}

func (m *mockRoutineService) DeleteRoutine(ctx context.Context, userID, id int32) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *mockRoutineService) AttachWorkout(ctx context.Context, userID, routineID, workoutID int32) error {
	args := m.Called(ctx, userID, routineID, workoutID)
	return args.Error(0)
}

func (m *mockRoutineService) DetachWorkout(ctx context.Context, userID, routineID, workoutID int32) error {
	args := m.Called(ctx, userID, routineID, workoutID)
	return args.Error(0)
}

// testEnv stands up the full router with mocked services and a real token
// manager, so requests exercise routing, auth and handlers together.
type testEnv struct {
	router  *mux.Router
	tokens  security.TokenManager
	auth    *mockAuthService
	renter  *mockRenterService
	car     *mockCarService
	rental  *mockRentalService
	workout *mockWorkoutService
	routine *mockRoutineService
}

func newTestEnv() *testEnv {
	env := &testEnv{
		tokens:  security.NewTokenManager(testSecret),
		auth:    new(mockAuthService),
		renter:  new(mockRenterService),
		car:     new(mockCarService),
		rental:  new(mockRentalService),
		workout: new(mockWorkoutService),
		routine: new(mockRoutineService),
	}

	handlers := Handlers{
		Auth:    NewAuthHandler(env.auth),
		Renter:  NewRenterHandler(env.renter),
		Car:     NewCarHandler(env.car),
		Rental:  NewRentalHandler(env.rental),
		Workout: NewWorkoutHandler(env.workout),
		Routine: NewRoutineHandler(env.routine),
	}
	env.router = NewRouter(handlers, NewAuthMiddleware(env.tokens), []string{"http://localhost:3000"})
	return env
}

func (env *testEnv) adminToken() string {
	token, _ := env.tokens.Generate(1, "a1", domain.RoleAdmin, time.Hour)
	return token
}

func (env *testEnv) userToken(id int32) string {
	token, _ := env.tokens.Generate(id, "u1", domain.RoleUser, time.Hour)
	return token
}
