package service

import (
	"context"
	"fmt"

	"rentfit-backend/internal/domain"
	"rentfit-backend/internal/repository"
)

type routineService struct {
	routineRepo repository.RoutineRepository
	workoutRepo repository.WorkoutRepository
}

func NewRoutineService(routineRepo repository.RoutineRepository, workoutRepo repository.WorkoutRepository) RoutineService {
	return &routineService{
		routineRepo: routineRepo,
		workoutRepo: workoutRepo,
	}
}

func (s *routineService) CreateRoutine(ctx context.Context, userID int32, name, description string) (*domain.Routine, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	routine := &domain.Routine{
		UserID:      userID,
		Name:        name,
		Description: description,
	}
	if err := s.routineRepo.Create(ctx, routine); err != nil {
		return nil, err
	}
	return routine, nil
}

func (s *routineService) ListRoutines(ctx context.Context, userID int32) ([]domain.Routine, error) {
	return s.routineRepo.ListByUser(ctx, userID)
}

// GetRoutine loads the routine with its attached workouts. Another user's
// routine reads as absent.
func (s *routineService) GetRoutine(ctx context.Context, userID, id int32) (*domain.Routine, error) {
	routine, err := s.routineRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if routine.UserID != userID {
		return nil, repository.ErrNotFound
	}
	workouts, err := s.routineRepo.ListWorkouts(ctx, id)
	if err != nil {
		return nil, err
	}
	routine.Workouts = workouts
	return routine, nil
}

func (s *routineService) UpdateRoutine(ctx context.Context, userID, id int32, update domain.RoutineUpdate) (*domain.Routine, error) {
	routine, err := s.GetRoutine(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		if *update.Name == "" {
			return nil, fmt.Errorf("%w: name must not be empty", ErrValidation)
		}
		routine.Name = *update.Name
	}
	if update.Description != nil {
		routine.Description = *update.Description
	}

	if err := s.routineRepo.Update(ctx, routine); err != nil {
		return nil, err
	}
	return routine, nil
}

func (s *routineService) DeleteRoutine(ctx context.Context, userID, id int32) error {
	if _, err := s.GetRoutine(ctx, userID, id); err != nil {
		return err
	}
	return s.routineRepo.Delete(ctx, id)
}

func (s *routineService) AttachWorkout(ctx context.Context, userID, routineID, workoutID int32) error {
	if err := s.checkOwnership(ctx, userID, routineID, workoutID); err != nil {
		return err
	}
	return s.routineRepo.AttachWorkout(ctx, routineID, workoutID)
}

func (s *routineService) DetachWorkout(ctx context.Context, userID, routineID, workoutID int32) error {
	if err := s.checkOwnership(ctx, userID, routineID, workoutID); err != nil {
		return err
	}
	return s.routineRepo.DetachWorkout(ctx, routineID, workoutID)
}

// checkOwnership verifies both sides of the association belong to the caller.
func (s *routineService) checkOwnership(ctx context.Context, userID, routineID, workoutID int32) error {
	routine, err := s.routineRepo.GetByID(ctx, routineID)
	if err != nil {
		return err
	}
	if routine.UserID != userID {
		return repository.ErrNotFound
	}
	workout, err := s.workoutRepo.GetByID(ctx, workoutID)
	if err != nil {
		return err
	}
	if workout.UserID != userID {
		return repository.ErrNotFound
	}
	return nil
}
