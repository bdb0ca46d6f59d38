package service

import (
	"context"
	"fmt"

	"rentfit-backend/internal/domain"
	"rentfit-backend/internal/repository"
)

type workoutService struct {
	workoutRepo repository.WorkoutRepository
}

func NewWorkoutService(workoutRepo repository.WorkoutRepository) WorkoutService {
	return &workoutService{workoutRepo: workoutRepo}
}

func (s *workoutService) CreateWorkout(ctx context.Context, userID int32, name, description string) (*domain.Workout, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	workout := &domain.Workout{
		UserID:      userID,
		Name:        name,
		Description: description,
	}
	if err := s.workoutRepo.Create(ctx, workout); err != nil {
		return nil, err
	}
	return workout, nil
}

func (s *workoutService) ListWorkouts(ctx context.Context, userID int32) ([]domain.Workout, error) {
	return s.workoutRepo.ListByUser(ctx, userID)
}

// GetWorkout treats another user's workout as absent rather than forbidden,
// so ids cannot be probed across accounts.
func (s *workoutService) GetWorkout(ctx context.Context, userID, id int32) (*domain.Workout, error) {
	workout, err := s.workoutRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if workout.UserID != userID {
		return nil, repository.ErrNotFound
	}
	return workout, nil
}

func (s *workoutService) UpdateWorkout(ctx context.Context, userID, id int32, update domain.WorkoutUpdate) (*domain.Workout, error) {
	workout, err := s.GetWorkout(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		if *update.Name == "" {
			return nil, fmt.Errorf("%w: name must not be empty", ErrValidation)
		}
		workout.Name = *update.Name
	}
	if update.Description != nil {
		workout.Description = *update.Description
	}

	if err := s.workoutRepo.Update(ctx, workout); err != nil {
		return nil, err
	}
	return workout, nil
}

func (s *workoutService) DeleteWorkout(ctx context.Context, userID, id int32) error {
	if _, err := s.GetWorkout(ctx, userID, id); err != nil {
		return err
	}
	return s.workoutRepo.Delete(ctx, id)
}
