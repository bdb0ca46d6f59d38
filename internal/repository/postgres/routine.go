package postgres

import (
	"context"
	"database/sql"
	"time"

	"rentfit-backend/internal/domain"
	"rentfit-backend/internal/repository"
)

type routineRepository struct {
	db *sql.DB
}

func NewRoutineRepository(db *sql.DB) repository.RoutineRepository {
	return &routineRepository{db: db}
}

func (r *routineRepository) Create(ctx context.Context, rt *domain.Routine) error {
	query := `INSERT INTO routines (user_id, name, description, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	now := time.Now()
	rt.CreatedAt = now
	rt.UpdatedAt = now
	err := r.db.QueryRowContext(ctx, query, rt.UserID, rt.Name, rt.Description, rt.CreatedAt, rt.UpdatedAt).Scan(&rt.ID)
	return translateErr(err)
}

func (r *routineRepository) ListByUser(ctx context.Context, userID int32) ([]domain.Routine, error) {
	query := `SELECT id, user_id, name, COALESCE(description, ''), created_at, updated_at FROM routines WHERE user_id = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()

	var routines []domain.Routine
	for rows.Next() {
		var rt domain.Routine
		if err := rows.Scan(&rt.ID, &rt.UserID, &rt.Name, &rt.Description, &rt.CreatedAt, &rt.UpdatedAt); err != nil {
			return nil, err
		}
		routines = append(routines, rt)
	}
	return routines, rows.Err()
}

func (r *routineRepository) GetByID(ctx context.Context, id int32) (*domain.Routine, error) {
	rt := &domain.Routine{}
	query := `SELECT id, user_id, name, COALESCE(description, ''), created_at, updated_at FROM routines WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&rt.ID, &rt.UserID, &rt.Name, &rt.Description, &rt.CreatedAt, &rt.UpdatedAt)
	if err != nil {
		return nil, translateErr(err)
	}
	return rt, nil
}

func (r *routineRepository) Update(ctx context.Context, rt *domain.Routine) error {
	query := `UPDATE routines SET name=$1, description=$2, updated_at=$3 WHERE id=$4`
	rt.UpdatedAt = time.Now()
	res, err := r.db.ExecContext(ctx, query, rt.Name, rt.Description, rt.UpdatedAt, rt.ID)
	if err != nil {
		return translateErr(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *routineRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM routines WHERE id = $1`, id)
	if err != nil {
		return translateErr(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *routineRepository) AttachWorkout(ctx context.Context, routineID, workoutID int32) error {
	query := `INSERT INTO workout_routines (workout_id, routine_id) VALUES ($1, $2)`
	_, err := r.db.ExecContext(ctx, query, workoutID, routineID)
	return translateErr(err)
}

func (r *routineRepository) DetachWorkout(ctx context.Context, routineID, workoutID int32) error {
	query := `DELETE FROM workout_routines WHERE workout_id = $1 AND routine_id = $2`
	res, err := r.db.ExecContext(ctx, query, workoutID, routineID)
	if err != nil {
		return translateErr(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *routineRepository) ListWorkouts(ctx context.Context, routineID int32) ([]domain.Workout, error) {
	query := `SELECT w.id, w.user_id, w.name, COALESCE(w.description, ''), w.created_at, w.updated_at
	          FROM workouts w
	          JOIN workout_routines wr ON w.id = wr.workout_id
	          WHERE wr.routine_id = $1 ORDER BY w.id`
	rows, err := r.db.QueryContext(ctx, query, routineID)
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()

	var workouts []domain.Workout
	for rows.Next() {
		var w domain.Workout
		if err := rows.Scan(&w.ID, &w.UserID, &w.Name, &w.Description, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, err
		}
		workouts = append(workouts, w)
	}
	return workouts, rows.Err()
}
