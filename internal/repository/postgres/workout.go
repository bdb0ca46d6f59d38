package postgres

import (
	"context"
	"database/sql"
	"time"

	"rentfit-backend/internal/domain"
	"rentfit-backend/internal/repository"
)

type workoutRepository struct {
	db *sql.DB
}

func NewWorkoutRepository(db *sql.DB) repository.WorkoutRepository {
	return &workoutRepository{db: db}
}

func (r *workoutRepository) Create(ctx context.Context, w *domain.Workout) error {
	query := `INSERT INTO workouts (user_id, name, description, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	now := time.Now()
	w.CreatedAt = now
	w.UpdatedAt = now
	err := r.db.QueryRowContext(ctx, query, w.UserID, w.Name, w.Description, w.CreatedAt, w.UpdatedAt).Scan(&w.ID)
	return translateErr(err)
}

func (r *workoutRepository) ListByUser(ctx context.Context, userID int32) ([]domain.Workout, error) {
	query := `SELECT id, user_id, name, COALESCE(description, ''), created_at, updated_at FROM workouts WHERE user_id = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, userID)
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

func (r *workoutRepository) GetByID(ctx context.Context, id int32) (*domain.Workout, error) {
	w := &domain.Workout{}
	query := `SELECT id, user_id, name, COALESCE(description, ''), created_at, updated_at FROM workouts WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&w.ID, &w.UserID, &w.Name, &w.Description, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return nil, translateErr(err)
	}
	return w, nil
}

func (r *workoutRepository) Update(ctx context.Context, w *domain.Workout) error {
	query := `UPDATE workouts SET name=$1, description=$2, updated_at=$3 WHERE id=$4`
	w.UpdatedAt = time.Now()
	res, err := r.db.ExecContext(ctx, query, w.Name, w.Description, w.UpdatedAt, w.ID)
	if err != nil {
		return translateErr(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *workoutRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM workouts WHERE id = $1`, id)
	if err != nil {
		return translateErr(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
