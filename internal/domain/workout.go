package domain

import "time"

// Workout belongs to the user who created it. Workouts and routines form a
// many-to-many relation through workout_routines join rows.
type Workout struct {
	ID          int32     `json:"id"`
	UserID      int32     `json:"user_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type WorkoutUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type Routine struct {
	ID          int32     `json:"id"`
	UserID      int32     `json:"user_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Workouts    []Workout `json:"workouts,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type RoutineUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}
