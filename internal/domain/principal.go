package domain

import "time"

// Role identifies which class of principal a credential belongs to.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Admin is the back-office principal. Admins manage renters, cars and rentals.
type Admin struct {
	ID           int32     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// User is the end-user principal owning workouts and routines.
type User struct {
	ID           int32     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
