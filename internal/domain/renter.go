package domain

import "time"

// Renter is a customer record managed by admins. Renters hold no credentials;
// they are referenced by cars and rentals.
type Renter struct {
	ID        int32     `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// RenterUpdate carries the fields of a partial update. Only non-nil fields
// are applied.
type RenterUpdate struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Address   *string `json:"address"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
}
