package domain

import "time"

type RentalStatus string

const (
	RentalStatusPending   RentalStatus = "pending"
	RentalStatusConfirmed RentalStatus = "confirmed"
	RentalStatusFinished  RentalStatus = "finished"
	RentalStatusCancelled RentalStatus = "cancelled"
)

// ValidRentalStatus reports whether s is one of the known statuses.
func ValidRentalStatus(s RentalStatus) bool {
	switch s {
	case RentalStatusPending, RentalStatusConfirmed, RentalStatusFinished, RentalStatusCancelled:
		return true
	}
	return false
}

// CanTransition reports whether a rental may move from one status to another.
// The lifecycle is pending -> confirmed -> finished, with cancellation
// allowed from pending or confirmed.
func (s RentalStatus) CanTransition(to RentalStatus) bool {
	if s == to {
		return true
	}
	switch s {
	case RentalStatusPending:
		return to == RentalStatusConfirmed || to == RentalStatusCancelled
	case RentalStatusConfirmed:
		return to == RentalStatusFinished || to == RentalStatusCancelled
	}
	return false
}

// Rental dates are calendar days in yyyy-mm-dd form. EndDate is nil while the
// rental is open-ended. PricePerDay is a snapshot of the car's rate taken at
// creation time; TotalPrice is derived from it and the (inclusive) day count
// once the range is closed.
type Rental struct {
	ID          int32        `json:"id"`
	CarID       int32        `json:"car_id"`
	RenterID    int32        `json:"renter_id"`
	AdminID     *int32       `json:"admin_id"`
	StartDate   string       `json:"start_date"`
	EndDate     *string      `json:"end_date"`
	PricePerDay float64      `json:"price_per_day"`
	TotalPrice  *float64     `json:"total_price"`
	Status      RentalStatus `json:"status"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

type RentalUpdate struct {
	CarID       *int32        `json:"car_id"`
	RenterID    *int32        `json:"renter_id"`
	AdminID     *int32        `json:"admin_id"`
	StartDate   *string       `json:"start_date"`
	EndDate     *string       `json:"end_date"`
	PricePerDay *float64      `json:"price_per_day"`
	Status      *RentalStatus `json:"status"`
}
