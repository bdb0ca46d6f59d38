package domain

import "time"

type CarStatus string

const (
	CarStatusAvailable   CarStatus = "available"
	CarStatusRented      CarStatus = "rented"
	CarStatusMaintenance CarStatus = "maintenance"
)

// ValidCarStatus reports whether s is one of the known statuses.
func ValidCarStatus(s CarStatus) bool {
	switch s {
	case CarStatusAvailable, CarStatusRented, CarStatusMaintenance:
		return true
	}
	return false
}

type Car struct {
	ID                int32     `json:"id"`
	PlateNumber       string    `json:"plate_number"`
	Brand             string    `json:"brand"`
	Model             string    `json:"model"`
	Mileage           *int32    `json:"mileage"`
	Status            CarStatus `json:"status"`
	RentalPricePerDay float64   `json:"rental_price_per_day"`
	RenterID          *int32    `json:"renter_id"`
	AdminID           *int32    `json:"admin_id"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type CarUpdate struct {
	PlateNumber       *string    `json:"plate_number"`
	Brand             *string    `json:"brand"`
	Model             *string    `json:"model"`
	Mileage           *int32     `json:"mileage"`
	Status            *CarStatus `json:"status"`
	RentalPricePerDay *float64   `json:"rental_price_per_day"`
	RenterID          *int32     `json:"renter_id"`
	AdminID           *int32     `json:"admin_id"`
}
