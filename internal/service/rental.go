package service

import (
	"context"
	"fmt"

	"rentfit-backend/internal/domain"
	"rentfit-backend/internal/logger"
	"rentfit-backend/internal/repository"
	"rentfit-backend/internal/utils"
)

type rentalService struct {
	rentalRepo repository.RentalRepository
	carRepo    repository.CarRepository
	renterRepo repository.RenterRepository
}

func NewRentalService(rentalRepo repository.RentalRepository, carRepo repository.CarRepository, renterRepo repository.RenterRepository) RentalService {
	return &rentalService{
		rentalRepo: rentalRepo,
		carRepo:    carRepo,
		renterRepo: renterRepo,
	}
}

// CreateRental snapshots the car's daily rate at creation time. Later price
// changes on the car never affect an existing rental.
func (s *rentalService) CreateRental(ctx context.Context, rental *domain.Rental) error {
	if rental.StartDate == "" {
		return fmt.Errorf("%w: start_date is required", ErrValidation)
	}
	if _, err := utils.ParseDate(rental.StartDate); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	car, err := s.carRepo.GetByID(ctx, rental.CarID)
	if err != nil {
		return err
	}
	if _, err := s.renterRepo.GetByID(ctx, rental.RenterID); err != nil {
		return err
	}

	if rental.PricePerDay < 0 {
		return fmt.Errorf("%w: price_per_day must be positive", ErrValidation)
	}
	if rental.PricePerDay == 0 {
		rental.PricePerDay = car.RentalPricePerDay
	}
	if rental.Status == "" {
		rental.Status = domain.RentalStatusPending
	}
	if !domain.ValidRentalStatus(rental.Status) {
		return fmt.Errorf("%w: unknown rental status %q", ErrValidation, rental.Status)
	}

	if rental.EndDate != nil {
		total, err := utils.RentalTotal(rental.StartDate, *rental.EndDate, rental.PricePerDay)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrValidation, err)
		}
		rental.TotalPrice = &total
	}

	if err := s.rentalRepo.Create(ctx, rental); err != nil {
		return err
	}
	logger.Info("Rental created", "rental_id", rental.ID, "car_id", rental.CarID, "renter_id", rental.RenterID)
	return nil
}

func (s *rentalService) ListRentals(ctx context.Context) ([]domain.Rental, error) {
	return s.rentalRepo.List(ctx)
}

func (s *rentalService) GetRental(ctx context.Context, id int32) (*domain.Rental, error) {
	return s.rentalRepo.GetByID(ctx, id)
}

func (s *rentalService) UpdateRental(ctx context.Context, id int32, update domain.RentalUpdate) (*domain.Rental, error) {
	rental, err := s.rentalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	repriced := false

	if update.CarID != nil && *update.CarID != rental.CarID {
		// Re-snapshot the rate when the rental moves to another car,
		// unless the update pins an explicit price.
		car, err := s.carRepo.GetByID(ctx, *update.CarID)
		if err != nil {
			return nil, err
		}
		rental.CarID = car.ID
		if update.PricePerDay == nil {
			rental.PricePerDay = car.RentalPricePerDay
		}
		repriced = true
	}
	if update.RenterID != nil && *update.RenterID != rental.RenterID {
		if _, err := s.renterRepo.GetByID(ctx, *update.RenterID); err != nil {
			return nil, err
		}
		rental.RenterID = *update.RenterID
	}
	if update.AdminID != nil {
		rental.AdminID = update.AdminID
	}
	if update.StartDate != nil {
		if _, err := utils.ParseDate(*update.StartDate); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		rental.StartDate = *update.StartDate
		repriced = true
	}
	if update.EndDate != nil {
		if _, err := utils.ParseDate(*update.EndDate); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		rental.EndDate = update.EndDate
		repriced = true
	}
	if update.PricePerDay != nil {
		if *update.PricePerDay <= 0 {
			return nil, fmt.Errorf("%w: price_per_day must be positive", ErrValidation)
		}
		rental.PricePerDay = *update.PricePerDay
		repriced = true
	}
	if update.Status != nil {
		if !domain.ValidRentalStatus(*update.Status) {
			return nil, fmt.Errorf("%w: unknown rental status %q", ErrValidation, *update.Status)
		}
		if !rental.Status.CanTransition(*update.Status) {
			return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, rental.Status, *update.Status)
		}
		rental.Status = *update.Status
	}

	if repriced && rental.EndDate != nil {
		total, err := utils.RentalTotal(rental.StartDate, *rental.EndDate, rental.PricePerDay)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		rental.TotalPrice = &total
	}

	if err := s.rentalRepo.Update(ctx, rental); err != nil {
		return nil, err
	}
	return rental, nil
}

func (s *rentalService) DeleteRental(ctx context.Context, id int32) error {
	if _, err := s.rentalRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.rentalRepo.Delete(ctx, id)
}
