package service

import (
	"context"
	"fmt"

	"rentfit-backend/internal/domain"
	"rentfit-backend/internal/repository"
)

type carService struct {
	carRepo repository.CarRepository
}

func NewCarService(carRepo repository.CarRepository) CarService {
	return &carService{carRepo: carRepo}
}

func (s *carService) CreateCar(ctx context.Context, car *domain.Car) error {
	if car.PlateNumber == "" || car.Brand == "" || car.Model == "" {
		return fmt.Errorf("%w: plate_number, brand and model are required", ErrValidation)
	}
	if car.RentalPricePerDay <= 0 {
		return fmt.Errorf("%w: rental_price_per_day must be positive", ErrValidation)
	}
	if car.Status == "" {
		car.Status = domain.CarStatusAvailable
	}
	if !domain.ValidCarStatus(car.Status) {
		return fmt.Errorf("%w: unknown car status %q", ErrValidation, car.Status)
	}
	return s.carRepo.Create(ctx, car)
}

func (s *carService) ListCars(ctx context.Context) ([]domain.Car, error) {
	return s.carRepo.List(ctx)
}

func (s *carService) GetCar(ctx context.Context, id int32) (*domain.Car, error) {
	return s.carRepo.GetByID(ctx, id)
}

func (s *carService) UpdateCar(ctx context.Context, id int32, update domain.CarUpdate) (*domain.Car, error) {
	car, err := s.carRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.PlateNumber != nil {
		car.PlateNumber = *update.PlateNumber
	}
	if update.Brand != nil {
		car.Brand = *update.Brand
	}
	if update.Model != nil {
		car.Model = *update.Model
	}
	if update.Mileage != nil {
		car.Mileage = update.Mileage
	}
	if update.Status != nil {
		if !domain.ValidCarStatus(*update.Status) {
			return nil, fmt.Errorf("%w: unknown car status %q", ErrValidation, *update.Status)
		}
		car.Status = *update.Status
	}
	if update.RentalPricePerDay != nil {
		if *update.RentalPricePerDay <= 0 {
			return nil, fmt.Errorf("%w: rental_price_per_day must be positive", ErrValidation)
		}
		car.RentalPricePerDay = *update.RentalPricePerDay
	}
	if update.RenterID != nil {
		car.RenterID = update.RenterID
	}
	if update.AdminID != nil {
		car.AdminID = update.AdminID
	}

	if err := s.carRepo.Update(ctx, car); err != nil {
		return nil, err
	}
	return car, nil
}

func (s *carService) DeleteCar(ctx context.Context, id int32) error {
	if _, err := s.carRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.carRepo.Delete(ctx, id)
}
