package service

import (
	"context"
	"fmt"

	"rentfit-backend/internal/domain"
	"rentfit-backend/internal/repository"
)

type renterService struct {
	renterRepo repository.RenterRepository
}

func NewRenterService(renterRepo repository.RenterRepository) RenterService {
	return &renterService{renterRepo: renterRepo}
}

func (s *renterService) CreateRenter(ctx context.Context, renter *domain.Renter) error {
	if renter.FirstName == "" || renter.LastName == "" {
		return fmt.Errorf("%w: first_name and last_name are required", ErrValidation)
	}
	return s.renterRepo.Create(ctx, renter)
}

func (s *renterService) ListRenters(ctx context.Context) ([]domain.Renter, error) {
	return s.renterRepo.List(ctx)
}

func (s *renterService) GetRenter(ctx context.Context, id int32) (*domain.Renter, error) {
	return s.renterRepo.GetByID(ctx, id)
}

func (s *renterService) UpdateRenter(ctx context.Context, id int32, update domain.RenterUpdate) (*domain.Renter, error) {
	renter, err := s.renterRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.FirstName != nil {
		renter.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		renter.LastName = *update.LastName
	}
	if update.Address != nil {
		renter.Address = *update.Address
	}
	if update.Phone != nil {
		renter.Phone = *update.Phone
	}
	if update.Email != nil {
		renter.Email = *update.Email
	}

	if err := s.renterRepo.Update(ctx, renter); err != nil {
		return nil, err
	}
	return renter, nil
}

func (s *renterService) DeleteRenter(ctx context.Context, id int32) error {
	if _, err := s.renterRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.renterRepo.Delete(ctx, id)
}
