package postgres

import (
	"context"
	"database/sql"
	"time"

	"rentfit-backend/internal/domain"
	"rentfit-backend/internal/repository"
)

type renterRepository struct {
	db *sql.DB
}

func NewRenterRepository(db *sql.DB) repository.RenterRepository {
	return &renterRepository{db: db}
}

func (r *renterRepository) Create(ctx context.Context, rn *domain.Renter) error {
	query := `INSERT INTO renters (first_name, last_name, address, phone, email, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	rn.CreatedAt = time.Now()
	err := r.db.QueryRowContext(ctx, query, rn.FirstName, rn.LastName, rn.Address, rn.Phone, rn.Email, rn.CreatedAt).Scan(&rn.ID)
	return translateErr(err)
}

func (r *renterRepository) List(ctx context.Context) ([]domain.Renter, error) {
	query := `SELECT id, first_name, last_name, COALESCE(address, ''), COALESCE(phone, ''), COALESCE(email, ''), created_at FROM renters ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()

	var renters []domain.Renter
	for rows.Next() {
		var rn domain.Renter
		if err := rows.Scan(&rn.ID, &rn.FirstName, &rn.LastName, &rn.Address, &rn.Phone, &rn.Email, &rn.CreatedAt); err != nil {
			return nil, err
		}
		renters = append(renters, rn)
	}
	return renters, rows.Err()
}

func (r *renterRepository) GetByID(ctx context.Context, id int32) (*domain.Renter, error) {
	rn := &domain.Renter{}
	query := `SELECT id, first_name, last_name, COALESCE(address, ''), COALESCE(phone, ''), COALESCE(email, ''), created_at FROM renters WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&rn.ID, &rn.FirstName, &rn.LastName, &rn.Address, &rn.Phone, &rn.Email, &rn.CreatedAt)
	if err != nil {
		return nil, translateErr(err)
	}
	return rn, nil
}

func (r *renterRepository) Update(ctx context.Context, rn *domain.Renter) error {
	query := `UPDATE renters SET first_name=$1, last_name=$2, address=$3, phone=$4, email=$5 WHERE id=$6`
	res, err := r.db.ExecContext(ctx, query, rn.FirstName, rn.LastName, rn.Address, rn.Phone, rn.Email, rn.ID)
	if err != nil {
		return translateErr(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *renterRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM renters WHERE id = $1`, id)
	if err != nil {
		return translateErr(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
