package postgres

import (
	"context"
	"database/sql"
	"time"

	"rentfit-backend/internal/domain"
	"rentfit-backend/internal/repository"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	query := `INSERT INTO rentals (car_id, renter_id, admin_id, start_date, end_date, price_per_day, total_price, status, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	now := time.Now()
	rt.CreatedAt = now
	rt.UpdatedAt = now
	err := r.db.QueryRowContext(ctx, query, rt.CarID, rt.RenterID, rt.AdminID, rt.StartDate, rt.EndDate, rt.PricePerDay, rt.TotalPrice, rt.Status, rt.CreatedAt, rt.UpdatedAt).Scan(&rt.ID)
	return translateErr(err)
}

func (r *rentalRepository) List(ctx context.Context) ([]domain.Rental, error) {
	query := `SELECT id, car_id, renter_id, admin_id, start_date, end_date, price_per_day, total_price, status, created_at, updated_at FROM rentals ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		rt, err := scanRental(rows)
		if err != nil {
			return nil, err
		}
		rentals = append(rentals, *rt)
	}
	return rentals, rows.Err()
}

func (r *rentalRepository) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	query := `SELECT id, car_id, renter_id, admin_id, start_date, end_date, price_per_day, total_price, status, created_at, updated_at FROM rentals WHERE id = $1`
	rt, err := scanRental(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, translateErr(err)
	}
	return rt, nil
}

func (r *rentalRepository) Update(ctx context.Context, rt *domain.Rental) error {
	query := `UPDATE rentals SET car_id=$1, renter_id=$2, admin_id=$3, start_date=$4, end_date=$5, price_per_day=$6, total_price=$7, status=$8, updated_at=$9 WHERE id=$10`
	rt.UpdatedAt = time.Now()
	res, err := r.db.ExecContext(ctx, query, rt.CarID, rt.RenterID, rt.AdminID, rt.StartDate, rt.EndDate, rt.PricePerDay, rt.TotalPrice, rt.Status, rt.UpdatedAt, rt.ID)
	if err != nil {
		return translateErr(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *rentalRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM rentals WHERE id = $1`, id)
	if err != nil {
		return translateErr(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanRental normalizes date columns: start/end dates live as DATE columns
// but travel through the domain as yyyy-mm-dd strings.
func scanRental(row rowScanner) (*domain.Rental, error) {
	rt := &domain.Rental{}
	var startDate time.Time
	var endDate sql.NullTime
	if err := row.Scan(&rt.ID, &rt.CarID, &rt.RenterID, &rt.AdminID, &startDate, &endDate, &rt.PricePerDay, &rt.TotalPrice, &rt.Status, &rt.CreatedAt, &rt.UpdatedAt); err != nil {
		return nil, err
	}
	rt.StartDate = startDate.Format("2006-01-02")
	if endDate.Valid {
		s := endDate.Time.Format("2006-01-02")
		rt.EndDate = &s
	}
	return rt, nil
}
