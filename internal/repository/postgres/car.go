package postgres

import (
	"context"
	"database/sql"
	"time"

	"rentfit-backend/internal/domain"
	"rentfit-backend/internal/logger"
	"rentfit-backend/internal/repository"
)

type carRepository struct {
	db *sql.DB
}

func NewCarRepository(db *sql.DB) repository.CarRepository {
	return &carRepository{db: db}
}

func (r *carRepository) Create(ctx context.Context, c *domain.Car) error {
	query := `INSERT INTO cars (plate_number, brand, model, mileage, status, rental_price_per_day, renter_id, admin_id, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now
	logger.DatabaseCall("INSERT", "cars", "plate_number", c.PlateNumber)
	err := r.db.QueryRowContext(ctx, query, c.PlateNumber, c.Brand, c.Model, c.Mileage, c.Status, c.RentalPricePerDay, c.RenterID, c.AdminID, c.CreatedAt, c.UpdatedAt).Scan(&c.ID)
	return translateErr(err)
}

func (r *carRepository) List(ctx context.Context) ([]domain.Car, error) {
	query := `SELECT id, plate_number, brand, model, mileage, status, rental_price_per_day, renter_id, admin_id, created_at, updated_at FROM cars ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()

	var cars []domain.Car
	for rows.Next() {
		var c domain.Car
		if err := rows.Scan(&c.ID, &c.PlateNumber, &c.Brand, &c.Model, &c.Mileage, &c.Status, &c.RentalPricePerDay, &c.RenterID, &c.AdminID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		cars = append(cars, c)
	}
	return cars, rows.Err()
}

func (r *carRepository) GetByID(ctx context.Context, id int32) (*domain.Car, error) {
	c := &domain.Car{}
	query := `SELECT id, plate_number, brand, model, mileage, status, rental_price_per_day, renter_id, admin_id, created_at, updated_at FROM cars WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.PlateNumber, &c.Brand, &c.Model, &c.Mileage, &c.Status, &c.RentalPricePerDay, &c.RenterID, &c.AdminID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, translateErr(err)
	}
	return c, nil
}

func (r *carRepository) Update(ctx context.Context, c *domain.Car) error {
	query := `UPDATE cars SET plate_number=$1, brand=$2, model=$3, mileage=$4, status=$5, rental_price_per_day=$6, renter_id=$7, admin_id=$8, updated_at=$9 WHERE id=$10`
	c.UpdatedAt = time.Now()
	res, err := r.db.ExecContext(ctx, query, c.PlateNumber, c.Brand, c.Model, c.Mileage, c.Status, c.RentalPricePerDay, c.RenterID, c.AdminID, c.UpdatedAt, c.ID)
	if err != nil {
		return translateErr(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *carRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cars WHERE id = $1`, id)
	if err != nil {
		return translateErr(err)
	}
	n, _ := res.RowsAffected()
	logger.DatabaseResult("DELETE", n, nil, "table", "cars", "id", id)
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
