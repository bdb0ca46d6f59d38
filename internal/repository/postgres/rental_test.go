package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"rentfit-backend/internal/domain"
	"rentfit-backend/internal/repository"
)

var rentalColumns = []string{"id", "car_id", "renter_id", "admin_id", "start_date", "end_date", "price_per_day", "total_price", "status", "created_at", "updated_at"}

func TestRentalRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewRentalRepository(db)
	now := time.Now()

	t.Run("OpenEnded", func(t *testing.T) {
		start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		rows := sqlmock.NewRows(rentalColumns).
			AddRow(int32(1), int32(2), int32(3), nil, start, nil, 50.0, nil, "pending", now, now)
		mock.ExpectQuery(`SELECT (.+) FROM rentals WHERE id = \$1`).
			WithArgs(int32(1)).
			WillReturnRows(rows)

		rental, err := repo.GetByID(context.Background(), 1)
		assert.NoError(t, err)
		// DATE columns travel as yyyy-mm-dd strings.
		assert.Equal(t, "2025-06-01", rental.StartDate)
		assert.Nil(t, rental.EndDate)
		assert.Nil(t, rental.TotalPrice)
		assert.Equal(t, domain.RentalStatusPending, rental.Status)
	})

	t.Run("ClosedRange", func(t *testing.T) {
		start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)
		rows := sqlmock.NewRows(rentalColumns).
			AddRow(int32(1), int32(2), int32(3), nil, start, end, 50.0, 150.0, "confirmed", now, now)
		mock.ExpectQuery(`SELECT (.+) FROM rentals WHERE id = \$1`).
			WithArgs(int32(1)).
			WillReturnRows(rows)

		rental, err := repo.GetByID(context.Background(), 1)
		assert.NoError(t, err)
		assert.NotNil(t, rental.EndDate)
		assert.Equal(t, "2025-06-03", *rental.EndDate)
		assert.Equal(t, 150.0, *rental.TotalPrice)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM rentals WHERE id = \$1`).
			WithArgs(int32(99)).
			WillReturnRows(sqlmock.NewRows(rentalColumns))

		_, err := repo.GetByID(context.Background(), 99)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRentalRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewRentalRepository(db)

	mock.ExpectQuery(`INSERT INTO rentals`).
		WithArgs(int32(2), int32(3), nil, "2025-06-01", nil, 50.0, nil, domain.RentalStatusPending, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int32(1)))

	rental := &domain.Rental{
		CarID:       2,
		RenterID:    3,
		StartDate:   "2025-06-01",
		PricePerDay: 50,
		Status:      domain.RentalStatusPending,
	}
	err = repo.Create(context.Background(), rental)
	assert.NoError(t, err)
	assert.Equal(t, int32(1), rental.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRentalRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewRentalRepository(db)

	mock.ExpectExec(`DELETE FROM rentals WHERE id = \$1`).
		WithArgs(int32(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), 99), repository.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
