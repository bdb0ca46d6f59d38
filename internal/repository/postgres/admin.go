package postgres

import (
	"context"
	"database/sql"
	"time"

	"rentfit-backend/internal/domain"
	"rentfit-backend/internal/repository"
)

type adminRepository struct {
	db *sql.DB
}

func NewAdminRepository(db *sql.DB) repository.AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) Create(ctx context.Context, a *domain.Admin) error {
	query := `INSERT INTO admins (username, email, password_hash, created_at)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	a.CreatedAt = time.Now()
	err := r.db.QueryRowContext(ctx, query, a.Username, a.Email, a.PasswordHash, a.CreatedAt).Scan(&a.ID)
	return translateErr(err)
}

func (r *adminRepository) GetByID(ctx context.Context, id int32) (*domain.Admin, error) {
	a := &domain.Admin{}
	query := `SELECT id, username, COALESCE(email, ''), password_hash, created_at FROM admins WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&a.ID, &a.Username, &a.Email, &a.PasswordHash, &a.CreatedAt)
	if err != nil {
		return nil, translateErr(err)
	}
	return a, nil
}

func (r *adminRepository) GetByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	a := &domain.Admin{}
	query := `SELECT id, username, COALESCE(email, ''), password_hash, created_at FROM admins WHERE username = $1`
	err := r.db.QueryRowContext(ctx, query, username).Scan(&a.ID, &a.Username, &a.Email, &a.PasswordHash, &a.CreatedAt)
	if err != nil {
		return nil, translateErr(err)
	}
	return a, nil
}
