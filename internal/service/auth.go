package service

import (
	"context"
	"time"

	"rentfit-backend/internal/domain"
	"rentfit-backend/internal/logger"
	"rentfit-backend/internal/repository"
	"rentfit-backend/internal/security"
)

type authService struct {
	adminRepo repository.AdminRepository
	userRepo  repository.UserRepository
	tokens    security.TokenManager
	adminTTL  time.Duration
	userTTL   time.Duration
}

// NewAuthService wires the credential store, hasher and token manager into a
// single login/registration flow. Admin and user tokens carry separate TTLs.
func NewAuthService(adminRepo repository.AdminRepository, userRepo repository.UserRepository, tokens security.TokenManager, adminTTL, userTTL time.Duration) AuthService {
	return &authService{
		adminRepo: adminRepo,
		userRepo:  userRepo,
		tokens:    tokens,
		adminTTL:  adminTTL,
		userTTL:   userTTL,
	}
}

func (s *authService) RegisterAdmin(ctx context.Context, username, email, password string) (*domain.Admin, error) {
	hash, err := security.HashPassword(password)
	if err != nil {
		return nil, err
	}

	admin := &domain.Admin{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return nil, err
	}
	logger.Info("Admin created", "admin_id", admin.ID, "username", admin.Username)
	return admin, nil
}

func (s *authService) LoginAdmin(ctx context.Context, username, password string) (string, error) {
	admin, err := s.adminRepo.GetByUsername(ctx, username)
	if err != nil {
		return "", ErrInvalidCredentials
	}
	if !security.CheckPassword(password, admin.PasswordHash) {
		return "", ErrInvalidCredentials
	}
	return s.tokens.Generate(admin.ID, admin.Username, domain.RoleAdmin, s.adminTTL)
}

func (s *authService) RegisterUser(ctx context.Context, username, password string) (*domain.User, error) {
	hash, err := security.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: hash,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	logger.Info("User created", "user_id", user.ID, "username", user.Username)
	return user, nil
}

func (s *authService) LoginUser(ctx context.Context, username, password string) (string, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return "", ErrInvalidCredentials
	}
	if !security.CheckPassword(password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}
	return s.tokens.Generate(user.ID, user.Username, domain.RoleUser, s.userTTL)
}
