package security

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"rentfit-backend/internal/domain"
)

var (
	ErrInvalidToken    = errors.New("invalid token")
	ErrExpiredToken    = errors.New("token has expired")
	ErrMalformedClaims = errors.New("token is missing required claims")
	ErrWrongRole       = errors.New("wrong token role for this endpoint")
)

// Claims defines the standard claims for our application. The role is part
// of the signed payload, so an admin token cannot pass as a user token.
type Claims struct {
	SubjectID int32       `json:"user_id"`
	Username  string      `json:"username"`
	Role      domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// RequireRole checks the signed role claim against the role a route expects.
func (c *Claims) RequireRole(role domain.Role) error {
	if c.Role != role {
		return ErrWrongRole
	}
	return nil
}

type TokenManager interface {
	Generate(subjectID int32, username string, role domain.Role, ttl time.Duration) (string, error)
	Validate(tokenString string) (*Claims, error)
}

type tokenManager struct {
	secret []byte
}

func NewTokenManager(secret string) TokenManager {
	return &tokenManager{
		secret: []byte(secret),
	}
}

func (m *tokenManager) Generate(subjectID int32, username string, role domain.Role, ttl time.Duration) (string, error) {
	claims := Claims{
		SubjectID: subjectID,
		Username:  username,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(int(subjectID)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "rentfit-backend",
			ID:        uuid.NewString(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *tokenManager) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.SubjectID == 0 || claims.Username == "" {
		return nil, ErrMalformedClaims
	}
	return claims, nil
}
