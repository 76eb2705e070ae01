package service

import (
	"time"

	"cardportal/internal/domain/entity"

	"github.com/google/uuid"
)

// Claims is what a verified token asserts about its bearer.
type Claims struct {
	TokenID   string // jti, used for revocation
	UserID    uuid.UUID
	Role      entity.Role
	ExpiresAt time.Time
}

// TokenService issues and verifies signed access tokens.
type TokenService interface {
	// GenerateToken signs a token carrying {id, role}.
	GenerateToken(userID uuid.UUID, role entity.Role) (token string, claims *Claims, err error)

	// ValidateToken checks signature and expiry.
	ValidateToken(token string) (*Claims, error)

	// TokenTTL is the lifetime of issued tokens.
	TokenTTL() time.Duration
}
