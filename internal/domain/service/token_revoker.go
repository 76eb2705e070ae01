package service

import (
	"context"
	"time"
)

// TokenRevoker keeps a denylist of token IDs that logged out before expiry.
type TokenRevoker interface {
	// Revoke denies tokenID until expiresAt.
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error

	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
