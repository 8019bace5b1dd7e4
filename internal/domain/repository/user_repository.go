package repository

import (
	"context"
	"time"

	"github.com/station-booking/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

// TokenRepository stores live refresh token IDs so they can be rotated and
// revoked independently of their JWT expiry.
type TokenRepository interface {
	Save(ctx context.Context, tokenID string, userID int64, ttl time.Duration) error
	// Get returns the owning user id, or a not-found error for unknown or
	// revoked tokens.
	Get(ctx context.Context, tokenID string) (int64, error)
	Delete(ctx context.Context, tokenID string) error
}
