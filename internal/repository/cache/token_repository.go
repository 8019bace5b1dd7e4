package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/station-booking/internal/domain/repository"
	"github.com/station-booking/internal/pkg/errors"
)

// tokenRepository keeps live refresh token IDs in Redis with a TTL matching
// the token expiry. A missing key means the token was rotated or revoked.
type tokenRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewTokenRepository(redis *Redis) repository.TokenRepository {
	return &tokenRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func tokenKey(tokenID string) string {
	return fmt.Sprintf("refresh_token:%s", tokenID)
}

func (r *tokenRepository) Save(ctx context.Context, tokenID string, userID int64, ttl time.Duration) error {
	err := r.client.Set(ctx, tokenKey(tokenID), userID, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to store refresh token", zap.Error(err))
		return errors.ErrInternalServer
	}

	r.logger.Debug("Refresh token stored", zap.String("token_id", tokenID))
	return nil
}

func (r *tokenRepository) Get(ctx context.Context, tokenID string) (int64, error) {
	val, err := r.client.Get(ctx, tokenKey(tokenID)).Result()
	if err == redis.Nil {
		return 0, errors.ErrInvalidToken
	}
	if err != nil {
		r.logger.Error("Failed to read refresh token", zap.Error(err))
		return 0, errors.ErrInternalServer
	}

	userID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, errors.ErrInvalidToken
	}
	return userID, nil
}

func (r *tokenRepository) Delete(ctx context.Context, tokenID string) error {
	if err := r.client.Del(ctx, tokenKey(tokenID)).Err(); err != nil {
		r.logger.Error("Failed to delete refresh token", zap.Error(err))
		return errors.ErrInternalServer
	}

	r.logger.Debug("Refresh token deleted", zap.String("token_id", tokenID))
	return nil
}
