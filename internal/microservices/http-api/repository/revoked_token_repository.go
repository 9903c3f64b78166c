package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedTokenPrefix = "auth:revoked:"

// RevokedTokenRepository is the logout denylist: a revoked token id is kept
// only until the token would have expired anyway.
type RevokedTokenRepository interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// revokedTokenRepository is the redis implementation of RevokedTokenRepository.
// A nil client turns every call into a no-op so the API runs without redis.
type revokedTokenRepository struct {
	client *redis.Client
}

func NewRevokedTokenRepository(client *redis.Client) RevokedTokenRepository {
	return &revokedTokenRepository{client: client}
}

func (r *revokedTokenRepository) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if r == nil || r.client == nil {
		return nil
	}
	if tokenID == "" || ttl <= 0 {
		// nothing to remember for tokens without an id or already expired
		return nil
	}
	if err := r.client.Set(ctx, revokedTokenPrefix+tokenID, 1, ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

func (r *revokedTokenRepository) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if r == nil || r.client == nil || tokenID == "" {
		return false, nil
	}
	err := r.client.Get(ctx, revokedTokenPrefix+tokenID).Err()
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, redis.Nil):
		return false, nil
	default:
		return false, fmt.Errorf("check revoked token: %w", err)
	}
}
