package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RevocationStore records per-user credential revocation instants in Redis.
// A token is revoked when it was issued at or before the stored instant.
// Keys expire after the token TTL, at which point every token minted before
// the revocation has expired anyway.
// Key format: revoked:<user_id>
type RevocationStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRevocationStore creates a RevocationStore wrapping the given Redis client.
// ttl should match the JWT lifetime.
func NewRevocationStore(client *redis.Client, ttl time.Duration) *RevocationStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RevocationStore{client: client, ttl: ttl}
}

// RevokeAll invalidates every token issued to userID at or before t.
func (s *RevocationStore) RevokeAll(ctx context.Context, userID string, t time.Time) error {
	return s.client.Set(ctx, s.key(userID), t.Unix(), s.ttl).Err()
}

// IsRevoked reports whether a token issued at issuedAt is no longer valid.
func (s *RevocationStore) IsRevoked(ctx context.Context, userID string, issuedAt time.Time) (bool, error) {
	val, err := s.client.Get(ctx, s.key(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("revocation check: %w", err)
	}

	revokedAt, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return false, fmt.Errorf("revocation check: bad value %q", val)
	}
	return issuedAt.Unix() <= revokedAt, nil
}

func (s *RevocationStore) key(userID string) string {
	return "revoked:" + userID
}
