// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package redis

import (
	stdctx "context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/casting/internal/platform/constants"
)

// ErrInvalidTTL is returned by [TokenDenylist.Revoke] for a non-positive TTL.
var ErrInvalidTTL = errors.New("redis: revocation ttl must be positive")

// TokenDenylist stores revoked access-token ids until the token would have
// expired anyway.
type TokenDenylist struct {
	client *redis.Client
}

// NewTokenDenylist wraps client.
func NewTokenDenylist(client *redis.Client) *TokenDenylist {
	return &TokenDenylist{client: client}
}

// Revoke marks tokenID as revoked for ttl.
func (denylist *TokenDenylist) Revoke(context stdctx.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return ErrInvalidTTL
	}
	if err := denylist.client.Set(context, revokedKey(tokenID), time.Now().UTC().Format(time.RFC3339), ttl).Err(); err != nil {
		return fmt.Errorf("redis: failed to revoke token %s: %w", tokenID, err)
	}
	return nil
}

// IsRevoked reports whether tokenID is on the denylist.
func (denylist *TokenDenylist) IsRevoked(context stdctx.Context, tokenID string) (bool, error) {
	count, err := denylist.client.Exists(context, revokedKey(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("redis: failed to check token %s: %w", tokenID, err)
	}
	return count > 0, nil
}

func revokedKey(tokenID string) string {
	return constants.RedisPrefixRevokedToken + tokenID
}
