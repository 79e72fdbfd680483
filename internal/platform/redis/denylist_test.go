// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package redis

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestRevokedKey(t *testing.T) {
	assert.Equal(t, "casting:revoked:0190a1b2", revokedKey("0190a1b2"))
}

func TestRevoke_RejectsNonPositiveTTL(t *testing.T) {
	denylist := NewTokenDenylist(redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"}))
	assert.ErrorIs(t, denylist.Revoke(context.Background(), "jti", 0), ErrInvalidTTL)
}
