// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package redis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions(t *testing.T) {
	options, err := Options("redis://:secret@cache.internal:6380/2")
	require.NoError(t, err)

	assert.Equal(t, "cache.internal:6380", options.Addr)
	assert.Equal(t, 2, options.DB)
	assert.Equal(t, "secret", options.Password)
	assert.Equal(t, poolSize, options.PoolSize)
	assert.Equal(t, operationTimeout, options.ReadTimeout)
}

func TestOptions_InvalidURL(t *testing.T) {
	_, err := Options("memcached://cache.internal")
	assert.Error(t, err)
}
