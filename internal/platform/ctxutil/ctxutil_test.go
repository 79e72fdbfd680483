// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ctxutil_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/casting/internal/platform/ctxutil"
	"github.com/taibuivan/casting/internal/platform/sec"
)

/*
TestContext_Empty checks the accessors on a context carrying no request values.
*/
func TestContext_Empty(t *testing.T) {
	ctx := context.Background()

	assert.Empty(t, ctxutil.GetRequestID(ctx))
	assert.Same(t, slog.Default(), ctxutil.GetLogger(ctx))
	assert.Nil(t, ctxutil.GetClaims(ctx))
	assert.Empty(t, ctxutil.GetSubject(ctx))
}

func TestContext_RoundTrip(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	claims := &sec.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "auth0|producer"},
		Permissions:      []string{sec.PermPostActors, sec.PermPatchActors},
	}

	ctx := ctxutil.WithRequestID(context.Background(), "0190a1b2-req")
	ctx = ctxutil.WithLogger(ctx, logger)
	ctx = ctxutil.WithClaims(ctx, claims)

	assert.Equal(t, "0190a1b2-req", ctxutil.GetRequestID(ctx))
	assert.Same(t, logger, ctxutil.GetLogger(ctx))

	retrieved := ctxutil.GetClaims(ctx)
	require.NotNil(t, retrieved)
	assert.True(t, retrieved.HasPermission(sec.PermPatchActors))
	assert.Equal(t, "auth0|producer", ctxutil.GetSubject(ctx))
}
