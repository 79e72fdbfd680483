// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxkey defines the typed keys of per-request context values.
//
// Only ctxutil reads and writes them.
package ctxkey

type key int

const (
	// KeyRequestID holds the X-Request-ID value.
	KeyRequestID key = iota

	// KeyClaims holds the verified [sec.Claims] of a write request.
	KeyClaims

	// KeyLogger holds the request-scoped [*log/slog.Logger].
	KeyLogger
)
