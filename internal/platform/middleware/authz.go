// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/taibuivan/casting/internal/platform/apperr"
	"github.com/taibuivan/casting/internal/platform/constants"
	"github.com/taibuivan/casting/internal/platform/ctxutil"
	"github.com/taibuivan/casting/internal/platform/respond"
	"github.com/taibuivan/casting/internal/platform/sec"
)

// Client-facing descriptions of authorization failures.
const (
	MsgHeaderMissing   = "Authorization header is expected."
	MsgHeaderNotBearer = "Authorization header must be bearer token."
	MsgTokenExpired    = "Token expired."
	MsgInvalidClaims   = "Incorrect claims. Please, check the audience and issuer."
	MsgMalformedToken  = "Unable to parse authentication token."
	MsgTokenRevoked    = "Token has been revoked."
	MsgPermission      = "Permission not found."
)

// TokenVerifier defines the interface needed to verify tokens in middleware.
//
// Defining TokenVerifier here decouples the middleware from the `sec` service
// implementation, allowing us to easily inject mocks during unit testing.
type TokenVerifier interface {
	VerifyToken(tokenString string) (*sec.Claims, error)
}

// RevocationList reports whether a token id (jti) was revoked before expiry.
type RevocationList interface {
	IsRevoked(context context.Context, tokenID string) (bool, error)
}

// Authenticate requires a valid bearer token and injects its claims.
//
// # Flow
//  1. Require an 'Authorization: Bearer <token>' header.
//  2. Parse and verify the JWT via [TokenVerifier].
//  3. Reject revoked token ids when a [RevocationList] is configured.
//  4. Inject [*sec.Claims] into the request context for downstream use.
//
// # Parameters
//   - verifier: The TokenVerifier instance.
//   - revocations: Optional; nil disables the revocation check.
//
// # Returns
//   - An [http.Handler] middleware.
func Authenticate(verifier TokenVerifier, revocations RevocationList) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			authHeader := request.Header.Get(constants.HeaderAuthorization)

			// ── 1. Header Presence ────────────────────────────────────────────
			if authHeader == "" {
				respond.Error(writer, request, apperr.Unauthorized(MsgHeaderMissing))
				return
			}

			// ── 2. Format Validation ──────────────────────────────────────────
			parts := strings.Fields(authHeader)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				respond.Error(writer, request, apperr.Unauthorized(MsgHeaderNotBearer))
				return
			}

			// ── 3. Token Verification ─────────────────────────────────────────
			claims, err := verifier.VerifyToken(parts[1])
			if err != nil {
				respond.Error(writer, request, apperr.Unauthorized(verificationMessage(err)))
				return
			}

			// ── 4. Revocation Check ───────────────────────────────────────────
			if revocations != nil && claims.ID != "" {
				revoked, err := revocations.IsRevoked(request.Context(), claims.ID)
				if err != nil {
					respond.Error(writer, request, apperr.Internal(err))
					return
				}
				if revoked {
					respond.Error(writer, request, apperr.Unauthorized(MsgTokenRevoked))
					return
				}
			}

			// ── 5. Context Injection ──────────────────────────────────────────
			ctxutil.GetLogger(request.Context()).DebugContext(request.Context(), "token_verified",
				slog.String("subject", claims.Subject),
			)
			next.ServeHTTP(writer, request.WithContext(ctxutil.WithClaims(request.Context(), claims)))
		})
	}
}

// RequirePermission blocks requests whose token lacks permission.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate]. A request without
// claims is rejected the same way as one missing the header.
func RequirePermission(permission string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			claims := ctxutil.GetClaims(request.Context())

			// ── 1. Authentication Check ───────────────────────────────────────
			if claims == nil {
				respond.Error(writer, request, apperr.Unauthorized(MsgHeaderMissing))
				return
			}

			// ── 2. Authorization Check ────────────────────────────────────────
			if !claims.HasPermission(permission) {
				respond.Error(writer, request, apperr.Unauthorized(MsgPermission))
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}

func verificationMessage(err error) string {
	switch {
	case errors.Is(err, sec.ErrTokenExpired):
		return MsgTokenExpired
	case errors.Is(err, sec.ErrInvalidClaims):
		return MsgInvalidClaims
	default:
		return MsgMalformedToken
	}
}
