// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/taibuivan/casting/internal/platform/constants"
	"github.com/taibuivan/casting/internal/platform/ctxutil"
	"github.com/taibuivan/casting/internal/platform/middleware"
	"github.com/taibuivan/casting/internal/platform/sec"
)

type mockVerifier struct {
	mock.Mock
}

func (verifier *mockVerifier) VerifyToken(tokenString string) (*sec.Claims, error) {
	args := verifier.Called(tokenString)
	claims, _ := args.Get(0).(*sec.Claims)
	return claims, args.Error(1)
}

type mockRevocations struct {
	mock.Mock
}

func (revocations *mockRevocations) IsRevoked(context context.Context, tokenID string) (bool, error) {
	args := revocations.Called(context, tokenID)
	return args.Bool(0), args.Error(1)
}

func directorClaims() *sec.Claims {
	permissions, _ := sec.RoleDirector.Permissions()
	return &sec.Claims{
		RegisteredClaims: jwt.RegisteredClaims{ID: "jti-1", Subject: "director"},
		Permissions:      permissions,
	}
}

/*
TestAuthenticate covers every rejection path of the bearer-token gate.
*/
func TestAuthenticate(t *testing.T) {
	tests := []struct {
		name        string
		header      string
		setup       func(verifier *mockVerifier, revocations *mockRevocations)
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "missing_header",
			header:      "",
			setup:       func(*mockVerifier, *mockRevocations) {},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: middleware.MsgHeaderMissing,
		},
		{
			name:        "not_bearer",
			header:      "Basic abc",
			setup:       func(*mockVerifier, *mockRevocations) {},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: middleware.MsgHeaderNotBearer,
		},
		{
			name:        "bearer_without_token",
			header:      "Bearer",
			setup:       func(*mockVerifier, *mockRevocations) {},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: middleware.MsgHeaderNotBearer,
		},
		{
			name:   "expired",
			header: "Bearer expired-token",
			setup: func(verifier *mockVerifier, _ *mockRevocations) {
				verifier.On("VerifyToken", "expired-token").Return(nil, fmt.Errorf("%w: %w", sec.ErrTokenExpired, jwt.ErrTokenExpired))
			},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: middleware.MsgTokenExpired,
		},
		{
			name:   "wrong_audience",
			header: "Bearer other-aud",
			setup: func(verifier *mockVerifier, _ *mockRevocations) {
				verifier.On("VerifyToken", "other-aud").Return(nil, sec.ErrInvalidClaims)
			},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: middleware.MsgInvalidClaims,
		},
		{
			name:   "garbage",
			header: "Bearer garbage",
			setup: func(verifier *mockVerifier, _ *mockRevocations) {
				verifier.On("VerifyToken", "garbage").Return(nil, sec.ErrMalformedToken)
			},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: middleware.MsgMalformedToken,
		},
		{
			name:   "revoked",
			header: "Bearer revoked",
			setup: func(verifier *mockVerifier, revocations *mockRevocations) {
				verifier.On("VerifyToken", "revoked").Return(directorClaims(), nil)
				revocations.On("IsRevoked", mock.Anything, "jti-1").Return(true, nil)
			},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: middleware.MsgTokenRevoked,
		},
		{
			name:   "revocation_store_down",
			header: "Bearer valid",
			setup: func(verifier *mockVerifier, revocations *mockRevocations) {
				verifier.On("VerifyToken", "valid").Return(directorClaims(), nil)
				revocations.On("IsRevoked", mock.Anything, "jti-1").Return(false, errors.New("redis down"))
			},
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Internal server error",
		},
		{
			name:   "valid",
			header: "bearer valid",
			setup: func(verifier *mockVerifier, revocations *mockRevocations) {
				verifier.On("VerifyToken", "valid").Return(directorClaims(), nil)
				revocations.On("IsRevoked", mock.Anything, "jti-1").Return(false, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier := &mockVerifier{}
			revocations := &mockRevocations{}
			tt.setup(verifier, revocations)

			var subject string
			handler := middleware.Authenticate(verifier, revocations)(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				subject = ctxutil.GetClaims(request.Context()).Subject
				writer.WriteHeader(http.StatusOK)
			}))

			request := httptest.NewRequest(http.MethodPost, "/actors", nil)
			if tt.header != "" {
				request.Header.Set(constants.HeaderAuthorization, tt.header)
			}
			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			if tt.wantMessage != "" {
				envelope := decodeEnvelope(t, recorder)
				assert.False(t, envelope.Success)
				assert.Equal(t, tt.wantStatus, envelope.Error)
				assert.Equal(t, tt.wantMessage, envelope.Message)
			} else {
				assert.Equal(t, "director", subject)
			}
			verifier.AssertExpectations(t)
			revocations.AssertExpectations(t)
		})
	}
}

func TestAuthenticate_WithoutRevocationList(t *testing.T) {
	verifier := &mockVerifier{}
	verifier.On("VerifyToken", "valid").Return(directorClaims(), nil)

	handler := middleware.Authenticate(verifier, nil)(http.HandlerFunc(okHandler))
	request := httptest.NewRequest(http.MethodPost, "/actors", nil)
	request.Header.Set(constants.HeaderAuthorization, "Bearer valid")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
}

/*
TestRequirePermission checks scopes against the director role bundle.
*/
func TestRequirePermission(t *testing.T) {
	tests := []struct {
		name        string
		claims      *sec.Claims
		permission  string
		wantStatus  int
		wantMessage string
	}{
		{"granted", directorClaims(), sec.PermPostActors, http.StatusOK, ""},
		{"not_granted", directorClaims(), sec.PermPostMovies, http.StatusUnauthorized, middleware.MsgPermission},
		{"anonymous", nil, sec.PermPostActors, http.StatusUnauthorized, middleware.MsgHeaderMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := middleware.RequirePermission(tt.permission)(http.HandlerFunc(okHandler))

			request := httptest.NewRequest(http.MethodPost, "/movies", nil)
			if tt.claims != nil {
				request = request.WithContext(ctxutil.WithClaims(request.Context(), tt.claims))
			}
			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, decodeEnvelope(t, recorder).Message)
			}
		})
	}
}
