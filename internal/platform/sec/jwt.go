// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sec provides token verification and permission scopes.
//
// # Architecture
//
// This package isolates security-sensitive code (JWT parsing and signing) from
// the domain logic. Access tokens are issued by an external identity provider
// and signed with RS256; the API only needs the provider's public key. The
// signing half exists for development tooling and tests.
package sec

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrTokenExpired reports a token whose exp claim is in the past.
	ErrTokenExpired = errors.New("sec: token expired")
	// ErrInvalidClaims reports a token issued for another issuer or audience.
	ErrInvalidClaims = errors.New("sec: incorrect claims")
	// ErrMalformedToken reports any other parse or signature failure.
	ErrMalformedToken = errors.New("sec: unable to parse token")
	// ErrNoSigningKey is returned when signing is attempted with a verify-only service.
	ErrNoSigningKey = errors.New("sec: no signing key configured")
)

// Claims represents the payload embedded inside an access token.
//
// The "permissions" claim follows the identity provider's RBAC convention:
// a flat list of "<action>:<resource>" scopes such as "post:actors".
type Claims struct {
	jwt.RegisteredClaims

	Permissions []string `json:"permissions"`
}

// HasPermission reports whether the claims grant the named permission.
func (c *Claims) HasPermission(permission string) bool {
	return slices.Contains(c.Permissions, permission)
}

// TokenService verifies (and optionally signs) RS256 access tokens.
type TokenService struct {
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
	issuer     string
	audience   string
}

// NewTokenService creates a verify-only TokenService from a PEM public key file.
//
// Empty issuer or audience disables the corresponding claim check.
func NewTokenService(publicKeyPath, issuer, audience string) (*TokenService, error) {
	publicKeyData, err := os.ReadFile(publicKeyPath)
	if err != nil {
		return nil, fmt.Errorf("sec: failed to read public key from %s: %w", publicKeyPath, err)
	}

	publicKey, err := jwt.ParseRSAPublicKeyFromPEM(publicKeyData)
	if err != nil {
		return nil, fmt.Errorf("sec: failed to parse public key: %w", err)
	}

	return &TokenService{publicKey: publicKey, issuer: issuer, audience: audience}, nil
}

// NewSigningService creates a TokenService able to mint tokens from a PEM private key file.
func NewSigningService(privateKeyPath, issuer, audience string) (*TokenService, error) {
	privateKeyData, err := os.ReadFile(privateKeyPath)
	if err != nil {
		return nil, fmt.Errorf("sec: failed to read private key from %s: %w", privateKeyPath, err)
	}

	privateKey, err := jwt.ParseRSAPrivateKeyFromPEM(privateKeyData)
	if err != nil {
		return nil, fmt.Errorf("sec: failed to parse private key: %w", err)
	}

	return NewTokenServiceFromKey(privateKey, issuer, audience), nil
}

// NewTokenServiceFromKey builds a signing TokenService from an in-memory key.
func NewTokenServiceFromKey(privateKey *rsa.PrivateKey, issuer, audience string) *TokenService {
	return &TokenService{
		privateKey: privateKey,
		publicKey:  &privateKey.PublicKey,
		issuer:     issuer,
		audience:   audience,
	}
}

// GenerateAccessToken signs a token for subject carrying the given permissions.
//
// Every token gets a fresh UUIDv7 jti so it can be revoked individually.
func (service *TokenService) GenerateAccessToken(subject string, permissions []string, timeToLive time.Duration) (string, error) {
	if service.privateKey == nil {
		return "", ErrNoSigningKey
	}

	tokenID, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("sec: failed to generate token id: %w", err)
	}

	currentTime := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID.String(),
			Subject:   subject,
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(timeToLive)),
		},
		Permissions: permissions,
	}
	if service.audience != "" {
		claims.Audience = jwt.ClaimStrings{service.audience}
	}

	signedToken, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(service.privateKey)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// VerifyToken checks the signature and registered claims of a token string.
//
// The returned error is one of [ErrTokenExpired], [ErrInvalidClaims] or
// [ErrMalformedToken], wrapping the parser's own error.
func (service *TokenService) VerifyToken(tokenString string) (*Claims, error) {
	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if service.issuer != "" {
		options = append(options, jwt.WithIssuer(service.issuer))
	}
	if service.audience != "" {
		options = append(options, jwt.WithAudience(service.audience))
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return service.publicKey, nil
	}, options...)

	switch {
	case err == nil && token.Valid:
		return claims, nil
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, fmt.Errorf("%w: %w", ErrTokenExpired, err)
	case errors.Is(err, jwt.ErrTokenInvalidIssuer), errors.Is(err, jwt.ErrTokenInvalidAudience):
		return nil, fmt.Errorf("%w: %w", ErrInvalidClaims, err)
	case err != nil:
		return nil, fmt.Errorf("%w: %w", ErrMalformedToken, err)
	default:
		return nil, ErrMalformedToken
	}
}
