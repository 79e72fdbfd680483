// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command token is a development tool for casting API access tokens.
//
// # Usage
//
//	token mint -role director [-ttl 24h] [-subject alice]
//	token revoke -token <jwt>
//
// mint signs an RS256 token carrying the permissions of a casting role.
// revoke puts the token's jti on the Redis denylist until it expires.
//
// Keys and endpoints are read from the environment (see [tokenConfig]).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v11"

	redisstore "github.com/taibuivan/casting/internal/platform/redis"
	"github.com/taibuivan/casting/internal/platform/sec"
)

// tokenConfig holds the signing settings. Issuer and audience must match the API's.
type tokenConfig struct {
	PrivateKeyPath string `env:"AUTH_PRIVATE_KEY_PATH,required,notEmpty"`
	Issuer         string `env:"AUTH_ISSUER"`
	Audience       string `env:"AUTH_AUDIENCE"`
	RedisURL       string `env:"REDIS_URL"`
}

var errUsage = errors.New("usage: token <mint|revoke> [flags]")

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stderr, nil)).With(slog.String("app", "casting-token"))

	if err := run(context.Background(), os.Args[1:], os.Stdout, log); err != nil {
		log.Error("token_command_failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(context context.Context, args []string, out io.Writer, log *slog.Logger) error {
	if len(args) == 0 {
		return errUsage
	}

	cfg := tokenConfig{}
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("token: failed to parse environment variables: %w", err)
	}

	tokens, err := sec.NewSigningService(cfg.PrivateKeyPath, cfg.Issuer, cfg.Audience)
	if err != nil {
		return err
	}

	switch args[0] {
	case "mint":
		flags := flag.NewFlagSet("mint", flag.ContinueOnError)
		castingRole := flags.String("role", string(sec.RoleAssistant), "casting role: assistant, director or producer")
		subject := flags.String("subject", "", "token subject (defaults to the role name)")
		timeToLive := flags.Duration("ttl", 24*time.Hour, "token lifetime")
		if err := flags.Parse(args[1:]); err != nil {
			return err
		}

		token, err := mint(tokens, sec.CastingRole(*castingRole), *subject, *timeToLive)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, token)
		return err

	case "revoke":
		flags := flag.NewFlagSet("revoke", flag.ContinueOnError)
		token := flags.String("token", "", "access token to revoke")
		if err := flags.Parse(args[1:]); err != nil {
			return err
		}
		if cfg.RedisURL == "" {
			return errors.New("token: REDIS_URL is required to revoke tokens")
		}

		claims, err := tokens.VerifyToken(*token)
		if err != nil {
			return err
		}

		client, err := redisstore.NewClient(context, cfg.RedisURL, log)
		if err != nil {
			return err
		}
		defer client.Close()

		if err := redisstore.NewTokenDenylist(client).Revoke(context, claims.ID, remaining(claims, time.Now())); err != nil {
			return err
		}
		log.Info("token_revoked", slog.String("token_id", claims.ID), slog.String("subject", claims.Subject))
		return nil

	default:
		return errUsage
	}
}

// mint signs a token with the permissions of castingRole.
func mint(tokens *sec.TokenService, castingRole sec.CastingRole, subject string, timeToLive time.Duration) (string, error) {
	permissions, err := castingRole.Permissions()
	if err != nil {
		return "", err
	}
	if subject == "" {
		subject = string(castingRole)
	}
	return tokens.GenerateAccessToken(subject, permissions, timeToLive)
}

// remaining is how long the token stays valid after now.
func remaining(claims *sec.Claims, now time.Time) time.Duration {
	if claims.ExpiresAt == nil {
		return 0
	}
	return claims.ExpiresAt.Sub(now)
}
