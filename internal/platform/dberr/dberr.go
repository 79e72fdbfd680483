// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/casting/internal/platform/apperr"
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
//
// A missing row becomes [apperr.NotFound] for entity. Every other store
// failure is reported to the client as a generic 422; the original error and
// action stay in the cause for logging.
func Wrap(err error, entity, action string) error {
	if err == nil {
		return nil
	}

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound(entity)
	}

	// 2. Values rejected by Postgres (bad casts, constraint violations)
	if IsInputError(err) {
		return apperr.Unprocessable(fmt.Errorf("postgres: %s: rejected input [%s]: %w", action, Code(err), err))
	}

	// 3. Anything else is still reported as unprocessable
	return apperr.Unprocessable(fmt.Errorf("postgres: %s: %w", action, err))
}

// Code returns the SQLSTATE of err, or "" when err is not a Postgres error.
func Code(err error) string {
	var pgError *pgconn.PgError
	if errors.As(err, &pgError) {
		return pgError.Code
	}
	return ""
}

// IsInputError reports whether err was raised by Postgres rejecting a
// client-supplied value: a bad cast, an out-of-range number or date, or a
// constraint violation.
func IsInputError(err error) bool {
	switch Code(err) {
	case pgerrcode.InvalidTextRepresentation,
		pgerrcode.InvalidDatetimeFormat,
		pgerrcode.DatetimeFieldOverflow,
		pgerrcode.NumericValueOutOfRange,
		pgerrcode.InvalidParameterValue,
		pgerrcode.ForeignKeyViolation,
		pgerrcode.CheckViolation,
		pgerrcode.NotNullViolation:
		return true
	}
	return false
}
