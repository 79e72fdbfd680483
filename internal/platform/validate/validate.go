// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package validate provides the ordered field-rule engine used by every
// casting entity, together with the value coercers those rules share.
//
// # Architecture
//
// This package is used exclusively in the service layer, never in handlers or
// storage. An entity declares a [Ruleset] once; the service runs it on
// construction ([Ruleset.Create]) and on partial update ([Ruleset.Update]).
// The first failing rule aborts the write with an [apperr.ValidationError].
package validate

import (
	"encoding/json"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// format performs the URL and e-mail syntax checks.
var format = validator.New()

// Input is a decoded JSON object keyed by column name.
//
// Numbers are expected as [json.Number] (decoder configured with UseNumber),
// although plain Go numeric types are accepted as well.
type Input map[string]any

// # Coercers

// Int coerces a JSON value to an integer within the int32 range.
//
// Numbers with a fractional part are truncated; numeric strings are parsed.
// Booleans, nil and other types are rejected.
func Int(value any) (int, bool) {
	switch v := value.(type) {
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return bounded(n)
		}
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return truncate(f)
	case float64:
		return truncate(v)
	case int:
		return bounded(int64(v))
	case int64:
		return bounded(v)
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, false
		}
		return bounded(n)
	default:
		return 0, false
	}
}

// ID coerces a JSON value to a row id.
//
// Only integral values are accepted: a fractional number or string is
// rejected rather than truncated.
func ID(value any) (int64, bool) {
	switch v := value.(type) {
	case json.Number:
		n, err := v.Int64()
		return n, err == nil
	case float64:
		if v != math.Trunc(v) || v >= math.MaxInt64 || v < math.MinInt64 {
			return 0, false
		}
		return int64(v), true
	case int:
		return int64(v), true
	case int64:
		return v, true
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		return n, err == nil
	default:
		return 0, false
	}
}

func bounded(n int64) (int, bool) {
	if n > math.MaxInt32 || n < math.MinInt32 {
		return 0, false
	}
	return int(n), true
}

func truncate(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false
	}
	return int(f), true
}

// Bool coerces a JSON boolean or a [strconv.ParseBool] string ("t", "true", "0", ...).
func Bool(value any) (bool, bool) {
	switch v := value.(type) {
	case bool:
		return v, true
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return false, false
		}
		return b, true
	default:
		return false, false
	}
}

// Text returns the value as a string. Numbers are rendered in their JSON form.
func Text(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case json.Number:
		return v.String(), true
	default:
		return "", false
	}
}

// RequiredText returns a non-empty string, or false for nil, empty or non-text values.
func RequiredText(value any) (string, bool) {
	text, ok := Text(value)
	if !ok || text == "" {
		return "", false
	}
	return text, true
}

// OptionalText returns nil for nil input, otherwise a pointer to the text value.
func OptionalText(value any) (*string, bool) {
	if value == nil {
		return nil, true
	}
	text, ok := Text(value)
	if !ok {
		return nil, false
	}
	return &text, true
}

// OneOf returns the value as a string when it is one of the allowed values.
func OneOf(value any, allowed []string) (string, bool) {
	text, ok := value.(string)
	if !ok || !slices.Contains(allowed, text) {
		return "", false
	}
	return text, true
}

// # Formats

// IsURL reports whether s is an absolute URL with scheme and host.
func IsURL(s string) bool {
	return format.Var(s, "url") == nil
}

// IsEmail reports whether s is a syntactically valid e-mail address.
func IsEmail(s string) bool {
	return format.Var(s, "email") == nil
}
