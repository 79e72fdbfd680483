// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination provides shared types and helpers for API list endpoints.
//
// # Overview
//
// It standardizes how page-based navigation is requested via the "page" and
// "page_size" query parameters and how they translate into LIMIT/OFFSET.
package pagination

import (
	"fmt"
	"net/url"
	"strconv"
)

const (
	// DefaultPageSize is the number of items per page if not specified.
	DefaultPageSize = 10
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1

	// KeyPage and KeyPageSize are the query parameter names.
	KeyPage     = "page"
	KeyPageSize = "page_size"
)

// Params holds the parsed page and page size from a request's query string.
type Params struct {
	Page     int
	PageSize int
}

// Offset returns the SQL OFFSET value derived from [Page] and [PageSize].
func (p Params) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}

// Limit returns the SQL LIMIT value.
func (p Params) Limit() int {
	return p.PageSize
}

// FromValues parses "page" and "page_size" from query values.
//
// # Policy
//
//   - Absent keys fall back to [DefaultPage] / [DefaultPageSize].
//   - Only the first value of each key is used.
//   - A page below 1 is clamped to 1, so the offset never goes negative.
//   - A non-integer value, or a negative page size, is an error.
//   - A page size of 0 is allowed and yields an empty page.
func FromValues(values url.Values) (Params, error) {
	page, err := parseIntParam(values, KeyPage, DefaultPage)
	if err != nil {
		return Params{}, err
	}

	pageSize, err := parseIntParam(values, KeyPageSize, DefaultPageSize)
	if err != nil {
		return Params{}, err
	}

	if page < 1 {
		page = DefaultPage
	}

	if pageSize < 0 {
		return Params{}, fmt.Errorf("pagination: %s must not be negative, got %d", KeyPageSize, pageSize)
	}

	return Params{Page: page, PageSize: pageSize}, nil
}

// parseIntParam parses a single integer query parameter with a fallback default.
func parseIntParam(values url.Values, key string, defaultVal int) (int, error) {
	raw, ok := values[key]
	if !ok || len(raw) == 0 {
		return defaultVal, nil
	}

	n, err := strconv.Atoi(raw[0])
	if err != nil {
		return 0, fmt.Errorf("pagination: %s is not an integer: %w", key, err)
	}

	return n, nil
}
