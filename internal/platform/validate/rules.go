// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate

import (
	"context"

	"github.com/taibuivan/casting/internal/platform/apperr"
)

// Rule binds a field to the function that checks, coerces and stores it on T.
//
// Apply receives nil when the field is absent on construction. It must leave
// target untouched when it fails.
type Rule[T any] struct {
	Field string
	Apply func(ctx context.Context, target *T, value any) error
}

// Invariant is a cross-field check evaluated after every field rule ran.
type Invariant[T any] func(target *T) error

// Ruleset is the ordered list of field rules of an entity.
//
// # Concurrency
//
// A Ruleset is immutable after construction and safe for concurrent use.
type Ruleset[T any] struct {
	Rules      []Rule[T]
	Invariants []Invariant[T]
}

// Fields returns the writable field names in rule order.
//
// It is the allow-list for request bodies: keys outside it are ignored.
func (set Ruleset[T]) Fields() []string {
	fields := make([]string, len(set.Rules))
	for i, rule := range set.Rules {
		fields[i] = rule.Field
	}
	return fields
}

// Create applies every rule in order, passing nil for absent fields.
func (set Ruleset[T]) Create(ctx context.Context, target *T, input Input) error {
	for _, rule := range set.Rules {
		if err := rule.Apply(ctx, target, input[rule.Field]); err != nil {
			return err
		}
	}
	return set.check(target)
}

// Update applies only the rules whose field is present with a non-null value.
//
// Callers pass a copy of the stored entity and persist it only on success.
func (set Ruleset[T]) Update(ctx context.Context, target *T, input Input) error {
	for _, rule := range set.Rules {
		value, present := input[rule.Field]
		if !present || value == nil {
			continue
		}
		if err := rule.Apply(ctx, target, value); err != nil {
			return err
		}
	}
	return set.check(target)
}

func (set Ruleset[T]) check(target *T) error {
	for _, invariant := range set.Invariants {
		if err := invariant(target); err != nil {
			return err
		}
	}
	return nil
}

// Fail is a shortcut for the single-field [apperr.ValidationError] rules return.
func Fail(field, message string) *apperr.AppError {
	return apperr.ValidationError(field, message)
}
