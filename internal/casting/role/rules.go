package role

import (
	"context"

	"github.com/taibuivan/casting/internal/casting/enum"
	"github.com/taibuivan/casting/internal/platform/validate"
	"github.com/taibuivan/casting/pkg/pointer"
)

// Checker resolves a referenced entity id at write time.
type Checker interface {
	Exists(context context.Context, id int64) (bool, error)
}

const msgAgeOrder = "Min age can not be greater than max age"

// NewRules builds the ordered role validation. movie_id and actor_id are
// resolved through movies and actors.
func NewRules(movies, actors Checker) validate.Ruleset[Role] {
	return validate.Ruleset[Role]{
		Rules: []validate.Rule[Role]{
			{Field: FieldMovieID, Apply: movieRule(movies)},
			{Field: FieldActorID, Apply: actorRule(actors)},
			{Field: FieldName, Apply: applyName},
			{Field: FieldGender, Apply: applyGender},
			{Field: FieldMinAge, Apply: applyMinAge},
			{Field: FieldMaxAge, Apply: applyMaxAge},
			{Field: FieldDescription, Apply: applyDescription},
		},
		Invariants: []validate.Invariant[Role]{ageOrder},
	}
}

func movieRule(movies Checker) func(context.Context, *Role, any) error {
	return func(ctx context.Context, role *Role, value any) error {
		if value == nil {
			return validate.Fail(FieldMovieID, "No movie id provided")
		}
		id, err := resolve(ctx, movies, value, FieldMovieID, "Invalid movie id")
		if err != nil {
			return err
		}
		role.MovieID = id
		return nil
	}
}

func actorRule(actors Checker) func(context.Context, *Role, any) error {
	return func(ctx context.Context, role *Role, value any) error {
		if value == nil {
			role.ActorID = nil
			return nil
		}
		id, err := resolve(ctx, actors, value, FieldActorID, "Invalid actor id")
		if err != nil {
			return err
		}
		role.ActorID = pointer.To(id)
		return nil
	}
}

// resolve coerces value to an id and checks that it exists.
func resolve(ctx context.Context, checker Checker, value any, field, message string) (int64, error) {
	id, ok := validate.ID(value)
	if !ok {
		return 0, validate.Fail(field, message)
	}

	exists, err := checker.Exists(ctx, id)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, validate.Fail(field, message)
	}
	return id, nil
}

func applyName(_ context.Context, role *Role, value any) error {
	name, ok := validate.RequiredText(value)
	if !ok {
		return validate.Fail(FieldName, "No name provided")
	}
	role.Name = name
	return nil
}

func applyGender(_ context.Context, role *Role, value any) error {
	if value == nil {
		return validate.Fail(FieldGender, "No gender provided")
	}
	gender, ok := validate.OneOf(value, enum.Gender)
	if !ok {
		return validate.Fail(FieldGender, "Invalid gender type")
	}
	role.Gender = gender
	return nil
}

func age(field, missing, notInteger string, value any) (int, error) {
	if value == nil {
		return 0, validate.Fail(field, missing)
	}
	years, ok := validate.Int(value)
	if !ok {
		return 0, validate.Fail(field, notInteger)
	}
	if years < 0 {
		return 0, validate.Fail(field, "Age can not be negative")
	}
	return years, nil
}

func applyMinAge(_ context.Context, role *Role, value any) error {
	years, err := age(FieldMinAge, "No min age provided", "min_age is not integer", value)
	if err != nil {
		return err
	}
	role.MinAge = years
	return nil
}

func applyMaxAge(_ context.Context, role *Role, value any) error {
	years, err := age(FieldMaxAge, "No max age provided", "max_age is not integer", value)
	if err != nil {
		return err
	}
	if role.MinAge > years {
		return validate.Fail(FieldMaxAge, msgAgeOrder)
	}
	role.MaxAge = years
	return nil
}

func applyDescription(_ context.Context, role *Role, value any) error {
	description, ok := validate.OptionalText(value)
	if !ok {
		return validate.Fail(FieldDescription, "description is not text")
	}
	role.Description = description
	return nil
}

// ageOrder catches a min_age raised above the stored max_age by a partial update.
func ageOrder(role *Role) error {
	if role.MinAge > role.MaxAge {
		return validate.Fail(FieldMinAge, msgAgeOrder)
	}
	return nil
}
