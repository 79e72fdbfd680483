package actor

import (
	"context"

	"github.com/taibuivan/casting/internal/casting/enum"
	"github.com/taibuivan/casting/internal/platform/validate"
	"github.com/taibuivan/casting/pkg/pointer"
)

// Rules is the ordered field validation of an actor.
var Rules = validate.Ruleset[Actor]{
	Rules: []validate.Rule[Actor]{
		{Field: FieldName, Apply: applyName},
		{Field: FieldAge, Apply: applyAge},
		{Field: FieldGender, Apply: applyGender},
		{Field: FieldLocation, Apply: applyLocation},
		{Field: FieldPassport, Apply: flag(FieldPassport, func(actor *Actor) *bool { return &actor.Passport })},
		{Field: FieldDriverLicense, Apply: flag(FieldDriverLicense, func(actor *Actor) *bool { return &actor.DriverLicense })},
		{Field: FieldEthnicity, Apply: optionalEnum(FieldEthnicity, enum.Ethnicity, "Invalid ethnicity type", func(actor *Actor) **string { return &actor.Ethnicity })},
		{Field: FieldHairColor, Apply: optionalEnum(FieldHairColor, enum.HairColor, "Invalid hair color type", func(actor *Actor) **string { return &actor.HairColor })},
		{Field: FieldEyeColor, Apply: optionalEnum(FieldEyeColor, enum.EyeColor, "Invalid eye color type", func(actor *Actor) **string { return &actor.EyeColor })},
		{Field: FieldBodyType, Apply: optionalEnum(FieldBodyType, enum.BodyType, "Invalid body type", func(actor *Actor) **string { return &actor.BodyType })},
		{Field: FieldHeight, Apply: applyHeight},
		{Field: FieldDescription, Apply: optionalText(FieldDescription, func(actor *Actor) **string { return &actor.Description })},
		{Field: FieldImageLink, Apply: applyImageLink},
		{Field: FieldPhone, Apply: optionalText(FieldPhone, func(actor *Actor) **string { return &actor.Phone })},
		{Field: FieldEmail, Apply: applyEmail},
	},
}

func applyName(_ context.Context, actor *Actor, value any) error {
	name, ok := validate.RequiredText(value)
	if !ok {
		return validate.Fail(FieldName, "No name provided")
	}
	actor.Name = name
	return nil
}

func applyAge(_ context.Context, actor *Actor, value any) error {
	if value == nil {
		return validate.Fail(FieldAge, "No age provided")
	}
	age, ok := validate.Int(value)
	if !ok {
		return validate.Fail(FieldAge, "age is not integer")
	}
	actor.Age = age
	return nil
}

func applyGender(_ context.Context, actor *Actor, value any) error {
	if value == nil {
		return validate.Fail(FieldGender, "No gender provided")
	}
	gender, ok := validate.OneOf(value, enum.Gender)
	if !ok {
		return validate.Fail(FieldGender, "Invalid gender type")
	}
	actor.Gender = gender
	return nil
}

func applyLocation(_ context.Context, actor *Actor, value any) error {
	location, ok := validate.RequiredText(value)
	if !ok {
		return validate.Fail(FieldLocation, "No location provided")
	}
	actor.Location = location
	return nil
}

// flag stores a boolean; an absent value keeps the default (false).
func flag(field string, target func(*Actor) *bool) func(context.Context, *Actor, any) error {
	return func(_ context.Context, actor *Actor, value any) error {
		if value == nil {
			return nil
		}
		flagValue, ok := validate.Bool(value)
		if !ok {
			return validate.Fail(field, field+" is not boolean")
		}
		*target(actor) = flagValue
		return nil
	}
}

// optionalEnum stores a value from allowed. An empty string clears the field.
func optionalEnum(field string, allowed []string, message string, target func(*Actor) **string) func(context.Context, *Actor, any) error {
	return func(_ context.Context, actor *Actor, value any) error {
		if value == nil || value == "" {
			*target(actor) = nil
			return nil
		}
		member, ok := validate.OneOf(value, allowed)
		if !ok {
			return validate.Fail(field, message)
		}
		*target(actor) = pointer.To(member)
		return nil
	}
}

func optionalText(field string, target func(*Actor) **string) func(context.Context, *Actor, any) error {
	return func(_ context.Context, actor *Actor, value any) error {
		text, ok := validate.OptionalText(value)
		if !ok {
			return validate.Fail(field, field+" is not text")
		}
		*target(actor) = text
		return nil
	}
}

func applyHeight(_ context.Context, actor *Actor, value any) error {
	if value == nil {
		actor.Height = nil
		return nil
	}
	height, ok := validate.Int(value)
	if !ok {
		return validate.Fail(FieldHeight, "height is not integer")
	}
	if height < 0 {
		return validate.Fail(FieldHeight, "height can not be negative")
	}
	actor.Height = pointer.To(height)
	return nil
}

func applyImageLink(_ context.Context, actor *Actor, value any) error {
	link, ok := validate.OptionalText(value)
	if !ok || (link != nil && *link != "" && !validate.IsURL(*link)) {
		return validate.Fail(FieldImageLink, "Invalid image_link url")
	}
	actor.ImageLink = link
	return nil
}

func applyEmail(_ context.Context, actor *Actor, value any) error {
	email, ok := validate.OptionalText(value)
	if !ok || (email != nil && *email != "" && !validate.IsEmail(*email)) {
		return validate.Fail(FieldEmail, "Invalid e-mail")
	}
	actor.Email = email
	return nil
}
