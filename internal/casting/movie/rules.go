package movie

import (
	"context"
	"time"

	"github.com/taibuivan/casting/internal/platform/validate"
)

// Rules is the ordered field validation of a movie.
var Rules = validate.Ruleset[Movie]{
	Rules: []validate.Rule[Movie]{
		{Field: FieldTitle, Apply: applyTitle},
		{Field: FieldReleaseDate, Apply: applyReleaseDate},
		{Field: FieldCompany, Apply: applyCompany},
		{Field: FieldDescription, Apply: applyDescription},
	},
}

func applyTitle(_ context.Context, movie *Movie, value any) error {
	title, ok := validate.RequiredText(value)
	if !ok {
		return validate.Fail(FieldTitle, "No title provided")
	}
	movie.Title = title
	return nil
}

func applyReleaseDate(_ context.Context, movie *Movie, value any) error {
	if value == nil {
		return validate.Fail(FieldReleaseDate, "No release date provided")
	}

	raw, _ := value.(string)
	parsed, err := time.Parse(DateLayout, raw)
	if err != nil {
		return validate.Fail(FieldReleaseDate, "Provided release_date does not match format YYYY-MM-DD")
	}

	movie.ReleaseDate = Date{parsed}
	return nil
}

func applyCompany(_ context.Context, movie *Movie, value any) error {
	company, ok := validate.RequiredText(value)
	if !ok {
		return validate.Fail(FieldCompany, "No company provided")
	}
	movie.Company = company
	return nil
}

func applyDescription(_ context.Context, movie *Movie, value any) error {
	description, ok := validate.OptionalText(value)
	if !ok {
		return validate.Fail(FieldDescription, "description is not text")
	}
	movie.Description = description
	return nil
}
