package actor_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/casting/internal/casting/actor"
	"github.com/taibuivan/casting/internal/platform/apperr"
	"github.com/taibuivan/casting/internal/platform/validate"
)

func validInput() validate.Input {
	return validate.Input{
		"name":     "Ana Ruiz",
		"age":      json.Number("29"),
		"gender":   "female",
		"location": "Madrid",
	}
}

/*
TestRules_Create covers the failure message of every actor rule.
*/
func TestRules_Create(t *testing.T) {
	tests := []struct {
		name        string
		field       string
		value       any
		wantMessage string
	}{
		{"missing_name", "name", nil, "No name provided"},
		{"empty_name", "name", "", "No name provided"},
		{"missing_age", "age", nil, "No age provided"},
		{"text_age", "age", "old", "age is not integer"},
		{"bool_age", "age", true, "age is not integer"},
		{"missing_gender", "gender", nil, "No gender provided"},
		{"bad_gender", "gender", "other", "Invalid gender type"},
		{"missing_location", "location", nil, "No location provided"},
		{"bad_passport", "passport", "maybe", "passport is not boolean"},
		{"bad_driver_license", "driver_license", json.Number("2"), "driver_license is not boolean"},
		{"bad_ethnicity", "ethnicity", "martian", "Invalid ethnicity type"},
		{"bad_hair_color", "hair_color", "green", "Invalid hair color type"},
		{"bad_eye_color", "eye_color", "black", "Invalid eye color type"},
		{"bad_body_type", "body_type", "round", "Invalid body type"},
		{"text_height", "height", "tall", "height is not integer"},
		{"negative_height", "height", json.Number("-1"), "height can not be negative"},
		{"bad_image_link", "image_link", "not a url", "Invalid image_link url"},
		{"bad_email", "email", "ana@", "Invalid e-mail"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			input[tt.field] = tt.value

			err := actor.Rules.Create(context.Background(), &actor.Actor{}, input)
			require.Error(t, err)

			appError := apperr.As(err)
			require.NotNil(t, appError)
			assert.Equal(t, 422, appError.HTTPStatus)
			assert.Equal(t, tt.wantMessage, appError.Message)
			assert.Equal(t, tt.field, appError.Details[0].Field)
		})
	}
}

func TestRules_CreateValid(t *testing.T) {
	input := validInput()
	input["age"] = "31"
	input["passport"] = true
	input["driver_license"] = "false"
	input["ethnicity"] = "middle eastern"
	input["hair_color"] = ""
	input["height"] = json.Number("172.8")
	input["image_link"] = "https://img.example.com/ana.jpg"
	input["email"] = "ana@example.com"
	input["phone"] = "+34 600 000 000"
	input["unknown"] = "ignored"

	var created actor.Actor
	require.NoError(t, actor.Rules.Create(context.Background(), &created, input))

	assert.Equal(t, 31, created.Age)
	assert.True(t, created.Passport)
	assert.False(t, created.DriverLicense)
	require.NotNil(t, created.Ethnicity)
	assert.Equal(t, "middle eastern", *created.Ethnicity)
	assert.Nil(t, created.HairColor)
	require.NotNil(t, created.Height)
	assert.Equal(t, 172, *created.Height)
	assert.Equal(t, "+34 600 000 000", *created.Phone)
	assert.Nil(t, created.Description)
}

func TestRules_Fields(t *testing.T) {
	assert.Equal(t, []string{
		"name", "age", "gender", "location", "passport", "driver_license",
		"ethnicity", "hair_color", "eye_color", "body_type", "height",
		"description", "image_link", "phone", "email",
	}, actor.Rules.Fields())
}
