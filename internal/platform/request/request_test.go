// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package requestutil_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/casting/internal/platform/apperr"
	requestutil "github.com/taibuivan/casting/internal/platform/request"
)

/*
TestDecodeJSON checks that only JSON objects are accepted.
*/
func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"object", `{"name":"Ann","age":25}`, false},
		{"empty_object", `{}`, false},
		{"array", `[1,2]`, true},
		{"null", `null`, true},
		{"string", `"hello"`, true},
		{"malformed", `{"name":`, true},
		{"empty", ``, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodPost, "/actors", strings.NewReader(tt.body))
			input, err := requestutil.DecodeJSON(request)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, apperr.As(err).HTTPStatus)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, input)
		})
	}
}

func TestDecodeJSON_KeepsNumbers(t *testing.T) {
	request := httptest.NewRequest(http.MethodPost, "/roles", strings.NewReader(`{"min_age":25.5}`))
	input, err := requestutil.DecodeJSON(request)
	require.NoError(t, err)
	assert.Equal(t, json.Number("25.5"), input["min_age"])
}

func withID(request *http.Request, id string) *http.Request {
	routeContext := chi.NewRouteContext()
	routeContext.URLParams.Add("id", id)
	return request.WithContext(context.WithValue(request.Context(), chi.RouteCtxKey, routeContext))
}

func TestID(t *testing.T) {
	request := withID(httptest.NewRequest(http.MethodGet, "/actors/12", nil), "12")
	id, err := requestutil.ID(request, "actor")
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)

	request = withID(httptest.NewRequest(http.MethodGet, "/actors/99999999999999999999", nil), "99999999999999999999")
	_, err = requestutil.ID(request, "actor")
	require.Error(t, err)
	assert.Equal(t, "Invalid actor id", err.Error())
}
