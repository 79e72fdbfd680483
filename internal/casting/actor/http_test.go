package actor_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/casting/internal/casting/actor"
	"github.com/taibuivan/casting/internal/platform/apperr"
	"github.com/taibuivan/casting/internal/platform/ctxutil"
	"github.com/taibuivan/casting/internal/platform/sec"
)

func asRole(role sec.CastingRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			permissions, _ := role.Permissions()
			claims := &sec.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: string(role)}, Permissions: permissions}
			next.ServeHTTP(writer, request.WithContext(ctxutil.WithClaims(request.Context(), claims)))
		})
	}
}

func serve(t *testing.T, repository *mockRepository, role sec.CastingRole, method, path, body string) (int, map[string]any) {
	t.Helper()
	router := chi.NewRouter()
	actor.NewHandler(newService(repository)).RegisterRoutes(router, asRole(role))

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(method, path, strings.NewReader(body)))

	var payload map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
	return recorder.Code, payload
}

func TestHandler_ListActors(t *testing.T) {
	repository := &mockRepository{}
	repository.On("List", mock.Anything, mock.Anything).Return([]*actor.Actor{storedActor()}, 14, nil)

	status, payload := serve(t, repository, sec.RoleAssistant, http.MethodGet, "/actors?gender=female", "")

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, payload["success"])
	assert.Equal(t, float64(14), payload["total_actors"])
	actors := payload["actors"].([]any)
	require.Len(t, actors, 1)
	assert.Equal(t, "Ana Ruiz", actors[0].(map[string]any)["name"])
}

func TestHandler_ListActors_BadPage(t *testing.T) {
	status, payload := serve(t, &mockRepository{}, sec.RoleAssistant, http.MethodGet, "/actors?page_size=ten", "")

	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "unprocessable", payload["message"])
}

/*
TestHandler_Writes covers the permission matrix and envelopes of actor writes.
*/
func TestHandler_Writes(t *testing.T) {
	tests := []struct {
		name        string
		role        sec.CastingRole
		method      string
		path        string
		body        string
		setup       func(repository *mockRepository)
		wantStatus  int
		wantMessage string
		wantID      float64
	}{
		{
			name: "director_creates", role: sec.RoleDirector, method: http.MethodPost, path: "/actors",
			body: `{"name":"Ana","age":29,"gender":"female","location":"Madrid"}`,
			setup: func(repository *mockRepository) {
				repository.On("Create", mock.Anything, mock.Anything).
					Run(func(args mock.Arguments) { args.Get(1).(*actor.Actor).ID = 21 }).Return(nil)
			},
			wantStatus: http.StatusOK, wantID: 21,
		},
		{
			name: "assistant_cannot_create", role: sec.RoleAssistant, method: http.MethodPost, path: "/actors",
			body:       `{"name":"Ana","age":29,"gender":"female","location":"Madrid"}`,
			setup:      func(*mockRepository) {},
			wantStatus: http.StatusUnauthorized, wantMessage: "Permission not found.",
		},
		{
			name: "create_invalid_gender", role: sec.RoleProducer, method: http.MethodPost, path: "/actors",
			body:       `{"name":"Ana","age":29,"gender":"robot","location":"Madrid"}`,
			setup:      func(*mockRepository) {},
			wantStatus: http.StatusUnprocessableEntity, wantMessage: "Invalid gender type",
		},
		{
			name: "patch_actor", role: sec.RoleDirector, method: http.MethodPatch, path: "/actors/3",
			body: `{"location":"Lisbon"}`,
			setup: func(repository *mockRepository) {
				repository.On("Get", mock.Anything, int64(3)).Return(storedActor(), nil)
				repository.On("Update", mock.Anything, mock.Anything).Return(nil)
			},
			wantStatus: http.StatusOK, wantID: 3,
		},
		{
			name: "delete_missing_actor", role: sec.RoleDirector, method: http.MethodDelete, path: "/actors/404",
			setup: func(repository *mockRepository) {
				repository.On("Delete", mock.Anything, int64(404)).Return(apperr.NotFound("actor"))
			},
			wantStatus: http.StatusUnprocessableEntity, wantMessage: "Invalid actor id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repository := &mockRepository{}
			tt.setup(repository)

			status, payload := serve(t, repository, tt.role, tt.method, tt.path, tt.body)

			assert.Equal(t, tt.wantStatus, status)
			if tt.wantMessage != "" {
				assert.Equal(t, false, payload["success"])
				assert.Equal(t, float64(tt.wantStatus), payload["error"])
				assert.Equal(t, tt.wantMessage, payload["message"])
			} else {
				assert.Equal(t, true, payload["success"])
				assert.Equal(t, tt.wantID, payload["id"])
			}
			repository.AssertExpectations(t)
		})
	}
}
