package role

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/casting/internal/platform/constants"
	"github.com/taibuivan/casting/internal/platform/middleware"
	requestutil "github.com/taibuivan/casting/internal/platform/request"
	"github.com/taibuivan/casting/internal/platform/respond"
	"github.com/taibuivan/casting/internal/platform/sec"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the role endpoints, including the role listings
// nested under movies and actors.
func (handler *Handler) RegisterRoutes(router chi.Router, authenticate func(http.Handler) http.Handler) {
	// Public
	router.Get("/roles", handler.listRoles)
	router.Get("/movies/{id:[0-9]+}/roles", handler.listMovieRoles)
	router.Get("/actors/{id:[0-9]+}/roles", handler.listActorRoles)

	// Permission-gated writes
	router.Group(func(writeRoute chi.Router) {
		writeRoute.Use(authenticate)

		writeRoute.With(middleware.RequirePermission(sec.PermPostRoles)).Post("/roles", handler.createRole)
		writeRoute.With(middleware.RequirePermission(sec.PermPatchRoles)).Patch("/roles/{id:[0-9]+}", handler.updateRole)
		writeRoute.With(middleware.RequirePermission(sec.PermDeleteRoles)).Delete("/roles/{id:[0-9]+}", handler.deleteRole)
	})
}

func (handler *Handler) listRoles(writer http.ResponseWriter, request *http.Request) {
	roles, total, err := handler.service.ListRoles(request.Context(), request.URL.Query())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if roles == nil {
		roles = []*Role{}
	}
	respond.OK(writer, respond.Fields{"roles": roles, "total_roles": total})
}

func (handler *Handler) listMovieRoles(writer http.ResponseWriter, request *http.Request) {
	movieID, err := requestutil.ID(request, "movie")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	roles, err := handler.service.ListMovieRoles(request.Context(), movieID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	views := make([]MovieRole, len(roles))
	for i, role := range roles {
		views[i] = role.ForMovie()
	}
	respond.OK(writer, respond.Fields{constants.FieldID: movieID, "roles": views})
}

func (handler *Handler) listActorRoles(writer http.ResponseWriter, request *http.Request) {
	actorID, err := requestutil.ID(request, "actor")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	roles, err := handler.service.ListActorRoles(request.Context(), actorID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	views := make([]ActorRole, len(roles))
	for i, role := range roles {
		views[i] = role.ForActor()
	}
	respond.OK(writer, respond.Fields{constants.FieldID: actorID, "roles": views})
}

func (handler *Handler) createRole(writer http.ResponseWriter, request *http.Request) {
	input, err := requestutil.DecodeJSON(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	role, err := handler.service.CreateRole(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, respond.Fields{constants.FieldID: role.ID})
}

func (handler *Handler) updateRole(writer http.ResponseWriter, request *http.Request) {
	roleID, err := requestutil.ID(request, entityName)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	input, err := requestutil.DecodeJSON(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if _, err := handler.service.UpdateRole(request.Context(), roleID, input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, respond.Fields{constants.FieldID: roleID})
}

func (handler *Handler) deleteRole(writer http.ResponseWriter, request *http.Request) {
	roleID, err := requestutil.ID(request, entityName)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteRole(request.Context(), roleID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, respond.Fields{constants.FieldID: roleID})
}
