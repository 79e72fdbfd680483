package actor

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

// RegisterRoutes mounts the actor endpoints. Writes pass through authenticate
// and then the matching permission check.
func (handler *Handler) RegisterRoutes(router chi.Router, authenticate func(http.Handler) http.Handler) {
	// Public
	router.Get("/actors", handler.listActors)

	// Permission-gated writes
	router.Group(func(writeRoute chi.Router) {
		writeRoute.Use(authenticate)

		writeRoute.With(middleware.RequirePermission(sec.PermPostActors)).Post("/actors", handler.createActor)
		writeRoute.With(middleware.RequirePermission(sec.PermPatchActors)).Patch("/actors/{id:[0-9]+}", handler.updateActor)
		writeRoute.With(middleware.RequirePermission(sec.PermDeleteActors)).Delete("/actors/{id:[0-9]+}", handler.deleteActor)
	})
}

func (handler *Handler) listActors(writer http.ResponseWriter, request *http.Request) {
	actors, total, err := handler.service.ListActors(request.Context(), request.URL.Query())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if actors == nil {
		actors = []*Actor{}
	}
	respond.OK(writer, respond.Fields{"actors": actors, "total_actors": total})
}

func (handler *Handler) createActor(writer http.ResponseWriter, request *http.Request) {
	input, err := requestutil.DecodeJSON(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	actor, err := handler.service.CreateActor(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, respond.Fields{constants.FieldID: actor.ID})
}

func (handler *Handler) updateActor(writer http.ResponseWriter, request *http.Request) {
	actorID, err := requestutil.ID(request, entityName)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	input, err := requestutil.DecodeJSON(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if _, err := handler.service.UpdateActor(request.Context(), actorID, input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, respond.Fields{constants.FieldID: actorID})
}

func (handler *Handler) deleteActor(writer http.ResponseWriter, request *http.Request) {
	actorID, err := requestutil.ID(request, entityName)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteActor(request.Context(), actorID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, respond.Fields{constants.FieldID: actorID})
}
