package movie

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

// RegisterRoutes mounts the movie endpoints. Writes pass through authenticate
// and then the matching permission check.
func (handler *Handler) RegisterRoutes(router chi.Router, authenticate func(http.Handler) http.Handler) {
	// Public
	router.Get("/movies", handler.listMovies)

	// Permission-gated writes
	router.Group(func(writeRoute chi.Router) {
		writeRoute.Use(authenticate)

		writeRoute.With(middleware.RequirePermission(sec.PermPostMovies)).Post("/movies", handler.createMovie)
		writeRoute.With(middleware.RequirePermission(sec.PermPatchMovies)).Patch("/movies/{id:[0-9]+}", handler.updateMovie)
		writeRoute.With(middleware.RequirePermission(sec.PermDeleteMovies)).Delete("/movies/{id:[0-9]+}", handler.deleteMovie)
	})
}

func (handler *Handler) listMovies(writer http.ResponseWriter, request *http.Request) {
	movies, total, err := handler.service.ListMovies(request.Context(), request.URL.Query())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if movies == nil {
		movies = []*Movie{}
	}
	respond.OK(writer, respond.Fields{"movies": movies, "total_movies": total})
}

func (handler *Handler) createMovie(writer http.ResponseWriter, request *http.Request) {
	input, err := requestutil.DecodeJSON(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	movie, err := handler.service.CreateMovie(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, respond.Fields{constants.FieldID: movie.ID})
}

func (handler *Handler) updateMovie(writer http.ResponseWriter, request *http.Request) {
	movieID, err := requestutil.ID(request, entityName)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	input, err := requestutil.DecodeJSON(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if _, err := handler.service.UpdateMovie(request.Context(), movieID, input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, respond.Fields{constants.FieldID: movieID})
}

func (handler *Handler) deleteMovie(writer http.ResponseWriter, request *http.Request) {
	movieID, err := requestutil.ID(request, entityName)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteMovie(request.Context(), movieID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, respond.Fields{constants.FieldID: movieID})
}
