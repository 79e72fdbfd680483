package role

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/taibuivan/casting/internal/casting/filter"
	"github.com/taibuivan/casting/internal/platform/apperr"
	"github.com/taibuivan/casting/internal/platform/ctxutil"
	"github.com/taibuivan/casting/internal/platform/database/schema"
	"github.com/taibuivan/casting/internal/platform/validate"
	"github.com/taibuivan/casting/pkg/pointer"
)

type Service struct {
	repo   Repository
	movies Checker
	actors Checker
	rules  validate.Ruleset[Role]
	logger *slog.Logger
}

func NewService(repo Repository, movies, actors Checker, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		movies: movies,
		actors: actors,
		rules:  NewRules(movies, actors),
		logger: logger,
	}
}

// ListRoles filters by column values, then by the lower bound on min_age and
// the upper bound on max_age.
func (service *Service) ListRoles(context context.Context, values url.Values) ([]*Role, int, error) {
	query, err := filter.New(schema.CastingRole.Definition(), values).
		Match().
		Min(schema.CastingRole.MinAge, schema.CastingRole.MinAge).
		Max(schema.CastingRole.MaxAge, schema.CastingRole.MaxAge).
		Paginate()
	if err != nil {
		return nil, 0, err
	}

	return service.repo.List(context, query)
}

// ListMovieRoles returns every role of the movie.
func (service *Service) ListMovieRoles(context context.Context, movieID int64) ([]*Role, error) {
	if err := service.require(context, service.movies, movieID, "movie"); err != nil {
		return nil, err
	}
	return service.repo.ListByMovie(context, movieID)
}

// ListActorRoles returns every role cast with the actor.
func (service *Service) ListActorRoles(context context.Context, actorID int64) ([]*Role, error) {
	if err := service.require(context, service.actors, actorID, "actor"); err != nil {
		return nil, err
	}
	return service.repo.ListByActor(context, actorID)
}

func (service *Service) require(context context.Context, checker Checker, id int64, entity string) error {
	exists, err := checker.Exists(context, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound(entity)
	}
	return nil
}

func (service *Service) CreateRole(context context.Context, input validate.Input) (*Role, error) {
	role := &Role{}
	if err := service.rules.Create(context, role, input); err != nil {
		return nil, err
	}

	if err := service.repo.Create(context, role); err != nil {
		return nil, err
	}

	service.logger.Info("role_created",
		slog.Int64("role_id", role.ID),
		slog.Int64("movie_id", role.MovieID),
		slog.String("name", role.Name),
	)
	return role, nil
}

// UpdateRole overwrites the provided, non-null fields of a stored role.
func (service *Service) UpdateRole(context context.Context, id int64, input validate.Input) (*Role, error) {
	current, err := service.repo.Get(context, id)
	if err != nil {
		return nil, err
	}

	updated := *current
	if err := service.rules.Update(context, &updated, input); err != nil {
		return nil, err
	}

	if err := service.repo.Update(context, &updated); err != nil {
		return nil, err
	}

	service.logger.Info("role_updated",
		slog.Int64("role_id", id),
		slog.Int64("actor_id", pointer.Fallback(updated.ActorID, 0)),
	)
	return &updated, nil
}

func (service *Service) DeleteRole(context context.Context, id int64) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Warn("role_deleted",
		slog.Int64("role_id", id),
		slog.String("subject", ctxutil.GetSubject(context)),
	)
	return nil
}
