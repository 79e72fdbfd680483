package movie

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/taibuivan/casting/internal/casting/filter"
	"github.com/taibuivan/casting/internal/platform/ctxutil"
	"github.com/taibuivan/casting/internal/platform/database/schema"
	"github.com/taibuivan/casting/internal/platform/validate"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ListMovies filters by column values, release date range and title search.
func (service *Service) ListMovies(context context.Context, values url.Values) ([]*Movie, int, error) {
	query, err := filter.New(schema.CastingMovie.Definition(), values).
		Match().
		Range(schema.CastingMovie.ReleaseDate).
		Search(schema.CastingMovie.Title).
		Paginate()
	if err != nil {
		return nil, 0, err
	}

	return service.repo.List(context, query)
}

func (service *Service) CreateMovie(context context.Context, input validate.Input) (*Movie, error) {
	movie := &Movie{}
	if err := Rules.Create(context, movie, input); err != nil {
		return nil, err
	}

	if err := service.repo.Create(context, movie); err != nil {
		return nil, err
	}

	service.logger.Info("movie_created", slog.Int64("movie_id", movie.ID), slog.String("title", movie.Title))
	return movie, nil
}

// UpdateMovie overwrites the provided, non-null fields of a stored movie.
func (service *Service) UpdateMovie(context context.Context, id int64, input validate.Input) (*Movie, error) {
	current, err := service.repo.Get(context, id)
	if err != nil {
		return nil, err
	}

	updated := *current
	if err := Rules.Update(context, &updated, input); err != nil {
		return nil, err
	}

	if err := service.repo.Update(context, &updated); err != nil {
		return nil, err
	}

	service.logger.Info("movie_updated", slog.Int64("movie_id", id))
	return &updated, nil
}

func (service *Service) DeleteMovie(context context.Context, id int64) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Warn("movie_deleted",
		slog.Int64("movie_id", id),
		slog.String("subject", ctxutil.GetSubject(context)),
	)
	return nil
}
