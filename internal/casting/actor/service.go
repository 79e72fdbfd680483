package actor

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

// ListActors filters by column values, name search, then age and height ranges.
func (service *Service) ListActors(context context.Context, values url.Values) ([]*Actor, int, error) {
	query, err := filter.New(schema.CastingActor.Definition(), values).
		Match().
		Search(schema.CastingActor.Name).
		Range(schema.CastingActor.Age).
		Range(schema.CastingActor.Height).
		Paginate()
	if err != nil {
		return nil, 0, err
	}

	return service.repo.List(context, query)
}

func (service *Service) CreateActor(context context.Context, input validate.Input) (*Actor, error) {
	actor := &Actor{}
	if err := Rules.Create(context, actor, input); err != nil {
		return nil, err
	}

	if err := service.repo.Create(context, actor); err != nil {
		return nil, err
	}

	service.logger.Info("actor_created", slog.Int64("actor_id", actor.ID), slog.String("name", actor.Name))
	return actor, nil
}

// UpdateActor overwrites the provided, non-null fields of a stored actor.
func (service *Service) UpdateActor(context context.Context, id int64, input validate.Input) (*Actor, error) {
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

	service.logger.Info("actor_updated", slog.Int64("actor_id", id))
	return &updated, nil
}

// DeleteActor removes an actor. Roles cast with the actor keep their actor_id.
func (service *Service) DeleteActor(context context.Context, id int64) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Warn("actor_deleted",
		slog.Int64("actor_id", id),
		slog.String("subject", ctxutil.GetSubject(context)),
	)
	return nil
}
