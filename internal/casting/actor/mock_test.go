package actor_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/taibuivan/casting/internal/casting/actor"
	"github.com/taibuivan/casting/internal/casting/filter"
)

type mockRepository struct {
	mock.Mock
}

func (repository *mockRepository) List(context context.Context, query filter.Query) ([]*actor.Actor, int, error) {
	args := repository.Called(context, query)
	actors, _ := args.Get(0).([]*actor.Actor)
	return actors, args.Int(1), args.Error(2)
}

func (repository *mockRepository) Get(context context.Context, id int64) (*actor.Actor, error) {
	args := repository.Called(context, id)
	found, _ := args.Get(0).(*actor.Actor)
	return found, args.Error(1)
}

func (repository *mockRepository) Create(context context.Context, created *actor.Actor) error {
	args := repository.Called(context, created)
	return args.Error(0)
}

func (repository *mockRepository) Update(context context.Context, updated *actor.Actor) error {
	args := repository.Called(context, updated)
	return args.Error(0)
}

func (repository *mockRepository) Delete(context context.Context, id int64) error {
	args := repository.Called(context, id)
	return args.Error(0)
}
