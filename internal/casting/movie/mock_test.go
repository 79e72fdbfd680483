package movie_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/taibuivan/casting/internal/casting/filter"
	"github.com/taibuivan/casting/internal/casting/movie"
)

type mockRepository struct {
	mock.Mock
}

func (repository *mockRepository) List(context context.Context, query filter.Query) ([]*movie.Movie, int, error) {
	args := repository.Called(context, query)
	movies, _ := args.Get(0).([]*movie.Movie)
	return movies, args.Int(1), args.Error(2)
}

func (repository *mockRepository) Get(context context.Context, id int64) (*movie.Movie, error) {
	args := repository.Called(context, id)
	found, _ := args.Get(0).(*movie.Movie)
	return found, args.Error(1)
}

func (repository *mockRepository) Create(context context.Context, created *movie.Movie) error {
	args := repository.Called(context, created)
	return args.Error(0)
}

func (repository *mockRepository) Update(context context.Context, updated *movie.Movie) error {
	args := repository.Called(context, updated)
	return args.Error(0)
}

func (repository *mockRepository) Delete(context context.Context, id int64) error {
	args := repository.Called(context, id)
	return args.Error(0)
}
