package role_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/taibuivan/casting/internal/casting/filter"
	"github.com/taibuivan/casting/internal/casting/role"
)

type mockRepository struct {
	mock.Mock
}

func (repository *mockRepository) List(context context.Context, query filter.Query) ([]*role.Role, int, error) {
	args := repository.Called(context, query)
	roles, _ := args.Get(0).([]*role.Role)
	return roles, args.Int(1), args.Error(2)
}

func (repository *mockRepository) ListByMovie(context context.Context, movieID int64) ([]*role.Role, error) {
	args := repository.Called(context, movieID)
	roles, _ := args.Get(0).([]*role.Role)
	return roles, args.Error(1)
}

func (repository *mockRepository) ListByActor(context context.Context, actorID int64) ([]*role.Role, error) {
	args := repository.Called(context, actorID)
	roles, _ := args.Get(0).([]*role.Role)
	return roles, args.Error(1)
}

func (repository *mockRepository) Get(context context.Context, id int64) (*role.Role, error) {
	args := repository.Called(context, id)
	found, _ := args.Get(0).(*role.Role)
	return found, args.Error(1)
}

func (repository *mockRepository) Create(context context.Context, created *role.Role) error {
	args := repository.Called(context, created)
	return args.Error(0)
}

func (repository *mockRepository) Update(context context.Context, updated *role.Role) error {
	args := repository.Called(context, updated)
	return args.Error(0)
}

func (repository *mockRepository) Delete(context context.Context, id int64) error {
	args := repository.Called(context, id)
	return args.Error(0)
}

// knownIDs is a Checker backed by a fixed id set.
type knownIDs map[int64]bool

func (ids knownIDs) Exists(_ context.Context, id int64) (bool, error) {
	return ids[id], nil
}

type failingChecker struct{ err error }

func (checker failingChecker) Exists(context.Context, int64) (bool, error) {
	return false, checker.err
}
