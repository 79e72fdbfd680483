package role

import (
	"context"

	"github.com/taibuivan/casting/internal/casting/filter"
)

// Repository persists roles.
type Repository interface {
	List(context context.Context, query filter.Query) ([]*Role, int, error)
	ListByMovie(context context.Context, movieID int64) ([]*Role, error)
	ListByActor(context context.Context, actorID int64) ([]*Role, error)
	Get(context context.Context, id int64) (*Role, error)
	Create(context context.Context, role *Role) error
	Update(context context.Context, role *Role) error
	Delete(context context.Context, id int64) error
}
