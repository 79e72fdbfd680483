package actor

import (
	"context"

	"github.com/taibuivan/casting/internal/casting/filter"
)

// Repository persists actors.
type Repository interface {
	List(context context.Context, query filter.Query) ([]*Actor, int, error)
	Get(context context.Context, id int64) (*Actor, error)
	Create(context context.Context, actor *Actor) error
	Update(context context.Context, actor *Actor) error
	// Delete removes the actor only; roles keep their actor_id.
	Delete(context context.Context, id int64) error
}
