package movie

import (
	"context"

	"github.com/taibuivan/casting/internal/casting/filter"
)

// Repository persists movies.
type Repository interface {
	List(context context.Context, query filter.Query) ([]*Movie, int, error)
	Get(context context.Context, id int64) (*Movie, error)
	Create(context context.Context, movie *Movie) error
	Update(context context.Context, movie *Movie) error
	// Delete removes the movie and every role cast for it.
	Delete(context context.Context, id int64) error
}
