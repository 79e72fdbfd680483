package movie_test

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/casting/internal/casting/filter"
	"github.com/taibuivan/casting/internal/casting/movie"
	"github.com/taibuivan/casting/internal/platform/apperr"
	"github.com/taibuivan/casting/internal/platform/validate"
)

func newService(repository *mockRepository) *movie.Service {
	return movie.NewService(repository, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func storedMovie() *movie.Movie {
	return &movie.Movie{
		ID:          7,
		Title:       "The Long Take",
		ReleaseDate: movie.Date{Time: time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC)},
		Company:     "North Star",
	}
}

/*
TestService_ListMovies checks the chain order: match, release date range,
then title search.
*/
func TestService_ListMovies(t *testing.T) {
	repository := &mockRepository{}
	values := url.Values{
		"company":          {"North Star"},
		"min_release_date": {"2020-01-01"},
		"search_term":      {"take"},
		"page_size":        {"5"},
	}

	repository.On("List", mock.Anything, mock.MatchedBy(func(query filter.Query) bool {
		return query.Count == "SELECT COUNT(*) FROM movies WHERE company = ANY(CAST($1::text[] AS text[])) AND release_date >= CAST($2::text AS date) AND title ILIKE '%' || $3 || '%'" &&
			query.Page.PageSize == 5
	})).Return([]*movie.Movie{storedMovie()}, 1, nil)

	movies, total, err := newService(repository).ListMovies(context.Background(), values)
	require.NoError(t, err)
	assert.Len(t, movies, 1)
	assert.Equal(t, 1, total)
	repository.AssertExpectations(t)
}

func TestService_ListMovies_BadPage(t *testing.T) {
	repository := &mockRepository{}

	_, _, err := newService(repository).ListMovies(context.Background(), url.Values{"page": {"first"}})
	require.Error(t, err)
	assert.Equal(t, "unprocessable", err.Error())
	repository.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestService_CreateMovie(t *testing.T) {
	repository := &mockRepository{}
	repository.On("Create", mock.Anything, mock.AnythingOfType("*movie.Movie")).
		Run(func(args mock.Arguments) { args.Get(1).(*movie.Movie).ID = 11 }).
		Return(nil)

	created, err := newService(repository).CreateMovie(context.Background(), validInput())
	require.NoError(t, err)
	assert.Equal(t, int64(11), created.ID)
	repository.AssertExpectations(t)
}

func TestService_CreateMovie_InvalidSkipsStore(t *testing.T) {
	repository := &mockRepository{}
	input := validInput()
	input["release_date"] = "2021-13-01"

	_, err := newService(repository).CreateMovie(context.Background(), input)
	require.Error(t, err)
	assert.Equal(t, "Provided release_date does not match format YYYY-MM-DD", err.Error())
	repository.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

/*
TestService_UpdateMovie checks that only provided fields change and a failed
rule leaves the stored movie untouched.
*/
func TestService_UpdateMovie(t *testing.T) {
	t.Run("partial", func(t *testing.T) {
		repository := &mockRepository{}
		repository.On("Get", mock.Anything, int64(7)).Return(storedMovie(), nil)
		repository.On("Update", mock.Anything, mock.MatchedBy(func(updated *movie.Movie) bool {
			return updated.ID == 7 && updated.Title == "Second Take" && updated.Company == "North Star"
		})).Return(nil)

		updated, err := newService(repository).UpdateMovie(context.Background(), 7, validate.Input{"title": "Second Take", "company": nil})
		require.NoError(t, err)
		assert.Equal(t, "Second Take", updated.Title)
		repository.AssertExpectations(t)
	})

	t.Run("invalid", func(t *testing.T) {
		repository := &mockRepository{}
		stored := storedMovie()
		repository.On("Get", mock.Anything, int64(7)).Return(stored, nil)

		_, err := newService(repository).UpdateMovie(context.Background(), 7, validate.Input{"title": "New", "release_date": "soon"})
		require.Error(t, err)
		assert.Equal(t, "The Long Take", stored.Title)
		repository.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("missing", func(t *testing.T) {
		repository := &mockRepository{}
		repository.On("Get", mock.Anything, int64(99)).Return(nil, apperr.NotFound("movie"))

		_, err := newService(repository).UpdateMovie(context.Background(), 99, validate.Input{"title": "x"})
		require.Error(t, err)
		assert.Equal(t, "Invalid movie id", err.Error())
	})
}

func TestService_DeleteMovie(t *testing.T) {
	repository := &mockRepository{}
	repository.On("Delete", mock.Anything, int64(7)).Return(nil)
	repository.On("Delete", mock.Anything, int64(8)).Return(apperr.NotFound("movie"))

	service := newService(repository)
	assert.NoError(t, service.DeleteMovie(context.Background(), 7))
	assert.Equal(t, "Invalid movie id", service.DeleteMovie(context.Background(), 8).Error())
}
