package movie

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/casting/internal/casting/filter"
	"github.com/taibuivan/casting/internal/platform/apperr"
	"github.com/taibuivan/casting/internal/platform/database/schema"
	"github.com/taibuivan/casting/internal/platform/dberr"
	"github.com/taibuivan/casting/internal/platform/postgres"
)

const entityName = "movie"

// PostgresRepository stores movies in the "movies" table.
type PostgresRepository struct {
	db postgres.DB
}

func NewPostgresRepository(db postgres.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanMovie(row pgx.Row) (*Movie, error) {
	movie := &Movie{}
	err := row.Scan(&movie.ID, &movie.Title, &movie.ReleaseDate.Time, &movie.Company, &movie.Description)
	return movie, err
}

func (repository *PostgresRepository) List(context context.Context, query filter.Query) ([]*Movie, int, error) {
	var total int
	if err := repository.db.QueryRow(context, query.Count, query.Args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, entityName, "count_movies")
	}

	rows, err := repository.db.Query(context, query.Select, query.SelectArgs()...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, entityName, "list_movies")
	}
	defer rows.Close()

	movies := []*Movie{}
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, entityName, "scan_movie")
		}
		movies = append(movies, movie)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, entityName, "list_movies")
	}

	return movies, total, nil
}

func (repository *PostgresRepository) Get(context context.Context, id int64) (*Movie, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		schema.CastingMovie.Definition().SelectList(), schema.CastingMovie.Table, schema.CastingMovie.ID,
	)

	movie, err := scanMovie(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, entityName, "get_movie")
	}
	return movie, nil
}

// Exists reports whether a movie with id is stored.
func (repository *PostgresRepository) Exists(context context.Context, id int64) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`, schema.CastingMovie.Table, schema.CastingMovie.ID)

	var exists bool
	if err := repository.db.QueryRow(context, query, id).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, entityName, "movie_exists")
	}
	return exists, nil
}

func (repository *PostgresRepository) Create(context context.Context, movie *Movie) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, entityName, "begin_create_movie")
	}
	defer transaction.Rollback(context)

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)
		RETURNING %s
	`,
		schema.CastingMovie.Table,
		schema.CastingMovie.Title, schema.CastingMovie.ReleaseDate, schema.CastingMovie.Company, schema.CastingMovie.Description,
		schema.CastingMovie.ID,
	)

	if err := transaction.QueryRow(context, query,
		movie.Title, movie.ReleaseDate.Time, movie.Company, movie.Description,
	).Scan(&movie.ID); err != nil {
		return dberr.Wrap(err, entityName, "create_movie")
	}

	if err := transaction.Commit(context); err != nil {
		return dberr.Wrap(err, entityName, "commit_create_movie")
	}
	return nil
}

func (repository *PostgresRepository) Update(context context.Context, movie *Movie) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, entityName, "begin_update_movie")
	}
	defer transaction.Rollback(context)

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5
		WHERE %s = $1
	`,
		schema.CastingMovie.Table,
		schema.CastingMovie.Title, schema.CastingMovie.ReleaseDate, schema.CastingMovie.Company, schema.CastingMovie.Description,
		schema.CastingMovie.ID,
	)

	response, err := transaction.Exec(context, query,
		movie.ID, movie.Title, movie.ReleaseDate.Time, movie.Company, movie.Description,
	)
	if err != nil {
		return dberr.Wrap(err, entityName, "update_movie")
	}
	if response.RowsAffected() == 0 {
		return apperr.NotFound(entityName)
	}

	if err := transaction.Commit(context); err != nil {
		return dberr.Wrap(err, entityName, "commit_update_movie")
	}
	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id int64) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, entityName, "begin_delete_movie")
	}
	defer transaction.Rollback(context)

	// Roles of the movie, then the movie itself
	rolesQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CastingRole.Table, schema.CastingRole.MovieID)
	if _, err := transaction.Exec(context, rolesQuery, id); err != nil {
		return dberr.Wrap(err, entityName, "delete_movie_roles")
	}

	movieQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CastingMovie.Table, schema.CastingMovie.ID)
	response, err := transaction.Exec(context, movieQuery, id)
	if err != nil {
		return dberr.Wrap(err, entityName, "delete_movie")
	}
	if response.RowsAffected() == 0 {
		return apperr.NotFound(entityName)
	}

	if err := transaction.Commit(context); err != nil {
		return dberr.Wrap(err, entityName, "commit_delete_movie")
	}
	return nil
}
