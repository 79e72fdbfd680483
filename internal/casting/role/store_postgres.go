package role

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

const entityName = "role"

// PostgresRepository stores roles in the "roles" table.
type PostgresRepository struct {
	db postgres.DB
}

func NewPostgresRepository(db postgres.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func writeValues(role *Role) []any {
	return []any{role.MovieID, role.ActorID, role.Name, role.Gender, role.MinAge, role.MaxAge, role.Description}
}

func scanRole(row pgx.Row) (*Role, error) {
	role := &Role{}
	err := row.Scan(
		&role.ID, &role.MovieID, &role.ActorID, &role.Name, &role.Gender,
		&role.MinAge, &role.MaxAge, &role.Description,
	)
	return role, err
}

func collect(rows pgx.Rows, action string) ([]*Role, error) {
	defer rows.Close()

	roles := []*Role{}
	for rows.Next() {
		role, err := scanRole(rows)
		if err != nil {
			return nil, dberr.Wrap(err, entityName, "scan_role")
		}
		roles = append(roles, role)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, entityName, action)
	}
	return roles, nil
}

func (repository *PostgresRepository) List(context context.Context, query filter.Query) ([]*Role, int, error) {
	var total int
	if err := repository.db.QueryRow(context, query.Count, query.Args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, entityName, "count_roles")
	}

	rows, err := repository.db.Query(context, query.Select, query.SelectArgs()...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, entityName, "list_roles")
	}

	roles, err := collect(rows, "list_roles")
	if err != nil {
		return nil, 0, err
	}
	return roles, total, nil
}

// ListByMovie returns every role of a movie ordered by id.
func (repository *PostgresRepository) ListByMovie(context context.Context, movieID int64) ([]*Role, error) {
	return repository.listBy(context, schema.CastingRole.MovieID, movieID, "list_movie_roles")
}

// ListByActor returns every role cast with an actor ordered by id.
func (repository *PostgresRepository) ListByActor(context context.Context, actorID int64) ([]*Role, error) {
	return repository.listBy(context, schema.CastingRole.ActorID, actorID, "list_actor_roles")
}

func (repository *PostgresRepository) listBy(context context.Context, column string, id int64, action string) ([]*Role, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s`,
		schema.CastingRole.Definition().SelectList(), schema.CastingRole.Table, column, schema.CastingRole.ID,
	)

	rows, err := repository.db.Query(context, query, id)
	if err != nil {
		return nil, dberr.Wrap(err, entityName, action)
	}
	return collect(rows, action)
}

func (repository *PostgresRepository) Get(context context.Context, id int64) (*Role, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		schema.CastingRole.Definition().SelectList(), schema.CastingRole.Table, schema.CastingRole.ID,
	)

	role, err := scanRole(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, entityName, "get_role")
	}
	return role, nil
}

func (repository *PostgresRepository) Create(context context.Context, role *Role) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, entityName, "begin_create_role")
	}
	defer transaction.Rollback(context)

	query := schema.CastingRole.Definition().InsertSQL()
	if err := transaction.QueryRow(context, query, writeValues(role)...).Scan(&role.ID); err != nil {
		return dberr.Wrap(err, entityName, "create_role")
	}

	if err := transaction.Commit(context); err != nil {
		return dberr.Wrap(err, entityName, "commit_create_role")
	}
	return nil
}

func (repository *PostgresRepository) Update(context context.Context, role *Role) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, entityName, "begin_update_role")
	}
	defer transaction.Rollback(context)

	args := append([]any{role.ID}, writeValues(role)...)
	response, err := transaction.Exec(context, schema.CastingRole.Definition().UpdateSQL(), args...)
	if err != nil {
		return dberr.Wrap(err, entityName, "update_role")
	}
	if response.RowsAffected() == 0 {
		return apperr.NotFound(entityName)
	}

	if err := transaction.Commit(context); err != nil {
		return dberr.Wrap(err, entityName, "commit_update_role")
	}
	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id int64) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, entityName, "begin_delete_role")
	}
	defer transaction.Rollback(context)

	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CastingRole.Table, schema.CastingRole.ID)
	response, err := transaction.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, entityName, "delete_role")
	}
	if response.RowsAffected() == 0 {
		return apperr.NotFound(entityName)
	}

	if err := transaction.Commit(context); err != nil {
		return dberr.Wrap(err, entityName, "commit_delete_role")
	}
	return nil
}
