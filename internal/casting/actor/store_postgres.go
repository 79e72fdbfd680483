package actor

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

const entityName = "actor"

// PostgresRepository stores actors in the "actors" table.
type PostgresRepository struct {
	db postgres.DB
}

func NewPostgresRepository(db postgres.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// writeValues lists the writable columns of actor in table order.
func writeValues(actor *Actor) []any {
	return []any{
		actor.Name, actor.Age, actor.Gender, actor.Location, actor.Passport, actor.DriverLicense,
		actor.Ethnicity, actor.HairColor, actor.EyeColor, actor.BodyType, actor.Height,
		actor.Description, actor.ImageLink, actor.Phone, actor.Email,
	}
}

func scanActor(row pgx.Row) (*Actor, error) {
	actor := &Actor{}
	err := row.Scan(
		&actor.ID, &actor.Name, &actor.Age, &actor.Gender, &actor.Location, &actor.Passport, &actor.DriverLicense,
		&actor.Ethnicity, &actor.HairColor, &actor.EyeColor, &actor.BodyType, &actor.Height,
		&actor.Description, &actor.ImageLink, &actor.Phone, &actor.Email,
	)
	return actor, err
}

func (repository *PostgresRepository) List(context context.Context, query filter.Query) ([]*Actor, int, error) {
	var total int
	if err := repository.db.QueryRow(context, query.Count, query.Args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, entityName, "count_actors")
	}

	rows, err := repository.db.Query(context, query.Select, query.SelectArgs()...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, entityName, "list_actors")
	}
	defer rows.Close()

	actors := []*Actor{}
	for rows.Next() {
		actor, err := scanActor(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, entityName, "scan_actor")
		}
		actors = append(actors, actor)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, entityName, "list_actors")
	}

	return actors, total, nil
}

func (repository *PostgresRepository) Get(context context.Context, id int64) (*Actor, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		schema.CastingActor.Definition().SelectList(), schema.CastingActor.Table, schema.CastingActor.ID,
	)

	actor, err := scanActor(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, entityName, "get_actor")
	}
	return actor, nil
}

// Exists reports whether an actor with id is stored.
func (repository *PostgresRepository) Exists(context context.Context, id int64) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`, schema.CastingActor.Table, schema.CastingActor.ID)

	var exists bool
	if err := repository.db.QueryRow(context, query, id).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, entityName, "actor_exists")
	}
	return exists, nil
}

func (repository *PostgresRepository) Create(context context.Context, actor *Actor) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, entityName, "begin_create_actor")
	}
	defer transaction.Rollback(context)

	query := schema.CastingActor.Definition().InsertSQL()
	if err := transaction.QueryRow(context, query, writeValues(actor)...).Scan(&actor.ID); err != nil {
		return dberr.Wrap(err, entityName, "create_actor")
	}

	if err := transaction.Commit(context); err != nil {
		return dberr.Wrap(err, entityName, "commit_create_actor")
	}
	return nil
}

func (repository *PostgresRepository) Update(context context.Context, actor *Actor) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, entityName, "begin_update_actor")
	}
	defer transaction.Rollback(context)

	args := append([]any{actor.ID}, writeValues(actor)...)
	response, err := transaction.Exec(context, schema.CastingActor.Definition().UpdateSQL(), args...)
	if err != nil {
		return dberr.Wrap(err, entityName, "update_actor")
	}
	if response.RowsAffected() == 0 {
		return apperr.NotFound(entityName)
	}

	if err := transaction.Commit(context); err != nil {
		return dberr.Wrap(err, entityName, "commit_update_actor")
	}
	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id int64) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, entityName, "begin_delete_actor")
	}
	defer transaction.Rollback(context)

	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CastingActor.Table, schema.CastingActor.ID)
	response, err := transaction.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, entityName, "delete_actor")
	}
	if response.RowsAffected() == 0 {
		return apperr.NotFound(entityName)
	}

	if err := transaction.Commit(context); err != nil {
		return dberr.Wrap(err, entityName, "commit_delete_actor")
	}
	return nil
}
