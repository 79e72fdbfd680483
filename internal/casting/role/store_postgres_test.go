package role_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/casting/internal/casting/role"
	"github.com/taibuivan/casting/internal/platform/apperr"
	"github.com/taibuivan/casting/internal/platform/postgres/postgrestest"
	"github.com/taibuivan/casting/pkg/pointer"
)

/*
TestPostgresRepository_Delete covers role removal inside its own transaction.
*/
func TestPostgresRepository_Delete(t *testing.T) {
	tests := []struct {
		name          string
		affected      int64
		wantMessage   string
		wantCommitted bool
	}{
		{"stored", 1, "", true},
		{"missing", 0, "Invalid role id", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := &postgrestest.DB{Affected: []int64{tt.affected}}

			err := role.NewPostgresRepository(db).Delete(context.Background(), 11)

			require.Len(t, db.Statements, 1)
			assert.Equal(t, "DELETE FROM roles WHERE id = $1", db.Statements[0].Query())
			assert.Equal(t, []any{int64(11)}, db.Statements[0].Args)
			assert.Equal(t, 1, db.Statements[0].Tx)

			require.Len(t, db.Transactions, 1)
			assert.Equal(t, tt.wantCommitted, db.Transactions[0].Committed)
			assert.Equal(t, !tt.wantCommitted, db.Transactions[0].RolledBack)

			if tt.wantMessage == "" {
				require.NoError(t, err)
				return
			}
			appError := apperr.As(err)
			require.NotNil(t, appError)
			assert.Equal(t, tt.wantMessage, appError.Message)
		})
	}
}

/*
TestPostgresRepository_ListBy checks the filter column and ordering of the
per-movie and per-actor role listings.
*/
func TestPostgresRepository_ListBy(t *testing.T) {
	stored := []any{int64(3), int64(1), pointer.To(int64(7)), "lead", "female", 20, 30, (*string)(nil)}

	tests := []struct {
		name       string
		list       func(*role.PostgresRepository) ([]*role.Role, error)
		wantSuffix string
	}{
		{
			name: "by_movie",
			list: func(repository *role.PostgresRepository) ([]*role.Role, error) {
				return repository.ListByMovie(context.Background(), 1)
			},
			wantSuffix: "FROM roles WHERE movie_id = $1 ORDER BY id",
		},
		{
			name: "by_actor",
			list: func(repository *role.PostgresRepository) ([]*role.Role, error) {
				return repository.ListByActor(context.Background(), 1)
			},
			wantSuffix: "FROM roles WHERE actor_id = $1 ORDER BY id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := &postgrestest.DB{Results: [][][]any{{stored}}}

			roles, err := tt.list(role.NewPostgresRepository(db))
			require.NoError(t, err)

			require.Len(t, db.Statements, 1)
			assert.True(t, strings.HasSuffix(db.Statements[0].Query(), tt.wantSuffix), db.Statements[0].Query())
			assert.Equal(t, []any{int64(1)}, db.Statements[0].Args)

			require.Len(t, roles, 1)
			assert.Equal(t, &role.Role{
				ID: 3, MovieID: 1, ActorID: pointer.To(int64(7)), Name: "lead", Gender: "female", MinAge: 20, MaxAge: 30,
			}, roles[0])
		})
	}
}

func TestPostgresRepository_ListByMovie_Empty(t *testing.T) {
	roles, err := role.NewPostgresRepository(&postgrestest.DB{}).ListByMovie(context.Background(), 2)
	require.NoError(t, err)
	assert.Empty(t, roles)
	assert.NotNil(t, roles)
}

func TestPostgresRepository_Create_StoreFailure(t *testing.T) {
	db := &postgrestest.DB{Err: errors.New("connection reset")}

	err := role.NewPostgresRepository(db).Create(context.Background(), &role.Role{MovieID: 1, Name: "lead"})

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "unprocessable", appError.Message)
	assert.False(t, db.Transactions[0].Committed)
}
