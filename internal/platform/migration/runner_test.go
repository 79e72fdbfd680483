// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package migration

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertToPgx5DSN(t *testing.T) {
	tests := []struct {
		name string
		dsn  string
		want string
	}{
		{"postgres_scheme", "postgres://u:p@db:5432/casting", "pgx5://u:p@db:5432/casting"},
		{"postgresql_scheme", "postgresql://u:p@db/casting?sslmode=disable", "pgx5://u:p@db/casting?sslmode=disable"},
		{"already_pgx5", "pgx5://db/casting", "pgx5://db/casting"},
		{"keyword_dsn", "host=db dbname=casting", "host=db dbname=casting"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, convertToPgx5DSN(tt.dsn))
		})
	}
}

func TestSourceURL(t *testing.T) {
	assert.Equal(t, "file://./data/migrations", sourceURL("./data/migrations"))
	assert.Equal(t, "file:///srv/migrations", sourceURL("file:///srv/migrations"))
}

func TestMigrateLogger_Verbose(t *testing.T) {
	debug := &migrateLogger{logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))}
	info := &migrateLogger{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	assert.True(t, debug.Verbose())
	assert.False(t, info.Verbose())
}
