// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package postgrestest provides an in-memory [postgres.DB] for repository
// tests.
//
// [DB] records every statement it receives, on the pool or inside a
// transaction, and answers from canned results. It does not parse SQL.
package postgrestest

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/casting/internal/platform/postgres"
)

var _ postgres.DB = (*DB)(nil)

// Statement is one SQL call received by a [DB].
type Statement struct {
	SQL  string
	Args []any

	// Tx is the 1-based index into [DB.Transactions]; 0 means the pool.
	Tx int
}

// Query returns SQL with every run of whitespace collapsed to one space.
func (s Statement) Query() string {
	return strings.Join(strings.Fields(s.SQL), " ")
}

// Transaction records how a transaction begun on a [DB] ended.
type Transaction struct {
	Committed  bool
	RolledBack bool
}

// DB is a recording fake of [postgres.DB].
type DB struct {
	// Affected lists the rows-affected count of successive Exec calls.
	// Calls past the end affect one row.
	Affected []int64

	// Rows lists the values returned by successive QueryRow calls, one
	// slice per call. Calls past the end return [pgx.ErrNoRows].
	Rows [][]any

	// Results lists the row sets returned by successive Query calls.
	// Calls past the end return no rows.
	Results [][][]any

	// Err, when set, is returned by every statement.
	Err error

	mu           sync.Mutex
	Statements   []Statement
	Transactions []*Transaction
}

func (db *DB) Begin(_ context.Context) (pgx.Tx, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.Transactions = append(db.Transactions, &Transaction{})
	return &tx{db: db, index: len(db.Transactions)}, nil
}

func (db *DB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return db.exec(0, sql, args)
}

func (db *DB) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	return db.query(0, sql, args)
}

func (db *DB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	return db.queryRow(0, sql, args)
}

func (db *DB) record(index int, sql string, args []any) {
	db.Statements = append(db.Statements, Statement{SQL: sql, Args: args, Tx: index})
}

func (db *DB) exec(index int, sql string, args []any) (pgconn.CommandTag, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.record(index, sql, args)
	if db.Err != nil {
		return pgconn.CommandTag{}, db.Err
	}

	affected := int64(1)
	if len(db.Affected) > 0 {
		affected, db.Affected = db.Affected[0], db.Affected[1:]
	}
	verb := strings.ToUpper(strings.Fields(sql)[0])
	return pgconn.NewCommandTag(fmt.Sprintf("%s %d", verb, affected)), nil
}

func (db *DB) query(index int, sql string, args []any) (pgx.Rows, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.record(index, sql, args)
	if db.Err != nil {
		return nil, db.Err
	}

	result := &rows{}
	if len(db.Results) > 0 {
		result.values, db.Results = db.Results[0], db.Results[1:]
	}
	return result, nil
}

func (db *DB) queryRow(index int, sql string, args []any) pgx.Row {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.record(index, sql, args)
	if db.Err != nil {
		return row{err: db.Err}
	}
	if len(db.Rows) == 0 {
		return row{err: pgx.ErrNoRows}
	}

	values := db.Rows[0]
	db.Rows = db.Rows[1:]
	return row{values: values}
}

// tx embeds [pgx.Tx] for the methods repositories never call.
type tx struct {
	pgx.Tx
	db    *DB
	index int
}

func (t *tx) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return t.db.exec(t.index, sql, args)
}

func (t *tx) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	return t.db.query(t.index, sql, args)
}

func (t *tx) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	return t.db.queryRow(t.index, sql, args)
}

func (t *tx) Commit(_ context.Context) error {
	t.db.mu.Lock()
	defer t.db.mu.Unlock()

	state := t.db.Transactions[t.index-1]
	if state.Committed || state.RolledBack {
		return pgx.ErrTxClosed
	}
	state.Committed = true
	return nil
}

func (t *tx) Rollback(_ context.Context) error {
	t.db.mu.Lock()
	defer t.db.mu.Unlock()

	state := t.db.Transactions[t.index-1]
	if state.Committed || state.RolledBack {
		return pgx.ErrTxClosed
	}
	state.RolledBack = true
	return nil
}

type row struct {
	values []any
	err    error
}

func (r row) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return assign(r.values, dest)
}

// rows embeds [pgx.Rows] for the methods repositories never call.
type rows struct {
	pgx.Rows
	values  [][]any
	current []any
}

func (r *rows) Next() bool {
	if len(r.values) == 0 {
		return false
	}
	r.current, r.values = r.values[0], r.values[1:]
	return true
}

func (r *rows) Scan(dest ...any) error {
	return assign(r.current, dest)
}

func (r *rows) Err() error { return nil }

func (r *rows) Close() {}

// assign copies values into the pointers of dest, position by position.
func assign(values []any, dest []any) error {
	if len(values) != len(dest) {
		return fmt.Errorf("postgrestest: %d values for %d destinations", len(values), len(dest))
	}
	for i, value := range values {
		target := reflect.ValueOf(dest[i])
		if target.Kind() != reflect.Pointer || target.IsNil() {
			return fmt.Errorf("postgrestest: destination %d is not a pointer", i)
		}
		element := target.Elem()
		if value == nil {
			element.SetZero()
			continue
		}
		source := reflect.ValueOf(value)
		if !source.Type().AssignableTo(element.Type()) {
			return fmt.Errorf("postgrestest: cannot assign %s to %s at %d", source.Type(), element.Type(), i)
		}
		element.Set(source)
	}
	return nil
}
