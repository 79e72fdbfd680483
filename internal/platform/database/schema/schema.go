// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package schema holds the table and column names of the casting database.

Each table is described twice: a typed struct of column names used by the
repositories when building SQL, and a [Table] definition carrying the
Postgres type of every column, used by the query filter chain to cast
query-string values on the server side.
*/
package schema

import (
	"fmt"
	"strings"
)

// Column is a single column with its Postgres type.
type Column struct {
	Name string
	// Type is the Postgres type name used in CAST expressions.
	Type string
	// Enum marks user-defined enum types, which are read back as text.
	Enum bool
}

// Select returns the column expression used in SELECT lists.
func (c Column) Select() string {
	if c.Enum {
		return c.Name + "::text"
	}
	return c.Name
}

// Placeholder returns the positional parameter for the column in writes.
// Enum values are bound as text and cast on the server.
func (c Column) Placeholder(position int) string {
	if c.Enum {
		return fmt.Sprintf("CAST($%d::text AS %s)", position, c.Type)
	}
	return fmt.Sprintf("$%d", position)
}

// Table is a table name and its ordered columns.
type Table struct {
	Name    string
	Columns []Column
}

// Lookup returns the column with the given name.
func (t Table) Lookup(name string) (Column, bool) {
	for _, column := range t.Columns {
		if column.Name == name {
			return column, true
		}
	}
	return Column{}, false
}

// SelectList returns every column as a comma-separated SELECT list.
func (t Table) SelectList() string {
	parts := make([]string, len(t.Columns))
	for i, column := range t.Columns {
		parts[i] = column.Select()
	}
	return strings.Join(parts, ", ")
}

// Writable returns every column except the primary key.
func (t Table) Writable() []Column {
	columns := make([]Column, 0, len(t.Columns))
	for _, column := range t.Columns {
		if column.Name != "id" {
			columns = append(columns, column)
		}
	}
	return columns
}

// InsertSQL returns an INSERT of every writable column returning the new id.
func (t Table) InsertSQL() string {
	writable := t.Writable()
	names := make([]string, len(writable))
	placeholders := make([]string, len(writable))
	for i, column := range writable {
		names[i] = column.Name
		placeholders[i] = column.Placeholder(i + 1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING id",
		t.Name, strings.Join(names, ", "), strings.Join(placeholders, ", "))
}

// UpdateSQL returns an UPDATE of every writable column; $1 is the id.
func (t Table) UpdateSQL() string {
	writable := t.Writable()
	assignments := make([]string, len(writable))
	for i, column := range writable {
		assignments[i] = column.Name + " = " + column.Placeholder(i + 2)
	}
	return fmt.Sprintf("UPDATE %s SET %s WHERE id = $1", t.Name, strings.Join(assignments, ", "))
}

// Postgres types shared across tables.
const (
	TypeBigint  = "bigint"
	TypeInteger = "integer"
	TypeText    = "text"
	TypeBoolean = "boolean"
	TypeDate    = "date"
)
