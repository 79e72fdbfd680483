/*
Package filter implements the query filter chain used by every list endpoint.

A [Chain] is built from a table definition and the raw query-string values of
a request. Each step appends SQL conditions with positional arguments;
[Chain.Paginate] closes the chain and returns the count and page statements.

Query-string values are always bound as text and cast to the column type by
Postgres, so a value that does not fit the column (for example "abc" for an
integer) fails the query at execution time instead of being silently
dropped.

Example:

	query, err := filter.New(schema.CastingActor.Definition(), request.URL.Query()).
		Match().
		Search("name").
		Range("age").
		Paginate()
*/
package filter

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/taibuivan/casting/internal/platform/apperr"
	"github.com/taibuivan/casting/internal/platform/database/schema"
	"github.com/taibuivan/casting/pkg/pagination"
)

// KeySearchTerm is the query key read by [Chain.Search].
const KeySearchTerm = "search_term"

// Chain accumulates WHERE conditions for a single table.
type Chain struct {
	table      schema.Table
	values     url.Values
	conditions []string
	args       []any
}

// Query is the result of a closed chain.
type Query struct {
	// Count counts every row matching the filters, ignoring pagination.
	Count string
	// Select returns one page of matching rows ordered by id.
	Select string
	// Args are the filter arguments shared by Count and Select.
	Args []any
	// Page is the requested page window.
	Page pagination.Params
}

// SelectArgs returns Args followed by the LIMIT and OFFSET values.
func (q Query) SelectArgs() []any {
	args := make([]any, 0, len(q.Args)+2)
	args = append(args, q.Args...)
	return append(args, q.Page.Limit(), q.Page.Offset())
}

// New starts a chain over table using the request's query values.
func New(table schema.Table, values url.Values) *Chain {
	return &Chain{table: table, values: values}
}

// Match adds a set-membership condition for every table column that appears
// as a query key. Repeated keys widen the set. Keys that are not columns of
// the table are ignored.
func (chain *Chain) Match() *Chain {
	for _, column := range chain.table.Columns {
		values, ok := chain.values[column.Name]
		if !ok || len(values) == 0 {
			continue
		}
		chain.add(fmt.Sprintf("%s = ANY(CAST($%d::text[] AS %s[]))", column.Name, chain.next(), column.Type), values)
	}
	return chain
}

// Min keeps rows whose column is greater than or equal to the first value of
// key. An empty key defaults to "min_<column>".
func (chain *Chain) Min(column, key string) *Chain {
	if key == "" {
		key = "min_" + column
	}
	return chain.bound(column, key, ">=")
}

// Max keeps rows whose column is less than or equal to the first value of
// key. An empty key defaults to "max_<column>".
func (chain *Chain) Max(column, key string) *Chain {
	if key == "" {
		key = "max_" + column
	}
	return chain.bound(column, key, "<=")
}

// Range applies [Chain.Min] then [Chain.Max] with the default keys.
func (chain *Chain) Range(column string) *Chain {
	return chain.Min(column, "").Max(column, "")
}

// Search keeps rows whose column contains the first "search_term" value,
// ignoring case.
func (chain *Chain) Search(column string) *Chain {
	term, ok := chain.first(KeySearchTerm)
	if !ok {
		return chain
	}
	if _, known := chain.table.Lookup(column); !known {
		return chain
	}
	chain.add(fmt.Sprintf("%s ILIKE '%%' || $%d || '%%'", column, chain.next()), term)
	return chain
}

// Paginate closes the chain.
//
// It fails with a generic unprocessable error when "page" or "page_size" is
// malformed.
func (chain *Chain) Paginate() (Query, error) {
	page, err := pagination.FromValues(chain.values)
	if err != nil {
		return Query{}, apperr.Unprocessable(err)
	}

	where := ""
	if len(chain.conditions) > 0 {
		where = " WHERE " + strings.Join(chain.conditions, " AND ")
	}

	limitIndex := len(chain.args) + 1
	return Query{
		Count: fmt.Sprintf("SELECT COUNT(*) FROM %s%s", chain.table.Name, where),
		Select: fmt.Sprintf("SELECT %s FROM %s%s ORDER BY id LIMIT $%d OFFSET $%d",
			chain.table.SelectList(), chain.table.Name, where, limitIndex, limitIndex+1),
		Args: chain.args,
		Page: page,
	}, nil
}

// # Internals

func (chain *Chain) bound(column, key, operator string) *Chain {
	value, ok := chain.first(key)
	if !ok {
		return chain
	}
	definition, known := chain.table.Lookup(column)
	if !known {
		return chain
	}
	chain.add(fmt.Sprintf("%s %s CAST($%d::text AS %s)", definition.Name, operator, chain.next(), definition.Type), value)
	return chain
}

func (chain *Chain) first(key string) (string, bool) {
	values, ok := chain.values[key]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

func (chain *Chain) next() int {
	return len(chain.args) + 1
}

func (chain *Chain) add(condition string, arg any) {
	chain.conditions = append(chain.conditions, condition)
	chain.args = append(chain.args, arg)
}
