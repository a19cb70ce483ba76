package sqltable

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"regexp"
	"slices"
	"strconv"
	"strings"

	gridtable "github.com/domonda/go-gridtable"
)

var _ driver.Stmt = new(stmt)

// stmt is a parsed SELECT query over a Table
// with the projected keys and the row window.
type stmt struct {
	keys []string
	rows []gridtable.Row
}

func newStmt(tables map[string]*Table, query string) (*stmt, error) {
	queryColumns, name, offset, limit, err := parseQuery(query)
	if err != nil {
		return nil, err
	}
	table := tables[name]
	if table == nil {
		return nil, fmt.Errorf("table %q not found", name)
	}
	keys := table.Keys
	if !slices.Equal(queryColumns, []string{"*"}) {
		for _, column := range queryColumns {
			if !slices.Contains(table.Keys, column) {
				return nil, fmt.Errorf("column %q not found in table %q", column, name)
			}
		}
		keys = queryColumns
	}
	rows := table.Rows[min(offset, len(table.Rows)):]
	if limit > 0 && limit < len(rows) {
		rows = rows[:limit]
	}
	return &stmt{keys: keys, rows: rows}, nil
}

func (s *stmt) Close() error {
	return nil
}

// NumInput returns 0, placeholders are not supported.
func (s *stmt) NumInput() int {
	return 0
}

func (s *stmt) Exec(args []driver.Value) (driver.Result, error) {
	return nil, errors.New("Exec not implemented")
}

func (s *stmt) Query(args []driver.Value) (driver.Rows, error) {
	return &driverRows{stmt: s}, nil
}

var _ driver.Rows = new(driverRows)

type driverRows struct {
	stmt     *stmt
	rowIndex int
}

func (r *driverRows) Columns() []string {
	return r.stmt.keys
}

func (r *driverRows) Close() error {
	r.rowIndex = -1
	return nil
}

func (r *driverRows) Next(dest []driver.Value) (err error) {
	if r.rowIndex < 0 || r.rowIndex >= len(r.stmt.rows) {
		return io.EOF
	}
	row := r.stmt.rows[r.rowIndex]
	for col := range dest {
		dest[col], err = driverValue(row[r.stmt.keys[col]])
		if err != nil {
			return fmt.Errorf("row %d column %q: %w", r.rowIndex, r.stmt.keys[col], err)
		}
	}
	r.rowIndex++
	return nil
}

// driverValue converts a row value with the
// conversion rules of database/sql query arguments,
// absent values are NULL and JSON numbers stay numbers.
func driverValue(val any) (driver.Value, error) {
	if gridtable.IsAbsent(val) {
		return nil, nil
	}
	if n, ok := val.(json.Number); ok {
		if i, err := n.Int64(); err == nil {
			return i, nil
		}
		return n.Float64()
	}
	return driver.DefaultParameterConverter.ConvertValue(val)
}

var queryRegexp = regexp.MustCompile(`^(?:SELECT|select)\s+(\*|(?:[a-zA-Z]\w*|"[a-zA-Z]\w*")(?:\s*,\s*[a-zA-Z]\w*|\s*,\s*"[a-zA-Z]\w*")*)\s+(?:FROM|from)\s+([a-zA-Z][\w.]*|"[a-zA-Z][\w.]*")(?:\s+(?:LIMIT|limit)\s+(\d+))?(?:\s+(?:OFFSET|offset)\s+(\d+))?(?:\s*;)*$`)

// parseQuery parses queries of the form
//
//	SELECT * | col1, "col2" FROM table | "schema.table" [LIMIT n] [OFFSET n]
func parseQuery(query string) (columns []string, table string, offset, limit int, err error) {
	query = strings.TrimSpace(query)
	m := queryRegexp.FindStringSubmatch(query)
	if len(m) != 5 {
		return nil, "", 0, 0, fmt.Errorf("invalid query %q", query)
	}
	columns = strings.Split(m[1], ",")
	for i := range columns {
		columns[i] = unquote(strings.TrimSpace(columns[i]))
	}
	table = unquote(m[2])
	if m[3] != "" {
		if limit, err = strconv.Atoi(m[3]); err != nil {
			return nil, "", 0, 0, fmt.Errorf("invalid LIMIT in query %q: %w", query, err)
		}
	}
	if m[4] != "" {
		if offset, err = strconv.Atoi(m[4]); err != nil {
			return nil, "", 0, 0, fmt.Errorf("invalid OFFSET in query %q: %w", query, err)
		}
	}
	return columns, table, offset, limit, nil
}

func unquote(str string) string {
	if len(str) >= 2 && str[0] == '"' && str[len(str)-1] == '"' {
		return str[1 : len(str)-1]
	}
	return str
}
