package sqltable

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"slices"

	gridtable "github.com/domonda/go-gridtable"
)

// Table is a read-only in-memory SQL table of gridtable rows.
type Table struct {
	// Keys are the column names in the order of SELECT *
	Keys []string
	Rows []gridtable.Row
}

// NewTable returns a Table with the sorted union
// of all row keys as column names.
func NewTable(rows []gridtable.Row) *Table {
	seen := make(map[string]struct{})
	var keys []string
	for _, row := range rows {
		for key := range row {
			if _, ok := seen[key]; !ok {
				seen[key] = struct{}{}
				keys = append(keys, key)
			}
		}
	}
	slices.Sort(keys)
	return &Table{Keys: keys, Rows: rows}
}

// NewDB returns a *sql.DB that answers queries of the form
//
//	SELECT * | col1, col2 FROM table [LIMIT n] [OFFSET n]
//
// with the rows of the tables.
func NewDB(tables map[string]*Table) *sql.DB {
	return sql.OpenDB(database{tables: tables})
}

func NewTableDB(name string, table *Table) *sql.DB {
	return NewDB(map[string]*Table{name: table})
}

type database struct {
	tables map[string]*Table
}

func (c database) Connect(context.Context) (driver.Conn, error) {
	return c, nil
}

func (c database) Driver() driver.Driver {
	return c
}

func (c database) Open(string) (driver.Conn, error) {
	return c, nil
}

func (c database) Prepare(query string) (driver.Stmt, error) {
	return newStmt(c.tables, query)
}

func (database) Close() error {
	return nil
}

func (c database) Begin() (driver.Tx, error) {
	return c, nil
}

func (database) Commit() error {
	return nil
}

func (database) Rollback() error {
	return nil
}
