package sqltable

import "database/sql"

var _ Rows = &sql.Rows{}

// Rows is the part of *sql.Rows used by ScanRows.
//
// The usage pattern is the one of *sql.Rows:
// call Next before every Scan, Close when done
// and check Err after the iteration.
type Rows interface {
	// Columns returns the names of the result columns in query order.
	Columns() ([]string, error)

	// Scan copies the column values of the current row into dest.
	Scan(dest ...any) error

	// Close releases the rows, it is safe to call it more than once.
	Close() error

	// Next prepares the next row for Scan
	// and returns false if there is none or an error happened.
	Next() bool

	// Err returns the error that ended the iteration, if any.
	Err() error
}
