package sqltable

import (
	"context"
	"database/sql"
	"fmt"

	gridtable "github.com/domonda/go-gridtable"
)

// ScanRows reads all rows as gridtable rows keyed by the result column names
// and closes rows.
// SQL NULL values are nil and rendered as absent,
// []byte values are converted to strings.
func ScanRows(ctx context.Context, rows Rows) ([]gridtable.Row, error) {
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	var result []gridtable.Row
	for rows.Next() {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		scannedValues := make([]any, len(columns))
		valueScanners := make([]any, len(columns))
		for i := range valueScanners {
			valueScanners[i] = valueScanner{&scannedValues[i]}
		}
		err = rows.Scan(valueScanners...)
		if err != nil {
			return nil, err
		}
		row := make(gridtable.Row, len(columns))
		for i, column := range columns {
			row[column] = scannedValues[i]
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// Query runs query with args on db and returns the scanned rows.
func Query(ctx context.Context, db *sql.DB, query string, args ...any) ([]gridtable.Row, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query %q: %w", query, err)
	}
	return ScanRows(ctx, rows)
}

var _ sql.Scanner = new(valueScanner)

type valueScanner struct {
	dest *any
}

// Scan implements the database/sql.Scanner interface.
func (s valueScanner) Scan(src any) error {
	if b, ok := src.([]byte); ok {
		// Copy because b is not valid after this method call
		src = string(b)
	}
	*s.dest = src
	return nil
}
