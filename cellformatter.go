package gridtable

import (
	"context"
	"fmt"
)

// Cell is passed to a CellFormatter.
type Cell struct {
	// Column of the cell
	Column Column
	// Row containing the cell
	Row Row
	// RowIndex is the position of Row in the ordered output
	RowIndex int
	// Value is the raw value of Row for Column.Key
	Value any
}

// CellFormatter is an interface for formatting cell values as strings.
type CellFormatter interface {
	// FormatCell formats a cell as string
	// or returns a wrapped errors.ErrUnsupported error if
	// it doesn't support formatting the value of the cell.
	// The raw result indicates if the returned string
	// is in the raw format of the output and can be
	// used as is or if it has to be escaped in some way.
	FormatCell(ctx context.Context, cell *Cell) (str string, raw bool, err error)
}

// CellFormatterFunc implements CellFormatter for a function.
type CellFormatterFunc func(ctx context.Context, cell *Cell) (str string, raw bool, err error)

func (f CellFormatterFunc) FormatCell(ctx context.Context, cell *Cell) (str string, raw bool, err error) {
	return f(ctx, cell)
}

// ValueFormatterFunc implements CellFormatter for a function
// that only needs the raw cell value and returns a non-raw string.
type ValueFormatterFunc func(value any) string

func (f ValueFormatterFunc) FormatCell(ctx context.Context, cell *Cell) (str string, raw bool, err error) {
	return f(cell.Value), false, nil
}

// PrintfCellFormatter implements CellFormatter by calling
// fmt.Sprintf with this type's string value as format.
type PrintfCellFormatter string

func (format PrintfCellFormatter) FormatCell(ctx context.Context, cell *Cell) (str string, raw bool, err error) {
	return fmt.Sprintf(string(format), deref(cell.Value)), false, nil
}

// PrintfRawCellFormatter implements CellFormatter by calling
// fmt.Sprintf with this type's string value as format.
// The result will be indicated to be a raw value.
type PrintfRawCellFormatter string

func (format PrintfRawCellFormatter) FormatCell(ctx context.Context, cell *Cell) (str string, raw bool, err error) {
	return fmt.Sprintf(string(format), deref(cell.Value)), true, nil
}

// RawCellString implements CellFormatter by returning
// the underlying string as raw value.
type RawCellString string

func (rawStr RawCellString) FormatCell(ctx context.Context, cell *Cell) (str string, raw bool, err error) {
	return string(rawStr), true, nil
}

// SprintCellFormatter returns a CellFormatter
// that formats the dereferenced cell value with fmt.Sprint.
func SprintCellFormatter(rawResult bool) CellFormatter {
	return CellFormatterFunc(func(ctx context.Context, cell *Cell) (string, bool, error) {
		return fmt.Sprint(deref(cell.Value)), rawResult, nil
	})
}
