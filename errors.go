package gridtable

import "errors"

var (
	// ErrDuplicateColumnKey is returned by NewColumns
	// when two columns share the same key.
	ErrDuplicateColumnKey = errors.New("duplicate column key")

	// ErrEmptyColumnKey is returned by NewColumns
	// for a column without a key.
	ErrEmptyColumnKey = errors.New("empty column key")

	// ErrUnknownColumnType is returned when parsing
	// or validating an undefined ColumnType.
	ErrUnknownColumnType = errors.New("unknown column type")
)
