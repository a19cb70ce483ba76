package csvtable

import "fmt"

// SeparatorMismatchError is returned when a "sep=X" line
// declares a different separator than the Format.
type SeparatorMismatchError struct {
	Declared string
	Format   string
}

func (e *SeparatorMismatchError) Error() string {
	return fmt.Sprintf("separator %q in header line is different from format separator %q", e.Declared, e.Format)
}

// RaggedRowError is returned for a record with
// a different number of fields than the header.
type RaggedRowError struct {
	Line      int
	NumFields int
	NumKeys   int
}

func (e *RaggedRowError) Error() string {
	return fmt.Sprintf("line %d has %d fields, header has %d", e.Line, e.NumFields, e.NumKeys)
}
