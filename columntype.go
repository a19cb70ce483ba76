package gridtable

import (
	"fmt"
	"strings"
)

// ColumnType determines the default formatting
// and the sort comparison semantics of a column.
type ColumnType int

const (
	String ColumnType = iota
	Number
	Date
	Status
)

var columnTypeNames = [...]string{
	String: "string",
	Number: "number",
	Date:   "date",
	Status: "status",
}

// ParseColumnType parses a case-insensitive column type name.
func ParseColumnType(name string) (ColumnType, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	for t, n := range columnTypeNames {
		if n == lower {
			return ColumnType(t), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownColumnType, name)
}

// Valid returns if t is one of the defined column types.
func (t ColumnType) Valid() bool {
	return t >= String && t <= Status
}

// String implements the fmt.Stringer interface.
func (t ColumnType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("ColumnType(%d)", int(t))
	}
	return columnTypeNames[t]
}

// MarshalText implements the encoding.TextMarshaler interface.
func (t ColumnType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownColumnType, int(t))
	}
	return []byte(columnTypeNames[t]), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (t *ColumnType) UnmarshalText(text []byte) error {
	parsed, err := ParseColumnType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
