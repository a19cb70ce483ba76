package gridtable

import "fmt"

// Column describes how one field of a Row is displayed.
//
// Column is a value type and must not be changed
// after it has been added to a Columns registry.
type Column struct {
	// Key is used to look up the cell value in a Row.
	Key string
	// Label is the header text of the column.
	Label string
	// Type selects the default formatter and the sort comparator.
	Type ColumnType
	// Sortable columns react to header activation.
	Sortable bool
	// Width is an optional display hint that is
	// only interpreted by writers, never by sorting or rendering.
	Width string
	// Formatter overrides the default formatting of Type
	// for every present cell value of the column.
	Formatter CellFormatter
}

// HeaderLabel returns Label or Key if Label is empty.
func (c *Column) HeaderLabel() string {
	if c.Label == "" {
		return c.Key
	}
	return c.Label
}

// Columns is an ordered registry of Column descriptors
// with unique keys. It is fixed after construction.
type Columns struct {
	cols  []Column
	index map[string]int
}

// NewColumns returns a registry for the passed columns
// or an error if a key is empty or used more than once
// or if a column has an undefined type.
func NewColumns(cols ...Column) (*Columns, error) {
	c := &Columns{
		cols:  make([]Column, len(cols)),
		index: make(map[string]int, len(cols)),
	}
	for i, col := range cols {
		if col.Key == "" {
			return nil, fmt.Errorf("column %d: %w", i, ErrEmptyColumnKey)
		}
		if !col.Type.Valid() {
			return nil, fmt.Errorf("column %q: %w: %d", col.Key, ErrUnknownColumnType, int(col.Type))
		}
		if prev, ok := c.index[col.Key]; ok {
			return nil, fmt.Errorf("column %d and %d: %w: %q", prev, i, ErrDuplicateColumnKey, col.Key)
		}
		c.index[col.Key] = i
		c.cols[i] = col
	}
	return c, nil
}

// MustColumns is like NewColumns but panics on an error.
func MustColumns(cols ...Column) *Columns {
	c, err := NewColumns(cols...)
	if err != nil {
		panic(err)
	}
	return c
}

// Find returns the column with the passed key.
func (c *Columns) Find(key string) (Column, bool) {
	if c == nil {
		return Column{}, false
	}
	i, ok := c.index[key]
	if !ok {
		return Column{}, false
	}
	return c.cols[i], true
}

func (c *Columns) Len() int {
	if c == nil {
		return 0
	}
	return len(c.cols)
}

// At returns the column at index i.
func (c *Columns) At(i int) Column {
	return c.cols[i]
}

// All returns a copy of all columns in order.
func (c *Columns) All() []Column {
	if c == nil {
		return nil
	}
	return append([]Column(nil), c.cols...)
}

func (c *Columns) Keys() []string {
	keys := make([]string, c.Len())
	for i := range keys {
		keys[i] = c.cols[i].Key
	}
	return keys
}

func (c *Columns) Labels() []string {
	labels := make([]string, c.Len())
	for i := range labels {
		labels[i] = c.cols[i].HeaderLabel()
	}
	return labels
}
