package gridtable

import "fmt"

// SortDirection of the active sort column.
// The zero value SortNone means that rows keep their input order.
type SortDirection int

const (
	SortNone SortDirection = iota
	SortAscending
	SortDescending
)

func (d SortDirection) String() string {
	switch d {
	case SortNone:
		return "none"
	case SortAscending:
		return "ascending"
	case SortDescending:
		return "descending"
	}
	return fmt.Sprintf("SortDirection(%d)", int(d))
}

// Indicator returns the arrow displayed next to a header label.
func (d SortDirection) Indicator() string {
	switch d {
	case SortAscending:
		return "▲"
	case SortDescending:
		return "▼"
	}
	return ""
}

// SortState is the active sort column and direction.
// The zero value is the unsorted state.
type SortState struct {
	Key       string
	Direction SortDirection
}

func (s SortState) IsNone() bool {
	return s.Direction == SortNone
}

// DirectionOf returns the direction of the column with key
// or SortNone if that column is not the active sort column.
func (s SortState) DirectionOf(key string) SortDirection {
	if s.IsNone() || s.Key != key {
		return SortNone
	}
	return s.Direction
}

func (s SortState) String() string {
	if s.IsNone() {
		return "none"
	}
	return s.Key + " " + s.Direction.String()
}

// NextSortState returns the state after the header
// of column has been activated in state current.
//
// Activating the same sortable column cycles through
// ascending, descending and none.
// Activating a different sortable column starts with ascending.
// Non-sortable columns leave the state unchanged.
func NextSortState(current SortState, column Column) SortState {
	if !column.Sortable {
		return current
	}
	if current.IsNone() || current.Key != column.Key {
		return SortState{Key: column.Key, Direction: SortAscending}
	}
	if current.Direction == SortAscending {
		return SortState{Key: column.Key, Direction: SortDescending}
	}
	return SortState{}
}
