package gridtable

import (
	"slices"
)

// CompareRows compares the values of the column with key in a and b
// in ascending order using the comparator of the column type.
// An unknown key compares all rows as equal.
func (c *Columns) CompareRows(a, b Row, key string) int {
	return c.compareRows(a, b, key, defaultComparators)
}

func (c *Columns) compareRows(a, b Row, key string, comparators map[ColumnType]Comparator) int {
	col, ok := c.Find(key)
	if !ok {
		return 0
	}
	compare, ok := comparators[col.Type]
	if !ok {
		return 0
	}
	return compare(a[key], b[key])
}

// SortRows returns a new slice with rows ordered by state.
//
// The passed rows are never modified.
// For the unsorted state a copy in input order is returned.
// Sorting is stable, so rows with equal values keep their relative order,
// and descending order is the exact negation of ascending order.
func SortRows(rows []Row, columns *Columns, state SortState) []Row {
	return sortRows(rows, columns, state, defaultComparators)
}

func sortRows(rows []Row, columns *Columns, state SortState, comparators map[ColumnType]Comparator) []Row {
	sorted := slices.Clone(rows)
	if state.IsNone() {
		return sorted
	}
	if _, ok := columns.Find(state.Key); !ok {
		return sorted
	}
	sign := 1
	if state.Direction == SortDescending {
		sign = -1
	}
	slices.SortStableFunc(sorted, func(a, b Row) int {
		return sign * columns.compareRows(a, b, state.Key, comparators)
	})
	return sorted
}
