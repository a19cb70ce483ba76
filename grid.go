package gridtable

import (
	runewidth "github.com/mattn/go-runewidth"
)

// RenderedCell is the output of rendering one cell.
type RenderedCell struct {
	Text string
	// Raw text is already in the output markup
	// and must not be escaped by writers.
	Raw bool
}

// Header of a displayed column.
type Header struct {
	Column Column
	// Direction is SortNone unless the column is the active sort column.
	Direction SortDirection
}

// Label returns the header label with the sort indicator
// appended if the column is the active sort column.
func (h *Header) Label() string {
	label := h.Column.HeaderLabel()
	if ind := h.Direction.Indicator(); ind != "" {
		return label + " " + ind
	}
	return label
}

// Grid is the result of a render pass that is handed to writers.
type Grid struct {
	Headers []Header
	Rows    [][]RenderedCell

	// Empty is true if there were no rows to render.
	// Writers then display EmptyMessage and EmptyHint
	// in a single row spanning all columns.
	Empty        bool
	EmptyMessage string
	EmptyHint    string
}

func (g *Grid) NumCols() int { return len(g.Headers) }

func (g *Grid) NumRows() int { return len(g.Rows) }

// Strings returns the text of the grid cells,
// optionally with the header labels as first row.
func (g *Grid) Strings(headerRow bool) [][]string {
	rows := make([][]string, 0, len(g.Rows)+1)
	if headerRow {
		labels := make([]string, len(g.Headers))
		for i := range g.Headers {
			labels[i] = g.Headers[i].Label()
		}
		rows = append(rows, labels)
	}
	for _, cells := range g.Rows {
		strs := make([]string, len(cells))
		for i, cell := range cells {
			strs[i] = cell.Text
		}
		rows = append(rows, strs)
	}
	return rows
}

// StringColumnWidths returns the column widths of the passed
// table as terminal display cells.
// If numCols is negative then the maximum row length is used.
func StringColumnWidths(rows [][]string, numCols int) []int {
	if numCols < 0 {
		for _, row := range rows {
			if rowCols := len(row); rowCols > numCols {
				numCols = rowCols
			}
		}
		if numCols <= 0 {
			return nil
		}
	}
	colWidths := make([]int, numCols)
	for row := range rows {
		for col := 0; col < numCols && col < len(rows[row]); col++ {
			w := runewidth.StringWidth(rows[row][col])
			if w > colWidths[col] {
				colWidths[col] = w
			}
		}
	}
	return colWidths
}
