package gridtable

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/go-logr/logr"
	"golang.org/x/text/language"
)

const (
	DefaultEmptyMessage = "No data available"
	DefaultEmptyHint    = "Try adjusting filters or check back later."
	DefaultPlaceholder  = "-"
)

// Engine derives ordered rows and rendered cells from a Columns registry,
// a slice of rows, and its SortState.
//
// The configuration is set with the With* methods before use,
// they return modified copies. After that the SortState
// is only changed by Activate.
//
// An Engine is not safe for concurrent use,
// every displayed table needs its own instance.
type Engine struct {
	columns      *Columns
	rows         []Row
	state        SortState
	emptyMessage string
	emptyHint    string
	placeholder  string
	formatters   *TypeCellFormatters
	status       StatusRenderer
	lang         language.Tag
	loc          *time.Location
	log          logr.Logger
}

// NewEngine returns an unsorted Engine for rows displayed with columns.
// The rows slice is copied, the Row maps are shared and never modified.
func NewEngine(columns *Columns, rows []Row) *Engine {
	return &Engine{
		columns:      columns,
		rows:         slices.Clone(rows),
		emptyMessage: DefaultEmptyMessage,
		emptyHint:    DefaultEmptyHint,
		placeholder:  DefaultPlaceholder,
		status:       PlainStatusRenderer{},
		lang:         language.English,
		loc:          time.UTC,
		log:          logr.Discard(),
	}
}

func (e *Engine) clone() *Engine {
	c := new(Engine)
	*c = *e
	return c
}

// WithEmptyMessage returns a copy that displays message
// instead of the rows if there are none.
func (e *Engine) WithEmptyMessage(message string) *Engine {
	mod := e.clone()
	mod.emptyMessage = message
	return mod
}

// WithEmptyHint returns a copy with a secondary line
// displayed below the empty message.
// An empty hint is not displayed.
func (e *Engine) WithEmptyHint(hint string) *Engine {
	mod := e.clone()
	mod.emptyHint = hint
	return mod
}

// WithPlaceholder returns a copy that renders absent values as placeholder.
func (e *Engine) WithPlaceholder(placeholder string) *Engine {
	mod := e.clone()
	mod.placeholder = placeholder
	return mod
}

// WithTypeFormatters returns a copy that uses formatters
// instead of DefaultTypeFormatters.
// Passing nil restores the default formatters.
func (e *Engine) WithTypeFormatters(formatters *TypeCellFormatters) *Engine {
	mod := e.clone()
	mod.formatters = formatters
	return mod
}

// WithStatusRenderer returns a copy that renders
// Status columns with renderer.
// Only used by the default type formatters.
func (e *Engine) WithStatusRenderer(renderer StatusRenderer) *Engine {
	mod := e.clone()
	if renderer == nil {
		renderer = PlainStatusRenderer{}
	}
	mod.status = renderer
	return mod
}

// WithLanguage returns a copy that groups numbers for lang.
func (e *Engine) WithLanguage(lang language.Tag) *Engine {
	mod := e.clone()
	mod.lang = lang
	return mod
}

// WithLocation returns a copy that formats dates in loc
// and parses zone-less date strings in loc.
func (e *Engine) WithLocation(loc *time.Location) *Engine {
	mod := e.clone()
	if loc == nil {
		loc = time.UTC
	}
	mod.loc = loc
	return mod
}

func (e *Engine) WithLogger(log logr.Logger) *Engine {
	mod := e.clone()
	mod.log = log
	return mod
}

func (e *Engine) Columns() *Columns { return e.columns }

func (e *Engine) SortState() SortState { return e.state }

func (e *Engine) NumRows() int { return len(e.rows) }

// EmptyMessage returns the message displayed for zero rows.
func (e *Engine) EmptyMessage() string { return e.emptyMessage }

// Activate handles the activation of the header of the column with key
// and returns the resulting SortState.
// Activations of unknown or non-sortable columns are ignored.
func (e *Engine) Activate(key string) SortState {
	col, ok := e.columns.Find(key)
	if !ok {
		e.log.V(1).Info("ignoring activation of unknown column", "column", key)
		return e.state
	}
	if !col.Sortable {
		e.log.V(1).Info("ignoring activation of non-sortable column", "column", key)
		return e.state
	}
	prev := e.state
	e.state = NextSortState(prev, col)
	e.log.V(1).Info("sort state changed", "column", key, "from", prev.String(), "to", e.state.String())
	return e.state
}

// Rows returns a new slice of the rows ordered by the current SortState.
func (e *Engine) Rows() []Row {
	if e.state.IsNone() {
		return slices.Clone(e.rows)
	}
	return sortRows(e.rows, e.columns, e.state, comparatorsFor(e.loc))
}

func (e *Engine) typeFormatters() *TypeCellFormatters {
	if e.formatters != nil {
		return e.formatters
	}
	return DefaultTypeFormatters(e.lang, e.loc, e.status)
}

// RenderCell renders the value of row for column.
// The index is the position of row in the output order.
//
// Absent values are rendered as placeholder regardless of any formatter,
// then the column's Formatter is used, then the formatter for the column type.
// Values not supported by those formatters are rendered with fmt.Sprint.
// Errors other than errors.ErrUnsupported from formatters are returned.
func (e *Engine) RenderCell(ctx context.Context, index int, row Row, column Column) (RenderedCell, error) {
	return e.renderCell(ctx, index, row, column, e.typeFormatters())
}

func (e *Engine) renderCell(ctx context.Context, index int, row Row, column Column, formatters *TypeCellFormatters) (RenderedCell, error) {
	value, _ := row.Value(column.Key)
	if IsAbsent(value) {
		return RenderedCell{Text: e.placeholder}, nil
	}
	cell := &Cell{
		Column:   column,
		Row:      row,
		RowIndex: index,
		Value:    value,
	}
	if column.Formatter != nil {
		str, raw, err := column.Formatter.FormatCell(ctx, cell)
		if err == nil {
			return RenderedCell{Text: str, Raw: raw}, nil
		}
		if !errors.Is(err, errors.ErrUnsupported) {
			return RenderedCell{}, fmt.Errorf("column %q row %d: %w", column.Key, index, err)
		}
		// Continue after errors.ErrUnsupported
	}
	str, raw, err := formatters.FormatCell(ctx, cell)
	if err == nil {
		return RenderedCell{Text: str, Raw: raw}, nil
	}
	if !errors.Is(err, errors.ErrUnsupported) {
		return RenderedCell{}, fmt.Errorf("column %q row %d: %w", column.Key, index, err)
	}
	text, _ := AsString(value)
	return RenderedCell{Text: text}, nil
}

// Render renders all ordered rows and the headers.
// Either the complete Grid or an error is returned.
func (e *Engine) Render(ctx context.Context) (*Grid, error) {
	grid := &Grid{
		Headers: make([]Header, e.columns.Len()),
	}
	for i := range grid.Headers {
		col := e.columns.At(i)
		grid.Headers[i] = Header{Column: col, Direction: e.state.DirectionOf(col.Key)}
	}
	if len(e.rows) == 0 {
		grid.Empty = true
		grid.EmptyMessage = e.emptyMessage
		grid.EmptyHint = e.emptyHint
		return grid, nil
	}

	formatters := e.typeFormatters()
	rows := e.Rows()
	grid.Rows = make([][]RenderedCell, len(rows))
	for r, row := range rows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		cells := make([]RenderedCell, len(grid.Headers))
		for c := range cells {
			cell, err := e.renderCell(ctx, r, row, grid.Headers[c].Column, formatters)
			if err != nil {
				return nil, err
			}
			cells[c] = cell
		}
		grid.Rows[r] = cells
	}
	e.log.V(1).Info("rendered grid", "rows", len(rows), "columns", len(grid.Headers), "sort", e.state.String())
	return grid, nil
}
