// Package htmltable writes rendered grids as HTML tables.
//
// Cell texts are HTML-escaped unless the formatter
// that produced them returned a raw result.
//
// Example usage:
//
//	engine := gridtable.NewEngine(columns, rows).
//	    WithStatusRenderer(htmltable.BadgeStatusRenderer{})
//	engine.Activate("amount_cents")
//
//	writer := htmltable.NewWriter().
//	    WithTableClass("table").
//	    WithSortLinks(htmltable.SortQueryLink("sort"))
//
//	err := writer.Write(ctx, os.Stdout, engine)
package htmltable

import (
	"context"
	"html/template"
	"io"
	"net/url"

	gridtable "github.com/domonda/go-gridtable"
)

// Writer writes gridtable.Grid data as HTML table elements.
//
// Writer is immutable after creation - all With* methods return
// a new Writer instance with the modified configuration.
type Writer struct {
	tableClass     string
	caption        string
	indicators     bool
	sortLink       func(key string) string
	headerTemplate *template.Template
	rowTemplate    *template.Template
	emptyTemplate  *template.Template
	footerTemplate *template.Template
}

// NewWriter creates a new HTML table writer
// with the default templates and sort indicators.
func NewWriter() *Writer {
	return &Writer{
		indicators:     true,
		headerTemplate: HeaderTemplate,
		rowTemplate:    RowTemplate,
		emptyTemplate:  EmptyTemplate,
		footerTemplate: FooterTemplate,
	}
}

// Write renders engine and writes the result as HTML to dest.
// Nothing is written if rendering fails.
func (w *Writer) Write(ctx context.Context, dest io.Writer, engine *gridtable.Engine) error {
	grid, err := engine.Render(ctx)
	if err != nil {
		return err
	}
	return w.WriteGrid(ctx, dest, grid)
}

// WriteGrid writes grid as HTML to dest.
//
// An empty grid is written as a single body row
// with one cell spanning all columns.
func (w *Writer) WriteGrid(ctx context.Context, dest io.Writer, grid *gridtable.Grid) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	base := TemplateContext{
		TableClass: w.tableClass,
		Caption:    w.caption,
	}

	header := HeaderTemplateContext{
		TemplateContext: base,
		Headers:         make([]HeaderCell, len(grid.Headers)),
	}
	for i := range grid.Headers {
		h := &grid.Headers[i]
		cell := HeaderCell{
			Key:      h.Column.Key,
			Label:    h.Column.HeaderLabel(),
			Sortable: h.Column.Sortable,
		}
		if w.indicators {
			cell.Label = h.Label()
		}
		if cell.Sortable {
			cell.Sort = h.Direction.String()
			if w.sortLink != nil {
				cell.Href = w.sortLink(h.Column.Key)
			}
		}
		header.Headers[i] = cell
	}
	err := w.headerTemplate.Execute(dest, &header)
	if err != nil {
		return err
	}

	if grid.Empty {
		err = w.emptyTemplate.Execute(dest, &EmptyTemplateContext{
			TemplateContext: base,
			NumCols:         max(grid.NumCols(), 1),
			Message:         grid.EmptyMessage,
			Hint:            grid.EmptyHint,
		})
		if err != nil {
			return err
		}
		return w.footerTemplate.Execute(dest, &base)
	}

	row := &RowTemplateContext{
		TemplateContext: base,
		RawCells:        make([]template.HTML, grid.NumCols()),
	}
	for r, cells := range grid.Rows {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		row.RowIndex = r
		for c := range row.RawCells {
			var cell gridtable.RenderedCell
			if c < len(cells) {
				cell = cells[c]
			}
			if cell.Raw {
				row.RawCells[c] = template.HTML(cell.Text) //#nosec G203
			} else {
				row.RawCells[c] = template.HTML(template.HTMLEscapeString(cell.Text)) //#nosec G203
			}
		}
		err = w.rowTemplate.Execute(dest, row)
		if err != nil {
			return err
		}
	}

	return w.footerTemplate.Execute(dest, &base)
}

func (w *Writer) clone() *Writer {
	c := new(Writer)
	*c = *w
	return c
}

// WithTableClass returns a new writer with the specified CSS class for the table element.
// The class will be rendered as: <table class='tableClass'>
func (w *Writer) WithTableClass(tableClass string) *Writer {
	mod := w.clone()
	mod.tableClass = tableClass
	return mod
}

// WithCaption returns a new writer that writes a caption element.
func (w *Writer) WithCaption(caption string) *Writer {
	mod := w.clone()
	mod.caption = caption
	return mod
}

// WithIndicators returns a new writer that appends
// the sort direction arrow to the label of the sort column.
// Enabled by default.
func (w *Writer) WithIndicators(indicators bool) *Writer {
	mod := w.clone()
	mod.indicators = indicators
	return mod
}

// WithSortLinks returns a new writer that wraps the labels
// of sortable headers in anchors with the URL returned by link
// for the column key.
// Passing nil disables sort links.
func (w *Writer) WithSortLinks(link func(key string) string) *Writer {
	mod := w.clone()
	mod.sortLink = link
	return mod
}

// WithTemplate returns a new writer with custom templates for rendering the HTML table.
//
// The templates receive HeaderTemplateContext, RowTemplateContext,
// EmptyTemplateContext and TemplateContext respectively.
// See templates.go for the default templates.
func (w *Writer) WithTemplate(headerTemplate, rowTemplate, emptyTemplate, footerTemplate *template.Template) *Writer {
	mod := w.clone()
	mod.headerTemplate = headerTemplate
	mod.rowTemplate = rowTemplate
	mod.emptyTemplate = emptyTemplate
	mod.footerTemplate = footerTemplate
	return mod
}

// TableClass returns the CSS class configured for the table element.
func (w *Writer) TableClass() string {
	return w.tableClass
}

// SortQueryLink returns a sort link function for Writer.WithSortLinks
// that sets the URL query parameter param to the column key.
func SortQueryLink(param string) func(key string) string {
	return func(key string) string {
		return "?" + url.Values{param: {key}}.Encode()
	}
}
