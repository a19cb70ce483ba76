// Package termtable writes rendered grids as aligned text tables
// for terminals.
//
// Display widths are measured in terminal cells,
// so wide runes and ANSI styled cells line up.
package termtable

import (
	"context"
	"io"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	runewidth "github.com/mattn/go-runewidth"

	gridtable "github.com/domonda/go-gridtable"
)

// Ellipsis is appended to cell texts truncated by WithMaxWidth.
const Ellipsis = "…"

var controlReplacer = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ")

// Writer writes gridtable.Grid data as text table
// with one line per row below a header line and a rule line.
// Number columns are right aligned.
//
// Writer is immutable after creation - all With* methods return
// a new Writer instance with the modified configuration.
type Writer struct {
	noColor     bool
	separator   string
	maxWidth    int
	focus       int
	headerStyle lipgloss.Style
	focusStyle  lipgloss.Style
	dimStyle    lipgloss.Style
}

func NewWriter() *Writer {
	return &Writer{
		separator:   "  ",
		focus:       -1,
		headerStyle: lipgloss.NewStyle().Bold(true),
		focusStyle:  lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("12")),
		dimStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

func (w *Writer) clone() *Writer {
	c := new(Writer)
	*c = *w
	return c
}

// WithNoColor returns a new writer that writes no ANSI styles.
// A focused header is then marked with brackets.
func (w *Writer) WithNoColor(noColor bool) *Writer {
	mod := w.clone()
	mod.noColor = noColor
	return mod
}

func (w *Writer) NoColor() bool { return w.noColor }

// WithSeparator returns a new writer that separates columns with sep.
func (w *Writer) WithSeparator(sep string) *Writer {
	mod := w.clone()
	mod.separator = sep
	return mod
}

// WithMaxWidth returns a new writer that truncates non-raw cell texts
// longer than maxWidth terminal cells.
// Zero or a negative maxWidth disables truncation.
func (w *Writer) WithMaxWidth(maxWidth int) *Writer {
	mod := w.clone()
	mod.maxWidth = maxWidth
	return mod
}

// WithFocus returns a new writer that highlights the header
// of the column with index col. A negative col disables the focus.
func (w *Writer) WithFocus(col int) *Writer {
	mod := w.clone()
	mod.focus = col
	return mod
}

// WithHeaderStyle returns a new writer that renders header labels with style.
func (w *Writer) WithHeaderStyle(style lipgloss.Style) *Writer {
	mod := w.clone()
	mod.headerStyle = style
	return mod
}

// Write renders engine and writes the result as text to dest.
// Nothing is written if rendering fails.
func (w *Writer) Write(ctx context.Context, dest io.Writer, engine *gridtable.Engine) error {
	grid, err := engine.Render(ctx)
	if err != nil {
		return err
	}
	return w.WriteGrid(ctx, dest, grid)
}

func (w *Writer) WriteGrid(ctx context.Context, dest io.Writer, grid *gridtable.Grid) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	_, err := io.WriteString(dest, w.Render(grid))
	return err
}

// Render returns grid as text with a trailing newline.
//
// An empty grid has a message line
// centered below the rule line spanning all columns,
// followed by a line with the hint if it is not empty.
func (w *Writer) Render(grid *gridtable.Grid) string {
	numCols := grid.NumCols()
	labels := make([]string, numCols)
	widths := make([]int, numCols)
	for i := range grid.Headers {
		labels[i] = grid.Headers[i].Label()
		if w.noColor && i == w.focus {
			labels[i] = "[" + labels[i] + "]"
		}
		widths[i] = max(runewidth.StringWidth(labels[i]), MinWidth(grid.Headers[i].Column.Width))
	}

	cells := make([][]string, len(grid.Rows))
	for r, row := range grid.Rows {
		cells[r] = make([]string, numCols)
		for c := 0; c < numCols && c < len(row); c++ {
			text := row[c].Text
			if !row[c].Raw {
				text = w.plainText(text)
			}
			cells[r][c] = text
			widths[c] = max(widths[c], lipgloss.Width(text))
		}
	}

	var b strings.Builder
	line := make([]string, numCols)
	for i := range labels {
		style := w.headerStyle
		if i == w.focus {
			style = w.focusStyle
		}
		line[i] = pad(w.style(style, labels[i]), runewidth.StringWidth(labels[i]), widths[i], false)
	}
	w.writeLine(&b, line)

	for i := range widths {
		line[i] = w.style(w.dimStyle, strings.Repeat("─", widths[i]))
	}
	w.writeLine(&b, line)

	if grid.Empty {
		total := runewidth.StringWidth(w.separator) * max(numCols-1, 0)
		for _, width := range widths {
			total += width
		}
		b.WriteString(strings.TrimRight(center(grid.EmptyMessage, total), " "))
		b.WriteByte('\n')
		if grid.EmptyHint != "" {
			hint := center(grid.EmptyHint, total)
			b.WriteString(w.style(w.dimStyle, strings.TrimRight(hint, " ")))
			b.WriteByte('\n')
		}
		return b.String()
	}

	for r := range cells {
		for c, text := range cells[r] {
			right := grid.Headers[c].Column.Type == gridtable.Number
			line[c] = pad(text, lipgloss.Width(text), widths[c], right)
		}
		w.writeLine(&b, line)
	}
	return b.String()
}

func (w *Writer) writeLine(b *strings.Builder, cells []string) {
	b.WriteString(strings.TrimRight(strings.Join(cells, w.separator), " "))
	b.WriteByte('\n')
}

func (w *Writer) style(style lipgloss.Style, text string) string {
	if w.noColor || text == "" {
		return text
	}
	return style.Render(text)
}

func (w *Writer) plainText(text string) string {
	text = controlReplacer.Replace(text)
	if w.maxWidth > 0 && runewidth.StringWidth(text) > w.maxWidth {
		text = runewidth.Truncate(text, w.maxWidth, Ellipsis)
	}
	return text
}

func pad(text string, textWidth, width int, right bool) string {
	if textWidth >= width {
		return text
	}
	spaces := strings.Repeat(" ", width-textWidth)
	if right {
		return spaces + text
	}
	return text + spaces
}

func center(text string, width int) string {
	textWidth := runewidth.StringWidth(text)
	if textWidth >= width {
		return text
	}
	left := (width - textWidth) / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", width-textWidth-left)
}

// MinWidth parses a column width hint of the form "12" or "12ch"
// and returns the number of terminal cells.
// Other hints like "20%" or "120px" return zero.
func MinWidth(hint string) int {
	hint = strings.TrimSuffix(strings.TrimSpace(hint), "ch")
	n, err := strconv.Atoi(hint)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
