package csvtable

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/domonda/go-types/charset"
	runewidth "github.com/mattn/go-runewidth"

	gridtable "github.com/domonda/go-gridtable"
)

// Encoder encodes the UTF-8 bytes of a written line.
type Encoder interface {
	Bytes([]byte) ([]byte, error)
}

type EncoderFunc func([]byte) ([]byte, error)

func (f EncoderFunc) Bytes(data []byte) ([]byte, error) {
	return f(data)
}

// CharsetEncoder returns an Encoder for a charset encoding name
// like "ISO 8859-1" or "Windows 1252".
func CharsetEncoder(name string) (Encoder, error) {
	enc, err := charset.GetEncoding(name)
	if err != nil {
		return nil, err
	}
	return EncoderFunc(enc.Encode), nil
}

type Padding int

const (
	NoPadding Padding = iota
	AlignLeft
	AlignRight
	AlignCenter
)

// Writer writes the texts of a rendered gridtable.Grid as CSV.
// The header labels are written as first line
// unless disabled with WithHeaderRow(false).
// An empty grid only has the header line, the empty message is not written.
//
// Writer is immutable after creation - all With* methods return
// a new Writer instance with the modified configuration.
type Writer struct {
	padding          Padding
	headerRow        bool
	indicators       bool
	quoteAllFields   bool
	quoteEmptyFields bool
	escapeQuotes     string
	delimiter        rune
	newLine          string
	encoder          Encoder
}

func NewWriter() *Writer {
	return &Writer{
		padding:          NoPadding,
		headerRow:        true,
		indicators:       false,
		quoteAllFields:   false,
		quoteEmptyFields: false,
		escapeQuotes:     `""`,
		delimiter:        ',',
		newLine:          "\r\n",
		encoder:          nil,
	}
}

func (w *Writer) clone() *Writer {
	c := new(Writer)
	*c = *w
	return c
}

// Write renders engine and writes the result as CSV to dest.
// Nothing is written if rendering fails.
func (w *Writer) Write(ctx context.Context, dest io.Writer, engine *gridtable.Engine) error {
	grid, err := engine.Render(ctx)
	if err != nil {
		return err
	}
	return w.WriteGrid(ctx, dest, grid)
}

func (w *Writer) WriteGrid(ctx context.Context, dest io.Writer, grid *gridtable.Grid) error {
	rows := w.GridStrings(grid)
	var colWidths []int
	if w.padding != NoPadding {
		colWidths = gridtable.StringColumnWidths(rows, grid.NumCols())
	}

	rowBuf := bytes.NewBuffer(make([]byte, 0, 1024))
	for row := range rows {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		for col, str := range rows[row] {
			if col > 0 {
				rowBuf.WriteRune(w.delimiter)
			}
			if colWidths == nil {
				rowBuf.WriteString(str)
				continue
			}
			var (
				padTotal = colWidths[col] - runewidth.StringWidth(str)
				padLeft  = 0
				padRight = 0
			)
			switch w.padding {
			case AlignLeft:
				padRight = padTotal
			case AlignRight:
				padLeft = padTotal
			case AlignCenter:
				padLeft = padTotal / 2
				padRight = (padTotal + 1) / 2
			}
			rowBuf.WriteString(strings.Repeat(" ", max(padLeft, 0)))
			rowBuf.WriteString(str)
			rowBuf.WriteString(strings.Repeat(" ", max(padRight, 0)))
		}
		rowBuf.WriteString(w.newLine)

		line := rowBuf.Bytes()
		if w.encoder != nil {
			var err error
			line, err = w.encoder.Bytes(line)
			if err != nil {
				return err
			}
		}
		_, err := dest.Write(line)
		if err != nil {
			return err
		}
		rowBuf.Reset()
	}
	return nil
}

// GridStrings returns the escaped fields of all lines.
func (w *Writer) GridStrings(grid *gridtable.Grid) [][]string {
	rows := make([][]string, 0, grid.NumRows()+1)
	if w.headerRow {
		fields := make([]string, grid.NumCols())
		for i := range grid.Headers {
			label := grid.Headers[i].Column.HeaderLabel()
			if w.indicators {
				label = grid.Headers[i].Label()
			}
			fields[i] = w.escapeString(label, false)
		}
		rows = append(rows, fields)
	}
	for _, cells := range grid.Rows {
		fields := make([]string, grid.NumCols())
		for i := range fields {
			if i < len(cells) {
				fields[i] = w.escapeString(cells[i].Text, cells[i].Raw)
			} else {
				fields[i] = w.escapeString("", false)
			}
		}
		rows = append(rows, fields)
	}
	return rows
}

func (w *Writer) escapeString(str string, isRaw bool) string {
	if isRaw {
		return str
	}
	str = strings.ReplaceAll(str, "\r", "")
	switch {
	case w.quoteAllFields ||
		strings.ContainsRune(str, w.delimiter) ||
		strings.ContainsRune(str, '\n') ||
		strings.ContainsRune(str, '"'):
		return `"` + strings.ReplaceAll(str, `"`, w.escapeQuotes) + `"`
	case w.quoteEmptyFields && str == "":
		return `""`
	}
	return str
}

func (w *Writer) WithHeaderRow(headerRow bool) *Writer {
	mod := w.clone()
	mod.headerRow = headerRow
	return mod
}

// WithIndicators returns a new writer that appends the sort
// direction arrow to the header label of the sort column.
func (w *Writer) WithIndicators(indicators bool) *Writer {
	mod := w.clone()
	mod.indicators = indicators
	return mod
}

func (w *Writer) WithPadding(padding Padding) *Writer {
	mod := w.clone()
	mod.padding = padding
	return mod
}

func (w *Writer) WithQuoteAllFields(quoteAllFields bool) *Writer {
	mod := w.clone()
	mod.quoteAllFields = quoteAllFields
	return mod
}

func (w *Writer) WithQuoteEmptyFields(quoteEmptyFields bool) *Writer {
	mod := w.clone()
	mod.quoteEmptyFields = quoteEmptyFields
	return mod
}

func (w *Writer) WithEscapeQuotes(escapeQuotes string) *Writer {
	mod := w.clone()
	mod.escapeQuotes = escapeQuotes
	return mod
}

func (w *Writer) WithDelimiter(delimiter rune) *Writer {
	mod := w.clone()
	mod.delimiter = delimiter
	return mod
}

func (w *Writer) WithNewLine(newLine string) *Writer {
	mod := w.clone()
	mod.newLine = newLine
	return mod
}

// WithFormat returns a new writer with the separator and newline of format
// that encodes lines for format.Encoding if it is not UTF-8.
func (w *Writer) WithFormat(format *Format) (*Writer, error) {
	err := format.Validate()
	if err != nil {
		return nil, err
	}
	mod := w.clone()
	mod.delimiter = rune(format.Separator[0])
	mod.newLine = format.Newline
	mod.encoder = nil
	if format.Encoding != "UTF-8" {
		mod.encoder, err = CharsetEncoder(format.Encoding)
		if err != nil {
			return nil, err
		}
	}
	return mod, nil
}

func (w *Writer) WithEncoder(encoder Encoder) *Writer {
	mod := w.clone()
	mod.encoder = encoder
	return mod
}

func (w *Writer) Delimiter() rune {
	return w.delimiter
}

func (w *Writer) NewLine() string {
	return w.newLine
}
