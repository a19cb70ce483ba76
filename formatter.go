package gridtable

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"reflect"
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultDateLayout formats dates like "Dec 3, 2024, 04:37 PM".
const DefaultDateLayout = "Jan 2, 2006, 03:04 PM"

var (
	_ CellFormatter = NumberCellFormatter{}
	_ CellFormatter = DateCellFormatter{}
	_ CellFormatter = StatusCellFormatter{}
)

// NumberCellFormatter formats numeric cell values
// with the digit grouping of a language,
// floats are rounded to at most MaxFractionDigits.
//
// Values of non-numeric types, including numeric strings,
// are not supported, with the exception of json.Number.
type NumberCellFormatter struct {
	Printer           *message.Printer
	MaxFractionDigits int
}

// NewNumberCellFormatter returns a NumberCellFormatter for lang
// with three maximum fraction digits.
func NewNumberCellFormatter(lang language.Tag) NumberCellFormatter {
	return NumberCellFormatter{
		Printer:           message.NewPrinter(lang),
		MaxFractionDigits: 3,
	}
}

func (f NumberCellFormatter) FormatCell(ctx context.Context, cell *Cell) (str string, raw bool, err error) {
	p := f.Printer
	if p == nil {
		p = message.NewPrinter(language.English)
	}
	value := deref(cell.Value)
	if n, ok := value.(json.Number); ok {
		if i, err := strconv.ParseInt(string(n), 10, 64); err == nil {
			return p.Sprintf("%d", i), false, nil
		}
		fl, err := n.Float64()
		if err != nil {
			return "", false, errors.ErrUnsupported
		}
		value = fl
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return p.Sprintf("%d", v.Int()), false, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return p.Sprintf("%d", v.Uint()), false, nil
	case reflect.Float32, reflect.Float64:
		fl := v.Float()
		if math.IsNaN(fl) {
			return "", false, errors.ErrUnsupported
		}
		return p.Sprint(number.Decimal(fl, number.MaxFractionDigits(f.MaxFractionDigits))), false, nil
	}
	return "", false, errors.ErrUnsupported
}

// DateCellFormatter formats date cell values with Layout in Location.
// See AsTime for the supported values.
type DateCellFormatter struct {
	Layout   string
	Location *time.Location
}

func (f DateCellFormatter) FormatCell(ctx context.Context, cell *Cell) (str string, raw bool, err error) {
	loc := f.Location
	if loc == nil {
		loc = time.UTC
	}
	t, ok := AsTime(cell.Value, loc)
	if !ok {
		return "", false, errors.ErrUnsupported
	}
	layout := f.Layout
	if layout == "" {
		layout = DefaultDateLayout
	}
	return t.In(loc).Format(layout), false, nil
}

// StatusCellFormatter passes the string value of a cell to Renderer.
// A nil Renderer renders like PlainStatusRenderer.
type StatusCellFormatter struct {
	Renderer StatusRenderer
}

func (f StatusCellFormatter) FormatCell(ctx context.Context, cell *Cell) (str string, raw bool, err error) {
	status, ok := AsString(cell.Value)
	if !ok {
		return "", false, errors.ErrUnsupported
	}
	renderer := f.Renderer
	if renderer == nil {
		renderer = PlainStatusRenderer{}
	}
	return renderer.RenderStatus(ctx, status)
}
