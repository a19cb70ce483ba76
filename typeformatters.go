package gridtable

import (
	"context"
	"errors"
	"time"

	"golang.org/x/text/language"
)

// Ensure that TypeCellFormatters implements CellFormatter
var _ CellFormatter = new(TypeCellFormatters)

// TypeCellFormatters routes a cell to the CellFormatter
// registered for the ColumnType of the cell's column.
//
// If the formatter of the type returns errors.ErrUnsupported
// or no formatter is registered for the type,
// then the Default formatter is used if not nil.
// Without Default errors.ErrUnsupported is returned,
// so TypeCellFormatters can be used in formatter chains.
//
// The With* methods return modified copies,
// the original is never changed.
type TypeCellFormatters struct {
	Types   map[ColumnType]CellFormatter
	Default CellFormatter
}

// NewTypeCellFormatters creates a new empty TypeCellFormatters.
func NewTypeCellFormatters() *TypeCellFormatters {
	return new(TypeCellFormatters)
}

// DefaultTypeFormatters returns the formatters for the defined
// column types:
//   - Status uses status
//   - Date uses DateCellFormatter with DefaultDateLayout in loc
//   - Number uses NumberCellFormatter for lang
//   - String has no formatter so the raw value is used
func DefaultTypeFormatters(lang language.Tag, loc *time.Location, status StatusRenderer) *TypeCellFormatters {
	return NewTypeCellFormatters().
		WithTypeFormatter(Status, StatusCellFormatter{Renderer: status}).
		WithTypeFormatter(Date, DateCellFormatter{Layout: DefaultDateLayout, Location: loc}).
		WithTypeFormatter(Number, NewNumberCellFormatter(lang))
}

func (f *TypeCellFormatters) FormatCell(ctx context.Context, cell *Cell) (str string, raw bool, err error) {
	if f == nil {
		return "", false, errors.ErrUnsupported
	}
	if err = ctx.Err(); err != nil {
		return "", false, err
	}
	if typeFmt, ok := f.Types[cell.Column.Type]; ok {
		str, raw, err := typeFmt.FormatCell(ctx, cell)
		if !errors.Is(err, errors.ErrUnsupported) {
			return str, raw, err
		}
		// Continue after errors.ErrUnsupported
	}
	if f.Default != nil {
		return f.Default.FormatCell(ctx, cell)
	}
	return "", false, errors.ErrUnsupported
}

// Formatter returns the formatter registered for typ or nil.
func (f *TypeCellFormatters) Formatter(typ ColumnType) CellFormatter {
	if f == nil {
		return nil
	}
	return f.Types[typ]
}

// WithTypeFormatter returns a copy with fmt registered for typ.
// A nil fmt removes the formatter of typ.
func (f *TypeCellFormatters) WithTypeFormatter(typ ColumnType, fmt CellFormatter) *TypeCellFormatters {
	mod := f.cloneOrNew()
	if fmt == nil {
		delete(mod.Types, typ)
		return mod
	}
	if mod.Types == nil {
		mod.Types = make(map[ColumnType]CellFormatter)
	}
	mod.Types[typ] = fmt
	return mod
}

// WithDefaultFormatter returns a copy with fmt as Default.
func (f *TypeCellFormatters) WithDefaultFormatter(fmt CellFormatter) *TypeCellFormatters {
	mod := f.cloneOrNew()
	mod.Default = fmt
	return mod
}

func (f *TypeCellFormatters) cloneOrNew() *TypeCellFormatters {
	if f == nil {
		return new(TypeCellFormatters)
	}
	c := &TypeCellFormatters{Default: f.Default}
	if len(f.Types) > 0 {
		c.Types = make(map[ColumnType]CellFormatter, len(f.Types))
		for key, val := range f.Types {
			c.Types[key] = val
		}
	}
	return c
}
