package config

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	gridtable "github.com/domonda/go-gridtable"
)

// FormatFunc returns the CellFormatter for a named column format.
type FormatFunc func(col *Column, lang language.Tag) (gridtable.CellFormatter, error)

var formats = map[string]FormatFunc{
	"cents":   centsFormat,
	"percent": percentFormat,
	"upper":   upperFormat,
	"lower":   lowerFormat,
	"printf":  printfFormat,
}

// FormatNames returns the sorted names usable as column format.
func FormatNames() []string {
	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// NewFormatter returns the CellFormatter for the format of col
// or nil if col has no format.
func NewFormatter(col *Column, lang language.Tag) (gridtable.CellFormatter, error) {
	if col.Format == "" {
		if col.Printf != "" {
			return nil, fmt.Errorf("column %q: printf layout without printf format", col.Key)
		}
		return nil, nil
	}
	f, ok := formats[strings.ToLower(col.Format)]
	if !ok {
		return nil, fmt.Errorf("column %q: %w: %q", col.Key, ErrUnknownFormat, col.Format)
	}
	return f(col, lang)
}

// centsFormat divides integer cents by 100
// and prints them with two grouped decimals.
func centsFormat(col *Column, lang language.Tag) (gridtable.CellFormatter, error) {
	p := message.NewPrinter(lang)
	return gridtable.CellFormatterFunc(func(ctx context.Context, cell *gridtable.Cell) (string, bool, error) {
		n, ok := gridtable.AsNumber(cell.Value)
		if !ok {
			return "", false, errors.ErrUnsupported
		}
		var amount float64
		if n.IsInt {
			amount = float64(n.Int) / 100
		} else {
			amount = n.Float / 100
		}
		return p.Sprint(number.Decimal(amount, number.MinFractionDigits(2), number.MaxFractionDigits(2))), false, nil
	}), nil
}

// percentFormat prints fractions like 0.125 as "12.5%".
func percentFormat(col *Column, lang language.Tag) (gridtable.CellFormatter, error) {
	p := message.NewPrinter(lang)
	return gridtable.CellFormatterFunc(func(ctx context.Context, cell *gridtable.Cell) (string, bool, error) {
		n, ok := gridtable.AsNumber(cell.Value)
		if !ok {
			return "", false, errors.ErrUnsupported
		}
		return p.Sprint(number.Decimal(n.Float*100, number.MaxFractionDigits(1))) + "%", false, nil
	}), nil
}

func upperFormat(col *Column, lang language.Tag) (gridtable.CellFormatter, error) {
	return caseFormatter(cases.Upper(lang)), nil
}

func lowerFormat(col *Column, lang language.Tag) (gridtable.CellFormatter, error) {
	return caseFormatter(cases.Lower(lang)), nil
}

func caseFormatter(caser cases.Caser) gridtable.CellFormatter {
	return gridtable.CellFormatterFunc(func(ctx context.Context, cell *gridtable.Cell) (string, bool, error) {
		str, ok := gridtable.AsString(cell.Value)
		if !ok {
			return "", false, errors.ErrUnsupported
		}
		return caser.String(str), false, nil
	})
}

func printfFormat(col *Column, lang language.Tag) (gridtable.CellFormatter, error) {
	if col.Printf == "" {
		return nil, fmt.Errorf("column %q: printf format without printf layout", col.Key)
	}
	return gridtable.PrintfCellFormatter(col.Printf), nil
}
