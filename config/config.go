// Package config loads table configurations from YAML.
//
// Example:
//
//	empty_message: No transactions
//	location: Africa/Cairo
//	columns:
//	  - key: id
//	    label: Transaction ID
//	    type: number
//	  - key: amount_cents
//	    label: Amount
//	    type: number
//	    sortable: true
//	    format: cents
//	  - key: status
//	    type: status
//	    width: 12ch
package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-logr/logr"
	fs "github.com/ungerik/go-fs"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	gridtable "github.com/domonda/go-gridtable"
)

// ErrUnknownFormat is returned for a column format
// that is not one of FormatNames.
var ErrUnknownFormat = errors.New("unknown column format")

// Column is the YAML representation of a gridtable.Column.
type Column struct {
	Key      string               `yaml:"key"`
	Label    string               `yaml:"label,omitempty"`
	Type     gridtable.ColumnType `yaml:"type,omitempty"`
	Sortable bool                 `yaml:"sortable,omitempty"`
	Width    string               `yaml:"width,omitempty"`
	// Format names a formatter, see FormatNames
	Format string `yaml:"format,omitempty"`
	// Printf is the layout used by the printf format
	Printf string `yaml:"printf,omitempty"`
}

// Table is the YAML representation of a table display.
// Empty fields use the gridtable defaults.
type Table struct {
	EmptyMessage string `yaml:"empty_message,omitempty"`
	// EmptyHint nil uses the default hint,
	// an empty string disables the hint.
	EmptyHint   *string  `yaml:"empty_hint,omitempty"`
	Placeholder string   `yaml:"placeholder,omitempty"`
	Language    string   `yaml:"language,omitempty"`
	Location    string   `yaml:"location,omitempty"`
	Columns     []Column `yaml:"columns"`
}

// Parse decodes and validates a Table from YAML.
// Unknown fields are errors.
func Parse(data []byte) (*Table, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	t := new(Table)
	err := dec.Decode(t)
	if err != nil {
		return nil, fmt.Errorf("can't decode table config: %w", err)
	}
	if err = t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Load reads and parses a Table from a YAML file.
func Load(ctx context.Context, file fs.FileReader) (*Table, error) {
	data, err := file.ReadAllContext(ctx)
	if err != nil {
		return nil, err
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file.Name(), err)
	}
	logr.FromContextOrDiscard(ctx).V(1).Info("loaded table config", "file", file.Name(), "columns", len(t.Columns))
	return t, nil
}

// Validate returns an error if the table has no columns,
// an invalid column registry, an unknown format,
// language, or location.
func (t *Table) Validate() error {
	if len(t.Columns) == 0 {
		return errors.New("table config has no columns")
	}
	if _, err := t.language(); err != nil {
		return err
	}
	if _, err := t.location(); err != nil {
		return err
	}
	_, err := t.Registry()
	return err
}

func (t *Table) language() (language.Tag, error) {
	if t.Language == "" {
		return language.English, nil
	}
	tag, err := language.Parse(t.Language)
	if err != nil {
		return language.Und, fmt.Errorf("table config language %q: %w", t.Language, err)
	}
	return tag, nil
}

func (t *Table) location() (*time.Location, error) {
	if t.Location == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(t.Location)
	if err != nil {
		return nil, fmt.Errorf("table config location %q: %w", t.Location, err)
	}
	return loc, nil
}

// Registry returns the gridtable.Columns for the configured columns
// with the named formats as column formatters.
func (t *Table) Registry() (*gridtable.Columns, error) {
	lang, err := t.language()
	if err != nil {
		return nil, err
	}
	cols := make([]gridtable.Column, len(t.Columns))
	for i := range t.Columns {
		c := &t.Columns[i]
		formatter, err := NewFormatter(c, lang)
		if err != nil {
			return nil, err
		}
		cols[i] = gridtable.Column{
			Key:       c.Key,
			Label:     c.Label,
			Type:      c.Type,
			Sortable:  c.Sortable,
			Width:     c.Width,
			Formatter: formatter,
		}
	}
	return gridtable.NewColumns(cols...)
}

// Engine returns an unsorted gridtable.Engine for rows
// configured by the table.
func (t *Table) Engine(rows []gridtable.Row) (*gridtable.Engine, error) {
	cols, err := t.Registry()
	if err != nil {
		return nil, err
	}
	lang, err := t.language()
	if err != nil {
		return nil, err
	}
	loc, err := t.location()
	if err != nil {
		return nil, err
	}
	engine := gridtable.NewEngine(cols, rows).
		WithLanguage(lang).
		WithLocation(loc)
	if t.EmptyMessage != "" {
		engine = engine.WithEmptyMessage(t.EmptyMessage)
	}
	if t.EmptyHint != nil {
		engine = engine.WithEmptyHint(*t.EmptyHint)
	}
	if t.Placeholder != "" {
		engine = engine.WithPlaceholder(t.Placeholder)
	}
	return engine, nil
}
