// Package csvtable reads CSV data as gridtable rows
// and writes rendered grids as CSV.
//
// Input data can be in any encoding supported by
// github.com/domonda/go-types/charset and the format
// can be detected automatically.
package csvtable

import (
	"errors"
	"fmt"
)

// Format describes the encoding and structural format of CSV data.
type Format struct {
	// Encoding of the CSV data, for example
	// "UTF-8", "UTF-16LE", "ISO 8859-1", "Windows 1252" or "Macintosh"
	Encoding string `json:"encoding" yaml:"encoding"`

	// Separator is the single character field delimiter
	Separator string `json:"separator" yaml:"separator"`

	// Newline is one of "\n", "\r\n" or "\n\r"
	Newline string `json:"newline" yaml:"newline"`
}

// NewFormat returns a UTF-8 Format with \r\n newlines
// and the passed separator.
func NewFormat(separator string) *Format {
	return &Format{
		Encoding:  "UTF-8",
		Separator: separator,
		Newline:   "\r\n",
	}
}

// Validate returns an error if f is nil or not a valid format.
func (f *Format) Validate() error {
	switch {
	case f == nil:
		return errors.New("<nil> csvtable.Format")
	case f.Encoding == "":
		return errors.New("missing csvtable.Format.Encoding")
	case f.Separator == "":
		return errors.New("missing csvtable.Format.Separator")
	case len(f.Separator) > 1:
		return fmt.Errorf("invalid csvtable.Format.Separator: %q", f.Separator)
	case f.Newline == "":
		return errors.New("missing csvtable.Format.Newline")
	case f.Newline != "\n" && f.Newline != "\n\r" && f.Newline != "\r\n":
		return fmt.Errorf("invalid csvtable.Format.Newline: %q", f.Newline)
	}
	return nil
}

// FormatDetectionConfig lists the encodings tried in order by DetectFormat
// and the strings with special characters used to verify them.
type FormatDetectionConfig struct {
	Encodings     []string `json:"encodings"`
	EncodingTests []string `json:"encodingTests"`
}

// NewDefaultFormatDetectionConfig returns a FormatDetectionConfig
// for European and Cyrillic CSV files.
func NewDefaultFormatDetectionConfig() *FormatDetectionConfig {
	return &FormatDetectionConfig{
		Encodings: []string{
			"UTF-8",
			"UTF-16LE",
			"ISO 8859-1",
			"Windows 1252", // like ANSI
			"Macintosh",
		},
		EncodingTests: []string{
			"ä", "Ä", "ö", "Ö", "ü", "Ü", "ß", "§", "€",
			"д", "Д", "ъ", "Ъ", "б", "Б", "л", "Л", "и", "И", "ж",
		},
	}
}
