package csvtable

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	gridtable "github.com/domonda/go-gridtable"
)

// ReadRows parses csv in format and returns one row per record
// after the first record, which holds the keys of the row values.
//
// Keys are trimmed and must be unique and not empty.
// All values are strings. Records where all fields are empty
// are skipped, every other record must have as many fields as the header
// or a *RaggedRowError is returned.
func ReadRows(csv []byte, format *Format) ([]gridtable.Row, error) {
	data, err := decode(csv, format)
	if err != nil {
		return nil, err
	}
	return readRows(data, format)
}

// ReadRowsDetectFormat is like ReadRows with the format
// detected by DetectFormat using config.
// A nil config uses NewDefaultFormatDetectionConfig.
func ReadRowsDetectFormat(csv []byte, config *FormatDetectionConfig) ([]gridtable.Row, *Format, error) {
	format, data, err := DetectFormat(csv, config)
	if err != nil {
		return nil, nil, err
	}
	rows, err := readRows(data, format)
	if err != nil {
		return nil, format, err
	}
	return rows, format, nil
}

func readRows(data []byte, format *Format) ([]gridtable.Row, error) {
	if format.Newline == "\n\r" {
		data = bytes.ReplaceAll(data, []byte("\n\r"), []byte("\n"))
	}
	records, lines, err := parseRecords(data, format.Separator)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	keys := make([]string, len(records[0]))
	seen := make(map[string]struct{}, len(keys))
	for i, field := range records[0] {
		key := strings.TrimSpace(field)
		if key == "" {
			return nil, fmt.Errorf("header field %d: %w", i, gridtable.ErrEmptyColumnKey)
		}
		if _, ok := seen[key]; ok {
			return nil, fmt.Errorf("header: %w: %q", gridtable.ErrDuplicateColumnKey, key)
		}
		seen[key] = struct{}{}
		keys[i] = key
	}

	rows := make([]gridtable.Row, 0, len(records)-1)
	for r, record := range records[1:] {
		if len(record) != len(keys) {
			return nil, &RaggedRowError{Line: lines[r+1], NumFields: len(record), NumKeys: len(keys)}
		}
		row := make(gridtable.Row, len(keys))
		for i, key := range keys {
			row[key] = record[i]
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// parseRecords returns the non-empty records of data
// and the line number where each record starts.
func parseRecords(data []byte, separator string) (records [][]string, lines []int, err error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = rune(separator[0])
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return records, lines, nil
		}
		if err != nil {
			return nil, nil, err
		}
		if isEmptyRecord(record) {
			continue
		}
		line, _ := reader.FieldPos(0)
		records = append(records, record)
		lines = append(lines, line)
	}
}

func isEmptyRecord(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}
