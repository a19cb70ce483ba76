package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	fs "github.com/ungerik/go-fs"
	"gopkg.in/yaml.v3"

	gridtable "github.com/domonda/go-gridtable"
	"github.com/domonda/go-gridtable/csvtable"
	"github.com/domonda/go-gridtable/internal/logger"
)

// loadRows reads the rows of file depending on its extension.
// JSON numbers are kept as json.Number.
func loadRows(ctx context.Context, file fs.FileReader, encoding string) ([]gridtable.Row, error) {
	data, err := file.ReadAllContext(ctx)
	if err != nil {
		return nil, err
	}
	log := logger.FromContext(ctx)

	switch ext := strings.ToLower(file.Ext()); ext {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		var rows []gridtable.Row
		if err := dec.Decode(&rows); err != nil {
			return nil, fmt.Errorf("%s: %w", file.Name(), err)
		}
		return rows, nil

	case ".yaml", ".yml":
		var rows []gridtable.Row
		if err := yaml.Unmarshal(data, &rows); err != nil {
			return nil, fmt.Errorf("%s: %w", file.Name(), err)
		}
		return rows, nil

	case ".csv", ".tsv", ".txt":
		config := csvtable.NewDefaultFormatDetectionConfig()
		if encoding != "" {
			config.Encodings = []string{encoding}
		}
		rows, format, err := csvtable.ReadRowsDetectFormat(data, config)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", file.Name(), err)
		}
		log.V(1).Info("read CSV", "file", file.Name(), "encoding", format.Encoding, "separator", format.Separator, "rows", len(rows))
		return rows, nil

	default:
		return nil, fmt.Errorf("%s: unsupported data file extension %q", file.Name(), ext)
	}
}
