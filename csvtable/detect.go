package csvtable

import (
	"bytes"
	"errors"

	"github.com/domonda/go-types/charset"
)

// DetectFormat detects the encoding, newline and separator of csv
// and returns the data decoded as UTF-8.
//
// The encoding is the first of config.Encodings that decodes
// config.EncodingTests, UTF-8 if none matches.
// Newlines are \r\n if the data contains any, else \n.
// The separator is declared by a "sep=X" first line
// or the most frequent of comma, semicolon and tab with comma
// winning ties. A separator declaration line is removed from the result.
func DetectFormat(csv []byte, config *FormatDetectionConfig) (format *Format, decoded []byte, err error) {
	if config == nil {
		config = NewDefaultFormatDetectionConfig()
	}

	encodings := make([]charset.Encoding, 0, len(config.Encodings))
	for _, name := range config.Encodings {
		enc, err := charset.GetEncoding(name)
		if err != nil {
			return nil, nil, err
		}
		encodings = append(encodings, enc)
	}
	if len(encodings) == 0 {
		return nil, nil, errors.New("no encodings in FormatDetectionConfig")
	}

	format = new(Format)
	csv, format.Encoding, err = charset.AutoDecode(csv, encodings, config.EncodingTests)
	if err != nil {
		return nil, nil, err
	}
	if format.Encoding == "" {
		format.Encoding = "UTF-8"
	}
	csv = sanitizeUTF8(charset.TrimBOM(csv, charset.BOMUTF8))

	if bytes.Contains(csv, []byte{'\r', '\n'}) {
		format.Newline = "\r\n"
	} else {
		format.Newline = "\n"
	}

	firstLine, rest, _ := bytes.Cut(csv, []byte(format.Newline))
	if sep := parseSepHeaderLine(firstLine); sep != "" {
		format.Separator = sep
		return format, rest, nil
	}

	var (
		commas     = bytes.Count(csv, []byte{','})
		semicolons = bytes.Count(csv, []byte{';'})
		tabs       = bytes.Count(csv, []byte{'\t'})
	)
	switch {
	case semicolons > commas && semicolons > tabs:
		format.Separator = ";"
	case tabs > commas && tabs > semicolons:
		format.Separator = "\t"
	default:
		format.Separator = ","
	}
	return format, csv, nil
}

// decode returns csv decoded from format.Encoding as UTF-8
// without separator declaration line.
func decode(csv []byte, format *Format) ([]byte, error) {
	err := format.Validate()
	if err != nil {
		return nil, err
	}
	if format.Encoding == "UTF-8" {
		csv = charset.TrimBOM(csv, charset.BOMUTF8)
	} else {
		enc, err := charset.GetEncoding(format.Encoding)
		if err != nil {
			return nil, err
		}
		csv, err = enc.Decode(csv)
		if err != nil {
			return nil, err
		}
	}
	csv = sanitizeUTF8(csv)

	firstLine, rest, _ := bytes.Cut(csv, []byte(format.Newline))
	if sep := parseSepHeaderLine(firstLine); sep != "" {
		if sep != format.Separator {
			return nil, &SeparatorMismatchError{Declared: sep, Format: format.Separator}
		}
		return rest, nil
	}
	return csv, nil
}

// parseSepHeaderLine returns the separator of a
// "sep=X" or "SEP=X" line, optionally in double quotes.
func parseSepHeaderLine(line []byte) (sep string) {
	if len(line) >= 2 && line[0] == '"' && line[len(line)-1] == '"' {
		line = line[1 : len(line)-1]
	}
	if len(line) != 5 {
		return ""
	}
	if !bytes.HasPrefix(line, []byte("sep=")) && !bytes.HasPrefix(line, []byte("SEP=")) {
		return ""
	}
	return string(line[4:5])
}

func sanitizeUTF8(str []byte) []byte {
	return bytes.Map(
		func(r rune) rune {
			switch r {
			// \u00a0 is No-Break Space (NBSP)
			case '\uFFFD', '\u00a0':
				return ' '
			default:
				return r
			}
		},
		str,
	)
}
