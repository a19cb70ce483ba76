package htmltable

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"strings"

	gridtable "github.com/domonda/go-gridtable"
)

var (
	HTMLPreCellFormatter gridtable.CellFormatterFunc = func(ctx context.Context, cell *gridtable.Cell) (str string, raw bool, err error) {
		value := template.HTMLEscapeString(sprintValue(cell))
		return "<pre>" + value + "</pre>", true, nil
	}

	HTMLCodeCellFormatter gridtable.CellFormatterFunc = func(ctx context.Context, cell *gridtable.Cell) (str string, raw bool, err error) {
		value := template.HTMLEscapeString(sprintValue(cell))
		return "<code>" + value + "</code>", true, nil
	}

	// ValueAsHTMLAnchorCellFormatter formats the cell value using fmt.Sprint,
	// escapes it for HTML and returns an HTML anchor element with the
	// value as id and inner text.
	ValueAsHTMLAnchorCellFormatter gridtable.CellFormatterFunc = func(ctx context.Context, cell *gridtable.Cell) (str string, raw bool, err error) {
		value := template.HTMLEscapeString(sprintValue(cell))
		return fmt.Sprintf("<a id='%[1]s'>%[1]s</a>", value), true, nil
	}

	_ gridtable.CellFormatter  = JSONCellFormatter("")
	_ gridtable.CellFormatter  = HTMLSpanClassCellFormatter("")
	_ gridtable.StatusRenderer = BadgeStatusRenderer{}
)

// preEscaper escapes element content without quotes
var preEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func sprintValue(cell *gridtable.Cell) string {
	str, _ := gridtable.AsString(cell.Value)
	return str
}

// JSONCellFormatter writes JSON cell values within a pre element.
// The underlying string is the indent,
// an empty indent compacts the JSON.
// Values other than strings, []byte and json.RawMessage
// are marshalled as JSON.
type JSONCellFormatter string

func (indent JSONCellFormatter) FormatCell(ctx context.Context, cell *gridtable.Cell) (str string, raw bool, err error) {
	var src []byte
	switch v := cell.Value.(type) {
	case []byte:
		src = v
	case json.RawMessage:
		src = v
	case string:
		src = []byte(v)
	default:
		src, err = json.Marshal(v)
		if err != nil {
			return "", false, err
		}
	}
	var buf bytes.Buffer
	if indent == "" {
		err = json.Compact(&buf, src)
	} else {
		err = json.Indent(&buf, src, "", string(indent))
	}
	if err != nil {
		return "", false, err
	}
	return "<pre>" + preEscaper.Replace(buf.String()) + "</pre>", true, nil
}

// HTMLSpanClassCellFormatter formats the cell value within an HTML span element
// with the class of the underlying string value.
type HTMLSpanClassCellFormatter string

func (class HTMLSpanClassCellFormatter) FormatCell(ctx context.Context, cell *gridtable.Cell) (str string, raw bool, err error) {
	text := template.HTMLEscapeString(sprintValue(cell))
	return fmt.Sprintf("<span class='%s'>%s</span>", template.HTMLEscapeString(string(class)), text), true, nil
}

// BadgeStatusRenderer renders a status as HTML span element
// with the classes "badge" and "badge-" plus the category of the status,
// for example <span class='badge badge-paid'>PAID</span>.
//
// ClassPrefix replaces "badge" if not empty.
type BadgeStatusRenderer struct {
	ClassPrefix string
}

func (r BadgeStatusRenderer) RenderStatus(ctx context.Context, status string) (str string, raw bool, err error) {
	prefix := r.ClassPrefix
	if prefix == "" {
		prefix = "badge"
	}
	prefix = template.HTMLEscapeString(prefix)
	category := gridtable.CategorizeStatus(status)
	return fmt.Sprintf("<span class='%[1]s %[1]s-%[2]s'>%[3]s</span>", prefix, category, template.HTMLEscapeString(status)), true, nil
}
