package htmltable

import "html/template"

var (
	HeaderTemplate = template.Must(template.New("header").Parse(
		"<table{{if .TableClass}} class='{{.TableClass}}'{{end}}>\n" +
			"{{if .Caption}}  <caption>{{.Caption}}</caption>\n{{end}}" +
			"  <thead>\n" +
			"    <tr>{{range .Headers}}" +
			"<th{{if .Sortable}} data-sort='{{.Sort}}'{{end}}>" +
			"{{if .Href}}<a href='{{.Href}}'>{{.Label}}</a>{{else}}{{.Label}}{{end}}" +
			"</th>{{end}}</tr>\n" +
			"  </thead>\n" +
			"  <tbody>\n",
	))

	RowTemplate = template.Must(template.New("row").Parse(
		"    <tr class='{{if .Odd}}odd{{else}}even{{end}}'>" +
			"{{range $cell := .RawCells}}<td>{{$cell}}</td>{{end}}</tr>\n",
	))

	EmptyTemplate = template.Must(template.New("empty").Parse(
		"    <tr class='empty'><td colspan='{{.NumCols}}'>" +
			"{{.Message}}{{if .Hint}}<br><small>{{.Hint}}</small>{{end}}" +
			"</td></tr>\n",
	))

	FooterTemplate = template.Must(template.New("footer").Parse(
		"  </tbody>\n" +
			"</table>\n",
	))
)

type TemplateContext struct {
	TableClass string
	Caption    string
}

// HeaderCell is the template data of one header cell.
type HeaderCell struct {
	Key   string
	Label string
	// Sortable headers get a data-sort attribute
	// with the value none, ascending or descending.
	Sortable bool
	Sort     string
	// Href is set for sortable headers if the Writer has sort links.
	Href string
}

type HeaderTemplateContext struct {
	TemplateContext

	Headers []HeaderCell
}

type RowTemplateContext struct {
	TemplateContext

	RowIndex int
	RawCells []template.HTML
}

// Odd returns true for the first, third, fifth... row
// like the CSS selector :nth-child(odd).
func (c *RowTemplateContext) Odd() bool {
	return c.RowIndex%2 == 0
}

type EmptyTemplateContext struct {
	TemplateContext

	NumCols int
	Message string
	Hint    string
}
