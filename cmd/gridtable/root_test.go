package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	fs "github.com/ungerik/go-fs"

	gridtable "github.com/domonda/go-gridtable"
)

const columnsYAML = `
empty_message: No transactions
columns:
  - key: id
    label: ID
    type: number
  - key: amount_cents
    label: Amount
    type: number
    sortable: true
    format: cents
  - key: status
    label: Status
    type: status
    sortable: true
`

const rowsJSON = `[
  {"id": 299894, "amount_cents": 5000, "status": "PAID"},
  {"id": 299895, "amount_cents": 2000, "status": "UNPAID"},
  {"id": 299896, "amount_cents": 3000, "status": "pending"}
]`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRender(t *testing.T) {
	dir := t.TempDir()
	columns := writeFile(t, dir, "columns.yaml", columnsYAML)
	data := writeFile(t, dir, "rows.json", rowsJSON)
	csvData := writeFile(t, dir, "rows.csv", "id;amount_cents;status\r\n1;5000;PAID\r\n2;700;unpaid\r\n")
	yamlData := writeFile(t, dir, "rows.yml", "- {id: 7, amount_cents: 100, status: Processing}\n")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "csv sorted",
			args: []string{"render", "-c", columns, "-d", data, "--format", "csv", "--sort", "amount_cents"},
			want: "ID,Amount,Status\r\n" +
				"\"299,895\",20.00,UNPAID\r\n" +
				"\"299,896\",30.00,pending\r\n" +
				"\"299,894\",50.00,PAID\r\n",
		},
		{
			name: "csv descending",
			args: []string{"render", "-c", columns, "-d", data, "-f", "csv", "-s", "amount_cents", "-s", "amount_cents"},
			want: "ID,Amount,Status\r\n" +
				"\"299,894\",50.00,PAID\r\n" +
				"\"299,896\",30.00,pending\r\n" +
				"\"299,895\",20.00,UNPAID\r\n",
		},
		{
			name: "csv ignored sort keys",
			args: []string{"render", "-c", columns, "-d", data, "-f", "csv", "-s", "id", "-s", "unknown"},
			want: "ID,Amount,Status\r\n" +
				"\"299,894\",50.00,PAID\r\n" +
				"\"299,895\",20.00,UNPAID\r\n" +
				"\"299,896\",30.00,pending\r\n",
		},
		{
			name: "csv input",
			args: []string{"render", "-c", columns, "-d", csvData, "-f", "csv", "-s", "status"},
			want: "ID,Amount,Status\r\n" +
				"1,50.00,PAID\r\n" +
				"2,7.00,unpaid\r\n",
		},
		{
			name: "yaml input",
			args: []string{"render", "-c", columns, "-d", yamlData, "-f", "csv"},
			want: "ID,Amount,Status\r\n" +
				"7,1.00,Processing\r\n",
		},
		{
			name: "query on data",
			args: []string{"render", "-c", columns, "-d", data, "-f", "csv", "-s", "amount_cents", "-q", "SELECT id, amount_cents FROM data LIMIT 2"},
			want: "ID,Amount,Status\r\n" +
				"\"299,895\",20.00,-\r\n" +
				"\"299,894\",50.00,-\r\n",
		},
		{
			name: "no data",
			args: []string{"render", "-c", columns, "-f", "csv"},
			want: "ID,Amount,Status\r\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.NoError(t, err)
			require.Equal(t, tt.want, out)
		})
	}
}

func TestRender_Text(t *testing.T) {
	dir := t.TempDir()
	columns := writeFile(t, dir, "columns.yaml", columnsYAML)
	data := writeFile(t, dir, "rows.json", rowsJSON)

	out, err := execute(t, "render", "-c", columns, "-d", data, "--no-color", "-s", "amount_cents")
	require.NoError(t, err)
	require.NotContains(t, out, "\x1b[")
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 5)
	require.Contains(t, lines[0], "Amount ▲")
	require.Contains(t, lines[2], "20.00")
	require.Contains(t, lines[4], "PAID")

	out, err = execute(t, "render", "-c", columns)
	require.NoError(t, err)
	require.Contains(t, out, "No transactions")
	require.Contains(t, out, gridtable.DefaultEmptyHint)
}

func TestRender_HTML(t *testing.T) {
	dir := t.TempDir()
	columns := writeFile(t, dir, "columns.yaml", columnsYAML)
	data := writeFile(t, dir, "rows.json", rowsJSON)

	out, err := execute(t, "render", "-c", columns, "-d", data, "-f", "HTML", "-s", "status", "--caption", "Transactions")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "<table>"), out)
	require.Contains(t, out, "<caption>Transactions</caption>")
	require.Contains(t, out, "<th data-sort='ascending'>Status ▲</th>")
	require.Contains(t, out, "<span class='badge badge-paid'>PAID</span>")
}

func TestRender_Errors(t *testing.T) {
	dir := t.TempDir()
	columns := writeFile(t, dir, "columns.yaml", columnsYAML)
	badColumns := writeFile(t, dir, "bad.yaml", "columns:\n  - key: a\n    format: euro\n")
	data := writeFile(t, dir, "rows.json", rowsJSON)
	xml := writeFile(t, dir, "rows.xml", "<rows/>")
	badJSON := writeFile(t, dir, "bad.json", `{"id": 1}`)

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "missing columns", args: []string{"render", "-d", data}, wantErr: "missing --columns"},
		{name: "bad format", args: []string{"render", "-c", columns, "-f", "pdf"}, wantErr: "invalid --format"},
		{name: "bad log level", args: []string{"render", "-c", columns, "--log-level", "loud"}, wantErr: "invalid --log-level"},
		{name: "unknown column format", args: []string{"render", "-c", badColumns}, wantErr: "unknown column format"},
		{name: "unsupported data", args: []string{"render", "-c", columns, "-d", xml}, wantErr: "unsupported data file extension"},
		{name: "data not an array", args: []string{"render", "-c", columns, "-d", badJSON}, wantErr: "bad.json"},
		{name: "missing data", args: []string{"render", "-c", columns, "-d", filepath.Join(dir, "missing.json")}},
		{name: "bad query", args: []string{"render", "-c", columns, "-d", data, "-q", "DELETE FROM data"}, wantErr: "invalid query"},
		{name: "query unknown table", args: []string{"render", "-c", columns, "-d", data, "-q", "SELECT * FROM rows"}, wantErr: `table "rows" not found`},
		{name: "data with postgres", args: []string{"render", "-c", columns, "-d", data, "-q", "SELECT * FROM data", "--postgres", "postgres://localhost/db"}, wantErr: "--data can't be combined"},
		{name: "positional args", args: []string{"render", "-c", columns, "extra"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestLoadRows_JSONNumbers(t *testing.T) {
	path := writeFile(t, t.TempDir(), "rows.JSON", `[{"amount": 12.50, "big": 9007199254740993}]`)
	rows, err := loadRows(context.Background(), fs.File(path), "")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "12.50", rows[0]["amount"].(interface{ String() string }).String())
	n, ok := gridtable.AsNumber(rows[0]["big"])
	require.True(t, ok)
	require.Equal(t, int64(9007199254740993), n.Int)
}

func TestParseFormat(t *testing.T) {
	for _, format := range []string{"text", "TEXT", "html", "csv"} {
		got, err := parseFormat(format)
		require.NoError(t, err)
		require.Equal(t, strings.ToLower(format), got)
	}
	_, err := parseFormat("xlsx")
	require.Error(t, err)
}
