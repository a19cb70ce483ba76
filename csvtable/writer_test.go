package csvtable

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	gridtable "github.com/domonda/go-gridtable"
)

func transactionEngine() *gridtable.Engine {
	cols := gridtable.MustColumns(
		gridtable.Column{Key: "id", Label: "ID", Type: gridtable.Number},
		gridtable.Column{Key: "amount_cents", Label: "Amount", Type: gridtable.Number, Sortable: true},
		gridtable.Column{Key: "status", Label: "Status", Type: gridtable.Status},
		gridtable.Column{Key: "note", Label: "Note"},
	)
	rows := []gridtable.Row{
		{"id": 299894, "amount_cents": 5000, "status": "PAID"},
		{"id": 299895, "amount_cents": 2000, "status": "UNPAID", "note": "a <b> note"},
		{"id": 299896, "status": "pending"},
	}
	engine := gridtable.NewEngine(cols, rows)
	engine.Activate("amount_cents")
	return engine
}

func ExampleWriter() {
	err := NewWriter().
		WithDelimiter(';').
		WithNewLine("\n").
		WithIndicators(true).
		Write(context.Background(), os.Stdout, transactionEngine())
	if err != nil {
		panic(err)
	}

	// Output:
	// ID;Amount ▲;Status;Note
	// 299,896;-;pending;-
	// 299,895;2,000;UNPAID;a <b> note
	// 299,894;5,000;PAID;-
}

func TestWriter_Write(t *testing.T) {
	tests := []struct {
		name   string
		writer *Writer
		want   string
	}{
		{
			name:   "defaults",
			writer: NewWriter(),
			want: "ID,Amount,Status,Note\r\n" +
				"\"299,896\",-,pending,-\r\n" +
				"\"299,895\",\"2,000\",UNPAID,a <b> note\r\n" +
				"\"299,894\",\"5,000\",PAID,-\r\n",
		},
		{
			name:   "no header row",
			writer: NewWriter().WithHeaderRow(false).WithDelimiter('\t').WithNewLine("\n"),
			want: "299,896\t-\tpending\t-\n" +
				"299,895\t2,000\tUNPAID\ta <b> note\n" +
				"299,894\t5,000\tPAID\t-\n",
		},
		{
			name:   "quote all fields",
			writer: NewWriter().WithDelimiter(';').WithNewLine("\n").WithQuoteAllFields(true),
			want: `"ID";"Amount";"Status";"Note"` + "\n" +
				`"299,896";"-";"pending";"-"` + "\n" +
				`"299,895";"2,000";"UNPAID";"a <b> note"` + "\n" +
				`"299,894";"5,000";"PAID";"-"` + "\n",
		},
		{
			name:   "align left",
			writer: NewWriter().WithDelimiter('|').WithNewLine("\n").WithPadding(AlignLeft),
			want: "ID     |Amount|Status |Note      \n" +
				"299,896|-     |pending|-         \n" +
				"299,895|2,000 |UNPAID |a <b> note\n" +
				"299,894|5,000 |PAID   |-         \n",
		},
		{
			name:   "align right",
			writer: NewWriter().WithDelimiter('|').WithNewLine("\n").WithPadding(AlignRight).WithHeaderRow(false),
			want: "299,896|    -|pending|         -\n" +
				"299,895|2,000| UNPAID|a <b> note\n" +
				"299,894|5,000|   PAID|         -\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := tt.writer.Write(context.Background(), &buf, transactionEngine())
			require.NoError(t, err)
			require.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWriter_EscapeString(t *testing.T) {
	tests := []struct {
		name   string
		writer *Writer
		str    string
		raw    bool
		want   string
	}{
		{name: "plain", writer: NewWriter(), str: "PAID", want: "PAID"},
		{name: "delimiter", writer: NewWriter(), str: "a,b", want: `"a,b"`},
		{name: "quotes", writer: NewWriter(), str: `say "hi"`, want: `"say ""hi"""`},
		{name: "newline", writer: NewWriter(), str: "a\r\nb", want: "\"a\nb\""},
		{name: "custom escape", writer: NewWriter().WithEscapeQuotes(`\"`), str: `"x"`, want: `"\"x\""`},
		{name: "empty", writer: NewWriter(), str: "", want: ""},
		{name: "quoted empty", writer: NewWriter().WithQuoteEmptyFields(true), str: "", want: `""`},
		{name: "raw", writer: NewWriter(), str: `"a,b"`, raw: true, want: `"a,b"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.writer.escapeString(tt.str, tt.raw))
		})
	}
}

func TestWriter_EmptyGrid(t *testing.T) {
	cols := gridtable.MustColumns(
		gridtable.Column{Key: "id", Label: "ID"},
		gridtable.Column{Key: "name", Label: "Name"},
	)
	grid, err := gridtable.NewEngine(cols, nil).Render(context.Background())
	require.NoError(t, err)
	require.True(t, grid.Empty)

	var buf bytes.Buffer
	err = NewWriter().WriteGrid(context.Background(), &buf, grid)
	require.NoError(t, err)
	require.Equal(t, "ID,Name\r\n", buf.String())

	buf.Reset()
	err = NewWriter().WithHeaderRow(false).WriteGrid(context.Background(), &buf, grid)
	require.NoError(t, err)
	require.Empty(t, buf.String())
}

func TestWriter_WithFormat(t *testing.T) {
	cols := gridtable.MustColumns(gridtable.Column{Key: "name", Label: "Name"})
	engine := gridtable.NewEngine(cols, []gridtable.Row{{"name": "Müller"}})

	writer, err := NewWriter().WithFormat(&Format{Encoding: "ISO 8859-1", Separator: ";", Newline: "\n"})
	require.NoError(t, err)
	require.Equal(t, ';', writer.Delimiter())
	require.Equal(t, "\n", writer.NewLine())

	var buf bytes.Buffer
	err = writer.Write(context.Background(), &buf, engine)
	require.NoError(t, err)
	require.Equal(t, []byte("Name\nM\xfcller\n"), buf.Bytes())

	rows, err := ReadRows(buf.Bytes(), &Format{Encoding: "ISO 8859-1", Separator: ";", Newline: "\n"})
	require.NoError(t, err)
	require.Equal(t, []gridtable.Row{{"Name": "Müller"}}, rows)

	_, err = NewWriter().WithFormat(&Format{Encoding: "UTF-8", Separator: "", Newline: "\n"})
	require.Error(t, err)
}

func TestWriter_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var buf bytes.Buffer
	err := NewWriter().Write(ctx, &buf, transactionEngine())
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, buf.String())
}
