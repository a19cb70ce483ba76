package htmltable

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	gridtable "github.com/domonda/go-gridtable"
)

func cellOf(value any) *gridtable.Cell {
	return &gridtable.Cell{Column: gridtable.Column{Key: "v"}, Row: gridtable.Row{"v": value}, Value: value}
}

func TestJSONCellFormatter_FormatCell(t *testing.T) {
	tests := []struct {
		name    string
		fmt     JSONCellFormatter
		value   any
		wantStr string
		wantErr bool
	}{
		{name: "compact string JSON", fmt: ``, value: `{"1": 1}`, wantStr: `<pre>{"1":1}</pre>`},
		{name: "compact []byte JSON", fmt: ``, value: []byte(`{"1": 1}`), wantStr: `<pre>{"1":1}</pre>`},
		{name: "compact RawMessage JSON", fmt: ``, value: json.RawMessage(`{"1": 1}`), wantStr: `<pre>{"1":1}</pre>`},
		{name: "marshalled map", fmt: ``, value: map[string]int{"a": 1}, wantStr: `<pre>{"a":1}</pre>`},
		{name: "indented", fmt: `  `, value: `{"ok":true}`, wantStr: "<pre>{\n  \"ok\": true\n}</pre>"},
		{name: "markup escaped", fmt: ``, value: `"<b>"`, wantStr: `<pre>"&lt;b&gt;"</pre>`},
		{name: "invalid JSON", fmt: ``, value: `{`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			str, raw, err := tt.fmt.FormatCell(context.Background(), cellOf(tt.value))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantStr, str, "str result")
			require.True(t, raw, "raw result")
		})
	}
}

func TestCellFormatters(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name    string
		fmt     gridtable.CellFormatter
		value   any
		wantStr string
	}{
		{name: "pre", fmt: HTMLPreCellFormatter, value: "a < b", wantStr: `<pre>a &lt; b</pre>`},
		{name: "code", fmt: HTMLCodeCellFormatter, value: 42, wantStr: `<code>42</code>`},
		{name: "anchor", fmt: ValueAsHTMLAnchorCellFormatter, value: "row-1", wantStr: `<a id='row-1'>row-1</a>`},
		{name: "span class", fmt: HTMLSpanClassCellFormatter("amount"), value: "5,000", wantStr: `<span class='amount'>5,000</span>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			str, raw, err := tt.fmt.FormatCell(ctx, cellOf(tt.value))
			require.NoError(t, err)
			require.True(t, raw)
			require.Equal(t, tt.wantStr, str)
		})
	}
}

func TestBadgeStatusRenderer(t *testing.T) {
	tests := []struct {
		renderer BadgeStatusRenderer
		status   string
		want     string
	}{
		{status: "PAID", want: `<span class='badge badge-paid'>PAID</span>`},
		{status: "unpaid", want: `<span class='badge badge-unpaid'>unpaid</span>`},
		{status: "Not Paid", want: `<span class='badge badge-unpaid'>Not Paid</span>`},
		{status: "Pending", want: `<span class='badge badge-pending'>Pending</span>`},
		{status: "PROCESSING", want: `<span class='badge badge-processing'>PROCESSING</span>`},
		{status: "refunded", want: `<span class='badge badge-neutral'>refunded</span>`},
		{status: "<script>", want: `<span class='badge badge-neutral'>&lt;script&gt;</span>`},
		{renderer: BadgeStatusRenderer{ClassPrefix: "tag"}, status: "paid", want: `<span class='tag tag-paid'>paid</span>`},
	}
	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			str, raw, err := tt.renderer.RenderStatus(context.Background(), tt.status)
			require.NoError(t, err)
			require.True(t, raw)
			require.Equal(t, tt.want, str)
		})
	}
}
