package sqltable

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_parseQuery(t *testing.T) {
	tests := []struct {
		query       string
		wantColumns []string
		wantTable   string
		wantOffset  int
		wantLimit   int
		wantErr     bool
	}{
		{
			query:       `select * from table`,
			wantColumns: []string{"*"},
			wantTable:   `table`,
		},
		{
			query:       `SELECT * FROM my.table;`,
			wantColumns: []string{"*"},
			wantTable:   `my.table`,
		},
		{
			query:       `SELECT * FROM "my.table"`,
			wantColumns: []string{"*"},
			wantTable:   `my.table`,
		},
		{
			query:       `select a,B , "Col3",column4 from table`,
			wantColumns: []string{"a", "B", "Col3", "column4"},
			wantTable:   `table`,
		},
		{
			query:       `SELECT id, amount_cents FROM transactions LIMIT 10`,
			wantColumns: []string{"id", "amount_cents"},
			wantTable:   `transactions`,
			wantLimit:   10,
		},
		{
			query:       `select * from transactions limit 2 offset 3;`,
			wantColumns: []string{"*"},
			wantTable:   `transactions`,
			wantOffset:  3,
			wantLimit:   2,
		},
		{
			query:       `SELECT * FROM "transactions" OFFSET 1`,
			wantColumns: []string{"*"},
			wantTable:   `transactions`,
			wantOffset:  1,
		},

		// Errors
		{query: "", wantErr: true},
		{query: `SELECT *,b FROM "my.table"`, wantErr: true},
		{query: `SELECT a,* FROM "my.table"`, wantErr: true},
		{query: `SELECT * FROM table LIMIT`, wantErr: true},
		{query: `SELECT * FROM table OFFSET 1 LIMIT 2`, wantErr: true},
		{query: `DELETE FROM table`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			gotColumns, gotTable, gotOffset, gotLimit, err := parseQuery(tt.query)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantColumns, gotColumns)
			require.Equal(t, tt.wantTable, gotTable)
			require.Equal(t, tt.wantOffset, gotOffset)
			require.Equal(t, tt.wantLimit, gotLimit)
		})
	}
}
