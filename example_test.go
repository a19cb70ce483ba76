package gridtable_test

import (
	"context"
	"fmt"
	"strings"

	gridtable "github.com/domonda/go-gridtable"
)

func ExampleEngine() {
	columns := gridtable.MustColumns(
		gridtable.Column{Key: "id", Label: "ID", Type: gridtable.Number},
		gridtable.Column{Key: "amount_cents", Label: "Amount", Type: gridtable.Number, Sortable: true},
		gridtable.Column{Key: "status", Label: "Status", Type: gridtable.Status},
	)
	rows := []gridtable.Row{
		{"id": 299894, "amount_cents": 5000, "status": "PAID"},
		{"id": 299895, "amount_cents": 2000, "status": "UNPAID"},
		{"id": 299896, "amount_cents": 3000},
	}
	engine := gridtable.NewEngine(columns, rows)
	engine.Activate("amount_cents")
	engine.Activate("amount_cents")

	grid, err := engine.Render(context.Background())
	if err != nil {
		panic(err)
	}
	for _, row := range grid.Strings(true) {
		fmt.Println(strings.Join(row, " | "))
	}

	// Output:
	// ID | Amount ▼ | Status
	// 299,894 | 5,000 | PAID
	// 299,896 | 3,000 | -
	// 299,895 | 2,000 | UNPAID
}

func ExampleNextSortState() {
	col := gridtable.Column{Key: "created_at", Type: gridtable.Date, Sortable: true}
	var state gridtable.SortState
	for i := 0; i < 4; i++ {
		state = gridtable.NextSortState(state, col)
		fmt.Println(state)
	}

	// Output:
	// created_at ascending
	// created_at descending
	// none
	// created_at ascending
}
