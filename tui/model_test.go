package tui

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/go-logr/logr"
	"github.com/stretchr/testify/require"

	gridtable "github.com/domonda/go-gridtable"
	"github.com/domonda/go-gridtable/internal/logger"
	"github.com/domonda/go-gridtable/termtable"
)

func newTestModel() *Model {
	cols := gridtable.MustColumns(
		gridtable.Column{Key: "id", Label: "ID", Type: gridtable.Number},
		gridtable.Column{Key: "amount_cents", Label: "Amount", Type: gridtable.Number, Sortable: true},
		gridtable.Column{Key: "status", Label: "Status", Type: gridtable.Status, Sortable: true},
	)
	rows := []gridtable.Row{
		{"id": 1, "amount_cents": 5000, "status": "PAID"},
		{"id": 2, "amount_cents": 2000, "status": "UNPAID"},
		{"id": 3, "amount_cents": 3000, "status": "pending"},
	}
	engine := gridtable.NewEngine(cols, rows)
	return New(context.Background(), engine, termtable.NewWriter().WithNoColor(true))
}

func press(t *testing.T, m *Model, keys ...tea.KeyPressMsg) tea.Cmd {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var model tea.Model
		model, cmd = m.Update(k)
		require.Same(t, m, model)
	}
	return cmd
}

var (
	keyLeft  = tea.KeyPressMsg{Code: tea.KeyLeft}
	keyRight = tea.KeyPressMsg{Code: tea.KeyRight}
	keyEnter = tea.KeyPressMsg{Code: tea.KeyEnter}
	keySpace = tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
)

func runeKey(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestModel_ActivateLogsOnce(t *testing.T) {
	level, err := logger.ParseLevel("debug")
	require.NoError(t, err)
	var buf bytes.Buffer
	log, _ := logger.New(&buf, level)

	m := newTestModel()
	m.ctx = logr.NewContext(context.Background(), log)
	m.engine = m.engine.WithLogger(log.WithName("engine"))

	press(t, m, keyRight, keyEnter)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	require.Contains(t, lines[0], `"message":"sort state changed"`)
	require.Contains(t, lines[0], `"to":"amount_cents ascending"`)
}

func TestModel_Focus(t *testing.T) {
	m := newTestModel()
	require.Equal(t, 0, m.Focus())

	press(t, m, keyLeft)
	require.Equal(t, 0, m.Focus(), "stays on first column")

	press(t, m, keyRight, runeKey('l'), keyRight, keyRight)
	require.Equal(t, 2, m.Focus(), "stays on last column")

	press(t, m, runeKey('h'))
	require.Equal(t, 1, m.Focus())
	require.True(t, m.SortState().IsNone(), "moving the focus does not sort")
}

func TestModel_Activate(t *testing.T) {
	m := newTestModel()
	press(t, m, keyRight)

	steps := []struct {
		key  tea.KeyPressMsg
		want gridtable.SortState
	}{
		{key: keyEnter, want: gridtable.SortState{Key: "amount_cents", Direction: gridtable.SortAscending}},
		{key: keySpace, want: gridtable.SortState{Key: "amount_cents", Direction: gridtable.SortDescending}},
		{key: keyEnter, want: gridtable.SortState{}},
	}
	for _, step := range steps {
		press(t, m, step.key)
		require.Equal(t, step.want, m.SortState())
	}

	press(t, m, keyLeft, keyEnter)
	require.True(t, m.SortState().IsNone(), "id is not sortable")
}

func TestModel_DigitKeys(t *testing.T) {
	tests := []struct {
		name      string
		keys      []tea.KeyPressMsg
		wantFocus int
		wantState gridtable.SortState
	}{
		{
			name:      "status",
			keys:      []tea.KeyPressMsg{runeKey('3')},
			wantFocus: 2,
			wantState: gridtable.SortState{Key: "status", Direction: gridtable.SortAscending},
		},
		{
			name:      "amount twice",
			keys:      []tea.KeyPressMsg{runeKey('2'), runeKey('2')},
			wantFocus: 1,
			wantState: gridtable.SortState{Key: "amount_cents", Direction: gridtable.SortDescending},
		},
		{
			name:      "switch resets",
			keys:      []tea.KeyPressMsg{runeKey('2'), runeKey('2'), runeKey('3')},
			wantFocus: 2,
			wantState: gridtable.SortState{Key: "status", Direction: gridtable.SortAscending},
		},
		{
			name:      "not sortable",
			keys:      []tea.KeyPressMsg{runeKey('2'), runeKey('1')},
			wantFocus: 0,
			wantState: gridtable.SortState{Key: "amount_cents", Direction: gridtable.SortAscending},
		},
		{
			name:      "no such column",
			keys:      []tea.KeyPressMsg{runeKey('9')},
			wantFocus: 0,
			wantState: gridtable.SortState{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel()
			press(t, m, tt.keys...)
			require.Equal(t, tt.wantFocus, m.Focus())
			require.Equal(t, tt.wantState, m.SortState())
		})
	}
}

func TestModel_Quit(t *testing.T) {
	for _, k := range []tea.KeyPressMsg{runeKey('q'), {Code: 'c', Mod: tea.ModCtrl}} {
		t.Run(k.String(), func(t *testing.T) {
			cmd := press(t, newTestModel(), k)
			require.NotNil(t, cmd)
			require.IsType(t, tea.QuitMsg{}, cmd())
		})
	}
	require.Nil(t, press(t, newTestModel(), keyEnter))
}

func TestModel_View(t *testing.T) {
	m := newTestModel()
	press(t, m, runeKey('2'))

	view := m.View()
	require.True(t, view.AltScreen)
	require.Equal(t,
		"ID  [Amount ▲]  Status\n"+
			"──  ──────────  ───────\n"+
			" 2       2,000  UNPAID\n"+
			" 3       3,000  pending\n"+
			" 1       5,000  PAID\n"+
			"\n"+
			"3 rows • sort: amount_cents ascending\n"+
			"←/h prev column • →/l next column • enter sort • 1-9 sort column • q quit\n",
		fmt.Sprint(view.Content),
	)
	require.NoError(t, m.Err())
}

func TestModel_WindowSize(t *testing.T) {
	m := newTestModel()
	_, cmd := m.Update(tea.WindowSizeMsg{Width: 30, Height: 10})
	require.Nil(t, cmd)
	require.Equal(t, 8, m.maxCellWidth())
	require.Contains(t, m.Content(), "pending")
}

func TestModel_RenderError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m := newTestModel()
	m.ctx = ctx
	content := m.Content()
	require.ErrorIs(t, m.Err(), context.Canceled)
	require.True(t, strings.HasPrefix(content, "can't render table:"))
}

func TestKeyMap_HelpLine(t *testing.T) {
	keys := DefaultKeyMap()
	keys.Column.SetEnabled(false)
	require.Equal(t, "←/h prev column • →/l next column • enter sort • q quit", keys.HelpLine())
}
