// Package tui is an interactive terminal viewer for a gridtable.Engine.
package tui

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	gridtable "github.com/domonda/go-gridtable"
	"github.com/domonda/go-gridtable/termtable"
)

var _ tea.Model = (*Model)(nil)

// Model moves a focus over the table headers and activates
// the sort transition of the focused column.
type Model struct {
	ctx    context.Context
	engine *gridtable.Engine
	writer *termtable.Writer
	keys   KeyMap
	focus  int
	width  int
	height int
	err    error

	helpStyle  lipgloss.Style
	errorStyle lipgloss.Style
}

// New returns a Model for engine rendered with writer.
// The focus starts at the first column.
func New(ctx context.Context, engine *gridtable.Engine, writer *termtable.Writer) *Model {
	if writer == nil {
		writer = termtable.NewWriter()
	}
	return &Model{
		ctx:        ctx,
		engine:     engine,
		writer:     writer,
		keys:       DefaultKeyMap(),
		helpStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		errorStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

// WithKeyMap sets the key bindings and returns m.
func (m *Model) WithKeyMap(keys KeyMap) *Model {
	m.keys = keys
	return m
}

func (m *Model) Focus() int { return m.focus }

func (m *Model) SortState() gridtable.SortState { return m.engine.SortState() }

// Err returns the last render error.
func (m *Model) Err() error { return m.err }

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		numCols := m.engine.Columns().Len()
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Left):
			m.focus = max(m.focus-1, 0)
		case key.Matches(msg, m.keys.Right):
			m.focus = max(min(m.focus+1, numCols-1), 0)
		case key.Matches(msg, m.keys.Activate):
			m.activate(m.focus)
		case key.Matches(msg, m.keys.Column):
			col := int(msg.String()[0] - '1')
			if col < numCols {
				m.focus = col
				m.activate(col)
			}
		}
	}
	return m, nil
}

func (m *Model) activate(col int) {
	if col < 0 || col >= m.engine.Columns().Len() {
		return
	}
	m.engine.Activate(m.engine.Columns().At(col).Key)
}

// Content returns the table with a status and help line below.
func (m *Model) Content() string {
	var b strings.Builder
	grid, err := m.engine.Render(m.ctx)
	m.err = err
	if err != nil {
		b.WriteString(m.style(m.errorStyle, fmt.Sprintf("can't render table: %s", err)))
		b.WriteByte('\n')
	} else {
		writer := m.writer.WithFocus(m.focus)
		if m.width > 0 {
			writer = writer.WithMaxWidth(m.maxCellWidth())
		}
		b.WriteString(writer.Render(grid))
	}
	b.WriteByte('\n')
	b.WriteString(m.style(m.helpStyle, fmt.Sprintf("%d rows • sort: %s", m.engine.NumRows(), m.engine.SortState())))
	b.WriteByte('\n')
	b.WriteString(m.style(m.helpStyle, m.keys.HelpLine()))
	b.WriteByte('\n')
	return b.String()
}

// maxCellWidth shares the window width between the columns.
func (m *Model) maxCellWidth() int {
	numCols := m.engine.Columns().Len()
	if numCols == 0 {
		return 0
	}
	return max(m.width/numCols-2, 8)
}

func (m *Model) style(style lipgloss.Style, text string) string {
	if m.writer.NoColor() {
		return text
	}
	return style.Render(text)
}

func (m *Model) View() tea.View {
	v := tea.NewView(m.Content())
	v.AltScreen = true
	return v
}

// Run starts an interactive program for m and returns
// when the user quits or ctx is canceled.
func Run(ctx context.Context, m *Model, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	_, err := tea.NewProgram(m, opts...).Run()
	return err
}
