package picker

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/muurk/listbind/internal/listview"
	"github.com/muurk/listbind/internal/logging"
	"github.com/muurk/listbind/internal/ui"
)

// Model is an interactive picker over a screen list. Moving the cursor moves
// the list's top row; toggling and value entry go through the list's own
// selection and cursor operations, so every change lands in the items.
type Model struct {
	Title string

	list  *listview.List
	label func(item any) string

	cursor  int
	editing bool
	input   textinput.Model

	keys     keyMap
	editKeys editKeyMap
	help     help.Model

	saved    bool
	quitting bool
	width    int
}

// New creates a picker over list. label renders each row.
func New(title string, list *listview.List, label func(item any) string) Model {
	input := textinput.New()
	input.Placeholder = "value"
	input.CharLimit = 256
	input.Width = 40

	m := Model{
		Title:    title,
		list:     list,
		label:    label,
		input:    input,
		keys:     defaultKeys(),
		editKeys: defaultEditKeys(),
		help:     help.New(),
		width:    ui.GetTerminalWidth(),
	}

	switch {
	case list.Top() >= 0 && list.Top() < list.Len():
		m.cursor = list.Top()
	case len(list.Selections()) > 0:
		m.cursor = list.Selections()[0]
	}
	list.SetTop(m.cursor)
	return m
}

// Run shows the picker until the user saves or quits.
func Run(m Model, opts ...tea.ProgramOption) (Model, error) {
	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		return m, err
	}
	return final.(Model), nil
}

// Saved reports whether the user chose to save.
func (m Model) Saved() bool {
	return m.saved
}

// Cursor returns the highlighted row index.
func (m Model) Cursor() int {
	return m.cursor
}

// Editing reports whether the value input is open.
func (m Model) Editing() bool {
	return m.editing
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.help.Width = size.Width
		return m, nil
	}
	if m.editing {
		return m.updateEditor(msg)
	}
	return m.updateNormalMode(msg)
}

func (m Model) updateNormalMode(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Save):
		m.list.MarkTop()
		m.saved = true
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Up):
		m.move(-1)

	case key.Matches(keyMsg, m.keys.Down):
		m.move(1)

	case key.Matches(keyMsg, m.keys.Toggle):
		m.toggle()

	case key.Matches(keyMsg, m.keys.Edit):
		if m.list.Editable == nil {
			break
		}
		m.editing = true
		m.input.SetValue(m.list.Value().String())
		m.input.CursorEnd()
		return m, m.input.Focus()

	case key.Matches(keyMsg, m.keys.Commit):
		m.list.Commit()
	}

	return m, nil
}

func (m Model) updateEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.editKeys.Apply):
			m.editing = false
			m.input.Blur()
			m.apply(strings.TrimSpace(m.input.Value()))
			return m, nil

		case key.Matches(keyMsg, m.editKeys.Cancel):
			m.editing = false
			m.input.Blur()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// move shifts the cursor by delta, clamped to the visible rows
func (m *Model) move(delta int) {
	if m.list.Len() == 0 {
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), m.list.Len()-1)
	m.list.SetTop(m.cursor)
}

// toggle flips the row under the cursor. Outside multi mode, selecting a row
// deselects every other row.
func (m *Model) toggle() {
	item := m.list.At(m.cursor)
	if item == nil {
		return
	}
	on := !m.list.IsSelected(item)
	if m.list.Multi() || !on {
		m.list.SetSelected(item, on)
		m.list.Refresh()
	} else {
		m.list.SelectIndices(m.cursor)
	}

	logging.Debug("Toggled row",
		zap.Int("row", m.cursor),
		zap.Bool("selected", on),
		zap.Ints("selections", m.list.Selections()),
	)
}

// apply writes value through the editable cursor; empty clears it
func (m *Model) apply(value string) {
	if value == "" {
		m.list.SetValue(nil)
	} else {
		m.list.SetValue(value)
	}
	if eph := m.list.EphemeralItem(); eph != nil {
		m.cursor = m.list.IndexOf(eph)
	} else if sel := m.list.Selections(); len(sel) > 0 {
		m.cursor = sel[0]
	}
	m.cursor = min(max(m.cursor, 0), max(m.list.Len()-1, 0))
	m.list.SetTop(m.cursor)
}

// View implements tea.Model
func (m Model) View() string {
	if m.quitting || m.saved {
		return ""
	}

	rows := ui.RowsFromList(m.list, m.label)
	table := ui.NewRowTable(m.Title, rows).SetWidth(m.width).Render()

	var footer string
	if m.editing {
		footer = lipgloss.JoinVertical(lipgloss.Left,
			ui.HeaderCommandStyle.Render("New value:"),
			"  "+m.input.View(),
			"",
			"  "+m.help.View(m.editKeys),
		)
	} else {
		footer = "  " + m.help.View(m.keys)
	}

	return lipgloss.JoinVertical(lipgloss.Left, table, "", footer)
}
