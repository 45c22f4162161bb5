package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/listbind/internal/listview"
	"github.com/muurk/listbind/internal/pairing"
)

// Row is one visible screen-list row prepared for display.
type Row struct {
	Index     int
	Status    string
	Label     string
	Selected  bool
	Top       bool
	Ephemeral bool
}

// RowsFromList snapshots the visible rows of l. label renders each item;
// hidden rows are never part of l.Items, so they never appear.
func RowsFromList(l *listview.List, label func(item any) string) []Row {
	ephemeral := l.EphemeralItem()
	top := l.Top()

	rows := make([]Row, 0, l.Len())
	for i, item := range l.Items {
		status := l.StatusOf(item)
		rows = append(rows, Row{
			Index:     i,
			Status:    string(status),
			Label:     label(item),
			Selected:  status.IsSelected(),
			Top:       i == top,
			Ephemeral: ephemeral != nil && pairing.Same(ephemeral, item),
		})
	}
	return rows
}

func (r Row) marker() string {
	switch {
	case r.Selected:
		return SelectedMarker
	case r.Ephemeral:
		return EphemeralMarker
	default:
		return " "
	}
}

func (r Row) style() lipgloss.Style {
	var style lipgloss.Style
	switch {
	case r.Ephemeral:
		style = EphemeralRowStyle
	case r.Selected:
		style = SelectedRowStyle
	default:
		style = RowStyle
	}
	if r.Top {
		style = style.Inherit(TopRowStyle)
	}
	return style
}

// RowTable renders rows in a bordered box
type RowTable struct {
	Title string
	Rows  []Row
	Width int
}

// NewRowTable creates a table sized to the terminal
func NewRowTable(title string, rows []Row) *RowTable {
	return &RowTable{
		Title: title,
		Rows:  rows,
		Width: GetTerminalWidth(),
	}
}

// SetWidth sets the terminal width for responsive rendering
func (t *RowTable) SetWidth(width int) *RowTable {
	t.Width = width
	return t
}

// Render returns the styled table as a string
func (t *RowTable) Render() string {
	width := clampWidth(t.Width)

	lines := []string{HeaderTitleStyle.Render(t.Title), ""}
	if len(t.Rows) == 0 {
		lines = append(lines, HeaderCommandStyle.Render("(no visible rows)"))
	}

	for _, r := range t.Rows {
		top := " "
		if r.Top {
			top = TopMarker
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			IndexStyle.Render(fmt.Sprintf("%d", r.Index)),
			"  ",
			StatusCodeStyle.Render(fmt.Sprintf("%q", r.Status)),
			" ",
			top,
			r.marker(),
			" ",
			r.style().Render(r.Label),
		))
	}

	return BoxStyle(width, MutedColor).Render(strings.Join(lines, "\n"))
}

// String implements fmt.Stringer
func (t *RowTable) String() string {
	return t.Render()
}

// RenderCompact renders one unstyled line per row, suitable for piping.
func RenderCompact(rows []Row) string {
	var b strings.Builder
	for _, r := range rows {
		top := " "
		if r.Top {
			top = TopMarker
		}
		fmt.Fprintf(&b, "%3d %s%s %s\n", r.Index, top, r.marker(), r.Label)
	}
	return b.String()
}
