package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muurk/listbind/internal/listview"
	"github.com/muurk/listbind/internal/path"
)

var namePath = path.New("name")

func label(item any) string {
	return listview.Stringify(namePath.Get(item))
}

func people(statuses ...string) []any {
	names := []string{"Alice", "Bob", "Carol", "Dave"}
	items := make([]any, len(statuses))
	for i, s := range statuses {
		items[i] = map[string]any{"name": names[i], "s": s}
	}
	return items
}

func TestRowsFromList(t *testing.T) {
	list := listview.MakeSelectable(people("", "*", "<"), path.New("s"))

	rows := RowsFromList(list, label)

	require.Len(t, rows, 3)
	assert.Equal(t, Row{Index: 0, Status: " ", Label: "Alice"}, rows[0])
	assert.Equal(t, Row{Index: 1, Status: "*", Label: "Bob", Selected: true}, rows[1])
	assert.Equal(t, Row{Index: 2, Status: " ", Label: "Carol", Top: true}, rows[2])
}

func TestRowsFromListOmitsHiddenRows(t *testing.T) {
	list := listview.MakeSelectableFiltered(people("*", "H", ""), path.New("s"))

	rows := RowsFromList(list, label)

	require.Len(t, rows, 2)
	assert.Equal(t, "Alice", rows[0].Label)
	assert.Equal(t, "Carol", rows[1].Label)
	assert.Equal(t, 1, rows[1].Index)
}

func TestRowsFromListMarksEphemeralRow(t *testing.T) {
	list := listview.MakeSelectable(people("*"), path.New("s"))
	listview.MakeEditable(list, namePath, 5)

	list.SetValue("Zed")
	rows := RowsFromList(list, label)

	require.Len(t, rows, 2)
	assert.False(t, rows[0].Ephemeral)
	assert.True(t, rows[1].Ephemeral)
	assert.True(t, rows[1].Selected)
	assert.Equal(t, "Zed", rows[1].Label)
}

func TestRowTableRender(t *testing.T) {
	rows := []Row{
		{Index: 0, Status: " ", Label: "Alice"},
		{Index: 1, Status: "*", Label: "Bob", Selected: true, Top: true},
	}

	out := NewRowTable("people.yaml", rows).SetWidth(80).Render()

	assert.Contains(t, out, "people.yaml")
	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "Bob")
	assert.Contains(t, out, `"*"`)
	assert.Contains(t, out, TopMarker+SelectedMarker)
}

func TestRowTableRenderEmpty(t *testing.T) {
	out := NewRowTable("empty.yaml", nil).SetWidth(80).String()
	assert.Contains(t, out, "(no visible rows)")
}

func TestRenderCompact(t *testing.T) {
	rows := []Row{
		{Index: 0, Label: "Alice"},
		{Index: 1, Label: "Bob", Selected: true},
		{Index: 2, Label: "Zed", Ephemeral: true, Top: true},
	}

	want := strings.Join([]string{
		"  0    Alice",
		"  1  ✓ Bob",
		"  2 ▸+ Zed",
		"",
	}, "\n")
	assert.Equal(t, want, RenderCompact(rows))
}

func TestHeaderRender(t *testing.T) {
	out := NewHeader("people.yaml", "listbind show people.yaml",
		Param{Key: "Status path", Value: "inner.status"},
		Param{Key: "Mode", Value: "in-place"},
	).SetWidth(80).Render()

	assert.Contains(t, out, "PEOPLE.YAML")
	assert.Contains(t, out, "listbind show people.yaml")
	assert.Contains(t, out, "inner.status")
	assert.Less(t, strings.Index(out, "Status path"), strings.Index(out, "Mode"))
}

func TestResultRender(t *testing.T) {
	success := NewSuccessResult("Selection saved", Param{Key: "Rows", Value: "3"}).SetWidth(80).Render()
	assert.Contains(t, success, "SUCCESS")
	assert.Contains(t, success, "Selection saved")
	assert.Contains(t, success, "Rows:")

	failure := NewFailureResult("Load failed", errors.New("no such file"), []string{"Check the path"}).
		SetWidth(80).Render()
	assert.Contains(t, failure, "FAILED")
	assert.Contains(t, failure, "no such file")
	assert.Contains(t, failure, "Troubleshooting:")
	assert.Contains(t, failure, "Check the path")

	warning := NewWarningResult("Row not inserted").AddDetail("Capacity", "0").SetWidth(80).Render()
	assert.Contains(t, warning, "WARNING")
	assert.Contains(t, warning, "Capacity:")
}

func TestClampWidth(t *testing.T) {
	assert.Equal(t, MinTerminalWidth, clampWidth(10))
	assert.Equal(t, MaxContentWidth, clampWidth(500))
	assert.Equal(t, 80, clampWidth(80))
}
