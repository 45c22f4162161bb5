package listview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muurk/listbind/internal/pairing"
	"github.com/muurk/listbind/internal/path"
)

var (
	innerStatus = path.New("inner.status")
	outerValue  = path.New("outer.value")
)

// pairedList builds an editable list over outer rows with the given values
// and inner rows with the given statuses.
func pairedList(t *testing.T, values []string, stats []string, capacity int) (*List, *pairing.Source) {
	t.Helper()
	outer := make([]any, len(values))
	for i, v := range values {
		outer[i] = map[string]any{"value": v}
	}
	inner := make([]any, len(stats))
	for i, s := range stats {
		inner[i] = map[string]any{"status": s}
	}
	src := pairing.NewSource(outer, inner)
	list := FromView(src.Pair(), innerStatus, InPlace)
	return MakeEditable(list, outerValue, capacity), src
}

func TestMakeEditableIsIdempotent(t *testing.T) {
	list, _ := pairedList(t, []string{"a"}, []string{""}, 5)
	state := list.Editable

	again := MakeEditable(list, path.New("other"), 1)

	assert.Same(t, list, again)
	assert.Same(t, state, again.Editable)
	assert.Equal(t, "outer.value", again.Editable.ValuePath().String())
	assert.Equal(t, 5, again.Editable.Capacity())
	assert.NotNil(t, again.State)
}

func TestValueReadsCurrentSelection(t *testing.T) {
	list, _ := pairedList(t, []string{"a", "b"}, []string{"", "*"}, 5)

	v := list.Value()
	require.NotNil(t, v)
	assert.Equal(t, "b", v.String())
	assert.False(t, v.Ephemeral)
	assert.Same(t, v, list.Value())
}

func TestValueNilWithoutSelection(t *testing.T) {
	list, _ := pairedList(t, []string{"a"}, []string{""}, 5)
	assert.Nil(t, list.Value())
	assert.Equal(t, "", list.Value().String())
}

func TestSetValueSameValueIsNoop(t *testing.T) {
	list, _ := pairedList(t, []string{"a", "b"}, []string{"", "*"}, 5)
	item := list.Items[1]

	list.SetValue("b")
	assert.Equal(t, "*", innerStatus.Get(item))
	assert.Equal(t, []int{1}, list.Selections())

	list.SetValue(item)
	assert.Equal(t, "*", innerStatus.Get(item))

	list.SetValue(list.Value())
	assert.Equal(t, "*", innerStatus.Get(item))
}

func TestSetValueSelectsExistingRow(t *testing.T) {
	list, src := pairedList(t, []string{"a", "b", "c"}, []string{"", "*", ""}, 5)

	list.SetValue("c")

	assert.Equal(t, "", innerStatus.Get(list.Items[1]))
	assert.Equal(t, "*", innerStatus.Get(list.Items[2]))
	assert.Equal(t, 2, list.Selection())
	assert.Equal(t, "c", list.Value().String())
	assert.Len(t, src.Outer(), 3)
}

func TestSetValueInsertsEphemeralRow(t *testing.T) {
	list, src := pairedList(t, []string{"a", "b"}, []string{"", "*"}, 5)

	list.SetValue("new")

	require.Len(t, list.Items, 3)
	require.Len(t, src.Outer(), 3)
	require.Len(t, src.Inner(), 3)

	inserted := list.Items[2]
	assert.Equal(t, "new", outerValue.Get(inserted))
	assert.Equal(t, "*", innerStatus.Get(inserted))
	assert.Equal(t, "new", path.New("value").Get(src.Outer()[2]))
	assert.Equal(t, "", innerStatus.Get(list.Items[1]))

	v := list.Value()
	require.NotNil(t, v)
	assert.True(t, v.Ephemeral)
	assert.Equal(t, "new", v.String())
	assert.Equal(t, 2, list.Selection())
}

func TestSetValueRollsBackEphemeralRow(t *testing.T) {
	list, src := pairedList(t, []string{"a", "b"}, []string{"", "*"}, 5)

	list.SetValue("first")
	list.SetValue("second")

	// one ephemeral row at a time: "first" was rolled back
	require.Len(t, list.Items, 3)
	require.Len(t, src.Outer(), 3)
	assert.Equal(t, "second", outerValue.Get(list.Items[2]))
	assert.True(t, list.Value().Ephemeral)

	list.SetValue("a")

	assert.Len(t, list.Items, 2)
	assert.Len(t, src.Outer(), 2)
	assert.Len(t, src.Inner(), 2)
	assert.Equal(t, 0, list.Selection())
	assert.False(t, list.Value().Ephemeral)
}

func TestSetValueRollsBackInsertAfterSelectionMoves(t *testing.T) {
	list, src := pairedList(t, []string{"a", "b"}, []string{"*", " "}, 5)

	list.SetValue("new")
	require.Len(t, src.Outer(), 3)
	require.NotNil(t, list.EphemeralItem())

	list.SelectIndices(0)
	list.SetValue("other")

	require.Len(t, list.Items, 3)
	require.Len(t, src.Outer(), 3)
	require.Len(t, src.Inner(), 3)
	assert.Equal(t, "other", outerValue.Get(list.Items[2]))
	assert.Equal(t, "*", innerStatus.Get(list.Items[2]))
	assert.Equal(t, "", innerStatus.Get(list.Items[0]))
	assert.Equal(t, []int{2}, list.Selections())
	assert.Same(t, list.Items[2], list.EphemeralItem())
}

func TestSetValueRollsBackDeselectedInsert(t *testing.T) {
	list, src := pairedList(t, []string{"a"}, []string{""}, 5)

	list.SetValue("new")
	inserted := list.EphemeralItem()
	require.NotNil(t, inserted)

	list.SetSelected(inserted, false)
	list.Refresh()
	list.SetValue("a")

	assert.Len(t, list.Items, 1)
	assert.Len(t, src.Outer(), 1)
	assert.Len(t, src.Inner(), 1)
	assert.Equal(t, 0, list.Selection())
	assert.Nil(t, list.EphemeralItem())
}

func TestCommitKeepsInsertedRow(t *testing.T) {
	list, src := pairedList(t, []string{"a"}, []string{""}, 5)

	list.SetValue("kept")
	list.Commit()
	list.SetValue("a")

	require.Len(t, list.Items, 2)
	assert.Len(t, src.Outer(), 2)
	assert.Equal(t, "", innerStatus.Get(list.Items[1]))
	assert.Equal(t, 0, list.Selection())
}

func TestSetValueAtCapacityDoesNotPersist(t *testing.T) {
	list, src := pairedList(t, []string{"a", "b"}, []string{"*", ""}, 2)

	list.SetValue("overflow")

	assert.Len(t, list.Items, 2)
	assert.Len(t, src.Outer(), 2)
	assert.Equal(t, "", innerStatus.Get(list.Items[0]))

	v := list.Value()
	require.NotNil(t, v)
	assert.False(t, v.Ephemeral)
	assert.Equal(t, "overflow", v.String())
	assert.Equal(t, "*", innerStatus.Get(v.Item))
	assert.Equal(t, -1, list.Selection())
}

func TestSetValueWithoutCapacityNeverInserts(t *testing.T) {
	list, src := pairedList(t, []string{"a"}, []string{""}, 0)

	list.SetValue("x")

	assert.Len(t, list.Items, 1)
	assert.Len(t, src.Outer(), 1)
	assert.Equal(t, "x", list.Value().String())
}

func TestSetValueNilClearsSelection(t *testing.T) {
	list, _ := pairedList(t, []string{"a", "b"}, []string{"", "*"}, 5)
	item := list.Items[1]

	list.SetValue(nil)

	assert.Equal(t, "", innerStatus.Get(item))
	assert.Nil(t, list.Value())
	assert.Equal(t, -1, list.Selection())
}

func TestSetValueObjectSelectsRecord(t *testing.T) {
	list, _ := pairedList(t, []string{"a", "b"}, []string{"*", ""}, 5)
	target := list.Items[1]

	list.SetValue(target)

	assert.Equal(t, 1, list.Selection())
	assert.Equal(t, "", innerStatus.Get(list.Items[0]))
	assert.Equal(t, "b", list.Value().String())
}

func TestSetValueMatchesByStringForm(t *testing.T) {
	items := []any{
		map[string]any{"n": 1, "s": ""},
		map[string]any{"n": 2.5, "s": ""},
	}
	list := MakeEditable(MakeSelectable(items, statusPath), path.New("n"), 0)

	list.SetValue("2.5")
	assert.Equal(t, 1, list.Selection())

	list.SetValue(1)
	assert.Equal(t, 0, list.Selection())
}

func TestSetValuePlainListInsertAndRollback(t *testing.T) {
	items := []any{map[string]any{"name": "a", "s": "*"}}
	list := MakeEditable(MakeSelectable(items, statusPath), path.New("name"), 3)

	list.SetValue("b")
	require.Len(t, list.Items, 2)
	assert.IsType(t, map[string]any{}, list.Items[1])
	assert.Equal(t, "*", statusPath.Get(list.Items[1]))

	list.SetValue(nil)
	assert.Len(t, list.Items, 1)
	assert.Equal(t, "", statusPath.Get(items[0]))
}

func TestSetValuePlainListLeavesCallerArrayAlone(t *testing.T) {
	backing := make([]any, 2, 4)
	backing[0] = map[string]any{"value": "a", "s": "*"}
	backing[1] = map[string]any{"value": "b", "s": ""}

	list := MakeEditable(MakeSelectable(backing, path.New("s")), path.New("value"), 5)
	list.SetValue("new")

	require.Len(t, list.Items, 3)
	assert.Nil(t, backing[:3][2])
}

func TestSetValueCustomNewItem(t *testing.T) {
	items := []any{map[string]any{"name": "a", "s": ""}}
	list := MakeEditable(MakeSelectable(items, statusPath), path.New("name"), 3)
	list.Editable.NewItem = func() any {
		return map[string]any{"origin": "cursor"}
	}

	list.SetValue("b")

	require.Len(t, list.Items, 2)
	assert.Equal(t, "cursor", path.New("origin").Get(list.Items[1]))
}

func TestSetValueOnNonEditableListIsNoop(t *testing.T) {
	items := rows("*")
	list := MakeSelectable(items, statusPath)

	list.SetValue("x")

	assert.Nil(t, list.Value())
	assert.Len(t, list.Items, 1)
}

func TestStringify(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{"nil", nil, ""},
		{"false", false, ""},
		{"true", true, "true"},
		{"zero int", 0, ""},
		{"int", 42, "42"},
		{"zero float", 0.0, ""},
		{"float", 2.5, "2.5"},
		{"empty string", "", ""},
		{"string", "abc", "abc"},
		{"string zero", "0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Stringify(tt.input))
		})
	}
}
