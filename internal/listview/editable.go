package listview

import (
	"slices"

	"github.com/muurk/listbind/internal/logging"
	"github.com/muurk/listbind/internal/pairing"
	"github.com/muurk/listbind/internal/path"
)

// EditableState is the value cursor of an editable List.
type EditableState struct {
	value    path.Accessor
	capacity int
	current  *Value

	// NewItem creates the record synthesized for a value that matches no
	// row. Nil means a pairing.Record for paired lists and a map otherwise.
	NewItem func() any
}

// ValuePath returns the accessor addressing each item's value field.
func (e *EditableState) ValuePath() path.Accessor {
	return e.value
}

// Capacity returns the row count below which the cursor may insert rows.
func (e *EditableState) Capacity() int {
	return e.capacity
}

// MakeEditable adds a value cursor to l bound to the field at value. The
// cursor may append rows while the list holds fewer than capacity rows;
// capacity <= 0 never allows an insert. A list that is already editable is
// returned unchanged.
func MakeEditable(l *List, value path.Accessor, capacity int) *List {
	if l.Editable != nil {
		return l
	}
	l.state()
	l.Editable = &EditableState{value: value, capacity: capacity}
	return l
}

// Value returns the cursor's bound record: the row at the current selection,
// or a synthesized record that was selected without being inserted. Reading
// collapses a multi-selection like Selection does.
func (l *List) Value() *Value {
	ed := l.Editable
	if ed == nil {
		return nil
	}

	if idx := l.Selection(); idx >= 0 && idx < len(l.Items) {
		item := l.Items[idx]
		if ed.current == nil || !pairing.Same(ed.current.Item, item) {
			ed.current = &Value{Item: item, field: ed.value}
		}
		return ed.current
	}

	// a synthesized record outside the rows stays bound until replaced
	if ed.current != nil && l.IndexOf(ed.current.Item) < 0 && l.IsSelected(ed.current.Item) {
		return ed.current
	}
	ed.current = nil
	return nil
}

// SetValue moves the cursor to v.
//
// Objects (maps, pointers, *Value) select that record. Other values select
// the first row whose value field renders equal to v; when none does, a new
// record carrying v is synthesized and selected, and inserted into the rows
// while capacity allows. The previous binding is released first: an
// ephemeral row is rolled back, any other row is deselected. Nil clears the
// cursor.
func (l *List) SetValue(v any) {
	ed := l.Editable
	if ed == nil {
		return
	}
	if pv, ok := v.(*Value); ok {
		if pv == nil {
			v = nil
		} else {
			v = pv.Item
		}
	}

	prev := ed.current
	cur := l.Value()
	if prev != nil && prev.Ephemeral && (cur == nil || !pairing.Same(prev.Item, cur.Item)) {
		// the selection moved off the inserted row; it is still rolled back
		l.release(prev)
		l.Refresh()
	}
	if l.matches(cur, v) {
		return
	}

	if cur != nil {
		l.release(cur)
	}
	ed.current = nil

	if v == nil {
		l.Refresh()
		logging.LogCursorWrite("clear", "", len(l.Items))
		return
	}

	item, found := l.find(v)
	ephemeral := false
	if !found {
		item = l.newItem()
		ed.value.Set(item, v)
		if !isFalsy(v) && len(l.Items) < ed.capacity {
			ephemeral = true
			l.appendRow(item)
			logging.LogCursorWrite("insert", Stringify(v), len(l.Items))
		} else {
			logging.LogCursorWrite("detached", Stringify(v), len(l.Items))
		}
	}

	l.SetSelected(item, true)
	ed.current = &Value{Item: item, Ephemeral: ephemeral, field: ed.value}
	l.Refresh()
}

// Commit confirms an ephemeral row, so the next write deselects it instead of
// rolling it back.
func (l *List) Commit() {
	if l.Editable == nil || l.Editable.current == nil {
		return
	}
	l.Editable.current.Ephemeral = false
}

func (l *List) matches(cur *Value, v any) bool {
	if cur == nil || v == nil {
		return cur == nil && v == nil
	}
	if isObject(v) {
		return pairing.Same(cur.Item, v)
	}
	return Stringify(v) == cur.String()
}

// release unbinds cur: ephemeral rows are removed, others deselected.
func (l *List) release(cur *Value) {
	if !cur.Ephemeral {
		l.SetSelected(cur.Item, false)
		return
	}

	n := len(l.Items)
	if n == 0 || !pairing.Same(l.Items[n-1], cur.Item) {
		// rows were appended behind the cursor; fall back to deselecting
		l.SetSelected(cur.Item, false)
		return
	}

	l.Items = l.Items[:n-1]
	if l.view != nil && pairing.Same(l.view.At(l.view.Len()-1), cur.Item) {
		l.view.RemoveLast()
	}
	logging.LogCursorWrite("rollback", cur.String(), len(l.Items))
}

func (l *List) find(v any) (any, bool) {
	if isObject(v) {
		return v, true
	}
	want := Stringify(v)
	field := l.Editable.value
	for _, item := range l.Items {
		if Stringify(field.Get(item)) == want {
			return item, true
		}
	}
	return nil, false
}

func (l *List) newItem() any {
	if l.Editable.NewItem != nil {
		return l.Editable.NewItem()
	}
	if l.view != nil {
		return pairing.NewRecord()
	}
	return map[string]any{}
}

func (l *List) appendRow(item any) {
	// an in-place list may share the caller's backing array
	l.Items = append(slices.Clip(l.Items), item)
	if rec, ok := item.(*pairing.Record); ok && l.view != nil {
		l.view.Append(rec)
	}
}

// EphemeralItem returns the row the cursor inserted and has not committed,
// or nil. Unlike Value it leaves a multi-selection alone.
func (l *List) EphemeralItem() any {
	ed := l.Editable
	if ed == nil || ed.current == nil || !ed.current.Ephemeral {
		return nil
	}
	return ed.current.Item
}
