package listview

import (
	"github.com/muurk/listbind/internal/pairing"
	"github.com/muurk/listbind/internal/path"
)

// Mode selects how a scan treats hidden rows.
type Mode int

const (
	// InPlace scans the original list. The first hidden row truncates the
	// view to the rows before it; later rows are dropped even when visible.
	InPlace Mode = iota
	// Filtered scans into a copy. Hidden rows are skipped and every other
	// row is kept.
	Filtered
)

// String returns a human-readable name for the mode
func (m Mode) String() string {
	switch m {
	case InPlace:
		return "in-place"
	case Filtered:
		return "filtered"
	default:
		return "unknown"
	}
}

// List is a screen list: the visible items plus optional selection and
// editing capabilities. Editable is only ever set together with State.
type List struct {
	// Items are the visible rows, in display order
	Items []any

	// State holds the derived selection state
	State *SelectionState

	// Editable holds the value cursor, when MakeEditable was applied
	Editable *EditableState

	// view is the paired view the items came from, if any
	view *pairing.View
}

// SelectionState is the derived, non-persistent selection state of a List.
type SelectionState struct {
	status     path.Accessor
	selections []int
	top        int
	multi      bool
}

// StatusPath returns the accessor addressing each item's status field.
func (s *SelectionState) StatusPath() path.Accessor {
	return s.status
}

// Choice is one entry handed to SetSelections. A zero Status selects the
// row with StatusSelected; any other Status is written verbatim.
type Choice struct {
	Index  int
	Status Status
}

func (c Choice) mark() Status {
	if c.Status == StatusNone {
		return StatusSelected
	}
	return c.Status
}

// Len returns the number of visible rows.
func (l *List) Len() int {
	return len(l.Items)
}

// At returns the visible row at index i, or nil when out of range.
func (l *List) At(i int) any {
	if i < 0 || i >= len(l.Items) {
		return nil
	}
	return l.Items[i]
}

// View returns the paired view the list was built from, or nil.
func (l *List) View() *pairing.View {
	return l.view
}

// IndexOf returns the visible index of item by reference, or -1.
func (l *List) IndexOf(item any) int {
	for i, it := range l.Items {
		if pairing.Same(it, item) {
			return i
		}
	}
	return -1
}

func (l *List) state() *SelectionState {
	if l.State == nil {
		// a bare List has no status field; every row reads as unselected
		l.State = &SelectionState{top: -1}
	}
	return l.State
}
