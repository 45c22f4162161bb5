package listview

import (
	"go.uber.org/zap"

	"github.com/muurk/listbind/internal/logging"
	"github.com/muurk/listbind/internal/pairing"
	"github.com/muurk/listbind/internal/path"
)

// MakeSelectable scans items in place and returns a selectable list.
//
// Status codes are normalized while scanning: "+" and ">" become "*", and
// every unselected visible row is rewritten to " ". The first hidden row
// ("H" or a nil status) truncates the view to the rows before it.
func MakeSelectable(items []any, status path.Accessor) *List {
	return scan(items, status, InPlace)
}

// MakeSelectableFiltered scans items into a copy that skips hidden rows and
// keeps every other row.
func MakeSelectableFiltered(items []any, status path.Accessor) *List {
	return scan(items, status, Filtered)
}

// FromView builds a selectable list over the records of a paired view. The
// view is remembered so an editable cursor can insert and roll back rows in
// the source lists.
func FromView(v *pairing.View, status path.Accessor, mode Mode) *List {
	l := scan(v.Items(), status, mode)
	l.view = v
	return l
}

func scan(items []any, status path.Accessor, mode Mode) *List {
	st := &SelectionState{status: status, top: -1}

	out := items
	copied := mode == Filtered
	if copied {
		out = make([]any, 0, len(items))
	}

	row := 0
	for i := 0; i < len(items); i++ {
		item := items[i]
		code, hidden := readStatus(item, status)
		if hidden {
			if !copied {
				// the in-place view ends at the first hidden row
				out = items[:i:i]
				logging.Debug("Hidden row truncates in-place view",
					zap.Int("index", i),
					zap.Int("dropped", len(items)-i),
				)
				break
			}
			continue
		}

		switch code {
		case StatusTopSelected:
			st.top = row
			fallthrough
		case StatusClicked:
			status.Set(item, string(StatusSelected))
			fallthrough
		case StatusSelected:
			st.selections = append(st.selections, row)
			if copied {
				out = append(out, item)
			}
		case StatusTop:
			st.top = row
			fallthrough
		default:
			status.Set(item, string(StatusBlank))
			if copied {
				out = append(out, item)
			}
		}
		row++
	}

	logging.LogSelectionScan(status.String(), len(items), len(out), st.selections, st.top)

	return &List{Items: out, State: st}
}

// IsSelected reports whether item's status is "*", "+" or ">".
func (l *List) IsSelected(item any) bool {
	return StatusOf(item, l.state().status).IsSelected()
}

// StatusOf returns item's current status.
func (l *List) StatusOf(item any) Status {
	return StatusOf(item, l.state().status)
}

// SetSelected writes "*" when on is true and "" otherwise. The cached
// selection indexes are not touched; call Refresh or SetSelections.
func (l *List) SetSelected(item any, on bool) {
	if on {
		l.SetStatus(item, StatusSelected)
		return
	}
	l.SetStatus(item, StatusNone)
}

// SetStatus writes an explicit status on item.
func (l *List) SetStatus(item any, s Status) {
	l.state().status.Set(item, string(s))
}

// Multi reports whether SetSelections honors more than one entry.
func (l *List) Multi() bool {
	return l.state().multi
}

// SetMulti switches multi-selection on or off.
func (l *List) SetMulti(on bool) {
	l.state().multi = on
}

// Selection returns the first selected index, or -1. When several rows are
// selected, reading collapses the selection to the first one and deselects
// the rest.
func (l *List) Selection() int {
	st := l.state()
	if len(st.selections) == 0 {
		return -1
	}
	if len(st.selections) > 1 {
		first := st.selections[0]
		l.SetSelections(Choice{Index: first, Status: l.StatusOf(l.At(first))})
	}
	if len(st.selections) == 0 {
		return -1
	}
	return st.selections[0]
}

// Selections returns the cached selected indexes.
func (l *List) Selections() []int {
	sel := l.state().selections
	out := make([]int, len(sel))
	copy(out, sel)
	return out
}

// SetSelections applies choices and deselects every row not named. Outside
// multi mode only the first choice is honored. The cached indexes are then
// recomputed from the rows actually marked selected.
func (l *List) SetSelections(choices ...Choice) {
	st := l.state()
	if !st.multi && len(choices) > 1 {
		choices = choices[:1]
	}

	marks := make(map[int]Status, len(choices))
	for _, c := range choices {
		marks[c.Index] = c.mark()
	}

	for i, item := range l.Items {
		if m, ok := marks[i]; ok {
			l.SetStatus(item, m)
			continue
		}
		l.SetSelected(item, false)
	}

	l.Refresh()
}

// SelectIndices selects rows by visible index.
func (l *List) SelectIndices(indexes ...int) {
	choices := make([]Choice, len(indexes))
	for i, idx := range indexes {
		choices[i] = Choice{Index: idx}
	}
	l.SetSelections(choices...)
}

// SelectItems selects rows by reference. Items not in the list are ignored.
func (l *List) SelectItems(items ...any) {
	var choices []Choice
	for _, item := range items {
		if idx := l.IndexOf(item); idx >= 0 {
			choices = append(choices, Choice{Index: idx})
		}
	}
	l.SetSelections(choices...)
}

// Refresh recomputes the cached selection indexes from the items.
func (l *List) Refresh() {
	st := l.state()
	st.selections = Recompute(l.Items, st.status)
}

// Top returns the highlighted top row, or -1.
func (l *List) Top() int {
	return l.state().top
}

// SetTop sets the highlighted top row; -1 clears it.
func (l *List) SetTop(row int) {
	l.state().top = row
}

// MarkTop writes the highlight code onto the top row: StatusTopSelected
// when the row is selected, StatusTop otherwise. The next scan restores the
// highlight from it.
func (l *List) MarkTop() {
	top := l.Top()
	if top < 0 || top >= len(l.Items) {
		return
	}
	item := l.Items[top]
	if l.IsSelected(item) {
		l.SetStatus(item, StatusTopSelected)
		return
	}
	l.SetStatus(item, StatusTop)
}

// Selected returns the selected items in display order.
func (l *List) Selected() []any {
	return SelectedOnly(l.Items, l.state().status)
}
