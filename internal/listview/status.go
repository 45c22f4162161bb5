package listview

import (
	"github.com/muurk/listbind/internal/path"
)

// Status is the single-character row marker stored on each item.
type Status string

const (
	// StatusSelected marks a confirmed selection
	StatusSelected Status = "*"
	// StatusClicked marks a row clicked into the selection; a scan confirms it to StatusSelected
	StatusClicked Status = "+"
	// StatusUnclicked marks a row clicked out of the selection
	StatusUnclicked Status = "-"
	// StatusTopSelected marks the highlighted top row, selected
	StatusTopSelected Status = ">"
	// StatusTop marks the highlighted top row, not selected
	StatusTop Status = "<"
	// StatusHidden marks a row excluded from the view
	StatusHidden Status = "H"
	// StatusBlank is written by a scan to every unselected visible row
	StatusBlank Status = " "
	// StatusNone is written when a row is deselected
	StatusNone Status = ""
)

// IsSelected reports whether the status counts as selected.
func (s Status) IsSelected() bool {
	return s == StatusSelected || s == StatusClicked || s == StatusTopSelected
}

// String implements fmt.Stringer
func (s Status) String() string {
	return string(s)
}

// readStatus returns the status of item and whether the row is hidden.
// A present field holding nil is hidden; an absent field is not.
func readStatus(item any, status path.Accessor) (Status, bool) {
	code, present := status.Lookup(item)
	if present && code == nil {
		return StatusNone, true
	}
	s, _ := code.(string)
	st := Status(s)
	return st, st == StatusHidden
}

// StatusOf returns the status stored on item, or StatusNone when the field is
// absent or not a string.
func StatusOf(item any, status path.Accessor) Status {
	st, _ := readStatus(item, status)
	return st
}

// SelectedOnly returns the items whose status is selected, clicked or
// top-selected, in their original order. It attaches no selection state.
func SelectedOnly(items []any, status path.Accessor) []any {
	var out []any
	for _, item := range items {
		if StatusOf(item, status).IsSelected() {
			out = append(out, item)
		}
	}
	return out
}

// Recompute returns the indexes of the selected items. It is a pure function
// of the items' current status fields.
func Recompute(items []any, status path.Accessor) []int {
	var sel []int
	for i, item := range items {
		if StatusOf(item, status).IsSelected() {
			sel = append(sel, i)
		}
	}
	return sel
}
