// Package listview implements the screen-list behaviors of listbind: hidden,
// highlighted and selected rows driven by per-row status codes, and an
// editable "current value" cursor on top of the selection.
//
// # Status Codes
//
// Each row carries a one-character status in a field addressed by a path:
//
//	"*"  selected
//	"+"  clicked into the selection (confirmed to "*" by a scan)
//	"-"  clicked out of the selection
//	">"  highlighted top row, selected (confirmed to "*" by a scan)
//	"<"  highlighted top row, not selected
//	"H"  hidden; a nil status is hidden too
//	" "  not selected; absent or unknown codes are rewritten to this
//
// # Selection
//
// MakeSelectable scans a list once, rewriting status codes in place and
// deriving the selected indexes and the top row:
//
//	list := listview.MakeSelectable(rows, path.New("status"))
//	list.Selection()          // first selected index, or -1
//	list.SelectIndices(0)     // select row 0, deselect everything else
//
// An in-place scan stops at the first hidden row: the view keeps only the
// rows before it, and later rows are dropped even when visible. Callers that
// want hidden rows filtered out instead use MakeSelectableFiltered or
// FromView with Filtered.
//
// Selection indexes are cached. SetSelections and the cursor refresh them;
// status writes made directly on items need an explicit Refresh.
//
// # Editable Cursor
//
// MakeEditable layers a single read/write value over the selection:
//
//	listview.MakeEditable(list, path.New("outer.name"), 10)
//	list.SetValue("Bob")      // select the row named Bob, or insert one
//	list.Value().String()     // "Bob"
//
// A value matching no row synthesizes a record. While the list holds fewer
// rows than its capacity, the record is appended as an ephemeral row (and to
// the paired source lists when the list came from a pairing.View). The next
// write rolls an ephemeral row back unless Commit confirmed it.
//
// # Thread Safety
//
// None. Lists mutate their items' status fields in place; callers serialize
// access.
package listview
