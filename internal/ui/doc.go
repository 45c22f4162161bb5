// Package ui renders listbind CLI output with Lipgloss.
//
// Output follows a "run once and exit" pattern: commands print a Header
// describing the document, a RowTable of the visible rows, and a Result box
// on success or failure.
//
// # Rows
//
// RowsFromList snapshots a listview.List for display. Each Row keeps its
// visible index and raw status code and is flagged as selected, top or
// ephemeral:
//
//	rows := ui.RowsFromList(list, label)
//	fmt.Println(ui.NewRowTable("people.yaml", rows).Render())
//
// Selected rows carry a check mark, the top row a ▸ marker, and a row the
// cursor inserted without a commit a + marker. RenderCompact prints the same
// markers without styling.
//
// # Logging Integration
//
// zap logging is controlled via the LISTBIND_LOG_LEVEL environment variable
// and writes to stderr, so it never interleaves with rendered output.
package ui
