// Package screen stores screen lists as YAML documents and binds them to
// live listview lists.
//
// # Document Format
//
//	version: 1
//	status_path: inner.status
//	value_path: outer.name
//	capacity: 5
//	multi: false
//	filtered: false
//	outer:
//	  - {name: Alice}
//	  - {name: Bob}
//	inner:
//	  - {status: "*"}
//
// outer holds the data rows and inner the per-row screen state. Paths are
// dotted; all-digit fragments index into sequences. An inner list shorter
// than outer is padded with empty rows when bound.
//
// # Usage Example
//
//	doc, err := screen.Load("people.yaml")
//	if err != nil {
//	    return err
//	}
//	binding, err := doc.Bind()
//	if err != nil {
//	    return err
//	}
//	if err := binding.Select(1); err != nil {
//	    return err
//	}
//	binding.Sync()
//	return doc.Save("people.yaml")
//
// # Errors
//
// All errors are *DocumentError values. Validate combines every problem it
// finds with multierr; ValidationErrors splits them apart again.
//
// # Thread Safety
//
// Save serializes writes within the process and replaces the file atomically.
// Documents and bindings are not safe for concurrent use.
package screen
