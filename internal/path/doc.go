// Package path provides get/set access to nested mappings and sequences
// addressed by a property path.
//
// A path is an ordered list of segments. Each segment is either a key
// (addressing a map entry or a named field) or an index (addressing a
// sequence element). Accessors are built once and reused:
//
//	status := path.New("inner.status")
//	code := status.Get(record)      // nil when any step is missing
//	status.Set(record, "*")         // creates missing containers
//
// # Construction
//
// String arguments to New are split on "." and every fragment becomes a key.
// Integer arguments become a single index segment:
//
//	path.New("rows", 2, "name")     // Key(rows) Index(2) Key(name)
//
// Parse is the command-line form: it also splits on "." but treats
// all-digit fragments as indexes, so "rows.2.name" addresses the same field.
//
// # Containers
//
// The accessor understands map[string]any, []any and any value
// implementing Fields. Reads never panic: a nil or missing step short-circuits
// to nil. Writes create a []any when the following segment is an index and a
// map[string]any otherwise. Presence is tested by key or index existence, so
// existing falsy values (0, false, "") are kept.
//
// Writing through a container of the wrong shape (an index into a map is
// fine, a key into a sequence or anything into a scalar is not) is a caller
// bug and panics.
package path
