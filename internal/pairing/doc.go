// Package pairing combines two parallel lists into one list of paired records
// while keeping record identity stable across repeated pairings.
//
// Screen lists are usually backed by two lists of equal meaning but separate
// origin: the "outer" list carries the business rows and the "inner" list
// carries per-row UI state (status codes, flags). Pairing zips them by
// position:
//
//	src := pairing.NewSource(outer, inner)
//	view := src.Pair()
//	view.At(0).Outer   // outer[0]
//	view.At(0).Inner   // inner[0], or an empty map when inner is short
//
// # Identity
//
// Downstream layers (selection, the editable cursor) key their state by
// record identity. A Source remembers the last View it produced; pairing again
// reuses a record whenever its Outer and Inner are still the same references
// at the same index. Reference identity is defined by Same.
//
// The view length always follows the outer list. Inner elements past the end
// of outer are kept in the source but not represented in the view.
//
// # Mutation
//
// View.Append and View.RemoveLast grow and shrink the source lists together
// with the view. This is how the editable cursor inserts and rolls back rows.
// Because Go slices are values, callers read the current lists back through
// Source.Outer and Source.Inner.
//
// # Thread Safety
//
// None. Sources and views are mutated in place and must be serialized by the
// caller.
package pairing
