package pairing

import (
	"slices"

	"go.uber.org/zap"

	"github.com/muurk/listbind/internal/logging"
)

// View is the paired output of a Source.
type View struct {
	records []*Record
	source  *Source
}

// Len returns the number of paired records. It always equals the length of
// the outer list at pairing time plus any rows appended since.
func (v *View) Len() int {
	return len(v.records)
}

// At returns the record at index i, or nil when out of range.
func (v *View) At(i int) *Record {
	if i < 0 || i >= len(v.records) {
		return nil
	}
	return v.records[i]
}

// Records returns the paired records. The slice is shared with the view.
func (v *View) Records() []*Record {
	return v.records
}

// Items returns the records as a fresh []any, the shape list transforms take.
func (v *View) Items() []any {
	items := make([]any, len(v.records))
	for i, r := range v.records {
		items[i] = r
	}
	return items
}

// Source returns the source the view was paired from.
func (v *View) Source() *Source {
	return v.source
}

// InnerAligned returns one inner element per record, including placeholders,
// followed by any inner elements past the end of the outer list. Writing this
// back as the inner list keeps state stored on placeholder records.
func (v *View) InnerAligned() []any {
	out := make([]any, 0, len(v.records))
	for _, r := range v.records {
		out = append(out, r.Inner)
	}
	if extra := v.source.inner; len(extra) > len(v.records) {
		out = append(out, extra[len(v.records):]...)
	}
	return out
}

// Append adds r to the view and its Outer and Inner to the source lists.
func (v *View) Append(r *Record) {
	s := v.source
	s.alignInner(v.records)
	pos := len(s.outer)
	s.outer = append(s.outer, r.Outer)
	// inner elements past the end of outer stay after the new row
	s.inner = slices.Insert(slices.Clip(s.inner), pos, r.Inner)
	r.placeholder = false
	v.records = append(v.records, r)

	logging.Debug("Appended paired row",
		zap.Int("rows", len(v.records)),
		zap.Int("outer_len", len(s.outer)),
	)
}

// RemoveLast undoes the most recent Append: it drops the last record and the
// last element of both source lists. It returns the removed record, or nil
// when the view is empty.
func (v *View) RemoveLast() *Record {
	if len(v.records) == 0 {
		return nil
	}
	s := v.source
	last := v.records[len(v.records)-1]
	v.records = v.records[:len(v.records)-1]
	if pos := len(s.outer) - 1; pos >= 0 {
		s.outer = s.outer[:pos]
		if pos < len(s.inner) {
			s.inner = append(slices.Clip(s.inner[:pos]), s.inner[pos+1:]...)
		}
	}

	logging.Debug("Removed paired row",
		zap.Int("rows", len(v.records)),
		zap.Int("outer_len", len(s.outer)),
	)

	return last
}
