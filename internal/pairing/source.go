package pairing

import (
	"go.uber.org/zap"

	"github.com/muurk/listbind/internal/logging"
)

// Source owns the outer and inner lists of a screen list and the most recent
// view paired from them.
type Source struct {
	outer []any
	inner []any
	last  *View
}

// NewSource wraps outer and inner. Nil lists are treated as empty.
func NewSource(outer, inner []any) *Source {
	return &Source{outer: outer, inner: inner}
}

// Zip pairs outer and inner once, without an identity cache.
func Zip(outer, inner []any) *View {
	return NewSource(outer, inner).Pair()
}

// Outer returns the current outer list.
func (s *Source) Outer() []any {
	return s.outer
}

// Inner returns the current inner list.
func (s *Source) Inner() []any {
	return s.inner
}

// Last returns the most recent view produced by Pair, or nil.
func (s *Source) Last() *View {
	return s.last
}

// Reset replaces the lists while keeping the identity cache, so the next Pair
// reuses every record whose elements did not change.
func (s *Source) Reset(outer, inner []any) {
	s.outer = outer
	s.inner = inner
}

// Pair zips the lists into a new view. Records from the previous view are
// reused at each index where both the outer and inner references are
// unchanged.
func (s *Source) Pair() *View {
	var prev []*Record
	if s.last != nil {
		prev = s.last.records
	}

	records := make([]*Record, len(s.outer))
	reused := 0
	for i, outer := range s.outer {
		var inner any
		if i < len(s.inner) {
			inner = s.inner[i]
		}

		if i < len(prev) && reusable(prev[i], outer, inner) {
			records[i] = prev[i]
			reused++
			continue
		}

		rec := &Record{Outer: outer, Inner: inner}
		if inner == nil {
			rec.Inner = map[string]any{}
			rec.placeholder = true
		}
		records[i] = rec
	}

	view := &View{records: records, source: s}
	s.last = view

	logging.Debug("Paired list",
		zap.Int("rows", len(records)),
		zap.Int("reused", reused),
		zap.Int("inner_len", len(s.inner)),
	)

	return view
}

// reusable reports whether prev pairs exactly outer and inner. A placeholder
// inner stands for "no inner element" and matches while that still holds.
func reusable(prev *Record, outer, inner any) bool {
	if !Same(prev.Outer, outer) {
		return false
	}
	if inner == nil {
		return prev.placeholder
	}
	return !prev.placeholder && Same(prev.Inner, inner)
}

// alignInner pads the inner list up to the outer length with the inner parts
// of view records, so appends land on matching positions.
func (s *Source) alignInner(records []*Record) {
	for len(s.inner) < len(s.outer) {
		i := len(s.inner)
		var inner any = map[string]any{}
		if i < len(records) {
			inner = records[i].Inner
			records[i].placeholder = false
		}
		s.inner = append(s.inner, inner)
	}
}
