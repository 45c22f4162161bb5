package path

import (
	"strconv"
)

// SegmentKind distinguishes key segments from index segments.
type SegmentKind int

const (
	// KeySegment addresses a map entry or a named field
	KeySegment SegmentKind = iota
	// IndexSegment addresses a sequence element
	IndexSegment
)

// String returns a human-readable name for the segment kind
func (k SegmentKind) String() string {
	switch k {
	case KeySegment:
		return "key"
	case IndexSegment:
		return "index"
	default:
		return "SegmentKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Segment is one step of a path.
type Segment struct {
	kind  SegmentKind
	key   string
	index int
}

// Key returns a key segment.
func Key(k string) Segment {
	return Segment{kind: KeySegment, key: k}
}

// Index returns an index segment.
func Index(i int) Segment {
	return Segment{kind: IndexSegment, index: i}
}

// Kind reports whether the segment is a key or an index.
func (s Segment) Kind() SegmentKind {
	return s.kind
}

// IsIndex reports whether the segment is an index segment.
func (s Segment) IsIndex() bool {
	return s.kind == IndexSegment
}

// KeyName returns the segment as a map key. Index segments are rendered in
// decimal, matching how mappings address numbered entries.
func (s Segment) KeyName() string {
	if s.kind == IndexSegment {
		return strconv.Itoa(s.index)
	}
	return s.key
}

// Position returns the segment as a sequence index. Key segments that hold a
// decimal number convert; anything else reports false.
func (s Segment) Position() (int, bool) {
	if s.kind == IndexSegment {
		return s.index, true
	}
	n, err := strconv.Atoi(s.key)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// String implements fmt.Stringer
func (s Segment) String() string {
	return s.KeyName()
}
