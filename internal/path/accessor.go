package path

import (
	"fmt"
	"strconv"
	"strings"
)

// Fields is implemented by values that expose named fields to an Accessor
// without being a map.
type Fields interface {
	// Field returns the named field and whether it exists.
	Field(key string) (any, bool)
	// SetField assigns the named field.
	SetField(key string, value any)
}

// Accessor reads and writes the value addressed by a fixed path.
// The zero Accessor has an empty path: Get returns the instance unchanged and
// Set does nothing.
type Accessor struct {
	segments []Segment
}

// New builds an accessor from path arguments. Strings are split on "." into
// key segments; integers become index segments; Segments and Accessors are
// appended as-is. Empty strings contribute nothing.
func New(args ...any) Accessor {
	var segs []Segment
	for _, arg := range args {
		switch v := arg.(type) {
		case string:
			if v == "" {
				continue
			}
			for _, part := range strings.Split(v, ".") {
				segs = append(segs, Key(part))
			}
		case int:
			segs = append(segs, Index(v))
		case int64:
			segs = append(segs, Index(int(v)))
		case int32:
			segs = append(segs, Index(int(v)))
		case uint:
			segs = append(segs, Index(int(v)))
		case Segment:
			segs = append(segs, v)
		case []Segment:
			segs = append(segs, v...)
		case Accessor:
			segs = append(segs, v.segments...)
		default:
			segs = append(segs, Key(fmt.Sprint(v)))
		}
	}
	return Accessor{segments: segs}
}

// Parse builds an accessor from a dotted string, treating all-digit
// fragments as indexes.
func Parse(s string) Accessor {
	if s == "" {
		return Accessor{}
	}
	parts := strings.Split(s, ".")
	segs := make([]Segment, 0, len(parts))
	for _, part := range parts {
		if n, err := strconv.Atoi(part); err == nil && n >= 0 && isDigits(part) {
			segs = append(segs, Index(n))
			continue
		}
		segs = append(segs, Key(part))
	}
	return Accessor{segments: segs}
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// Segments returns a copy of the accessor's path.
func (a Accessor) Segments() []Segment {
	out := make([]Segment, len(a.segments))
	copy(out, a.segments)
	return out
}

// Len returns the number of segments.
func (a Accessor) Len() int {
	return len(a.segments)
}

// IsEmpty reports whether the path has no segments.
func (a Accessor) IsEmpty() bool {
	return len(a.segments) == 0
}

// String returns the dotted form of the path.
func (a Accessor) String() string {
	parts := make([]string, len(a.segments))
	for i, s := range a.segments {
		parts[i] = s.String()
	}
	return strings.Join(parts, ".")
}

// Get returns the value at the path, or nil when any step is missing.
func (a Accessor) Get(instance any) any {
	v, _ := a.Lookup(instance)
	return v
}

// Lookup returns the value at the path and whether the final segment exists.
// A present field holding nil reports (nil, true); a missing one (nil, false).
func (a Accessor) Lookup(instance any) (any, bool) {
	if len(a.segments) == 0 {
		return instance, instance != nil
	}
	cur := instance
	for _, seg := range a.segments {
		if cur == nil {
			return nil, false
		}
		next, ok := child(cur, seg)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// Set assigns value at the path, creating intermediate containers as needed.
// It does nothing when instance is nil or the path is empty.
//
// A top-level []any cannot grow in place; writing past its end panics. Use
// Update when the instance itself may need to be replaced.
func (a Accessor) Set(instance any, value any) {
	if instance == nil || len(a.segments) == 0 {
		return
	}
	if s, ok := instance.([]any); ok {
		if i, ok := a.segments[0].Position(); ok && i >= len(s) {
			panic(fmt.Sprintf("path: index %d out of range for top-level sequence of length %d", i, len(s)))
		}
	}
	assign(instance, a.segments, value)
}

// Update is Set for callers holding the root by value: it returns the root,
// which differs from instance only when a top-level sequence had to grow.
func (a Accessor) Update(instance any, value any) any {
	if instance == nil || len(a.segments) == 0 {
		return instance
	}
	return assign(instance, a.segments, value)
}

// assign writes value under container and returns the container, which is a
// new slice header when a sequence grew.
func assign(container any, segs []Segment, value any) any {
	seg := segs[0]
	if len(segs) == 1 {
		return put(container, seg, value)
	}

	next, ok := child(container, seg)
	if !ok || next == nil {
		next = newContainer(segs[1])
	}
	return put(container, seg, assign(next, segs[1:], value))
}

func newContainer(next Segment) any {
	if next.IsIndex() {
		return []any{}
	}
	return map[string]any{}
}

// child returns the element addressed by seg inside container.
func child(container any, seg Segment) (any, bool) {
	switch c := container.(type) {
	case map[string]any:
		v, ok := c[seg.KeyName()]
		return v, ok
	case []any:
		i, ok := seg.Position()
		if !ok || i < 0 || i >= len(c) {
			return nil, false
		}
		return c[i], true
	case Fields:
		return c.Field(seg.KeyName())
	default:
		return nil, false
	}
}

// put assigns value at seg inside container.
func put(container any, seg Segment, value any) any {
	switch c := container.(type) {
	case map[string]any:
		c[seg.KeyName()] = value
		return c
	case []any:
		i, ok := seg.Position()
		if !ok {
			panic(fmt.Sprintf("path: cannot use key %q on a sequence", seg.KeyName()))
		}
		if i >= len(c) {
			c = append(c, make([]any, i-len(c)+1)...)
		}
		c[i] = value
		return c
	case Fields:
		c.SetField(seg.KeyName(), value)
		return c
	default:
		panic(fmt.Sprintf("path: cannot assign %s %q on %T", seg.Kind(), seg.KeyName(), container))
	}
}
