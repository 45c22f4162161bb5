package pairing

import (
	"fmt"
	"reflect"
)

// Record keys understood by the path accessor.
const (
	OuterKey = "outer"
	InnerKey = "inner"
)

// Record is one paired row.
type Record struct {
	Outer any
	Inner any

	// placeholder marks an Inner synthesized because the inner list had no
	// element at this position
	placeholder bool
}

// NewRecord returns a record with empty outer and inner mappings, ready to
// receive fields through a path accessor.
func NewRecord() *Record {
	return &Record{
		Outer: map[string]any{},
		Inner: map[string]any{},
	}
}

// Field implements path.Fields
func (r *Record) Field(key string) (any, bool) {
	switch key {
	case OuterKey:
		return r.Outer, true
	case InnerKey:
		return r.Inner, true
	default:
		return nil, false
	}
}

// SetField implements path.Fields
func (r *Record) SetField(key string, value any) {
	switch key {
	case OuterKey:
		r.Outer = value
	case InnerKey:
		r.Inner = value
		r.placeholder = false
	default:
		panic(fmt.Sprintf("pairing: record has no field %q", key))
	}
}

// Placeholder reports whether Inner was synthesized for a short inner list.
func (r *Record) Placeholder() bool {
	return r.placeholder
}

// Same reports whether a and b are the same reference. Maps, slices,
// pointers, channels and funcs compare by address; other comparable values
// compare with ==. Two nils are the same.
func Same(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	switch va.Kind() {
	case reflect.Map, reflect.Pointer, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	default:
		if !va.Type().Comparable() {
			return false
		}
		return a == b
	}
}
