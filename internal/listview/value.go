package listview

import (
	"math"
	"reflect"

	"github.com/spf13/cast"

	"github.com/muurk/listbind/internal/path"
)

// Value is the record bound to an editable cursor.
type Value struct {
	// Item is the bound record
	Item any

	// Ephemeral marks a row inserted by the cursor and not yet confirmed.
	// The next write rolls it back instead of deselecting it.
	Ephemeral bool

	field path.Accessor
}

// String returns the bound record's value field, or "" when the field is
// absent or falsy.
func (v *Value) String() string {
	if v == nil {
		return ""
	}
	return Stringify(v.field.Get(v.Item))
}

// Stringify renders a field value for display and comparison. Falsy values
// (nil, false, zero numbers, "") render as "".
func Stringify(x any) string {
	if isFalsy(x) {
		return ""
	}
	return cast.ToString(x)
}

func isFalsy(x any) bool {
	if x == nil {
		return true
	}
	switch v := x.(type) {
	case bool:
		return !v
	case string:
		return v == ""
	case float64:
		return v == 0 || math.IsNaN(v)
	case float32:
		return v == 0 || math.IsNaN(float64(v))
	}
	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.IsZero()
	}
	return false
}

// isObject reports whether x is matched by reference rather than by its
// string form.
func isObject(x any) bool {
	if x == nil {
		return false
	}
	switch reflect.ValueOf(x).Kind() {
	case reflect.Map, reflect.Slice, reflect.Pointer, reflect.Struct:
		return true
	default:
		return false
	}
}
