package path

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fieldBag struct {
	values map[string]any
}

func (f *fieldBag) Field(key string) (any, bool) {
	v, ok := f.values[key]
	return v, ok
}

func (f *fieldBag) SetField(key string, value any) {
	f.values[key] = value
}

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		args     []any
		expected []Segment
	}{
		{
			name:     "dotted string",
			args:     []any{"a.b.c"},
			expected: []Segment{Key("a"), Key("b"), Key("c")},
		},
		{
			name:     "numeric argument kept as index",
			args:     []any{"rows", 2, "name"},
			expected: []Segment{Key("rows"), Index(2), Key("name")},
		},
		{
			name:     "digits inside a string stay keys",
			args:     []any{"rows.2"},
			expected: []Segment{Key("rows"), Key("2")},
		},
		{
			name:     "empty string contributes nothing",
			args:     []any{"", "a"},
			expected: []Segment{Key("a")},
		},
		{
			name:     "no arguments",
			args:     nil,
			expected: []Segment{},
		},
		{
			name:     "accessor composes",
			args:     []any{New("inner"), "status"},
			expected: []Segment{Key("inner"), Key("status")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, New(tt.args...).Segments())
		})
	}
}

func TestParse(t *testing.T) {
	a := Parse("rows.2.name")
	assert.Equal(t, []Segment{Key("rows"), Index(2), Key("name")}, a.Segments())
	assert.Equal(t, "rows.2.name", a.String())

	assert.True(t, Parse("").IsEmpty())
	assert.Equal(t, []Segment{Key("-1")}, Parse("-1").Segments())
}

func TestGet(t *testing.T) {
	doc := map[string]any{
		"a": map[string]any{
			"b": map[string]any{"c": 7},
		},
		"rows": []any{
			map[string]any{"name": "first"},
			map[string]any{"name": "second"},
		},
		"zero": 0,
		"null": nil,
	}

	tests := []struct {
		name     string
		accessor Accessor
		expected any
	}{
		{"nested mapping", New("a.b.c"), 7},
		{"missing branch", New("a.x.y"), nil},
		{"index into sequence", New("rows", 1, "name"), "second"},
		{"string index into sequence", New("rows.0.name"), "first"},
		{"index past end", New("rows", 5, "name"), nil},
		{"negative index", New("rows", -1), nil},
		{"falsy value", New("zero"), 0},
		{"through nil", New("null.deeper"), nil},
		{"through scalar", New("zero.deeper"), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.Equal(t, tt.expected, tt.accessor.Get(doc))
			})
		})
	}
}

func TestGetEmptyPathReturnsInstance(t *testing.T) {
	doc := map[string]any{"a": 1}
	assert.Equal(t, doc, New().Get(doc))
	assert.Nil(t, New("a").Get(nil))
}

func TestLookupDistinguishesNullFromAbsent(t *testing.T) {
	doc := map[string]any{"status": nil}

	v, ok := New("status").Lookup(doc)
	assert.Nil(t, v)
	assert.True(t, ok)

	v, ok = New("other").Lookup(doc)
	assert.Nil(t, v)
	assert.False(t, ok)
}

func TestSet(t *testing.T) {
	t.Run("existing path", func(t *testing.T) {
		doc := map[string]any{"a": map[string]any{"b": 1}}
		New("a.b").Set(doc, 8)
		assert.Equal(t, 8, New("a.b").Get(doc))
	})

	t.Run("missing path creates mappings", func(t *testing.T) {
		doc := map[string]any{"a": map[string]any{"b": map[string]any{"c": 7}}}
		New("a.x.y").Set(doc, "new")
		assert.Equal(t, "new", New("a.x.y").Get(doc))
		assert.IsType(t, map[string]any{}, New("a.x").Get(doc))
		assert.Equal(t, 7, New("a.b.c").Get(doc))
	})

	t.Run("numeric next segment creates a sequence", func(t *testing.T) {
		doc := map[string]any{}
		New("rows", 2, "name").Set(doc, "third")

		rows, ok := doc["rows"].([]any)
		require.True(t, ok)
		assert.Len(t, rows, 3)
		assert.Nil(t, rows[0])
		assert.Equal(t, "third", New("rows", 2, "name").Get(doc))
	})

	t.Run("falsy intermediate values are preserved", func(t *testing.T) {
		doc := map[string]any{"a": map[string]any{"zero": 0, "no": false, "empty": ""}}
		New("a.extra").Set(doc, 1)
		assert.Equal(t, 0, New("a.zero").Get(doc))
		assert.Equal(t, false, New("a.no").Get(doc))
		assert.Equal(t, "", New("a.empty").Get(doc))
	})

	t.Run("nil instance is a no-op", func(t *testing.T) {
		assert.NotPanics(t, func() { New("a").Set(nil, 1) })
	})

	t.Run("empty path is a no-op", func(t *testing.T) {
		doc := map[string]any{"a": 1}
		New().Set(doc, 2)
		assert.Equal(t, map[string]any{"a": 1}, doc)
	})

	t.Run("final segment assigned unconditionally", func(t *testing.T) {
		doc := map[string]any{"a": map[string]any{"b": "x"}}
		New("a").Set(doc, 5)
		assert.Equal(t, 5, doc["a"])
	})

	t.Run("fields container", func(t *testing.T) {
		bag := &fieldBag{values: map[string]any{}}
		New("inner.status").Set(bag, "*")
		assert.Equal(t, "*", New("inner.status").Get(bag))
	})

	t.Run("index on a mapping addresses its decimal key", func(t *testing.T) {
		doc := map[string]any{}
		New(0).Set(doc, "zero")
		assert.Equal(t, map[string]any{"0": "zero"}, doc)
		assert.Equal(t, "zero", New(0).Get(doc))
	})

	t.Run("existing sequence element in bounds", func(t *testing.T) {
		rows := []any{map[string]any{"v": 1}}
		New(0, "v").Set(rows, 2)
		assert.Equal(t, 2, New(0, "v").Get(rows))
	})
}

func TestSetShapeMismatchPanics(t *testing.T) {
	assert.Panics(t, func() {
		New("a.b").Set(map[string]any{"a": 3}, 1)
	})
	assert.Panics(t, func() {
		New("rows.name").Set(map[string]any{"rows": []any{}}, 1)
	})
	assert.Panics(t, func() {
		New(4).Set([]any{1}, 1)
	})
}

func TestUpdateGrowsTopLevelSequence(t *testing.T) {
	rows := []any{"a"}
	out := New(2).Update(rows, "c")

	grown, ok := out.([]any)
	require.True(t, ok)
	assert.Equal(t, []any{"a", nil, "c"}, grown)
}
