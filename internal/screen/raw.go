package screen

import (
	"fmt"

	"github.com/muurk/listbind/internal/path"
)

// Raw returns the document rows as one tree, {"outer": [...], "inner": [...]},
// the root that GetRaw and SetRaw paths start from.
func (d *Document) Raw() map[string]any {
	return map[string]any{
		"outer": d.Outer,
		"inner": d.Inner,
	}
}

// GetRaw reads the value at a dotted path into the document rows.
func (d *Document) GetRaw(p string) (any, error) {
	acc, err := rawPath(p)
	if err != nil {
		return nil, err
	}
	v, ok := acc.Lookup(d.Raw())
	if !ok {
		return nil, NewPathError(p, "no value at path")
	}
	return v, nil
}

// SetRaw writes value at a dotted path into the document rows, creating
// missing containers and growing sequences as needed.
func (d *Document) SetRaw(p string, value any) (err error) {
	acc, err := rawPath(p)
	if err != nil {
		return err
	}

	defer func() {
		// writes through a value of the wrong shape panic in the accessor
		if r := recover(); r != nil {
			err = NewPathError(p, fmt.Sprint(r))
		}
	}()

	root := d.Raw()
	acc.Set(root, value)

	outer, ok := root["outer"].([]any)
	if !ok {
		return NewPathError(p, "outer must remain a sequence")
	}
	inner, ok := root["inner"].([]any)
	if !ok && root["inner"] != nil {
		return NewPathError(p, "inner must remain a sequence")
	}
	d.Outer = outer
	d.Inner = inner
	return nil
}

func rawPath(p string) (path.Accessor, error) {
	if err := ValidatePath("path", p, true); err != nil {
		return path.Accessor{}, err
	}
	acc := path.Parse(p)
	switch first := acc.Segments()[0]; first.KeyName() {
	case "outer", "inner":
		return acc, nil
	default:
		return path.Accessor{}, NewPathError(p, fmt.Sprintf("unknown root %q", first.KeyName()))
	}
}
