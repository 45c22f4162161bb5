package screen

import (
	"go.uber.org/zap"

	"github.com/muurk/listbind/internal/listview"
	"github.com/muurk/listbind/internal/logging"
	"github.com/muurk/listbind/internal/pairing"
	"github.com/muurk/listbind/internal/path"
)

// Binding is a document bound to a live screen list. Changes made through
// the list are written back to the document by Sync.
type Binding struct {
	doc    *Document
	source *pairing.Source
	list   *listview.List
}

// Bind pairs the document's outer and inner rows and scans the result into a
// selectable list. The list is editable when the document has a value path.
func (d *Document) Bind() (*Binding, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	mode := listview.InPlace
	if d.Filtered {
		mode = listview.Filtered
	}

	source := pairing.NewSource(d.Outer, d.Inner)
	list := listview.FromView(source.Pair(), path.Parse(d.StatusPath), mode)
	list.SetMulti(d.Multi)
	if d.ValuePath != "" {
		listview.MakeEditable(list, path.Parse(d.ValuePath), d.Capacity)
	}

	logging.Debug("Bound screen document",
		zap.Int("outer", len(d.Outer)),
		zap.Int("inner", len(d.Inner)),
		zap.Int("visible", list.Len()),
		zap.Stringer("mode", mode),
	)

	return &Binding{doc: d, source: source, list: list}, nil
}

// Document returns the bound document.
func (b *Binding) Document() *Document {
	return b.doc
}

// List returns the bound screen list.
func (b *Binding) List() *listview.List {
	return b.list
}

// Source returns the paired source lists.
func (b *Binding) Source() *pairing.Source {
	return b.source
}

// Select replaces the selection with the rows at indexes. Indexes count
// visible rows.
func (b *Binding) Select(indexes ...int) error {
	for _, i := range indexes {
		if i < 0 || i >= b.list.Len() {
			return NewRangeError(i, b.list.Len())
		}
	}
	b.list.SelectIndices(indexes...)
	return nil
}

// SetValue moves the cursor through each value in order. With commit, every
// inserted row is confirmed before the next write; otherwise each write rolls
// back the row inserted by the one before it.
func (b *Binding) SetValue(commit bool, values ...any) error {
	if b.list.Editable == nil {
		return NewValidationError("value_path is not set; the list has no cursor")
	}
	for _, v := range values {
		b.list.SetValue(v)
		if commit {
			b.list.Commit()
		}
	}
	return nil
}

// Sync writes the current rows back into the document. Inner rows are
// written aligned with outer rows, so state kept on placeholder rows
// survives a save.
func (b *Binding) Sync() {
	b.doc.Outer = b.source.Outer()
	if view := b.list.View(); view != nil {
		b.doc.Inner = view.InnerAligned()
	} else {
		b.doc.Inner = b.source.Inner()
	}
}
