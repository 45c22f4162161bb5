package screen

import (
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/muurk/listbind/internal/logging"
)

// CurrentVersion is the only document version this package reads.
const CurrentVersion = 1

// fileMutex serializes document writes within the process
var fileMutex sync.Mutex

// Document is one screen list stored as YAML: the outer data rows, the inner
// per-row state rows, and the settings used to bind them.
type Document struct {
	Version    int    `yaml:"version"`
	StatusPath string `yaml:"status_path"`          // Path to each row's status code, e.g. inner.status
	ValuePath  string `yaml:"value_path,omitempty"` // Path to each row's value; enables the cursor
	Capacity   int    `yaml:"capacity,omitempty"`   // Row count below which the cursor may insert rows
	Multi      bool   `yaml:"multi,omitempty"`      // Allow several selected rows
	Filtered   bool   `yaml:"filtered,omitempty"`   // Skip hidden rows instead of truncating at the first one
	Outer      []any  `yaml:"outer"`
	Inner      []any  `yaml:"inner,omitempty"`
}

// NewDocument creates an empty document with the given status path.
func NewDocument(statusPath string) *Document {
	return &Document{
		Version:    CurrentVersion,
		StatusPath: statusPath,
		Outer:      []any{},
	}
}

// Load reads and validates the document at file.
func Load(file string) (*Document, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, NewIOError(file, "failed to read document", err)
	}

	doc, err := parse(file, data)
	if err != nil {
		return nil, err
	}

	logging.LogDocument("load", file, len(doc.Outer))
	return doc, nil
}

// Parse decodes and validates a document from YAML.
func Parse(data []byte) (*Document, error) {
	return parse("", data)
}

func parse(file string, data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, NewParseError(file, "failed to parse document", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	if doc.Outer == nil {
		doc.Outer = []any{}
	}
	return &doc, nil
}

// Marshal encodes the document as YAML.
func (d *Document) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(d)
	if err != nil {
		return nil, NewParseError("", "failed to encode document", err)
	}
	return data, nil
}

// Save writes the document to file.
// Performs an atomic write to prevent corruption on crash.
func (d *Document) Save(file string) error {
	fileMutex.Lock()
	defer fileMutex.Unlock()

	data, err := d.Marshal()
	if err != nil {
		return err
	}

	if dir := filepath.Dir(file); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return NewIOError(file, "failed to create document directory", err)
		}
	}

	// Write to temporary file first (atomic write)
	tmpPath := file + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return NewIOError(tmpPath, "failed to write temporary document", err)
	}

	if err := os.Rename(tmpPath, file); err != nil {
		// Clean up temp file on error
		os.Remove(tmpPath)
		return NewIOError(file, "failed to save document", err)
	}

	logging.LogDocument("save", file, len(d.Outer))
	return nil
}
