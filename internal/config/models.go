package config

import "time"

// Registry represents the entire user configuration file.
// This stores defaults for new screen documents and a record of recently
// used documents.
type Registry struct {
	Version     int                    `yaml:"version"`
	Screens     map[string]*ScreenMeta `yaml:"screens,omitempty"` // Keyed by absolute document path
	Preferences *Preferences           `yaml:"preferences,omitempty"`
}

// ScreenMeta represents what the CLI remembers about one screen document.
type ScreenMeta struct {
	Label      string    `yaml:"label,omitempty"`       // User-friendly name
	LastOpened time.Time `yaml:"last_opened,omitempty"` // Last time the document was loaded
	Rows       int       `yaml:"rows"`                  // Outer row count at last save
}

// Preferences represents application-wide user preferences.
type Preferences struct {
	StatusPath string `yaml:"status_path"`          // Default status path for new documents
	ValuePath  string `yaml:"value_path,omitempty"` // Default value path for new documents
	Capacity   int    `yaml:"capacity"`             // Default cursor insert capacity
	Format     string `yaml:"format"`               // Default output format for show
}

// Output formats accepted by Preferences.Format.
const (
	FormatDetailed = "detailed"
	FormatCompact  = "compact"
	FormatYAML     = "yaml"
)

// OutputFormats lists the supported output formats with a short description.
var OutputFormats = map[string]string{
	FormatDetailed: "Boxed table with status codes",
	FormatCompact:  "One line per visible row",
	FormatYAML:     "Raw document",
}

// DefaultPreferences returns the preferences used when none are configured.
func DefaultPreferences() *Preferences {
	return &Preferences{
		StatusPath: "inner.status",
		ValuePath:  "outer.name",
		Capacity:   10,
		Format:     FormatDetailed,
	}
}

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Version:     1,
		Screens:     make(map[string]*ScreenMeta),
		Preferences: DefaultPreferences(),
	}
}

// GetScreen retrieves screen metadata by document path.
// Returns nil if the document isn't in the registry.
func (r *Registry) GetScreen(file string) *ScreenMeta {
	return r.Screens[file]
}

// EnsureScreen ensures a screen entry exists in the registry.
// Returns the entry (existing or newly created).
func (r *Registry) EnsureScreen(file string) *ScreenMeta {
	if r.Screens == nil {
		r.Screens = make(map[string]*ScreenMeta)
	}

	if screen, exists := r.Screens[file]; exists {
		return screen
	}

	screen := &ScreenMeta{}
	r.Screens[file] = screen
	return screen
}

// TouchScreen records that a document was opened and how many rows it holds.
func (r *Registry) TouchScreen(file string, rows int) {
	screen := r.EnsureScreen(file)
	screen.LastOpened = time.Now()
	screen.Rows = rows
}

// SetScreenLabel sets a user-friendly label for a document.
func (r *Registry) SetScreenLabel(file, label string) {
	screen := r.EnsureScreen(file)
	screen.Label = label
}

// ValidFormat reports whether format is a supported output format.
func ValidFormat(format string) bool {
	_, ok := OutputFormats[format]
	return ok
}
