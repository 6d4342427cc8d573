package handler

// ConfigInterface is the interface name configuration handlers register under.
const ConfigInterface = "config"

// Meta describes a handler implementation.
type Meta struct {
	// Interface is the name of the handler interface being implemented.
	Interface string
	// Label uniquely identifies the implementation within its interface.
	Label string
}

// App is the host application as seen by a handler during setup.
type App interface {
	Label() string
}

// Handler is implemented by every pluggable handler.
type Handler interface {
	Meta() Meta
	// Setup hands the host application to the handler before first use.
	Setup(app App)
}

// Config is the configuration handler interface.
//
// Sections are named groups of key/value settings. Lookups on a missing
// section or key return an error; ParseFile reports a missing file with a
// false result instead of an error.
type Config interface {
	Handler

	// Sections returns all section names in insertion order.
	Sections() []string
	// SectionDict returns a fresh map of every key in section to its value.
	SectionDict(section string) (map[string]string, error)
	// ParseFile merges the file at path into the configuration, overriding
	// existing values. It returns false when nothing exists at path.
	ParseFile(path string) (bool, error)
	// Keys returns the key names of section.
	Keys(section string) ([]string, error)
	// Get returns the value of key in section.
	Get(section, key string) (string, error)
	// Set writes value to key in an existing section.
	Set(section, key string, value any) error
	// HasSection reports whether section is one of Sections().
	HasSection(section string) bool
	// AddSection creates section unless it already exists.
	AddSection(section string) error
	// Merge writes every section found in dict. Existing keys are only
	// replaced when override is true.
	Merge(dict map[string]any, override bool)
}

// Factory builds a new handler instance.
type Factory func() Handler
