package config

import (
	"errors"
	"slices"
	"strings"

	"github.com/go-i2p/go-confighandler/lib/handler"
	"github.com/go-i2p/logger"
	"github.com/samber/oops"
	"gopkg.in/ini.v1"
)

var log = logger.GetGoI2PLogger()

// Label is the registry label of the INI configuration handler.
const Label = "ini"

var (
	// ErrNoSection is returned when a section does not exist.
	ErrNoSection = errors.New("section does not exist")
	// ErrNoKey is returned when a key does not exist in its section.
	ErrNoKey = errors.New("key does not exist")
	// ErrReservedSection is returned when adding the parser's root section.
	ErrReservedSection = errors.New("section name is reserved")
)

var _ handler.Config = (*Handler)(nil)

// Handler implements handler.Config on top of an ini.File.
type Handler struct {
	file        *ini.File
	loadOptions ini.LoadOptions
	app         handler.App
}

// Option configures a Handler.
type Option func(*Handler)

// WithLoadOptions sets the parser options used for the live configuration
// and for every file read by ParseFile. With the case-insensitive options the
// store keeps names in lower case and every lookup folds its argument to match.
func WithLoadOptions(opts ini.LoadOptions) Option {
	return func(h *Handler) {
		h.loadOptions = opts
	}
}

// New returns a handler with an empty configuration.
func New(opts ...Option) *Handler {
	h := &Handler{}
	for _, opt := range opts {
		opt(h)
	}
	h.file = ini.Empty(h.loadOptions)
	return h
}

// Load registers the INI configuration handler with reg.
func Load(reg *handler.Registry) error {
	return reg.Register(handler.ConfigInterface, Label, func() handler.Handler {
		return New()
	})
}

// Meta describes the handler to the registry.
func (h *Handler) Meta() handler.Meta {
	return handler.Meta{Interface: handler.ConfigInterface, Label: Label}
}

// Setup stores the host application. It is not otherwise used.
func (h *Handler) Setup(app handler.App) {
	h.app = app
	fields := logger.Fields{"at": "Handler.Setup", "label": Label}
	if app != nil {
		fields["app"] = app.Label()
	}
	log.WithFields(fields).Debug("configuration handler set up")
}

// App returns the application passed to Setup, or nil.
func (h *Handler) App() handler.App {
	return h.app
}

// foldSection returns name as the store keeps it.
func (h *Handler) foldSection(name string) string {
	if h.loadOptions.Insensitive || h.loadOptions.InsensitiveSections {
		return strings.ToLower(name)
	}
	return name
}

// foldKey returns key as the store keeps it.
func (h *Handler) foldKey(key string) string {
	if h.loadOptions.Insensitive || h.loadOptions.InsensitiveKeys {
		return strings.ToLower(key)
	}
	return key
}

// isRootSection reports whether name addresses the parser's root section.
func (h *Handler) isRootSection(name string) bool {
	return name == "" || h.foldSection(name) == h.foldSection(ini.DefaultSection)
}

// lookup returns the named section, never the root section.
func (h *Handler) lookup(section string) (*ini.Section, error) {
	if h.isRootSection(section) {
		return nil, oops.Wrapf(ErrNoSection, "section %q", section)
	}
	sec, err := h.file.GetSection(section)
	if err != nil {
		return nil, oops.Wrapf(ErrNoSection, "section %q", section)
	}
	return sec, nil
}

// hasKey checks sec's own keys. ini's GetKey also consults parent sections
// of dotted names, which would make one section's keys leak into another.
func (h *Handler) hasKey(sec *ini.Section, key string) bool {
	return slices.Contains(sec.KeyStrings(), h.foldKey(key))
}
