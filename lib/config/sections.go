package config

import (
	"slices"

	"github.com/go-i2p/logger"
	"github.com/samber/oops"
)

// Sections returns all section names in insertion order.
func (h *Handler) Sections() []string {
	names := h.file.SectionStrings()
	sections := make([]string, 0, len(names))
	for _, name := range names {
		if h.isRootSection(name) {
			continue
		}
		sections = append(sections, name)
	}
	return sections
}

// HasSection reports whether section is one of Sections().
func (h *Handler) HasSection(section string) bool {
	return slices.Contains(h.Sections(), h.foldSection(section))
}

// AddSection creates an empty section unless it already exists.
func (h *Handler) AddSection(section string) error {
	if h.isRootSection(section) {
		return oops.Wrapf(ErrReservedSection, "section %q", section)
	}
	if h.HasSection(section) {
		return nil
	}
	if _, err := h.file.NewSection(section); err != nil {
		return oops.Wrapf(err, "add section %q", section)
	}
	log.WithFields(logger.Fields{
		"at":      "Handler.AddSection",
		"section": section,
	}).Debug("added section")
	return nil
}

// Keys returns the key names of section in insertion order.
func (h *Handler) Keys(section string) ([]string, error) {
	sec, err := h.lookup(section)
	if err != nil {
		return nil, err
	}
	return sec.KeyStrings(), nil
}

// Get returns the value of key in section.
func (h *Handler) Get(section, key string) (string, error) {
	sec, err := h.lookup(section)
	if err != nil {
		return "", err
	}
	if !h.hasKey(sec, key) {
		return "", oops.Wrapf(ErrNoKey, "key %q in section %q", key, section)
	}
	k, err := sec.GetKey(key)
	if err != nil {
		return "", oops.Wrapf(ErrNoKey, "key %q in section %q", key, section)
	}
	return k.Value(), nil
}

// Set writes value to key in section, creating the key if needed.
// The section must already exist.
func (h *Handler) Set(section, key string, value any) error {
	sec, err := h.lookup(section)
	if err != nil {
		return err
	}
	if _, err := sec.NewKey(key, toValue(value)); err != nil {
		return oops.Wrapf(err, "set key %q in section %q", key, section)
	}
	return nil
}

// SectionDict returns a fresh map of every key in section to its value.
func (h *Handler) SectionDict(section string) (map[string]string, error) {
	keys, err := h.Keys(section)
	if err != nil {
		return nil, err
	}
	dict := make(map[string]string, len(keys))
	for _, key := range keys {
		value, err := h.Get(section, key)
		if err != nil {
			return nil, err
		}
		dict[key] = value
	}
	return dict, nil
}

// Dict returns a snapshot of every section as a map.
func (h *Handler) Dict() map[string]map[string]string {
	sections := h.Sections()
	dict := make(map[string]map[string]string, len(sections))
	for _, section := range sections {
		// Names come from Sections, so lookups cannot fail.
		values, _ := h.SectionDict(section)
		dict[section] = values
	}
	return dict
}
