package config

import (
	"sort"

	"github.com/go-i2p/logger"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// entry is one key/value pair waiting to be merged.
type entry struct {
	key   string
	value string
}

// Merge writes every section of dict into the configuration.
//
// Top-level entries whose value is a map name a section, which is created if
// needed. With override true every pair is written; otherwise only keys the
// section does not have yet. Top-level entries that are not maps are ignored,
// and maps below key level are stored as opaque values. Sections and keys
// are applied in sorted order.
func (h *Handler) Merge(dict map[string]any, override bool) {
	names := make([]string, 0, len(dict))
	for name := range dict {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		entries, ok := sectionEntries(dict[name])
		if !ok || h.isRootSection(name) {
			log.WithFields(logger.Fields{
				"at":      "Handler.Merge",
				"section": name,
			}).Debug("ignoring top-level entry that is not a section")
			continue
		}
		h.mergeSection(name, entries, override)
	}
}

// MergeViper merges every section found in v's settings. Viper lowercases
// all keys, so section and key names arrive in lower case.
func (h *Handler) MergeViper(v *viper.Viper, override bool) {
	h.Merge(v.AllSettings(), override)
}

// mergeSection writes entries into section in order, creating the section
// when it is missing. name must not be a root section name.
func (h *Handler) mergeSection(name string, entries []entry, override bool) {
	if err := h.AddSection(name); err != nil {
		log.WithError(err).WithField("section", name).Warn("cannot create section for merge")
		return
	}
	sec, err := h.lookup(name)
	if err != nil {
		log.WithError(err).WithField("section", name).Warn("section vanished during merge")
		return
	}

	written := 0
	for _, e := range entries {
		if !override && h.hasKey(sec, e.key) {
			continue
		}
		if _, err := sec.NewKey(e.key, e.value); err != nil {
			log.WithError(err).WithFields(logger.Fields{
				"section": name,
				"key":     e.key,
			}).Warn("skipping key that cannot be stored")
			continue
		}
		written++
	}

	log.WithFields(logger.Fields{
		"at":       "Handler.mergeSection",
		"section":  name,
		"override": override,
		"offered":  len(entries),
		"written":  written,
	}).Debug("merged section")
}

// sectionEntries returns the sorted key/value pairs of v when v is a map.
func sectionEntries(v any) ([]entry, bool) {
	var entries []entry
	switch m := v.(type) {
	case map[string]any:
		entries = make([]entry, 0, len(m))
		for key, value := range m {
			entries = append(entries, entry{key: key, value: toValue(value)})
		}
	case map[string]string:
		entries = make([]entry, 0, len(m))
		for key, value := range m {
			entries = append(entries, entry{key: key, value: value})
		}
	case map[any]any:
		entries = make([]entry, 0, len(m))
		for key, value := range m {
			entries = append(entries, entry{key: cast.ToString(key), value: toValue(value)})
		}
	default:
		return nil, false
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].key < entries[j].key
	})
	return entries, true
}
