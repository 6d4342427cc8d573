package config

import (
	"github.com/go-i2p/go-confighandler/lib/util"
	"github.com/go-i2p/logger"
	"github.com/samber/oops"
	"gopkg.in/ini.v1"
)

// ParseFile merges the configuration file at path into the live
// configuration, overriding existing values. The path may start with "~".
//
// It returns false, and changes nothing, when nothing exists at path.
// Parser errors are returned with the configuration left unchanged.
func (h *Handler) ParseFile(path string) (bool, error) {
	resolved, err := util.ExpandPath(path)
	if err != nil {
		return false, err
	}

	if !util.CheckFileExists(resolved) {
		log.WithFields(logger.Fields{
			"at":   "Handler.ParseFile",
			"path": resolved,
		}).Debug("config file does not exist, skipping")
		return false, nil
	}

	log.WithFields(logger.Fields{
		"at":   "Handler.ParseFile",
		"path": resolved,
	}).Debug("config file exists, loading settings")

	parsed, err := ini.LoadSources(h.loadOptions, resolved)
	if err != nil {
		return false, oops.Wrapf(err, "parse config file %s", resolved)
	}

	for _, sec := range parsed.Sections() {
		if h.isRootSection(sec.Name()) {
			continue
		}
		keys := sec.Keys()
		entries := make([]entry, len(keys))
		for i, k := range keys {
			entries[i] = entry{key: k.Name(), value: k.Value()}
		}
		h.mergeSection(sec.Name(), entries, true)
	}
	return true, nil
}
