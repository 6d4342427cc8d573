package config

import (
	"io"

	"github.com/go-i2p/go-confighandler/lib/util"
	"github.com/samber/oops"
)

// WriteTo writes the configuration to w in INI form.
func (h *Handler) WriteTo(w io.Writer) (int64, error) {
	n, err := h.file.WriteTo(w)
	if err != nil {
		return n, oops.Wrapf(err, "write configuration")
	}
	return n, nil
}

// SaveFile writes the configuration to path in INI form, replacing the file.
func (h *Handler) SaveFile(path string) error {
	resolved, err := util.ExpandPath(path)
	if err != nil {
		return err
	}
	if err := h.file.SaveTo(resolved); err != nil {
		return oops.Wrapf(err, "save configuration to %s", resolved)
	}
	log.WithField("path", resolved).Debug("saved configuration")
	return nil
}
