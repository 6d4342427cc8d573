package config

import (
	"fmt"
	"strings"

	"github.com/samber/oops"
	"github.com/spf13/cast"
)

// listSeparator joins list values on write and splits them in GetStrings.
const listSeparator = ","

// toValue normalizes v to the string form stored by the parser.
func toValue(v any) string {
	switch t := v.(type) {
	case []string:
		return strings.Join(t, listSeparator)
	case []any:
		parts := make([]string, len(t))
		for i, item := range t {
			parts[i] = toValue(item)
		}
		return strings.Join(parts, listSeparator)
	}
	if s, err := cast.ToStringE(v); err == nil {
		return s
	}
	return fmt.Sprint(v)
}

// GetInt returns the value of key in section as an int.
func (h *Handler) GetInt(section, key string) (int, error) {
	raw, err := h.Get(section, key)
	if err != nil {
		return 0, err
	}
	n, err := cast.ToIntE(strings.TrimSpace(raw))
	if err != nil {
		return 0, oops.Wrapf(err, "key %q in section %q is not an integer", key, section)
	}
	return n, nil
}

// GetBool returns the value of key in section as a bool.
func (h *Handler) GetBool(section, key string) (bool, error) {
	raw, err := h.Get(section, key)
	if err != nil {
		return false, err
	}
	b, err := cast.ToBoolE(strings.TrimSpace(raw))
	if err != nil {
		return false, oops.Wrapf(err, "key %q in section %q is not a boolean", key, section)
	}
	return b, nil
}

// GetFloat64 returns the value of key in section as a float64.
func (h *Handler) GetFloat64(section, key string) (float64, error) {
	raw, err := h.Get(section, key)
	if err != nil {
		return 0, err
	}
	f, err := cast.ToFloat64E(strings.TrimSpace(raw))
	if err != nil {
		return 0, oops.Wrapf(err, "key %q in section %q is not a number", key, section)
	}
	return f, nil
}

// GetStrings splits a comma separated value, trimming blanks and dropping
// empty items.
func (h *Handler) GetStrings(section, key string) ([]string, error) {
	raw, err := h.Get(section, key)
	if err != nil {
		return nil, err
	}
	items := []string{}
	for _, item := range strings.Split(raw, listSeparator) {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items, nil
}
