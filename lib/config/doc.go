// Package config provides the INI-backed configuration handler.
//
// # Data Model
//
// A configuration is an ordered set of named sections, each holding ordered
// key/value pairs. Storage is delegated to a gopkg.in/ini.v1 File owned by the
// Handler. The parser's unnamed root section ("DEFAULT", also addressed as "")
// holds top-level scalars of a file; it is not a section, is never merged and
// cannot be added.
//
// Values are strings. Set and Merge accept any Go value and normalize it with
// github.com/spf13/cast; string slices are joined with commas and values cast
// cannot convert (maps, structs) are stored in their fmt.Sprint form. The
// GetInt, GetBool, GetFloat64 and GetStrings helpers convert on the way out.
//
// # Loading Files
//
// ParseFile expands "~" and merges the file into the live configuration with
// override enabled. A missing file is not an error:
//
//	h := config.New()
//	for _, path := range []string{"/etc/app.conf", "~/.app.conf"} {
//	    if _, err := h.ParseFile(path); err != nil {
//	        return err
//	    }
//	}
//
// # Merging
//
// Merge takes a map of section name to key/value map. Non-map top-level
// entries are ignored and nothing below key level is descended into. With
// override false, keys that already exist keep their value:
//
//	h.Merge(map[string]any{
//	    "log": map[string]any{"level": "info", "color": true},
//	}, false)
//
// # Registration
//
// Load registers the handler with a handler.Registry under the label "ini".
//
// # Thread Safety
//
// A Handler is not safe for concurrent mutation. Callers that share one
// across goroutines must serialize access themselves.
package config
