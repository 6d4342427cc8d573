package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/ini.v1"
)

func newInsensitive() *Handler {
	return New(WithLoadOptions(ini.LoadOptions{Insensitive: true}))
}

func TestInsensitiveHidesRootSection(t *testing.T) {
	h := newInsensitive()

	assert.Empty(t, h.Sections())
	for _, name := range []string{"", "DEFAULT", "default", "Default"} {
		assert.False(t, h.HasSection(name), "name %q", name)
		assert.True(t, errors.Is(h.AddSection(name), ErrReservedSection), "name %q", name)
	}
	assert.Empty(t, h.Sections())
}

func TestInsensitiveSetGetRoundTrip(t *testing.T) {
	h := newInsensitive()

	require.NoError(t, h.AddSection("Srv"))
	assert.True(t, h.HasSection("Srv"))
	assert.True(t, h.HasSection("SRV"))
	assert.Equal(t, []string{"srv"}, h.Sections())

	require.NoError(t, h.AddSection("SRV"))
	assert.Equal(t, []string{"srv"}, h.Sections(), "folded names are the same section")

	require.NoError(t, h.Set("Srv", "Key", "v1"))
	got, err := h.Get("Srv", "Key")
	require.NoError(t, err)
	assert.Equal(t, "v1", got)

	got, err = h.Get("srv", "KEY")
	require.NoError(t, err)
	assert.Equal(t, "v1", got)

	keys, err := h.Keys("Srv")
	require.NoError(t, err)
	assert.Equal(t, []string{"key"}, keys)
}

func TestInsensitiveMergeKeepsFirstValue(t *testing.T) {
	h := newInsensitive()
	require.NoError(t, h.AddSection("Srv"))
	require.NoError(t, h.Set("Srv", "Key", "v1"))

	h.Merge(map[string]any{"srv": map[string]any{"Key": "v2", "Other": "o"}}, false)

	got, err := h.Get("Srv", "Key")
	require.NoError(t, err)
	assert.Equal(t, "v1", got)
	got, err = h.Get("srv", "other")
	require.NoError(t, err)
	assert.Equal(t, "o", got)

	h.Merge(map[string]any{"SRV": map[string]any{"KEY": "v3"}}, true)
	got, err = h.Get("srv", "key")
	require.NoError(t, err)
	assert.Equal(t, "v3", got)
}

func TestInsensitiveKeysOnly(t *testing.T) {
	h := New(WithLoadOptions(ini.LoadOptions{InsensitiveKeys: true}))
	require.NoError(t, h.AddSection("Srv"))
	require.NoError(t, h.Set("Srv", "Key", "v1"))

	assert.True(t, h.HasSection("Srv"))
	assert.False(t, h.HasSection("srv"), "section names keep their case")

	h.Merge(map[string]any{"Srv": map[string]any{"KEY": "v2"}}, false)
	got, err := h.Get("Srv", "kEy")
	require.NoError(t, err)
	assert.Equal(t, "v1", got)
}

func TestInsensitiveParseFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "app.conf", "Name = root\n\n[Server]\nHost = localhost\n")

	h := newInsensitive()
	ok, err := h.ParseFile(path)
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, []string{"server"}, h.Sections(), "root scalars stay out")
	got, err := h.Get("SERVER", "HOST")
	require.NoError(t, err)
	assert.Equal(t, "localhost", got)
}

// Options also govern how ParseFile reads files: a bare key is rejected by
// default and accepted as a boolean with AllowBooleanKeys.
func TestLoadOptionsApplyToParsedFiles(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "app.conf", "[log]\nverbose\nlevel = info\n")

	_, err := New().ParseFile(path)
	require.Error(t, err)

	h := New(WithLoadOptions(ini.LoadOptions{AllowBooleanKeys: true}))
	ok, err := h.ParseFile(path)
	require.NoError(t, err)
	require.True(t, ok)

	verbose, err := h.GetBool("log", "verbose")
	require.NoError(t, err)
	assert.True(t, verbose)
	level, err := h.Get("log", "level")
	require.NoError(t, err)
	assert.Equal(t, "info", level)
}
