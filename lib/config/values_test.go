package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypedGetters(t *testing.T) {
	h := New()
	h.Merge(map[string]any{
		"app": map[string]any{
			"port":    " 8080 ",
			"debug":   "true",
			"ratio":   "0.25",
			"hosts":   "a.example, b.example,,c.example ",
			"name":    "demo",
			"nothing": "",
		},
	}, true)

	port, err := h.GetInt("app", "port")
	require.NoError(t, err)
	assert.Equal(t, 8080, port)

	debug, err := h.GetBool("app", "debug")
	require.NoError(t, err)
	assert.True(t, debug)

	ratio, err := h.GetFloat64("app", "ratio")
	require.NoError(t, err)
	assert.InDelta(t, 0.25, ratio, 1e-9)

	hosts, err := h.GetStrings("app", "hosts")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.example", "b.example", "c.example"}, hosts)

	empty, err := h.GetStrings("app", "nothing")
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = h.GetInt("app", "name")
	assert.Error(t, err)
	_, err = h.GetBool("app", "name")
	assert.Error(t, err)
	_, err = h.GetFloat64("app", "name")
	assert.Error(t, err)
}

func TestTypedGettersPropagateLookupErrors(t *testing.T) {
	h := New()

	_, err := h.GetInt("app", "port")
	assert.True(t, errors.Is(err, ErrNoSection))
	_, err = h.GetStrings("app", "hosts")
	assert.True(t, errors.Is(err, ErrNoSection))
}

func TestToValue(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"string", "x", "x"},
		{"int", 42, "42"},
		{"bool", false, "false"},
		{"nil", nil, ""},
		{"string slice", []string{"a", "b"}, "a,b"},
		{"mixed slice", []any{"a", 1, true}, "a,1,true"},
		{"nested map is opaque", map[string]any{"deep": 1}, "map[deep:1]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, toValue(tt.in))
		})
	}
}
