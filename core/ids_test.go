package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewID(t *testing.T) {
	t.Run("produces a prefixed ULID", func(t *testing.T) {
		id := NewID("gc")

		assert.True(t, strings.HasPrefix(id, "gc_"))
		assert.Len(t, id, len("gc_")+26)
		assert.True(t, IsValidID(id))
	})

	t.Run("normalizes the prefix", func(t *testing.T) {
		id := NewID("  GC ")
		assert.True(t, strings.HasPrefix(id, "gc_"))
	})

	t.Run("generated IDs are unique", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 100; i++ {
			id := NewID("gc")
			assert.False(t, seen[id])
			seen[id] = true
		}
	})

	t.Run("empty prefix panics", func(t *testing.T) {
		assert.Panics(t, func() { NewID("  ") })
	})
}

func TestIsValidID(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		expected bool
	}{
		{name: "valid prefixed ULID", id: "gc_01G0EZ1XTM37C5X11SQTDNCTM1", expected: true},
		{name: "empty string", id: "", expected: false},
		{name: "missing prefix", id: "_01G0EZ1XTM37C5X11SQTDNCTM1", expected: false},
		{name: "missing separator", id: "gc01G0EZ1XTM37C5X11SQTDNCTM1", expected: false},
		{name: "uppercase prefix", id: "GC_01G0EZ1XTM37C5X11SQTDNCTM1", expected: false},
		{name: "ulid too short", id: "gc_01G0EZ1XTM", expected: false},
		{name: "invalid base32 characters", id: "gc_01G0EZ1XTM37C5X11SQTDNCTMU", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsValidID(tt.id))
		})
	}
}
