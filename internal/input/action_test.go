package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromKey(t *testing.T) {
	tests := []struct {
		key  string
		want Action
	}{
		{"esc", ActionBack},
		{"enter", ActionSelect},
		{"ctrl+t", ActionToggleOverlays},
		// Backspace is an edit key, not a navigation key; binding it
		// would steal deletions from focused text inputs.
		{"backspace", ActionNone},
		{"a", ActionNone},
		{"", ActionNone},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FromKey(tt.key), "key %q", tt.key)
	}
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "back", ActionBack.String())
	assert.Equal(t, "select", ActionSelect.String())
	assert.Equal(t, "toggle-overlays", ActionToggleOverlays.String())
	assert.Equal(t, "none", ActionNone.String())
}
