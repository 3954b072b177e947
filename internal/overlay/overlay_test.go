package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCloseAllHidesToolbar(t *testing.T) {
	m := NewManager()
	m.ShowToolbar()

	m.CloseAll()

	assert.False(t, m.ToolbarVisible.Get())
	assert.Equal(t, 1, m.CloseAllCount())
}

func TestToggleToolbarRespectsDisabled(t *testing.T) {
	m := NewManager()
	m.SetActivation(ActivationDisabled)

	m.ToggleToolbar()

	assert.False(t, m.ToolbarVisible.Get(), "disabled activation must block the toolbar")
}

func TestToggleToolbarFlips(t *testing.T) {
	m := NewManager()

	m.ToggleToolbar()
	assert.True(t, m.ToolbarVisible.Get())

	m.ToggleToolbar()
	assert.False(t, m.ToolbarVisible.Get())
}

func TestActivationString(t *testing.T) {
	tests := []struct {
		a    Activation
		want string
	}{
		{ActivationAll, "all"},
		{ActivationUserTriggered, "user-triggered"},
		{ActivationDisabled, "disabled"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.a.String())
	}
}
