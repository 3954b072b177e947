package background

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPushNilCountsButDoesNotStack(t *testing.T) {
	s := NewStack()

	s.Push(nil)

	assert.Equal(t, 1, s.PushCount())
	assert.Equal(t, 0, s.Depth())
	assert.Nil(t, s.Current())
}

func TestPushAndExit(t *testing.T) {
	s := NewStack()
	a := &Layer{Name: "menu"}
	b := &Layer{Name: "detail"}

	s.Push(a)
	s.Push(b)
	assert.Equal(t, b, s.Current())

	s.Exit(b)
	assert.Equal(t, a, s.Current())

	s.Exit(a)
	assert.Nil(t, s.Current())
}

func TestExitRemovesBuriedLayer(t *testing.T) {
	s := NewStack()
	a := &Layer{Name: "a"}
	b := &Layer{Name: "b"}
	s.Push(a)
	s.Push(b)

	// A suspended screen's layer can be torn down while covered.
	s.Exit(a)

	assert.Equal(t, 1, s.Depth())
	assert.Equal(t, b, s.Current())
}

func TestExitUnknownLayerIsNoop(t *testing.T) {
	s := NewStack()
	a := &Layer{Name: "a"}
	s.Push(a)

	s.Exit(&Layer{Name: "stranger"})
	s.Exit(nil)

	assert.Equal(t, 1, s.Depth())
}

func TestParallaxClampAndOffset(t *testing.T) {
	s := NewStack()

	s.SetParallaxAmount(-2)
	assert.Equal(t, 0.0, s.ParallaxAmount())

	s.SetParallaxAmount(1.0)
	for i := 0; i < 16; i++ {
		s.Advance()
	}
	assert.Equal(t, 2, s.Offset())

	s.SetParallaxAmount(0.5)
	assert.Equal(t, 1, s.Offset())
}

func TestLayerRenderClipsToWidth(t *testing.T) {
	l := &Layer{Art: "0123456789"}
	out := l.Render(4, 0)
	assert.Contains(t, out, "0123")
	assert.NotContains(t, out, "4567")
}
