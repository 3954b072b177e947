// Package background manages the shared stack of backdrop layers. Each
// screen owns at most one layer, pushed when the screen enters the
// navigation stack and removed when it exits. Only the current screen
// mutates the stack; that is guaranteed by lifecycle ordering, not locking.
package background

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/okarum/beatdeck/internal/ui/theme"
)

// Layer is a single backdrop: a block of dim ANSI art rendered behind
// screen content.
type Layer struct {
	Name string
	Art  string

	// DimLevel darkens the art; 0 renders it fully, higher values fade it.
	DimLevel float64
}

// Render draws the layer's art clipped to width, shifted horizontally by the
// parallax offset.
func (l *Layer) Render(width, offset int) string {
	if l == nil || l.Art == "" || width <= 0 {
		return ""
	}

	style := lipgloss.NewStyle().Foreground(theme.Border)
	if l.DimLevel >= 0.75 {
		style = style.Faint(true)
	}

	lines := strings.Split(l.Art, "\n")
	out := make([]string, len(lines))
	pad := offset % (width + 1)
	if pad < 0 {
		pad = 0
	}
	for i, line := range lines {
		shifted := strings.Repeat(" ", pad) + line
		if len(shifted) > width {
			shifted = shifted[:width]
		}
		out[i] = style.Render(shifted)
	}
	return strings.Join(out, "\n")
}

// Stack holds the live background layers, topmost last.
type Stack struct {
	layers   []*Layer
	parallax float64
	frame    int

	pushCount int
}

// NewStack creates an empty background stack with full parallax.
func NewStack() *Stack {
	return &Stack{parallax: 1.0}
}

// Push places layer on top of the stack. A nil layer is counted as a push
// but leaves the stack unchanged, so the previous backdrop stays visible.
func (s *Stack) Push(layer *Layer) {
	s.pushCount++
	if layer == nil {
		return
	}
	s.layers = append(s.layers, layer)
}

// Exit removes layer from the stack wherever it sits. Unknown or nil layers
// are ignored.
func (s *Stack) Exit(layer *Layer) {
	if layer == nil {
		return
	}
	for i, l := range s.layers {
		if l == layer {
			s.layers = append(s.layers[:i], s.layers[i+1:]...)
			return
		}
	}
}

// Current returns the topmost layer, or nil when the stack is empty.
func (s *Stack) Current() *Layer {
	if len(s.layers) == 0 {
		return nil
	}
	return s.layers[len(s.layers)-1]
}

// SetParallaxAmount scales how far the backdrop drifts per frame.
func (s *Stack) SetParallaxAmount(v float64) {
	if v < 0 {
		v = 0
	}
	s.parallax = v
}

// ParallaxAmount returns the current parallax scale.
func (s *Stack) ParallaxAmount() float64 {
	return s.parallax
}

// Advance moves the drift animation one frame forward.
func (s *Stack) Advance() {
	s.frame++
}

// Offset is the horizontal drift, in cells, for the current frame.
func (s *Stack) Offset() int {
	return int(float64(s.frame/8) * s.parallax)
}

// Depth returns the number of live layers.
func (s *Stack) Depth() int {
	return len(s.layers)
}

// PushCount reports the total number of Push calls, nil pushes included.
// Used by tests.
func (s *Stack) PushCount() int {
	return s.pushCount
}
