// Package audio provides a minimal sample trigger for transition cues.
// Terminals have no mixer; the default sampler rings the bell, and a nil or
// unloaded sample degrades to a no-op.
package audio

import "io"

// Sample is a named, optionally loaded transition cue.
type Sample struct {
	Name   string
	loaded bool
}

// LoadSample returns a loaded sample for the given cue name.
func LoadSample(name string) *Sample {
	return &Sample{Name: name, loaded: true}
}

// Loaded reports whether the sample can be played.
func (s *Sample) Loaded() bool {
	return s != nil && s.loaded
}

// Sampler plays transition cues.
type Sampler interface {
	// Play triggers the sample. Nil or unloaded samples are skipped.
	Play(s *Sample)
}

// BellSampler writes the terminal bell for every loaded sample.
type BellSampler struct {
	W io.Writer
}

func (b *BellSampler) Play(s *Sample) {
	if !s.Loaded() || b == nil || b.W == nil {
		return
	}
	_, _ = b.W.Write([]byte{'\a'})
}

// CountingSampler records plays by sample name. Used by tests.
type CountingSampler struct {
	Plays []string
}

func (c *CountingSampler) Play(s *Sample) {
	if !s.Loaded() {
		return
	}
	c.Plays = append(c.Plays, s.Name)
}
