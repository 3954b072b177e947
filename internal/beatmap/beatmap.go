// Package beatmap defines the beatmap data model shared by the store, the
// info panel, and the screens.
package beatmap

import "fmt"

// Ruleset is the play mode a difficulty is charted for.
type Ruleset int

const (
	RulesetCircles Ruleset = iota
	RulesetDrums
	RulesetFruits
	RulesetKeys
)

// String returns the display name of the ruleset.
func (r Ruleset) String() string {
	switch r {
	case RulesetDrums:
		return "drums"
	case RulesetFruits:
		return "fruits"
	case RulesetKeys:
		return "keys"
	default:
		return "circles"
	}
}

// ParseRuleset maps a stored ruleset name back to its value. Unknown names
// fall back to the default ruleset.
func ParseRuleset(s string) Ruleset {
	switch s {
	case "drums":
		return RulesetDrums
	case "fruits":
		return RulesetFruits
	case "keys":
		return RulesetKeys
	default:
		return RulesetCircles
	}
}

// Beatmap is a single difficulty within a set.
type Beatmap struct {
	Name         string  `json:"name"`
	Ruleset      string  `json:"ruleset"`
	StarRating   float64 `json:"star_rating"`
	DrainSeconds int     `json:"drain_seconds"`
	BPMMin       float64 `json:"bpm_min"`
	BPMMax       float64 `json:"bpm_max"`
	Circles      int     `json:"circles"`
	Sliders      int     `json:"sliders"`
	Spinners     int     `json:"spinners"`
}

// BPMLabel formats the tempo as a single value or a min–max range.
func (b Beatmap) BPMLabel() string {
	if b.BPMMax > b.BPMMin {
		return fmt.Sprintf("%g-%g", b.BPMMin, b.BPMMax)
	}
	return fmt.Sprintf("%g", b.BPMMin)
}

// LengthLabel formats drain time as m:ss.
func (b Beatmap) LengthLabel() string {
	if b.DrainSeconds < 0 {
		return "0:00"
	}
	return fmt.Sprintf("%d:%02d", b.DrainSeconds/60, b.DrainSeconds%60)
}

// ObjectCount is the total number of hit objects.
func (b Beatmap) ObjectCount() int {
	return b.Circles + b.Sliders + b.Spinners
}

// Set groups the difficulties of one song.
type Set struct {
	OnlineID int64     `json:"online_id"`
	Title    string    `json:"title"`
	Artist   string    `json:"artist"`
	Creator  string    `json:"creator"`
	Source   string    `json:"source,omitempty"`
	Beatmaps []Beatmap `json:"beatmaps"`
}

// DisplayName is "Artist - Title" for lists and headers.
func (s *Set) DisplayName() string {
	if s == nil {
		return ""
	}
	return s.Artist + " - " + s.Title
}
