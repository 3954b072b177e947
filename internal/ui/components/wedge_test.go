package components

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/okarum/beatdeck/internal/beatmap"
)

func sampleSet() *beatmap.Set {
	return &beatmap.Set{
		OnlineID: 42,
		Title:    "Night Circuit",
		Artist:   "hexaline",
		Creator:  "mapwright",
		Beatmaps: []beatmap.Beatmap{
			{Name: "Normal", Ruleset: "circles", StarRating: 2.4, DrainSeconds: 225, BPMMin: 180, Circles: 200, Sliders: 80, Spinners: 1},
			{Name: "Insane", Ruleset: "circles", StarRating: 5.1, DrainSeconds: 225, BPMMin: 120, BPMMax: 240, Circles: 410, Sliders: 189, Spinners: 2},
		},
	}
}

func TestRenderWedgeShowsMetadata(t *testing.T) {
	out := RenderWedge(sampleSet(), 0, 100)

	assert.Contains(t, out, "Night Circuit")
	assert.Contains(t, out, "hexaline")
	assert.Contains(t, out, "mapped by mapwright")
	assert.Contains(t, out, "3:45")
	assert.Contains(t, out, "180")
	assert.Contains(t, out, "200")
}

func TestRenderWedgeShowsBPMRange(t *testing.T) {
	out := RenderWedge(sampleSet(), 1, 100)
	assert.Contains(t, out, "120-240")
}

func TestRenderWedgeNilSet(t *testing.T) {
	out := RenderWedge(nil, 0, 80)
	assert.Contains(t, out, "no beatmap selected")
}

func TestRenderWedgeOutOfRangeDifficulty(t *testing.T) {
	out := RenderWedge(sampleSet(), 9, 80)
	assert.Contains(t, out, "Night Circuit")
	assert.NotContains(t, out, "Length")
}

func TestWedgeDifficultyLabels(t *testing.T) {
	out := WedgeDifficultyLabels(sampleSet(), 1)
	assert.Contains(t, out, "Normal 2.4★")
	assert.Contains(t, out, "[Insane 5.1★]")

	assert.Equal(t, "", WedgeDifficultyLabels(nil, 0))
}
