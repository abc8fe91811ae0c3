// Package decor generates the cosmetic particle sets (balloons, confetti)
// shown behind the greeting. Items carry no meaning beyond how they are drawn.
package decor

import (
	"math/rand/v2"
	"time"
)

// Color is a hex color string such as "#fecdd3".
type Color string

// Item is one balloon or confetti piece. Items are immutable once generated.
type Item struct {
	ID       int
	X        float64 // horizontal position, percent of the field width
	Delay    float64 // seconds before the item starts moving
	Duration float64 // seconds to cross the field
	Color    Color
}

// Spec parameterizes a generated set.
type Spec struct {
	Count       int
	MaxX        float64
	MaxDelay    float64
	MinDuration float64
	DurSpread   float64
	Palette     []Color
}

// Balloons rise from the bottom during the balloons and cake phases.
var Balloons = Spec{
	Count:       15,
	MaxX:        90,
	MaxDelay:    2,
	MinDuration: 8,
	DurSpread:   5,
	Palette:     []Color{"#fecdd3", "#e9d5ff", "#c7d2fe", "#fef08a"},
}

// Confetti falls from the top during the celebration phase.
var Confetti = Spec{
	Count:       100,
	MaxX:        100,
	MaxDelay:    2,
	MinDuration: 2,
	DurSpread:   3,
	Palette:     []Color{"#fecdd3", "#e9d5ff", "#c7d2fe", "#fde047", "#6ee7b7"},
}

// Generate returns spec.Count items drawn from rng. Colors cycle through the
// palette by index so the distribution stays even.
func Generate(rng *rand.Rand, spec Spec) []Item {
	if spec.Count <= 0 {
		return nil
	}
	items := make([]Item, spec.Count)
	for i := range items {
		var c Color
		if len(spec.Palette) > 0 {
			c = spec.Palette[i%len(spec.Palette)]
		}
		items[i] = Item{
			ID:       i,
			X:        rng.Float64() * spec.MaxX,
			Delay:    rng.Float64() * spec.MaxDelay,
			Duration: rng.Float64()*spec.DurSpread + spec.MinDuration,
			Color:    c,
		}
	}
	return items
}

// Progress reports how far along its path the item is after elapsed time
// since the field appeared. started is false while the item is still waiting
// out its delay.
func (it Item) Progress(elapsed time.Duration) (frac float64, started bool) {
	t := elapsed.Seconds() - it.Delay
	if t < 0 {
		return 0, false
	}
	if it.Duration <= 0 {
		return 1, true
	}
	frac = t / it.Duration
	if frac > 1 {
		frac = 1
	}
	return frac, true
}

// Generator produces fresh decoration sets. The sequencer calls it at most
// once per phase activation.
type Generator struct {
	rng      *rand.Rand
	balloons Spec
	confetti Spec
}

// NewGenerator seeds a generator. A zero seed draws from the runtime source.
func NewGenerator(seed uint64) *Generator {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &Generator{
		rng:      rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		balloons: Balloons,
		confetti: Confetti,
	}
}

// WithCounts overrides the preset sizes.
func (g *Generator) WithCounts(balloons, confetti int) *Generator {
	g.balloons.Count = balloons
	g.confetti.Count = confetti
	return g
}

// Balloons returns a new balloon set.
func (g *Generator) Balloons() []Item { return Generate(g.rng, g.balloons) }

// Confetti returns a new confetti set.
func (g *Generator) Confetti() []Item { return Generate(g.rng, g.confetti) }
