package jobs

import (
	"math/rand"
	"time"
)

// RandomSource is the randomness the simulation jobs consume. Narrow on
// purpose; tests drive deterministic sequences through it.
type RandomSource interface {
	// Intn returns a uniform int in [0, n).
	Intn(n int) int
	// Float64 returns a uniform float in [0.0, 1.0).
	Float64() float64
}

// NewRandomSource returns a time-seeded source for production wiring.
func NewRandomSource() RandomSource {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// RandomDrift produces per-tick coordinate deltas for the courier movement
// simulation. Implements the movement handler's DriftSource.
type RandomDrift struct {
	source RandomSource
	// maxDegrees bounds each axis of a single step.
	maxDegrees float64
}

// NewRandomDrift creates a drift source with the given step bound.
func NewRandomDrift(source RandomSource, maxDegrees float64) *RandomDrift {
	return &RandomDrift{
		source:     source,
		maxDegrees: maxDegrees,
	}
}

// Delta returns a displacement uniform in [-maxDegrees, maxDegrees] per axis.
func (d *RandomDrift) Delta() (float64, float64) {
	dLat := (d.source.Float64()*2 - 1) * d.maxDegrees
	dLng := (d.source.Float64()*2 - 1) * d.maxDegrees
	return dLat, dLng
}
