package skill

import "math/rand/v2"

// Roller is the randomness source for magnitudes and critical rolls.
// Tests inject a deterministic implementation.
type Roller interface {
	// Range returns a uniform integer in [min, max] inclusive.
	Range(min, max int32) int32
	// Chance returns a uniform sample in [0, 1).
	Chance() float64
}

// RandomRoller draws from math/rand/v2.
type RandomRoller struct {
	rng *rand.Rand
}

// NewRandomRoller creates a roller seeded from the runtime source.
func NewRandomRoller() *RandomRoller {
	return &RandomRoller{}
}

// NewSeededRoller creates a reproducible roller.
func NewSeededRoller(seed uint64) *RandomRoller {
	return &RandomRoller{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (r *RandomRoller) Range(min, max int32) int32 {
	if max <= min {
		return min
	}
	n := max - min + 1
	if r.rng == nil {
		return min + rand.Int32N(n)
	}
	return min + r.rng.Int32N(n)
}

func (r *RandomRoller) Chance() float64 {
	if r.rng == nil {
		return rand.Float64()
	}
	return r.rng.Float64()
}
