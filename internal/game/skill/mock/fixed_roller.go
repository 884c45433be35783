package mockskill

import "sync"

// FixedRoller implements skill.Roller with predetermined results.
// Range returns min unless UseMax is set; Chance returns the queued
// samples in order and then Default.
type FixedRoller struct {
	mu      sync.Mutex
	UseMax  bool
	Default float64
	samples []float64
}

// NewFixedRoller creates a roller returning min magnitudes and never critting.
func NewFixedRoller() *FixedRoller {
	return &FixedRoller{Default: 0.999}
}

// QueueChances appends critical samples consumed before Default.
func (r *FixedRoller) QueueChances(samples ...float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.samples = append(r.samples, samples...)
}

func (r *FixedRoller) Range(min, max int32) int32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.UseMax {
		return max
	}
	return min
}

func (r *FixedRoller) Chance() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.samples) == 0 {
		return r.Default
	}
	s := r.samples[0]
	r.samples = r.samples[1:]
	return s
}
