package skill

import "time"

// Rules holds the engine-wide tuning constants.
type Rules struct {
	GlobalCooldown     time.Duration
	RegenInterval      time.Duration
	RegenSuppression   time.Duration
	CriticalMultiplier int32
}

// DefaultRules returns the stock tuning.
func DefaultRules() Rules {
	return Rules{
		GlobalCooldown:     1500 * time.Millisecond,
		RegenInterval:      500 * time.Millisecond,
		RegenSuppression:   5 * time.Second,
		CriticalMultiplier: 2,
	}
}

// withDefaults fills zero fields from DefaultRules.
func (r Rules) withDefaults() Rules {
	d := DefaultRules()
	if r.GlobalCooldown <= 0 {
		r.GlobalCooldown = d.GlobalCooldown
	}
	if r.RegenInterval <= 0 {
		r.RegenInterval = d.RegenInterval
	}
	if r.RegenSuppression <= 0 {
		r.RegenSuppression = d.RegenSuppression
	}
	if r.CriticalMultiplier <= 0 {
		r.CriticalMultiplier = d.CriticalMultiplier
	}
	return r
}
