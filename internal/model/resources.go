package model

// Health is a target-side pool of hit points, clamped to [0, max].
type Health struct {
	points    int32
	maxPoints int32
}

// NewHealth creates a full Health pool.
func NewHealth(maxPoints int32) Health {
	if maxPoints < 1 {
		maxPoints = 1
	}
	return Health{points: maxPoints, maxPoints: maxPoints}
}

// Points returns current HP.
func (h *Health) Points() int32 { return h.points }

// Max returns maximum HP.
func (h *Health) Max() int32 { return h.maxPoints }

// IsDead reports whether HP reached zero.
func (h *Health) IsDead() bool { return h.points <= 0 }

// Set sets current HP with clamp 0..max.
func (h *Health) Set(points int32) {
	h.points = clamp(points, 0, h.maxPoints)
}

// Reduce subtracts damage, never going below zero.
// Returns true if this call brought HP to zero.
func (h *Health) Reduce(amount int32) bool {
	if amount <= 0 || h.points <= 0 {
		return false
	}
	h.Set(h.points - amount)
	return h.points == 0
}

// Restore adds healing, never exceeding max.
func (h *Health) Restore(amount int32) {
	if amount <= 0 {
		return
	}
	h.Set(h.points + amount)
}

// Progress implements Progressive.
func (h *Health) Progress() (float64, float64) {
	return float64(h.points), float64(h.maxPoints)
}

// Mana is a caster-side resource pool with passive regeneration.
// Invariant: 0 <= points <= max.
type Mana struct {
	points    int32
	maxPoints int32
	regen     int32
}

// NewMana creates a full Mana pool regenerating regen points per step.
func NewMana(maxPoints, regen int32) Mana {
	if maxPoints < 0 {
		maxPoints = 0
	}
	if regen < 0 {
		regen = 0
	}
	return Mana{points: maxPoints, maxPoints: maxPoints, regen: regen}
}

// Points returns current MP.
func (m *Mana) Points() int32 { return m.points }

// Max returns maximum MP.
func (m *Mana) Max() int32 { return m.maxPoints }

// Regen returns points restored per regeneration step.
func (m *Mana) Regen() int32 { return m.regen }

// Set sets current MP with clamp 0..max.
func (m *Mana) Set(points int32) {
	m.points = clamp(points, 0, m.maxPoints)
}

// CanAfford reports whether cost does not exceed current MP.
func (m *Mana) CanAfford(cost int32) bool {
	return cost <= m.points
}

// Spend subtracts cost, never going below zero.
func (m *Mana) Spend(cost int32) {
	if cost <= 0 {
		return
	}
	m.Set(m.points - cost)
}

// Regenerate adds one regeneration step, clamped to max.
// Returns the amount actually restored.
func (m *Mana) Regenerate() int32 {
	if m.points >= m.maxPoints {
		return 0
	}
	before := m.points
	m.Set(m.points + m.regen)
	return m.points - before
}

// Progress implements Progressive.
func (m *Mana) Progress() (float64, float64) {
	return float64(m.points), float64(m.maxPoints)
}

func clamp(v, lo, hi int32) int32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
