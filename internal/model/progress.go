package model

// Progressive is a read-only view used by bar widgets
// (health, mana, cast bar): current value and its maximum.
type Progressive interface {
	Progress() (current, max float64)
}

var (
	_ Progressive = (*Health)(nil)
	_ Progressive = (*Mana)(nil)
	_ Progressive = (*CastState)(nil)
	_ Progressive = (*Timer)(nil)
)
