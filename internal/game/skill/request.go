package skill

import "github.com/udisondev/abilitycast/internal/data"

// Request is an inbound ability attempt.
type Request struct {
	SourceID uint32
	Ability  *data.Ability
	// TargetID is the explicit target; 0 means none.
	TargetID uint32
}

// Outcome reports how a queued request was handled during a tick.
type Outcome struct {
	// Cancel is true for cancellation requests.
	Cancel  bool
	Request Request
	// Err is nil on acceptance. Rejections match the Err* sentinels.
	Err error
}
