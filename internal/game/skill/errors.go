package skill

import "errors"

// Rejection reasons for an ability attempt. None of them changes any state;
// the caller decides how to surface them (log line, UI message).
var (
	ErrCasterDead            = errors.New("caster is dead")
	ErrAlreadyCasting        = errors.New("already casting")
	ErrSilenced              = errors.New("silenced")
	ErrInterruptedByMovement = errors.New("cannot cast while moving")
	ErrOnAbilityCooldown     = errors.New("ability on cooldown")
	ErrOnGlobalCooldown      = errors.New("under global cooldown")
	ErrInsufficientMana      = errors.New("not enough mana")
	ErrNoTarget              = errors.New("no target")
	ErrOutOfRange            = errors.New("target out of range")
	ErrNoLineOfSight         = errors.New("target not in line of sight")
)

// Request errors: malformed input rather than a game rule.
var (
	ErrUnknownActor   = errors.New("unknown actor")
	ErrUnknownAbility = errors.New("unknown ability")
	ErrNotCasting     = errors.New("not casting")
)

// IsRejection reports whether err is a game-rule rejection of an attempt.
func IsRejection(err error) bool {
	for _, target := range []error{
		ErrCasterDead, ErrAlreadyCasting, ErrSilenced, ErrInterruptedByMovement,
		ErrOnAbilityCooldown, ErrOnGlobalCooldown, ErrInsufficientMana,
		ErrNoTarget, ErrOutOfRange, ErrNoLineOfSight,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
