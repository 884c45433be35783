package skill

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/udisondev/abilitycast/internal/data"
	"github.com/udisondev/abilitycast/internal/model"
)

// CastManager validates ability attempts and drives casts to resolution.
type CastManager struct {
	world    World
	rules    Rules
	effects  *EffectManager
	listener Listener
}

// NewCastManager creates a cast manager.
func NewCastManager(w World, rules Rules, effects *EffectManager, listener Listener) *CastManager {
	return &CastManager{
		world:    w,
		rules:    rules,
		effects:  effects,
		listener: listener,
	}
}

// TryAbility validates an attempt and, on acceptance, starts the global
// cooldown and either resolves an instant ability or begins a timed cast.
// A rejection leaves every actor untouched; the returned error wraps one of
// the rejection sentinels.
func (cm *CastManager) TryAbility(req Request) error {
	ab := req.Ability
	if ab == nil {
		return ErrUnknownAbility
	}
	caster, ok := cm.world.Actor(req.SourceID)
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownActor, req.SourceID)
	}

	var target *model.Actor
	if req.TargetID != 0 {
		target, _ = cm.world.Actor(req.TargetID)
	}

	if err := cm.validate(caster, target, ab); err != nil {
		slog.Debug("ability rejected",
			"caster", caster.ObjectID(),
			"ability", ab.Name,
			"target", req.TargetID,
			"reason", err)
		cm.listener.AttemptRejected(AttemptRejected{
			SourceID:  caster.ObjectID(),
			AbilityID: ab.ID,
			TargetID:  req.TargetID,
			Reason:    err,
		})
		return fmt.Errorf("ability %q: %w", ab.Name, err)
	}

	StartGlobalCooldown(caster, cm.rules.GlobalCooldown)

	// Area-only abilities carry no explicit target.
	var lockedTarget uint32
	if ab.RequiresTarget() {
		lockedTarget = req.TargetID
	}

	if ab.IsInstant() {
		cm.resolve(caster, ab, lockedTarget, uuid.Nil)
		return nil
	}

	caster.Cast = model.NewCastState(ab, lockedTarget)
	slog.Debug("cast started",
		"caster", caster.ObjectID(),
		"ability", ab.Name,
		"target", lockedTarget,
		"duration", ab.CastDuration)
	cm.listener.CastStarted(CastEvent{
		CastID:    caster.Cast.ID,
		SourceID:  caster.ObjectID(),
		AbilityID: ab.ID,
		TargetID:  lockedTarget,
	})
	return nil
}

// validate applies the rejection checks in their fixed order.
func (cm *CastManager) validate(caster, target *model.Actor, ab *data.Ability) error {
	switch {
	case caster.IsDead():
		return ErrCasterDead
	case caster.IsCasting():
		return ErrAlreadyCasting
	case IsSilenced(caster):
		return ErrSilenced
	case caster.IsMoving() && !ab.IsInstant():
		return ErrInterruptedByMovement
	case OnAbilityCooldown(caster, ab.ID):
		return ErrOnAbilityCooldown
	case OnGlobalCooldown(caster):
		return ErrOnGlobalCooldown
	case !caster.Mana.CanAfford(ab.ManaCost):
		return ErrInsufficientMana
	}
	return ValidateTarget(caster, target, ab, cm.world.Obstacles())
}

// Cancel discards the in-progress cast of the actor. Nothing is refunded
// because nothing was taken yet.
func (cm *CastManager) Cancel(sourceID uint32) error {
	caster, ok := cm.world.Actor(sourceID)
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownActor, sourceID)
	}
	if caster.Cast == nil {
		return ErrNotCasting
	}
	cm.interrupt(caster, StopCancelled)
	return nil
}

// Advance moves the actor's cast forward by dt, interrupting it if the
// caster moves or dies and resolving it when the timer completes.
// A cast accepted earlier in the same tick starts advancing next tick.
func (cm *CastManager) Advance(a *model.Actor, dt time.Duration) {
	cast := a.Cast
	if cast == nil {
		return
	}
	if cast.Fresh {
		cast.Fresh = false
		return
	}

	switch {
	case a.IsDead():
		cm.interrupt(a, StopCasterDied)
		return
	case a.IsMoving():
		cm.interrupt(a, StopMovement)
		return
	}

	cast.Timer.Tick(dt)
	if !cast.Timer.Finished() {
		return
	}
	a.Cast = nil
	cm.resolve(a, cast.Ability, cast.TargetID, cast.ID)
}

func (cm *CastManager) interrupt(a *model.Actor, reason StopReason) {
	cast := a.Cast
	a.Cast = nil

	slog.Debug("cast stopped",
		"caster", a.ObjectID(),
		"ability", cast.Ability.Name,
		"reason", reason)
	cm.listener.CastStopped(CastEvent{
		CastID:    cast.ID,
		SourceID:  a.ObjectID(),
		AbilityID: cast.Ability.ID,
		TargetID:  cast.TargetID,
		Reason:    reason,
	})
}

// resolve charges the caster and applies the primary then the secondary
// effect, each against its own target mode.
func (cm *CastManager) resolve(caster *model.Actor, ab *data.Ability, targetID uint32, castID uuid.UUID) {
	Deduct(caster, ab.ManaCost)
	SuppressRegen(caster, cm.rules.RegenSuppression)
	if ab.HasCooldown() {
		StartAbilityCooldown(caster, ab)
	}

	cm.listener.CastCompleted(CastEvent{
		CastID:    castID,
		SourceID:  caster.ObjectID(),
		AbilityID: ab.ID,
		TargetID:  targetID,
	})

	for _, te := range ab.Effects() {
		for _, target := range cm.targets(caster, ab, te.Mode, targetID) {
			cm.effects.Apply(caster, target, ab.ID, te.Effect)
		}
	}

	slog.Debug("ability resolved",
		"caster", caster.ObjectID(),
		"ability", ab.Name,
		"mana", caster.Mana.Points())
}

// targets resolves the target set of one effect at resolution time.
// The explicit target is locked at acceptance; area targets are recomputed.
func (cm *CastManager) targets(caster *model.Actor, ab *data.Ability, mode data.TargetMode, targetID uint32) []*model.Actor {
	switch mode {
	case data.TargetArea:
		return areaTargets(cm.world, caster, ab.Range)
	default:
		target, ok := cm.world.Actor(targetID)
		if !ok {
			return nil
		}
		return []*model.Actor{target}
	}
}
