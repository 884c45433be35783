package skill

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/udisondev/abilitycast/internal/data"
	"github.com/udisondev/abilitycast/internal/model"
)

// EffectManager applies effects to actors and advances the periodic and
// lasting instances they leave behind.
type EffectManager struct {
	world    World
	roller   Roller
	listener Listener
	critMul  int32
}

// NewEffectManager creates an effect manager.
func NewEffectManager(w World, roller Roller, listener Listener, criticalMultiplier int32) *EffectManager {
	return &EffectManager{
		world:    w,
		roller:   roller,
		listener: listener,
		critMul:  criticalMultiplier,
	}
}

// Apply resolves one effect of ability abilityID from source onto target.
// A dead target is a no-op.
func (m *EffectManager) Apply(source, target *model.Actor, abilityID data.AbilityID, eff data.Effect) {
	if target == nil || target.IsDead() {
		return
	}

	switch {
	case eff.Momentary != nil && eff.Momentary.Schedule.Periodic:
		pe := model.NewPeriodicEffect(*eff.Momentary, abilityID, source.ObjectID())
		target.Periodic = append(target.Periodic, pe)
		slog.Debug("periodic effect registered",
			"ability", abilityID,
			"kind", eff.Momentary.Kind,
			"source", source.ObjectID(),
			"target", target.ObjectID(),
			"effect", pe.ID,
			"fires", pe.RemainingFires())
	case eff.Momentary != nil:
		m.applyMomentary(source.ObjectID(), source.Critical(), target, abilityID, *eff.Momentary, uuid.Nil)
	case eff.Lasting != nil:
		target.Lasting = append(target.Lasting, model.NewLastingEffect(*eff.Lasting, abilityID, source.ObjectID()))
		slog.Debug("lasting effect applied",
			"ability", abilityID,
			"kind", eff.Lasting.Kind,
			"source", source.ObjectID(),
			"target", target.ObjectID(),
			"duration", eff.Lasting.Duration)
	}
}

// applyMomentary rolls magnitude and critical, then changes target health.
// effectID is the periodic instance firing, or uuid.Nil for a one-shot.
func (m *EffectManager) applyMomentary(sourceID uint32, critical float64, target *model.Actor, abilityID data.AbilityID, mom data.Momentary, effectID uuid.UUID) {
	if target.IsDead() {
		return
	}
	handler, ok := momentaryHandlers[mom.Kind]
	if !ok {
		slog.Warn("no handler for momentary effect", "kind", mom.Kind)
		return
	}

	amount := m.roller.Range(mom.Min, mom.Max)
	crit := m.roller.Chance() < critical
	if crit {
		amount *= m.critMul
	}

	died := handler(target, amount)
	m.listener.MomentaryApplied(MomentaryApplied{
		SourceID:  sourceID,
		TargetID:  target.ObjectID(),
		AbilityID: abilityID,
		Kind:      mom.Kind,
		Amount:    amount,
		Critical:  crit,
		Periodic:  effectID != uuid.Nil,
		EffectID:  effectID,
	})

	if died {
		slog.Info("actor died", "actor", target.ObjectID(), "name", target.Name(), "killer", sourceID)
		m.listener.ActorDied(ActorDied{ActorID: target.ObjectID(), KillerID: sourceID})
	}
}

// Advance ages the actor's lasting and periodic instances by dt.
// Instances registered earlier in the same tick are only marked as started.
func (m *EffectManager) Advance(a *model.Actor, dt time.Duration) {
	if a.IsDead() {
		a.Lasting = nil
		a.Periodic = nil
		return
	}
	a.Lasting = tickLasting(a.Lasting, dt)
	a.Periodic = m.tickPeriodic(a, a.Periodic, dt)
}

func tickLasting(effects []*model.LastingEffect, dt time.Duration) []*model.LastingEffect {
	n := 0
	for _, le := range effects {
		if le.Fresh {
			le.Fresh = false
		} else {
			le.Timer.Tick(dt)
		}
		if le.Timer.Finished() {
			continue
		}
		effects[n] = le
		n++
	}
	clear(effects[n:])
	return effects[:n]
}

func (m *EffectManager) tickPeriodic(a *model.Actor, effects []*model.PeriodicEffect, dt time.Duration) []*model.PeriodicEffect {
	n := 0
	for _, pe := range effects {
		if pe.Fresh {
			pe.Fresh = false
			effects[n] = pe
			n++
			continue
		}

		pe.Interval.Tick(dt)
		pe.Duration.Tick(dt)

		fires := min(pe.Interval.TimesFinished(), pe.RemainingFires())
		if fires > 0 {
			// A vanished source no longer crits.
			var critical float64
			if src, ok := m.world.Actor(pe.SourceID); ok {
				critical = src.Critical()
			}
			for range fires {
				m.applyMomentary(pe.SourceID, critical, a, pe.AbilityID, pe.Momentary, pe.ID)
				pe.Fired++
			}
		}

		if pe.Duration.Finished() || a.IsDead() {
			continue
		}
		effects[n] = pe
		n++
	}
	clear(effects[n:])
	return effects[:n]
}
