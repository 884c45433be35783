package skill

import (
	"log/slog"
	"sync"
	"time"

	"github.com/udisondev/abilitycast/internal/model"
)

// Engine runs ability casting and effect resolution in discrete ticks.
//
// Submit and SubmitCancel may be called from any goroutine. Every actor
// mutation happens inside Tick, which must be called from a single goroutine.
// Within a tick the order is fixed:
//
//	(a) cooldowns and regen-suppression windows age and expire
//	(b) queued attempts and cancellations are processed in arrival order
//	(c) casts advance, interrupt or resolve
//	(d) mana regenerates
//	(e) periodic and lasting effect instances age, fire and expire
type Engine struct {
	world    World
	rules    Rules
	listener Listener

	casts   *CastManager
	effects *EffectManager

	mu    sync.Mutex
	queue []queued

	elapsed time.Duration
	ticks   uint64
}

type queued struct {
	req    Request
	cancel bool
}

// NewEngine creates an engine over w. Zero rule fields take defaults,
// a nil roller draws from math/rand and a nil listener discards events.
func NewEngine(w World, rules Rules, roller Roller, listener Listener) *Engine {
	rules = rules.withDefaults()
	if roller == nil {
		roller = NewRandomRoller()
	}
	if listener == nil {
		listener = NopListener{}
	}

	effects := NewEffectManager(w, roller, listener, rules.CriticalMultiplier)
	return &Engine{
		world:    w,
		rules:    rules,
		listener: listener,
		effects:  effects,
		casts:    NewCastManager(w, rules, effects, listener),
	}
}

// Rules returns the effective tuning.
func (e *Engine) Rules() Rules {
	return e.rules
}

// Elapsed returns the simulated time advanced so far.
func (e *Engine) Elapsed() time.Duration {
	return e.elapsed
}

// Ticks returns the number of completed ticks.
func (e *Engine) Ticks() uint64 {
	return e.ticks
}

// Submit queues an ability attempt for the next tick.
func (e *Engine) Submit(req Request) {
	e.mu.Lock()
	e.queue = append(e.queue, queued{req: req})
	e.mu.Unlock()
}

// SubmitCancel queues a cancellation of the actor's cast for the next tick.
func (e *Engine) SubmitCancel(sourceID uint32) {
	e.mu.Lock()
	e.queue = append(e.queue, queued{req: Request{SourceID: sourceID}, cancel: true})
	e.mu.Unlock()
}

func (e *Engine) drain() []queued {
	e.mu.Lock()
	defer e.mu.Unlock()
	pending := e.queue
	e.queue = nil
	return pending
}

// Tick advances the simulation by dt and returns the outcome of every
// request processed during it.
func (e *Engine) Tick(dt time.Duration) []Outcome {
	if dt < 0 {
		dt = 0
	}

	e.forEach(func(a *model.Actor) {
		TickCooldowns(a, dt)
		TickRegenSuppression(a, dt)
	})

	pending := e.drain()
	outcomes := make([]Outcome, 0, len(pending))
	for _, q := range pending {
		var err error
		if q.cancel {
			err = e.casts.Cancel(q.req.SourceID)
		} else {
			err = e.casts.TryAbility(q.req)
		}
		outcomes = append(outcomes, Outcome{Cancel: q.cancel, Request: q.req, Err: err})
	}

	e.forEach(func(a *model.Actor) {
		e.casts.Advance(a, dt)
	})

	e.forEach(func(a *model.Actor) {
		if restored := Regenerate(a, e.rules.RegenInterval, dt); restored > 0 {
			slog.Debug("mana regenerated", "actor", a.ObjectID(), "restored", restored, "mana", a.Mana.Points())
		}
	})

	e.forEach(func(a *model.Actor) {
		e.effects.Advance(a, dt)
	})

	e.elapsed += dt
	e.ticks++
	return outcomes
}

func (e *Engine) forEach(fn func(*model.Actor)) {
	e.world.ForEachActor(func(a *model.Actor) bool {
		fn(a)
		return true
	})
}
