package scenario

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/udisondev/abilitycast/internal/data"
	"github.com/udisondev/abilitycast/internal/game/skill"
	"github.com/udisondev/abilitycast/internal/model"
	"github.com/udisondev/abilitycast/internal/world"
)

// Submitter queues requests for the next engine tick. Implemented by *skill.Engine.
type Submitter interface {
	Submit(req skill.Request)
	SubmitCancel(sourceID uint32)
}

// AbilityLookup resolves an ability by name.
type AbilityLookup func(name string) *data.Ability

type resolvedStep struct {
	Step
	sourceID uint32
	targetID uint32
	ability  *data.Ability
}

// Player feeds scenario steps into the engine as simulated time passes.
// Movement steps act on the world directly, the way a movement system would.
type Player struct {
	world  *world.World
	engine Submitter
	steps  []resolvedStep
	next   int
}

// NewPlayer resolves actor and ability names of every step up front.
func NewPlayer(s *Scenario, w *world.World, ids map[string]uint32, engine Submitter, lookup AbilityLookup) (*Player, error) {
	steps := make([]resolvedStep, 0, len(s.Steps))
	for i, st := range s.Steps {
		rs := resolvedStep{Step: st, sourceID: ids[st.Actor], targetID: ids[st.Target]}
		if st.Cast != "" {
			rs.ability = lookup(st.Cast)
			if rs.ability == nil {
				return nil, fmt.Errorf("step %d: unknown ability %q", i, st.Cast)
			}
		}
		steps = append(steps, rs)
	}
	return &Player{world: w, engine: engine, steps: steps}, nil
}

// Advance applies every step due at or before now and returns how many ran.
func (p *Player) Advance(now time.Duration) int {
	applied := 0
	for p.next < len(p.steps) && p.steps[p.next].At <= now {
		p.apply(p.steps[p.next])
		p.next++
		applied++
	}
	return applied
}

// Done reports whether every step has been applied.
func (p *Player) Done() bool {
	return p.next >= len(p.steps)
}

func (p *Player) apply(st resolvedStep) {
	switch {
	case st.ability != nil:
		slog.Debug("scenario cast", "at", st.At, "actor", st.Actor, "ability", st.ability.Name, "target", st.Target)
		p.engine.Submit(skill.Request{SourceID: st.sourceID, Ability: st.ability, TargetID: st.targetID})
	case st.Cancel:
		slog.Debug("scenario cancel", "at", st.At, "actor", st.Actor)
		p.engine.SubmitCancel(st.sourceID)
	case st.Move != nil:
		if a, ok := p.world.Actor(st.sourceID); ok {
			a.SetMoving(true)
			a.SetLocation(model.NewLocation(st.Move[0], st.Move[1]))
		}
	case st.Stop:
		if a, ok := p.world.Actor(st.sourceID); ok {
			a.SetMoving(false)
		}
	}
}
