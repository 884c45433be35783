package main

import (
	"log/slog"

	"github.com/udisondev/abilitycast/internal/game/skill"
)

// logListener prints combat text.
type logListener struct {
	skill.NopListener
}

func (logListener) CastStarted(ev skill.CastEvent) {
	slog.Info("cast started", "source", ev.SourceID, "ability", ev.AbilityID, "target", ev.TargetID)
}

func (logListener) CastCompleted(ev skill.CastEvent) {
	slog.Debug("cast completed", "source", ev.SourceID, "ability", ev.AbilityID, "target", ev.TargetID)
}

func (logListener) CastStopped(ev skill.CastEvent) {
	slog.Info("cast stopped", "source", ev.SourceID, "ability", ev.AbilityID, "reason", ev.Reason)
}

func (logListener) MomentaryApplied(ev skill.MomentaryApplied) {
	slog.Info(ev.Kind.String(),
		"source", ev.SourceID,
		"target", ev.TargetID,
		"amount", ev.Amount,
		"critical", ev.Critical,
		"periodic", ev.Periodic)
}
