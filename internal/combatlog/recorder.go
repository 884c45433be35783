// Package combatlog records engine notifications and ships them to
// PostgreSQL in batches. It only observes; game state never depends on it.
package combatlog

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/udisondev/abilitycast/internal/data"
	"github.com/udisondev/abilitycast/internal/game/skill"
)

// Copier bulk-inserts rows. Implemented by *pgxpool.Pool and pgx.Tx.
type Copier interface {
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

// Event names stored in the event column.
const (
	EventRejected  = "rejected"
	EventStarted   = "cast_started"
	EventStopped   = "cast_stopped"
	EventCompleted = "cast_completed"
	EventDamage    = "damage"
	EventHeal      = "heal"
	EventDied      = "died"
)

var columns = []string{
	"id", "run_id", "sim_time_ms", "event", "cast_id",
	"source_id", "target_id", "ability_id", "amount", "critical", "periodic", "detail",
	"effect_id",
}

// Entry is one combat log row.
type Entry struct {
	ID        uuid.UUID
	At        time.Duration
	Event     string
	CastID    uuid.UUID
	SourceID  uint32
	TargetID  uint32
	AbilityID data.AbilityID
	Amount    int32
	Critical  bool
	Periodic  bool
	Detail    string
	EffectID  uuid.UUID
}

// Recorder implements skill.Listener by buffering entries until Flush.
type Recorder struct {
	copier Copier
	runID  uuid.UUID
	clock  func() time.Duration

	mu      sync.Mutex
	pending []Entry
}

var _ skill.Listener = (*Recorder)(nil)

// NewRecorder creates a recorder tagging rows with runID.
// clock returns the simulated time stamped on each entry.
func NewRecorder(copier Copier, runID uuid.UUID, clock func() time.Duration) *Recorder {
	if clock == nil {
		clock = func() time.Duration { return 0 }
	}
	return &Recorder{copier: copier, runID: runID, clock: clock}
}

// RunID returns the run tag.
func (r *Recorder) RunID() uuid.UUID {
	return r.runID
}

// Pending returns a copy of the buffered entries.
func (r *Recorder) Pending() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.pending))
	copy(out, r.pending)
	return out
}

func (r *Recorder) add(e Entry) {
	e.ID = uuid.New()
	e.At = r.clock()
	r.mu.Lock()
	r.pending = append(r.pending, e)
	r.mu.Unlock()
}

func (r *Recorder) AttemptRejected(ev skill.AttemptRejected) {
	r.add(Entry{
		Event:     EventRejected,
		SourceID:  ev.SourceID,
		TargetID:  ev.TargetID,
		AbilityID: ev.AbilityID,
		Detail:    ev.Reason.Error(),
	})
}

func (r *Recorder) CastStarted(ev skill.CastEvent) {
	r.add(castEntry(EventStarted, ev))
}

func (r *Recorder) CastStopped(ev skill.CastEvent) {
	e := castEntry(EventStopped, ev)
	e.Detail = ev.Reason.String()
	r.add(e)
}

func (r *Recorder) CastCompleted(ev skill.CastEvent) {
	r.add(castEntry(EventCompleted, ev))
}

func (r *Recorder) MomentaryApplied(ev skill.MomentaryApplied) {
	event := EventDamage
	if ev.Kind == data.MomentaryHeal {
		event = EventHeal
	}
	r.add(Entry{
		Event:     event,
		SourceID:  ev.SourceID,
		TargetID:  ev.TargetID,
		AbilityID: ev.AbilityID,
		Amount:    ev.Amount,
		Critical:  ev.Critical,
		Periodic:  ev.Periodic,
		EffectID:  ev.EffectID,
	})
}

func (r *Recorder) ActorDied(ev skill.ActorDied) {
	r.add(Entry{Event: EventDied, SourceID: ev.KillerID, TargetID: ev.ActorID})
}

func castEntry(event string, ev skill.CastEvent) Entry {
	return Entry{
		Event:     event,
		CastID:    ev.CastID,
		SourceID:  ev.SourceID,
		TargetID:  ev.TargetID,
		AbilityID: ev.AbilityID,
	}
}

// Flush writes every buffered entry in one COPY.
// On failure the entries stay buffered for the next attempt.
func (r *Recorder) Flush(ctx context.Context) error {
	r.mu.Lock()
	batch := r.pending
	r.pending = nil
	r.mu.Unlock()

	if len(batch) == 0 {
		return nil
	}

	rows := make([][]any, 0, len(batch))
	for _, e := range batch {
		rows = append(rows, []any{
			pgtype.UUID{Bytes: e.ID, Valid: true},
			pgtype.UUID{Bytes: r.runID, Valid: true},
			e.At.Milliseconds(),
			e.Event,
			pgtype.UUID{Bytes: e.CastID, Valid: e.CastID != uuid.Nil},
			int64(e.SourceID),
			int64(e.TargetID),
			int32(e.AbilityID),
			e.Amount,
			e.Critical,
			e.Periodic,
			e.Detail,
			pgtype.UUID{Bytes: e.EffectID, Valid: e.EffectID != uuid.Nil},
		})
	}

	n, err := r.copier.CopyFrom(ctx, pgx.Identifier{"combat_log"}, columns, pgx.CopyFromRows(rows))
	if err != nil {
		r.mu.Lock()
		r.pending = append(batch, r.pending...)
		r.mu.Unlock()
		return fmt.Errorf("copying %d combat log entries: %w", len(batch), err)
	}

	slog.Debug("combat log flushed", "run", r.runID, "rows", n)
	return nil
}

// Run flushes every interval until ctx is cancelled, then flushes once more.
func (r *Recorder) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
			defer cancel()
			if err := r.Flush(flushCtx); err != nil {
				return fmt.Errorf("final combat log flush: %w", err)
			}
			return nil
		case <-ticker.C:
			if err := r.Flush(ctx); err != nil {
				slog.Warn("combat log flush failed", "err", err)
			}
		}
	}
}
