package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/udisondev/abilitycast/internal/combatlog"
	"github.com/udisondev/abilitycast/internal/config"
	"github.com/udisondev/abilitycast/internal/data"
	"github.com/udisondev/abilitycast/internal/game/skill"
	"github.com/udisondev/abilitycast/internal/model"
	"github.com/udisondev/abilitycast/internal/scenario"
	"github.com/udisondev/abilitycast/internal/world"
)

const ConfigPath = "config/castsim.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// .env is optional.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	cfgPath := ConfigPath
	if p := os.Getenv("ABILITYCAST_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadEngine(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))
	slog.Info("castsim starting", "config", cfgPath, "log_level", cfg.LogLevel, "tick_rate", cfg.TickRate)

	if err := data.LoadAbilitiesFile(cfg.AbilitiesPath); err != nil {
		return fmt.Errorf("loading abilities: %w", err)
	}

	sc, err := scenario.Load(cfg.ScenarioPath)
	if err != nil {
		return fmt.Errorf("loading scenario: %w", err)
	}
	w, ids, err := sc.Build(cfg.TileSize)
	if err != nil {
		return fmt.Errorf("building scenario %q: %w", sc.Name, err)
	}
	slog.Info("scenario loaded",
		"name", sc.Name,
		"actors", w.ActorCount(),
		"obstacles", w.Obstacles().Len(),
		"duration", sc.Duration)

	var roller skill.Roller = skill.NewRandomRoller()
	if cfg.Seed != 0 {
		roller = skill.NewSeededRoller(cfg.Seed)
	}

	g, gctx := errgroup.WithContext(ctx)
	// Cancelled once the scenario is over so the combat log flusher stops too.
	simCtx, stopSim := context.WithCancel(gctx)
	defer stopSim()

	// Engine needs the recorder as listener and the recorder needs the
	// engine clock, so the clock reads through this pointer.
	var engine *skill.Engine
	listeners := skill.Listeners{logListener{}}

	if cfg.CombatLog.Enabled {
		dsn := cfg.CombatLog.Database.DSN()
		pool, err := combatlog.Connect(ctx, dsn)
		if err != nil {
			return fmt.Errorf("connecting combat log database: %w", err)
		}
		defer pool.Close()

		if err := combatlog.RunMigrations(ctx, dsn); err != nil {
			return fmt.Errorf("running combat log migrations: %w", err)
		}

		rec := combatlog.NewRecorder(pool, uuid.New(), func() time.Duration { return engine.Elapsed() })
		listeners = append(listeners, rec)
		slog.Info("combat log enabled", "run", rec.RunID())

		g.Go(func() error {
			return rec.Run(simCtx, cfg.CombatLog.FlushInterval)
		})
	}

	engine = skill.NewEngine(w, skill.Rules{
		GlobalCooldown:     cfg.GlobalCooldown,
		RegenInterval:      cfg.RegenInterval,
		RegenSuppression:   cfg.RegenSuppression,
		CriticalMultiplier: cfg.CriticalMultiplier,
	}, roller, listeners)

	player, err := scenario.NewPlayer(sc, w, ids, engine, data.GetAbilityByName)
	if err != nil {
		return fmt.Errorf("preparing scenario %q: %w", sc.Name, err)
	}

	g.Go(func() error {
		defer stopSim()
		return simulate(simCtx, engine, player, sc.Duration, cfg.TickRate, cfg.Realtime)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	report(w)
	return nil
}

// simulate drives the engine until duration of simulated time has passed.
func simulate(ctx context.Context, engine *skill.Engine, player *scenario.Player, duration, step time.Duration, realtime bool) error {
	var ticker *time.Ticker
	if realtime {
		ticker = time.NewTicker(step)
		defer ticker.Stop()
	}

	for engine.Elapsed() < duration {
		if ticker != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		player.Advance(engine.Elapsed())
		for _, o := range engine.Tick(step) {
			logOutcome(engine.Elapsed(), o)
		}
	}

	slog.Info("scenario finished", "elapsed", engine.Elapsed(), "ticks", engine.Ticks())
	return nil
}

func logOutcome(at time.Duration, o skill.Outcome) {
	name := "cancel"
	if !o.Cancel && o.Request.Ability != nil {
		name = o.Request.Ability.Name
	}
	if o.Err != nil {
		slog.Info("request refused", "at", at, "source", o.Request.SourceID, "request", name, "reason", o.Err)
		return
	}
	slog.Info("request accepted", "at", at, "source", o.Request.SourceID, "request", name)
}

func report(w *world.World) {
	w.ForEachActor(func(a *model.Actor) bool {
		slog.Info("final state",
			"actor", a.Name(),
			"player", world.IsPlayerID(a.ObjectID()),
			"health", bar(&a.Health),
			"mana", bar(&a.Mana),
			"dead", a.IsDead())
		return true
	})
}

// bar renders a progress value as "current/max".
func bar(p model.Progressive) string {
	cur, total := p.Progress()
	return fmt.Sprintf("%.0f/%.0f", cur, total)
}

// parseLogLevel converts string log level to slog.Level.
// Defaults to Info if invalid or empty.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
