// Package scenario describes scripted encounters for the castsim runner:
// a zone, the actors in it and a timeline of requests and movement.
package scenario

import (
	"cmp"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/abilitycast/internal/model"
	"github.com/udisondev/abilitycast/internal/world"
)

//go:embed default.yaml
var defaultScenario []byte

// DefaultCritical is the critical probability of actors that do not set one.
const DefaultCritical = 0.1

// Scenario is a scripted encounter.
type Scenario struct {
	Name     string        `yaml:"name"`
	Duration time.Duration `yaml:"duration"`
	Zone     ZoneSpec      `yaml:"zone"`
	Actors   []ActorSpec   `yaml:"actors"`
	Steps    []Step        `yaml:"steps"`
}

// ZoneSpec is the tile layout. Border walls are implicit.
type ZoneSpec struct {
	Columns int      `yaml:"columns"`
	Rows    int      `yaml:"rows"`
	Walls   [][2]int `yaml:"walls"`
}

// ActorSpec is an actor placed at the start of the encounter.
type ActorSpec struct {
	Name      string     `yaml:"name"`
	Player    bool       `yaml:"player"`
	Position  [2]float64 `yaml:"position"`
	Health    int32      `yaml:"health"`
	Mana      int32      `yaml:"mana"`
	ManaRegen int32      `yaml:"mana_regen"`
	Critical  *float64   `yaml:"critical"`
}

// Step is one timed action. Exactly one of Cast, Cancel, Move or Stop is set.
type Step struct {
	At     time.Duration `yaml:"at"`
	Actor  string        `yaml:"actor"`
	Cast   string        `yaml:"cast"`
	Target string        `yaml:"target"`
	Cancel bool          `yaml:"cancel"`
	Move   *[2]float64   `yaml:"move"`
	Stop   bool          `yaml:"stop"`
}

// Default returns the embedded encounter.
func Default() (*Scenario, error) {
	s, err := Parse(defaultScenario)
	if err != nil {
		return nil, fmt.Errorf("parsing embedded scenario: %w", err)
	}
	return s, nil
}

// Load reads a scenario file. Empty path returns the embedded encounter.
func Load(path string) (*Scenario, error) {
	if path == "" {
		return Default()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario %s: %w", path, err)
	}
	s, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing scenario %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a scenario. Steps are sorted by time,
// keeping file order for equal times.
func Parse(raw []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	slices.SortStableFunc(s.Steps, func(a, b Step) int {
		return cmp.Compare(a.At, b.At)
	})
	return &s, nil
}

func (s *Scenario) validate() error {
	if s.Duration <= 0 {
		return fmt.Errorf("scenario %q: duration must be positive", s.Name)
	}
	if len(s.Actors) == 0 {
		return fmt.Errorf("scenario %q: no actors", s.Name)
	}

	names := make(map[string]bool, len(s.Actors))
	for _, a := range s.Actors {
		if a.Name == "" {
			return errors.New("actor with empty name")
		}
		if names[a.Name] {
			return fmt.Errorf("duplicate actor %q", a.Name)
		}
		if a.Health <= 0 {
			return fmt.Errorf("actor %q: health must be positive", a.Name)
		}
		names[a.Name] = true
	}

	for i, st := range s.Steps {
		if !names[st.Actor] {
			return fmt.Errorf("step %d: unknown actor %q", i, st.Actor)
		}
		if st.Target != "" && !names[st.Target] {
			return fmt.Errorf("step %d: unknown target %q", i, st.Target)
		}
		if st.At < 0 {
			return fmt.Errorf("step %d: negative time %s", i, st.At)
		}
		if n := st.actions(); n != 1 {
			return fmt.Errorf("step %d: expected exactly one of cast/cancel/move/stop, got %d", i, n)
		}
	}
	return nil
}

func (st Step) actions() int {
	n := 0
	if st.Cast != "" {
		n++
	}
	if st.Cancel {
		n++
	}
	if st.Move != nil {
		n++
	}
	if st.Stop {
		n++
	}
	return n
}

// Build creates the zone and a world populated with the scenario actors.
// Returns the actor ids by name.
func (s *Scenario) Build(tileSize float64) (*world.World, map[string]uint32, error) {
	zone, err := world.NewZone(s.Zone.Columns, s.Zone.Rows, tileSize)
	if err != nil {
		return nil, nil, fmt.Errorf("building zone: %w", err)
	}
	for _, w := range s.Zone.Walls {
		if err := zone.SetWall(w[0], w[1]); err != nil {
			return nil, nil, fmt.Errorf("building zone: %w", err)
		}
	}

	w := world.New(zone.Obstacles())
	ids := make(map[string]uint32, len(s.Actors))
	for _, spec := range s.Actors {
		var id uint32
		if spec.Player {
			id = w.IDGenerator().NextPlayerID()
		} else {
			id = w.IDGenerator().NextCreatureID()
		}

		critical := DefaultCritical
		if spec.Critical != nil {
			critical = *spec.Critical
		}
		a := model.NewActor(id, spec.Name,
			model.NewLocation(spec.Position[0], spec.Position[1]),
			spec.Health, spec.Mana, spec.ManaRegen, critical)
		if err := w.AddActor(a); err != nil {
			return nil, nil, err
		}
		ids[spec.Name] = id
	}
	return w, ids, nil
}
