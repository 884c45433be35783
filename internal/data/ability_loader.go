package data

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed abilities.yaml
var defaultAbilities []byte

// AbilityTable is the global registry of ability definitions.
// Populated by LoadAbilities / LoadAbilitiesFile at startup.
var AbilityTable map[AbilityID]*Ability

// abilityByName maps lowercase names to abilities for scenario scripts.
var abilityByName map[string]*Ability

// GetAbility returns the ability with the given id.
// Returns nil if not loaded.
func GetAbility(id AbilityID) *Ability {
	if AbilityTable == nil {
		return nil
	}
	return AbilityTable[id]
}

// GetAbilityByName returns the ability with the given name (case-insensitive).
// Returns nil if not loaded.
func GetAbilityByName(name string) *Ability {
	if abilityByName == nil {
		return nil
	}
	return abilityByName[strings.ToLower(name)]
}

// LoadAbilities builds AbilityTable from the embedded default content.
func LoadAbilities() error {
	abilities, err := ParseAbilities(defaultAbilities)
	if err != nil {
		return fmt.Errorf("parsing embedded abilities: %w", err)
	}
	return register(abilities)
}

// LoadAbilitiesFile builds AbilityTable from a YAML file.
// Empty path falls back to the embedded content.
func LoadAbilitiesFile(path string) error {
	if path == "" {
		return LoadAbilities()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading abilities %s: %w", path, err)
	}
	abilities, err := ParseAbilities(raw)
	if err != nil {
		return fmt.Errorf("parsing abilities %s: %w", path, err)
	}
	return register(abilities)
}

func register(abilities []*Ability) error {
	table := make(map[AbilityID]*Ability, len(abilities))
	byName := make(map[string]*Ability, len(abilities))
	for _, a := range abilities {
		if _, dup := table[a.ID]; dup {
			return fmt.Errorf("duplicate ability id %d", a.ID)
		}
		key := strings.ToLower(a.Name)
		if _, dup := byName[key]; dup {
			return fmt.Errorf("duplicate ability name %q", a.Name)
		}
		table[a.ID] = a
		byName[key] = a
	}
	AbilityTable = table
	abilityByName = byName

	slog.Info("loaded abilities", "count", len(table))
	return nil
}

type abilityFile struct {
	Abilities []abilityYAML `yaml:"abilities"`
}

type abilityYAML struct {
	ID           int32         `yaml:"id"`
	Name         string        `yaml:"name"`
	ManaCost     int32         `yaml:"mana_cost"`
	CastDuration time.Duration `yaml:"cast_duration"`
	Cooldown     time.Duration `yaml:"cooldown"`
	Range        float64       `yaml:"range"`
	Effect       effectYAML    `yaml:"effect"`
	Secondary    *effectYAML   `yaml:"secondary"`
}

type effectYAML struct {
	Target  string         `yaml:"target"`
	Damage  *momentaryYAML `yaml:"damage"`
	Heal    *momentaryYAML `yaml:"heal"`
	Silence *lastingYAML   `yaml:"silence"`
}

type momentaryYAML struct {
	Min      int32         `yaml:"min"`
	Max      int32         `yaml:"max"`
	Interval time.Duration `yaml:"interval"`
	Duration time.Duration `yaml:"duration"`
}

type lastingYAML struct {
	Duration time.Duration `yaml:"duration"`
}

// ParseAbilities decodes and validates ability definitions from YAML.
func ParseAbilities(raw []byte) ([]*Ability, error) {
	var f abilityFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}

	abilities := make([]*Ability, 0, len(f.Abilities))
	for i := range f.Abilities {
		a, err := f.Abilities[i].build()
		if err != nil {
			return nil, err
		}
		if err := a.Validate(); err != nil {
			return nil, err
		}
		abilities = append(abilities, a)
	}
	return abilities, nil
}

func (y *abilityYAML) build() (*Ability, error) {
	primary, err := y.Effect.build()
	if err != nil {
		return nil, fmt.Errorf("ability %q effect: %w", y.Name, err)
	}
	a := &Ability{
		ID:           AbilityID(y.ID),
		Name:         y.Name,
		ManaCost:     y.ManaCost,
		CastDuration: y.CastDuration,
		Cooldown:     y.Cooldown,
		Range:        y.Range,
		Effect:       primary,
	}
	if y.Secondary != nil {
		secondary, err := y.Secondary.build()
		if err != nil {
			return nil, fmt.Errorf("ability %q secondary: %w", y.Name, err)
		}
		a.Secondary = &secondary
	}
	return a, nil
}

func (y *effectYAML) build() (TargetedEffect, error) {
	mode, err := parseTargetMode(y.Target)
	if err != nil {
		return TargetedEffect{}, err
	}

	set := 0
	var eff Effect
	if y.Damage != nil {
		set++
		eff = y.Damage.build(MomentaryDamage)
	}
	if y.Heal != nil {
		set++
		eff = y.Heal.build(MomentaryHeal)
	}
	if y.Silence != nil {
		set++
		eff = Silence(y.Silence.Duration)
	}
	if set != 1 {
		return TargetedEffect{}, fmt.Errorf("expected exactly one of damage/heal/silence, got %d", set)
	}
	return TargetedEffect{Effect: eff, Mode: mode}, nil
}

func (y *momentaryYAML) build(kind MomentaryKind) Effect {
	m := &Momentary{Kind: kind, Min: y.Min, Max: y.Max}
	if y.Interval > 0 || y.Duration > 0 {
		m.Schedule = Schedule{Periodic: true, Interval: y.Interval, Duration: y.Duration}
	}
	return Effect{Momentary: m}
}

func parseTargetMode(s string) (TargetMode, error) {
	switch strings.ToLower(s) {
	case "", "single":
		return TargetSingle, nil
	case "area":
		return TargetArea, nil
	default:
		return 0, fmt.Errorf("unknown target mode %q", s)
	}
}
