package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Engine holds all configuration of the ability engine and the castsim runner.
type Engine struct {
	LogLevel string `yaml:"log_level"` // debug, info, warn, error

	// Simulation
	TickRate time.Duration `yaml:"tick_rate"` // simulated time per tick (default: 50ms)
	Realtime bool          `yaml:"realtime"`  // pace ticks by the wall clock

	// Rules
	GlobalCooldown     time.Duration `yaml:"global_cooldown"`     // default: 1.5s
	RegenInterval      time.Duration `yaml:"regen_interval"`      // default: 0.5s
	RegenSuppression   time.Duration `yaml:"regen_suppression"`   // default: 5s
	CriticalMultiplier int32         `yaml:"critical_multiplier"` // default: 2
	Seed               uint64        `yaml:"seed"`                // 0 = random

	// Zone
	TileSize float64 `yaml:"tile_size"`

	// Content. Empty paths use the embedded defaults.
	AbilitiesPath string `yaml:"abilities_path"`
	ScenarioPath  string `yaml:"scenario_path"`

	CombatLog CombatLogConfig `yaml:"combat_log"`
}

// CombatLogConfig controls the PostgreSQL combat log sink.
type CombatLogConfig struct {
	Enabled       bool           `yaml:"enabled"`
	FlushInterval time.Duration  `yaml:"flush_interval"`
	Database      DatabaseConfig `yaml:"database"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// DefaultEngine returns Engine config with the stock tuning.
func DefaultEngine() Engine {
	return Engine{
		LogLevel:           "info",
		TickRate:           50 * time.Millisecond,
		GlobalCooldown:     1500 * time.Millisecond,
		RegenInterval:      500 * time.Millisecond,
		RegenSuppression:   5 * time.Second,
		CriticalMultiplier: 2,
		TileSize:           16,
		CombatLog: CombatLogConfig{
			FlushInterval: time.Second,
			Database: DatabaseConfig{
				Host:     "127.0.0.1",
				Port:     5432,
				User:     "abilitycast",
				Password: "abilitycast",
				DBName:   "abilitycast",
				SSLMode:  "disable",
			},
		},
	}
}

// Validate rejects values the engine cannot run with.
func (c Engine) Validate() error {
	if c.TickRate <= 0 {
		return fmt.Errorf("tick_rate must be positive, got %s", c.TickRate)
	}
	if c.GlobalCooldown < 0 || c.RegenInterval <= 0 || c.RegenSuppression < 0 {
		return fmt.Errorf("invalid rule durations: global_cooldown=%s regen_interval=%s regen_suppression=%s",
			c.GlobalCooldown, c.RegenInterval, c.RegenSuppression)
	}
	if c.CriticalMultiplier < 1 {
		return fmt.Errorf("critical_multiplier must be at least 1, got %d", c.CriticalMultiplier)
	}
	if c.TileSize <= 0 {
		return fmt.Errorf("tile_size must be positive, got %v", c.TileSize)
	}
	if c.CombatLog.Enabled && c.CombatLog.FlushInterval <= 0 {
		return fmt.Errorf("combat_log.flush_interval must be positive, got %s", c.CombatLog.FlushInterval)
	}
	return nil
}

// LoadEngine loads engine config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadEngine(path string) (Engine, error) {
	cfg := DefaultEngine()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}

	return cfg, nil
}
