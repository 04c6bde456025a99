package catalog

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v2"

	"BattleSimulator/internal/combat"
)

const defaultMaxRounds = 50

var (
	ErrMissingTeam = errors.New("battle config is missing a team")
	ErrUnknownMode = errors.New("unknown battle mode")
	ErrBadRounds   = errors.New("max_rounds must be positive")
)

type BattleConfig struct {
	Mode             string      `yaml:"battle_mode"`
	MaxRounds        Number      `yaml:"max_rounds"`
	EnableRandomness *bool       `yaml:"enable_randomness"`
	Seed             int64       `yaml:"seed"`
	Detailed         bool        `yaml:"detailed_output"`
	TeamA            *TeamConfig `yaml:"team_a"`
	TeamB            *TeamConfig `yaml:"team_b"`
}

// TeamConfig describes one army. A team that lists units directly instead
// of stacks is the older single-stack format.
type TeamConfig struct {
	Name     string         `yaml:"name"`
	Stacks   []StackConfig  `yaml:"stacks"`
	Units    []UnitEntry    `yaml:"units"`
	Building *BuildingEntry `yaml:"building"`
	Core     bool           `yaml:"core"`
}

type StackConfig struct {
	Name     string         `yaml:"name"`
	Core     bool           `yaml:"core"`
	Split    bool           `yaml:"split"`
	Airplane bool           `yaml:"is_airplane"`
	Patrol   bool           `yaml:"patrol"`
	Target   string         `yaml:"target"`
	Building *BuildingEntry `yaml:"building"`
	Units    []UnitEntry    `yaml:"units"`
}

type BuildingEntry struct {
	ID        string `yaml:"id"`
	Level     Number `yaml:"level"`
	CurrentHP Number `yaml:"current_hp"`
	HPRatio   Number `yaml:"hp_ratio"`
}

type UnitEntry struct {
	ID           string `yaml:"id"`
	Count        Number `yaml:"count"`
	CurrentHP    Number `yaml:"current_hp"`
	HPRatio      Number `yaml:"hp_ratio"`
	TerrainBonus Number `yaml:"terrain_bonus"`
	Ranged       bool   `yaml:"ranged"`
	UltraRanged  bool   `yaml:"ultra_ranged"`
}

func LoadBattle(path string) (*BattleConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load battle: %w", err)
	}
	return ParseBattle(data)
}

// ParseBattle decodes a battle configuration written as YAML or JSON.
func ParseBattle(data []byte) (*BattleConfig, error) {
	cfg := &BattleConfig{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse battle: %w", err)
	}
	return cfg, nil
}

// Validate reports every precondition the engine relies on.
func (c *BattleConfig) Validate() error {
	var err error
	if c.TeamA == nil {
		err = multierr.Append(err, fmt.Errorf("team_a: %w", ErrMissingTeam))
	}
	if c.TeamB == nil {
		err = multierr.Append(err, fmt.Errorf("team_b: %w", ErrMissingTeam))
	}
	if c.Mode != "" {
		if _, ok := combat.ParseMode(c.Mode); !ok {
			err = multierr.Append(err, fmt.Errorf("%w %q", ErrUnknownMode, c.Mode))
		}
	}
	if c.MaxRounds.Set && c.MaxRounds.Value <= 0 {
		err = multierr.Append(err, fmt.Errorf("%w, got %v", ErrBadRounds, c.MaxRounds.Value))
	}
	return err
}

func (c *BattleConfig) BattleMode() combat.Mode {
	if m, ok := combat.ParseMode(c.Mode); ok {
		return m
	}
	return combat.LandAttack
}

func (c *BattleConfig) Rounds() int {
	return c.MaxRounds.Int(defaultMaxRounds)
}

// Randomness is on unless explicitly disabled.
func (c *BattleConfig) Randomness() bool {
	return c.EnableRandomness == nil || *c.EnableRandomness
}
