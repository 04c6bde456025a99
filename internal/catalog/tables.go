// Package catalog loads the reference tables and battle configuration and
// turns them into armies ready to fight.
package catalog

import (
	"fmt"
	"os"
	"reflect"
	"sort"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v2"
)

// UnitDef is one entry of the unit reference table.
type UnitDef struct {
	Name        string            `yaml:"name,omitempty"`
	DisplayName string            `yaml:"display_name,omitempty"`
	HP          Number            `yaml:"hp"`
	Armor       string            `yaml:"armor_type"`
	Attack      map[string]Number `yaml:"attack,omitempty"`
	Defense     map[string]Number `yaml:"defense,omitempty"`
}

func (u UnitDef) display(id string) string {
	switch {
	case u.DisplayName != "":
		return u.DisplayName
	case u.Name != "":
		return u.Name
	}
	return id
}

type LevelDef struct {
	Level      Number `yaml:"level"`
	HP         Number `yaml:"hp"`
	Mitigation Number `yaml:"mitigation"`
}

// BuildingDef is one entry of the fortification reference table.
type BuildingDef struct {
	Name        string     `yaml:"name,omitempty"`
	DisplayName string     `yaml:"display_name,omitempty"`
	Levels      []LevelDef `yaml:"levels"`
}

func (b BuildingDef) display(id string) string {
	switch {
	case b.DisplayName != "":
		return b.DisplayName
	case b.Name != "":
		return b.Name
	}
	return id
}

// Units maps unit id to its reference entry.
type Units map[string]UnitDef

// Buildings maps building id to its reference entry.
type Buildings map[string]BuildingDef

func LoadUnits(path string) (Units, error) {
	u := Units{}
	if err := loadYAML(path, &u); err != nil {
		return nil, fmt.Errorf("load units: %w", err)
	}
	return u, nil
}

func LoadBuildings(path string) (Buildings, error) {
	b := Buildings{}
	if err := loadYAML(path, &b); err != nil {
		return nil, fmt.Errorf("load buildings: %w", err)
	}
	return b, nil
}

// WriteUnits stores a unit table as YAML.
func WriteUnits(path string, u Units) error {
	data, err := yaml.Marshal(u)
	if err != nil {
		return fmt.Errorf("marshal units: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write units: %w", err)
	}
	return nil
}

// Merge unions two unit tables. An id defined differently in both keeps the
// first definition and is reported in the returned error.
func Merge(first, second Units) (Units, error) {
	out := make(Units, len(first)+len(second))
	for id, def := range first {
		out[id] = def
	}
	ids := make([]string, 0, len(second))
	for id := range second {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var errs error
	for _, id := range ids {
		def := second[id]
		if prev, ok := out[id]; ok {
			if !reflect.DeepEqual(prev, def) {
				errs = multierr.Append(errs, fmt.Errorf("unit %q defined twice with different stats", id))
			}
			continue
		}
		out[id] = def
	}
	return out, errs
}

func loadYAML(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, out)
}
