package catalog

import (
	"fmt"

	"go.uber.org/zap"

	"BattleSimulator/internal/combat"
	"BattleSimulator/internal/rng"
)

// Battle is a built battle ready to run.
type Battle struct {
	A, B   *combat.Army
	Engine *combat.Engine
}

// Build validates the configuration and constructs both armies and the
// engine that will fight them.
func (c *BattleConfig) Build(units Units, buildings Buildings, logger *zap.Logger) (*Battle, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	b := NewBuilder(units, buildings, logger)
	e := &combat.Engine{
		Mode:      c.BattleMode(),
		MaxRounds: c.Rounds(),
		Detailed:  c.Detailed,
		Logger:    logger,
	}
	if c.Randomness() {
		e.Random = rng.New(c.Seed)
	}
	return &Battle{A: b.Army(c.TeamA), B: b.Army(c.TeamB), Engine: e}, nil
}

// Builder turns team configurations into armies. Unit stats are shared by
// every group built from the same id.
type Builder struct {
	units     Units
	buildings Buildings
	stats     map[string]*combat.UnitStats
	log       *zap.Logger
}

func NewBuilder(units Units, buildings Buildings, logger *zap.Logger) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{
		units:     units,
		buildings: buildings,
		stats:     map[string]*combat.UnitStats{},
		log:       logger,
	}
}

func (b *Builder) Army(team *TeamConfig) *combat.Army {
	name := team.Name
	if name == "" {
		name = "Army"
	}
	stacks := team.Stacks
	if team.Units != nil {
		stacks = []StackConfig{{
			Name:     "Main",
			Units:    team.Units,
			Building: team.Building,
			Core:     team.Core,
		}}
	}

	army := &combat.Army{Name: name}
	for _, sc := range stacks {
		army.Stacks = append(army.Stacks, b.stack(sc))
	}
	return army
}

func (b *Builder) stack(sc StackConfig) *combat.Stack {
	s := &combat.Stack{
		Name:   sc.Name,
		Core:   sc.Core,
		Split:  sc.Split,
		Air:    sc.Airplane,
		Patrol: sc.Patrol,
		Target: sc.Target,
	}
	if s.Name == "" {
		s.Name = "Stack"
	}
	if sc.Building != nil {
		s.Fort = b.fortification(*sc.Building)
	}
	for _, ue := range sc.Units {
		stats := b.unitStats(ue.ID)
		if stats == nil {
			b.log.Warn("unknown unit skipped", zap.String("stack", s.Name), zap.String("id", ue.ID))
			continue
		}
		count := ue.Count.Int(0)
		full := float64(count) * stats.HP
		hp := full
		switch {
		case ue.CurrentHP.Set:
			hp = ue.CurrentHP.Value
		case ue.HPRatio.Set:
			hp = full * ue.HPRatio.Value
		}
		g := combat.NewUnitGroup(stats, count, hp)
		g.TerrainBonus = ue.TerrainBonus.Or(0)
		g.Core = sc.Core
		g.UltraRanged = ue.UltraRanged
		g.Ranged = ue.Ranged || ue.UltraRanged
		s.Groups = append(s.Groups, g)
	}
	return s
}

func (b *Builder) unitStats(id string) *combat.UnitStats {
	if st, ok := b.stats[id]; ok {
		return st
	}
	def, ok := b.units[id]
	if !ok {
		return nil
	}
	armor, ok := combat.ParseArmorType(def.Armor)
	if !ok || def.HP.Or(0) <= 0 {
		b.log.Warn("invalid unit reference", zap.String("id", id), zap.String("armor", def.Armor))
		return nil
	}
	st := &combat.UnitStats{
		Name:    def.display(id),
		HP:      def.HP.Value,
		Armor:   armor,
		Attack:  damageTable(def.Attack),
		Defense: damageTable(def.Defense),
	}
	b.stats[id] = st
	return st
}

func damageTable(raw map[string]Number) combat.DamageMap {
	out := combat.DamageMap{}
	for k, v := range raw {
		if armor, ok := combat.ParseArmorType(k); ok && v.Or(0) > 0 {
			out[armor] = v.Value
		}
	}
	return out
}

// fortification keeps every reference level up to the configured one. An
// unset level means the building is fully upgraded.
func (b *Builder) fortification(be BuildingEntry) *combat.Fortification {
	def, ok := b.buildings[be.ID]
	if !ok {
		b.log.Warn("unknown building skipped", zap.String("id", be.ID))
		return nil
	}
	var levels []combat.FortLevel
	top, full := 0, 0.0
	for _, l := range def.Levels {
		lvl := l.Level.Int(0)
		if lvl < 1 || l.HP.Or(0) <= 0 {
			continue
		}
		if be.Level.Set && lvl > be.Level.Int(0) {
			continue
		}
		levels = append(levels, combat.FortLevel{
			Level:      lvl,
			HP:         l.HP.Value,
			Mitigation: clampUnit(l.Mitigation.Or(0)),
		})
		top = max(top, lvl)
		full += l.HP.Value
	}
	if len(levels) == 0 {
		return nil
	}
	name := fmt.Sprintf("%s Lv%d", def.display(be.ID), top)
	hp := full
	switch {
	case be.CurrentHP.Set:
		hp = be.CurrentHP.Value
	case be.HPRatio.Set:
		hp = full * be.HPRatio.Value
	}
	return combat.NewFortification(name, levels, hp)
}

func clampUnit(v float64) float64 {
	return min(max(v, 0), 1)
}
