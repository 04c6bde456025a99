package combat

import "math"

// UnitStats is the read-only reference profile shared by every group of the
// same unit type.
type UnitStats struct {
	Name    string
	HP      float64
	Armor   ArmorType
	Attack  DamageMap
	Defense DamageMap
}

func (s *UnitStats) table(kind DamageKind) DamageMap {
	if kind == Defense {
		return s.Defense
	}
	return s.Attack
}

// UnitGroup is a homogeneous group of units. Health and count only ever go
// down once the group is built.
type UnitGroup struct {
	Name         string
	Stats        *UnitStats
	Count        int
	CurrentHP    float64
	TerrainBonus float64
	Core         bool
	Ranged       bool
	UltraRanged  bool

	InitialCount int
	InitialHP    float64

	// per-round counters
	RoundDead int
	RoundLoss float64
}

// NewUnitGroup clamps hp into [0, count*hp_per_unit] and records the
// starting snapshot.
func NewUnitGroup(stats *UnitStats, count int, hp float64) *UnitGroup {
	if count < 0 {
		count = 0
	}
	g := &UnitGroup{Name: stats.Name, Stats: stats, Count: count}
	g.CurrentHP = clamp(hp, 0, g.MaxHP())
	if g.Count == 0 || g.CurrentHP <= hpEpsilon {
		g.Count, g.CurrentHP = 0, 0
	}
	g.InitialCount = g.Count
	g.InitialHP = g.CurrentHP
	return g
}

// MaxHP is full health at the current unit count.
func (g *UnitGroup) MaxHP() float64 {
	return float64(g.Count) * g.Stats.HP
}

func (g *UnitGroup) HPRatio() float64 {
	full := g.MaxHP()
	if g.Count <= 0 || full <= 0 {
		return 0
	}
	return g.CurrentHP / full
}

func (g *UnitGroup) alive() bool {
	return g.Count > 0 && g.CurrentHP > 0
}

// UnitDamage is the per-unit output against one armor type. Efficiency runs
// from 20% at zero health to 100% at full health.
func (g *UnitGroup) UnitDamage(kind DamageKind, armor ArmorType) float64 {
	if g.Count <= 0 {
		return 0
	}
	base := g.Stats.table(kind)[armor]
	eff := minEfficiency + (1-minEfficiency)*g.HPRatio()
	dmg := base * eff * (1 + g.TerrainBonus)
	if g.Core {
		dmg *= coreDamageMulti
	}
	return dmg
}

// ApplyDamage removes health and, once the group is below the casualty
// threshold, whole units.
func (g *UnitGroup) ApplyDamage(amount float64) {
	if amount <= 0 || g.Count <= 0 {
		return
	}
	dead := 0
	if g.HPRatio() < casualtyThreshold {
		if avg := g.CurrentHP / float64(g.Count); avg > 0 {
			dead = int(math.Min(math.Floor(amount/avg), float64(g.Count)))
		}
	}
	taken := math.Min(g.CurrentHP, amount)
	g.CurrentHP -= taken
	g.RoundLoss += taken
	if dead > 0 {
		g.Count -= dead
		g.RoundDead += dead
	}
	if g.CurrentHP <= hpEpsilon || g.Count == 0 {
		g.RoundDead += g.Count
		g.Count = 0
		g.CurrentHP = 0
	}
}

func (g *UnitGroup) ResetRoundStats() {
	g.RoundDead = 0
	g.RoundLoss = 0
}
