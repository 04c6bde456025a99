package combat

import "testing"

func newStats(name string, hp float64, armor ArmorType, atk, def DamageMap) *UnitStats {
	return &UnitStats{Name: name, HP: hp, Armor: armor, Attack: atk, Defense: def}
}

func fullGroup(stats *UnitStats, count int) *UnitGroup {
	return NewUnitGroup(stats, count, float64(count)*stats.HP)
}

func newStack(name string, groups ...*UnitGroup) *Stack {
	return &Stack{Name: name, Groups: groups}
}

func infantry() *UnitStats {
	return newStats("Infantry", 15, Unarmored,
		DamageMap{Unarmored: 2, LightArmor: 1, Building: 0.5},
		DamageMap{Unarmored: 3, LightArmor: 3, Air: 0.5})
}

func artillery() *UnitStats {
	return newStats("Artillery", 10, LightArmor,
		DamageMap{Unarmored: 4, LightArmor: 3},
		DamageMap{Unarmored: 0.5})
}

func bomber() *UnitStats {
	return newStats("Bomber", 14, Air,
		DamageMap{HeavyArmor: 3, Air: 2},
		DamageMap{Air: 1})
}

func interceptor() *UnitStats {
	return newStats("Interceptor", 12, Air,
		DamageMap{Air: 4},
		DamageMap{Air: 3})
}

func bunkerLevels() []FortLevel {
	return []FortLevel{
		{Level: 1, HP: 100, Mitigation: 0.10},
		{Level: 2, HP: 100, Mitigation: 0.10},
		{Level: 3, HP: 150, Mitigation: 0.15},
	}
}

type groupSnapshot struct {
	count int
	hp    float64
}

func snapshot(a *Army) []groupSnapshot {
	var out []groupSnapshot
	for _, s := range a.Stacks {
		for _, g := range s.Groups {
			out = append(out, groupSnapshot{g.Count, g.CurrentHP})
		}
	}
	return out
}

func checkGroupInvariants(t *testing.T, a *Army) {
	t.Helper()
	for _, s := range a.Stacks {
		for _, g := range s.Groups {
			if g.CurrentHP < 0 || g.CurrentHP > g.MaxHP()+1e-9 {
				t.Fatalf("%s/%s: hp %v outside [0, %v]", s.Name, g.Name, g.CurrentHP, g.MaxHP())
			}
			if g.Count == 0 && g.CurrentHP != 0 {
				t.Fatalf("%s/%s: empty group kept hp %v", s.Name, g.Name, g.CurrentHP)
			}
		}
	}
}
