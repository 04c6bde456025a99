package combat

import "sort"

// Role is the combat role a stack plays, derived from its flags.
type Role int

const (
	RoleFrontline Role = iota
	RoleBackline
	RoleAir
)

func (r Role) String() string {
	switch r {
	case RoleBackline:
		return "backline"
	case RoleAir:
		return "air"
	}
	return "frontline"
}

// Stack is an ordered collection of unit groups that move and fight
// together. Target names an enemy stack and is resolved fresh every action.
type Stack struct {
	Name   string
	Groups []*UnitGroup
	Fort   *Fortification
	Core   bool
	Split  bool
	Air    bool
	Patrol bool
	Target string
}

// Role puts air ahead of split: a split air stack flies.
func (s *Stack) Role() Role {
	switch {
	case s.Air:
		return RoleAir
	case s.Split:
		return RoleBackline
	}
	return RoleFrontline
}

func (s *Stack) TotalHP() float64 {
	total := 0.0
	for _, g := range s.Groups {
		total += g.CurrentHP
	}
	return total
}

func (s *Stack) TotalCount() int {
	total := 0
	for _, g := range s.Groups {
		total += g.Count
	}
	return total
}

func (s *Stack) Alive() bool {
	if s.TotalHP() <= 0 {
		return false
	}
	for _, g := range s.Groups {
		if g.Count > 0 {
			return true
		}
	}
	return false
}

func (s *Stack) ArmorTypes() []ArmorType {
	set := armorSet{}
	for _, g := range s.Groups {
		if g.alive() {
			set[g.Stats.Armor] = true
		}
	}
	return set.sorted()
}

func (s *Stack) HasRanged() bool {
	for _, g := range s.Groups {
		if g.Ranged && g.alive() {
			return true
		}
	}
	return false
}

func (s *Stack) HasUltra() bool {
	for _, g := range s.Groups {
		if g.UltraRanged && g.alive() {
			return true
		}
	}
	return false
}

// Mitigation combines fortification and core bonuses, capped at 1.
func (s *Stack) Mitigation() float64 {
	mit := 0.0
	if s.Fort != nil {
		mit += s.Fort.Mitigation()
	}
	if s.Core {
		mit += coreMitigationAdd
	}
	return min(mit, 1.0)
}

// Output commits up to limit units, best per-unit damage first, and sums
// their damage against armor. rangedOnly restricts the pick to ranged and
// ultra-ranged groups.
func (s *Stack) Output(kind DamageKind, armor ArmorType, limit int, rangedOnly bool) float64 {
	return groupOutput(s.Groups, kind, armor, limit, rangedOnly)
}

func groupOutput(groups []*UnitGroup, kind DamageKind, armor ArmorType, limit int, rangedOnly bool) float64 {
	type candidate struct {
		dmg   float64
		count int
	}
	cands := make([]candidate, 0, len(groups))
	for _, g := range groups {
		if rangedOnly && !(g.Ranged || g.UltraRanged) {
			continue
		}
		if d := g.UnitDamage(kind, armor); d > 0 && g.Count > 0 {
			cands = append(cands, candidate{d, g.Count})
		}
	}
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].dmg > cands[j].dmg })

	total := 0.0
	left := limit
	for _, c := range cands {
		if left <= 0 {
			break
		}
		take := min(left, c.count)
		total += float64(take) * c.dmg
		left -= take
	}
	return total
}

// ReceiveDamage spreads pots over the live groups by their share of
// denominator, which is the unit count of the whole pool the stack sits in.
func (s *Stack) ReceiveDamage(pots DamageMap, denominator int) {
	if denominator <= 0 {
		return
	}
	mit := s.Mitigation()
	for _, g := range s.Groups {
		if !g.alive() {
			continue
		}
		raw := pots[g.Stats.Armor] * float64(g.Count) / float64(denominator)
		g.ApplyDamage(raw * (1 - mit))
	}
}

func (s *Stack) resetRoundStats() {
	for _, g := range s.Groups {
		g.ResetRoundStats()
	}
}
