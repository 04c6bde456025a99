package combat

import "sort"

type FortLevel struct {
	Level      int
	HP         float64
	Mitigation float64
}

// Fortification is a tiered HP pool that grants damage mitigation to the
// stack it belongs to. Damage strips levels from the top down.
type Fortification struct {
	Name      string
	Levels    []FortLevel
	CurrentHP float64
	InitialHP float64
}

// NewFortification copies and sorts levels ascending and clamps hp into
// [0, max hp].
func NewFortification(name string, levels []FortLevel, hp float64) *Fortification {
	sorted := append([]FortLevel(nil), levels...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Level < sorted[j].Level })
	f := &Fortification{Name: name, Levels: sorted}
	f.CurrentHP = clamp(hp, 0, f.MaxHP())
	f.InitialHP = f.CurrentHP
	return f
}

func (f *Fortification) MaxHP() float64 {
	total := 0.0
	for _, l := range f.Levels {
		total += l.HP
	}
	return total
}

// Mitigation walks the levels ascending. Full levels grant their whole bonus,
// the first partially filled level above the base grants 20%-100% of its bonus
// and an unfilled base level grants nothing.
func (f *Fortification) Mitigation() float64 {
	if len(f.Levels) == 0 || f.CurrentHP < f.Levels[0].HP-1e-9 {
		return 0
	}
	total := 0.0
	remaining := f.CurrentHP
	for i, l := range f.Levels {
		if remaining >= l.HP {
			total += l.Mitigation
			remaining -= l.HP
			continue
		}
		if i > 0 && l.HP > 0 {
			total += (minEfficiency + (1-minEfficiency)*remaining/l.HP) * l.Mitigation
		}
		break
	}
	return clamp(total, 0, 1)
}

func (f *Fortification) TakeDamage(amount float64) {
	if amount <= 0 {
		return
	}
	f.CurrentHP = max(0, f.CurrentHP-amount)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
