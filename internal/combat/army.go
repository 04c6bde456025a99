package combat

// Army is one side of a battle.
type Army struct {
	Name   string
	Stacks []*Stack
}

func (a *Army) TotalHP() float64 {
	total := 0.0
	for _, s := range a.Stacks {
		total += s.TotalHP()
	}
	return total
}

func (a *Army) TotalCount() int {
	total := 0
	for _, s := range a.Stacks {
		total += s.TotalCount()
	}
	return total
}

func (a *Army) Alive() bool {
	for _, s := range a.Stacks {
		if s.Alive() {
			return true
		}
	}
	return false
}

func (a *Army) AliveStacks() []*Stack {
	var out []*Stack
	for _, s := range a.Stacks {
		if s.Alive() {
			out = append(out, s)
		}
	}
	return out
}

func (a *Army) ArmorTypes() []ArmorType {
	set := armorSet{}
	for _, s := range a.Stacks {
		for _, t := range s.ArmorTypes() {
			set[t] = true
		}
	}
	return set.sorted()
}

func (a *Army) HasFortification() bool {
	for _, s := range a.Stacks {
		if s.Fort != nil {
			return true
		}
	}
	return false
}

// StackByName finds a live stack by name.
func (a *Army) StackByName(name string) *Stack {
	for _, s := range a.Stacks {
		if s.Name == name && s.Alive() {
			return s
		}
	}
	return nil
}

func (a *Army) ResetRoundStats() {
	for _, s := range a.Stacks {
		s.resetRoundStats()
	}
}

// BlobOutput pools every group of every live stack and computes the best
// output the army can bring to bear, whichever stack is engaged.
func (a *Army) BlobOutput(kind DamageKind, armor ArmorType, limit int) float64 {
	var all []*UnitGroup
	for _, s := range a.AliveStacks() {
		all = append(all, s.Groups...)
	}
	return groupOutput(all, kind, armor, limit, false)
}

// ReceiveDamage routes incoming damage into the air, frontline and backline
// pools. Ground damage hits the frontline until it is gone unless the
// primary target sits in the backline; air stacks always share the same
// potentials among themselves.
func (a *Army) ReceiveDamage(pots DamageMap, siege float64, primary *Stack) {
	var air, front, back []*Stack
	for _, s := range a.AliveStacks() {
		switch s.Role() {
		case RoleAir:
			air = append(air, s)
		case RoleBackline:
			back = append(back, s)
		default:
			front = append(front, s)
		}
	}

	var ground []*Stack
	switch {
	case primary != nil && primary.Role() == RoleAir:
	case primary != nil && primary.Role() == RoleBackline:
		ground = back
	case len(front) > 0:
		ground = front
	default:
		ground = back
	}

	if len(ground) > 0 {
		denom := poolCount(ground)
		for _, s := range ground {
			s.ReceiveDamage(pots, denom)
			if s.Fort != nil {
				s.Fort.TakeDamage(siege)
			}
		}
	}
	if len(air) > 0 {
		denom := poolCount(air)
		for _, s := range air {
			s.ReceiveDamage(pots, denom)
		}
	}
}

func poolCount(pool []*Stack) int {
	total := 0
	for _, s := range pool {
		total += s.TotalCount()
	}
	return total
}
