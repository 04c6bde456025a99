package combat

// Grounded reports whether an air stack is parked: it belongs to the
// passive defender and has no manual target, so it cannot intercept and
// ground units can hit it.
func Grounded(s *Stack, passive bool) bool {
	return s.Role() == RoleAir && passive && s.Target == ""
}

// Flying is an air stack in the sky. Only air stacks can engage it.
func Flying(s *Stack, passive bool) bool {
	return s.Role() == RoleAir && !Grounded(s, passive)
}

// SelectTarget picks the enemy stack attacker fights this action, or nil.
//
// A named target wins when it is alive and reachable. Otherwise the first
// stack of the first non-empty class is taken:
//
//	1. frontline ground stacks
//	2. backline (split) stacks; ranged attackers without ultra-ranged units
//	   prefer one that has no ultra-ranged units
//	3. grounded air stacks
//	4. flying air stacks, only when the attacker is air itself
func SelectTarget(attacker *Stack, enemy *Army, passive bool) *Stack {
	canHitFlying := attacker.Role() == RoleAir

	if attacker.Target != "" {
		if s := enemy.StackByName(attacker.Target); s != nil {
			if !Flying(s, passive) || canHitFlying {
				return s
			}
		}
	}

	var front, back, grounded, flying []*Stack
	for _, s := range enemy.AliveStacks() {
		switch s.Role() {
		case RoleAir:
			if Grounded(s, passive) {
				grounded = append(grounded, s)
			} else if canHitFlying {
				flying = append(flying, s)
			}
		case RoleBackline:
			back = append(back, s)
		default:
			front = append(front, s)
		}
	}

	switch {
	case len(front) > 0:
		return front[0]
	case len(back) > 0:
		if attacker.HasRanged() && !attacker.HasUltra() {
			for _, s := range back {
				if !s.HasUltra() {
					return s
				}
			}
		}
		return back[0]
	case len(grounded) > 0:
		return grounded[0]
	case len(flying) > 0:
		return flying[0]
	}
	return nil
}
