package combat

// ClashReport summarises one resolved clash.
type ClashReport struct {
	Passes     int
	FreeHit    bool
	Retaliated bool
	Output     DamageMap // attacker potentials, summed over passes
	Counter    DamageMap // defender potentials, summed over passes
	Dealt      float64   // hp the target army lost
	Taken      float64   // hp the active stack lost
	Siege      float64
}

// ResolveClash runs the exchange between active and target, which belongs
// to targetArmy. It does nothing when a ground stack faces a flying one.
//
// Decision table:
//
//	patrol air stack        two passes at half strength, otherwise one full pass
//	split with ranged units free hit: only ranged groups fire, no return fire
//	air vs grounded air     no return fire unless the attacker patrols
//	anything else           the whole defending army returns fire
func ResolveClash(active, target *Stack, targetArmy *Army, atkFactor, defFactor float64, passive bool) ClashReport {
	rep := ClashReport{Output: DamageMap{}, Counter: DamageMap{}}
	if !active.Alive() || !target.Alive() {
		return rep
	}
	if Flying(target, passive) && active.Role() != RoleAir {
		return rep
	}

	patrol := active.Patrol && active.Role() == RoleAir
	passes, modifier := 1, 1.0
	if patrol {
		passes, modifier = 2, 0.5
	}

	rep.FreeHit = active.Split && (active.HasRanged() || active.HasUltra())
	retaliates := true
	switch {
	case rep.FreeHit:
		retaliates = false
	case Grounded(target, passive) && active.Role() == RoleAir && !patrol:
		retaliates = false
	}

	for i := 0; i < passes; i++ {
		if !active.Alive() || !target.Alive() {
			break
		}
		rep.Passes++

		out := DamageMap{}
		for _, armor := range targetArmy.ArmorTypes() {
			out[armor] = active.Output(Attack, armor, DefaultParticipants, rep.FreeHit) * atkFactor * modifier
			rep.Output[armor] += out[armor]
		}
		siege := 0.0
		if targetArmy.HasFortification() {
			siege = active.Output(Attack, Building, DefaultParticipants, rep.FreeHit) * atkFactor * modifier
			rep.Siege += siege
		}

		var counter DamageMap
		if retaliates {
			counter = DamageMap{}
			for _, armor := range active.ArmorTypes() {
				counter[armor] = targetArmy.BlobOutput(Defense, armor, DefaultParticipants) * defFactor * modifier
				rep.Counter[armor] += counter[armor]
			}
		}

		before := targetArmy.TotalHP()
		targetArmy.ReceiveDamage(out, siege, target)
		rep.Dealt += before - targetArmy.TotalHP()

		if retaliates {
			rep.Retaliated = true
			before = active.TotalHP()
			active.ReceiveDamage(counter, active.TotalCount())
			rep.Taken += before - active.TotalHP()
		}
	}
	return rep
}
