package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func airStack(name string, st *UnitStats, count int) *Stack {
	s := newStack(name, fullGroup(st, count))
	s.Air = true
	return s
}

func splitStack(name string, ultra bool) *Stack {
	g := fullGroup(artillery(), 4)
	g.Ranged = true
	g.UltraRanged = ultra
	s := newStack(name, g)
	s.Split = true
	return s
}

func TestSelectTarget_Manual(t *testing.T) {
	army, _, back, _ := layeredArmy()
	attacker := newStack("Assault", fullGroup(infantry(), 10))
	attacker.Target = "Battery"

	assert.Same(t, back, SelectTarget(attacker, army, false))
}

func TestSelectTarget_ManualFlyingOutOfReach(t *testing.T) {
	army, front, _, air := layeredArmy()
	attacker := newStack("Assault", fullGroup(infantry(), 10))
	attacker.Target = "Hangar"

	assert.Same(t, front, SelectTarget(attacker, army, false), "ground stacks cannot reach flying targets")
	assert.Same(t, air, SelectTarget(attacker, army, true), "grounded planes can be hit")

	flyer := airStack("Wing", interceptor(), 4)
	flyer.Target = "Hangar"
	assert.Same(t, air, SelectTarget(flyer, army, false))
}

func TestSelectTarget_ManualDeadFallsBack(t *testing.T) {
	army, front, back, _ := layeredArmy()
	back.Groups[0].ApplyDamage(1000)
	attacker := newStack("Assault", fullGroup(infantry(), 10))
	attacker.Target = "Battery"

	assert.Same(t, front, SelectTarget(attacker, army, false))
}

func TestSelectTarget_PriorityClasses(t *testing.T) {
	ground := newStack("Assault", fullGroup(infantry(), 10))
	flyer := airStack("Wing", interceptor(), 4)

	army, front, back, air := layeredArmy()
	assert.Same(t, front, SelectTarget(ground, army, false))

	front.Groups[0].ApplyDamage(1000)
	assert.Same(t, back, SelectTarget(ground, army, false))

	back.Groups[0].ApplyDamage(1000)
	assert.Nil(t, SelectTarget(ground, army, false), "only a flying stack is left")
	assert.Same(t, air, SelectTarget(ground, army, true), "passive defender's planes are grounded")
	assert.Same(t, air, SelectTarget(flyer, army, false))
}

func TestSelectTarget_GroundedBeforeFlying(t *testing.T) {
	parked := airStack("Parked", interceptor(), 2)
	patrol := airStack("Patrol", interceptor(), 2)
	patrol.Target = "Somebody"
	army := &Army{Name: "Sky", Stacks: []*Stack{patrol, parked}}
	flyer := airStack("Wing", bomber(), 4)

	assert.Same(t, parked, SelectTarget(flyer, army, true))
	assert.Same(t, patrol, SelectTarget(flyer, army, false))
}

func TestSelectTarget_SkirmishersAvoidUltraRanged(t *testing.T) {
	longGuns := splitStack("Long Guns", true)
	mortars := splitStack("Mortars", false)
	army := &Army{Name: "Rear", Stacks: []*Stack{longGuns, mortars}}

	skirmisher := splitStack("Skirmishers", false)
	assert.Same(t, mortars, SelectTarget(skirmisher, army, false))

	sniper := splitStack("Snipers", true)
	assert.Same(t, longGuns, SelectTarget(sniper, army, false))

	melee := newStack("Assault", fullGroup(infantry(), 10))
	assert.Same(t, longGuns, SelectTarget(melee, army, false))

	mortars.Groups[0].ApplyDamage(1000)
	assert.Same(t, longGuns, SelectTarget(skirmisher, army, false), "falls back to the first backline stack")
}

func TestSelectTarget_NoEnemies(t *testing.T) {
	attacker := newStack("Assault", fullGroup(infantry(), 10))
	assert.Nil(t, SelectTarget(attacker, &Army{Name: "Nobody"}, false))
}

func TestGroundedAndFlying(t *testing.T) {
	s := airStack("Hangar", interceptor(), 2)
	assert.True(t, Grounded(s, true))
	assert.False(t, Flying(s, true))
	assert.False(t, Grounded(s, false))
	assert.True(t, Flying(s, false))

	s.Target = "Line"
	assert.False(t, Grounded(s, true), "planes with orders take off")

	ground := newStack("Line", fullGroup(infantry(), 2))
	assert.False(t, Grounded(ground, true))
	assert.False(t, Flying(ground, false))
}
