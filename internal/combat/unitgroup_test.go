package combat

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUnitGroup_Clamps(t *testing.T) {
	st := infantry()

	g := NewUnitGroup(st, 10, 1e6)
	assert.Equal(t, 150.0, g.CurrentHP)
	assert.Equal(t, 150.0, g.InitialHP)
	assert.Equal(t, 10, g.InitialCount)

	g = NewUnitGroup(st, -3, 50)
	assert.Equal(t, 0, g.Count)
	assert.Equal(t, 0.0, g.CurrentHP)

	g = NewUnitGroup(st, 4, 0)
	assert.Equal(t, 0, g.Count, "a group with no health has no units")
}

func TestUnitGroup_UnitDamage(t *testing.T) {
	g := fullGroup(infantry(), 10)
	assert.InDelta(t, 2.0, g.UnitDamage(Attack, Unarmored), 1e-9)
	assert.InDelta(t, 3.0, g.UnitDamage(Defense, Unarmored), 1e-9)
	assert.Equal(t, 0.0, g.UnitDamage(Attack, Submarine))

	g.TerrainBonus = 0.1
	g.Core = true
	assert.InDelta(t, 2.0*1.1*1.15, g.UnitDamage(Attack, Unarmored), 1e-9)
}

func TestUnitGroup_UnitDamageScalesWithHealth(t *testing.T) {
	healthy := fullGroup(infantry(), 10)
	hurt := NewUnitGroup(infantry(), 10, 150*0.3)

	hi := healthy.UnitDamage(Attack, Unarmored)
	lo := hurt.UnitDamage(Attack, Unarmored)
	assert.Greater(t, hi, lo)
	assert.InDelta(t, 2.0*(0.2+0.8*0.3), lo, 1e-9)
	assert.LessOrEqual(t, hi/lo, 5.0)
}

func TestUnitGroup_UnitDamageEmpty(t *testing.T) {
	g := fullGroup(infantry(), 10)
	g.ApplyDamage(1000)
	assert.Equal(t, 0.0, g.UnitDamage(Attack, Unarmored))
}

func TestUnitGroup_ApplyDamage(t *testing.T) {
	t.Run("zero is a no-op", func(t *testing.T) {
		g := fullGroup(infantry(), 10)
		g.ApplyDamage(0)
		assert.Equal(t, 10, g.Count)
		assert.Equal(t, 150.0, g.CurrentHP)
		assert.Equal(t, 0.0, g.RoundLoss)
	})

	t.Run("above threshold only health drops", func(t *testing.T) {
		g := fullGroup(infantry(), 10)
		g.ApplyDamage(30)
		assert.Equal(t, 10, g.Count)
		assert.Equal(t, 120.0, g.CurrentHP)
		assert.Equal(t, 30.0, g.RoundLoss)
		assert.Equal(t, 0, g.RoundDead)
	})

	t.Run("below threshold whole units die", func(t *testing.T) {
		g := NewUnitGroup(newStats("Rifles", 10, Unarmored, nil, nil), 10, 40)
		g.ApplyDamage(10) // avg 4 hp per unit
		assert.Equal(t, 8, g.Count)
		assert.Equal(t, 30.0, g.CurrentHP)
		assert.Equal(t, 2, g.RoundDead)
	})

	t.Run("lethal damage empties the group", func(t *testing.T) {
		g := fullGroup(infantry(), 10)
		g.ApplyDamage(150)
		assert.Equal(t, 0, g.Count)
		assert.Equal(t, 0.0, g.CurrentHP)
		assert.Equal(t, 150.0, g.RoundLoss)
		assert.Equal(t, 10, g.RoundDead)

		g.ApplyDamage(10)
		assert.Equal(t, 150.0, g.RoundLoss, "dead groups take no more damage")
	})
}

func TestUnitGroup_ResetRoundStats(t *testing.T) {
	g := NewUnitGroup(infantry(), 10, 60)
	g.ApplyDamage(20)
	require.NotZero(t, g.RoundLoss)
	g.ResetRoundStats()
	assert.Zero(t, g.RoundLoss)
	assert.Zero(t, g.RoundDead)
}

func TestUnitGroup_InvariantsUnderRandomDamage(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for trial := 0; trial < 50; trial++ {
		g := NewUnitGroup(infantry(), 1+r.Intn(30), 1e9)
		prevCount, prevHP := g.Count, g.CurrentHP
		for g.Count > 0 {
			g.ApplyDamage(r.Float64() * 20)
			require.GreaterOrEqual(t, g.CurrentHP, 0.0)
			require.LessOrEqual(t, g.CurrentHP, g.MaxHP()+1e-9)
			require.LessOrEqual(t, g.Count, prevCount)
			require.LessOrEqual(t, g.CurrentHP, prevHP)
			if g.Count == 0 {
				require.Zero(t, g.CurrentHP)
			}
			prevCount, prevHP = g.Count, g.CurrentHP
		}
	}
}
