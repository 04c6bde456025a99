package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunBatch_Reproducible(t *testing.T) {
	proto := Engine{Mode: LandMeet, MaxRounds: 50}

	first := RunBatch(skirmish, proto, 20, 99)
	second := RunBatch(skirmish, proto, 20, 99)

	assert.Equal(t, first, second)
	assert.Equal(t, 20, first.Runs)
	assert.LessOrEqual(t, first.WinsA+first.WinsB, 20)
	assert.LessOrEqual(t, first.SurvA95, first.SurvA68)
	assert.LessOrEqual(t, first.SurvB95, first.SurvB68)
}

func TestRunBatch_Empty(t *testing.T) {
	stats := RunBatch(skirmish, Engine{MaxRounds: 5}, 0, 1)
	assert.Zero(t, stats.Runs)
	assert.Zero(t, stats.WinRateA())
	assert.Zero(t, stats.SurvA68)
}
