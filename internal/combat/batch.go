package combat

import (
	"math/rand"
	"sort"

	"BattleSimulator/internal/rng"
)

// BatchStats summarises many seeded runs of the same battle.
type BatchStats struct {
	Runs    int
	WinsA   int
	WinsB   int
	SurvA68 float64 // surviving hp of A reached in 68% of runs
	SurvA95 float64
	SurvB68 float64
	SurvB95 float64
}

func (s BatchStats) WinRateA() float64 {
	if s.Runs == 0 {
		return 0
	}
	return float64(s.WinsA) / float64(s.Runs)
}

// RunBatch fights the battle produced by build runs times. Run i uses seed+i,
// so a batch is reproducible. Transcripts are dropped; only the outcome is
// kept.
func RunBatch(build func() (a, b *Army), proto Engine, runs int, seed int64) BatchStats {
	stats := BatchStats{Runs: runs}
	survA := make([]float64, 0, runs)
	survB := make([]float64, 0, runs)

	for i := 0; i < runs; i++ {
		a, b := build()
		e := Engine{
			Mode:      proto.Mode,
			MaxRounds: proto.MaxRounds,
			Random:    rand.New(rand.NewSource(seed + int64(i))),
			Logger:    proto.Logger,
		}
		res := e.Run(a, b)
		switch res.Winner {
		case "":
		case a.Name:
			stats.WinsA++
		default:
			stats.WinsB++
		}
		survA = append(survA, a.TotalHP())
		survB = append(survB, b.TotalHP())
	}

	sort.Float64s(survA)
	sort.Float64s(survB)
	stats.SurvA68 = rng.Percentile(survA, 0.68)
	stats.SurvA95 = rng.Percentile(survA, 0.95)
	stats.SurvB68 = rng.Percentile(survB, 0.68)
	stats.SurvB95 = rng.Percentile(survB, 0.95)
	return stats
}
