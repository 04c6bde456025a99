package combat

import (
	"fmt"
	"math/rand"
	"strconv"

	"go.uber.org/zap"

	"BattleSimulator/internal/rng"
)

type Mode string

const (
	LandAttack Mode = "LAND_ATTACK"
	LandMeet   Mode = "LAND_MEET"
	AirStrike  Mode = "AIR_STRIKE"
)

func ParseMode(s string) (Mode, bool) {
	switch m := Mode(s); m {
	case LandAttack, LandMeet, AirStrike:
		return m, true
	}
	return "", false
}

// Engine runs a battle between side A and side B. The zero value runs
// LAND_ATTACK for zero rounds without randomness.
type Engine struct {
	Mode      Mode
	MaxRounds int
	Random    *rand.Rand // nil disables the round factors
	Detailed  bool
	Templates *Templates
	Logger    *zap.Logger
	OnLine    func(string)

	lines []string
}

type Result struct {
	Rounds int
	Winner string // army name, empty while both or neither side stands
	Lines  []string
}

type action struct {
	actor   *Stack
	enemy   *Army
	passive bool
}

func (e *Engine) templates() *Templates {
	if e.Templates == nil {
		e.Templates = DefaultTemplates()
	}
	return e.Templates
}

func (e *Engine) logger() *zap.Logger {
	if e.Logger == nil {
		e.Logger = zap.NewNop()
	}
	return e.Logger
}

func (e *Engine) emit(line string) {
	e.lines = append(e.lines, line)
	if e.OnLine != nil {
		e.OnLine(line)
	}
}

// Run fights rounds until one side is gone or MaxRounds is reached and
// returns the transcript.
func (e *Engine) Run(a, b *Army) Result {
	e.lines = nil
	t := e.templates()
	e.emit(fill(t.Start, "a", a.Name, "b", b.Name))
	e.emit(fill(t.Mode, "mode", string(e.mode()), "rnd", strconv.FormatBool(e.Random != nil)))

	rounds := 0
	for r := 1; r <= e.MaxRounds; r++ {
		if !a.Alive() || !b.Alive() {
			break
		}
		e.Round(r, a, b)
		rounds = r
	}
	e.writeFinal(a, b)

	res := Result{Rounds: rounds, Lines: e.lines}
	switch {
	case a.Alive() && !b.Alive():
		res.Winner = a.Name
	case b.Alive() && !a.Alive():
		res.Winner = b.Name
	}
	e.logger().Info("battle finished",
		zap.String("a", a.Name),
		zap.String("b", b.Name),
		zap.Int("rounds", rounds),
		zap.String("winner", res.Winner))
	return res
}

func (e *Engine) mode() Mode {
	if e.Mode == "" {
		return LandAttack
	}
	return e.Mode
}

// Round plays one round: reset counters, draw the factors, then work
// through the interleaved action queue.
func (e *Engine) Round(r int, a, b *Army) {
	log := e.logger().With(zap.Int("round", r))
	a.ResetRoundStats()
	b.ResetRoundStats()

	atk, def := rng.Factor(e.Random), rng.Factor(e.Random)
	log.Debug("round factors", zap.Float64("attack", atk), zap.Float64("defense", def))

	e.emit("")
	e.emit(fill(e.templates().Round, "r", strconv.Itoa(r)))

	for _, act := range e.queue(a, b) {
		if !act.actor.Alive() || !act.enemy.Alive() {
			continue
		}
		target := SelectTarget(act.actor, act.enemy, act.passive)
		if act.actor.Target != "" && (target == nil || target.Name != act.actor.Target) {
			log.Debug("manual target unavailable",
				zap.String("stack", act.actor.Name),
				zap.String("wanted", act.actor.Target))
		}
		if target == nil {
			log.Debug("no valid target", zap.String("stack", act.actor.Name))
			continue
		}
		rep := ResolveClash(act.actor, target, act.enemy, atk, def, act.passive)
		log.Debug("clash",
			zap.String("stack", act.actor.Name),
			zap.String("target", target.Name),
			zap.Int("passes", rep.Passes),
			zap.Bool("free_hit", rep.FreeHit),
			zap.Bool("retaliated", rep.Retaliated),
			zap.Float64("output", rep.Output.Total()),
			zap.Float64("counter", rep.Counter.Total()),
			zap.Float64("dealt", rep.Dealt),
			zap.Float64("taken", rep.Taken))
	}

	e.writeRoundDetails(a)
	e.writeRoundDetails(b)
	e.writeSummary(a)
	e.writeSummary(b)
}

// queue interleaves A[0], B[0], A[1], B[1], ... Side A brings every live
// stack. Side B brings every live stack in LAND_MEET and otherwise only its
// split, air or targeted ones, and is the passive side.
func (e *Engine) queue(a, b *Army) []action {
	as := a.AliveStacks()
	var bs []*Stack
	meet := e.mode() == LandMeet
	for _, s := range b.AliveStacks() {
		if meet || s.Split || s.Air || s.Target != "" {
			bs = append(bs, s)
		}
	}

	q := make([]action, 0, len(as)+len(bs))
	for i := 0; i < max(len(as), len(bs)); i++ {
		if i < len(as) {
			q = append(q, action{actor: as[i], enemy: b, passive: !meet})
		}
		if i < len(bs) {
			q = append(q, action{actor: bs[i], enemy: a})
		}
	}
	return q
}

func (r Result) String() string {
	if r.Winner == "" {
		return fmt.Sprintf("%d rounds, no winner", r.Rounds)
	}
	return fmt.Sprintf("%d rounds, %s wins", r.Rounds, r.Winner)
}
