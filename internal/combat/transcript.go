package combat

import (
	"fmt"
	"strconv"
	"strings"
)

// Templates are the line templates of the battle transcript. Placeholders
// are written as {name}; the numbers filled in are always formatted the
// same way, whatever the language of the template.
type Templates struct {
	Start       string // {a} {b}
	Mode        string // {mode} {rnd}
	Round       string // {r}
	Details     string // {name}
	NoLoss      string
	Summary     string // {name} {hp} {count} {bld}
	FinalHeader string
	FinalStats  string // {name}
	TableHeader string
	TotalLoss   string // {dead} {hp}
	LossStr     string // {loss} {dead}
}

func DefaultTemplates() *Templates {
	return &Templates{
		Start:       "=== Battle Start: {a} vs {b} ===",
		Mode:        "Mode: {mode} | Random: {rnd}",
		Round:       "Round {r}:",
		Details:     "  > {name} Details:",
		NoLoss:      "    (No Casualties)",
		Summary:     "  Summary {name}: HP {hp} (Cnt: {count}){bld}",
		FinalHeader: "Final Results",
		FinalStats:  "[{name}] Final Statistics:",
		TableHeader: "  UNIT (STACK)                   | START (HP/CNT)       | END (HP/CNT)         | LOSS",
		TotalLoss:   "  TOTAL: {dead} units died, {hp} HP lost.",
		LossStr:     "Lost {loss}{dead}",
	}
}

func fill(tpl string, kv ...string) string {
	pairs := make([]string, 0, len(kv))
	for i := 0; i+1 < len(kv); i += 2 {
		pairs = append(pairs, "{"+kv[i]+"}", kv[i+1])
	}
	return strings.NewReplacer(pairs...).Replace(tpl)
}

func f2(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func pct(part, whole float64) float64 {
	if whole <= 0 {
		return 0
	}
	return part / whole * 100
}

func (e *Engine) writeRoundDetails(a *Army) {
	t := e.templates()
	e.emit(fill(t.Details, "name", a.Name))
	listed := false
	for _, s := range a.Stacks {
		for _, g := range s.Groups {
			if !e.Detailed && g.RoundLoss <= 0.001 && g.RoundDead <= 0 {
				continue
			}
			listed = true
			dead := ""
			if g.RoundDead > 0 {
				dead = fmt.Sprintf(" ☠️ %d", g.RoundDead)
			}
			stat := fmt.Sprintf("HP %s/%s (%s%%)", f2(g.CurrentHP), f2(g.MaxHP()), f2(g.HPRatio()*100))
			loss := fill(t.LossStr, "loss", f2(g.RoundLoss), "dead", dead)
			e.emit(fmt.Sprintf("    * [%s] %-20s | %-25s | %s", s.Name, g.Name, stat, loss))
		}
	}
	if !listed && !e.Detailed {
		e.emit(t.NoLoss)
	}
}

func (e *Engine) writeSummary(a *Army) {
	var bld strings.Builder
	for _, s := range a.Stacks {
		if s.Fort != nil {
			fmt.Fprintf(&bld, " | %s(%s%%)", s.Fort.Name, f2(s.Fort.Mitigation()*100))
		}
	}
	e.emit(fill(e.templates().Summary,
		"name", a.Name,
		"hp", f2(a.TotalHP()),
		"count", strconv.Itoa(a.TotalCount()),
		"bld", bld.String()))
}

func (e *Engine) writeFinal(armies ...*Army) {
	t := e.templates()
	e.emit("")
	e.emit(strings.Repeat("=", 60))
	e.emit(t.FinalHeader)
	e.emit(strings.Repeat("=", 60))

	for _, a := range armies {
		e.emit(fill(t.FinalStats, "name", a.Name))
		e.emit(t.TableHeader)
		e.emit("  " + strings.Repeat("-", 96))
		dead, lost := 0, 0.0
		for _, s := range a.Stacks {
			for _, g := range s.Groups {
				ld := g.InitialCount - g.Count
				lh := g.InitialHP - g.CurrentHP
				dead += ld
				lost += lh
				name := fmt.Sprintf("[%s] %s", s.Name, g.Name)
				start := fmt.Sprintf("%s / %d", f2(g.InitialHP), g.InitialCount)
				end := fmt.Sprintf("%s / %d", f2(g.CurrentHP), g.Count)
				loss := fmt.Sprintf("-%s (%s%%) / -%d", f2(lh), f2(pct(lh, g.InitialHP)), ld)
				e.emit(fmt.Sprintf("  %-30s | %-20s | %-20s | %s", name, start, end, loss))
			}
		}
		e.emit("  " + strings.Repeat("-", 96))
		e.emit(fill(t.TotalLoss, "dead", strconv.Itoa(dead), "hp", f2(lost)))
		for _, s := range a.Stacks {
			if f := s.Fort; f != nil {
				e.emit(fmt.Sprintf("  [Stack %s] BUILDING: %s | Start: %s -> End: %s | Lost: %s",
					s.Name, f.Name, f2(f.InitialHP), f2(f.CurrentHP), f2(f.InitialHP-f.CurrentHP)))
			}
		}
		e.emit(strings.Repeat("-", 60))
	}
}
