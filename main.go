package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"go.uber.org/zap"

	"BattleSimulator/internal/catalog"
	"BattleSimulator/internal/combat"
	"BattleSimulator/internal/server"
)

func main() {
	unitsPath := flag.String("units", "library/units.yaml", "Unit reference table (YAML or JSON)")
	buildingsPath := flag.String("buildings", "library/buildings.yaml", "Building reference table (YAML or JSON)")
	configPath := flag.String("config", "library/battle.yaml", "Battle configuration (YAML or JSON)")
	seed := flag.Int64("seed", 0, "RNG seed; 0 uses the configured seed or the clock")
	runs := flag.Int("runs", 0, "Run the battle this many times and print percentile stats")
	serve := flag.String("serve", "", "Serve the HTTP API on this address instead of running a battle")
	merge := flag.Bool("merge", false, "Merge two unit tables: -merge a.yaml b.yaml out.yaml")
	debug := flag.Bool("debug", false, "Trace targeting and clash decisions")
	flag.Parse()

	initLogger(*debug)
	defer closeLogger()

	if err := run(*unitsPath, *buildingsPath, *configPath, *seed, *runs, *serve, *merge); err != nil {
		combatLogger.Error("battle simulator failed", zap.Error(err))
		closeLogger()
		os.Exit(1)
	}
}

func run(unitsPath, buildingsPath, configPath string, seed int64, runs int, serve string, merge bool) error {
	if merge {
		return mergeTables(flag.Args())
	}

	units, err := catalog.LoadUnits(unitsPath)
	if err != nil {
		return err
	}
	buildings, err := catalog.LoadBuildings(buildingsPath)
	if err != nil {
		return err
	}

	if serve != "" {
		combatLogger.Info("serving", zap.String("addr", serve))
		return http.ListenAndServe(serve, server.NewRouter(units, buildings, combatLogger))
	}

	cfg, err := catalog.LoadBattle(configPath)
	if err != nil {
		return err
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if runs > 0 {
		return batch(cfg, units, buildings, runs)
	}

	battle, err := cfg.Build(units, buildings, combatLogger)
	if err != nil {
		return err
	}
	battle.Engine.OnLine = func(line string) { fmt.Println(line) }
	battle.Engine.Run(battle.A, battle.B)
	return nil
}

func batch(cfg *catalog.BattleConfig, units catalog.Units, buildings catalog.Buildings, runs int) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	b := catalog.NewBuilder(units, buildings, combatLogger)
	build := func() (*combat.Army, *combat.Army) {
		return b.Army(cfg.TeamA), b.Army(cfg.TeamB)
	}
	proto := combat.Engine{Mode: cfg.BattleMode(), MaxRounds: cfg.Rounds()}
	stats := combat.RunBatch(build, proto, runs, cfg.Seed)

	fmt.Printf("%d runs, %s vs %s\n", stats.Runs, nameOf(cfg.TeamA), nameOf(cfg.TeamB))
	fmt.Printf("Wins: A %d | B %d | A win rate %.2f%%\n", stats.WinsA, stats.WinsB, stats.WinRateA()*100)
	fmt.Printf("A surviving HP: 68th: %.2f, 95th: %.2f\n", stats.SurvA68, stats.SurvA95)
	fmt.Printf("B surviving HP: 68th: %.2f, 95th: %.2f\n", stats.SurvB68, stats.SurvB95)
	return nil
}

func mergeTables(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("merge mode requires exactly 3 arguments: a.yaml b.yaml out.yaml")
	}
	first, err := catalog.LoadUnits(args[0])
	if err != nil {
		return err
	}
	second, err := catalog.LoadUnits(args[1])
	if err != nil {
		return err
	}
	merged, conflicts := catalog.Merge(first, second)
	if conflicts != nil {
		combatLogger.Warn("merge conflicts, first definition kept", zap.Error(conflicts))
	}
	if err := catalog.WriteUnits(args[2], merged); err != nil {
		return err
	}
	fmt.Printf("Merged %d units into %s\n", len(merged), args[2])
	return nil
}

func nameOf(t *catalog.TeamConfig) string {
	if t.Name == "" {
		return "Army"
	}
	return t.Name
}
