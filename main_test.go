package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"BattleSimulator/internal/catalog"
)

func TestMergeTables(t *testing.T) {
	combatLogger = zap.NewNop()
	dir := t.TempDir()
	a := filepath.Join(dir, "a.yaml")
	b := filepath.Join(dir, "b.yaml")
	out := filepath.Join(dir, "out.yaml")
	require.NoError(t, os.WriteFile(a, []byte("infantry: {name: Infantry, hp: 15, armor_type: Unarmored}\n"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("infantry: {name: Infantry, hp: 20, armor_type: Unarmored}\ntank: {name: Tank, hp: 30, armor_type: Heavy Armor}\n"), 0o644))

	require.NoError(t, mergeTables([]string{a, b, out}))

	merged, err := catalog.LoadUnits(out)
	require.NoError(t, err)
	assert.Len(t, merged, 2)
	assert.Equal(t, catalog.Num(15), merged["infantry"].HP)
}

func TestMergeTables_Args(t *testing.T) {
	assert.Error(t, mergeTables([]string{"only.yaml"}))
}

func TestRun_SampleBattle(t *testing.T) {
	combatLogger = zap.NewNop()
	err := run("library/units.yaml", "library/buildings.yaml", "library/battle.yaml", 7, 3, "", false)
	assert.NoError(t, err)
}
