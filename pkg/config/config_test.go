package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, "info", cfg.Log.Level)

	assert.Equal(t, 0.152, cfg.Planning.EarlyYearsRatio)
	assert.Equal(t, 0.311, cfg.Planning.PrimaryRatio)
	assert.Equal(t, 0.390, cfg.Planning.IntermediateRatio)
	assert.Equal(t, 22, cfg.Planning.EarlyYearsCapacity)
	assert.Equal(t, 25, cfg.Planning.StandardCapacity)
	assert.Equal(t, 1.08, cfg.Planning.ClassroomBuffer)
	assert.Equal(t, 7000, cfg.Planning.BaselineStudents)
	assert.Equal(t, []int{5500, 6000, 7000}, cfg.Planning.ScenarioTargets)

	assert.Equal(t, 250_000_000.0, cfg.Economics.TotalProjectCostSAR)
	assert.Equal(t, 52_400.0, cfg.Economics.TotalBUA)
	assert.Equal(t, 3.75, cfg.Economics.SARPerUSD)
	assert.InDelta(t, 4770.99, cfg.Economics.CostPerBUA(), 0.01)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PLAN_BASELINE_STUDENTS", "8000")
	t.Setenv("PLAN_SCENARIO_TARGETS", "4000, 8000")
	t.Setenv("LOG_FORMAT", "console")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Planning.BaselineStudents)
	assert.Equal(t, []int{4000, 8000}, cfg.Planning.ScenarioTargets)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestParseIntList(t *testing.T) {
	assert.Nil(t, parseIntList(""))
	assert.Equal(t, []int{5500}, parseIntList("5500"))
	assert.Equal(t, []int{1, 2, 3}, parseIntList(" 1 , 2 ,3 "))
	assert.Equal(t, []int{7000}, parseIntList("abc,-5,0,7000"))
}
