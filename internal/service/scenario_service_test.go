package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-briefing/pkg/config"
	appErrors "github.com/noah-isme/campus-briefing/pkg/errors"
)

func testPlanning() config.PlanningConfig {
	return config.PlanningConfig{
		EarlyYearsRatio:   0.152,
		PrimaryRatio:      0.311,
		IntermediateRatio: 0.390,

		EarlyYearsCapacity: 22,
		StandardCapacity:   25,
		ClassroomBuffer:    1.08,

		EarlyYearsRoomArea: 55.0,
		StandardRoomArea:   43.12,

		LabArea:           65.0,
		LabsPerClassrooms: 10,
		ICTPerClassrooms:  15,

		BaselineStudents:   7000,
		SENBaseline:        736,
		AdminBaseline:      672,
		StaffBaseline:      950,
		ITOpsBaseline:      641,
		FoodBaseline:       3380,
		SportsBaseline:     3981,
		AuditoriumBaseline: 4070,

		AdminFloor:  0.85,
		SharedFloor: 0.80,

		FloorCount: 3,
		PlotArea:   25000,

		CostLowPerM2:  4580,
		CostHighPerM2: 4960,

		ScenarioTargets: []int{5500, 6000, 7000},
	}
}

func testEconomics() config.EconomicsConfig {
	return config.EconomicsConfig{
		TotalProjectCostSAR: 250_000_000,
		TotalBUA:            52_400,
		SARPerUSD:           3.75,

		GrossingAcademic:    1.45,
		GrossingHighService: 1.65,
		GrossingOperations:  1.55,
	}
}

func TestScenarioServiceComputeDesignTarget(t *testing.T) {
	svc := NewScenarioService(testPlanning(), testEconomics(), zap.NewNop())

	sc, err := svc.Compute(7000)
	require.NoError(t, err)

	assert.Equal(t, 1064, sc.EarlyYears.Students)
	assert.Equal(t, 2177, sc.Primary.Students)
	assert.Equal(t, 2730, sc.Intermediate.Students)
	assert.Equal(t, 1029, sc.Secondary.Students)

	assert.Equal(t, 53, sc.EarlyYears.Classrooms)
	assert.Equal(t, 95, sc.Primary.Classrooms)
	assert.Equal(t, 118, sc.Intermediate.Classrooms)
	assert.Equal(t, 45, sc.Secondary.Classrooms)
	assert.Equal(t, 311, sc.TotalClassrooms)

	assert.Equal(t, 52, sc.ScienceLabs)
	assert.Equal(t, 36, sc.ICTLabs)

	assert.Equal(t, 14040, sc.TeachingNet)
	assert.Equal(t, 5720, sc.SpecialistNet)
	assert.Equal(t, 2999, sc.SupportNet)
	assert.Equal(t, 11431, sc.SharedNet)
	assert.Equal(t, 34190, sc.TotalNet)
	assert.Equal(t, 51926, sc.TotalGross)

	assert.Equal(t, 17309, sc.Footprint)
	assert.Equal(t, 69, sc.CoveragePct)
	assert.Equal(t, 238, sc.CostLowSARm)
	assert.Equal(t, 258, sc.CostHighSARm)
}

func TestScenarioServiceComputeSmallerTargets(t *testing.T) {
	svc := NewScenarioService(testPlanning(), testEconomics(), zap.NewNop())

	tests := []struct {
		students   int
		classrooms int
		gross      int
		costLow    int
		costHigh   int
	}{
		{5500, 244, 41179, 189, 204},
		{6000, 267, 44580, 204, 221},
	}

	for _, tt := range tests {
		sc, err := svc.Compute(tt.students)
		require.NoError(t, err)
		assert.Equal(t, tt.classrooms, sc.TotalClassrooms, "classrooms for %d", tt.students)
		assert.Equal(t, tt.gross, sc.TotalGross, "gross for %d", tt.students)
		assert.Equal(t, tt.costLow, sc.CostLowSARm, "cost low for %d", tt.students)
		assert.Equal(t, tt.costHigh, sc.CostHighSARm, "cost high for %d", tt.students)
	}
}

func TestScenarioServiceSegmentsSumToTarget(t *testing.T) {
	svc := NewScenarioService(testPlanning(), testEconomics(), zap.NewNop())

	for _, students := range []int{1, 100, 1234, 5263, 5500, 6000, 7000, 12000} {
		sc, err := svc.Compute(students)
		require.NoError(t, err)

		sum := 0
		for _, seg := range sc.Segments() {
			sum += seg.Students
		}
		assert.Equal(t, students, sum, "segment drift for %d students", students)
		assert.GreaterOrEqual(t, sc.Secondary.Students, 0)
	}
}

func TestScenarioServiceGrossingIsPerCategory(t *testing.T) {
	svc := NewScenarioService(testPlanning(), testEconomics(), zap.NewNop())

	sc, err := svc.Compute(7000)
	require.NoError(t, err)

	// A blended factor on the net total cannot reproduce the gross total: the
	// academic, high-service and operations pools each carry their own factor.
	blendedLow := int(float64(sc.TotalNet) * 1.45)
	blendedHigh := int(float64(sc.TotalNet) * 1.65)
	assert.Greater(t, sc.TotalGross, blendedLow)
	assert.Less(t, sc.TotalGross, blendedHigh)
}

func TestScenarioServiceRejectsNonPositiveTarget(t *testing.T) {
	svc := NewScenarioService(testPlanning(), testEconomics(), zap.NewNop())

	for _, students := range []int{0, -500} {
		_, err := svc.Compute(students)
		require.Error(t, err)
		appErr := appErrors.FromError(err)
		assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	}
}

func TestScenarioServiceComputeAll(t *testing.T) {
	svc := NewScenarioService(testPlanning(), testEconomics(), zap.NewNop())

	scenarios, err := svc.ComputeAll()
	require.NoError(t, err)
	require.Len(t, scenarios, 3)

	assert.Equal(t, 5500, scenarios[0].TotalStudents)
	assert.Equal(t, 6000, scenarios[1].TotalStudents)
	assert.Equal(t, 7000, scenarios[2].TotalStudents)

	// Larger targets never shrink the plant.
	assert.Less(t, scenarios[0].TotalGross, scenarios[1].TotalGross)
	assert.Less(t, scenarios[1].TotalGross, scenarios[2].TotalGross)
}
