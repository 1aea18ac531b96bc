package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campus-briefing/internal/models"
)

func TestUnitsCatalogShape(t *testing.T) {
	categories := Units()
	require.Len(t, categories, 15)

	names := map[string]bool{}
	total := 0
	for _, cat := range categories {
		require.NotEmpty(t, cat.Name)
		require.NotEmpty(t, cat.Units, cat.Name)
		for _, unit := range cat.Units {
			assert.False(t, names[unit.Name], "duplicate unit name %q", unit.Name)
			names[unit.Name] = true

			assert.Greater(t, unit.Quantity, 0, unit.Name)
			assert.Greater(t, unit.NetArea, 0.0, unit.Name)
			assert.Contains(t, []models.GrossingClass{
				models.GrossingAcademic,
				models.GrossingHighService,
				models.GrossingOperations,
			}, unit.Grossing, unit.Name)
			total++
		}
	}
	assert.Equal(t, 58, total)
}

func TestPackagesReferenceCatalogUnits(t *testing.T) {
	known := map[string]bool{}
	for _, cat := range Units() {
		for _, unit := range cat.Units {
			known[unit.Name] = true
		}
	}

	for _, tier := range Packages() {
		require.NotEmpty(t, tier.Packages, tier.Name)
		for _, pkg := range tier.Packages {
			require.NotEmpty(t, pkg.Contributions, pkg.Name)
			for _, contrib := range pkg.Contributions {
				assert.True(t, known[contrib.Unit],
					"package %q references unknown unit %q", pkg.Name, contrib.Unit)
				assert.Greater(t, contrib.Quantity, 0)
			}
		}
	}
}

func TestQuickReferenceReferencesCatalogUnits(t *testing.T) {
	known := map[string]bool{}
	for _, cat := range Units() {
		for _, unit := range cat.Units {
			known[unit.Name] = true
		}
	}

	bands := QuickReference()
	require.Len(t, bands, 6)
	for _, band := range bands {
		require.NotEmpty(t, band.Entries, band.Label)
		for _, entry := range band.Entries {
			for _, contrib := range entry.Contributions {
				assert.True(t, known[contrib.Unit],
					"quick reference %q references unknown unit %q", entry.Label, contrib.Unit)
			}
		}
	}
}

func TestEnrollmentSnapshotTotals(t *testing.T) {
	baseline := Enrollment()
	require.Len(t, baseline.Segments, 4)
	assert.Equal(t, 5263, baseline.TotalStudents())

	for _, seg := range baseline.Segments {
		assert.Equal(t, seg.Students, seg.Boys+seg.Girls, seg.Label)
	}
}

func TestTimelineAndCostBands(t *testing.T) {
	stages := Timeline()
	require.Len(t, stages, 8)
	assert.Equal(t, "TOTAL PROJECT DURATION", stages[len(stages)-1].Stage)

	bands := CostBands()
	require.Len(t, bands, 4)

	baselines := 0
	for _, band := range bands {
		if band.Baseline {
			baselines++
		}
	}
	assert.Equal(t, 1, baselines)
}
