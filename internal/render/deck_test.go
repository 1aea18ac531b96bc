package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campus-briefing/internal/models"
)

func sampleScenario() models.Scenario {
	return models.Scenario{
		TotalStudents: 7000,

		EarlyYears:   models.SegmentPlan{Segment: models.SegmentEarlyYears, Students: 1064, Classrooms: 53},
		Primary:      models.SegmentPlan{Segment: models.SegmentPrimary, Students: 2177, Classrooms: 95},
		Intermediate: models.SegmentPlan{Segment: models.SegmentIntermediate, Students: 2730, Classrooms: 118},
		Secondary:    models.SegmentPlan{Segment: models.SegmentSecondary, Students: 1029, Classrooms: 45},

		TotalClassrooms: 311,
		ScienceLabs:     52,
		ICTLabs:         36,

		TeachingNet:   14040,
		SpecialistNet: 5720,
		SupportNet:    2999,
		SharedNet:     11431,

		TotalNet:   34190,
		TotalGross: 51926,

		Footprint:   17309,
		CoveragePct: 69,

		CostLowSARm:  238,
		CostHighSARm: 258,
	}
}

func sampleBaseline() models.EnrollmentBaseline {
	return models.EnrollmentBaseline{
		Session: "2024-25",
		AsOf:    "October 2024",
		Segments: []models.EnrollmentSegment{
			{Segment: models.SegmentEarlyYears, Label: "Early Years", Grades: "Nursery-KG", Students: 801, Boys: 420, Girls: 381, Sections: 34, Classrooms: 33},
			{Segment: models.SegmentPrimary, Label: "Primary", Grades: "G1-G4", Students: 1639, Boys: 858, Girls: 781, Sections: 60, Classrooms: 66},
		},
	}
}

func TestDeckRendererProducesPDF(t *testing.T) {
	r := NewDeckRenderer()

	data, err := r.Render(DeckInput{
		Scenarios: []models.Scenario{sampleScenario()},
		Baseline:  sampleBaseline(),
		Priced:    samplePriced(),
		Tiers:     sampleTiers(),
		QuickRef:  sampleQuickRef(),
		Timeline: []models.TimelineStage{
			{Stage: "Concept & schematic design", Duration: "4 months", Cumulative: "4 months"},
			{Stage: "Construction", Duration: "24 months", Cumulative: "36 months"},
		},
		CostBands: []models.CostBand{
			{Scenario: "Value-engineered", SpecLevel: "Standard finishes", RangeSAR: "210-230M", OpexProfile: "Lean"},
			{Scenario: "Baseline", SpecLevel: "Mid-institutional", RangeSAR: "238-258M", OpexProfile: "Moderate", Baseline: true},
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, data)

	// PDF header plus EOF trailer.
	assert.Equal(t, "%PDF", string(data[:4]))
	assert.Contains(t, string(data[len(data)-32:]), "%%EOF")
}

func TestDeckRendererRequiresInputs(t *testing.T) {
	r := NewDeckRenderer()

	_, err := r.Render(DeckInput{})
	require.Error(t, err)

	_, err = r.Render(DeckInput{Priced: samplePriced()})
	require.Error(t, err)
}
