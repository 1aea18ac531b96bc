package models

// Segment identifies one of the four enrollment bands.
type Segment string

const (
	SegmentEarlyYears   Segment = "early_years"
	SegmentPrimary      Segment = "primary"
	SegmentIntermediate Segment = "intermediate"
	SegmentSecondary    Segment = "secondary"
)

// SegmentPlan holds the per-segment outcome of a capacity scenario.
type SegmentPlan struct {
	Segment    Segment
	Students   int
	Classrooms int
}

// Scenario is the output of the scenario calculator for one enrollment
// target. Areas are in m², rounded independently per line; downstream sums
// use the unrounded intermediates, so TotalNet is not necessarily the sum of
// the four rounded sub-areas.
type Scenario struct {
	TotalStudents int

	EarlyYears   SegmentPlan
	Primary      SegmentPlan
	Intermediate SegmentPlan
	Secondary    SegmentPlan

	TotalClassrooms int
	ScienceLabs     int
	ICTLabs         int

	TeachingNet   int
	SpecialistNet int // science + ICT labs
	SupportNet    int // SEN, admin, staff, IT/ops
	SharedNet     int // food, sports, auditorium/commons

	TotalNet   int
	TotalGross int

	Footprint   int
	CoveragePct int

	// Construction cost range in SAR millions.
	CostLowSARm  int
	CostHighSARm int
}

// Segments returns the four segment plans in band order.
func (s *Scenario) Segments() []SegmentPlan {
	return []SegmentPlan{s.EarlyYears, s.Primary, s.Intermediate, s.Secondary}
}
