package catalog

import "github.com/noah-isme/campus-briefing/internal/models"

// Enrollment returns the current-enrollment snapshot the scenario ratios were
// derived from (5,263 students across 281 sections, morning + afternoon
// shifts).
func Enrollment() models.EnrollmentBaseline {
	return models.EnrollmentBaseline{
		Session: "2024-25",
		AsOf:    "31 March 2025",
		Segments: []models.EnrollmentSegment{
			{
				Segment: models.SegmentEarlyYears, Label: "Early Years", Grades: "Nursery–KG",
				Students: 801, Boys: 415, Girls: 386, Sections: 55, Classrooms: 33,
			},
			{
				Segment: models.SegmentPrimary, Label: "Primary", Grades: "G1–G4",
				Students: 1639, Boys: 839, Girls: 800, Sections: 82, Classrooms: 66,
			},
			{
				Segment: models.SegmentIntermediate, Label: "Intermediate", Grades: "G5–G9",
				Students: 2051, Boys: 1042, Girls: 1009, Sections: 104, Classrooms: 83,
			},
			{
				Segment: models.SegmentSecondary, Label: "Secondary", Grades: "G10–G12",
				Students: 772, Boys: 394, Girls: 378, Sections: 40, Classrooms: 31,
			},
		},
	}
}
