package models

// EnrollmentSegment is one row of the current-enrollment snapshot from which
// the scenario ratios were derived. Display data only; the scenario
// calculator works from the configured ratios, not from these rows.
type EnrollmentSegment struct {
	Segment    Segment
	Label      string
	Grades     string
	Students   int
	Boys       int
	Girls      int
	Sections   int
	Classrooms int // at the standard 25-student capacity
}

// EnrollmentBaseline is the real enrollment snapshot behind the scenario
// model's proportional ratios.
type EnrollmentBaseline struct {
	Session  string
	AsOf     string
	Segments []EnrollmentSegment
}

// TotalStudents sums the snapshot's segment counts.
func (b EnrollmentBaseline) TotalStudents() int {
	total := 0
	for _, seg := range b.Segments {
		total += seg.Students
	}
	return total
}
