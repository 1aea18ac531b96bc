package catalog

// PackageContribution is one (catalog unit, quantity) term of a package cost.
type PackageContribution struct {
	Unit     string
	Quantity int
}

// PackageDef defines one donor package before pricing. Contributions is an
// explicit lookup table: custom aggregates like the Early Years Wing are
// enumerated term by term, never inferred from names or catalog structure.
type PackageDef struct {
	Name          string
	Description   string
	Impact        string
	Contributions []PackageContribution
}

// TierDef is one giving tier with its package definitions.
type TierDef struct {
	Name        string
	GivingRange string
	Packages    []PackageDef
}

// Packages returns the three donor giving tiers.
func Packages() []TierDef {
	return []TierDef{
		{
			Name:        "INDIVIDUAL IMPACT GIFTS",
			GivingRange: "SAR 50K – 500K",
			Packages: []PackageDef{
				{
					Name:        "Name a Classroom",
					Description: "Sponsor one standard classroom with naming recognition",
					Impact:      "25 students",
					Contributions: []PackageContribution{
						{Unit: "Standard Classroom (Grades 1–12)", Quantity: 1},
					},
				},
				{
					Name:        "Equip a Science Lab",
					Description: "Fund one fully-equipped primary science lab",
					Impact:      "25 students",
					Contributions: []PackageContribution{
						{Unit: "Primary Science Lab", Quantity: 1},
					},
				},
				{
					Name:        "Build a Sensory Room",
					Description: "Provide a calming sensory room for SEN students",
					Impact:      "Students with regulation needs",
					Contributions: []PackageContribution{
						{Unit: "Sensory Room", Quantity: 1},
					},
				},
				{
					Name:        "Sponsor a Library Corner",
					Description: "Fund one primary library / LRC",
					Impact:      "40–60 students at a time",
					Contributions: []PackageContribution{
						{Unit: "Primary Library / LRC", Quantity: 1},
					},
				},
				{
					Name:        "Create an Art Atelier",
					Description: "Build one primary art workshop for budding artists",
					Impact:      "25 young artists/session",
					Contributions: []PackageContribution{
						{Unit: "Primary Art Atelier", Quantity: 1},
					},
				},
			},
		},
		{
			Name:        "MAJOR GIFTS",
			GivingRange: "SAR 500K – 5M",
			Packages: []PackageDef{
				{
					Name:        "Robotics Innovation Hub",
					Description: "Fund one maker/robotics lab for STEM education",
					Impact:      "STEM for 25 students/session",
					Contributions: []PackageContribution{
						{Unit: "Maker / Robotics Lab", Quantity: 1},
					},
				},
				{
					Name:        "Auditorium Naming",
					Description: "Sponsor the 300-seat auditorium for school events",
					Impact:      "300-seat events & graduations",
					Contributions: []PackageContribution{
						{Unit: "Auditorium (300 seats)", Quantity: 1},
					},
				},
				{
					Name:        "Sports Hall Sponsor",
					Description: "Fund one indoor sports hall for 200+ students/day",
					Impact:      "200+ students/day",
					Contributions: []PackageContribution{
						{Unit: "Indoor Multi-Purpose Sports Hall", Quantity: 1},
					},
				},
				{
					Name:        "Dining Experience",
					Description: "Sponsor one dining hall serving 700 students per sitting",
					Impact:      "700 students/sitting",
					Contributions: []PackageContribution{
						{Unit: "Dining Hall (700-seat, multi-shift)", Quantity: 1},
					},
				},
				{
					Name:        "Classroom Block (10 rooms)",
					Description: "Build a block of 10 classrooms for 250 students",
					Impact:      "250 students",
					Contributions: []PackageContribution{
						{Unit: "Standard Classroom (Grades 1–12)", Quantity: 10},
					},
				},
			},
		},
		{
			Name:        "LANDMARK GIFTS",
			GivingRange: "SAR 5M+",
			Packages: []PackageDef{
				{
					Name:        "Swimming Pool Complex",
					Description: "Fund the entire 25m pool with all support facilities",
					Impact:      "300+ students/week",
					Contributions: []PackageContribution{
						{Unit: "25m Swimming Pool Complex", Quantity: 1},
					},
				},
				{
					Name:        "Exam Centre",
					Description: "Sponsor the 300-candidate exam hall with holding rooms",
					Impact:      "300 candidates/session",
					Contributions: []PackageContribution{
						{Unit: "Exam Hall (300 candidates)", Quantity: 1},
						{Unit: "Candidate Holding Room", Quantity: 2},
						{Unit: "Breakout Room (Glass-walled)", Quantity: 2},
					},
				},
				{
					Name:        "Learning Commons & Atrium",
					Description: "Fund the grand 2,000 m² central gathering space",
					Impact:      "2,000+ for whole-school events",
					Contributions: []PackageContribution{
						{Unit: "Atrium / Learning Commons", Quantity: 1},
					},
				},
				{
					Name:        "Entire Early Years Wing",
					Description: "Build all nursery & KG classrooms (55 rooms)",
					Impact:      "800+ young learners",
					Contributions: []PackageContribution{
						{Unit: "Nursery Activity Room", Quantity: 9},
						{Unit: "Nursery Bedroom / Rest Room", Quantity: 9},
						{Unit: "Reception Classroom", Quantity: 20},
						{Unit: "Kindergarten Classroom", Quantity: 26},
						{Unit: "Early Years Learning Commons", Quantity: 3},
					},
				},
				{
					Name:        "Complete SEN Suite",
					Description: "Fund the entire SEN & wellbeing department (34 rooms)",
					Impact:      "500+ students with special needs",
					Contributions: []PackageContribution{
						{Unit: "SEN Resource Room (Small Group)", Quantity: 10},
						{Unit: "1:1 Assessment Room", Quantity: 8},
						{Unit: "Speech & Language Therapy Room", Quantity: 4},
						{Unit: "Occupational Therapy Room", Quantity: 2},
						{Unit: "Sensory Room", Quantity: 2},
						{Unit: "Counsellor Room", Quantity: 4},
						{Unit: "Medical Clinic / Nurse Room", Quantity: 2},
						{Unit: "Isolation / Rest Room (Medical)", Quantity: 2},
					},
				},
			},
		},
	}
}
