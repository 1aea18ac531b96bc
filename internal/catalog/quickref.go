package catalog

// QuickRefEntry selects catalog units for one quick-reference line. Multi-unit
// entries (e.g. dining hall + kitchen) sum their contributions.
type QuickRefEntry struct {
	Label         string
	Contributions []PackageContribution

	// ShowCatalogTotal appends a note with the catalog quantity and the
	// combined cost (the prayer rooms are always presented as a set of four).
	ShowCatalogTotal bool
}

// QuickRefBand is one giving band of the quick-reference sheet.
type QuickRefBand struct {
	Label   string
	Entries []QuickRefEntry
}

// QuickReference returns the donor-friendly selection of catalog units by
// giving band. Labels are donor-facing shorthand and may differ from the
// catalog unit names they reference.
func QuickReference() []QuickRefBand {
	return []QuickRefBand{
		{
			Label: "SAR 50,000 – 100,000",
			Entries: []QuickRefEntry{
				{Label: "SEN Assessment Room", Contributions: []PackageContribution{{Unit: "1:1 Assessment Room", Quantity: 1}}},
				{Label: "Counsellor Room", Contributions: []PackageContribution{{Unit: "Counsellor Room", Quantity: 1}}},
				{Label: "Breakout Room", Contributions: []PackageContribution{{Unit: "Breakout Room (Glass-walled)", Quantity: 1}}},
				{Label: "Medical Clinic", Contributions: []PackageContribution{{Unit: "Medical Clinic / Nurse Room", Quantity: 1}}},
			},
		},
		{
			Label: "SAR 100,000 – 300,000",
			Entries: []QuickRefEntry{
				{Label: "Nursery Bedroom", Contributions: []PackageContribution{{Unit: "Nursery Bedroom / Rest Room", Quantity: 1}}},
				{Label: "SEN Resource Room", Contributions: []PackageContribution{{Unit: "SEN Resource Room (Small Group)", Quantity: 1}}},
				{Label: "Primary Art Atelier", Contributions: []PackageContribution{{Unit: "Primary Art Atelier", Quantity: 1}}},
				{Label: "Standard Classroom", Contributions: []PackageContribution{{Unit: "Standard Classroom (Grades 1–12)", Quantity: 1}}},
			},
		},
		{
			Label: "SAR 300,000 – 500,000",
			Entries: []QuickRefEntry{
				{Label: "Nursery Activity Room", Contributions: []PackageContribution{{Unit: "Nursery Activity Room", Quantity: 1}}},
				{Label: "KG / Reception Classroom", Contributions: []PackageContribution{{Unit: "Kindergarten Classroom", Quantity: 1}}},
				{Label: "Primary Science Lab", Contributions: []PackageContribution{{Unit: "Primary Science Lab", Quantity: 1}}},
				{Label: "Primary Computer Lab", Contributions: []PackageContribution{{Unit: "Primary Computer / Language Lab", Quantity: 1}}},
			},
		},
		{
			Label: "SAR 500,000 – 1,000,000",
			Entries: []QuickRefEntry{
				{Label: "Secondary Science Lab", Contributions: []PackageContribution{{Unit: "Secondary Science Lab (Physics / Chemistry / Biology)", Quantity: 1}}},
				{Label: "Secondary Computer Lab", Contributions: []PackageContribution{{Unit: "Secondary Computer / Language Lab", Quantity: 1}}},
				{Label: "Music / Drama Room", Contributions: []PackageContribution{{Unit: "Music / Drama Room", Quantity: 1}}},
				{Label: "Art Studio", Contributions: []PackageContribution{{Unit: "Art Studio", Quantity: 1}}},
				{Label: "Early Years Learning Commons", Contributions: []PackageContribution{{Unit: "Early Years Learning Commons", Quantity: 1}}},
				{Label: "Maker / Robotics Lab", Contributions: []PackageContribution{{Unit: "Maker / Robotics Lab", Quantity: 1}}},
			},
		},
		{
			Label: "SAR 1,000,000 – 5,000,000",
			Entries: []QuickRefEntry{
				{
					Label:            "Prayer Room / Musalla",
					Contributions:    []PackageContribution{{Unit: "Prayer Room / Musalla", Quantity: 1}},
					ShowCatalogTotal: true,
				},
				{Label: "Classroom Block (10 rooms)", Contributions: []PackageContribution{{Unit: "Standard Classroom (Grades 1–12)", Quantity: 10}}},
				{Label: "Exam Hall (300 candidates)", Contributions: []PackageContribution{{Unit: "Exam Hall (300 candidates)", Quantity: 1}}},
			},
		},
		{
			Label: "SAR 5,000,000+",
			Entries: []QuickRefEntry{
				{Label: "Indoor Sports Hall", Contributions: []PackageContribution{{Unit: "Indoor Multi-Purpose Sports Hall", Quantity: 1}}},
				{
					Label: "Dining Hall + Kitchen",
					Contributions: []PackageContribution{
						{Unit: "Dining Hall (700-seat, multi-shift)", Quantity: 1},
						{Unit: "Commercial Kitchen & Prep Area", Quantity: 1},
					},
				},
				{Label: "Swimming Pool Complex", Contributions: []PackageContribution{{Unit: "25m Swimming Pool Complex", Quantity: 1}}},
				{Label: "Auditorium (300 seats)", Contributions: []PackageContribution{{Unit: "Auditorium (300 seats)", Quantity: 1}}},
				{Label: "Atrium / Learning Commons", Contributions: []PackageContribution{{Unit: "Atrium / Learning Commons", Quantity: 1}}},
			},
		},
	}
}
