// Package catalog holds the static space-program data for the new campus:
// the priceable facility-unit catalog, the current-enrollment baseline, the
// donor package definitions, and the display tables for the briefing deck.
// All figures come from the Basis of Design space program (2025 SAR baseline).
package catalog

import "github.com/noah-isme/campus-briefing/internal/models"

// Units returns the facility-unit catalog in briefing order. The order is
// part of the contract: category summaries and the workbook rows follow it.
func Units() []models.Category {
	return []models.Category{
		{
			Name: "CLASSROOMS & TEACHING SPACES",
			Units: []models.FacilityUnit{
				{
					Name:        "Standard Classroom (Grades 1–12)",
					Description: "Fully equipped classroom with smart board, furniture & AC for 25 students",
					Quantity:    249, NetArea: 43.12, Grossing: models.GrossingAcademic,
					Impact: "25 students per classroom",
				},
				{
					Name:        "Kindergarten Classroom",
					Description: "Purpose-built early-years classroom with play area, in-class washroom & learning corners",
					Quantity:    26, NetArea: 62.5, Grossing: models.GrossingAcademic,
					Impact: "25 children per classroom",
				},
				{
					Name:        "Nursery Activity Room",
					Description: "Safe, stimulating activity space for youngest learners with age-appropriate furniture",
					Quantity:    9, NetArea: 45.0, Grossing: models.GrossingAcademic,
					Impact: "20–25 children per room",
				},
				{
					Name:        "Nursery Bedroom / Rest Room",
					Description: "Dedicated rest area for nursery children with cots and soft furnishings",
					Quantity:    9, NetArea: 22.5, Grossing: models.GrossingAcademic,
					Impact: "20–25 children per room",
				},
				{
					Name:        "Reception Classroom",
					Description: "Transition classroom bridging nursery to KG with learning stations",
					Quantity:    20, NetArea: 62.5, Grossing: models.GrossingAcademic,
					Impact: "25 children per classroom",
				},
				{
					Name:        "Early Years Learning Commons",
					Description: "Shared indoor play and exploration zone for nursery & KG wings",
					Quantity:    3, NetArea: 120.0, Grossing: models.GrossingAcademic,
					Impact: "150–200 children per commons",
				},
				{
					Name:        "Primary Multi-Purpose Room",
					Description: "Flexible teaching space for group work, presentations & project-based learning",
					Quantity:    4, NetArea: 42.5, Grossing: models.GrossingAcademic,
					Impact: "25–50 students per session",
				},
			},
		},
		{
			Name: "SCIENCE LABORATORIES",
			Units: []models.FacilityUnit{
				{
					Name:        "Primary Science Lab",
					Description: "Introductory science lab with demonstration bench, sinks & safety equipment",
					Quantity:    13, NetArea: 60.1, Grossing: models.GrossingHighService,
					Impact: "25 students per lab session",
				},
				{
					Name:        "Intermediate Science Lab",
					Description: "General science lab with individual workstations, gas taps & fume extraction",
					Quantity:    7, NetArea: 62.96, Grossing: models.GrossingHighService,
					Impact: "25 students per lab session",
				},
				{
					Name:        "Secondary Science Lab (Physics / Chemistry / Biology)",
					Description: "Specialist lab with discipline-specific equipment, data-logging & safety systems",
					Quantity:    12, NetArea: 69.9, Grossing: models.GrossingHighService,
					Impact: "25 students per lab session",
				},
				{
					Name:        "Science Prep Room",
					Description: "Secure preparation and storage area serving a cluster of science labs",
					Quantity:    6, NetArea: 18.0, Grossing: models.GrossingHighService,
					Impact: "Supports 2–3 labs each",
				},
				{
					Name:        "Chemical Storage Room",
					Description: "Ventilated, fire-rated chemical store with bunding & safety shower",
					Quantity:    2, NetArea: 12.0, Grossing: models.GrossingHighService,
					Impact: "Supports all secondary labs",
				},
			},
		},
		{
			Name: "COMPUTER & ICT LABS",
			Units: []models.FacilityUnit{
				{
					Name:        "Primary Computer / Language Lab",
					Description: "Age-appropriate computing lab with tablets/PCs and language learning software",
					Quantity:    6, NetArea: 60.1, Grossing: models.GrossingHighService,
					Impact: "25 students per session",
				},
				{
					Name:        "Secondary Computer / Language Lab",
					Description: "Full ICT suite with desktop PCs, coding stations & language lab capability",
					Quantity:    10, NetArea: 69.9, Grossing: models.GrossingHighService,
					Impact: "25 students per session",
				},
			},
		},
		{
			Name: "SPECIALIST STUDIOS & MAKER SPACES",
			Units: []models.FacilityUnit{
				{
					Name:        "Maker / Robotics Lab",
					Description: "Innovation hub with 3D printers, robotics kits, electronics workbenches",
					Quantity:    2, NetArea: 120.0, Grossing: models.GrossingHighService,
					Impact: "25 students per session",
				},
				{
					Name:        "Art Studio",
					Description: "Creative space with easels, kiln access, wet & dry zones, natural lighting",
					Quantity:    2, NetArea: 90.0, Grossing: models.GrossingHighService,
					Impact: "25 students per session",
				},
				{
					Name:        "Primary Art Atelier",
					Description: "Hands-on art workshop for younger students with washable materials & display areas",
					Quantity:    4, NetArea: 41.9, Grossing: models.GrossingAcademic,
					Impact: "25 students per session",
				},
				{
					Name:        "Music / Drama Room",
					Description: "Acoustically treated performance & rehearsal space with instrument storage",
					Quantity:    2, NetArea: 80.0, Grossing: models.GrossingHighService,
					Impact: "30–40 students per session",
				},
			},
		},
		{
			Name: "LIBRARIES & LEARNING RESOURCE CENTRES",
			Units: []models.FacilityUnit{
				{
					Name:        "Primary Library / LRC",
					Description: "Welcoming reading space with age-graded book collections & storytelling area",
					Quantity:    2, NetArea: 75.1, Grossing: models.GrossingAcademic,
					Impact: "40–60 students at a time",
				},
				{
					Name:        "Intermediate LRC",
					Description: "Research-capable library with digital catalogue, reading nooks & group study",
					Quantity:    2, NetArea: 74.7, Grossing: models.GrossingAcademic,
					Impact: "40–60 students at a time",
				},
				{
					Name:        "Secondary LRC",
					Description: "Advanced learning resource centre with digital research stations & quiet study",
					Quantity:    2, NetArea: 88.6, Grossing: models.GrossingAcademic,
					Impact: "50–70 students at a time",
				},
			},
		},
		{
			Name: "SPORTS & PHYSICAL EDUCATION",
			Units: []models.FacilityUnit{
				{
					Name:        "Indoor Multi-Purpose Sports Hall",
					Description: "Full-size covered hall for basketball, volleyball, badminton, futsal & events",
					Quantity:    2, NetArea: 900.0, Grossing: models.GrossingHighService,
					Impact: "200+ students per day",
				},
				{
					Name:        "25m Swimming Pool Complex",
					Description: "6-lane pool with filtration plant, changing facilities, lifeguard station & spectator area",
					Quantity:    1, NetArea: 1717.0, Grossing: models.GrossingHighService,
					Impact: "300+ students per week",
				},
				{
					Name:        "Sports Changing & Shower Room",
					Description: "Modern changing facility with lockers, showers & accessible cubicles",
					Quantity:    4, NetArea: 160.0, Grossing: models.GrossingHighService,
					Impact: "30–40 users per session",
				},
				{
					Name:        "Sports Storage Room",
					Description: "Secure storage for PE equipment, balls, mats & sports gear",
					Quantity:    4, NetArea: 25.0, Grossing: models.GrossingHighService,
					Impact: "Supports all sports facilities",
				},
				{
					Name:        "Outdoor Multi-Sport Court",
					Description: "Hard court for basketball, volleyball or tennis with line markings & lighting",
					Quantity:    6, NetArea: 450.0, Grossing: models.GrossingHighService,
					Impact: "30–40 students per court",
				},
			},
		},
		{
			Name: "DINING & FOOD SERVICES",
			Units: []models.FacilityUnit{
				{
					Name:        "Dining Hall (700-seat, multi-shift)",
					Description: "Full-service dining hall with fixed seating, servery counter & acoustic treatment",
					Quantity:    2, NetArea: 1100.0, Grossing: models.GrossingHighService,
					Impact: "700 students per sitting",
				},
				{
					Name:        "Commercial Kitchen & Prep Area",
					Description: "Industrial kitchen with cooking stations, wash-up, cold rooms & dry stores",
					Quantity:    2, NetArea: 300.0, Grossing: models.GrossingHighService,
					Impact: "Serves 3,500 meals per day each",
				},
				{
					Name:        "Cold Room / Dry Store",
					Description: "Temperature-controlled food storage with shelving and inventory management",
					Quantity:    4, NetArea: 37.5, Grossing: models.GrossingOperations,
					Impact: "Supports kitchen operations",
				},
			},
		},
		{
			Name: "AUDITORIUM & ASSEMBLY SPACES",
			Units: []models.FacilityUnit{
				{
					Name:        "Auditorium (300 seats)",
					Description: "Tiered seating performance hall with stage, backstage, AV system & lighting rig",
					Quantity:    1, NetArea: 740.0, Grossing: models.GrossingHighService,
					Impact: "300-seat events, assemblies, graduations",
				},
				{
					Name:        "Atrium / Learning Commons",
					Description: "Grand central gathering space for exhibitions, fairs, assemblies & informal learning",
					Quantity:    1, NetArea: 2000.0, Grossing: models.GrossingHighService,
					Impact: "2,000+ students for whole-school events",
				},
				{
					Name:        "Seminar Room",
					Description: "Flexible meeting/teaching space for workshops, parent meetings & PD sessions",
					Quantity:    4, NetArea: 45.0, Grossing: models.GrossingAcademic,
					Impact: "20–30 attendees per room",
				},
				{
					Name:        "Breakout Room (Glass-walled)",
					Description: "Small collaborative space for group work, tutoring & student projects",
					Quantity:    8, NetArea: 25.0, Grossing: models.GrossingAcademic,
					Impact: "6–10 students per room",
				},
			},
		},
		{
			Name: "EXAM CENTRE",
			Units: []models.FacilityUnit{
				{
					Name:        "Exam Hall (300 candidates)",
					Description: "Dedicated examination hall with individual desks, invigilator stations & CCTV",
					Quantity:    1, NetArea: 750.0, Grossing: models.GrossingAcademic,
					Impact: "300 candidates per session",
				},
				{
					Name:        "Candidate Holding Room",
					Description: "Waiting area for students before exams with seating and bag storage",
					Quantity:    2, NetArea: 60.0, Grossing: models.GrossingAcademic,
					Impact: "150 students per room",
				},
			},
		},
		{
			Name: "SEN & STUDENT WELLBEING",
			Units: []models.FacilityUnit{
				{
					Name:        "SEN Resource Room (Small Group)",
					Description: "Specialist learning room for small-group interventions and differentiated support",
					Quantity:    10, NetArea: 25.0, Grossing: models.GrossingAcademic,
					Impact: "4–8 students per session",
				},
				{
					Name:        "1:1 Assessment Room",
					Description: "Private room for individual assessments, educational psychologist evaluations",
					Quantity:    8, NetArea: 12.0, Grossing: models.GrossingAcademic,
					Impact: "1 student at a time",
				},
				{
					Name:        "Speech & Language Therapy Room",
					Description: "Equipped therapy space for speech-language pathologists with AV tools",
					Quantity:    4, NetArea: 16.0, Grossing: models.GrossingAcademic,
					Impact: "1–3 students per session",
				},
				{
					Name:        "Occupational Therapy Room",
					Description: "Sensory-motor therapy space with specialist equipment and observation area",
					Quantity:    2, NetArea: 20.0, Grossing: models.GrossingAcademic,
					Impact: "1–3 students per session",
				},
				{
					Name:        "Sensory Room",
					Description: "Calming environment with sensory equipment for students with regulation needs",
					Quantity:    2, NetArea: 24.0, Grossing: models.GrossingAcademic,
					Impact: "1–4 students per session",
				},
				{
					Name:        "Counsellor Room",
					Description: "Private space for student counselling, pastoral care & parent consultations",
					Quantity:    4, NetArea: 12.0, Grossing: models.GrossingAcademic,
					Impact: "1–2 students per session",
				},
				{
					Name:        "Medical Clinic / Nurse Room",
					Description: "School clinic with examination bed, first-aid supplies & medication storage",
					Quantity:    2, NetArea: 20.0, Grossing: models.GrossingAcademic,
					Impact: "All students in wing",
				},
				{
					Name:        "Isolation / Rest Room (Medical)",
					Description: "Short-stay room for unwell students awaiting parent collection",
					Quantity:    2, NetArea: 10.0, Grossing: models.GrossingAcademic,
					Impact: "1 student at a time",
				},
			},
		},
		{
			Name: "STAFF & PROFESSIONAL DEVELOPMENT",
			Units: []models.FacilityUnit{
				{
					Name:        "Staff Workroom (Distributed)",
					Description: "Teacher planning & collaboration room with desks, printers & resources",
					Quantity:    12, NetArea: 45.0, Grossing: models.GrossingAcademic,
					Impact: "8–12 staff per workroom",
				},
				{
					Name:        "Staff Lounge",
					Description: "Comfortable break room for staff with kitchen, seating & relaxation area",
					Quantity:    2, NetArea: 90.0, Grossing: models.GrossingAcademic,
					Impact: "40–60 staff per lounge",
				},
				{
					Name:        "Teacher Training / PD Room",
					Description: "Professional development room with AV, flexible seating & workshop layout",
					Quantity:    2, NetArea: 45.0, Grossing: models.GrossingAcademic,
					Impact: "30–40 staff per session",
				},
			},
		},
		{
			Name: "ADMINISTRATION & GOVERNANCE",
			Units: []models.FacilityUnit{
				{
					Name:        "Reception & Welcome Desk",
					Description: "Visitor reception with waiting area, security check-in & information display",
					Quantity:    2, NetArea: 25.0, Grossing: models.GrossingAcademic,
					Impact: "Campus entrance",
				},
				{
					Name:        "Principal's Office",
					Description: "Executive office for school principal with meeting area",
					Quantity:    1, NetArea: 20.0, Grossing: models.GrossingAcademic,
					Impact: "School leadership",
				},
				{
					Name:        "Admissions Office",
					Description: "Parent-facing admissions suite for enrollment, interviews & documentation",
					Quantity:    2, NetArea: 18.0, Grossing: models.GrossingAcademic,
					Impact: "Handles 500+ applications/year",
				},
				{
					Name:        "Finance & Cashier Office",
					Description: "Secure finance office with fee collection counter and record keeping",
					Quantity:    2, NetArea: 40.0, Grossing: models.GrossingAcademic,
					Impact: "All financial operations",
				},
				{
					Name:        "Board / SMC Meeting Room",
					Description: "Formal boardroom for governance meetings with AV and conferencing",
					Quantity:    1, NetArea: 30.0, Grossing: models.GrossingAcademic,
					Impact: "12–20 board members",
				},
				{
					Name:        "School Store / Bookshop",
					Description: "Retail space for books, stationery & school supplies",
					Quantity:    1, NetArea: 80.0, Grossing: models.GrossingAcademic,
					Impact: "Serves all students",
				},
				{
					Name:        "Uniform Shop",
					Description: "Dedicated retail space for school uniform fittings and sales",
					Quantity:    1, NetArea: 60.0, Grossing: models.GrossingAcademic,
					Impact: "Serves all students",
				},
			},
		},
		{
			Name: "IT INFRASTRUCTURE & SECURITY",
			Units: []models.FacilityUnit{
				{
					Name:        "Server Room / MDF",
					Description: "Climate-controlled data centre with rack servers, UPS & network backbone",
					Quantity:    2, NetArea: 20.0, Grossing: models.GrossingOperations,
					Impact: "Entire campus IT",
				},
				{
					Name:        "Main Security Control Room (CCTV)",
					Description: "24/7 security monitoring centre with CCTV screens, access control & fire panel",
					Quantity:    1, NetArea: 20.0, Grossing: models.GrossingOperations,
					Impact: "Entire campus security",
				},
				{
					Name:        "IT Helpdesk Office",
					Description: "Technical support hub for staff and student IT issues",
					Quantity:    2, NetArea: 18.0, Grossing: models.GrossingOperations,
					Impact: "All campus users",
				},
			},
		},
		{
			Name: "TRANSPORT & LOGISTICS",
			Units: []models.FacilityUnit{
				{
					Name:        "Transport Office & Driver Lounge",
					Description: "Bus fleet management office with driver rest area, lockers & washrooms",
					Quantity:    1, NetArea: 43.0, Grossing: models.GrossingOperations,
					Impact: "70 buses, 2,400+ bus students",
				},
			},
		},
		{
			Name: "PRAYER & SPIRITUAL SPACES",
			Units: []models.FacilityUnit{
				{
					Name:        "Prayer Room / Musalla",
					Description: "Dedicated prayer space with ablution facilities, carpet & qibla marker",
					Quantity:    4, NetArea: 60.0, Grossing: models.GrossingAcademic,
					Impact: "100–150 worshippers per room",
				},
			},
		},
	}
}
