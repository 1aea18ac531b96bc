package catalog

import "github.com/noah-isme/campus-briefing/internal/models"

// Timeline returns the design-bid-build delivery stages for the deck.
func Timeline() []models.TimelineStage {
	return []models.TimelineStage{
		{Stage: "1. Basis of Design (BoD)", Duration: "2–3 months", Cumulative: "Month 3"},
		{Stage: "2. Concept Design", Duration: "3–4 months", Cumulative: "Month 7"},
		{Stage: "3. Schematic Design", Duration: "4–6 months", Cumulative: "Month 13"},
		{Stage: "4. Detailed Design / IFC", Duration: "4–5 months", Cumulative: "Month 18"},
		{Stage: "5. Tender & Contractor Award", Duration: "2–3 months", Cumulative: "Month 21"},
		{Stage: "6. Construction Phase", Duration: "18–22 months", Cumulative: "Month 43"},
		{Stage: "7. Handover & Commissioning", Duration: "2–3 months", Cumulative: "Month 46"},
		{Stage: "TOTAL PROJECT DURATION", Duration: "30–46 months", Cumulative: "~3–4 years"},
	}
}

// CostBands returns the specification-level cost comparison rows.
func CostBands() []models.CostBand {
	return []models.CostBand{
		{Scenario: "Code Minimum", SpecLevel: "VRF, reduced finish", RangeSAR: "205–220M", OpexProfile: "HIGH"},
		{
			Scenario: "Mid-Institutional (Adopted Baseline)", SpecLevel: "CHW HVAC, mid finish, full ICT, AV included",
			RangeSAR: "240–260M", OpexProfile: "BALANCED", Baseline: true,
		},
		{Scenario: "Enhanced Campus", SpecLevel: "Premium facade, BMS, advanced acoustics", RangeSAR: "270–295M", OpexProfile: "LOW"},
		{Scenario: "+ Contingency (7–10%)", SpecLevel: "—", RangeSAR: "+17–30M", OpexProfile: "—"},
	}
}
