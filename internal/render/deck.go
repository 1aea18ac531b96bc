package render

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/noah-isme/campus-briefing/internal/models"
	appErrors "github.com/noah-isme/campus-briefing/pkg/errors"
)

// DeckInput bundles everything the ambassador briefing deck renders.
type DeckInput struct {
	Scenarios []models.Scenario
	Baseline  models.EnrollmentBaseline
	Priced    *models.PricedCatalog
	Tiers     []models.PackageTier
	QuickRef  []models.QuickReferenceBand
	Timeline  []models.TimelineStage
	CostBands []models.CostBand
}

// DeckRenderer builds the landscape briefing deck, one page per slide.
type DeckRenderer struct{}

// NewDeckRenderer constructs a DeckRenderer.
func NewDeckRenderer() *DeckRenderer {
	return &DeckRenderer{}
}

// Render produces the pdf bytes.
func (r *DeckRenderer) Render(input DeckInput) ([]byte, error) {
	if input.Priced == nil || len(input.Scenarios) == 0 {
		return nil, appErrors.Clone(appErrors.ErrRender, "deck requires scenarios and a priced catalog")
	}

	d := newDeckBuilder()
	d.overviewPage(input)
	d.scenarioPage(input)
	d.categoryPage(input.Priced)
	d.packagesPage(input.Tiers)
	d.quickReferencePage(input.QuickRef)
	d.deliveryPage(input.Timeline, input.CostBands)

	buf := &bytes.Buffer{}
	if err := d.pdf.Output(buf); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrRender.Code, "encode deck")
	}
	return buf.Bytes(), nil
}

type deckBuilder struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

func newDeckBuilder() *deckBuilder {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.SetAutoPageBreak(false, 10)
	return &deckBuilder{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
}

func (d *deckBuilder) banner(title, subtitle string, page, total int) {
	d.pdf.AddPage()
	d.pdf.SetFillColor(0x01, 0x41, 0x1C)
	d.pdf.Rect(0, 0, 297, 22, "F")

	d.pdf.SetXY(10, 4)
	d.pdf.SetTextColor(255, 255, 255)
	d.pdf.SetFont("Arial", "B", 17)
	d.pdf.CellFormat(220, 9, d.tr(title), "", 1, "L", false, 0, "")

	d.pdf.SetX(10)
	d.pdf.SetTextColor(0xC4, 0x9A, 0x2A)
	d.pdf.SetFont("Arial", "", 9)
	d.pdf.CellFormat(220, 6, d.tr(subtitle), "", 0, "L", false, 0, "")

	d.pdf.SetXY(240, 6)
	d.pdf.SetFont("Arial", "B", 9)
	d.pdf.CellFormat(47, 6, fmt.Sprintf("SLIDE %d OF %d", page, total), "", 0, "R", false, 0, "")

	d.footer()
	d.pdf.SetXY(10, 28)
}

func (d *deckBuilder) footer() {
	d.pdf.SetFillColor(0x01, 0x41, 0x1C)
	d.pdf.Rect(0, 200, 297, 10, "F")
	d.pdf.SetXY(10, 202)
	d.pdf.SetTextColor(0xC4, 0x9A, 0x2A)
	d.pdf.SetFont("Arial", "", 7)
	d.pdf.CellFormat(180, 5, d.tr("CONFIDENTIAL  |  Pakistan International School (English Section), Riyadh  |  Basis of Design v0.4"), "", 0, "L", false, 0, "")
	d.pdf.SetTextColor(255, 255, 255)
	d.pdf.CellFormat(97, 5, "Prepared for Ambassador / SMC Briefing", "", 0, "R", false, 0, "")
}

func (d *deckBuilder) sectionHeading(text string) {
	d.pdf.SetX(10)
	d.pdf.SetTextColor(0x1B, 0x5E, 0x20)
	d.pdf.SetFont("Arial", "B", 11)
	d.pdf.CellFormat(277, 7, d.tr(text), "", 1, "L", false, 0, "")
}

func (d *deckBuilder) tableHeader(widths []float64, headers []string) {
	d.pdf.SetFillColor(0x01, 0x41, 0x1C)
	d.pdf.SetTextColor(255, 255, 255)
	d.pdf.SetFont("Arial", "B", 8)
	d.pdf.SetX(10)
	for i, h := range headers {
		d.pdf.CellFormat(widths[i], 7, d.tr(h), "1", 0, "C", true, 0, "")
	}
	d.pdf.Ln(-1)
}

func (d *deckBuilder) tableRow(widths []float64, cells []string, bold, highlight bool) {
	if highlight {
		d.pdf.SetFillColor(0xFF, 0xF8, 0xE1)
		d.pdf.SetTextColor(0x1B, 0x5E, 0x20)
	} else {
		d.pdf.SetFillColor(0xE8, 0xF5, 0xE9)
		d.pdf.SetTextColor(0x42, 0x42, 0x42)
	}
	style := ""
	if bold {
		style = "B"
	}
	d.pdf.SetFont("Arial", style, 8)
	d.pdf.SetX(10)
	for i, c := range cells {
		align := "C"
		if i == 0 {
			align = "L"
		}
		d.pdf.CellFormat(widths[i], 6, d.tr(c), "1", 0, align, highlight, 0, "")
	}
	d.pdf.Ln(-1)
}

func (d *deckBuilder) kpiCard(x, y, w float64, label, value, sub string) {
	d.pdf.SetFillColor(0xF1, 0xF8, 0xE9)
	d.pdf.Rect(x, y, w, 30, "F")

	d.pdf.SetXY(x+3, y+3)
	d.pdf.SetTextColor(0x66, 0x66, 0x66)
	d.pdf.SetFont("Arial", "B", 8)
	d.pdf.CellFormat(w-6, 5, d.tr(label), "", 2, "L", false, 0, "")

	d.pdf.SetFont("Arial", "B", 16)
	d.pdf.SetTextColor(0x1B, 0x5E, 0x20)
	d.pdf.CellFormat(w-6, 10, d.tr(value), "", 2, "L", false, 0, "")

	d.pdf.SetFont("Arial", "", 8)
	d.pdf.SetTextColor(0x66, 0x66, 0x66)
	d.pdf.CellFormat(w-6, 5, d.tr(sub), "", 0, "L", false, 0, "")
}

func (d *deckBuilder) overviewPage(input DeckInput) {
	d.banner("PISES NEW CAMPUS  |  EXECUTIVE OVERVIEW",
		"7,000-Student Design Target  |  Mid-Institutional Baseline  |  2025 SAR", 1, 6)

	target := input.Scenarios[len(input.Scenarios)-1]

	d.kpiCard(10, 32, 66, "DESIGN TARGET", Comma(int64(target.TotalStudents)),
		fmt.Sprintf("students (current: %s)", Comma(int64(input.Baseline.TotalStudents()))))
	d.kpiCard(81, 32, 66, "TOTAL CLASSROOMS", Comma(int64(target.TotalClassrooms)), "incl. 8% operational buffer")
	d.kpiCard(152, 32, 66, "GROSS AREA (BUA)", Comma(int64(target.TotalGross))+" m²",
		fmt.Sprintf("net %s m² across all functions", Comma(int64(target.TotalNet))))
	d.kpiCard(223, 32, 64, "CONSTRUCTION COST", fmt.Sprintf("SAR %d-%dM", target.CostLowSARm, target.CostHighSARm),
		"excl. land & professional fees")

	d.pdf.SetXY(10, 70)
	d.sectionHeading(fmt.Sprintf("CURRENT ENROLLMENT SNAPSHOT  (Session %s, as of %s)", input.Baseline.Session, input.Baseline.AsOf))
	widths := []float64{45, 35, 30, 25, 25, 25, 30}
	d.tableHeader(widths, []string{"Segment", "Grades", "Students", "Boys", "Girls", "Sections", "Classrooms @25"})
	for _, seg := range input.Baseline.Segments {
		d.tableRow(widths, []string{
			seg.Label, seg.Grades, Comma(int64(seg.Students)),
			Comma(int64(seg.Boys)), Comma(int64(seg.Girls)),
			Comma(int64(seg.Sections)), Comma(int64(seg.Classrooms)),
		}, false, false)
	}

	d.pdf.Ln(4)
	d.sectionHeading("ALL-UNITS PRICING TOTAL")
	d.pdf.SetX(10)
	d.pdf.SetFont("Arial", "", 9)
	d.pdf.SetTextColor(0x42, 0x42, 0x42)
	d.pdf.CellFormat(277, 6, d.tr(fmt.Sprintf(
		"Sum of all %d priced facility units: %s / %s  |  Cost basis: SAR 250M ÷ 52,400 m² BUA",
		len(input.Priced.Units),
		Money("SAR", input.Priced.GrandTotalSAR),
		Money("USD", input.Priced.GrandTotalUSD),
	)), "", 1, "L", false, 0, "")
}

func (d *deckBuilder) scenarioPage(input DeckInput) {
	d.banner("CAPACITY SCENARIOS  |  NET-FIRST COMPUTATION TO BUA & COST",
		"Proportional scaling from actual enrollment to design targets", 2, 6)

	headers := []string{"PARAMETER", "UNIT"}
	for _, sc := range input.Scenarios {
		headers = append(headers, fmt.Sprintf("%s Students", Comma(int64(sc.TotalStudents))))
	}
	widths := make([]float64, 0, len(headers))
	widths = append(widths, 82, 25)
	scenarioWidth := 170.0 / float64(len(input.Scenarios))
	for range input.Scenarios {
		widths = append(widths, scenarioWidth)
	}

	d.tableHeader(widths, headers)

	rows := scenarioRows(input.Scenarios)
	for _, row := range rows {
		d.tableRow(widths, row.cells, row.bold, row.highlight)
	}
}

type deckRow struct {
	cells     []string
	bold      bool
	highlight bool
}

// scenarioRows flattens the scenario comparison into display rows.
func scenarioRows(scenarios []models.Scenario) []deckRow {
	pick := func(f func(models.Scenario) string) []string {
		out := make([]string, 0, len(scenarios))
		for _, sc := range scenarios {
			out = append(out, f(sc))
		}
		return out
	}
	row := func(label, unit string, bold, highlight bool, f func(models.Scenario) string) deckRow {
		return deckRow{cells: append([]string{label, unit}, pick(f)...), bold: bold, highlight: highlight}
	}

	return []deckRow{
		row("  Early Years (Nursery-KG)", "students", false, false, func(s models.Scenario) string { return Comma(int64(s.EarlyYears.Students)) }),
		row("  Primary (G1-G4)", "students", false, false, func(s models.Scenario) string { return Comma(int64(s.Primary.Students)) }),
		row("  Intermediate (G5-G9)", "students", false, false, func(s models.Scenario) string { return Comma(int64(s.Intermediate.Students)) }),
		row("  Secondary (G10-G12)", "students", false, false, func(s models.Scenario) string { return Comma(int64(s.Secondary.Students)) }),
		row("TOTAL CLASSROOMS (incl. buffer)", "rooms", true, true, func(s models.Scenario) string { return Comma(int64(s.TotalClassrooms)) }),
		row("Science + ICT Labs", "rooms", false, false, func(s models.Scenario) string { return Comma(int64(s.ScienceLabs + s.ICTLabs)) }),
		row("  Teaching Spaces NET", "m²", false, false, func(s models.Scenario) string { return Comma(int64(s.TeachingNet)) }),
		row("  Labs & Specialist NET", "m²", false, false, func(s models.Scenario) string { return Comma(int64(s.SpecialistNet)) }),
		row("  Support (SEN/Admin/Staff/IT)", "m²", false, false, func(s models.Scenario) string { return Comma(int64(s.SupportNet)) }),
		row("  Shared (Food/Sports/Audit)", "m²", false, false, func(s models.Scenario) string { return Comma(int64(s.SharedNet)) }),
		row("  TOTAL NET AREA", "m²", true, true, func(s models.Scenario) string { return Comma(int64(s.TotalNet)) }),
		row("  TOTAL GROSS / BUA", "m²", true, true, func(s models.Scenario) string { return Comma(int64(s.TotalGross)) }),
		row("SITE COVERAGE (3 floors)", "%", false, false, func(s models.Scenario) string { return fmt.Sprintf("%d%%", s.CoveragePct) }),
		row("EST. CONSTRUCTION COST", "SAR M", true, true, func(s models.Scenario) string { return fmt.Sprintf("%d-%dM", s.CostLowSARm, s.CostHighSARm) }),
	}
}

func (d *deckBuilder) categoryPage(priced *models.PricedCatalog) {
	d.banner("COST SUMMARY BY CATEGORY", "High-level overview for donor briefings", 3, 6)

	widths := []float64{12, 110, 25, 35, 40, 40, 15}
	d.tableHeader(widths, []string{"#", "Category", "Units", "NET m²", "Total (SAR)", "Total (USD)", "%"})

	for i, cat := range priced.Categories {
		d.tableRow(widths, []string{
			fmt.Sprintf("%d", i+1), cat.Name, Comma(int64(cat.UnitCount)),
			Comma(int64(cat.NetArea)), Comma(cat.TotalCostSAR), Comma(cat.TotalCostUSD),
			fmt.Sprintf("%.1f", cat.BudgetShare),
		}, false, false)
	}

	d.tableRow(widths, []string{
		"", "GRAND TOTAL", "",
		"", Comma(priced.GrandTotalSAR), Comma(priced.GrandTotalUSD), "100",
	}, true, true)
}

func (d *deckBuilder) packagesPage(tiers []models.PackageTier) {
	d.banner("DONOR PACKAGES  |  THREE GIVING TIERS",
		"Suggested giving levels with naming recognition", 4, 6)

	widths := []float64{70, 95, 40, 40, 32}
	for _, tier := range tiers {
		d.pdf.SetX(10)
		d.pdf.SetFillColor(0x38, 0x8E, 0x3C)
		d.pdf.SetTextColor(255, 255, 255)
		d.pdf.SetFont("Arial", "B", 10)
		d.pdf.CellFormat(277, 7, d.tr(fmt.Sprintf("%s  (%s)", tier.Name, tier.GivingRange)), "1", 1, "L", true, 0, "")

		for _, pkg := range tier.Packages {
			d.tableRow(widths, []string{
				pkg.Name, pkg.Description,
				Money("SAR", pkg.CostSAR), Money("USD", pkg.CostUSD),
				pkg.Impact,
			}, false, false)
		}
		d.pdf.Ln(2)
	}
}

func (d *deckBuilder) quickReferencePage(bands []models.QuickReferenceBand) {
	d.banner("WHAT YOUR GIFT CAN BUILD", "Donor quick reference by giving band", 5, 6)

	widths := []float64{120, 157}
	for _, band := range bands {
		d.pdf.SetX(10)
		d.pdf.SetFillColor(0x38, 0x8E, 0x3C)
		d.pdf.SetTextColor(255, 255, 255)
		d.pdf.SetFont("Arial", "B", 9)
		d.pdf.CellFormat(277, 6, d.tr(band.Label), "1", 1, "L", true, 0, "")

		for _, item := range band.Items {
			label := fmt.Sprintf("SAR %s / USD %s", Comma(item.CostSAR), Comma(item.CostUSD))
			if item.Note != "" {
				label += fmt.Sprintf(" (%s)", item.Note)
			}
			d.tableRow(widths, []string{item.Name, label}, false, false)
		}
	}
}

func (d *deckBuilder) deliveryPage(timeline []models.TimelineStage, bands []models.CostBand) {
	d.banner("IMPLEMENTATION TIMELINE & COST SCENARIOS",
		"Design-bid-build delivery  |  Specification levels excl. land & professional fees", 6, 6)

	d.sectionHeading("IMPLEMENTATION TIMELINE  |  DESIGN-BID-BUILD MODEL")
	tlWidths := []float64{90, 45, 45}
	d.tableHeader(tlWidths, []string{"Stage", "Duration", "Cumulative"})
	for i, stage := range timeline {
		last := i == len(timeline)-1
		d.tableRow(tlWidths, []string{stage.Stage, stage.Duration, stage.Cumulative}, last, last)
	}

	d.pdf.Ln(4)
	d.sectionHeading("COST SCENARIO COMPARISON")
	cbWidths := []float64{70, 110, 50, 47}
	d.tableHeader(cbWidths, []string{"Scenario", "Spec Level", "Est. Range (SAR)", "OPEX Profile"})
	for _, band := range bands {
		d.tableRow(cbWidths, []string{band.Scenario, band.SpecLevel, band.RangeSAR, band.OpexProfile}, band.Baseline, band.Baseline)
	}
}
