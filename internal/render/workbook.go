// Package render lays the computed briefing tables out into the shareable
// artifacts: the donor pricing workbook and the ambassador deck. It consumes
// the pricing and scenario outputs read-only; nothing in here feeds back into
// the computation model.
package render

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/noah-isme/campus-briefing/internal/models"
	appErrors "github.com/noah-isme/campus-briefing/pkg/errors"
)

// Palette shared by the workbook sheets.
const (
	colorDarkGreen   = "1B5E20"
	colorMedGreen    = "388E3C"
	colorLightGreen  = "E8F5E9"
	colorAccentGreen = "C8E6C9"
	colorGold        = "F9A825"
	colorDarkGray    = "333333"
	colorMedGray     = "666666"
	colorLightGray   = "F5F5F5"
	colorBlue        = "1565C0"
	colorWhite       = "FFFFFF"
)

// WorkbookInput bundles everything the donor pricing workbook renders.
type WorkbookInput struct {
	Priced   *models.PricedCatalog
	Tiers    []models.PackageTier
	QuickRef []models.QuickReferenceBand
}

// WorkbookRenderer builds the four-sheet donor pricing workbook.
type WorkbookRenderer struct{}

// NewWorkbookRenderer constructs a WorkbookRenderer.
func NewWorkbookRenderer() *WorkbookRenderer {
	return &WorkbookRenderer{}
}

// Render produces the xlsx bytes.
func (r *WorkbookRenderer) Render(input WorkbookInput) ([]byte, error) {
	if input.Priced == nil {
		return nil, appErrors.Clone(appErrors.ErrRender, "workbook requires a priced catalog")
	}

	b := newWorkbookBuilder()
	b.unitPricingSheet(input.Priced)
	b.packagesSheet(input.Tiers)
	b.categorySummarySheet(input.Priced)
	b.quickReferenceSheet(input.QuickRef)
	if b.err != nil {
		return nil, appErrors.Wrap(b.err, appErrors.ErrRender.Code, "build workbook")
	}

	buf, err := b.f.WriteToBuffer()
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrRender.Code, "encode workbook")
	}
	return buf.Bytes(), nil
}

// workbookBuilder wraps excelize with first-error capture so sheet layout
// code reads linearly.
type workbookBuilder struct {
	f   *excelize.File
	err error

	titleStyle    int
	subtitleStyle int
	noteStyle     int
	headerStyle   int
	categoryStyle int
	dataStyle     int
	moneyStyle    int
	areaStyle     int
	totalStyle    int
	tierStyle     int
	subHeadStyle  int
	bandStyle     int
	priceStyle    int
}

func newWorkbookBuilder() *workbookBuilder {
	b := &workbookBuilder{f: excelize.NewFile()}
	b.initStyles()
	return b
}

func (b *workbookBuilder) initStyles() {
	b.titleStyle = b.style(&excelize.Style{
		Font: &excelize.Font{Family: "Calibri", Bold: true, Size: 22, Color: colorDarkGreen},
	})
	b.subtitleStyle = b.style(&excelize.Style{
		Font: &excelize.Font{Family: "Calibri", Size: 14, Color: colorMedGray},
	})
	b.noteStyle = b.style(&excelize.Style{
		Font: &excelize.Font{Family: "Calibri", Size: 9, Italic: true, Color: colorMedGray},
	})
	b.headerStyle = b.style(&excelize.Style{
		Font:      &excelize.Font{Family: "Calibri", Bold: true, Size: 11, Color: colorWhite},
		Fill:      solidFill(colorDarkGreen),
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	})
	b.categoryStyle = b.style(&excelize.Style{
		Font:      &excelize.Font{Family: "Calibri", Bold: true, Size: 11, Color: colorDarkGreen},
		Fill:      solidFill(colorLightGreen),
		Alignment: &excelize.Alignment{Vertical: "center"},
	})
	b.dataStyle = b.style(&excelize.Style{
		Font:      &excelize.Font{Family: "Calibri", Size: 10, Color: colorDarkGray},
		Alignment: &excelize.Alignment{Vertical: "center", WrapText: true},
	})
	b.moneyStyle = b.style(&excelize.Style{
		Font:         &excelize.Font{Family: "Calibri", Size: 10, Color: colorDarkGray},
		Alignment:    &excelize.Alignment{Horizontal: "right", Vertical: "center"},
		CustomNumFmt: strPtr("#,##0"),
	})
	b.areaStyle = b.style(&excelize.Style{
		Font:         &excelize.Font{Family: "Calibri", Size: 10, Color: colorDarkGray},
		Alignment:    &excelize.Alignment{Horizontal: "right", Vertical: "center"},
		CustomNumFmt: strPtr("#,##0.0"),
	})
	b.totalStyle = b.style(&excelize.Style{
		Font:         &excelize.Font{Family: "Calibri", Bold: true, Size: 12, Color: colorWhite},
		Fill:         solidFill(colorDarkGreen),
		Alignment:    &excelize.Alignment{Horizontal: "right", Vertical: "center"},
		CustomNumFmt: strPtr("#,##0"),
	})
	b.tierStyle = b.style(&excelize.Style{
		Font:      &excelize.Font{Family: "Calibri", Bold: true, Size: 13, Color: colorWhite},
		Fill:      solidFill(colorMedGreen),
		Alignment: &excelize.Alignment{Vertical: "center"},
	})
	b.subHeadStyle = b.style(&excelize.Style{
		Font:      &excelize.Font{Family: "Calibri", Bold: true, Size: 10, Color: colorDarkGreen},
		Fill:      solidFill(colorAccentGreen),
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	})
	b.bandStyle = b.style(&excelize.Style{
		Font:      &excelize.Font{Family: "Calibri", Bold: true, Size: 12, Color: colorWhite},
		Fill:      solidFill(colorMedGreen),
		Alignment: &excelize.Alignment{Vertical: "center"},
	})
	b.priceStyle = b.style(&excelize.Style{
		Font:      &excelize.Font{Family: "Calibri", Bold: true, Size: 11, Color: colorDarkGreen},
		Alignment: &excelize.Alignment{Horizontal: "right", Vertical: "center"},
	})
}

func (b *workbookBuilder) unitPricingSheet(priced *models.PricedCatalog) {
	const sheet = "Unit Pricing"
	b.do(func() error { return b.f.SetSheetName(b.f.GetSheetName(0), sheet) })

	widths := []float64{4, 42, 58, 8, 10, 12, 18, 18, 14, 14, 22}
	b.colWidths(sheet, widths)

	b.titleBlock(sheet, "K",
		"PISES NEW CAMPUS — UNIT-BASED DONOR PRICING",
		"Pakistan International School (English Section), Riyadh  |  7,000-Student Campus  |  SAR 250 Million Project  |  Prices in 2025 SAR",
		"1 USD = 3.75 SAR  |  Prices include construction, MEP, fit-out, ICT & furniture  |  Excluding land, professional fees & inflation")

	headers := []string{
		"#", "Unit Name", "Description", "Qty",
		"NET m²", "BUA m²", "Cost / Unit (SAR)", "Cost / Unit (USD)",
		"Total (SAR)", "Total (USD)", "Students Impacted",
	}
	b.headerRow(sheet, 5, headers, b.headerStyle)

	row := 6
	currentCategory := ""
	for _, unit := range priced.Units {
		if unit.Category != currentCategory {
			currentCategory = unit.Category
			b.mergedRow(sheet, row, 11, unit.Category, b.categoryStyle)
			row++
		}

		b.setRow(sheet, row, []interface{}{
			unit.Index, unit.Name, unit.Description, unit.Quantity,
			unit.NetArea, unit.GrossArea,
			unit.UnitCostSAR, unit.UnitCostUSD,
			unit.TotalCostSAR, unit.TotalCostUSD,
			unit.Impact,
		})
		b.cellStyleRange(sheet, row, 1, 4, b.dataStyle)
		b.cellStyleRange(sheet, row, 5, 6, b.areaStyle)
		b.cellStyleRange(sheet, row, 7, 10, b.moneyStyle)
		b.cellStyleRange(sheet, row, 11, 11, b.dataStyle)
		row++
	}

	row++
	b.mergedCells(sheet, row, 1, 8, "GRAND TOTAL (All Units)", b.totalStyle)
	b.setCell(sheet, cell(9, row), priced.GrandTotalSAR)
	b.setCell(sheet, cell(10, row), priced.GrandTotalUSD)
	b.cellStyleRange(sheet, row, 9, 11, b.totalStyle)

	row += 2
	notes := []string{
		"NOTES:",
		"1. All prices are planning-level estimates based on mid-institutional specification (2025 SAR baseline).",
		"2. Prices include: construction, structural, MEP, interior fit-out, ICT infrastructure, furniture & equipment.",
		"3. Prices EXCLUDE: land cost, architectural/engineering professional fees, financing costs, inflation beyond 2025.",
		"4. Naming rights and recognition plaques available for donors of individual units.",
		"5. Donor contributions are cumulative — multiple donors may co-sponsor larger facilities.",
		"6. All facilities comply with Saudi Building Code 2024 and TBC Category A standards.",
		"7. Grand total reflects sum of all individual units. Full campus cost: SAR 240–260 Million (mid-range: SAR 250M).",
	}
	for _, note := range notes {
		b.setCell(sheet, cell(2, row), note)
		b.cellStyleRange(sheet, row, 2, 2, b.noteStyle)
		row++
	}

	b.freeze(sheet, "A6", 5)
}

func (b *workbookBuilder) packagesSheet(tiers []models.PackageTier) {
	const sheet = "Donor Packages"
	b.do(func() error { _, err := b.f.NewSheet(sheet); return err })

	b.colWidths(sheet, []float64{4, 35, 55, 20, 20, 22})
	b.titleBlock(sheet, "F",
		"PISES NEW CAMPUS — DONOR PACKAGES",
		"Suggested giving levels with naming recognition  |  All amounts in SAR & USD",
		"")

	row := 4
	for _, tier := range tiers {
		b.mergedRow(sheet, row, 6, fmt.Sprintf("%s  (%s)", tier.Name, tier.GivingRange), b.tierStyle)
		row++

		b.headerRow(sheet, row, []string{"#", "Package Name", "What You Fund", "Amount (SAR)", "Amount (USD)", "Impact"}, b.subHeadStyle)
		row++

		for i, pkg := range tier.Packages {
			b.setRow(sheet, row, []interface{}{
				i + 1, pkg.Name, pkg.Description, pkg.CostSAR, pkg.CostUSD, pkg.Impact,
			})
			b.cellStyleRange(sheet, row, 1, 3, b.dataStyle)
			b.cellStyleRange(sheet, row, 4, 5, b.moneyStyle)
			b.cellStyleRange(sheet, row, 6, 6, b.dataStyle)
			row++
		}

		row++
	}

	b.freeze(sheet, "A4", 3)
}

func (b *workbookBuilder) categorySummarySheet(priced *models.PricedCatalog) {
	const sheet = "Category Summary"
	b.do(func() error { _, err := b.f.NewSheet(sheet); return err })

	blueHeader := b.style(&excelize.Style{
		Font:      &excelize.Font{Family: "Calibri", Bold: true, Size: 11, Color: colorWhite},
		Fill:      solidFill(colorBlue),
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	})
	blueTotal := b.style(&excelize.Style{
		Font:         &excelize.Font{Family: "Calibri", Bold: true, Size: 11, Color: colorWhite},
		Fill:         solidFill(colorBlue),
		Alignment:    &excelize.Alignment{Horizontal: "right", Vertical: "center"},
		CustomNumFmt: strPtr("#,##0"),
	})

	b.colWidths(sheet, []float64{4, 40, 10, 16, 20, 20, 12})
	b.titleBlock(sheet, "G",
		"PISES NEW CAMPUS — COST SUMMARY BY CATEGORY",
		"High-level overview for donor briefings  |  7,000-Student Campus",
		"")

	b.headerRow(sheet, 4, []string{"#", "Category", "Units", "Total NET m²", "Total Cost (SAR)", "Total Cost (USD)", "% of Budget"}, blueHeader)

	row := 5
	totalUnits := 0
	totalNet := 0.0
	for i, cat := range priced.Categories {
		b.setRow(sheet, row, []interface{}{
			i + 1, cat.Name, cat.UnitCount, cat.NetArea,
			cat.TotalCostSAR, cat.TotalCostUSD, cat.BudgetShare,
		})
		b.cellStyleRange(sheet, row, 1, 3, b.dataStyle)
		b.cellStyleRange(sheet, row, 4, 6, b.moneyStyle)
		b.cellStyleRange(sheet, row, 7, 7, b.dataStyle)
		totalUnits += cat.UnitCount
		totalNet += cat.NetArea
		row++
	}

	row++
	b.mergedCells(sheet, row, 1, 2, "GRAND TOTAL", blueTotal)
	b.setRow4(sheet, row, totalUnits, totalNet, priced.GrandTotalSAR, priced.GrandTotalUSD)
	b.cellStyleRange(sheet, row, 3, 7, blueTotal)
	b.setCell(sheet, cell(7, row), "100%")

	b.freeze(sheet, "A5", 4)
}

func (b *workbookBuilder) quickReferenceSheet(bands []models.QuickReferenceBand) {
	const sheet = "Quick Reference"
	b.do(func() error { _, err := b.f.NewSheet(sheet); return err })

	b.colWidths(sheet, []float64{4, 38, 18, 18})
	b.titleBlock(sheet, "D",
		"WHAT YOUR GIFT CAN BUILD",
		"PISES New Campus  |  Every contribution builds a future",
		"")

	row := 4
	for _, band := range bands {
		b.mergedCells(sheet, row, 2, 4, band.Label, b.bandStyle)
		row++

		for _, item := range band.Items {
			label := fmt.Sprintf("SAR %s / USD %s", Comma(item.CostSAR), Comma(item.CostUSD))
			if item.Note != "" {
				label += fmt.Sprintf(" (%s)", item.Note)
			}
			b.setCell(sheet, cell(2, row), item.Name)
			b.cellStyleRange(sheet, row, 2, 2, b.dataStyle)
			b.mergedCells(sheet, row, 3, 4, label, b.priceStyle)
			row++
		}

		row++
	}

	b.freeze(sheet, "A4", 3)
}

func (b *workbookBuilder) do(fn func() error) {
	if b.err != nil {
		return
	}
	b.err = fn()
}

func (b *workbookBuilder) style(s *excelize.Style) int {
	if b.err != nil {
		return 0
	}
	id, err := b.f.NewStyle(s)
	if err != nil {
		b.err = err
	}
	return id
}

func (b *workbookBuilder) setCell(sheet, ref string, value interface{}) {
	b.do(func() error { return b.f.SetCellValue(sheet, ref, value) })
}

func (b *workbookBuilder) setRow(sheet string, row int, values []interface{}) {
	ref := cell(1, row)
	b.do(func() error { return b.f.SetSheetRow(sheet, ref, &values) })
}

func (b *workbookBuilder) setRow4(sheet string, row, units int, net float64, sar, usd int64) {
	b.setCell(sheet, cell(3, row), units)
	b.setCell(sheet, cell(4, row), net)
	b.setCell(sheet, cell(5, row), sar)
	b.setCell(sheet, cell(6, row), usd)
}

func (b *workbookBuilder) headerRow(sheet string, row int, headers []string, styleID int) {
	values := make([]interface{}, len(headers))
	for i, h := range headers {
		values[i] = h
	}
	b.setRow(sheet, row, values)
	b.cellStyleRange(sheet, row, 1, len(headers), styleID)
}

func (b *workbookBuilder) mergedRow(sheet string, row, span int, value string, styleID int) {
	b.mergedCells(sheet, row, 1, span, value, styleID)
}

func (b *workbookBuilder) mergedCells(sheet string, row, from, to int, value string, styleID int) {
	b.do(func() error { return b.f.MergeCell(sheet, cell(from, row), cell(to, row)) })
	b.setCell(sheet, cell(from, row), value)
	b.cellStyleRange(sheet, row, from, to, styleID)
}

func (b *workbookBuilder) cellStyleRange(sheet string, row, from, to int, styleID int) {
	b.do(func() error { return b.f.SetCellStyle(sheet, cell(from, row), cell(to, row), styleID) })
}

func (b *workbookBuilder) colWidths(sheet string, widths []float64) {
	for i, w := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		width := w
		b.do(func() error { return b.f.SetColWidth(sheet, col, col, width) })
	}
}

func (b *workbookBuilder) titleBlock(sheet, lastCol, title, subtitle, note string) {
	b.do(func() error { return b.f.MergeCell(sheet, "B1", lastCol+"1") })
	b.setCell(sheet, "B1", title)
	b.cellStyleRange(sheet, 1, 2, 2, b.titleStyle)
	b.do(func() error { return b.f.SetRowHeight(sheet, 1, 40) })

	if subtitle != "" {
		b.do(func() error { return b.f.MergeCell(sheet, "B2", lastCol+"2") })
		b.setCell(sheet, "B2", subtitle)
		b.cellStyleRange(sheet, 2, 2, 2, b.subtitleStyle)
		b.do(func() error { return b.f.SetRowHeight(sheet, 2, 25) })
	}
	if note != "" {
		b.do(func() error { return b.f.MergeCell(sheet, "B3", lastCol+"3") })
		b.setCell(sheet, "B3", note)
		b.cellStyleRange(sheet, 3, 2, 2, b.noteStyle)
	}
}

func (b *workbookBuilder) freeze(sheet, topLeft string, ySplit int) {
	b.do(func() error {
		return b.f.SetPanes(sheet, &excelize.Panes{
			Freeze:      true,
			YSplit:      ySplit,
			TopLeftCell: topLeft,
			ActivePane:  "bottomLeft",
		})
	})
}

func cell(col, row int) string {
	ref, _ := excelize.CoordinatesToCellName(col, row)
	return ref
}

func solidFill(color string) excelize.Fill {
	return excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}}
}

func strPtr(s string) *string {
	return &s
}
