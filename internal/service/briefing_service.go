package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-briefing/internal/catalog"
	"github.com/noah-isme/campus-briefing/internal/models"
	"github.com/noah-isme/campus-briefing/internal/render"
	"github.com/noah-isme/campus-briefing/pkg/config"
	appErrors "github.com/noah-isme/campus-briefing/pkg/errors"
	"github.com/noah-isme/campus-briefing/pkg/export"
)

type workbookRenderer interface {
	Render(input render.WorkbookInput) ([]byte, error)
}

type deckRenderer interface {
	Render(input render.DeckInput) ([]byte, error)
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type fileStorage interface {
	Save(filename string, data []byte) (string, error)
	Path(filename string) string
}

// BriefingResult describes one generation run: which files were produced and
// where they landed.
type BriefingResult struct {
	RunID       string
	GeneratedAt time.Time
	Files       []string
}

// BriefingService runs the full pipeline: scenarios, catalog pricing, donor
// packages, then the workbook, deck and CSV artifacts.
type BriefingService struct {
	output config.OutputConfig

	scenarios *ScenarioService
	pricing   *PricingService
	packages  *PackageService

	workbook workbookRenderer
	deck     deckRenderer
	csv      csvRenderer
	storage  fileStorage

	logger *zap.Logger
}

// NewBriefingService wires the pipeline together.
func NewBriefingService(
	output config.OutputConfig,
	scenarios *ScenarioService,
	pricing *PricingService,
	packages *PackageService,
	workbook workbookRenderer,
	deck deckRenderer,
	csv csvRenderer,
	storage fileStorage,
	logger *zap.Logger,
) *BriefingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BriefingService{
		output:    output,
		scenarios: scenarios,
		pricing:   pricing,
		packages:  packages,
		workbook:  workbook,
		deck:      deck,
		csv:       csv,
		storage:   storage,
		logger:    logger,
	}
}

// Generate computes the full briefing and writes every artifact. It fails on
// the first error; partially written files from an aborted run are left in
// place for inspection.
func (s *BriefingService) Generate(ctx context.Context) (*BriefingResult, error) {
	result := &BriefingResult{
		RunID:       uuid.New().String(),
		GeneratedAt: time.Now(),
	}
	log := s.logger.With(zap.String("run_id", result.RunID))

	scenarios, err := s.scenarios.ComputeAll()
	if err != nil {
		return nil, err
	}

	priced, err := s.pricing.Price(catalog.Units())
	if err != nil {
		return nil, err
	}

	tiers, err := s.packages.BuildTiers(priced, catalog.Packages())
	if err != nil {
		return nil, err
	}

	quickRef, err := s.packages.BuildQuickReference(priced, catalog.QuickReference())
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "generation cancelled")
	}

	artifacts := []struct {
		filename string
		render   func() ([]byte, error)
	}{
		{s.output.WorkbookName, func() ([]byte, error) {
			return s.workbook.Render(render.WorkbookInput{Priced: priced, Tiers: tiers, QuickRef: quickRef})
		}},
		{s.output.DeckName, func() ([]byte, error) {
			return s.deck.Render(render.DeckInput{
				Scenarios: scenarios,
				Baseline:  catalog.Enrollment(),
				Priced:    priced,
				Tiers:     tiers,
				QuickRef:  quickRef,
				Timeline:  catalog.Timeline(),
				CostBands: catalog.CostBands(),
			})
		}},
		{s.output.CSVPrefix + "_scenarios.csv", func() ([]byte, error) {
			return s.csv.Render(scenarioDataset(scenarios))
		}},
		{s.output.CSVPrefix + "_unit_pricing.csv", func() ([]byte, error) {
			return s.csv.Render(pricingDataset(priced))
		}},
	}

	for _, artifact := range artifacts {
		if err := ctx.Err(); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "generation cancelled")
		}

		data, err := artifact.render()
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrRender.Code,
				fmt.Sprintf("render %s", artifact.filename))
		}
		if _, err := s.storage.Save(artifact.filename, data); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code,
				fmt.Sprintf("save %s", artifact.filename))
		}

		result.Files = append(result.Files, s.storage.Path(artifact.filename))
		log.Info("artifact written",
			zap.String("file", artifact.filename),
			zap.Int("bytes", len(data)),
		)
	}

	log.Info("briefing generated",
		zap.Int("scenarios", len(scenarios)),
		zap.Int("priced_units", len(priced.Units)),
		zap.Int("files", len(result.Files)),
	)

	return result, nil
}

// scenarioDataset flattens the scenario comparison for CSV export.
func scenarioDataset(scenarios []models.Scenario) export.Dataset {
	headers := []string{
		"total_students",
		"early_years_students", "primary_students", "intermediate_students", "secondary_students",
		"early_years_classrooms", "primary_classrooms", "intermediate_classrooms", "secondary_classrooms",
		"total_classrooms", "science_labs", "ict_labs",
		"teaching_net_m2", "specialist_net_m2", "support_net_m2", "shared_net_m2",
		"total_net_m2", "total_gross_m2",
		"footprint_m2", "coverage_pct",
		"cost_low_sar_m", "cost_high_sar_m",
	}

	rows := make([][]string, 0, len(scenarios))
	for i := range scenarios {
		sc := &scenarios[i]
		rows = append(rows, []string{
			itoa(sc.TotalStudents),
			itoa(sc.EarlyYears.Students), itoa(sc.Primary.Students), itoa(sc.Intermediate.Students), itoa(sc.Secondary.Students),
			itoa(sc.EarlyYears.Classrooms), itoa(sc.Primary.Classrooms), itoa(sc.Intermediate.Classrooms), itoa(sc.Secondary.Classrooms),
			itoa(sc.TotalClassrooms), itoa(sc.ScienceLabs), itoa(sc.ICTLabs),
			itoa(sc.TeachingNet), itoa(sc.SpecialistNet), itoa(sc.SupportNet), itoa(sc.SharedNet),
			itoa(sc.TotalNet), itoa(sc.TotalGross),
			itoa(sc.Footprint), itoa(sc.CoveragePct),
			itoa(sc.CostLowSARm), itoa(sc.CostHighSARm),
		})
	}

	return export.Dataset{Headers: headers, Rows: rows}
}

// pricingDataset flattens the priced catalog for CSV export.
func pricingDataset(priced *models.PricedCatalog) export.Dataset {
	headers := []string{
		"index", "category", "unit", "quantity",
		"net_m2", "grossing", "gross_m2",
		"unit_cost_sar", "unit_cost_usd", "total_cost_sar", "total_cost_usd",
	}

	rows := make([][]string, 0, len(priced.Units))
	for _, unit := range priced.Units {
		rows = append(rows, []string{
			itoa(unit.Index), unit.Category, unit.Name, itoa(unit.Quantity),
			fmt.Sprintf("%.1f", unit.NetArea), string(unit.Grossing), fmt.Sprintf("%.1f", unit.GrossArea),
			i64toa(unit.UnitCostSAR), i64toa(unit.UnitCostUSD), i64toa(unit.TotalCostSAR), i64toa(unit.TotalCostUSD),
		})
	}

	return export.Dataset{Headers: headers, Rows: rows}
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

func i64toa(n int64) string {
	return strconv.FormatInt(n, 10)
}
