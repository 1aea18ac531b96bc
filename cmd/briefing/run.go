package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/noah-isme/campus-briefing/internal/catalog"
	"github.com/noah-isme/campus-briefing/internal/models"
	"github.com/noah-isme/campus-briefing/internal/render"
	"github.com/noah-isme/campus-briefing/internal/service"
	"github.com/noah-isme/campus-briefing/pkg/config"
	"github.com/noah-isme/campus-briefing/pkg/export"
	"github.com/noah-isme/campus-briefing/pkg/logger"
	"github.com/noah-isme/campus-briefing/pkg/storage"
)

type app struct {
	cfg    *config.Config
	logger *zap.Logger

	scenarios *service.ScenarioService
	pricing   *service.PricingService
	packages  *service.PackageService
}

// boot loads configuration and wires the computation services. The rendering
// side is wired separately in runGenerate since only that command needs it.
func boot() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	return &app{
		cfg:       cfg,
		logger:    log,
		scenarios: service.NewScenarioService(cfg.Planning, cfg.Economics, log),
		pricing:   service.NewPricingService(cfg.Economics, log),
		packages:  service.NewPackageService(cfg.Economics, log),
	}, nil
}

func runScenario(students int) error {
	a, err := boot()
	if err != nil {
		return err
	}
	defer a.logger.Sync() //nolint:errcheck

	var scenarios []models.Scenario
	if students > 0 {
		scenario, err := a.scenarios.Compute(students)
		if err != nil {
			return err
		}
		scenarios = []models.Scenario{*scenario}
	} else {
		scenarios, err = a.scenarios.ComputeAll()
		if err != nil {
			return err
		}
	}

	printScenarios(scenarios)
	return nil
}

func runPricing() error {
	a, err := boot()
	if err != nil {
		return err
	}
	defer a.logger.Sync() //nolint:errcheck

	priced, err := a.pricing.Price(catalog.Units())
	if err != nil {
		return err
	}

	printPricing(priced)
	return nil
}

func runPackages() error {
	a, err := boot()
	if err != nil {
		return err
	}
	defer a.logger.Sync() //nolint:errcheck

	priced, err := a.pricing.Price(catalog.Units())
	if err != nil {
		return err
	}
	tiers, err := a.packages.BuildTiers(priced, catalog.Packages())
	if err != nil {
		return err
	}
	quickRef, err := a.packages.BuildQuickReference(priced, catalog.QuickReference())
	if err != nil {
		return err
	}

	printPackages(tiers, quickRef)
	return nil
}

func runGenerate(ctx context.Context, outDir string) error {
	a, err := boot()
	if err != nil {
		return err
	}
	defer a.logger.Sync() //nolint:errcheck

	if outDir == "" {
		outDir = a.cfg.Output.Dir
	}
	store, err := storage.NewLocalStorage(outDir)
	if err != nil {
		return err
	}

	briefing := service.NewBriefingService(
		a.cfg.Output,
		a.scenarios,
		a.pricing,
		a.packages,
		render.NewWorkbookRenderer(),
		render.NewDeckRenderer(),
		export.NewCSVExporter(),
		store,
		a.logger,
	)

	if ctx == nil {
		ctx = context.Background()
	}
	result, err := briefing.Generate(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Briefing generated (run %s)\n", result.RunID)
	for _, file := range result.Files {
		fmt.Printf("  %s\n", file)
	}
	return nil
}
