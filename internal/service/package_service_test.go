package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-briefing/internal/catalog"
	"github.com/noah-isme/campus-briefing/internal/models"
	appErrors "github.com/noah-isme/campus-briefing/pkg/errors"
)

func pricedCatalog(t *testing.T) *models.PricedCatalog {
	t.Helper()
	pricing := NewPricingService(testEconomics(), zap.NewNop())
	priced, err := pricing.Price(catalog.Units())
	require.NoError(t, err)
	return priced
}

func TestPackageServiceBuildTiers(t *testing.T) {
	priced := pricedCatalog(t)
	svc := NewPackageService(testEconomics(), zap.NewNop())

	tiers, err := svc.BuildTiers(priced, catalog.Packages())
	require.NoError(t, err)
	require.Len(t, tiers, 3)

	assert.Equal(t, "INDIVIDUAL IMPACT GIFTS", tiers[0].Name)
	assert.Equal(t, "MAJOR GIFTS", tiers[1].Name)
	assert.Equal(t, "LANDMARK GIFTS", tiers[2].Name)

	// Single-unit packages price at exactly the catalog unit cost.
	classroom, ok := priced.Unit("Standard Classroom (Grades 1–12)")
	require.True(t, ok)
	nameAClassroom := tiers[0].Packages[0]
	assert.Equal(t, "Name a Classroom", nameAClassroom.Name)
	assert.Equal(t, classroom.UnitCostSAR, nameAClassroom.CostSAR)

	// The ten-room block is ten single rooms, unrounded.
	var block *models.DonorPackage
	for i := range tiers[1].Packages {
		if tiers[1].Packages[i].Name == "Classroom Block (10 rooms)" {
			block = &tiers[1].Packages[i]
		}
	}
	require.NotNil(t, block)
	assert.Equal(t, classroom.UnitCostSAR*10, block.CostSAR)
}

func TestPackageServiceCustomAggregates(t *testing.T) {
	priced := pricedCatalog(t)
	svc := NewPackageService(testEconomics(), zap.NewNop())

	tiers, err := svc.BuildTiers(priced, catalog.Packages())
	require.NoError(t, err)

	landmark := tiers[2]
	var examCentre models.DonorPackage
	for _, pkg := range landmark.Packages {
		if pkg.Name == "Exam Centre" {
			examCentre = pkg
		}
	}
	require.NotEmpty(t, examCentre.Name)

	hall, ok := priced.Unit("Exam Hall (300 candidates)")
	require.True(t, ok)
	holding, ok := priced.Unit("Candidate Holding Room")
	require.True(t, ok)
	breakout, ok := priced.Unit("Breakout Room (Glass-walled)")
	require.True(t, ok)

	want := hall.UnitCostSAR + 2*holding.UnitCostSAR + 2*breakout.UnitCostSAR
	assert.Equal(t, want, examCentre.CostSAR)
}

func TestPackageServiceUnknownUnitFailsFast(t *testing.T) {
	priced := pricedCatalog(t)
	svc := NewPackageService(testEconomics(), zap.NewNop())

	defs := []catalog.TierDef{{
		Name:        "BROKEN",
		GivingRange: "SAR 0",
		Packages: []catalog.PackageDef{{
			Name: "Ghost Wing",
			Contributions: []catalog.PackageContribution{
				{Unit: "Observatory Dome", Quantity: 1},
			},
		}},
	}}

	_, err := svc.BuildTiers(priced, defs)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrUnknownUnit.Code, appErr.Code)
	assert.Contains(t, appErr.Message, "Observatory Dome")
}

func TestPackageServiceRejectsNonPositiveQuantity(t *testing.T) {
	priced := pricedCatalog(t)
	svc := NewPackageService(testEconomics(), zap.NewNop())

	defs := []catalog.TierDef{{
		Name: "BROKEN",
		Packages: []catalog.PackageDef{{
			Name: "Nothing",
			Contributions: []catalog.PackageContribution{
				{Unit: "Standard Classroom (Grades 1–12)", Quantity: 0},
			},
		}},
	}}

	_, err := svc.BuildTiers(priced, defs)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestPackageServiceQuickReferenceRounding(t *testing.T) {
	priced := pricedCatalog(t)
	svc := NewPackageService(testEconomics(), zap.NewNop())

	bands, err := svc.BuildQuickReference(priced, catalog.QuickReference())
	require.NoError(t, err)
	require.Len(t, bands, 6)

	find := func(name string) models.QuickReferenceItem {
		for _, band := range bands {
			for _, item := range band.Items {
				if item.Name == name {
					return item
				}
			}
		}
		t.Fatalf("quick reference item %q not found", name)
		return models.QuickReferenceItem{}
	}

	// The flagship classroom at SAR 298,302 presents as a clean 298K / 79K.
	classroom := find("Standard Classroom")
	assert.Equal(t, int64(298_000), classroom.CostSAR)
	assert.Equal(t, int64(79_000), classroom.CostUSD)

	// The block is exactly ten times the rounded room price.
	block := find("Classroom Block (10 rooms)")
	assert.Equal(t, classroom.CostSAR*10, block.CostSAR)

	// Multi-unit combos sum rounded unit prices.
	dining := find("Dining Hall + Kitchen")
	hall, _ := priced.Unit("Dining Hall (700-seat, multi-shift)")
	kitchen, _ := priced.Unit("Commercial Kitchen & Prep Area")
	want := roundThousand(hall.UnitCostSAR) + roundThousand(kitchen.UnitCostSAR)
	assert.Equal(t, want, dining.CostSAR)

	// All amounts land on whole thousands.
	for _, band := range bands {
		for _, item := range band.Items {
			assert.Zero(t, item.CostSAR%1000, "%s SAR", item.Name)
			assert.Zero(t, item.CostUSD%1000, "%s USD", item.Name)
		}
	}
}

func TestPackageServiceQuickReferenceCatalogTotalNote(t *testing.T) {
	priced := pricedCatalog(t)
	svc := NewPackageService(testEconomics(), zap.NewNop())

	bands, err := svc.BuildQuickReference(priced, catalog.QuickReference())
	require.NoError(t, err)

	var prayer models.QuickReferenceItem
	for _, band := range bands {
		for _, item := range band.Items {
			if item.Name == "Prayer Room / Musalla" {
				prayer = item
			}
		}
	}
	require.NotEmpty(t, prayer.Name)
	assert.Contains(t, prayer.Note, "×4")
}
