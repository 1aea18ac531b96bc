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

func TestPricingServicePricesFullCatalog(t *testing.T) {
	svc := NewPricingService(testEconomics(), zap.NewNop())

	priced, err := svc.Price(catalog.Units())
	require.NoError(t, err)
	require.NotEmpty(t, priced.Units)
	require.NotEmpty(t, priced.Categories)

	// The blended rate is SAR 250M over 52,400 m² BUA; the flagship classroom
	// at 43.12 net m² academic prices out to a fixed figure.
	unit, ok := priced.Unit("Standard Classroom (Grades 1–12)")
	require.True(t, ok)
	assert.Equal(t, int64(298302), unit.UnitCostSAR)
	assert.Equal(t, int64(79547), unit.UnitCostUSD)
	assert.Equal(t, 249, unit.Quantity)
	assert.Equal(t, int64(298302*249), unit.TotalCostSAR)
	assert.InDelta(t, 62.5, unit.GrossArea, 0.05)
}

func TestPricingServiceTotalsAreExactMultiples(t *testing.T) {
	svc := NewPricingService(testEconomics(), zap.NewNop())

	priced, err := svc.Price(catalog.Units())
	require.NoError(t, err)

	var grand int64
	for _, unit := range priced.Units {
		// The unit cost is rounded first; quantity multiplication never
		// reintroduces fractions.
		assert.Equal(t, unit.UnitCostSAR*int64(unit.Quantity), unit.TotalCostSAR, unit.Name)
		grand += unit.TotalCostSAR
	}
	assert.Equal(t, grand, priced.GrandTotalSAR)

	var catTotal int64
	for _, cat := range priced.Categories {
		catTotal += cat.TotalCostSAR
	}
	assert.Equal(t, priced.GrandTotalSAR, catTotal)
}

func TestPricingServiceCategoryOrderFollowsCatalog(t *testing.T) {
	svc := NewPricingService(testEconomics(), zap.NewNop())

	source := catalog.Units()
	priced, err := svc.Price(source)
	require.NoError(t, err)
	require.Len(t, priced.Categories, len(source))

	for i, cat := range priced.Categories {
		assert.Equal(t, source[i].Name, cat.Name)
	}

	for i, unit := range priced.Units {
		assert.Equal(t, i+1, unit.Index)
	}
}

func TestPricingServiceBudgetShares(t *testing.T) {
	svc := NewPricingService(testEconomics(), zap.NewNop())

	priced, err := svc.Price(catalog.Units())
	require.NoError(t, err)

	var shareSum float64
	for _, cat := range priced.Categories {
		assert.GreaterOrEqual(t, cat.BudgetShare, 0.0)
		shareSum += cat.BudgetShare
	}
	// Shares are rounded independently; the sum may drift from 100 by at most
	// half a point.
	assert.InDelta(t, 100.0, shareSum, 0.5)
}

func TestPricingServiceUSDConversion(t *testing.T) {
	svc := NewPricingService(testEconomics(), zap.NewNop())

	assert.Equal(t, int64(0), svc.USD(0))
	assert.Equal(t, int64(1000), svc.USD(3750))
	assert.Equal(t, int64(267), svc.USD(1000))
}

func TestPricingServiceRejectsInvalidUnits(t *testing.T) {
	svc := NewPricingService(testEconomics(), zap.NewNop())

	tests := []struct {
		name string
		unit models.FacilityUnit
	}{
		{"missing name", models.FacilityUnit{Quantity: 1, NetArea: 10, Grossing: models.GrossingAcademic}},
		{"zero quantity", models.FacilityUnit{Name: "x", Quantity: 0, NetArea: 10, Grossing: models.GrossingAcademic}},
		{"zero area", models.FacilityUnit{Name: "x", Quantity: 1, NetArea: 0, Grossing: models.GrossingAcademic}},
		{"bad grossing", models.FacilityUnit{Name: "x", Quantity: 1, NetArea: 10, Grossing: "penthouse"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Price([]models.Category{{Name: "Test", Units: []models.FacilityUnit{tt.unit}}})
			require.Error(t, err)
			appErr := appErrors.FromError(err)
			assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
		})
	}
}

func TestPricingServiceDeterministic(t *testing.T) {
	svc := NewPricingService(testEconomics(), zap.NewNop())

	first, err := svc.Price(catalog.Units())
	require.NoError(t, err)
	second, err := svc.Price(catalog.Units())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
