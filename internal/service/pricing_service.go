package service

import (
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-briefing/internal/models"
	"github.com/noah-isme/campus-briefing/pkg/config"
	appErrors "github.com/noah-isme/campus-briefing/pkg/errors"
)

// PricingService derives construction costs for the facility-unit catalog
// from the project's blended cost per gross m².
type PricingService struct {
	economics config.EconomicsConfig
	validate  *validator.Validate
	logger    *zap.Logger
}

// NewPricingService constructs a PricingService.
func NewPricingService(economics config.EconomicsConfig, logger *zap.Logger) *PricingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PricingService{
		economics: economics,
		validate:  validator.New(),
		logger:    logger,
	}
}

// Price computes per-unit and aggregate costs for the catalog in its given
// order. Unit costs are rounded before multiplying by quantity, so every
// total is an exact multiple of its listed unit cost and the grand total is
// reproducible from the printed rows.
func (s *PricingService) Price(categories []models.Category) (*models.PricedCatalog, error) {
	costPerBUA := s.economics.CostPerBUA()
	if costPerBUA <= 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "cost per gross m² must be positive")
	}
	if s.economics.SARPerUSD <= 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "currency rate must be positive")
	}

	result := &models.PricedCatalog{
		Units:      make([]models.PricedUnit, 0, 64),
		Categories: make([]models.CategorySummary, 0, len(categories)),
	}

	index := 0
	for _, category := range categories {
		summary := models.CategorySummary{Name: category.Name}

		for _, unit := range category.Units {
			if err := s.validate.Struct(unit); err != nil {
				return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code,
					fmt.Sprintf("invalid catalog unit %q", unit.Name))
			}

			factor, err := s.factor(unit.Grossing)
			if err != nil {
				return nil, err
			}

			gross := unit.NetArea * factor
			unitCost := int64(math.Round(gross * costPerBUA))
			totalCost := unitCost * int64(unit.Quantity)

			index++
			result.Units = append(result.Units, models.PricedUnit{
				Index:        index,
				Category:     category.Name,
				FacilityUnit: unit,
				GrossArea:    math.Round(gross*10) / 10,
				UnitCostSAR:  unitCost,
				UnitCostUSD:  s.USD(unitCost),
				TotalCostSAR: totalCost,
				TotalCostUSD: s.USD(totalCost),
			})

			summary.UnitCount += unit.Quantity
			summary.NetArea += unit.NetArea * float64(unit.Quantity)
			summary.TotalCostSAR += totalCost
		}

		summary.TotalCostUSD = s.USD(summary.TotalCostSAR)
		result.GrandTotalSAR += summary.TotalCostSAR
		result.Categories = append(result.Categories, summary)
	}

	result.GrandTotalUSD = s.USD(result.GrandTotalSAR)

	for i := range result.Categories {
		result.Categories[i].BudgetShare = budgetShare(result.Categories[i].TotalCostSAR, result.GrandTotalSAR)
	}

	s.logger.Debug("catalog priced",
		zap.Int("units", len(result.Units)),
		zap.Int("categories", len(result.Categories)),
		zap.Int64("grand_total_sar", result.GrandTotalSAR),
	)

	return result, nil
}

// USD converts a SAR amount at the configured rate.
func (s *PricingService) USD(sar int64) int64 {
	return int64(math.Round(float64(sar) / s.economics.SARPerUSD))
}

func (s *PricingService) factor(class models.GrossingClass) (float64, error) {
	switch class {
	case models.GrossingAcademic:
		return s.economics.GrossingAcademic, nil
	case models.GrossingHighService:
		return s.economics.GrossingHighService, nil
	case models.GrossingOperations:
		return s.economics.GrossingOperations, nil
	default:
		return 0, appErrors.Clone(appErrors.ErrUnknownGrossing, fmt.Sprintf("unknown grossing class %q", class))
	}
}

// budgetShare returns the category's percentage of the grand total to one
// decimal. Shares are rounded independently and may not sum to exactly 100.
func budgetShare(cost, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(cost)/float64(total)*1000) / 10
}
