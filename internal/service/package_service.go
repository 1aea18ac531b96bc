package service

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/noah-isme/campus-briefing/internal/catalog"
	"github.com/noah-isme/campus-briefing/internal/models"
	"github.com/noah-isme/campus-briefing/pkg/config"
	appErrors "github.com/noah-isme/campus-briefing/pkg/errors"
)

// PackageService resolves donor package definitions against a priced catalog.
type PackageService struct {
	economics config.EconomicsConfig
	logger    *zap.Logger
}

// NewPackageService constructs a PackageService.
func NewPackageService(economics config.EconomicsConfig, logger *zap.Logger) *PackageService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PackageService{economics: economics, logger: logger}
}

// BuildTiers prices the giving tiers. A definition referencing a unit name
// absent from the catalog is a configuration error and fails the whole build.
func (s *PackageService) BuildTiers(priced *models.PricedCatalog, defs []catalog.TierDef) ([]models.PackageTier, error) {
	tiers := make([]models.PackageTier, 0, len(defs))

	for _, tierDef := range defs {
		tier := models.PackageTier{
			Name:        tierDef.Name,
			GivingRange: tierDef.GivingRange,
			Packages:    make([]models.DonorPackage, 0, len(tierDef.Packages)),
		}

		for _, pkgDef := range tierDef.Packages {
			cost, err := s.contributionCost(priced, pkgDef.Contributions, pkgDef.Name)
			if err != nil {
				return nil, err
			}

			tier.Packages = append(tier.Packages, models.DonorPackage{
				Name:        pkgDef.Name,
				Description: pkgDef.Description,
				CostSAR:     cost,
				CostUSD:     s.usd(cost),
				Impact:      pkgDef.Impact,
			})
		}

		tiers = append(tiers, tier)
	}

	return tiers, nil
}

// BuildQuickReference builds the donor quick-reference bands. Amounts are
// rounded to the nearest thousand per unit before any multiplication, so a
// ten-room block reads as exactly ten times the listed room price.
func (s *PackageService) BuildQuickReference(priced *models.PricedCatalog, bands []catalog.QuickRefBand) ([]models.QuickReferenceBand, error) {
	result := make([]models.QuickReferenceBand, 0, len(bands))

	for _, bandDef := range bands {
		band := models.QuickReferenceBand{
			Label: bandDef.Label,
			Items: make([]models.QuickReferenceItem, 0, len(bandDef.Entries)),
		}

		for _, entry := range bandDef.Entries {
			var sar int64
			var catalogUnit models.PricedUnit
			for _, contrib := range entry.Contributions {
				unit, ok := priced.Unit(contrib.Unit)
				if !ok {
					return nil, appErrors.Clone(appErrors.ErrUnknownUnit,
						fmt.Sprintf("quick reference %q references unknown unit %q", entry.Label, contrib.Unit))
				}
				sar += roundThousand(unit.UnitCostSAR) * int64(contrib.Quantity)
				catalogUnit = unit
			}

			item := models.QuickReferenceItem{
				Name:    entry.Label,
				CostSAR: sar,
				CostUSD: roundThousand(s.usd(sar)),
			}
			if entry.ShowCatalogTotal && catalogUnit.Quantity > 1 {
				combined := sar * int64(catalogUnit.Quantity)
				item.Note = fmt.Sprintf("×%d = SAR %.2fM", catalogUnit.Quantity, float64(combined)/1e6)
			}

			band.Items = append(band.Items, item)
		}

		result = append(result, band)
	}

	return result, nil
}

func (s *PackageService) contributionCost(priced *models.PricedCatalog, contributions []catalog.PackageContribution, pkgName string) (int64, error) {
	var cost int64
	for _, contrib := range contributions {
		unit, ok := priced.Unit(contrib.Unit)
		if !ok {
			return 0, appErrors.Clone(appErrors.ErrUnknownUnit,
				fmt.Sprintf("package %q references unknown unit %q", pkgName, contrib.Unit))
		}
		if contrib.Quantity <= 0 {
			return 0, appErrors.Clone(appErrors.ErrValidation,
				fmt.Sprintf("package %q has non-positive quantity for unit %q", pkgName, contrib.Unit))
		}
		cost += unit.UnitCostSAR * int64(contrib.Quantity)
	}
	return cost, nil
}

func (s *PackageService) usd(sar int64) int64 {
	return int64(math.Round(float64(sar) / s.economics.SARPerUSD))
}

func roundThousand(n int64) int64 {
	return int64(math.Round(float64(n)/1000)) * 1000
}
