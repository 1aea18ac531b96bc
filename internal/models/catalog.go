package models

// GrossingClass tags a net area with the multiplier family used to convert it
// to built-up area.
type GrossingClass string

const (
	GrossingAcademic    GrossingClass = "academic"
	GrossingHighService GrossingClass = "high_service"
	GrossingOperations  GrossingClass = "operations"
)

// FacilityUnit is one priceable space type from the campus space program.
type FacilityUnit struct {
	Name        string `validate:"required"`
	Description string
	Quantity    int           `validate:"gt=0"`
	NetArea     float64       `validate:"gt=0"`
	Grossing    GrossingClass `validate:"required,oneof=academic high_service operations"`
	Impact      string
}

// Category groups catalog units under a section heading. Catalog order is
// load-bearing: the workbook renders categories and units in this order.
type Category struct {
	Name  string
	Units []FacilityUnit
}

// PricedUnit is one catalog unit with its derived costs. UnitCostSAR is
// rounded before multiplying by quantity; TotalCostSAR is therefore
// Quantity × UnitCostSAR, not a rounded area product.
type PricedUnit struct {
	Index    int
	Category string
	FacilityUnit

	GrossArea    float64
	UnitCostSAR  int64
	UnitCostUSD  int64
	TotalCostSAR int64
	TotalCostUSD int64
}

// CategorySummary aggregates the units of one catalog category.
type CategorySummary struct {
	Name         string
	UnitCount    int
	NetArea      float64
	TotalCostSAR int64
	TotalCostUSD int64

	// BudgetShare is the category's percentage of the grand total. Because
	// each share is rounded independently the shares may not sum to exactly
	// 100; that drift is accepted, not corrected.
	BudgetShare float64
}

// PricedCatalog is the full output of the unit cost pricer.
type PricedCatalog struct {
	Units         []PricedUnit
	Categories    []CategorySummary
	GrandTotalSAR int64
	GrandTotalUSD int64
}

// Unit returns the priced unit with the given catalog name.
func (c *PricedCatalog) Unit(name string) (PricedUnit, bool) {
	for _, u := range c.Units {
		if u.Name == name {
			return u, true
		}
	}
	return PricedUnit{}, false
}
