package models

// DonorPackage is a priced giving opportunity inside a tier.
type DonorPackage struct {
	Name        string
	Description string
	CostSAR     int64
	CostUSD     int64
	Impact      string
}

// PackageTier is one named giving level with its priced packages.
type PackageTier struct {
	Name        string
	GivingRange string
	Packages    []DonorPackage
}

// QuickReferenceItem is one line of the donor quick-reference listing, with
// costs rounded to the nearest thousand for readability.
type QuickReferenceItem struct {
	Name    string
	CostSAR int64
	CostUSD int64
	Note    string
}

// QuickReferenceBand groups quick-reference items under a giving band label.
type QuickReferenceBand struct {
	Label string
	Items []QuickReferenceItem
}
