package main

import (
	"fmt"

	"github.com/noah-isme/campus-briefing/internal/models"
	"github.com/noah-isme/campus-briefing/internal/render"
)

func printScenarios(scenarios []models.Scenario) {
	fmt.Println("Capacity Scenario Comparison")
	fmt.Println("============================")
	fmt.Println()

	for _, sc := range scenarios {
		fmt.Printf("Target: %s students\n", render.Comma(int64(sc.TotalStudents)))
		for _, seg := range sc.Segments() {
			fmt.Printf("  %-14s %6s students  %4d classrooms\n",
				seg.Segment, render.Comma(int64(seg.Students)), seg.Classrooms)
		}
		fmt.Printf("  Total classrooms:   %d (science labs %d, ICT labs %d)\n",
			sc.TotalClassrooms, sc.ScienceLabs, sc.ICTLabs)
		fmt.Printf("  Net area:           %s m2\n", render.Comma(int64(sc.TotalNet)))
		fmt.Printf("  Gross area (BUA):   %s m2\n", render.Comma(int64(sc.TotalGross)))
		fmt.Printf("  Footprint:          %s m2 (%d%% site coverage)\n",
			render.Comma(int64(sc.Footprint)), sc.CoveragePct)
		fmt.Printf("  Construction cost:  SAR %d-%dM\n", sc.CostLowSARm, sc.CostHighSARm)
		fmt.Println()
	}
}

func printPricing(priced *models.PricedCatalog) {
	fmt.Println("Unit Pricing by Category")
	fmt.Println("========================")
	fmt.Println()

	for i, cat := range priced.Categories {
		fmt.Printf("%2d. %-42s %3d units  %9s net m2  SAR %12s  (%.1f%%)\n",
			i+1, cat.Name, cat.UnitCount,
			fmt.Sprintf("%.0f", cat.NetArea),
			render.Comma(cat.TotalCostSAR), cat.BudgetShare)
	}

	fmt.Println()
	fmt.Printf("Grand total: %s / %s across %d priced units\n",
		render.Money("SAR", priced.GrandTotalSAR),
		render.Money("USD", priced.GrandTotalUSD),
		len(priced.Units))
}

func printPackages(tiers []models.PackageTier, quickRef []models.QuickReferenceBand) {
	fmt.Println("Donor Packages")
	fmt.Println("==============")

	for _, tier := range tiers {
		fmt.Printf("\n%s (%s)\n", tier.Name, tier.GivingRange)
		for _, pkg := range tier.Packages {
			fmt.Printf("  %-34s %12s / %12s  %s\n",
				pkg.Name,
				render.Money("SAR", pkg.CostSAR),
				render.Money("USD", pkg.CostUSD),
				pkg.Impact)
		}
	}

	fmt.Println()
	fmt.Println("Quick Reference")
	fmt.Println("---------------")
	for _, band := range quickRef {
		fmt.Printf("\n%s\n", band.Label)
		for _, item := range band.Items {
			line := fmt.Sprintf("  %-34s SAR %11s / USD %10s",
				item.Name, render.Comma(item.CostSAR), render.Comma(item.CostUSD))
			if item.Note != "" {
				line += fmt.Sprintf("  (%s)", item.Note)
			}
			fmt.Println(line)
		}
	}
}
