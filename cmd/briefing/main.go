package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "briefing",
		Short: "New-campus briefing generator: capacity scenarios, donor pricing, and briefing artifacts",
	}

	rootCmd.AddCommand(scenarioCmd())
	rootCmd.AddCommand(pricingCmd())
	rootCmd.AddCommand(packagesCmd())
	rootCmd.AddCommand(generateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func scenarioCmd() *cobra.Command {
	var students int
	cmd := &cobra.Command{
		Use:   "scenario",
		Short: "Compute the capacity scenario comparison",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runScenario(students)
		},
	}
	cmd.Flags().IntVar(&students, "students", 0, "single enrollment target (default: configured targets)")
	return cmd
}

func pricingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pricing",
		Short: "Price the facility-unit catalog and print the category summary",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runPricing()
		},
	}
}

func packagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "packages",
		Short: "Print the donor package tiers and quick reference",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runPackages()
		},
	}
}

func generateCmd() *cobra.Command {
	var outDir string
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the full briefing: pricing workbook, ambassador deck, and CSV exports",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd.Context(), outDir)
		},
	}
	cmd.Flags().StringVar(&outDir, "out", "", "output directory (default: configured OUTPUT_DIR)")
	return cmd
}
