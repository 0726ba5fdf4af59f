package handlers

import (
	"context"
	"fmt"

	"github.com/bcce/onboard/internal/config"
)

// Factory function variables for init - can be replaced in tests.
var (
	// runWizard runs the organization setup wizard.
	runWizard = config.RunWizard

	// writeConfig writes the config to a file.
	writeConfig = config.WriteYAML
)

// Init runs the organization setup wizard and writes the result to a file.
func Init(ctx context.Context, outputPath string) error {
	if fileExists(outputPath) {
		fmt.Printf("Warning: %s already exists and will be overwritten.\n\n", outputPath)
	}

	printWelcome()

	result, err := runWizard(ctx)
	if err != nil {
		return err
	}

	cfg := result.ToConfig()

	if err := writeConfig(cfg, outputPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	printInitSuccess(outputPath, cfg)

	return nil
}

// printWelcome prints the welcome message.
func printWelcome() {
	fmt.Println()
	fmt.Println("bcce-onboard - BCCE Developer Provisioning")
	fmt.Println("==========================================")
	fmt.Println()
	fmt.Println("This wizard creates an organization configuration with sensible defaults.")
	fmt.Println("Tier budget limits and log retention can be adjusted in the file later.")
	fmt.Println()
}

// printInitSuccess prints the success message with summary and next steps.
func printInitSuccess(outputPath string, cfg *config.Config) {
	fmt.Println()
	fmt.Println("Configuration saved!")
	fmt.Println()
	fmt.Printf("  File: %s\n", outputPath)
	fmt.Println()

	// Summary
	fmt.Println("Organization Summary")
	fmt.Println("--------------------")
	fmt.Printf("  Name:        %s\n", cfg.Organization.Name)
	fmt.Printf("  Region:      %s\n", cfg.Organization.Region)
	fmt.Printf("  Environment: %s\n", cfg.Organization.Environment)
	fmt.Printf("  User pool:   %s\n", cfg.Authentication.UserPoolID)
	if cfg.Governance.AnalyticsBucket != "" {
		fmt.Printf("  Analytics:   s3://%s\n", cfg.Governance.AnalyticsBucket)
	}
	fmt.Printf("  Departments: %d\n", len(cfg.Departments))
	fmt.Println()

	// Tier defaults
	fmt.Println("Tier Defaults")
	fmt.Println("-------------")
	for _, tier := range config.Tiers() {
		fmt.Printf("  %-12s $%g/mo, %d day log retention\n",
			tier, cfg.BudgetLimitForTier(tier), cfg.LogRetentionForTier(tier))
	}
	fmt.Println()

	// Next steps
	fmt.Println("Next Steps")
	fmt.Println("----------")
	fmt.Printf("  1. Add the tier IAM role ARNs under governance.tier_group_roles in %s\n", outputPath)
	fmt.Println()
	fmt.Println("  2. Check connectivity:")
	fmt.Println("     bcce-onboard doctor")
	fmt.Println()
	fmt.Println("  3. Onboard your first developer:")
	fmt.Println("     bcce-onboard onboard --email dev@example.com --department engineering --access-tier sandbox")
	fmt.Println()
}
