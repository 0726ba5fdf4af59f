package handlers

import (
	"context"
	"fmt"

	"github.com/bcce/onboard/internal/scenario"
)

// runSuite executes the scenario suite (for testing injection).
var runSuite = scenario.RunSuite

// Scenarios runs the built-in onboarding scenarios against an in-memory
// identity store and optionally writes a JSON report.
//
// With no config path the built-in demo configuration is used, so the
// command works without any setup.
func Scenarios(ctx context.Context, configPath, reportPath string) error {
	cfg := scenario.DemoConfig()
	if configPath != "" {
		loaded, err := loadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	report := runSuite(ctx, cfg, scenario.Suite())

	printScenarioReport(report)

	if reportPath != "" {
		if err := report.Write(reportPath); err != nil {
			return err
		}
		fmt.Printf("  Report written to %s\n\n", reportPath)
	}

	if report.Failed > 0 {
		return fmt.Errorf("%d of %d scenarios failed", report.Failed, report.Total)
	}
	return nil
}

func printScenarioReport(report *scenario.Report) {
	fmt.Println()
	fmt.Println(titleStyle.Render("  Onboarding scenarios"))
	fmt.Println(dimStyle.Render("  " + "════════════════════"))
	fmt.Println()

	for _, result := range report.Results {
		if result.Passed() {
			fmt.Printf("  %s  %s\n", okStyle.Render("pass"), result.Name)
			continue
		}
		fmt.Printf("  %s  %s\n", warnStyle.Render("FAIL"), result.Name)
		fmt.Printf("        %s\n", result.Detail)
	}

	fmt.Println()
	fmt.Printf("  %d/%d passed (%.0f%%) in %.2fs\n\n",
		report.Passed, report.Total, report.SuccessRate, report.DurationSeconds)
}
