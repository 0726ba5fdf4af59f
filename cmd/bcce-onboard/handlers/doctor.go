package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/bcce/onboard/internal/doctor"
)

// runProbes runs the diagnostic probes (for testing injection).
var runProbes = doctor.Run

// Doctor runs connectivity diagnostics against the AWS service endpoints
// onboarding depends on.
//
// The region is taken from the organization config when one is present,
// falling back to the AWS_REGION environment variable. A failing check
// makes the command exit non-zero.
func Doctor(ctx context.Context, configPath string, jsonOutput bool) error {
	region, loadErr := resolveRegion(configPath)

	out := runProbes(ctx, region)
	if loadErr != nil {
		out.Checks = append([]doctor.CheckResult{{
			Name:    "Config",
			Status:  doctor.StatusWarn,
			Message: loadErr.Error(),
			Fix:     "fix the config file, or pass --config pointing at a valid one",
		}}, out.Checks...)
	}

	if jsonOutput {
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal doctor output: %w", err)
		}
		fmt.Println(string(data))
	} else {
		printDoctorChecks(out)
	}

	if out.HasFailures() {
		return fmt.Errorf("doctor found failing checks")
	}
	return nil
}

// resolveRegion prefers the config file's region, then AWS_REGION.
// An empty result is handled by the probes as a failing check. A config
// file that exists but cannot be loaded is reported back so the caller
// can surface it; the region still falls back to the environment.
func resolveRegion(configPath string) (string, error) {
	if configPath != "" || fileExists(defaultConfigFile) {
		cfg, err := loadConfig(configPath)
		if err != nil {
			return os.Getenv("AWS_REGION"), err
		}
		return cfg.Organization.Region, nil
	}
	return os.Getenv("AWS_REGION"), nil
}

func printDoctorChecks(out doctor.Output) {
	fmt.Println()
	fmt.Printf("  bcce-onboard doctor (region: %s)\n", orUnset(out.Region))
	fmt.Println()

	for _, check := range out.Checks {
		fmt.Printf("  %s  %-22s %s\n", statusIndicator(check.Status), check.Name, check.Message)
		if check.Fix != "" && check.Status != doctor.StatusPass {
			fmt.Printf("      fix: %s\n", check.Fix)
		}
	}
	fmt.Println()

	switch {
	case out.HasFailures():
		fmt.Println("  Some checks failed.")
	case out.HasWarnings():
		fmt.Println("  All checks passed with warnings.")
	default:
		fmt.Println("  All checks passed.")
	}
	fmt.Println()
}

func statusIndicator(status string) string {
	if !isInteractiveTTY() {
		switch status {
		case doctor.StatusPass:
			return "ok  "
		case doctor.StatusWarn:
			return "warn"
		default:
			return "FAIL"
		}
	}
	switch status {
	case doctor.StatusPass:
		return "✅" // green check
	case doctor.StatusWarn:
		return "⚠️" // warning sign
	default:
		return "❌" // red X
	}
}

func orUnset(s string) string {
	if s == "" {
		return "unset"
	}
	return s
}
