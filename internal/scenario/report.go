package scenario

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/bcce/onboard/internal/config"
)

// Report summarizes a scenario run. It is the JSON document written by the
// scenarios command.
type Report struct {
	GeneratedAt     time.Time `json:"generated_at"`
	Total           int       `json:"total_scenarios"`
	Passed          int       `json:"passed"`
	Failed          int       `json:"failed"`
	SuccessRate     float64   `json:"success_rate"`
	DurationSeconds float64   `json:"duration_seconds"`
	Results         []Result  `json:"results"`
}

// RunSuite executes all scenarios and assembles the report.
func RunSuite(ctx context.Context, cfg *config.Config, scenarios []Scenario) *Report {
	start := time.Now()
	report := &Report{
		GeneratedAt: start.UTC(),
		Total:       len(scenarios),
	}

	for _, sc := range scenarios {
		result := Run(ctx, cfg, sc)
		report.Results = append(report.Results, result)
		if result.Passed() {
			report.Passed++
		} else {
			report.Failed++
		}
	}

	report.DurationSeconds = time.Since(start).Seconds()
	if report.Total > 0 {
		report.SuccessRate = float64(report.Passed) / float64(report.Total) * 100
	}
	return report
}

// Write persists the report as indented JSON.
func (r *Report) Write(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
