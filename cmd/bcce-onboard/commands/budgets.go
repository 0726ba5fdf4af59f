package commands

import (
	"github.com/spf13/cobra"

	"github.com/bcce/onboard/cmd/bcce-onboard/handlers"
)

// Budgets returns the command for displaying the tier budget tables.
func Budgets() *cobra.Command {
	var (
		configPath string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "budgets",
		Short: "Show tier budget limits and department budgets",
		Long: `Show the per-tier budget limits, log retention, and model access
defined by the organization configuration, plus the configured
department budgets.

Examples:
  bcce-onboard budgets
  bcce-onboard budgets -c prod.yaml --json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Budgets(configPath, jsonOutput)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to organization config file (default: bcce.yaml)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")

	return cmd
}
