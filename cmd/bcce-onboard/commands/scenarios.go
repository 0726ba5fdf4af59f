package commands

import (
	"github.com/spf13/cobra"

	"github.com/bcce/onboard/cmd/bcce-onboard/handlers"
)

// Scenarios returns the command for running the built-in onboarding
// scenarios against an in-memory identity store.
func Scenarios() *cobra.Command {
	var (
		configPath string
		reportPath string
	)

	cmd := &cobra.Command{
		Use:   "scenarios",
		Short: "Run the built-in onboarding scenarios",
		Long: `Run the built-in onboarding scenarios against an in-memory identity
store. No AWS resources are touched. The scenarios cover the expected
developer personas and the rejection paths.

Examples:
  # Run against the built-in demo configuration
  bcce-onboard scenarios

  # Run against your configuration and write a JSON report
  bcce-onboard scenarios -c prod.yaml --report report.json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Scenarios(cmd.Context(), configPath, reportPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to organization config file (default: built-in demo config)")
	cmd.Flags().StringVar(&reportPath, "report", "", "Write a JSON report to this path")

	return cmd
}
