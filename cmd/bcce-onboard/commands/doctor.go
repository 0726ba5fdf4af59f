package commands

import (
	"github.com/spf13/cobra"

	"github.com/bcce/onboard/cmd/bcce-onboard/handlers"
)

// Doctor returns the command for running environment diagnostics.
func Doctor() *cobra.Command {
	var (
		configPath string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check connectivity to required AWS services",
		Long: `Run diagnostic checks against the AWS service endpoints onboarding
depends on (Cognito, S3, KMS, CloudWatch Logs, Budgets, STS).

The region comes from the organization config if present, otherwise
from the AWS_REGION environment variable.

Examples:
  bcce-onboard doctor
  bcce-onboard doctor -c prod.yaml --json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Doctor(cmd.Context(), configPath, jsonOutput)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to organization config file (default: bcce.yaml)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")

	return cmd
}
