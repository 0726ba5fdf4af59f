package commands

import (
	"github.com/spf13/cobra"

	"github.com/bcce/onboard/cmd/bcce-onboard/handlers"
)

// Init returns the command for creating an organization configuration.
func Init() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create an organization configuration interactively",
		Long: `Create a new organization configuration file.

An interactive wizard asks for the organization identity, AWS region,
Cognito user pool, and the first department, then writes a complete
configuration file with sensible defaults.

Examples:
  # Create bcce.yaml in the current directory
  bcce-onboard init

  # Write to a specific path
  bcce-onboard init -o configs/acme.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "bcce.yaml", "Output path for the configuration file")

	return cmd
}
