package commands

import (
	"github.com/spf13/cobra"

	"github.com/bcce/onboard/cmd/bcce-onboard/handlers"
)

// Onboard returns the command for provisioning a single developer.
//
// This command runs the complete onboarding pipeline: validation,
// identity creation, resource provisioning, budget creation, monitoring
// declaration, artifact emission, and audit logging.
//
// Required flags:
//
//	--email:       Developer corporate email address
//	--department:  Department name from the organization config
//	--access-tier: Access tier (sandbox, integration, production)
//
// Optional flags:
//
//	--config, -c:     Path to organization config file (default: bcce.yaml)
//	--manager-email:  Manager email for budget escalation
//	--use-case:       Short description of the intended use
//	--idp-provider:   Identity provider (default from config)
//	--output-dir, -o: Directory for developer artifacts (default: .)
//	--dry-run:        Validate only, create nothing
func Onboard() *cobra.Command {
	var opts handlers.OnboardOptions

	cmd := &cobra.Command{
		Use:   "onboard",
		Short: "Onboard a developer",
		Long: `Onboard a developer into the BCCE platform.

This command creates the developer's identity, personal resources
(workflow bucket, encryption key, log group), and individual cost
budget, then writes the developer's configuration files locally.

Examples:
  # Onboard a sandbox-tier engineer
  bcce-onboard onboard --email dev@acme.com --department engineering --access-tier sandbox

  # Validate a request without creating anything
  bcce-onboard onboard --email dev@acme.com --department engineering --access-tier sandbox --dry-run

  # Use a specific config file and output directory
  bcce-onboard onboard -c prod.yaml -o ./dev-setup \
    --email dev@acme.com --department data-science --access-tier production \
    --manager-email ds-lead@acme.com`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Onboard(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to organization config file (default: bcce.yaml)")
	cmd.Flags().StringVar(&opts.Email, "email", "", "Developer email address")
	cmd.Flags().StringVar(&opts.Department, "department", "", "Department name")
	cmd.Flags().StringVar(&opts.Tier, "access-tier", "", "Access tier: sandbox, integration, or production")
	cmd.Flags().StringVar(&opts.ManagerEmail, "manager-email", "", "Manager email for budget escalation")
	cmd.Flags().StringVar(&opts.UseCase, "use-case", "", "Short description of the intended use")
	cmd.Flags().StringVar(&opts.IDPProvider, "idp-provider", "", "Identity provider (default from config)")
	cmd.Flags().StringVarP(&opts.OutputDir, "output-dir", "o", ".", "Directory for developer artifacts")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Validate only, create nothing")

	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("department")
	_ = cmd.MarkFlagRequired("access-tier")

	return cmd
}
