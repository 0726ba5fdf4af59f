package config

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/charmbracelet/huh"
)

// WizardResult holds the user's choices from the init wizard.
type WizardResult struct {
	OrgName         string
	Region          string
	Environment     string
	Domain          string
	UserPoolID      string
	AnalyticsBucket string
	DeptName        string
	DeptTiers       []Tier
	DeptBudget      float64
	DeptManager     string
}

// RunWizard runs the interactive organization setup wizard.
func RunWizard(ctx context.Context) (*WizardResult, error) {
	result := &WizardResult{
		// Defaults
		Region:      "us-east-1",
		Environment: "production",
		DeptName:    "engineering",
		DeptTiers:   []Tier{TierSandbox},
		DeptBudget:  500,
	}

	form := huh.NewForm(
		// Organization identity
		huh.NewGroup(
			huh.NewInput().
				Title("Organization name").
				Description("Used for metric namespaces and dashboards").
				Placeholder("Acme").
				Value(&result.OrgName).
				Validate(validateNonEmpty("organization name")),

			huh.NewInput().
				Title("Organization domain").
				Description("Used for the support address in developer guides").
				Placeholder("acme.com").
				Value(&result.Domain),
		),

		// Region and environment
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("AWS region").
				Description("Region for identity, storage, and log resources").
				Options(
					huh.NewOption("US East (us-east-1)", "us-east-1"),
					huh.NewOption("US West (us-west-2)", "us-west-2"),
					huh.NewOption("Europe (eu-west-1)", "eu-west-1"),
					huh.NewOption("Europe (eu-central-1)", "eu-central-1"),
				).
				Value(&result.Region),

			huh.NewSelect[string]().
				Title("Environment").
				Options(
					huh.NewOption("Production", "production"),
					huh.NewOption("Staging", "staging"),
					huh.NewOption("Development", "development"),
				).
				Value(&result.Environment),
		),

		// Identity and analytics
		huh.NewGroup(
			huh.NewInput().
				Title("Cognito user pool ID").
				Description("Existing user pool developers are onboarded into").
				Placeholder("us-east-1_AbCdEfGhI").
				Value(&result.UserPoolID).
				Validate(validateNonEmpty("user pool ID")),

			huh.NewInput().
				Title("Analytics bucket (optional)").
				Description("Shared bucket for usage analytics. Leave empty to skip.").
				Placeholder("acme-bcce-analytics").
				Value(&result.AnalyticsBucket),
		),

		// First department
		huh.NewGroup(
			huh.NewInput().
				Title("First department").
				Description("More departments can be added to the file later").
				Placeholder("engineering").
				Value(&result.DeptName).
				Validate(validateNonEmpty("department name")),

			huh.NewMultiSelect[Tier]().
				Title("Allowed access tiers").
				Options(
					huh.NewOption("Sandbox (experimentation)", TierSandbox),
					huh.NewOption("Integration (CI and shared environments)", TierIntegration),
					huh.NewOption("Production (full model access)", TierProduction),
				).
				Value(&result.DeptTiers).
				Validate(func(tiers []Tier) error {
					if len(tiers) == 0 {
						return fmt.Errorf("select at least one tier")
					}
					return nil
				}),

			huh.NewSelect[float64]().
				Title("Department monthly budget (USD)").
				Options(
					huh.NewOption("$500", 500.0),
					huh.NewOption("$1,000", 1000.0),
					huh.NewOption("$2,500", 2500.0),
					huh.NewOption("$5,000", 5000.0),
				).
				Value(&result.DeptBudget),

			huh.NewInput().
				Title("Department manager email (optional)").
				Description("Escalation contact for budget alerts").
				Placeholder("eng-manager@acme.com").
				Value(&result.DeptManager).
				Validate(validateOptionalEmail),
		),
	)

	if err := form.RunWithContext(ctx); err != nil {
		return nil, fmt.Errorf("wizard canceled: %w", err)
	}

	return result, nil
}

// ToConfig converts the wizard result to an organization configuration,
// layering the answers over the built-in defaults.
func (r *WizardResult) ToConfig() *Config {
	cfg := DefaultConfig()
	cfg.Organization.Name = r.OrgName
	cfg.Organization.Region = r.Region
	cfg.Organization.Environment = r.Environment
	cfg.Organization.Domain = r.Domain
	cfg.Authentication.UserPoolID = r.UserPoolID
	cfg.Governance.AnalyticsBucket = r.AnalyticsBucket
	cfg.Departments = map[string]Department{
		r.DeptName: {
			BudgetLimit:  r.DeptBudget,
			AccessTiers:  r.DeptTiers,
			ManagerEmail: r.DeptManager,
		},
	}
	return cfg
}

func validateNonEmpty(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func validateOptionalEmail(s string) error {
	if s == "" {
		return nil
	}
	if _, err := mail.ParseAddress(s); err != nil {
		return fmt.Errorf("invalid email address")
	}
	return nil
}
