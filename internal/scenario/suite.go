package scenario

import (
	"fmt"

	"github.com/bcce/onboard/internal/config"
	"github.com/bcce/onboard/internal/provisioning"
	"github.com/bcce/onboard/internal/util/naming"
)

// DemoConfig returns the configuration the built-in scenarios run against
// when no organization config is supplied.
func DemoConfig() *config.Config {
	return &config.Config{
		Organization: config.Organization{
			Name:        "Acme",
			Region:      "us-east-1",
			Environment: "production",
			Domain:      "acme.com",
		},
		Authentication: config.Authentication{
			UserPoolID: "us-east-1_DemoPool",
			DefaultIDP: "cognito",
		},
		Governance: config.Governance{
			TierGroupRoles: map[config.Tier]string{
				config.TierSandbox:     "arn:aws:iam::000000000000:role/bcce-sandbox",
				config.TierIntegration: "arn:aws:iam::000000000000:role/bcce-integration",
				config.TierProduction:  "arn:aws:iam::000000000000:role/bcce-production",
			},
		},
		Departments: map[string]config.Department{
			"engineering": {
				BudgetLimit:  500,
				AccessTiers:  []config.Tier{config.TierSandbox, config.TierIntegration},
				ManagerEmail: "eng-manager@acme.com",
			},
			"data-science": {
				BudgetLimit:  2000,
				AccessTiers:  []config.Tier{config.TierSandbox, config.TierIntegration, config.TierProduction},
				ManagerEmail: "ds-manager@acme.com",
			},
		},
	}
}

// Suite returns the built-in onboarding scenarios. They cover the developer
// personas the governance layer is expected to handle, plus the rejection
// paths.
func Suite() []Scenario {
	return []Scenario{
		{
			Name:        "startup-developer",
			Description: "engineering developer onboards at sandbox tier",
			Request: provisioning.Request{
				Email:        "alice@acme.com",
				Department:   "engineering",
				AccessTier:   config.TierSandbox,
				ManagerEmail: "eng-manager@acme.com",
				UseCase:      "prototype AI workflows",
				IDPProvider:  "cognito",
			},
			Check: func(cfg *config.Config, store *Store, state *provisioning.State) error {
				if state.Username != "alice-acme-com" {
					return fmt.Errorf("unexpected username %q", state.Username)
				}
				if _, ok := store.Users[state.Username]; !ok {
					return fmt.Errorf("user %q missing from identity store", state.Username)
				}
				return nil
			},
		},
		{
			Name:        "enterprise-ad-developer",
			Description: "developer onboards through a federated identity provider",
			Request: provisioning.Request{
				Email:        "bob@acme.com",
				Department:   "engineering",
				AccessTier:   config.TierIntegration,
				ManagerEmail: "eng-manager@acme.com",
				UseCase:      "CI integration",
				IDPProvider:  "azure_ad",
			},
		},
		{
			Name:        "data-scientist-high-budget",
			Description: "data-science developer gets production tier and budget",
			Request: provisioning.Request{
				Email:        "carol@acme.com",
				Department:   "data-science",
				AccessTier:   config.TierProduction,
				ManagerEmail: "ds-manager@acme.com",
				UseCase:      "model evaluation pipelines",
				IDPProvider:  "cognito",
			},
			Check: func(cfg *config.Config, store *Store, state *provisioning.State) error {
				if limit := cfg.BudgetLimitForTier(config.TierProduction); limit < cfg.BudgetLimitForTier(config.TierSandbox) {
					return fmt.Errorf("production limit %g below sandbox limit", limit)
				}
				return nil
			},
		},
		{
			Name:        "group-created-on-first-use",
			Description: "first onboarding into a department+tier creates the group",
			Request: provisioning.Request{
				Email:        "dave@acme.com",
				Department:   "engineering",
				AccessTier:   config.TierSandbox,
				ManagerEmail: "eng-manager@acme.com",
				UseCase:      "internal tooling",
				IDPProvider:  "cognito",
			},
			Check: func(cfg *config.Config, store *Store, state *provisioning.State) error {
				group := naming.Group("engineering", "sandbox")
				if _, ok := store.Groups[group]; !ok {
					return fmt.Errorf("group %q was not created", group)
				}
				return nil
			},
		},
		{
			Name:        "contractor-limited-access",
			Description: "production tier is rejected for a department that does not allow it",
			Request: provisioning.Request{
				Email:        "contractor@vendor.com",
				Department:   "engineering",
				AccessTier:   config.TierProduction,
				ManagerEmail: "eng-manager@acme.com",
				UseCase:      "short-term engagement",
				IDPProvider:  "cognito",
			},
			WantErr: "not allowed for department",
		},
		{
			Name:        "unknown-department",
			Description: "request for a department missing from config is rejected",
			Request: provisioning.Request{
				Email:        "eve@acme.com",
				Department:   "marketing",
				AccessTier:   config.TierSandbox,
				ManagerEmail: "manager@acme.com",
				UseCase:      "copy drafting",
				IDPProvider:  "cognito",
			},
			WantErr: "unknown department",
		},
		{
			Name:        "duplicate-user-rejected",
			Description: "re-onboarding an existing developer fails without side effects",
			Request: provisioning.Request{
				Email:        "alice@acme.com",
				Department:   "engineering",
				AccessTier:   config.TierSandbox,
				ManagerEmail: "eng-manager@acme.com",
				UseCase:      "prototype AI workflows",
				IDPProvider:  "cognito",
			},
			Setup: func(store *Store) {
				store.Users["alice-acme-com"] = map[string]string{"email": "alice@acme.com"}
			},
			WantErr: "already exists",
		},
	}
}
