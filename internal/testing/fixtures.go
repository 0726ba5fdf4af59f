package testing

import (
	"context"
	"time"

	"github.com/bcce/onboard/internal/config"
	"github.com/bcce/onboard/internal/platform/aws"
	"github.com/bcce/onboard/internal/provisioning"
)

// TestAccountID is the fake AWS account used across tests.
const TestAccountID = "123456789012"

// TestConfig returns an organization configuration with two departments
// and full tier tables.
func TestConfig() *config.Config {
	return &config.Config{
		Organization: config.Organization{
			Name:        "Acme",
			Region:      "us-west-2",
			Environment: "production",
			Domain:      "acme.com",
		},
		Authentication: config.Authentication{
			UserPoolID: "us-west-2_TestPool",
			DefaultIDP: "cognito",
		},
		Governance: config.Governance{
			AnalyticsBucket: "bcce-acme-analytics",
			KMSKeyID:        "arn:aws:kms:us-west-2:123456789012:key/shared",
			TierBudgetLimits: map[config.Tier]float64{
				config.TierSandbox:     100,
				config.TierIntegration: 500,
				config.TierProduction:  1000,
			},
			TierGroupRoles: map[config.Tier]string{
				config.TierSandbox:     "arn:aws:iam::123456789012:role/BCCE-Sandbox",
				config.TierIntegration: "arn:aws:iam::123456789012:role/BCCE-Integration",
				config.TierProduction:  "arn:aws:iam::123456789012:role/BCCE-Production",
			},
		},
		Departments: map[string]config.Department{
			"engineering": {
				BudgetLimit:  500,
				AccessTiers:  []config.Tier{config.TierSandbox, config.TierIntegration},
				ManagerEmail: "eng-manager@acme.com",
			},
			"data-science": {
				BudgetLimit: 2000,
				AccessTiers: []config.Tier{config.TierSandbox, config.TierIntegration, config.TierProduction},
			},
		},
	}
}

// TestRequest returns a valid onboarding request for the engineering
// department.
func TestRequest() *provisioning.Request {
	return &provisioning.Request{
		Email:        "dev@acme.com",
		Department:   "engineering",
		AccessTier:   config.TierSandbox,
		ManagerEmail: "manager@acme.com",
		UseCase:      "code review automation",
		IDPProvider:  "cognito",
	}
}

// FixedTime is the deterministic clock used by emission and audit tests.
var FixedTime = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

// NewTestContext builds a provisioning context over the given client
// bundle with a silent observer and a fixed clock.
func NewTestContext(cfg *config.Config, req *provisioning.Request, clients *aws.Clients) *provisioning.Context {
	return &provisioning.Context{
		Context:  context.Background(),
		Config:   cfg,
		Request:  req,
		State:    provisioning.NewState(),
		Clients:  clients,
		Observer: SilentObserver{},
		Now:      func() time.Time { return FixedTime },
	}
}
