package config

// DefaultConfig returns a starter organization configuration, used by the
// init wizard as the template for generated files.
func DefaultConfig() *Config {
	return &Config{
		Organization: Organization{
			Name:        "Acme",
			Region:      "us-east-1",
			Environment: "production",
			Domain:      "acme.com",
		},
		Authentication: Authentication{
			DefaultIDP: "cognito",
		},
		Governance: Governance{
			TierBudgetLimits: map[Tier]float64{
				TierSandbox:     100,
				TierIntegration: 500,
				TierProduction:  1000,
			},
			LogRetentionDays: map[Tier]int{
				TierSandbox:     30,
				TierIntegration: 90,
				TierProduction:  365,
			},
		},
		Departments: map[string]Department{
			"engineering": {
				BudgetLimit: 500,
				AccessTiers: []Tier{TierSandbox, TierIntegration},
			},
		},
	}
}
