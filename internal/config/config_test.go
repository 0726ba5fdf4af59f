package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
organization:
  name: Acme
  region: us-west-2
  environment: production
  domain: acme.com
authentication:
  user_pool_id: us-west-2_AbCdEfGhI
  default_idp: cognito
governance:
  analytics_bucket: bcce-acme-analytics
  kms_key_id: arn:aws:kms:us-west-2:123456789012:key/abc
  tier_budget_limits:
    sandbox: 100
    integration: 500
    production: 2000
  tier_group_roles:
    sandbox: arn:aws:iam::123456789012:role/BCCE-Sandbox
    integration: arn:aws:iam::123456789012:role/BCCE-Integration
departments:
  engineering:
    budget_limit: 500
    access_tiers: [sandbox, integration]
    manager_email: eng-manager@acme.com
  data-science:
    budget_limit: 2000
    access_tiers: [sandbox, integration, production]
`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile_YAML(t *testing.T) {
	t.Parallel()
	cfg, err := LoadFile(writeTemp(t, "org.yaml", sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "Acme", cfg.Organization.Name)
	assert.Equal(t, "us-west-2", cfg.Organization.Region)
	assert.Equal(t, "us-west-2_AbCdEfGhI", cfg.Authentication.UserPoolID)
	assert.Equal(t, "bcce-acme-analytics", cfg.Governance.AnalyticsBucket)

	eng, ok := cfg.Departments["engineering"]
	require.True(t, ok)
	assert.InDelta(t, 500, eng.BudgetLimit, 0)
	assert.Equal(t, []Tier{TierSandbox, TierIntegration}, eng.AccessTiers)
	assert.Equal(t, "eng-manager@acme.com", eng.ManagerEmail)
}

func TestLoadFile_JSON(t *testing.T) {
	t.Parallel()
	content := `{
  "organization": {"name": "Acme", "region": "us-east-1"},
  "departments": {
    "engineering": {"budget_limit": 300, "access_tiers": ["sandbox"]}
  }
}`
	cfg, err := LoadFile(writeTemp(t, "org.json", content))
	require.NoError(t, err)
	assert.Equal(t, "us-east-1", cfg.Organization.Region)
	assert.True(t, cfg.Departments["engineering"].AllowsTier(TierSandbox))
	assert.False(t, cfg.Departments["engineering"].AllowsTier(TierProduction))
}

func TestLoadFile_MissingFile(t *testing.T) {
	t.Parallel()
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadFile_MissingRequiredFields(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "no organization name",
			content: "organization:\n  region: us-east-1\ndepartments:\n  eng: {}\n",
			wantErr: "organization.name is required",
		},
		{
			name:    "no region",
			content: "organization:\n  name: Acme\ndepartments:\n  eng: {}\n",
			wantErr: "organization.region is required",
		},
		{
			name:    "no departments",
			content: "organization:\n  name: Acme\n  region: us-east-1\n",
			wantErr: "at least one department is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := LoadFile(writeTemp(t, "org.yaml", tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestBudgetLimitForTier_Defaults(t *testing.T) {
	t.Parallel()
	cfg := &Config{}
	assert.InDelta(t, 100, cfg.BudgetLimitForTier(TierSandbox), 0)
	assert.InDelta(t, 500, cfg.BudgetLimitForTier(TierIntegration), 0)
	assert.InDelta(t, 1000, cfg.BudgetLimitForTier(TierProduction), 0)
}

func TestBudgetLimitForTier_ConfigOverride(t *testing.T) {
	t.Parallel()
	cfg := &Config{Governance: Governance{
		TierBudgetLimits: map[Tier]float64{TierProduction: 2000},
	}}
	assert.InDelta(t, 2000, cfg.BudgetLimitForTier(TierProduction), 0)
	// Unset tiers still use defaults.
	assert.InDelta(t, 100, cfg.BudgetLimitForTier(TierSandbox), 0)
}

func TestLogRetentionForTier(t *testing.T) {
	t.Parallel()
	cfg := &Config{}
	assert.Equal(t, 30, cfg.LogRetentionForTier(TierSandbox))
	assert.Equal(t, 90, cfg.LogRetentionForTier(TierIntegration))
	assert.Equal(t, 365, cfg.LogRetentionForTier(TierProduction))
}

func TestGroupRoleForTier(t *testing.T) {
	t.Parallel()
	cfg := &Config{Governance: Governance{
		TierGroupRoles: map[Tier]string{TierSandbox: "arn:aws:iam::1:role/S"},
	}}

	arn, ok := cfg.GroupRoleForTier(TierSandbox)
	assert.True(t, ok)
	assert.Equal(t, "arn:aws:iam::1:role/S", arn)

	_, ok = cfg.GroupRoleForTier(TierProduction)
	assert.False(t, ok)
}

func TestTierValid(t *testing.T) {
	t.Parallel()
	for _, tier := range Tiers() {
		assert.True(t, tier.Valid())
	}
	assert.False(t, Tier("staging").Valid())
}

func TestWriteYAML_RoundTrip(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := DefaultConfig()
	cfg.Authentication.UserPoolID = "us-east-1_Test"

	require.NoError(t, WriteYAML(cfg, path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Organization.Name, loaded.Organization.Name)
	assert.Equal(t, "us-east-1_Test", loaded.Authentication.UserPoolID)
}
