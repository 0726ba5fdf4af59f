package monitoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bcce/onboard/internal/config"
	"github.com/bcce/onboard/internal/platform/aws"
	internaltesting "github.com/bcce/onboard/internal/testing"
)

func TestDeclare(t *testing.T) {
	t.Parallel()

	cfg := internaltesting.TestConfig()
	req := internaltesting.TestRequest()

	mc := Declare(cfg, req)

	assert.Equal(t, "BCCE/Acme", mc.Namespace)
	assert.Equal(t, "BCCE-dev-acme-com", mc.DashboardName)
	assert.Equal(t, map[string]string{
		"Department":  "engineering",
		"User":        "dev@acme.com",
		"Environment": "production",
	}, mc.Dimensions)
	assert.Contains(t, mc.Metrics, "TokensUsed")
	assert.Contains(t, mc.Metrics, "CostEstimate")
	assert.Equal(t, 30, mc.RetentionDays)
	assert.False(t, mc.CostAlerts, "sandbox tier has no cost alerts")
}

func TestDeclare_CostAlertsByTier(t *testing.T) {
	t.Parallel()

	cfg := internaltesting.TestConfig()

	tests := []struct {
		tier config.Tier
		want bool
	}{
		{config.TierSandbox, false},
		{config.TierIntegration, true},
		{config.TierProduction, true},
	}

	for _, tt := range tests {
		req := internaltesting.TestRequest()
		req.AccessTier = tt.tier
		assert.Equal(t, tt.want, Declare(cfg, req).CostAlerts, "tier %s", tt.tier)
	}
}

func TestProvision_SetsState(t *testing.T) {
	t.Parallel()

	ctx := internaltesting.NewTestContext(
		internaltesting.TestConfig(),
		internaltesting.TestRequest(),
		&aws.Clients{},
	)

	err := NewProvisioner().Provision(ctx)
	require.NoError(t, err)
	require.NotNil(t, ctx.State.Monitoring)
	assert.Equal(t, "BCCE/Acme", ctx.State.Monitoring.Namespace)
}
