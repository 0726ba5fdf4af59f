package monitoring

import (
	"github.com/bcce/onboard/internal/config"
	"github.com/bcce/onboard/internal/provisioning"
	"github.com/bcce/onboard/internal/util/naming"
)

// trackedMetrics are the per-developer usage metrics BCCE reports into the
// organization namespace.
var trackedMetrics = []string{
	"TokensUsed",
	"RequestCount",
	"ErrorCount",
	"ResponseTime",
	"CostEstimate",
}

// Provisioner declares the monitoring configuration for a developer. It is
// informational only: no alarms or dashboards are created here.
type Provisioner struct{}

// NewProvisioner creates a new monitoring provisioner.
func NewProvisioner() *Provisioner {
	return &Provisioner{}
}

// Name implements the provisioning.Phase interface.
func (p *Provisioner) Name() string {
	return "monitoring"
}

// Provision implements the provisioning.Phase interface.
func (p *Provisioner) Provision(ctx *provisioning.Context) error {
	req := ctx.Request
	org := ctx.Config.Organization

	ctx.State.Monitoring = Declare(ctx.Config, req)

	ctx.Observer.Printf("[monitoring] declared namespace %s, dashboard %s",
		naming.MetricNamespace(org.Name), naming.Dashboard(req.Email))
	return nil
}

// Declare builds the monitoring declaration for a request. Pure function,
// shared with dry-run reporting.
func Declare(cfg *config.Config, req *provisioning.Request) *provisioning.MonitoringConfig {
	org := cfg.Organization
	return &provisioning.MonitoringConfig{
		Namespace:     naming.MetricNamespace(org.Name),
		DashboardName: naming.Dashboard(req.Email),
		Dimensions: map[string]string{
			"Department":  req.Department,
			"User":        req.Email,
			"Environment": org.Environment,
		},
		Metrics:       trackedMetrics,
		RetentionDays: cfg.LogRetentionForTier(req.AccessTier),
		CostAlerts:    req.AccessTier == config.TierIntegration || req.AccessTier == config.TierProduction,
	}
}
