package budget

import (
	"github.com/bcce/onboard/internal/platform/aws"
	"github.com/bcce/onboard/internal/provisioning"
	"github.com/bcce/onboard/internal/util/naming"
)

// Notification thresholds are fixed for every tier: warn the developer at
// 80% of actual spend, escalate at 100%.
const (
	warnThresholdPercent     = 80.0
	escalateThresholdPercent = 100.0
)

// Provisioner creates the individual monthly cost budget keyed by the
// developer's Owner cost-allocation tag.
type Provisioner struct{}

// NewProvisioner creates a new budget provisioner.
func NewProvisioner() *Provisioner {
	return &Provisioner{}
}

// Name implements the provisioning.Phase interface.
func (p *Provisioner) Name() string {
	return "budget"
}

// Provision implements the provisioning.Phase interface.
// Budget creation is soft: on failure the budget reference stays nil and
// the pipeline continues.
func (p *Provisioner) Provision(ctx *provisioning.Context) error {
	req := ctx.Request
	limit := ctx.Config.BudgetLimitForTier(req.AccessTier)
	name := naming.Budget(req.Email)

	// The developer is always notified; the manager joins only the 100%
	// escalation and only when a manager email was supplied.
	escalation := []string{req.Email}
	if req.ManagerEmail != "" {
		escalation = append(escalation, req.ManagerEmail)
	}

	spec := aws.BudgetSpec{
		Name:     name,
		LimitUSD: limit,
		TagKey:   "Owner",
		TagValue: req.Email,
		Thresholds: []aws.BudgetThreshold{
			{Percent: warnThresholdPercent, Subscribers: []string{req.Email}},
			{Percent: escalateThresholdPercent, Subscribers: escalation},
		},
	}

	provisioning.LogResourceCreating(ctx.Observer, p.Name(), "budget", name)

	err := ctx.Clients.Budgets.CreateBudget(ctx, ctx.Clients.AccountID, spec)
	switch {
	case err == nil:
		provisioning.LogResourceCreated(ctx.Observer, p.Name(), "budget", name, "")
	case aws.IsBudgetDuplicate(err):
		provisioning.LogResourceExists(ctx.Observer, p.Name(), "budget", name)
	default:
		ctx.State.Warnf(ctx.Observer, p.Name(), "could not create budget %s: %v", name, err)
		return nil
	}
	ctx.State.Budget = &provisioning.BudgetRecord{
		Name:       name,
		LimitUSD:   limit,
		Currency:   "USD",
		Thresholds: []float64{warnThresholdPercent, escalateThresholdPercent},
	}
	return nil
}
