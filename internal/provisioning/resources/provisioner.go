package resources

import (
	"github.com/bcce/onboard/internal/provisioning"
)

// Provisioner handles governance resource provisioning (workflow bucket,
// encryption key, log group).
type Provisioner struct{}

// NewProvisioner creates a new resource provisioner.
func NewProvisioner() *Provisioner {
	return &Provisioner{}
}

// Name implements the provisioning.Phase interface.
func (p *Provisioner) Name() string {
	return "resources"
}

// Provision implements the provisioning.Phase interface.
// The encryption key is a hard requirement; bucket and log group degrade
// to absent fields on failure.
func (p *Provisioner) Provision(ctx *provisioning.Context) error {
	// 1. Workflow bucket (soft)
	p.ProvisionBucket(ctx)

	// 2. Encryption key (fatal)
	if err := p.ProvisionKey(ctx); err != nil {
		return err
	}

	// 3. Log group (soft)
	p.ProvisionLogGroup(ctx)

	return nil
}
