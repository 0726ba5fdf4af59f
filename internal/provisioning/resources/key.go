package resources

import (
	"fmt"

	"github.com/bcce/onboard/internal/provisioning"
)

// ProvisionKey creates the developer's encryption key. Key creation is
// fatal: without it no developer data can be stored encrypted.
func (p *Provisioner) ProvisionKey(ctx *provisioning.Context) error {
	description := fmt.Sprintf("BCCE encryption key for %s", ctx.Request.Email)
	tags := map[string]string{
		"Owner":      ctx.Request.Email,
		"Department": ctx.Request.Department,
		"Purpose":    "BCCE-Developer-Encryption",
	}

	provisioning.LogResourceCreating(ctx.Observer, p.Name(), "encryption key", ctx.State.Username)

	ref, err := ctx.Clients.Keys.CreateKey(ctx, description, tags)
	if err != nil {
		return fmt.Errorf("failed to create encryption key: %w", err)
	}

	provisioning.LogResourceCreated(ctx.Observer, p.Name(), "encryption key", ref.ID, ref.ARN)
	ctx.State.Key = ref
	return nil
}
