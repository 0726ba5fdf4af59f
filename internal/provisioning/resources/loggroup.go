package resources

import (
	"github.com/bcce/onboard/internal/provisioning"
	"github.com/bcce/onboard/internal/util/naming"
)

// ProvisionLogGroup ensures the developer's log group exists with
// tier-appropriate retention. Failure degrades to an absent reference.
func (p *Provisioner) ProvisionLogGroup(ctx *provisioning.Context) {
	name := naming.LogGroup(ctx.Request.Email)
	retention := ctx.Config.LogRetentionForTier(ctx.Request.AccessTier)

	provisioning.LogResourceCreating(ctx.Observer, p.Name(), "log group", name)

	if err := ctx.Clients.Logs.EnsureLogGroup(ctx, name, retention); err != nil {
		ctx.State.Warnf(ctx.Observer, p.Name(), "could not create log group %s: %v", name, err)
		return
	}

	provisioning.LogResourceCreated(ctx.Observer, p.Name(), "log group", name, "")
	ctx.State.LogGroup = name
}
