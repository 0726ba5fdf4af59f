package identity

import (
	"fmt"
	"strconv"

	"github.com/bcce/onboard/internal/platform/aws"
	"github.com/bcce/onboard/internal/provisioning"
	"github.com/bcce/onboard/internal/util/naming"
)

// Provisioner creates the identity-store user, tags it with governance
// attributes, and places it in the department+tier group.
type Provisioner struct{}

// NewProvisioner creates a new identity provisioner.
func NewProvisioner() *Provisioner {
	return &Provisioner{}
}

// Name implements the provisioning.Phase interface.
func (p *Provisioner) Name() string {
	return "identity"
}

// Provision implements the provisioning.Phase interface.
// Identity failures are fatal: nothing downstream makes sense without the
// user record.
func (p *Provisioner) Provision(ctx *provisioning.Context) error {
	req := ctx.Request
	cfg := ctx.Config

	username := ctx.State.Username
	if username == "" {
		username = naming.Username(req.Email)
		ctx.State.Username = username
	}

	roleARN, ok := cfg.GroupRoleForTier(req.AccessTier)
	if !ok {
		return &provisioning.PolicyNotFoundError{Tier: string(req.AccessTier)}
	}

	dept := cfg.Departments[req.Department]

	attributes := map[string]string{
		"email":                req.Email,
		"email_verified":       "true",
		"custom:department":    req.Department,
		"custom:access_tier":   string(req.AccessTier),
		"custom:budget_limit":  strconv.FormatFloat(dept.BudgetLimit, 'f', -1, 64),
		"custom:manager_email": req.ManagerEmail,
	}

	provisioning.LogResourceCreating(ctx.Observer, p.Name(), "user", username)

	ref, err := ctx.Clients.Identity.CreateUser(ctx, cfg.Authentication.UserPoolID, username, attributes)
	if err != nil {
		if aws.IsUsernameExists(err) {
			return &provisioning.DuplicateUserError{Email: req.Email, Username: username}
		}
		return fmt.Errorf("failed to create identity-store user: %w", err)
	}

	provisioning.LogResourceCreated(ctx.Observer, p.Name(), "user", username, ref.Sub)

	group := naming.Group(req.Department, string(req.AccessTier))
	if err := p.addToGroup(ctx, username, group, roleARN); err != nil {
		return err
	}

	ctx.State.User = ref
	ctx.State.GroupName = group
	ctx.State.GroupRole = roleARN
	ctx.State.BudgetLimit = dept.BudgetLimit
	return nil
}

// addToGroup places the user in the department+tier group, creating the
// group on first use. The catch-and-create is idempotent for a single run
// but not protected against concurrent onboarding of the first user in a
// group.
func (p *Provisioner) addToGroup(ctx *provisioning.Context, username, group, roleARN string) error {
	poolID := ctx.Config.Authentication.UserPoolID

	err := ctx.Clients.Identity.AddUserToGroup(ctx, poolID, username, group)
	if err == nil {
		return nil
	}
	if !aws.IsGroupNotFound(err) {
		return fmt.Errorf("failed to add user to group: %w", err)
	}

	provisioning.LogResourceCreating(ctx.Observer, p.Name(), "group", group)

	description := fmt.Sprintf("BCCE developers: %s department, %s tier", ctx.Request.Department, ctx.Request.AccessTier)
	if err := ctx.Clients.Identity.CreateGroup(ctx, poolID, group, roleARN, description); err != nil {
		return fmt.Errorf("failed to create group: %w", err)
	}

	provisioning.LogResourceCreated(ctx.Observer, p.Name(), "group", group, roleARN)

	if err := ctx.Clients.Identity.AddUserToGroup(ctx, poolID, username, group); err != nil {
		return fmt.Errorf("failed to add user to freshly created group: %w", err)
	}
	return nil
}
