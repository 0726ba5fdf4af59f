package identity

import (
	"errors"
	"testing"

	cognitotypes "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bcce/onboard/internal/config"
	"github.com/bcce/onboard/internal/platform/aws"
	"github.com/bcce/onboard/internal/provisioning"
	internaltesting "github.com/bcce/onboard/internal/testing"
)

func TestProvision_CreatesUserAndJoinsGroup(t *testing.T) {
	t.Parallel()

	store := &internaltesting.MockIdentityStore{}
	ctx := internaltesting.NewTestContext(
		internaltesting.TestConfig(),
		internaltesting.TestRequest(),
		&aws.Clients{Identity: store, AccountID: internaltesting.TestAccountID},
	)

	store.On("CreateUser", mock.Anything, "us-west-2_TestPool", "dev-acme-com",
		mock.MatchedBy(func(attrs map[string]string) bool {
			return attrs["email"] == "dev@acme.com" &&
				attrs["custom:department"] == "engineering" &&
				attrs["custom:access_tier"] == "sandbox" &&
				attrs["custom:budget_limit"] == "500" &&
				attrs["custom:manager_email"] == "manager@acme.com"
		})).
		Return(aws.UserRef{Username: "dev-acme-com", UserPoolID: "us-west-2_TestPool", Sub: "sub-123"}, nil)
	store.On("AddUserToGroup", mock.Anything, "us-west-2_TestPool", "dev-acme-com", "engineering-sandbox").
		Return(nil)

	err := NewProvisioner().Provision(ctx)
	require.NoError(t, err)

	assert.Equal(t, "dev-acme-com", ctx.State.Username)
	assert.Equal(t, "sub-123", ctx.State.User.Sub)
	assert.Equal(t, "engineering-sandbox", ctx.State.GroupName)
	assert.Equal(t, "arn:aws:iam::123456789012:role/BCCE-Sandbox", ctx.State.GroupRole)
	assert.Equal(t, 500.0, ctx.State.BudgetLimit)
	store.AssertExpectations(t)
}

func TestProvision_CreatesGroupOnFirstUse(t *testing.T) {
	t.Parallel()

	store := &internaltesting.MockIdentityStore{}
	ctx := internaltesting.NewTestContext(
		internaltesting.TestConfig(),
		internaltesting.TestRequest(),
		&aws.Clients{Identity: store, AccountID: internaltesting.TestAccountID},
	)

	store.On("CreateUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(aws.UserRef{Username: "dev-acme-com"}, nil)

	// First add fails with a missing group; after creation the retry succeeds.
	store.On("AddUserToGroup", mock.Anything, "us-west-2_TestPool", "dev-acme-com", "engineering-sandbox").
		Return(&cognitotypes.ResourceNotFoundException{}).Once()
	store.On("CreateGroup", mock.Anything, "us-west-2_TestPool", "engineering-sandbox",
		"arn:aws:iam::123456789012:role/BCCE-Sandbox", mock.Anything).
		Return(nil).Once()
	store.On("AddUserToGroup", mock.Anything, "us-west-2_TestPool", "dev-acme-com", "engineering-sandbox").
		Return(nil).Once()

	err := NewProvisioner().Provision(ctx)
	require.NoError(t, err)
	assert.Equal(t, "engineering-sandbox", ctx.State.GroupName)
	store.AssertExpectations(t)
}

func TestProvision_DuplicateUser(t *testing.T) {
	t.Parallel()

	store := &internaltesting.MockIdentityStore{}
	ctx := internaltesting.NewTestContext(
		internaltesting.TestConfig(),
		internaltesting.TestRequest(),
		&aws.Clients{Identity: store},
	)

	store.On("CreateUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(aws.UserRef{}, &cognitotypes.UsernameExistsException{})

	err := NewProvisioner().Provision(ctx)
	require.Error(t, err)

	var dup *provisioning.DuplicateUserError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "dev-acme-com", dup.Username)
}

func TestProvision_MissingTierRole(t *testing.T) {
	t.Parallel()

	cfg := internaltesting.TestConfig()
	delete(cfg.Governance.TierGroupRoles, config.TierSandbox)

	store := &internaltesting.MockIdentityStore{}
	ctx := internaltesting.NewTestContext(cfg, internaltesting.TestRequest(), &aws.Clients{Identity: store})

	err := NewProvisioner().Provision(ctx)
	require.Error(t, err)

	var pnf *provisioning.PolicyNotFoundError
	require.ErrorAs(t, err, &pnf)
	assert.Equal(t, "sandbox", pnf.Tier)
	store.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestProvision_GroupCreateFails(t *testing.T) {
	t.Parallel()

	store := &internaltesting.MockIdentityStore{}
	ctx := internaltesting.NewTestContext(
		internaltesting.TestConfig(),
		internaltesting.TestRequest(),
		&aws.Clients{Identity: store},
	)

	store.On("CreateUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(aws.UserRef{Username: "dev-acme-com"}, nil)
	store.On("AddUserToGroup", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&cognitotypes.ResourceNotFoundException{}).Once()
	store.On("CreateGroup", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("access denied"))

	err := NewProvisioner().Provision(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create group")
}
