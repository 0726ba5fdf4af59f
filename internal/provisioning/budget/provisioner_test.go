package budget

import (
	"errors"
	"testing"

	budgettypes "github.com/aws/aws-sdk-go-v2/service/budgets/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bcce/onboard/internal/platform/aws"
	"github.com/bcce/onboard/internal/provisioning"
	internaltesting "github.com/bcce/onboard/internal/testing"
)

func newBudgetContext(svc *internaltesting.MockBudgetService) *provisioning.Context {
	return internaltesting.NewTestContext(
		internaltesting.TestConfig(),
		internaltesting.TestRequest(),
		&aws.Clients{Budgets: svc, AccountID: internaltesting.TestAccountID},
	)
}

func TestProvision_CreatesBudget(t *testing.T) {
	t.Parallel()

	svc := &internaltesting.MockBudgetService{}
	ctx := newBudgetContext(svc)

	var got aws.BudgetSpec
	svc.On("CreateBudget", mock.Anything, internaltesting.TestAccountID, mock.Anything).
		Run(func(args mock.Arguments) { got = args.Get(2).(aws.BudgetSpec) }).
		Return(nil)

	err := NewProvisioner().Provision(ctx)
	require.NoError(t, err)

	assert.Equal(t, "BCCE-dev-acme-com", got.Name)
	assert.Equal(t, 100.0, got.LimitUSD, "sandbox tier limit")
	assert.Equal(t, "Owner", got.TagKey)
	assert.Equal(t, "dev@acme.com", got.TagValue)

	require.Len(t, got.Thresholds, 2)
	assert.Equal(t, 80.0, got.Thresholds[0].Percent)
	assert.Equal(t, []string{"dev@acme.com"}, got.Thresholds[0].Subscribers)
	assert.Equal(t, 100.0, got.Thresholds[1].Percent)
	assert.Equal(t, []string{"dev@acme.com", "manager@acme.com"}, got.Thresholds[1].Subscribers,
		"the manager joins only the 100% escalation")

	require.NotNil(t, ctx.State.Budget)
	assert.Equal(t, "BCCE-dev-acme-com", ctx.State.Budget.Name)
	assert.Equal(t, []float64{80, 100}, ctx.State.Budget.Thresholds)
	assert.Equal(t, "USD", ctx.State.Budget.Currency)
}

func TestProvision_NoManagerEmail(t *testing.T) {
	t.Parallel()

	svc := &internaltesting.MockBudgetService{}
	ctx := newBudgetContext(svc)
	ctx.Request.ManagerEmail = ""

	var got aws.BudgetSpec
	svc.On("CreateBudget", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { got = args.Get(2).(aws.BudgetSpec) }).
		Return(nil)

	require.NoError(t, NewProvisioner().Provision(ctx))
	require.Len(t, got.Thresholds, 2)
	assert.Equal(t, []string{"dev@acme.com"}, got.Thresholds[1].Subscribers)
}

func TestProvision_DuplicateBudgetKeepsRecord(t *testing.T) {
	t.Parallel()

	svc := &internaltesting.MockBudgetService{}
	ctx := newBudgetContext(svc)

	svc.On("CreateBudget", mock.Anything, mock.Anything, mock.Anything).
		Return(&budgettypes.DuplicateRecordException{})

	err := NewProvisioner().Provision(ctx)
	require.NoError(t, err)

	require.NotNil(t, ctx.State.Budget, "an existing budget still counts as provisioned")
	assert.Empty(t, ctx.State.Warnings)
}

func TestProvision_FailureDegrades(t *testing.T) {
	t.Parallel()

	svc := &internaltesting.MockBudgetService{}
	ctx := newBudgetContext(svc)

	svc.On("CreateBudget", mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("access denied"))

	err := NewProvisioner().Provision(ctx)
	require.NoError(t, err, "budget failures must not abort the run")

	assert.Nil(t, ctx.State.Budget)
	require.Len(t, ctx.State.Warnings, 1)
	assert.Contains(t, ctx.State.Warnings[0], "budget")
}
