package aws

import (
	"context"
	"testing"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/budgets"
	budgettypes "github.com/aws/aws-sdk-go-v2/service/budgets/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBudgets struct {
	in  *budgets.CreateBudgetInput
	err error
}

func (f *fakeBudgets) CreateBudget(_ context.Context, params *budgets.CreateBudgetInput, _ ...func(*budgets.Options)) (*budgets.CreateBudgetOutput, error) {
	f.in = params
	return &budgets.CreateBudgetOutput{}, f.err
}

func TestCreateBudget_MapsSpec(t *testing.T) {
	t.Parallel()

	api := &fakeBudgets{}
	client := &BudgetsClient{api: api}

	spec := BudgetSpec{
		Name:     "BCCE-dev-acme-com",
		LimitUSD: 100,
		TagKey:   "Owner",
		TagValue: "dev@acme.com",
		Thresholds: []BudgetThreshold{
			{Percent: 80, Subscribers: []string{"dev@acme.com"}},
			{Percent: 100, Subscribers: []string{"dev@acme.com", "manager@acme.com"}},
		},
	}

	require.NoError(t, client.CreateBudget(context.Background(), "123456789012", spec))

	in := api.in
	assert.Equal(t, "123456789012", awssdk.ToString(in.AccountId))
	assert.Equal(t, "BCCE-dev-acme-com", awssdk.ToString(in.Budget.BudgetName))
	assert.Equal(t, "100", awssdk.ToString(in.Budget.BudgetLimit.Amount))
	assert.Equal(t, "USD", awssdk.ToString(in.Budget.BudgetLimit.Unit))
	assert.Equal(t, budgettypes.TimeUnitMonthly, in.Budget.TimeUnit)
	assert.Equal(t, budgettypes.BudgetTypeCost, in.Budget.BudgetType)
	assert.Equal(t, []string{"user:Owner$dev@acme.com"}, in.Budget.CostFilters["TagKeyValue"])

	require.Len(t, in.NotificationsWithSubscribers, 2)
	first := in.NotificationsWithSubscribers[0]
	assert.Equal(t, budgettypes.NotificationTypeActual, first.Notification.NotificationType)
	assert.Equal(t, budgettypes.ComparisonOperatorGreaterThan, first.Notification.ComparisonOperator)
	assert.Equal(t, budgettypes.ThresholdTypePercentage, first.Notification.ThresholdType)
	assert.Equal(t, 80.0, first.Notification.Threshold)
	require.Len(t, first.Subscribers, 1)
	assert.Equal(t, budgettypes.SubscriptionTypeEmail, first.Subscribers[0].SubscriptionType)
	assert.Equal(t, "dev@acme.com", awssdk.ToString(first.Subscribers[0].Address))

	second := in.NotificationsWithSubscribers[1]
	assert.Equal(t, 100.0, second.Notification.Threshold)
	require.Len(t, second.Subscribers, 2)
}

func TestCreateBudget_ErrorPropagates(t *testing.T) {
	t.Parallel()

	api := &fakeBudgets{err: &budgettypes.DuplicateRecordException{}}
	client := &BudgetsClient{api: api}

	err := client.CreateBudget(context.Background(), "123456789012", BudgetSpec{Name: "BCCE-dev"})
	require.Error(t, err)
	assert.True(t, IsBudgetDuplicate(err), "wrapping must keep the typed cause")
}
