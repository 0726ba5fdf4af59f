package aws

import (
	"context"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/budgets"
	"github.com/aws/aws-sdk-go-v2/service/budgets/types"
)

// budgetsAPI is the subset of the Budgets client we call.
type budgetsAPI interface {
	CreateBudget(ctx context.Context, params *budgets.CreateBudgetInput, optFns ...func(*budgets.Options)) (*budgets.CreateBudgetOutput, error)
}

// BudgetsClient implements BudgetService.
type BudgetsClient struct {
	api budgetsAPI
}

// NewBudgetsClient wraps an existing Budgets client.
func NewBudgetsClient(api *budgets.Client) *BudgetsClient {
	return &BudgetsClient{api: api}
}

// CreateBudget creates a monthly cost budget filtered by a cost-allocation
// tag, with one actual-spend email notification per threshold.
func (c *BudgetsClient) CreateBudget(ctx context.Context, accountID string, spec BudgetSpec) error {
	notifications := make([]types.NotificationWithSubscribers, 0, len(spec.Thresholds))
	for _, th := range spec.Thresholds {
		subscribers := make([]types.Subscriber, 0, len(th.Subscribers))
		for _, address := range th.Subscribers {
			subscribers = append(subscribers, types.Subscriber{
				SubscriptionType: types.SubscriptionTypeEmail,
				Address:          aws.String(address),
			})
		}
		notifications = append(notifications, types.NotificationWithSubscribers{
			Notification: &types.Notification{
				NotificationType:   types.NotificationTypeActual,
				ComparisonOperator: types.ComparisonOperatorGreaterThan,
				Threshold:          th.Percent,
				ThresholdType:      types.ThresholdTypePercentage,
			},
			Subscribers: subscribers,
		})
	}

	_, err := c.api.CreateBudget(ctx, &budgets.CreateBudgetInput{
		AccountId: aws.String(accountID),
		Budget: &types.Budget{
			BudgetName: aws.String(spec.Name),
			BudgetLimit: &types.Spend{
				Amount: aws.String(strconv.FormatFloat(spec.LimitUSD, 'f', -1, 64)),
				Unit:   aws.String("USD"),
			},
			TimeUnit:   types.TimeUnitMonthly,
			BudgetType: types.BudgetTypeCost,
			CostFilters: map[string][]string{
				"TagKeyValue": {fmt.Sprintf("user:%s$%s", spec.TagKey, spec.TagValue)},
			},
		},
		NotificationsWithSubscribers: notifications,
	})
	if err != nil {
		return fmt.Errorf("failed to create budget %s: %w", spec.Name, err)
	}
	return nil
}
