package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
)

// logsAPI is the subset of the CloudWatch Logs client we call.
type logsAPI interface {
	CreateLogGroup(ctx context.Context, params *cloudwatchlogs.CreateLogGroupInput, optFns ...func(*cloudwatchlogs.Options)) (*cloudwatchlogs.CreateLogGroupOutput, error)
	PutRetentionPolicy(ctx context.Context, params *cloudwatchlogs.PutRetentionPolicyInput, optFns ...func(*cloudwatchlogs.Options)) (*cloudwatchlogs.PutRetentionPolicyOutput, error)
}

// LogsClient implements LogGroupService.
type LogsClient struct {
	api logsAPI
}

// NewLogsClient wraps an existing CloudWatch Logs client.
func NewLogsClient(api *cloudwatchlogs.Client) *LogsClient {
	return &LogsClient{api: api}
}

// EnsureLogGroup creates the log group if missing and applies retention.
func (c *LogsClient) EnsureLogGroup(ctx context.Context, name string, retentionDays int) error {
	_, err := c.api.CreateLogGroup(ctx, &cloudwatchlogs.CreateLogGroupInput{
		LogGroupName: aws.String(name),
	})
	if err != nil && !IsLogGroupExists(err) {
		return fmt.Errorf("failed to create log group %s: %w", name, err)
	}

	if retentionDays > 0 {
		_, err = c.api.PutRetentionPolicy(ctx, &cloudwatchlogs.PutRetentionPolicyInput{
			LogGroupName:    aws.String(name),
			RetentionInDays: aws.Int32(int32(retentionDays)),
		})
		if err != nil {
			return fmt.Errorf("failed to set retention on log group %s: %w", name, err)
		}
	}
	return nil
}
