package aws

import (
	"context"
	"errors"
	"testing"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	logtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLogs struct {
	createErr    error
	retentionErr error

	createIn    *cloudwatchlogs.CreateLogGroupInput
	retentionIn *cloudwatchlogs.PutRetentionPolicyInput
}

func (f *fakeLogs) CreateLogGroup(_ context.Context, params *cloudwatchlogs.CreateLogGroupInput, _ ...func(*cloudwatchlogs.Options)) (*cloudwatchlogs.CreateLogGroupOutput, error) {
	f.createIn = params
	return &cloudwatchlogs.CreateLogGroupOutput{}, f.createErr
}

func (f *fakeLogs) PutRetentionPolicy(_ context.Context, params *cloudwatchlogs.PutRetentionPolicyInput, _ ...func(*cloudwatchlogs.Options)) (*cloudwatchlogs.PutRetentionPolicyOutput, error) {
	f.retentionIn = params
	return &cloudwatchlogs.PutRetentionPolicyOutput{}, f.retentionErr
}

func TestEnsureLogGroup_CreatesWithRetention(t *testing.T) {
	t.Parallel()

	api := &fakeLogs{}
	client := &LogsClient{api: api}

	require.NoError(t, client.EnsureLogGroup(context.Background(), "/bcce/developer/dev", 30))
	assert.Equal(t, "/bcce/developer/dev", awssdk.ToString(api.createIn.LogGroupName))
	require.NotNil(t, api.retentionIn)
	assert.Equal(t, int32(30), awssdk.ToInt32(api.retentionIn.RetentionInDays))
}

func TestEnsureLogGroup_ExistingGroupIsNotAnError(t *testing.T) {
	t.Parallel()

	api := &fakeLogs{createErr: &logtypes.ResourceAlreadyExistsException{}}
	client := &LogsClient{api: api}

	require.NoError(t, client.EnsureLogGroup(context.Background(), "/bcce/developer/dev", 90))
	require.NotNil(t, api.retentionIn, "retention still applies when the group already exists")
}

func TestEnsureLogGroup_ZeroRetentionSkipsPolicy(t *testing.T) {
	t.Parallel()

	api := &fakeLogs{}
	client := &LogsClient{api: api}

	require.NoError(t, client.EnsureLogGroup(context.Background(), "/bcce/developer/dev", 0))
	assert.Nil(t, api.retentionIn)
}

func TestEnsureLogGroup_CreateErrorPropagates(t *testing.T) {
	t.Parallel()

	api := &fakeLogs{createErr: errors.New("throttled")}
	client := &LogsClient{api: api}

	err := client.EnsureLogGroup(context.Background(), "/bcce/developer/dev", 30)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/bcce/developer/dev")
}
