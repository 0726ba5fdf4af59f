package testing

import (
	"context"

	cognitotypes "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/stretchr/testify/mock"

	"github.com/bcce/onboard/internal/platform/aws"
	"github.com/bcce/onboard/internal/provisioning"
)

// MockIdentityStore is a testify mock of aws.IdentityStore.
type MockIdentityStore struct {
	mock.Mock
}

func (m *MockIdentityStore) UserExists(ctx context.Context, userPoolID, username string) (bool, error) {
	args := m.Called(ctx, userPoolID, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockIdentityStore) CreateUser(ctx context.Context, userPoolID, username string, attributes map[string]string) (aws.UserRef, error) {
	args := m.Called(ctx, userPoolID, username, attributes)
	return args.Get(0).(aws.UserRef), args.Error(1)
}

func (m *MockIdentityStore) AddUserToGroup(ctx context.Context, userPoolID, username, group string) error {
	args := m.Called(ctx, userPoolID, username, group)
	return args.Error(0)
}

func (m *MockIdentityStore) CreateGroup(ctx context.Context, userPoolID, group, roleARN, description string) error {
	args := m.Called(ctx, userPoolID, group, roleARN, description)
	return args.Error(0)
}

// MockObjectStore is a testify mock of aws.ObjectStore.
type MockObjectStore struct {
	mock.Mock
}

func (m *MockObjectStore) CreateBucket(ctx context.Context, bucket, region string) error {
	args := m.Called(ctx, bucket, region)
	return args.Error(0)
}

func (m *MockObjectStore) EnableVersioning(ctx context.Context, bucket string) error {
	args := m.Called(ctx, bucket)
	return args.Error(0)
}

func (m *MockObjectStore) PutBucketPolicy(ctx context.Context, bucket, policy string) error {
	args := m.Called(ctx, bucket, policy)
	return args.Error(0)
}

func (m *MockObjectStore) PutObject(ctx context.Context, bucket, key string, data []byte, opts aws.PutObjectOptions) error {
	args := m.Called(ctx, bucket, key, data, opts)
	return args.Error(0)
}

// MockKeyManager is a testify mock of aws.KeyManager.
type MockKeyManager struct {
	mock.Mock
}

func (m *MockKeyManager) CreateKey(ctx context.Context, description string, tags map[string]string) (aws.KeyRef, error) {
	args := m.Called(ctx, description, tags)
	return args.Get(0).(aws.KeyRef), args.Error(1)
}

// MockBudgetService is a testify mock of aws.BudgetService.
type MockBudgetService struct {
	mock.Mock
}

func (m *MockBudgetService) CreateBudget(ctx context.Context, accountID string, spec aws.BudgetSpec) error {
	args := m.Called(ctx, accountID, spec)
	return args.Error(0)
}

// MockLogGroupService is a testify mock of aws.LogGroupService.
type MockLogGroupService struct {
	mock.Mock
}

func (m *MockLogGroupService) EnsureLogGroup(ctx context.Context, name string, retentionDays int) error {
	args := m.Called(ctx, name, retentionDays)
	return args.Error(0)
}

// SilentObserver is a provisioning.Observer that discards all output.
type SilentObserver struct{}

func (SilentObserver) Printf(string, ...interface{})                        {}
func (SilentObserver) Event(provisioning.Event)                             {}
func (o SilentObserver) WithFields(map[string]string) provisioning.Observer { return o }

// RecordingObserver captures events for assertions.
type RecordingObserver struct {
	Lines  []string
	Events []provisioning.Event
}

func (o *RecordingObserver) Printf(format string, v ...interface{}) {
	o.Lines = append(o.Lines, format)
}

func (o *RecordingObserver) Event(event provisioning.Event) {
	o.Events = append(o.Events, event)
}

func (o *RecordingObserver) WithFields(map[string]string) provisioning.Observer { return o }

// MemoryIdentityStore is an in-memory aws.IdentityStore used by the
// scenario runner and dry-run tests. Errors are the SDK's typed errors so
// the platform classification helpers treat them the same as live
// responses.
type MemoryIdentityStore struct {
	Users  map[string]map[string]string // username -> attributes
	Groups map[string]string            // group -> role ARN
}

// NewMemoryIdentityStore creates an empty in-memory identity store.
func NewMemoryIdentityStore() *MemoryIdentityStore {
	return &MemoryIdentityStore{
		Users:  make(map[string]map[string]string),
		Groups: make(map[string]string),
	}
}

func (s *MemoryIdentityStore) UserExists(_ context.Context, _, username string) (bool, error) {
	_, ok := s.Users[username]
	return ok, nil
}

func (s *MemoryIdentityStore) CreateUser(_ context.Context, userPoolID, username string, attributes map[string]string) (aws.UserRef, error) {
	if _, ok := s.Users[username]; ok {
		return aws.UserRef{}, &cognitotypes.UsernameExistsException{}
	}
	s.Users[username] = attributes
	return aws.UserRef{Username: username, UserPoolID: userPoolID, Sub: username}, nil
}

func (s *MemoryIdentityStore) AddUserToGroup(_ context.Context, _, _, group string) error {
	if _, ok := s.Groups[group]; !ok {
		return &cognitotypes.ResourceNotFoundException{}
	}
	return nil
}

func (s *MemoryIdentityStore) CreateGroup(_ context.Context, _, group, roleARN, _ string) error {
	s.Groups[group] = roleARN
	return nil
}
