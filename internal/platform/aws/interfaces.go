package aws

import "context"

// UserRef describes a created identity-store user.
type UserRef struct {
	Username   string
	UserPoolID string
	Sub        string
}

// KeyRef describes a created KMS key.
type KeyRef struct {
	ID  string
	ARN string
}

// PutObjectOptions carries optional metadata for object uploads.
type PutObjectOptions struct {
	SSEKMSKeyID string
	ContentType string
	Tagging     string
}

// BudgetThreshold is a single actual-spend notification rule.
type BudgetThreshold struct {
	Percent     float64
	Subscribers []string
}

// BudgetSpec describes a monthly cost budget keyed by a cost-allocation tag.
type BudgetSpec struct {
	Name       string
	LimitUSD   float64
	TagKey     string
	TagValue   string
	Thresholds []BudgetThreshold
}

// IdentityStore is the Cognito-backed identity operations used by the
// identity provisioner.
type IdentityStore interface {
	// UserExists reports whether the username exists in the user pool.
	UserExists(ctx context.Context, userPoolID, username string) (bool, error)

	// CreateUser creates a user with the given attributes. The welcome
	// message is suppressed; onboarding delivers its own guide.
	CreateUser(ctx context.Context, userPoolID, username string, attributes map[string]string) (UserRef, error)

	// AddUserToGroup adds the user to a group. Returns an error for which
	// IsGroupNotFound reports true when the group does not exist.
	AddUserToGroup(ctx context.Context, userPoolID, username, group string) error

	// CreateGroup creates a group bound to an IAM role.
	CreateGroup(ctx context.Context, userPoolID, group, roleARN, description string) error
}

// ObjectStore is the S3 surface used by the resource provisioner and the
// audit/emit stages.
type ObjectStore interface {
	CreateBucket(ctx context.Context, bucket, region string) error
	EnableVersioning(ctx context.Context, bucket string) error
	PutBucketPolicy(ctx context.Context, bucket, policy string) error
	PutObject(ctx context.Context, bucket, key string, data []byte, opts PutObjectOptions) error
}

// KeyManager is the KMS surface used by the resource provisioner.
type KeyManager interface {
	CreateKey(ctx context.Context, description string, tags map[string]string) (KeyRef, error)
}

// BudgetService is the Budgets surface used by the budget controller.
type BudgetService interface {
	CreateBudget(ctx context.Context, accountID string, spec BudgetSpec) error
}

// LogGroupService is the CloudWatch Logs surface used by the resource
// provisioner.
type LogGroupService interface {
	// EnsureLogGroup creates the log group if missing and applies the
	// retention policy. Creating an existing group is not an error.
	EnsureLogGroup(ctx context.Context, name string, retentionDays int) error
}

// Clients bundles the per-service clients plus the resolved account ID.
// Provisioning stages receive this explicitly; there is no process-wide
// singleton.
type Clients struct {
	Identity IdentityStore
	Objects  ObjectStore
	Keys     KeyManager
	Budgets  BudgetService
	Logs     LogGroupService

	AccountID string
	Region    string
}
