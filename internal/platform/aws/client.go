package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/budgets"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/kms"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// Options configures client construction.
type Options struct {
	// AccessKey and SecretKey select static credentials instead of the
	// default credential chain. Both must be set together.
	AccessKey string
	SecretKey string
}

// Option is a functional option for NewClients.
type Option func(*Options)

// WithStaticCredentials uses explicit credentials instead of the default
// chain.
func WithStaticCredentials(accessKey, secretKey string) Option {
	return func(o *Options) {
		o.AccessKey = accessKey
		o.SecretKey = secretKey
	}
}

// NewClients builds the full client bundle for a region and resolves the
// caller's account ID via STS.
func NewClients(ctx context.Context, region string, opts ...Option) (*Clients, error) {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(region),
	}
	if o.AccessKey != "" {
		loadOpts = append(loadOpts,
			awsconfig.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(o.AccessKey, o.SecretKey, "")))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	stsClient := sts.NewFromConfig(cfg)
	ident, err := stsClient.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve caller identity: %w", err)
	}

	return &Clients{
		Identity:  &CognitoClient{api: cognitoidentityprovider.NewFromConfig(cfg)},
		Objects:   &S3Client{api: s3.NewFromConfig(cfg), region: region},
		Keys:      &KMSClient{api: kms.NewFromConfig(cfg)},
		Budgets:   &BudgetsClient{api: budgets.NewFromConfig(cfg)},
		Logs:      &LogsClient{api: cloudwatchlogs.NewFromConfig(cfg)},
		AccountID: aws.ToString(ident.Account),
		Region:    region,
	}, nil
}
