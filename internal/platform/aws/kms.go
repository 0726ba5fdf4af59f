package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/kms"
	"github.com/aws/aws-sdk-go-v2/service/kms/types"
)

// kmsAPI is the subset of the KMS client we call.
type kmsAPI interface {
	CreateKey(ctx context.Context, params *kms.CreateKeyInput, optFns ...func(*kms.Options)) (*kms.CreateKeyOutput, error)
}

// KMSClient implements KeyManager.
type KMSClient struct {
	api kmsAPI
}

// NewKMSClient wraps an existing KMS client.
func NewKMSClient(api *kms.Client) *KMSClient {
	return &KMSClient{api: api}
}

// CreateKey creates a symmetric encryption key with the given tags.
func (c *KMSClient) CreateKey(ctx context.Context, description string, tags map[string]string) (KeyRef, error) {
	keyTags := make([]types.Tag, 0, len(tags))
	for k, v := range tags {
		keyTags = append(keyTags, types.Tag{
			TagKey:   aws.String(k),
			TagValue: aws.String(v),
		})
	}

	out, err := c.api.CreateKey(ctx, &kms.CreateKeyInput{
		Description: aws.String(description),
		KeyUsage:    types.KeyUsageTypeEncryptDecrypt,
		Tags:        keyTags,
	})
	if err != nil {
		return KeyRef{}, fmt.Errorf("failed to create key: %w", err)
	}

	return KeyRef{
		ID:  aws.ToString(out.KeyMetadata.KeyId),
		ARN: aws.ToString(out.KeyMetadata.Arn),
	}, nil
}
