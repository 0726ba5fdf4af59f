package aws

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// s3API is the subset of the S3 client we call.
type s3API interface {
	CreateBucket(ctx context.Context, params *s3.CreateBucketInput, optFns ...func(*s3.Options)) (*s3.CreateBucketOutput, error)
	PutBucketVersioning(ctx context.Context, params *s3.PutBucketVersioningInput, optFns ...func(*s3.Options)) (*s3.PutBucketVersioningOutput, error)
	PutBucketPolicy(ctx context.Context, params *s3.PutBucketPolicyInput, optFns ...func(*s3.Options)) (*s3.PutBucketPolicyOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Client implements ObjectStore.
type S3Client struct {
	api    s3API
	region string
}

// NewS3Client wraps an existing S3 client.
func NewS3Client(api *s3.Client, region string) *S3Client {
	return &S3Client{api: api, region: region}
}

// CreateBucket creates a bucket in the given region.
// Returns nil if the bucket already exists and is owned by us.
func (c *S3Client) CreateBucket(ctx context.Context, bucket, region string) error {
	input := &s3.CreateBucketInput{
		Bucket: aws.String(bucket),
	}
	// us-east-1 rejects an explicit location constraint.
	if region != "" && region != "us-east-1" {
		input.CreateBucketConfiguration = &types.CreateBucketConfiguration{
			LocationConstraint: types.BucketLocationConstraint(region),
		}
	}

	if _, err := c.api.CreateBucket(ctx, input); err != nil {
		if IsBucketAlreadyOwnedByYou(err) {
			return nil
		}
		return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
	}
	return nil
}

// EnableVersioning turns on object versioning for the bucket.
func (c *S3Client) EnableVersioning(ctx context.Context, bucket string) error {
	_, err := c.api.PutBucketVersioning(ctx, &s3.PutBucketVersioningInput{
		Bucket: aws.String(bucket),
		VersioningConfiguration: &types.VersioningConfiguration{
			Status: types.BucketVersioningStatusEnabled,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to enable versioning on bucket %s: %w", bucket, err)
	}
	return nil
}

// PutBucketPolicy attaches a policy document to the bucket.
func (c *S3Client) PutBucketPolicy(ctx context.Context, bucket, policy string) error {
	_, err := c.api.PutBucketPolicy(ctx, &s3.PutBucketPolicyInput{
		Bucket: aws.String(bucket),
		Policy: aws.String(policy),
	})
	if err != nil {
		return fmt.Errorf("failed to put policy on bucket %s: %w", bucket, err)
	}
	return nil
}

// PutObject uploads an object, optionally with SSE-KMS and object tags.
func (c *S3Client) PutObject(ctx context.Context, bucket, key string, data []byte, opts PutObjectOptions) error {
	input := &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
	}
	if opts.SSEKMSKeyID != "" {
		input.ServerSideEncryption = types.ServerSideEncryptionAwsKms
		input.SSEKMSKeyId = aws.String(opts.SSEKMSKeyID)
	}
	if opts.ContentType != "" {
		input.ContentType = aws.String(opts.ContentType)
	}
	if opts.Tagging != "" {
		input.Tagging = aws.String(opts.Tagging)
	}

	if _, err := c.api.PutObject(ctx, input); err != nil {
		return fmt.Errorf("failed to put object %s in bucket %s: %w", key, bucket, err)
	}
	return nil
}
