package resources

import (
	"encoding/json"
	"fmt"

	"github.com/bcce/onboard/internal/provisioning"
	"github.com/bcce/onboard/internal/util/naming"
)

// bucketPolicy is the S3 policy document scoping the workflow bucket to the
// onboarded developer.
type bucketPolicy struct {
	Version   string            `json:"Version"`
	Statement []policyStatement `json:"Statement"`
}

type policyStatement struct {
	Sid       string          `json:"Sid"`
	Effect    string          `json:"Effect"`
	Principal policyPrincipal `json:"Principal"`
	Action    []string        `json:"Action"`
	Resource  []string        `json:"Resource"`
}

type policyPrincipal struct {
	AWS string `json:"AWS"`
}

// developerBucketPolicy renders the access policy for the workflow bucket.
func developerBucketPolicy(bucket, accountID, username string) (string, error) {
	policy := bucketPolicy{
		Version: "2012-10-17",
		Statement: []policyStatement{
			{
				Sid:    "DeveloperAccess",
				Effect: "Allow",
				Principal: policyPrincipal{
					AWS: fmt.Sprintf("arn:aws:iam::%s:user/bcce-%s", accountID, username),
				},
				Action: []string{
					"s3:GetObject",
					"s3:PutObject",
					"s3:DeleteObject",
					"s3:ListBucket",
				},
				Resource: []string{
					fmt.Sprintf("arn:aws:s3:::%s", bucket),
					fmt.Sprintf("arn:aws:s3:::%s/*", bucket),
				},
			},
		},
	}

	data, err := json.Marshal(policy)
	if err != nil {
		return "", fmt.Errorf("failed to marshal bucket policy: %w", err)
	}
	return string(data), nil
}

// ProvisionBucket creates the versioned, developer-scoped workflow bucket.
// Any failure degrades: the bucket reference stays absent and the pipeline
// continues.
func (p *Provisioner) ProvisionBucket(ctx *provisioning.Context) {
	bucket := naming.Bucket(ctx.Request.Email, ctx.Clients.AccountID)
	region := ctx.Config.Organization.Region

	provisioning.LogResourceCreating(ctx.Observer, p.Name(), "bucket", bucket)

	if err := ctx.Clients.Objects.CreateBucket(ctx, bucket, region); err != nil {
		ctx.State.Warnf(ctx.Observer, p.Name(), "could not create workflow bucket %s: %v", bucket, err)
		return
	}

	if err := ctx.Clients.Objects.EnableVersioning(ctx, bucket); err != nil {
		ctx.State.Warnf(ctx.Observer, p.Name(), "could not enable versioning on %s: %v", bucket, err)
		return
	}

	policy, err := developerBucketPolicy(bucket, ctx.Clients.AccountID, ctx.State.Username)
	if err != nil {
		ctx.State.Warnf(ctx.Observer, p.Name(), "could not render bucket policy for %s: %v", bucket, err)
		return
	}
	if err := ctx.Clients.Objects.PutBucketPolicy(ctx, bucket, policy); err != nil {
		ctx.State.Warnf(ctx.Observer, p.Name(), "could not attach policy to %s: %v", bucket, err)
		return
	}

	provisioning.LogResourceCreated(ctx.Observer, p.Name(), "bucket", bucket, region)
	ctx.State.Bucket = bucket
}
