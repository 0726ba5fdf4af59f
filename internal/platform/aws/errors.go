package aws

import (
	"errors"

	budgettypes "github.com/aws/aws-sdk-go-v2/service/budgets/types"
	logtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs/types"
	cognitotypes "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// IsUserNotFound checks if the error indicates a missing identity-store user.
func IsUserNotFound(err error) bool {
	if err == nil {
		return false
	}

	var unf *cognitotypes.UserNotFoundException
	if errors.As(err, &unf) {
		return true
	}

	return hasAPIErrorCode(err, "UserNotFoundException")
}

// IsUsernameExists checks if the error indicates the username is taken.
func IsUsernameExists(err error) bool {
	if err == nil {
		return false
	}

	var uee *cognitotypes.UsernameExistsException
	if errors.As(err, &uee) {
		return true
	}

	return hasAPIErrorCode(err, "UsernameExistsException")
}

// IsGroupNotFound checks if the error indicates a missing identity group.
func IsGroupNotFound(err error) bool {
	if err == nil {
		return false
	}

	var rnf *cognitotypes.ResourceNotFoundException
	if errors.As(err, &rnf) {
		return true
	}

	return hasAPIErrorCode(err, "ResourceNotFoundException")
}

// IsBucketAlreadyOwnedByYou checks if the error indicates the bucket exists
// and is owned by us.
func IsBucketAlreadyOwnedByYou(err error) bool {
	if err == nil {
		return false
	}

	var baoby *s3types.BucketAlreadyOwnedByYou
	if errors.As(err, &baoby) {
		return true
	}

	var bae *s3types.BucketAlreadyExists
	if errors.As(err, &bae) {
		return true
	}

	return hasAPIErrorCode(err, "BucketAlreadyOwnedByYou", "BucketAlreadyExists")
}

// IsLogGroupExists checks if the error indicates the log group already exists.
func IsLogGroupExists(err error) bool {
	if err == nil {
		return false
	}

	var raee *logtypes.ResourceAlreadyExistsException
	if errors.As(err, &raee) {
		return true
	}

	return hasAPIErrorCode(err, "ResourceAlreadyExistsException")
}

// IsBudgetDuplicate checks if the error indicates the budget already exists.
func IsBudgetDuplicate(err error) bool {
	if err == nil {
		return false
	}

	var dup *budgettypes.DuplicateRecordException
	if errors.As(err, &dup) {
		return true
	}

	return hasAPIErrorCode(err, "DuplicateRecordException")
}

// hasAPIErrorCode falls back to API error code checking for responses that
// do not deserialize to the SDK's typed errors.
func hasAPIErrorCode(err error, codes ...string) bool {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	for _, code := range codes {
		if apiErr.ErrorCode() == code {
			return true
		}
	}
	return false
}
