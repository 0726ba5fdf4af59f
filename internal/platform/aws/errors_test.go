package aws

import (
	"errors"
	"fmt"
	"testing"

	budgettypes "github.com/aws/aws-sdk-go-v2/service/budgets/types"
	logtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs/types"
	cognitotypes "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
)

func TestErrorClassification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		check   func(error) bool
		matches []error
		misses  []error
	}{
		{
			name:  "user not found",
			check: IsUserNotFound,
			matches: []error{
				&cognitotypes.UserNotFoundException{},
				&smithy.GenericAPIError{Code: "UserNotFoundException"},
				fmt.Errorf("wrapped: %w", &cognitotypes.UserNotFoundException{}),
			},
			misses: []error{
				nil,
				errors.New("user not found"),
				&cognitotypes.UsernameExistsException{},
			},
		},
		{
			name:  "username exists",
			check: IsUsernameExists,
			matches: []error{
				&cognitotypes.UsernameExistsException{},
				&smithy.GenericAPIError{Code: "UsernameExistsException"},
			},
			misses: []error{nil, &cognitotypes.UserNotFoundException{}},
		},
		{
			name:  "group not found",
			check: IsGroupNotFound,
			matches: []error{
				&cognitotypes.ResourceNotFoundException{},
				&smithy.GenericAPIError{Code: "ResourceNotFoundException"},
			},
			misses: []error{nil, errors.New("no group")},
		},
		{
			name:  "bucket already owned",
			check: IsBucketAlreadyOwnedByYou,
			matches: []error{
				&s3types.BucketAlreadyOwnedByYou{},
				&s3types.BucketAlreadyExists{},
				&smithy.GenericAPIError{Code: "BucketAlreadyOwnedByYou"},
				&smithy.GenericAPIError{Code: "BucketAlreadyExists"},
			},
			misses: []error{nil, &smithy.GenericAPIError{Code: "AccessDenied"}},
		},
		{
			name:  "log group exists",
			check: IsLogGroupExists,
			matches: []error{
				&logtypes.ResourceAlreadyExistsException{},
				&smithy.GenericAPIError{Code: "ResourceAlreadyExistsException"},
			},
			misses: []error{nil, errors.New("exists")},
		},
		{
			name:  "budget duplicate",
			check: IsBudgetDuplicate,
			matches: []error{
				&budgettypes.DuplicateRecordException{},
				&smithy.GenericAPIError{Code: "DuplicateRecordException"},
			},
			misses: []error{nil, &budgettypes.AccessDeniedException{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			for _, err := range tt.matches {
				assert.True(t, tt.check(err), "expected match for %v", err)
			}
			for _, err := range tt.misses {
				assert.False(t, tt.check(err), "expected no match for %v", err)
			}
		})
	}
}
