package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
)

// cognitoAPI is the subset of the Cognito IDP client we call.
type cognitoAPI interface {
	AdminGetUser(ctx context.Context, params *cognitoidentityprovider.AdminGetUserInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.AdminGetUserOutput, error)
	AdminCreateUser(ctx context.Context, params *cognitoidentityprovider.AdminCreateUserInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.AdminCreateUserOutput, error)
	AdminAddUserToGroup(ctx context.Context, params *cognitoidentityprovider.AdminAddUserToGroupInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.AdminAddUserToGroupOutput, error)
	CreateGroup(ctx context.Context, params *cognitoidentityprovider.CreateGroupInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.CreateGroupOutput, error)
}

// CognitoClient implements IdentityStore against a Cognito user pool.
type CognitoClient struct {
	api cognitoAPI
}

// NewCognitoClient wraps an existing Cognito IDP client.
func NewCognitoClient(api *cognitoidentityprovider.Client) *CognitoClient {
	return &CognitoClient{api: api}
}

// UserExists reports whether the username exists in the user pool.
func (c *CognitoClient) UserExists(ctx context.Context, userPoolID, username string) (bool, error) {
	_, err := c.api.AdminGetUser(ctx, &cognitoidentityprovider.AdminGetUserInput{
		UserPoolId: aws.String(userPoolID),
		Username:   aws.String(username),
	})
	if err != nil {
		if IsUserNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to look up user %s: %w", username, err)
	}
	return true, nil
}

// CreateUser creates a user with the given attributes. The identity
// store's own welcome message is suppressed.
func (c *CognitoClient) CreateUser(ctx context.Context, userPoolID, username string, attributes map[string]string) (UserRef, error) {
	attrs := make([]types.AttributeType, 0, len(attributes))
	for name, value := range attributes {
		attrs = append(attrs, types.AttributeType{
			Name:  aws.String(name),
			Value: aws.String(value),
		})
	}

	out, err := c.api.AdminCreateUser(ctx, &cognitoidentityprovider.AdminCreateUserInput{
		UserPoolId:     aws.String(userPoolID),
		Username:       aws.String(username),
		UserAttributes: attrs,
		MessageAction:  types.MessageActionTypeSuppress,
	})
	if err != nil {
		return UserRef{}, fmt.Errorf("failed to create user %s: %w", username, err)
	}

	ref := UserRef{
		Username:   username,
		UserPoolID: userPoolID,
	}
	if out.User != nil {
		ref.Sub = aws.ToString(out.User.Username)
	}
	return ref, nil
}

// AddUserToGroup adds the user to a group in the pool.
func (c *CognitoClient) AddUserToGroup(ctx context.Context, userPoolID, username, group string) error {
	_, err := c.api.AdminAddUserToGroup(ctx, &cognitoidentityprovider.AdminAddUserToGroupInput{
		UserPoolId: aws.String(userPoolID),
		Username:   aws.String(username),
		GroupName:  aws.String(group),
	})
	if err != nil {
		return fmt.Errorf("failed to add user %s to group %s: %w", username, group, err)
	}
	return nil
}

// CreateGroup creates a group bound to an IAM role.
func (c *CognitoClient) CreateGroup(ctx context.Context, userPoolID, group, roleARN, description string) error {
	input := &cognitoidentityprovider.CreateGroupInput{
		UserPoolId:  aws.String(userPoolID),
		GroupName:   aws.String(group),
		Description: aws.String(description),
	}
	if roleARN != "" {
		input.RoleArn = aws.String(roleARN)
	}

	if _, err := c.api.CreateGroup(ctx, input); err != nil {
		return fmt.Errorf("failed to create group %s: %w", group, err)
	}
	return nil
}
