// Package identity provisions the developer's identity-store record:
// a Cognito user tagged with department, access tier, budget limit, and
// manager email, plus membership in the department+tier group bound to the
// tier's IAM role.
package identity
