// Package aws provides thin clients over the AWS services used by BCCE
// onboarding: Cognito (identity store), S3 (workflow and analytics
// buckets), KMS (per-developer encryption keys), Budgets (individual cost
// budgets), CloudWatch Logs (developer log groups), and STS (account
// identity).
//
// Each service is exposed through a narrow interface consumed by the
// provisioning phases, so tests can substitute mocks without touching the
// SDK. Error classification helpers check the SDK's typed errors first and
// fall back to smithy API error codes.
package aws
