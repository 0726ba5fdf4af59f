// Package provisioning provides shared types, interfaces, and orchestration
// for developer onboarding.
//
// # Subpackages
//
//   - identity/ — Cognito user, attributes, department+tier group
//   - resources/ — workflow bucket, encryption key, log group
//   - budget/ — individual monthly cost budget with 80%/100% notifications
//   - monitoring/ — metric namespace and dashboard declaration
//   - emit/ — developer-facing configuration artifacts
//
// # Core Types
//
// Context carries configuration, the onboarding request, platform clients,
// accumulated state, and the observer. Phase defines an onboarding step with
// Name() and Provision() methods. State accumulates results from each phase
// (user reference, bucket, key, budget, artifacts).
//
// Failure policy: validation and identity failures abort the run, as does
// encryption-key creation. Secondary governance resources (bucket, log
// group, budget, analytics writes) degrade to absent fields and the
// pipeline continues.
package provisioning
