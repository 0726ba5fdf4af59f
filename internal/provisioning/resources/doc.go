// Package resources provisions the per-developer governance resources: a
// versioned workflow bucket with a developer-scoped access policy, a KMS
// encryption key tagged with owner and department, and a CloudWatch log
// group with tier-based retention.
package resources
