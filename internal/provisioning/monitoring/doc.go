// Package monitoring declares the per-developer metric namespace,
// dimensions, and dashboard name. The declaration is informational; alarm
// and dashboard creation is owned by the platform deployment, not by
// onboarding.
package monitoring
