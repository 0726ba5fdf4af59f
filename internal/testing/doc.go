// Package testing provides shared mocks, fixtures, and helpers used across
// the onboarding test suites.
package testing
