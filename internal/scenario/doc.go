// Package scenario runs scripted onboarding flows against an in-memory
// identity store and produces a JSON test report. The suite covers the
// expected developer personas and the rejection paths (disallowed tier,
// unknown department, duplicate user) without touching live services.
package scenario
