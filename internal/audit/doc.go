// Package audit records onboarding events for compliance tracking. Every
// completed run produces a JSON event, logged locally and stored in the
// analytics bucket under a date-partitioned key.
package audit
