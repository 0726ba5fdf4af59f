// Package doctor runs fail-closed connectivity probes against the AWS
// service endpoints onboarding depends on. DNS-only checks keep the probes
// usable from restricted networks where outbound HTTP is blocked.
package doctor
