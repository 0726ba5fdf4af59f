package doctor

import (
	"context"
	"fmt"
	"net"
	"time"
)

// Check statuses.
const (
	StatusPass = "pass"
	StatusWarn = "warn"
	StatusFail = "fail"
)

const dnsTimeout = 10 * time.Second

// CheckResult is a single diagnostic probe outcome.
type CheckResult struct {
	Name    string `json:"name"`
	Status  string `json:"status"`
	Message string `json:"message"`
	Fix     string `json:"fix,omitempty"`
}

// Output is the JSON document produced by --json.
type Output struct {
	Region string        `json:"region"`
	Checks []CheckResult `json:"checks"`
}

// HasFailures reports whether any check failed.
func (o Output) HasFailures() bool {
	for _, c := range o.Checks {
		if c.Status == StatusFail {
			return true
		}
	}
	return false
}

// HasWarnings reports whether any check warned.
func (o Output) HasWarnings() bool {
	for _, c := range o.Checks {
		if c.Status == StatusWarn {
			return true
		}
	}
	return false
}

// resolver is swapped in tests.
var resolver = func(ctx context.Context, host string) error {
	lctx, cancel := context.WithTimeout(ctx, dnsTimeout)
	defer cancel()

	_, err := net.DefaultResolver.LookupHost(lctx, host)
	return err
}

// endpoints lists the regional service hosts onboarding depends on.
// The Budgets API is global and served from us-east-1.
func endpoints(region string) []struct{ name, host string } {
	return []struct{ name, host string }{
		{"Cognito IDP", fmt.Sprintf("cognito-idp.%s.amazonaws.com", region)},
		{"S3", fmt.Sprintf("s3.%s.amazonaws.com", region)},
		{"KMS", fmt.Sprintf("kms.%s.amazonaws.com", region)},
		{"CloudWatch Logs", fmt.Sprintf("logs.%s.amazonaws.com", region)},
		{"Budgets", "budgets.amazonaws.com"},
		{"STS", fmt.Sprintf("sts.%s.amazonaws.com", region)},
	}
}

// Run executes all diagnostic probes for a region.
func Run(ctx context.Context, region string) Output {
	out := Output{Region: region}

	if region == "" {
		out.Checks = append(out.Checks, CheckResult{
			Name:    "Region",
			Status:  StatusFail,
			Message: "no region configured",
			Fix:     "set organization.region in the config file or export AWS_REGION",
		})
		return out
	}

	for _, ep := range endpoints(region) {
		name := fmt.Sprintf("DNS - %s", ep.name)
		if err := resolver(ctx, ep.host); err != nil {
			out.Checks = append(out.Checks, CheckResult{
				Name:    name,
				Status:  StatusFail,
				Message: fmt.Sprintf("failed to resolve %s: %v", ep.host, err),
				Fix:     "check internet connectivity and DNS settings",
			})
			continue
		}
		out.Checks = append(out.Checks, CheckResult{
			Name:    name,
			Status:  StatusPass,
			Message: fmt.Sprintf("resolved %s", ep.host),
		})
	}

	return out
}
