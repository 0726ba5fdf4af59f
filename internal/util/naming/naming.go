package naming

import (
	"fmt"
	"strings"
)

// Naming functions for per-developer governance resources.
// All BCCE resources follow consistent naming patterns derived from the
// developer's email address, so a developer's footprint can be identified
// and cleaned up without any extra bookkeeping.

// Username derives the identity-store username from an email address.
// The derivation is pure and deterministic: '@' and '.' map to '-'.
func Username(email string) string {
	r := strings.NewReplacer("@", "-", ".", "-")
	return r.Replace(email)
}

// Bucket returns the per-developer workflow bucket name. The account
// discriminator keeps the name globally unique across AWS accounts.
func Bucket(email, accountID string) string {
	discriminator := accountID
	if len(discriminator) > 8 {
		discriminator = discriminator[:8]
	}
	return fmt.Sprintf("bcce-%s-%s", Username(email), discriminator)
}

// Budget returns the individual monthly budget name.
func Budget(email string) string {
	return fmt.Sprintf("BCCE-%s", Username(email))
}

// Group returns the department+tier identity group name.
func Group(department, tier string) string {
	return fmt.Sprintf("%s-%s", department, tier)
}

// LogGroup returns the CloudWatch log group path for a developer.
func LogGroup(email string) string {
	return fmt.Sprintf("/bcce/developer/%s", Username(email))
}

// MetricNamespace returns the CloudWatch metric namespace for an organization.
func MetricNamespace(organization string) string {
	return fmt.Sprintf("BCCE/%s", organization)
}

// Dashboard returns the per-developer dashboard name.
func Dashboard(email string) string {
	return fmt.Sprintf("BCCE-%s", Username(email))
}

// UserPrefix returns the per-developer key prefix in the analytics bucket.
func UserPrefix(email string) string {
	return fmt.Sprintf("users/%s", Username(email))
}

// AnalyticsConfigKey returns the analytics configuration object key.
func AnalyticsConfigKey(email string) string {
	return fmt.Sprintf("configs/users/%s/analytics-config.json", Username(email))
}
