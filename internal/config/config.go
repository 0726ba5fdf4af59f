package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"encoding/json"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Tier is a developer access tier. The tier governs model access, the
// individual budget ceiling, and log retention.
type Tier string

const (
	TierSandbox     Tier = "sandbox"
	TierIntegration Tier = "integration"
	TierProduction  Tier = "production"
)

// Tiers lists all valid access tiers in ascending order of capability.
func Tiers() []Tier {
	return []Tier{TierSandbox, TierIntegration, TierProduction}
}

// Valid reports whether t is a known access tier.
func (t Tier) Valid() bool {
	switch t {
	case TierSandbox, TierIntegration, TierProduction:
		return true
	}
	return false
}

// Config holds the organization configuration for onboarding runs.
// It is loaded once per invocation and treated as read-only.
type Config struct {
	Organization   Organization          `mapstructure:"organization" yaml:"organization" json:"organization"`
	Authentication Authentication        `mapstructure:"authentication" yaml:"authentication" json:"authentication"`
	Governance     Governance            `mapstructure:"governance" yaml:"governance" json:"governance"`
	Departments    map[string]Department `mapstructure:"departments" yaml:"departments" json:"departments"`
}

// Organization identifies the deploying organization.
type Organization struct {
	Name        string `mapstructure:"name" yaml:"name" json:"name"`
	Region      string `mapstructure:"region" yaml:"region" json:"region"`
	Environment string `mapstructure:"environment" yaml:"environment" json:"environment"`
	Domain      string `mapstructure:"domain" yaml:"domain" json:"domain"`
}

// Authentication holds the identity-store integration settings.
type Authentication struct {
	UserPoolID string `mapstructure:"user_pool_id" yaml:"user_pool_id" json:"user_pool_id"`
	DefaultIDP string `mapstructure:"default_idp" yaml:"default_idp" json:"default_idp"`
}

// Governance holds the shared BCCE governance resources and tier tables.
type Governance struct {
	AnalyticsBucket string `mapstructure:"analytics_bucket" yaml:"analytics_bucket" json:"analytics_bucket"`
	KMSKeyID        string `mapstructure:"kms_key_id" yaml:"kms_key_id" json:"kms_key_id"`

	// TierBudgetLimits maps access tier to the individual monthly budget
	// ceiling in USD. Missing tiers fall back to the built-in defaults.
	TierBudgetLimits map[Tier]float64 `mapstructure:"tier_budget_limits" yaml:"tier_budget_limits" json:"tier_budget_limits"`

	// TierGroupRoles maps access tier to the IAM role ARN bound to the
	// department+tier identity group. A tier without a mapping cannot be
	// onboarded.
	TierGroupRoles map[Tier]string `mapstructure:"tier_group_roles" yaml:"tier_group_roles" json:"tier_group_roles"`

	// LogRetentionDays maps access tier to log group retention.
	LogRetentionDays map[Tier]int `mapstructure:"log_retention_days" yaml:"log_retention_days" json:"log_retention_days"`
}

// Department is an organizational grouping with its own budget and
// allowed access tiers.
type Department struct {
	BudgetLimit  float64 `mapstructure:"budget_limit" yaml:"budget_limit" json:"budget_limit"`
	AccessTiers  []Tier  `mapstructure:"access_tiers" yaml:"access_tiers" json:"access_tiers"`
	ManagerEmail string  `mapstructure:"manager_email" yaml:"manager_email" json:"manager_email"`
}

// AllowsTier reports whether the department permits the given access tier.
func (d Department) AllowsTier(tier Tier) bool {
	for _, t := range d.AccessTiers {
		if t == tier {
			return true
		}
	}
	return false
}

// Default tier tables, used when the governance section leaves them unset.
var (
	defaultBudgetLimits = map[Tier]float64{
		TierSandbox:     100,
		TierIntegration: 500,
		TierProduction:  1000,
	}

	defaultLogRetention = map[Tier]int{
		TierSandbox:     30,
		TierIntegration: 90,
		TierProduction:  365,
	}
)

// BudgetLimitForTier returns the individual monthly budget limit for a tier.
func (c *Config) BudgetLimitForTier(tier Tier) float64 {
	if limit, ok := c.Governance.TierBudgetLimits[tier]; ok {
		return limit
	}
	return defaultBudgetLimits[tier]
}

// LogRetentionForTier returns the log group retention in days for a tier.
func (c *Config) LogRetentionForTier(tier Tier) int {
	if days, ok := c.Governance.LogRetentionDays[tier]; ok {
		return days
	}
	return defaultLogRetention[tier]
}

// GroupRoleForTier returns the IAM role ARN for a tier's identity group.
// The second return is false when no mapping exists.
func (c *Config) GroupRoleForTier(tier Tier) (string, bool) {
	arn, ok := c.Governance.TierGroupRoles[tier]
	return arn, ok && arn != ""
}

// LoadFile reads and parses the organization configuration from a YAML or
// JSON file, selected by extension.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var raw map[string]interface{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to unmarshal json: %w", err)
		}
	default:
		// Fall back to YAML, which is a superset of JSON for our purposes.
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}

	var cfg Config
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	// Validate
	if cfg.Organization.Name == "" {
		return nil, fmt.Errorf("organization.name is required")
	}
	if cfg.Organization.Region == "" {
		return nil, fmt.Errorf("organization.region is required")
	}
	if len(cfg.Departments) == 0 {
		return nil, fmt.Errorf("at least one department is required")
	}

	return &cfg, nil
}

// WriteYAML writes the configuration to a YAML file.
func WriteYAML(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
