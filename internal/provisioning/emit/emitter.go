package emit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/bcce/onboard/internal/config"
	"github.com/bcce/onboard/internal/platform/aws"
	"github.com/bcce/onboard/internal/provisioning"
	"github.com/bcce/onboard/internal/util/naming"
)

// Artifact file names written into the output directory.
const (
	clientConfigFile   = "bcce-config.yaml"
	envFile            = "bcce-env.sh"
	gettingStartedFile = "GETTING_STARTED.md"
)

// tierModels maps access tier to the models it unlocks.
var tierModels = map[config.Tier][]string{
	config.TierSandbox:     {"claude-3-haiku"},
	config.TierIntegration: {"claude-3-haiku", "claude-3-5-sonnet"},
	config.TierProduction:  {"claude-3-haiku", "claude-3-5-sonnet", "claude-3-opus"},
}

// ModelsForTier returns the model identifiers a tier unlocks.
func ModelsForTier(tier config.Tier) []string {
	return tierModels[tier]
}

// clientConfig is the structured configuration consumed by the BCCE CLI.
type clientConfig struct {
	Profile        string             `yaml:"profile"`
	Authentication clientAuthSection  `yaml:"authentication"`
	Governance     clientGovSection   `yaml:"governance"`
}

type clientAuthSection struct {
	Method     string `yaml:"method"`
	Provider   string `yaml:"provider"`
	UserPoolID string `yaml:"user_pool_id"`
	Username   string `yaml:"username"`
	Region     string `yaml:"region"`
}

type clientGovSection struct {
	Enabled         bool    `yaml:"enabled"`
	AccessTier      string  `yaml:"access_tier"`
	Department      string  `yaml:"department"`
	BudgetLimit     float64 `yaml:"budget_limit"`
	WorkflowBucket  string  `yaml:"workflow_bucket,omitempty"`
	AnalyticsBucket string  `yaml:"analytics_bucket,omitempty"`
	KMSKeyID        string  `yaml:"kms_key_id,omitempty"`
	IndividualBudget string `yaml:"individual_budget,omitempty"`
}

// analyticsConfig is the JSON document stored in the analytics bucket.
type analyticsConfig struct {
	UserEmail        string `json:"user_email"`
	Department       string `json:"department"`
	AccessTier       string `json:"access_tier"`
	TrackingEnabled  bool   `json:"tracking_enabled"`
	MetricsNamespace string `json:"metrics_namespace"`
	AnalyticsBucket  string `json:"analytics_bucket,omitempty"`
	RetentionDays    int    `json:"retention_days"`
}

// Provisioner renders the developer-facing artifacts and persists them.
type Provisioner struct {
	outputDir string
}

// NewProvisioner creates a new emit provisioner writing into outputDir.
// An empty outputDir skips the local file writes.
func NewProvisioner(outputDir string) *Provisioner {
	return &Provisioner{outputDir: outputDir}
}

// Name implements the provisioning.Phase interface.
func (p *Provisioner) Name() string {
	return "emit"
}

// Provision implements the provisioning.Phase interface.
func (p *Provisioner) Provision(ctx *provisioning.Context) error {
	artifacts, err := Render(ctx.Config, ctx.Request, ctx.State, ctx.Now())
	if err != nil {
		return err
	}
	ctx.State.Artifacts = artifacts

	if p.outputDir != "" {
		if err := p.writeFiles(ctx, artifacts); err != nil {
			return err
		}
	}

	p.storeAnalyticsConfig(ctx)
	return nil
}

// Render builds all artifacts from the provisioning outputs. It is a pure
// function: identical inputs (including the timestamp) produce identical
// output.
func Render(cfg *config.Config, req *provisioning.Request, state *provisioning.State, now time.Time) (*provisioning.Artifacts, error) {
	cc := clientConfig{
		Profile: "default",
		Authentication: clientAuthSection{
			Method:     "cognito_oidc",
			Provider:   req.IDPProvider,
			UserPoolID: cfg.Authentication.UserPoolID,
			Username:   state.Username,
			Region:     cfg.Organization.Region,
		},
		Governance: clientGovSection{
			Enabled:         true,
			AccessTier:      string(req.AccessTier),
			Department:      req.Department,
			BudgetLimit:     state.BudgetLimit,
			WorkflowBucket:  state.Bucket,
			AnalyticsBucket: cfg.Governance.AnalyticsBucket,
			KMSKeyID:        state.Key.ID,
		},
	}
	if state.Budget != nil {
		cc.Governance.IndividualBudget = state.Budget.Name
	}

	configYAML, err := yaml.Marshal(cc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal client config: %w", err)
	}

	return &provisioning.Artifacts{
		ClientConfigYAML: string(configYAML),
		EnvBlock:         renderEnvBlock(cfg, req, state, now),
		GettingStarted:   renderGettingStarted(cfg, req, state),
	}, nil
}

// renderEnvBlock renders the shell-exportable environment configuration.
func renderEnvBlock(cfg *config.Config, req *provisioning.Request, state *provisioning.State, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# BCCE Developer Environment Configuration\n")
	fmt.Fprintf(&b, "# Generated on %s\n\n", now.UTC().Format(time.RFC3339))

	fmt.Fprintf(&b, "# Authentication\n")
	fmt.Fprintf(&b, "export COGNITO_USER_POOL_ID=%q\n", cfg.Authentication.UserPoolID)
	fmt.Fprintf(&b, "export COGNITO_USERNAME=%q\n", state.Username)
	fmt.Fprintf(&b, "export AWS_REGION=%q\n\n", cfg.Organization.Region)

	fmt.Fprintf(&b, "# BCCE Governance\n")
	fmt.Fprintf(&b, "export BCCE_ACCESS_TIER=%q\n", req.AccessTier)
	fmt.Fprintf(&b, "export BCCE_DEPARTMENT=%q\n", req.Department)
	fmt.Fprintf(&b, "export BCCE_DEVELOPER_EMAIL=%q\n", req.Email)
	fmt.Fprintf(&b, "export BCCE_S3_BUCKET=%q\n", state.Bucket)
	fmt.Fprintf(&b, "export BCCE_KMS_KEY_ID=%q\n", state.Key.ID)
	fmt.Fprintf(&b, "export BCCE_ANALYTICS_BUCKET=%q\n", cfg.Governance.AnalyticsBucket)
	fmt.Fprintf(&b, "export BCCE_BUDGET_LIMIT=%q\n\n", fmt.Sprintf("%g", state.BudgetLimit))

	fmt.Fprintf(&b, "# Usage tracking\n")
	fmt.Fprintf(&b, "export BCCE_ENABLE_ANALYTICS=\"true\"\n")
	fmt.Fprintf(&b, "export BCCE_BUDGET_ALERTS=\"true\"\n")

	return b.String()
}

// renderGettingStarted renders the onboarding guide.
func renderGettingStarted(cfg *config.Config, req *provisioning.Request, state *provisioning.State) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Welcome to BCCE at %s\n\n", cfg.Organization.Name)
	fmt.Fprintf(&b, "## Your Configuration\n\n")
	fmt.Fprintf(&b, "- Email: %s\n", req.Email)
	fmt.Fprintf(&b, "- Department: %s\n", req.Department)
	fmt.Fprintf(&b, "- Access tier: %s\n", req.AccessTier)
	fmt.Fprintf(&b, "- Username: %s\n\n", state.Username)

	fmt.Fprintf(&b, "## Quick Start\n\n")
	fmt.Fprintf(&b, "1. Source your environment: `source %s`\n", envFile)
	fmt.Fprintf(&b, "2. Verify the setup: `bcce doctor`\n")
	fmt.Fprintf(&b, "3. Authenticate with your enterprise SSO: `bcce auth`\n\n")

	fmt.Fprintf(&b, "## Available Models (%s tier)\n\n", req.AccessTier)
	for _, model := range tierModels[req.AccessTier] {
		fmt.Fprintf(&b, "- %s\n", model)
	}
	fmt.Fprintf(&b, "\n## Your Resources\n\n")
	fmt.Fprintf(&b, "- Workflow bucket: %s\n", orAbsent(state.Bucket))
	fmt.Fprintf(&b, "- Encryption key: %s\n", orAbsent(state.Key.ID))
	fmt.Fprintf(&b, "- Log group: %s\n", orAbsent(state.LogGroup))
	if state.Budget != nil {
		fmt.Fprintf(&b, "- Monthly budget: $%g (alerts at 80%% and 100%%)\n", state.Budget.LimitUSD)
	} else {
		fmt.Fprintf(&b, "- Monthly budget: not created\n")
	}

	fmt.Fprintf(&b, "\n## Support\n\n")
	fmt.Fprintf(&b, "- Email: bcce-support@%s\n", cfg.Organization.Domain)

	return b.String()
}

func orAbsent(s string) string {
	if s == "" {
		return "not created"
	}
	return s
}

// writeFiles persists the artifacts to the output directory.
func (p *Provisioner) writeFiles(ctx *provisioning.Context, artifacts *provisioning.Artifacts) error {
	if err := os.MkdirAll(p.outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	files := []struct{ name, content string }{
		{clientConfigFile, artifacts.ClientConfigYAML},
		{envFile, artifacts.EnvBlock},
		{gettingStartedFile, artifacts.GettingStarted},
	}

	for _, f := range files {
		path := filepath.Join(p.outputDir, f.name)
		if err := os.WriteFile(path, []byte(f.content), 0o600); err != nil {
			return fmt.Errorf("failed to write %s: %w", f.name, err)
		}
		artifacts.Files = append(artifacts.Files, path)
	}

	ctx.Observer.Printf("[emit] wrote %d artifacts to %s", len(files), p.outputDir)
	return nil
}

// storeAnalyticsConfig uploads the analytics tracking configuration to the
// analytics bucket. Soft: a missing bucket or upload failure is a warning.
func (p *Provisioner) storeAnalyticsConfig(ctx *provisioning.Context) {
	bucket := ctx.Config.Governance.AnalyticsBucket
	if bucket == "" {
		return
	}

	ac := analyticsConfig{
		UserEmail:        ctx.Request.Email,
		Department:       ctx.Request.Department,
		AccessTier:       string(ctx.Request.AccessTier),
		TrackingEnabled:  true,
		MetricsNamespace: naming.MetricNamespace(ctx.Config.Organization.Name),
		AnalyticsBucket:  bucket,
		RetentionDays:    ctx.Config.LogRetentionForTier(ctx.Request.AccessTier),
	}

	data, err := json.MarshalIndent(ac, "", "  ")
	if err != nil {
		ctx.State.Warnf(ctx.Observer, p.Name(), "could not marshal analytics config: %v", err)
		return
	}

	key := naming.AnalyticsConfigKey(ctx.Request.Email)
	opts := aws.PutObjectOptions{
		SSEKMSKeyID: ctx.Config.Governance.KMSKeyID,
		ContentType: "application/json",
		Tagging: fmt.Sprintf("BCCEUser=%s&Department=%s&AccessTier=%s",
			ctx.Request.Email, ctx.Request.Department, ctx.Request.AccessTier),
	}

	if err := ctx.Clients.Objects.PutObject(ctx, bucket, key, data, opts); err != nil {
		ctx.State.Warnf(ctx.Observer, p.Name(), "could not store analytics config: %v", err)
		return
	}

	ctx.Observer.Printf("[emit] analytics configuration stored at s3://%s/%s", bucket, key)
}
