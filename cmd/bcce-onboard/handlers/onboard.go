// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command definitions
// in the commands package. Handlers are framework-agnostic and can be tested
// independently of the CLI framework.
package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/bcce/onboard/internal/audit"
	"github.com/bcce/onboard/internal/config"
	platformaws "github.com/bcce/onboard/internal/platform/aws"
	"github.com/bcce/onboard/internal/provisioning"
	"github.com/bcce/onboard/internal/provisioning/budget"
	"github.com/bcce/onboard/internal/provisioning/emit"
	"github.com/bcce/onboard/internal/provisioning/identity"
	"github.com/bcce/onboard/internal/provisioning/monitoring"
	"github.com/bcce/onboard/internal/provisioning/resources"
)

// defaultConfigFile is the config file looked up when no --config is given.
const defaultConfigFile = "bcce.yaml"

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// loadConfigFile loads the organization config from a file.
	loadConfigFile = config.LoadFile

	// fileExists checks if a file exists.
	fileExists = func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}

	// newClients builds the AWS service clients.
	newClients = func(ctx context.Context, region string) (*platformaws.Clients, error) {
		return platformaws.NewClients(ctx, region)
	}

	// runPhases executes the onboarding pipeline.
	runPhases = provisioning.RunPhases
)

// OnboardOptions carries the onboard command's flag values.
type OnboardOptions struct {
	ConfigPath   string
	Email        string
	Department   string
	Tier         string
	ManagerEmail string
	UseCase      string
	IDPProvider  string
	OutputDir    string
	DryRun       bool
}

// Onboard provisions a single developer through the full pipeline.
//
// The pipeline runs validation, identity creation, personal resources
// (bucket, key, log group), individual budget, monitoring declaration,
// artifact emission, and audit logging, in that order. Identity and key
// creation failures abort the run; secondary resources degrade to
// warnings collected on the final summary.
//
// With DryRun set, only the validation phase runs (including the
// duplicate-user check against the identity store) and nothing is
// created.
func Onboard(ctx context.Context, opts OnboardOptions) error {
	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	req := &provisioning.Request{
		Email:        opts.Email,
		Department:   opts.Department,
		AccessTier:   config.Tier(opts.Tier),
		ManagerEmail: opts.ManagerEmail,
		UseCase:      opts.UseCase,
		IDPProvider:  opts.IDPProvider,
	}
	if req.IDPProvider == "" {
		req.IDPProvider = cfg.Authentication.DefaultIDP
	}
	if req.IDPProvider == "" {
		req.IDPProvider = "cognito"
	}

	clients, err := newClients(ctx, cfg.Organization.Region)
	if err != nil {
		return fmt.Errorf("failed to initialize AWS clients: %w", err)
	}

	pctx := provisioning.NewContext(ctx, cfg, req, clients)

	if opts.DryRun {
		if err := runPhases(pctx, []provisioning.Phase{provisioning.NewValidationPhase()}); err != nil {
			return err
		}
		fmt.Printf("Dry run: request for %s is valid, nothing was created.\n", pctx.State.Username)
		return nil
	}

	phases := []provisioning.Phase{
		provisioning.NewValidationPhase(),
		identity.NewProvisioner(),
		resources.NewProvisioner(),
		budget.NewProvisioner(),
		monitoring.NewProvisioner(),
		emit.NewProvisioner(opts.OutputDir),
		audit.NewPhase(),
	}

	if err := runPhases(pctx, phases); err != nil {
		return err
	}

	fmt.Print(renderOnboardSummary(cfg, req, pctx.State))
	return nil
}

// loadConfig loads the organization configuration.
// If configPath is empty, it looks for bcce.yaml in the current directory.
func loadConfig(configPath string) (*config.Config, error) {
	if configPath == "" {
		if !fileExists(defaultConfigFile) {
			return nil, fmt.Errorf("no config file found: %s\nRun 'bcce-onboard init' to create one", defaultConfigFile)
		}
		configPath = defaultConfigFile
	}

	cfg, err := loadConfigFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}
