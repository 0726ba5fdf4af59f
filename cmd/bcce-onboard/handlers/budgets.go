package handlers

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/bcce/onboard/internal/config"
	"github.com/bcce/onboard/internal/provisioning/emit"
)

// tierRow is one line of the tier budget table.
type tierRow struct {
	Tier          config.Tier `json:"tier"`
	LimitUSD      float64     `json:"limit_usd"`
	RetentionDays int         `json:"retention_days"`
	Models        []string    `json:"models"`
	RoleARN       string      `json:"role_arn,omitempty"`
}

// departmentRow is one line of the department budget table.
type departmentRow struct {
	Name         string        `json:"name"`
	BudgetUSD    float64       `json:"budget_usd"`
	AccessTiers  []config.Tier `json:"access_tiers"`
	ManagerEmail string        `json:"manager_email,omitempty"`
}

// budgetSummary is the JSON document produced by --json.
type budgetSummary struct {
	Organization string          `json:"organization"`
	Tiers        []tierRow       `json:"tiers"`
	Departments  []departmentRow `json:"departments"`
}

// Budgets displays the tier budget limits and department budgets defined
// by the organization configuration.
func Budgets(configPath string, jsonOutput bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	summary := buildBudgetSummary(cfg)

	if jsonOutput {
		data, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal budget summary: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Print(renderBudgetSummary(summary))
	return nil
}

// buildBudgetSummary assembles the tier and department tables from config.
func buildBudgetSummary(cfg *config.Config) *budgetSummary {
	summary := &budgetSummary{Organization: cfg.Organization.Name}

	for _, tier := range config.Tiers() {
		role, _ := cfg.GroupRoleForTier(tier)
		summary.Tiers = append(summary.Tiers, tierRow{
			Tier:          tier,
			LimitUSD:      cfg.BudgetLimitForTier(tier),
			RetentionDays: cfg.LogRetentionForTier(tier),
			Models:        emit.ModelsForTier(tier),
			RoleARN:       role,
		})
	}

	names := make([]string, 0, len(cfg.Departments))
	for name := range cfg.Departments {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		dept := cfg.Departments[name]
		summary.Departments = append(summary.Departments, departmentRow{
			Name:         name,
			BudgetUSD:    dept.BudgetLimit,
			AccessTiers:  dept.AccessTiers,
			ManagerEmail: dept.ManagerEmail,
		})
	}

	return summary
}
