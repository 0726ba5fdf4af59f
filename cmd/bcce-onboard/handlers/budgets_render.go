package handlers

import (
	"fmt"
	"strings"
)

// renderBudgetSummary produces a lipgloss-styled budget table string.
func renderBudgetSummary(summary *budgetSummary) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(fmt.Sprintf("  BCCE budgets: %s", summary.Organization)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  " + strings.Repeat("═", 40)))
	b.WriteString("\n")

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("  Access Tiers"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  " + strings.Repeat("─", 60)))
	b.WriteString("\n")

	b.WriteString(dimStyle.Render(fmt.Sprintf("  %-12s %10s %10s  %s", "Tier", "Budget/mo", "Retention", "Models")))
	b.WriteString("\n")

	for _, row := range summary.Tiers {
		fmt.Fprintf(&b, "  %-12s $%9.2f %8dd  %s\n",
			row.Tier, row.LimitUSD, row.RetentionDays, strings.Join(row.Models, ", "))
		if row.RoleARN == "" {
			b.WriteString(warnStyle.Render("               no group role configured, tier cannot be onboarded"))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("  Departments"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  " + strings.Repeat("─", 60)))
	b.WriteString("\n")

	b.WriteString(dimStyle.Render(fmt.Sprintf("  %-16s %10s  %s", "Department", "Budget/mo", "Tiers")))
	b.WriteString("\n")

	for _, dept := range summary.Departments {
		tiers := make([]string, len(dept.AccessTiers))
		for i, t := range dept.AccessTiers {
			tiers[i] = string(t)
		}
		fmt.Fprintf(&b, "  %-16s $%9.2f  %s\n", dept.Name, dept.BudgetUSD, strings.Join(tiers, ", "))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  Note: individual budgets alert at 80% and 100% of actual spend."))
	b.WriteString("\n")

	return b.String()
}
