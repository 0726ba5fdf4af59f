package handlers

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/bcce/onboard/internal/config"
	"github.com/bcce/onboard/internal/provisioning"
)

// Palette shared by the styled command output.
var (
	colorGreen  = lipgloss.Color("#22c55e")
	colorYellow = lipgloss.Color("#eab308")
	colorBlue   = lipgloss.Color("#3b82f6")
	colorDim    = lipgloss.Color("#6b7280")
	colorWhite  = lipgloss.Color("#f9fafb")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBlue)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	okStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	warnStyle = lipgloss.NewStyle().
			Foreground(colorYellow)
)

func isInteractiveTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// renderOnboardSummary produces the styled post-onboarding summary.
func renderOnboardSummary(cfg *config.Config, req *provisioning.Request, state *provisioning.State) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(fmt.Sprintf("  Onboarded %s", req.Email)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  " + strings.Repeat("═", 40)))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("  Identity"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "    Username:    %s\n", state.Username)
	fmt.Fprintf(&b, "    Group:       %s\n", state.GroupName)
	fmt.Fprintf(&b, "    Tier:        %s\n", req.AccessTier)
	fmt.Fprintf(&b, "    Department:  %s\n", req.Department)

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("  Resources"))
	b.WriteString("\n")
	renderResourceLine(&b, "Bucket", state.Bucket)
	renderResourceLine(&b, "KMS key", state.Key.ID)
	renderResourceLine(&b, "Log group", state.LogGroup)
	if state.Budget != nil {
		fmt.Fprintf(&b, "    %-11s %s\n", "Budget:", okStyle.Render(
			fmt.Sprintf("%s ($%g/mo, alerts at 80%% and 100%%)", state.Budget.Name, state.Budget.LimitUSD)))
	} else {
		fmt.Fprintf(&b, "    %-11s %s\n", "Budget:", warnStyle.Render("not created"))
	}

	if state.Artifacts != nil && len(state.Artifacts.Files) > 0 {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render("  Files"))
		b.WriteString("\n")
		for _, f := range state.Artifacts.Files {
			fmt.Fprintf(&b, "    %s\n", f)
		}
	}

	if len(state.Warnings) > 0 {
		b.WriteString("\n")
		b.WriteString(warnStyle.Render(fmt.Sprintf("  %d warning(s)", len(state.Warnings))))
		b.WriteString("\n")
		for _, w := range state.Warnings {
			b.WriteString(warnStyle.Render(fmt.Sprintf("    - %s", w)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("  Next Steps"))
	b.WriteString("\n")
	b.WriteString("    1. Share the generated files with the developer\n")
	b.WriteString("    2. Have them run: source bcce-env.sh\n")
	fmt.Fprintf(&b, "    3. Support: bcce-support@%s\n", cfg.Organization.Domain)
	b.WriteString("\n")

	return b.String()
}

func renderResourceLine(b *strings.Builder, name, value string) {
	label := name + ":"
	if value == "" {
		fmt.Fprintf(b, "    %-11s %s\n", label, warnStyle.Render("not created"))
		return
	}
	fmt.Fprintf(b, "    %-11s %s\n", label, okStyle.Render(value))
}
