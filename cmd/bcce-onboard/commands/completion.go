package commands

import (
	"os"

	"github.com/spf13/cobra"
)

// Completion returns the completion command for shell autocompletion.
func Completion() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for bcce-onboard.

To load completions:

Bash:
  $ source <(bcce-onboard completion bash)
  # To load completions for each session, execute once:
  # Linux:
  $ bcce-onboard completion bash > /etc/bash_completion.d/bcce-onboard
  # macOS:
  $ bcce-onboard completion bash > $(brew --prefix)/etc/bash_completion.d/bcce-onboard

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. Execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc
  # To load completions for each session, execute once:
  $ bcce-onboard completion zsh > "${fpath[1]}/_bcce-onboard"
  # You will need to start a new shell for this setup to take effect.

Fish:
  $ bcce-onboard completion fish | source
  # To load completions for each session, execute once:
  $ bcce-onboard completion fish > ~/.config/fish/completions/bcce-onboard.fish

PowerShell:
  PS> bcce-onboard completion powershell | Out-String | Invoke-Expression
  # To load completions for every new session, run:
  PS> bcce-onboard completion powershell > bcce-onboard.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}
	return cmd
}
