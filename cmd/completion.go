package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/performai/pcfg/internal/pcfg/variant"
)

// validVariantNames returns the game codes for shell completion
func validVariantNames(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var names []string
	for _, n := range variant.Names() {
		if strings.HasPrefix(strings.ToUpper(n), strings.ToUpper(toComplete)) {
			names = append(names, n)
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

// completionCmd represents the completion command
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion script for pcfg.

To load completions:

Bash:

  $ source <(pcfg completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ pcfg completion bash > /etc/bash_completion.d/pcfg
  # macOS:
  $ pcfg completion bash > $(brew --prefix)/etc/bash_completion.d/pcfg

Zsh:

  # If shell completion is not already enabled in your environment,
  # you will need to enable it.  You can execute the following once:

  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ pcfg completion zsh > "${fpath[1]}/_pcfg"

  # You will need to start a new shell for this setup to take effect.

Fish:

  $ pcfg completion fish | source

  # To load completions for each session, execute once:
  $ pcfg completion fish > ~/.config/fish/completions/pcfg.fish

PowerShell:

  PS> pcfg completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> pcfg completion powershell > pcfg.ps1
  # and source this file from your PowerShell profile.
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	Run: func(cmd *cobra.Command, args []string) {
		var err error
		switch args[0] {
		case "bash":
			err = cmd.Root().GenBashCompletion(os.Stdout)
		case "zsh":
			err = cmd.Root().GenZshCompletion(os.Stdout)
		case "fish":
			err = cmd.Root().GenFishCompletion(os.Stdout, true)
		case "powershell":
			err = cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
		}
		if err != nil {
			cmd.PrintErrf("Error generating completion: %v\n", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
