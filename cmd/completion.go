package cmd

import (
	"sort"

	"github.com/gabrielgad/crab/internal/state"
	"github.com/spf13/cobra"
)

// completionCmd generates shell completion scripts.
func completionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate completion scripts for your shell.

  # Bash (add to ~/.bashrc)
  eval "$(crab completion bash)"

  # Zsh (add to ~/.zshrc)
  eval "$(crab completion zsh)"

  # Fish
  crab completion fish | source

  # PowerShell
  crab completion powershell | Out-String | Invoke-Expression`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		Run: func(cmd *cobra.Command, args []string) {
			switch args[0] {
			case "bash":
				_ = rootCmd.GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				_ = rootCmd.GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				_ = rootCmd.GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				_ = rootCmd.GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
		},
	}

	return cmd
}

// toolCompletionFunc provides dynamic completion for catalog tool names.
func toolCompletionFunc(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	cat := loadCatalog()
	var completions []string
	for _, t := range cat.All() {
		completions = append(completions, t.Name+"\t"+t.Description)
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}

// managedToolCompletionFunc completes tools crab itself installed.
func managedToolCompletionFunc(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	s := state.Load()
	var completions []string
	for name := range s.Installed {
		completions = append(completions, name)
	}
	sort.Strings(completions)
	return completions, cobra.ShellCompDirectiveNoFileComp
}
