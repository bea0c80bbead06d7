package cmd

import (
	"github.com/spf13/cobra"
)

// completionCmd represents the completion command.
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for arbeitszeit.

To load completions:

Bash:
  $ source <(arbeitszeit completion bash)

  # To load completions for each session, execute once:
  $ arbeitszeit completion bash > /etc/bash_completion.d/arbeitszeit

Zsh:
  # To load completions for each session, execute once:
  $ arbeitszeit completion zsh > "${fpath[1]}/_arbeitszeit"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ arbeitszeit completion fish | source

  # To load completions for each session, execute once:
  $ arbeitszeit completion fish > ~/.config/fish/completions/arbeitszeit.fish
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(out)
		case "zsh":
			return rootCmd.GenZshCompletion(out)
		case "fish":
			return rootCmd.GenFishCompletion(out, true)
		}
		return nil
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.AddCommand(completionCmd)
}
