package cli

import (
	"github.com/spf13/cobra"
)

// completionShells lists the shells cobra can generate scripts for.
var completionShells = []string{"bash", "zsh", "fish", "powershell"}

// completionCommand creates the completion command. Besides command names,
// the scripts complete the values of --format and --split and offer
// config files for --config.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate a completion script for bellows.

Once loaded, the shell completes subcommands and flag values:

  bellows generate --format <TAB>     svg  png  jpeg  webp  pdf
  bellows generate --split <TAB>      none  a4  a3
  bellows inspect --config <TAB>      *.toml  *.yaml  *.yml  *.json

Load it for the current session:

  bash:        source <(bellows completion bash)
  zsh:         source <(bellows completion zsh)
  fish:        bellows completion fish | source
  powershell:  bellows completion powershell | Out-String | Invoke-Expression

To load it for every session, write the script to your shell's completion
directory, e.g. "${fpath[1]}/_bellows" for zsh or
~/.config/fish/completions/bellows.fish for fish.`,
		DisableFlagsInUseLine: true,
		ValidArgs:             completionShells,
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}

	return cmd
}
