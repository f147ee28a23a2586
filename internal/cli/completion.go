package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/svgdoc/pkg/scene"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for svgdoc.

Completions cover subcommands and flags, offer only .toml files for the
scene argument of render and inspect, and list the known units for --unit.

Bash:
  $ source <(svgdoc completion bash)

Zsh:
  $ svgdoc completion zsh > "${fpath[1]}/_svgdoc"

Fish:
  $ svgdoc completion fish > ~/.config/fish/completions/svgdoc.fish

PowerShell:
  PS> svgdoc completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
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
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

// completeScene offers scene files for the single positional argument.
func completeScene(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return []string{sceneExt[1:]}, cobra.ShellCompDirectiveFilterFileExt
}

// completeUnit offers the accepted canvas units.
func completeUnit(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return scene.Units, cobra.ShellCompDirectiveNoFileComp
}
