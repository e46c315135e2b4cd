package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/termpie/pkg/border"
	"github.com/matzehuels/termpie/pkg/legend"
	"github.com/matzehuels/termpie/pkg/sink"
	"github.com/matzehuels/termpie/pkg/symbols"
	"github.com/matzehuels/termpie/pkg/title"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for termpie.

Bash:
  $ source <(termpie completion bash)

Zsh:
  $ termpie completion zsh > "${fpath[1]}/_termpie"

Fish:
  $ termpie completion fish | source

PowerShell:
  PS> termpie completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(w)
			case "zsh":
				return cmd.Root().GenZshCompletion(w)
			case "fish":
				return cmd.Root().GenFishCompletion(w, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(w)
			}
			return nil
		},
	}
}

// registerFlagCompletions offers the accepted names for the enum-valued
// chart flags. Flags that cmd does not define are skipped.
func registerFlagCompletions(cmd *cobra.Command) {
	values := map[string][]string{
		"border":          append([]string{border.None.String()}, names(border.Styles)...),
		"title-style":     names(title.Styles),
		"legend-position": names(legend.Positions),
		"legend-layout":   names(legend.Stackings),
		"legend-align":    names(legend.Alignments),
		"glyph":           symbols.PieGlyphs.Names(),
		"marker":          symbols.Markers.Names(),
		"format":          names(sink.Formats),
	}
	for flag, vals := range values {
		if cmd.Flags().Lookup(flag) == nil {
			continue
		}
		_ = cmd.RegisterFlagCompletionFunc(flag, cobra.FixedCompletions(vals, cobra.ShellCompDirectiveNoFileComp))
	}
}

func names[T interface{ String() string }](list []T) []string {
	out := make([]string, len(list))
	for i, v := range list {
		out[i] = v.String()
	}
	return out
}
