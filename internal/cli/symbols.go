package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/termpie/pkg/symbols"
)

// symbolsCommand lists the named pie glyphs and legend markers.
func (c *CLI) symbolsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "symbols",
		Short: "List the named pie glyphs and legend markers",
		Long: `List the names accepted by --glyph and --marker and by the glyph and
legend.marker keys of chart files. Any other single-cell glyph may be given
literally.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			printSymbols(w, "Pie glyphs", symbols.PieGlyphs)
			fmt.Fprintln(w)
			printSymbols(w, "Legend markers", symbols.Markers)
			return nil
		},
	}
}

func printSymbols(w io.Writer, heading string, t symbols.Table) {
	names := t.Names()
	rows := make([][]string, len(names))
	for i, name := range names {
		rows[i] = []string{name, t[name], fmt.Sprintf("U+%04X", []rune(t[name])[0])}
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("NAME", "GLYPH", "CODE POINT").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1: // header
				return headerStyle
			case col == 2:
				return cellStyle.Foreground(colorGray)
			}
			return cellStyle
		})

	fmt.Fprintln(w, StyleTitle.Render(heading))
	fmt.Fprintln(w, tbl.Render())
}
