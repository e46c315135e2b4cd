package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/matzehuels/termpie/pkg/chart"
	"github.com/matzehuels/termpie/pkg/errors"
	"github.com/matzehuels/termpie/pkg/grid"
	"github.com/matzehuels/termpie/pkg/sink"
)

// maxScale bounds --scale; the PNG is width*7*scale by height*13*scale pixels.
const maxScale = 8

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	chartFlags
	width   int    // grid width in cells
	height  int    // grid height in cells
	format  string // output format: ansi, plain, png, json
	output  string // output file path; stdout when empty
	scale   int    // PNG pixel scale
	noColor bool   // force monochrome ANSI output
}

// renderCommand creates the render command. It draws one frame of a chart
// into a width x height grid and writes it in the requested format.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{width: defaultWidth, height: defaultHeight, scale: 1}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a pie chart to ANSI text, plain text, PNG or JSON",
		Example: `  termpie render languages.toml
  termpie render -s Rust=45:red -s Go=30:blue -s Python=75:green --high-res
  termpie render languages.toml --border rounded --title "Languages" -o chart.png`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			format, err := opts.resolveFormat(cmd)
			if err != nil {
				return err
			}
			ch, err := opts.loadChart(cmd, path)
			if err != nil {
				return err
			}
			return c.runRender(cmd.Context(), cmd, ch, format, &opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().IntVarP(&opts.width, "width", "W", opts.width, "grid width in cells")
	cmd.Flags().IntVarP(&opts.height, "height", "H", opts.height, "grid height in cells")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: ansi (default), plain, png, json")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().IntVar(&opts.scale, "scale", opts.scale, "pixel scale for PNG output (1-8)")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "write ANSI output without colors")
	registerFlagCompletions(cmd)

	return cmd
}

// resolveFormat picks the output format from --format, or from the output
// file's extension when --format is not set.
func (o *renderOpts) resolveFormat(cmd *cobra.Command) (sink.Format, error) {
	if cmd.Flags().Changed("format") || o.output == "" {
		return sink.ParseFormat(o.format)
	}
	return formatFromExt(o.output), nil
}

func formatFromExt(path string) sink.Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return sink.FormatPNG
	case ".json":
		return sink.FormatJSON
	case ".txt":
		return sink.FormatPlain
	}
	return sink.FormatANSI
}

func (c *CLI) runRender(ctx context.Context, cmd *cobra.Command, ch *chart.Chart, format sink.Format, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	if err := errors.ValidateDimensions(opts.width, opts.height); err != nil {
		return err
	}
	if opts.scale < 1 || opts.scale > maxScale {
		return errors.New(errors.ErrCodeInvalidOption, "scale must be between 1 and %d, got %d", maxScale, opts.scale)
	}

	prog := newProgress(logger)
	buf := grid.NewBuffer(grid.NewRect(0, 0, opts.width, opts.height))
	res := ch.RenderContext(ctx, buf, buf.Area())
	if res.LegendOmitted {
		logger.Warn("legend omitted: grid too small to fit every label", "width", opts.width, "height", opts.height)
	}

	enc := sink.Encoder{
		Renderer: newRenderer(opts),
		PNG:      []sink.PNGOption{sink.WithScale(opts.scale)},
	}

	if opts.output == "" {
		if format.Binary() && isTerminal(cmd) {
			return errors.New(errors.ErrCodeInvalidOption, "refusing to write %s to a terminal; use --output", format)
		}
		if err := enc.Encode(ctx, cmd.OutOrStdout(), buf, format); err != nil {
			return err
		}
		prog.done("Rendered chart")
		return nil
	}

	var out bytes.Buffer
	if err := enc.Encode(ctx, &out, buf, format); err != nil {
		return err
	}
	if err := os.WriteFile(opts.output, out.Bytes(), 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", opts.output)
	}
	prog.done("Rendered chart")
	printSuccess(cmd.OutOrStdout(), "Rendered %dx%d %s chart", opts.width, opts.height, format)
	printFile(cmd.OutOrStdout(), opts.output)
	return nil
}

// newRenderer returns the lipgloss renderer for ANSI output. Files always
// get true color; stdout keeps the detected profile.
func newRenderer(opts *renderOpts) *lipgloss.Renderer {
	switch {
	case opts.noColor:
		r := lipgloss.NewRenderer(os.Stdout)
		r.SetColorProfile(termenv.Ascii)
		return r
	case opts.output != "":
		r := lipgloss.NewRenderer(os.Stdout)
		r.SetColorProfile(termenv.TrueColor)
		return r
	}
	return nil
}

// isTerminal reports whether cmd writes to a character device.
func isTerminal(cmd *cobra.Command) bool {
	f, ok := cmd.OutOrStdout().(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}
