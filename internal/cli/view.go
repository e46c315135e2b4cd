package cli

import (
	"fmt"
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/termpie/pkg/chart"
	"github.com/matzehuels/termpie/pkg/grid"
	"github.com/matzehuels/termpie/pkg/legend"
	"github.com/matzehuels/termpie/pkg/observability"
	"github.com/matzehuels/termpie/pkg/pie"
	"github.com/matzehuels/termpie/pkg/raster"
	"github.com/matzehuels/termpie/pkg/sink"
)

const (
	frameInterval = 50 * time.Millisecond
	phaseStep     = 0.08
	// amplitude stays below 1 so animated values never go negative.
	amplitude = 0.5
)

// viewCommand creates the view command: an interactive, animated chart sized
// to the terminal window.
func (c *CLI) viewCommand() *cobra.Command {
	var (
		flags    chartFlags
		noAnim   bool
		interval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "view [file]",
		Short: "Show a live pie chart in the terminal",
		Long: `Show a pie chart that fills the terminal window and follows resizes.

Keys:
  h          toggle high resolution
  p          cycle legend position
  l          cycle legend layout
  a          cycle legend alignment
  space      pause or resume the animation
  q, esc     quit`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			ch, err := flags.loadChart(cmd, path)
			if err != nil {
				return err
			}

			// Per-frame debug logs would draw over the alternate screen.
			observability.Reset()
			loggerFromContext(cmd.Context()).Debug("starting viewer", "slices", len(ch.Slices()))

			m := newViewModel(ch, !noAnim, interval)
			p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			_, err = p.Run()
			return err
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&noAnim, "no-animate", false, "show the values as given, without animation")
	cmd.Flags().DurationVar(&interval, "interval", frameInterval, "time between animation frames")
	registerFlagCompletions(cmd)

	return cmd
}

// =============================================================================
// viewModel - Animated chart
// =============================================================================

type tickMsg time.Time

// viewModel is the bubbletea model of the view command. Every frame is an
// independent render of the chart into a fresh buffer.
type viewModel struct {
	chart    *chart.Chart
	base     []pie.Slice
	width    int
	height   int
	phase    float64
	animate  bool
	paused   bool
	interval time.Duration
}

func newViewModel(ch *chart.Chart, animate bool, interval time.Duration) viewModel {
	if interval <= 0 {
		interval = frameInterval
	}
	return viewModel{
		chart:    ch,
		base:     ch.Slices(),
		animate:  animate,
		interval: interval,
	}
}

func (m viewModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m viewModel) Init() tea.Cmd {
	if !m.animate {
		return nil
	}
	return m.tick()
}

func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tickMsg:
		if !m.paused {
			m.phase += phaseStep
		}
		return m, m.tick()
	case tea.KeyMsg:
		opts := m.chart.Options()
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "h":
			m.chart = m.chart.With(chart.WithHighResolution(opts.Resolution != raster.HighDensity))
		case "p":
			m.chart = m.chart.With(chart.WithLegendPosition(next(legend.Positions, opts.Legend.Position)))
		case "l":
			m.chart = m.chart.With(chart.WithLegendStacking(next(legend.Stackings, opts.Legend.Stacking)))
		case "a":
			m.chart = m.chart.With(chart.WithLegendAlignment(next(legend.Alignments, opts.Legend.Alignment)))
		case " ":
			m.paused = !m.paused
		}
	}
	return m, nil
}

func (m viewModel) View() string {
	if m.width <= 0 || m.height <= 1 {
		return ""
	}
	buf := grid.NewBuffer(grid.NewRect(0, 0, m.width, m.height-1))
	m.frame().Render(buf, buf.Area())
	return sink.RenderANSI(buf) + "\n" + m.status()
}

// frame returns the chart with the slice values of the current phase.
func (m viewModel) frame() *chart.Chart {
	if !m.animate {
		return m.chart
	}
	return m.chart.WithSlices(animate(m.base, m.phase))
}

func (m viewModel) status() string {
	opts := m.chart.Options()
	state := "playing"
	switch {
	case !m.animate:
		state = "static"
	case m.paused:
		state = "paused"
	}
	line := fmt.Sprintf("h %s · p %s · l %s · a %s · space %s · q quit",
		opts.Resolution, opts.Legend.Position, opts.Legend.Stacking, opts.Legend.Alignment, state)
	return StyleDim.Inline(true).MaxWidth(m.width).Render(line)
}

// animate scales each value by a sine of the phase, shifted per slice so
// that the slices grow and shrink in turn.
func animate(base []pie.Slice, phase float64) []pie.Slice {
	out := make([]pie.Slice, len(base))
	n := float64(len(base))
	for i, s := range base {
		shift := 2 * math.Pi * float64(i) / n
		s.Value = s.Weight() * (1 + amplitude*math.Sin(phase+shift))
		out[i] = s
	}
	return out
}

// next returns the element after cur in list, wrapping around.
func next[T comparable](list []T, cur T) T {
	for i, v := range list {
		if v == cur {
			return list[(i+1)%len(list)]
		}
	}
	return list[0]
}

var _ tea.Model = viewModel{}
