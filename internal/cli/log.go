package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/termpie/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Rendered 60x20 chart (2ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// =============================================================================
// Observability
// =============================================================================

// logHooks reports render and encode events at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnRenderStart(_ context.Context, width, height, slices int) {
	h.logger.Debug("render", "width", width, "height", height, "slices", slices)
}

func (h logHooks) OnRenderComplete(_ context.Context, s observability.RenderStats) {
	h.logger.Debug("rendered",
		"resolution", s.Resolution,
		"chart_cells", s.ChartCells,
		"legend_entries", s.LegendEntries,
		"duration", s.Duration.Round(time.Microsecond))
	if s.LegendOmitted {
		h.logger.Debug("legend omitted: area too small to fit every label")
	}
}

func (h logHooks) OnEncode(_ context.Context, format string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("encode failed", "format", format, "err", err)
		return
	}
	h.logger.Debug("encoded", "format", format, "bytes", size, "duration", d.Round(time.Microsecond))
}
