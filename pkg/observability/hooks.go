// Package observability provides hooks for metrics, tracing, and logging.
//
// The chart engine itself never logs. Instead it reports what a render pass
// did through the hooks registered here, and the sinks report what they
// encoded. The defaults do nothing; the CLI installs hooks that log at debug
// level.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetRenderHooks(&myRenderHooks{})
//	    observability.SetSinkHooks(&mySinkHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Render().OnRenderStart(ctx, area.Width, area.Height, len(slices))
//	// ... draw ...
//	observability.Render().OnRenderComplete(ctx, stats)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Render Hooks
// =============================================================================

// RenderStats summarizes one render pass.
type RenderStats struct {
	Width, Height int
	Resolution    string
	Slices        int

	// ChartCells is the number of cells that received a pie glyph.
	ChartCells int
	// LegendEntries is the number of legend lines drawn.
	LegendEntries int
	// LegendOmitted is set when a legend was requested but did not fit.
	LegendOmitted bool

	Duration time.Duration
}

// RenderHooks receives events from the chart composer.
type RenderHooks interface {
	OnRenderStart(ctx context.Context, width, height, slices int)
	OnRenderComplete(ctx context.Context, stats RenderStats)
}

// =============================================================================
// Sink Hooks
// =============================================================================

// SinkHooks receives events from output encoders.
type SinkHooks interface {
	// OnEncode records an encoded frame of size bytes in the given format.
	OnEncode(ctx context.Context, format string, size int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnRenderStart(context.Context, int, int, int)  {}
func (NoopRenderHooks) OnRenderComplete(context.Context, RenderStats) {}

// NoopSinkHooks is a no-op implementation of SinkHooks.
type NoopSinkHooks struct{}

func (NoopSinkHooks) OnEncode(context.Context, string, int, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	renderHooks RenderHooks = NoopRenderHooks{}
	sinkHooks   SinkHooks   = NoopSinkHooks{}
	hooksMu     sync.RWMutex
)

// SetRenderHooks registers custom render hooks.
// This should be called once at application startup before any rendering.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// SetSinkHooks registers custom sink hooks.
// This should be called once at application startup before any encoding.
func SetSinkHooks(h SinkHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		sinkHooks = h
	}
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Sink returns the registered sink hooks.
func Sink() SinkHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return sinkHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	renderHooks = NoopRenderHooks{}
	sinkHooks = NoopSinkHooks{}
}
