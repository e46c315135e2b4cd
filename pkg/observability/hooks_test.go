package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	r := NoopRenderHooks{}
	r.OnRenderStart(ctx, 60, 20, 3)
	r.OnRenderComplete(ctx, RenderStats{Width: 60, Height: 20, Slices: 3, Duration: time.Millisecond})

	s := NoopSinkHooks{}
	s.OnEncode(ctx, "png", 1024, time.Millisecond, nil)
	s.OnEncode(ctx, "json", 0, 0, errors.New("boom"))
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Render() should return NoopRenderHooks by default")
	}
	if _, ok := Sink().(NoopSinkHooks); !ok {
		t.Error("Sink() should return NoopSinkHooks by default")
	}

	customRender := &testRenderHooks{}
	SetRenderHooks(customRender)
	if Render() != customRender {
		t.Error("SetRenderHooks should set custom hooks")
	}

	customSink := &testSinkHooks{}
	SetSinkHooks(customSink)
	if Sink() != customSink {
		t.Error("SetSinkHooks should set custom hooks")
	}

	Render().OnRenderComplete(context.Background(), RenderStats{ChartCells: 42})
	if customRender.last.ChartCells != 42 {
		t.Errorf("custom hook got ChartCells = %d, want 42", customRender.last.ChartCells)
	}

	// Reset and verify
	Reset()
	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Reset() should restore NoopRenderHooks")
	}
	if _, ok := Sink().(NoopSinkHooks); !ok {
		t.Error("Reset() should restore NoopSinkHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testRenderHooks{}
	SetRenderHooks(custom)

	// Setting nil should be ignored
	SetRenderHooks(nil)
	SetSinkHooks(nil)

	if Render() != custom {
		t.Error("SetRenderHooks(nil) should be ignored")
	}
	if _, ok := Sink().(NoopSinkHooks); !ok {
		t.Error("SetSinkHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testRenderHooks struct {
	NoopRenderHooks
	last RenderStats
}

func (h *testRenderHooks) OnRenderComplete(_ context.Context, stats RenderStats) { h.last = stats }

type testSinkHooks struct{ NoopSinkHooks }
