// Package observability provides hooks for instrumenting scene rendering.
//
// The library packages never import a metrics or tracing backend. Instead
// the binary registers a [RenderHooks] implementation at startup and the
// render path reports load, build, and write events through [Render].
//
//	func main() {
//	    observability.SetRenderHooks(&myHooks{})
//	    // ... run application
//	}
//
// Callers emit events:
//
//	start := time.Now()
//	doc, err := s.Build()
//	observability.Render().OnBuild(ctx, elements, time.Since(start), err)
package observability

import (
	"context"
	"sync"
	"time"
)

// RenderHooks receives events from the scene rendering path.
type RenderHooks interface {
	// OnSceneLoad records a scene read from source ("-" for stdin).
	OnSceneLoad(ctx context.Context, source string, elements int, err error)

	// OnBuild records building a document from a scene.
	OnBuild(ctx context.Context, elements int, duration time.Duration, err error)

	// OnWrite records finalizing a document into a sink.
	OnWrite(ctx context.Context, path string, size int, duration time.Duration, err error)
}

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnSceneLoad(context.Context, string, int, error)            {}
func (NoopRenderHooks) OnBuild(context.Context, int, time.Duration, error)         {}
func (NoopRenderHooks) OnWrite(context.Context, string, int, time.Duration, error) {}

var (
	renderHooks RenderHooks = NoopRenderHooks{}
	hooksMu     sync.RWMutex
)

// SetRenderHooks registers custom render hooks. A nil h is ignored.
// This should be called once at application startup.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Reset restores the no-op default.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	renderHooks = NoopRenderHooks{}
}
