// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers register hooks at startup
// to receive events about inline rendering and display dispatch.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetRenderHooks(&myRenderHooks{})
//	    // ... run application
//	}
//
// The renderer calls hooks to emit events:
//
//	observability.Render().OnRenderStart(ctx, name)
//	// ... build markup, display ...
//	observability.Render().OnRenderComplete(ctx, name, size, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Render Hooks
// =============================================================================

// RenderHooks receives events from the inline renderer.
type RenderHooks interface {
	// OnRenderStart records the start of a render for the named explanation.
	OnRenderStart(ctx context.Context, name string)

	// OnRenderComplete records a finished render with the size of the markup
	// handed to the display sink.
	OnRenderComplete(ctx context.Context, name string, size int, duration time.Duration, err error)

	// OnUnsupported records a visualization that degraded to an error frame.
	OnUnsupported(ctx context.Context, typeName string)
}

// =============================================================================
// Display Hooks
// =============================================================================

// DisplayHooks receives events from display sinks.
type DisplayHooks interface {
	// OnDisplay records markup delivered to a sink.
	OnDisplay(ctx context.Context, sink string, size int, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnRenderStart(context.Context, string)                               {}
func (NoopRenderHooks) OnRenderComplete(context.Context, string, int, time.Duration, error) {}
func (NoopRenderHooks) OnUnsupported(context.Context, string)                               {}

// NoopDisplayHooks is a no-op implementation of DisplayHooks.
type NoopDisplayHooks struct{}

func (NoopDisplayHooks) OnDisplay(context.Context, string, int, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	renderHooks  RenderHooks  = NoopRenderHooks{}
	displayHooks DisplayHooks = NoopDisplayHooks{}
	hooksMu      sync.RWMutex
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

// SetDisplayHooks registers custom display hooks.
func SetDisplayHooks(h DisplayHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		displayHooks = h
	}
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Display returns the registered display hooks.
func Display() DisplayHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return displayHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	renderHooks = NoopRenderHooks{}
	displayHooks = NoopDisplayHooks{}
}
