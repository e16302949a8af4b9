// Package observability provides hooks for metrics and tracing of
// generator runs.
//
// The package lets a host program instrument the pipeline without adding
// hard dependencies on a specific backend. Hooks are registered once at
// startup and default to no-ops.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    // ... run application
//	}
//
// The pipeline calls the hooks around every stage:
//
//	observability.Pipeline().OnComputeStart(ctx, spec)
//	// ... compute the pattern ...
//	observability.Pipeline().OnComputeComplete(ctx, folds, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the generator pipeline. Every Start
// event is followed by exactly one Complete event, carrying the stage error
// if it failed.
type PipelineHooks interface {
	// Compute events. spec is the camera description, e.g.
	// "front 96×96 mm, rear 145×145 mm, draw 300 mm".
	OnComputeStart(ctx context.Context, spec string)
	OnComputeComplete(ctx context.Context, folds int, duration time.Duration, err error)

	// Layout events
	OnLayoutStart(ctx context.Context, separateFaces bool, page string)
	OnLayoutComplete(ctx context.Context, drawings int, duration time.Duration, err error)

	// Export events
	OnExportStart(ctx context.Context, format string, drawings int)
	OnExportComplete(ctx context.Context, format string, files int, duration time.Duration, err error)
}

// FileHooks receives one event per file the pipeline commits to disk.
type FileHooks interface {
	OnFileWritten(ctx context.Context, path string, size int64)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnComputeStart(context.Context, string)                             {}
func (NoopPipelineHooks) OnComputeComplete(context.Context, int, time.Duration, error)       {}
func (NoopPipelineHooks) OnLayoutStart(context.Context, bool, string)                        {}
func (NoopPipelineHooks) OnLayoutComplete(context.Context, int, time.Duration, error)        {}
func (NoopPipelineHooks) OnExportStart(context.Context, string, int)                         {}
func (NoopPipelineHooks) OnExportComplete(context.Context, string, int, time.Duration, error) {}

// NoopFileHooks is a no-op implementation of FileHooks.
type NoopFileHooks struct{}

func (NoopFileHooks) OnFileWritten(context.Context, string, int64) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	fileHooks     FileHooks     = NoopFileHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks. A nil h is ignored.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetFileHooks registers custom file hooks. A nil h is ignored.
func SetFileHooks(h FileHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		fileHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// File returns the registered file hooks.
func File() FileHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return fileHooks
}

// Reset restores all hooks to their no-op defaults.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
	fileHooks = NoopFileHooks{}
}
