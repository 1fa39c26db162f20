package display

import (
	"context"
	"sync"

	"github.com/matzehuels/vizinline/pkg/errors"
)

// DatabricksFunction is the global display function Databricks notebooks
// define.
const DatabricksFunction = "displayHTML"

// Globals is a registry of host-provided display functions, keyed by the
// name the host gives them. It is safe for concurrent use.
type Globals struct {
	mu    sync.RWMutex
	funcs map[string]func(string) error
}

// NewGlobals creates an empty registry.
func NewGlobals() *Globals {
	return &Globals{funcs: make(map[string]func(string) error)}
}

// Define registers fn under name, replacing any previous definition.
func (g *Globals) Define(name string, fn func(string) error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.funcs[name] = fn
}

// Lookup returns the function registered under name.
func (g *Globals) Lookup(name string) (func(string) error, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	fn, ok := g.funcs[name]
	return fn, ok
}

// HostFunc displays HTML by calling a host global by name. The name is
// resolved on every call so hosts may define the function late.
type HostFunc struct {
	globals *Globals
	name    string
}

// NewHostFunc creates a sink that calls the global registered as name.
func NewHostFunc(globals *Globals, name string) *HostFunc {
	if name == "" {
		name = DatabricksFunction
	}
	return &HostFunc{globals: globals, name: name}
}

// Name returns the global function name the sink calls.
func (h *HostFunc) Name() string { return h.name }

// Display calls the host function with html.
func (h *HostFunc) Display(ctx context.Context, html string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if h.globals == nil {
		return errors.New(errors.ErrCodeSinkNotFound, "host function %s is not defined", h.name)
	}
	fn, ok := h.globals.Lookup(h.name)
	if !ok || fn == nil {
		return errors.New(errors.ErrCodeSinkNotFound, "host function %s is not defined", h.name)
	}
	if err := fn(html); err != nil {
		return errors.Wrap(errors.ErrCodeDisplay, err, "%s", h.name)
	}
	return nil
}

var _ Sink = (*HostFunc)(nil)
