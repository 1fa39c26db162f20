package inline

import (
	"context"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/vizinline/pkg/display"
	"github.com/matzehuels/vizinline/pkg/errors"
	"github.com/matzehuels/vizinline/pkg/explain"
	"github.com/matzehuels/vizinline/pkg/observability"
)

// Renderer turns explanations into inline HTML and hands it to a sink.
// A Renderer is safe for concurrent use if its sinks are.
type Renderer struct {
	assets   fs.FS
	session  *Session
	logger   *log.Logger
	notebook display.Sink
	host     display.Sink
}

// Option configures a [Renderer].
type Option func(*Renderer)

// WithAssets sets the filesystem holding [AssetPath].
func WithAssets(assets fs.FS) Option { return func(r *Renderer) { r.assets = assets } }

// WithAssetDir reads the bundle from dir/lib/interpret-inline.js.
func WithAssetDir(dir string) Option { return func(r *Renderer) { r.assets = AssetDir(dir) } }

// WithSession tracks bundle initialization in s instead of [DefaultSession].
func WithSession(s *Session) Option { return func(r *Renderer) { r.session = s } }

// WithLogger sets the logger. The default discards output.
func WithLogger(l *log.Logger) Option { return func(r *Renderer) { r.logger = l } }

// WithNotebookSink sets the default sink. The default writes display_data
// messages to stdout.
func WithNotebookSink(s display.Sink) Option { return func(r *Renderer) { r.notebook = s } }

// WithHostSink sets the sink used when the caller reports a Databricks
// environment via [WithEnvironments].
func WithHostSink(s display.Sink) Option { return func(r *Renderer) { r.host = s } }

// New creates a renderer. Without options it reads the bundle relative to
// the working directory, shares [DefaultSession], and displays to stdout.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		assets:   AssetDir("."),
		session:  DefaultSession,
		logger:   log.New(io.Discard),
		notebook: display.NewNotebook(os.Stdout),
		host:     display.NewHostFunc(nil, display.DatabricksFunction),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Session returns the session tracking bundle initialization.
func (r *Renderer) Session() *Session { return r.session }

// =============================================================================
// Render options
// =============================================================================

// RenderOption configures a single render.
type RenderOption func(*renderConfig)

type renderConfig struct {
	elementID  string
	defaultKey int
	sink       display.Sink
	envs       []string
	envsSet    bool
}

// WithElementID uses id for the container div instead of a generated one.
func WithElementID(id string) RenderOption { return func(c *renderConfig) { c.elementID = id } }

// WithDefaultKey selects the specific visualization shown initially.
func WithDefaultKey(key int) RenderOption { return func(c *renderConfig) { c.defaultKey = key } }

// WithSink displays to s, ignoring environment markers.
func WithSink(s display.Sink) RenderOption { return func(c *renderConfig) { c.sink = s } }

// WithEnvironments picks the host sink when envs contains "databricks" and
// the notebook sink otherwise.
func WithEnvironments(envs ...string) RenderOption {
	return func(c *renderConfig) { c.envs = envs; c.envsSet = true }
}

func (r *Renderer) renderConfig(opts []RenderOption) renderConfig {
	c := renderConfig{defaultKey: DefaultKey}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func (r *Renderer) sinkFor(c renderConfig) display.Sink {
	if c.sink != nil {
		return c.sink
	}
	if c.envsSet {
		return display.ForEnvironments(c.envs, r.notebook, r.host)
	}
	return r.notebook
}

// =============================================================================
// Render
// =============================================================================

// Render displays e inline.
func (r *Renderer) Render(ctx context.Context, e explain.Explanation, opts ...RenderOption) error {
	if e == nil {
		return errors.New(errors.ErrCodeInvalidInput, "explanation is nil")
	}
	return r.display(ctx, e.Name(), func() Object { return r.BuildObject(ctx, e) }, opts)
}

// RenderDashboard displays several explanations at once. Hosted
// environments cannot show dashboards yet, so this always displays the
// dashboard-unsupported error object regardless of es.
func (r *Renderer) RenderDashboard(ctx context.Context, es []explain.Explanation, opts ...RenderOption) error {
	r.logger.Debug("Dashboard requested, rendering error object", "explanations", len(es))
	return r.display(ctx, ErrorObjectName, func() Object {
		return BuildErrorObject(DashboardUnsupportedMessage)
	}, opts)
}

// Compose joins m into the final snippet, prepending the initialization
// script the first time the session sees a render.
func (r *Renderer) Compose(m Markup) string {
	if r.session.MarkInitialized() {
		return m.Init + m.Body
	}
	return m.Body
}

func (r *Renderer) display(ctx context.Context, name string, build func() Object, opts []RenderOption) (err error) {
	start := time.Now()
	size := 0
	observability.Render().OnRenderStart(ctx, name)
	defer func() {
		observability.Render().OnRenderComplete(ctx, name, size, time.Since(start), err)
	}()

	c := r.renderConfig(opts)
	m, err := r.BuildMarkup(build(), c.elementID, c.defaultKey)
	if err != nil {
		return err
	}

	html := r.Compose(m)
	size = len(html)
	r.logger.Debug("Rendered explanation", "name", name, "element", m.ElementID, "bytes", size)

	sink := r.sinkFor(c)
	err = sink.Display(ctx, html)
	observability.Display().OnDisplay(ctx, sinkName(sink), size, err)
	if err != nil {
		if errors.GetCode(err) == "" {
			err = errors.Wrap(errors.ErrCodeDisplay, err, "display %s", name)
		}
		return err
	}
	return nil
}

func sinkName(s display.Sink) string {
	switch s := s.(type) {
	case *display.Notebook:
		return "notebook"
	case *display.HostFunc:
		return s.Name()
	case *display.Writer:
		return "writer"
	}
	return "custom"
}
