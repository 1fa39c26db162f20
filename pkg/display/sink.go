package display

import (
	"context"
	"encoding/json"
	"io"
	"slices"

	"github.com/matzehuels/vizinline/pkg/errors"
)

// MIMEHTML is the MIME type under which notebook sinks publish markup.
const MIMEHTML = "text/html"

// EnvDatabricks is the environment marker that selects the host sink.
const EnvDatabricks = "databricks"

// Sink displays a rendered HTML snippet.
type Sink interface {
	Display(ctx context.Context, html string) error
}

// Func adapts a function to [Sink].
type Func func(ctx context.Context, html string) error

// Display calls f.
func (f Func) Display(ctx context.Context, html string) error { return f(ctx, html) }

// =============================================================================
// Notebook
// =============================================================================

// Notebook writes one display_data message per call, newline-delimited.
type Notebook struct {
	w io.Writer
}

// NewNotebook creates a notebook sink writing to w.
func NewNotebook(w io.Writer) *Notebook { return &Notebook{w: w} }

// DisplayData is the content of a Jupyter display_data message.
type DisplayData struct {
	Data     map[string]string `json:"data"`
	Metadata map[string]any    `json:"metadata"`
}

// Display publishes html under the text/html MIME type.
func (n *Notebook) Display(ctx context.Context, html string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := DisplayData{
		Data:     map[string]string{MIMEHTML: html},
		Metadata: map[string]any{},
	}
	if err := json.NewEncoder(n.w).Encode(msg); err != nil {
		return errors.Wrap(errors.ErrCodeDisplay, err, "write display_data")
	}
	return nil
}

// =============================================================================
// Writer
// =============================================================================

// Writer writes raw HTML.
type Writer struct {
	w io.Writer
}

// NewWriter creates a sink writing raw HTML to w.
func NewWriter(w io.Writer) *Writer { return &Writer{w: w} }

// Display writes html followed by a newline.
func (s *Writer) Display(ctx context.Context, html string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := io.WriteString(s.w, html+"\n"); err != nil {
		return errors.Wrap(errors.ErrCodeDisplay, err, "write html")
	}
	return nil
}

// =============================================================================
// Selection
// =============================================================================

// ForEnvironments returns host when envs contains [EnvDatabricks] and
// notebook otherwise.
func ForEnvironments(envs []string, notebook, host Sink) Sink {
	if slices.Contains(envs, EnvDatabricks) {
		return host
	}
	return notebook
}

var (
	_ Sink = Func(nil)
	_ Sink = (*Notebook)(nil)
	_ Sink = (*Writer)(nil)
)
