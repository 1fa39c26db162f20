package inline

import (
	"bytes"
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/vizinline/pkg/display"
)

const testBundle = `(function(){ window['interpret-inline'] = { RenderApp: function(){} }; })();`

func testAssets() fstest.MapFS {
	return fstest.MapFS{AssetPath: {Data: []byte(testBundle)}}
}

// captureSink records every snippet it is handed.
type captureSink struct {
	got []string
}

func (c *captureSink) Display(_ context.Context, html string) error {
	c.got = append(c.got, html)
	return nil
}

func (c *captureSink) last(t *testing.T) string {
	t.Helper()
	require.NotEmpty(t, c.got, "sink received nothing")
	return c.got[len(c.got)-1]
}

var _ display.Sink = (*captureSink)(nil)

func newTestRenderer(t *testing.T, opts ...Option) (*Renderer, *captureSink, *bytes.Buffer) {
	t.Helper()
	sink := &captureSink{}
	var logs bytes.Buffer
	base := []Option{
		WithAssets(testAssets()),
		WithSession(NewSession()),
		WithLogger(log.NewWithOptions(&logs, log.Options{Level: log.DebugLevel})),
		WithNotebookSink(sink),
	}
	return New(append(base, opts...)...), sink, &logs
}

// payloadFrom extracts the object passed to RenderApp from a body script.
func payloadFrom(t *testing.T, html, elementID string, defaultKey int) Object {
	t.Helper()
	prefix := `interpretInline.RenderApp("` + elementID + `", `
	suffix := ", " + strconv.Itoa(defaultKey) + ");"

	start := strings.Index(html, prefix)
	require.GreaterOrEqual(t, start, 0, "RenderApp call not found for %s", elementID)
	rest := html[start+len(prefix):]
	end := strings.LastIndex(rest, suffix)
	require.GreaterOrEqual(t, end, 0, "RenderApp default key %d not found", defaultKey)

	var obj Object
	require.NoError(t, json.Unmarshal([]byte(rest[:end]), &obj))
	return obj
}

// decodeHTMLFrame returns the markup inside an html frame.
func decodeHTMLFrame(t *testing.T, f Frame) string {
	t.Helper()
	require.Equal(t, FrameHTML, f.Type)
	uri, ok := f.Figure.(string)
	require.True(t, ok, "figure is %T, want string", f.Figure)
	markup, err := DecodeDataURI(uri)
	require.NoError(t, err)
	return markup
}
