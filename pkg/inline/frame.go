package inline

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"html"

	"github.com/matzehuels/vizinline/pkg/errors"
	"github.com/matzehuels/vizinline/pkg/explain"
	"github.com/matzehuels/vizinline/pkg/observability"
)

// FrameType tags the payload of a [Frame].
type FrameType string

const (
	FrameNone   FrameType = "none"
	FramePlotly FrameType = "plotly"
	FrameHTML   FrameType = "html"
)

// Messages shown in place of visualizations that cannot be drawn.
const (
	UnsupportedMessage    = "This visualization is not yet supported in the cloud environment."
	UnserializableMessage = "This visualization could not be serialized."
)

// dataURIPrefix starts every html frame figure.
const dataURIPrefix = "data:text/html;base64,"

const errorPageTemplate = `
    <style>
    .center {
        position: absolute;
        left: 50%%;
        top: 50%%;
        -webkit-transform: translate(-50%%, -50%%);
        transform: translate(-50%%, -50%%);
    }
    </style>
    <div class='center'><h1>%s</h1></div>
    `

// Frame is a single renderable visualization.
//
// Figure is nil for [FrameNone], the chart JSON for [FramePlotly], and a
// base64 data URI string for [FrameHTML].
type Frame struct {
	Type   FrameType `json:"type"`
	Figure any       `json:"figure"`
}

// NoneFrame returns the frame for an absent visualization.
func NoneFrame() Frame { return Frame{Type: FrameNone} }

// HTMLFrame wraps markup in a data URI frame.
func HTMLFrame(markup string) Frame {
	return Frame{Type: FrameHTML, Figure: DataURI(markup)}
}

// BuildErrorFrame returns an html frame showing msg centered on the page.
func BuildErrorFrame(msg string) Frame {
	return HTMLFrame(ErrorPage(msg))
}

// ErrorPage returns the HTML page used for error frames. msg is escaped.
func ErrorPage(msg string) string {
	return fmt.Sprintf(errorPageTemplate, html.EscapeString(msg))
}

// DataURI encodes markup as a text/html base64 data URI.
func DataURI(markup string) string {
	return dataURIPrefix + base64.StdEncoding.EncodeToString([]byte(markup))
}

// DecodeDataURI reverses [DataURI].
func DecodeDataURI(uri string) (string, error) {
	if len(uri) < len(dataURIPrefix) || uri[:len(dataURIPrefix)] != dataURIPrefix {
		return "", errors.New(errors.ErrCodeInvalidFormat, "not a text/html base64 data uri")
	}
	b, err := base64.StdEncoding.DecodeString(uri[len(dataURIPrefix):])
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode data uri")
	}
	return string(b), nil
}

// BuildFrame classifies v and converts it into a frame. It never fails:
// unsupported or unserializable visualizations become error frames, and a
// chart without a figure is treated as no visualization.
func (r *Renderer) BuildFrame(ctx context.Context, v explain.Visualization) Frame {
	switch v := v.(type) {
	case nil, explain.None:
		return NoneFrame()
	case explain.Chart:
		if v.Figure == nil {
			return NoneFrame()
		}
		figure, err := json.Marshal(v.Figure)
		if err != nil {
			r.logger.Debug("Visualization cannot be serialized", "type", fmt.Sprintf("%T", v.Figure), "err", err)
			return BuildErrorFrame(UnserializableMessage)
		}
		return Frame{Type: FramePlotly, Figure: json.RawMessage(figure)}
	case explain.Markup:
		return HTMLFrame(v.HTML)
	case explain.Unsupported:
		r.logger.Debug("Visualization type cannot render", "type", v.Type)
		observability.Render().OnUnsupported(ctx, v.Type)
		return BuildErrorFrame(UnsupportedMessage)
	}
	return BuildErrorFrame(UnsupportedMessage)
}

// IsErrorFrame reports whether f is one of the frames BuildFrame substitutes
// for visualizations it cannot render.
func IsErrorFrame(f Frame) bool {
	if f.Type != FrameHTML {
		return false
	}
	uri, ok := f.Figure.(string)
	if !ok {
		return false
	}
	return uri == DataURI(ErrorPage(UnsupportedMessage)) || uri == DataURI(ErrorPage(UnserializableMessage))
}
