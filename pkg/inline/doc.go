// Package inline renders model explanations as self-contained HTML snippets
// for notebook and dashboard hosts.
//
// # Overview
//
// Rendering is a chain of format translations:
//
//	explain.Explanation → Object → JSON → <script> markup → display.Sink
//
// Each visualization an explanation produces becomes a [Frame] tagged
// "none", "plotly" or "html". Frames are gathered into an [Object] together
// with the explanation's selector table. The object is serialized into a
// script that hands it to the bundled front-end ("interpret-inline") along
// with a DOM element id and a default selection key.
//
// # Script bundle
//
// The front-end bundle is read from [AssetPath] inside the renderer's asset
// filesystem on every call. Its contents are opaque and embedded verbatim.
// The bundle is defined only once per [Session]: the first render prepends
// an initialization script, later renders emit only the container and loader.
//
//	r := inline.New(
//	    inline.WithAssetDir("/opt/interpret/static"),
//	    inline.WithLogger(logger),
//	)
//	err := r.Render(ctx, explanation, inline.WithDefaultKey(0))
//
// # Failures
//
// Bad visualizations never fail a render: unsupported ones become an
// in-place error page and a debug log line. Rendering several explanations
// at once is not supported and yields a fixed error object. A missing or
// unreadable script bundle is returned as an [errors.ErrCodeAssetRead] error.
//
// [errors.ErrCodeAssetRead]: github.com/matzehuels/vizinline/pkg/errors.ErrCodeAssetRead
package inline
