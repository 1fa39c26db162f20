// Package display delivers rendered HTML to the host environment.
//
// # Overview
//
// A [Sink] receives the final markup string produced by the inline renderer
// and hands it to whatever displays it. This package provides sinks for:
//
//   - [Notebook]: Jupyter-style display_data messages with a text/html bundle
//   - [HostFunc]: a function the host defines globally, such as Databricks'
//     displayHTML
//   - [Writer]: raw HTML to any io.Writer (files, stdout)
//   - [Func]: adapts a plain function
//
// Callers that still identify their environment by marker strings can use
// [ForEnvironments] to pick between a notebook sink and a host sink.
//
//	sink := display.ForEnvironments(envs,
//	    display.NewNotebook(os.Stdout),
//	    display.NewHostFunc(globals, display.DatabricksFunction),
//	)
package display
