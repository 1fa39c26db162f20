// Package explain defines the contract between vizinline and the code that
// produces model explanations.
//
// # Overview
//
// An [Explanation] describes a model's behavior. It has a name, can produce
// an overall [Visualization] plus one visualization per selector row, and
// optionally carries a [Selector] table that lets a user pick which of the
// per-row ("specific") visualizations to display.
//
// Explanations are produced elsewhere; vizinline only reads them. The
// package nevertheless ships [Static], a data-backed explanation that can be
// decoded from JSON or YAML documents with [Load] and [Decode]. The CLI and
// tests use it.
//
// # Visualizations
//
// [Visualization] is a closed union. Every value is one of:
//
//   - [None]: nothing to draw
//   - [Chart]: a JSON-serializable chart description (a Plotly figure)
//   - [Markup]: raw HTML text
//   - [Unsupported]: a visualization the producer could not express in the
//     forms above, identified only by its type name
//
// A nil Visualization is treated as [None].
//
// # Keys
//
// [Explanation.Visualize] takes a key. [OverallKey] (-1) selects the overall
// visualization; 0..n-1 select the specific visualization for selector row i.
package explain
