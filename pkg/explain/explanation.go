package explain

// OverallKey is the [Explanation.Visualize] key for the overall visualization.
const OverallKey = -1

// Explanation is a model explanation that can be rendered inline.
type Explanation interface {
	// Name is the display name of the explanation.
	Name() string

	// Visualize returns the visualization for key: [OverallKey] for the
	// overall view, or a selector row index for a specific view.
	Visualize(key int) Visualization

	// Selector returns the row table for specific views, or nil if the
	// explanation has none.
	Selector() *Selector
}

// Selector is a table with one row per specific visualization.
type Selector struct {
	Columns []string         `json:"columns" yaml:"columns"`
	Rows    []map[string]any `json:"data" yaml:"data"`
}

// Len returns the number of rows. A nil selector has no rows.
func (s *Selector) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Rows)
}
