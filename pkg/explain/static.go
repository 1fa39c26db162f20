package explain

// Static is an [Explanation] backed by precomputed visualizations.
type Static struct {
	ExplanationName string
	Overall         Visualization
	Specific        []Visualization
	Table           *Selector
}

// Name returns the explanation name.
func (s *Static) Name() string { return s.ExplanationName }

// Visualize returns the overall visualization for [OverallKey] and the
// specific visualization at key otherwise. Keys without a visualization
// yield [None].
func (s *Static) Visualize(key int) Visualization {
	if key == OverallKey {
		if s.Overall == nil {
			return None{}
		}
		return s.Overall
	}
	if key < 0 || key >= len(s.Specific) || s.Specific[key] == nil {
		return None{}
	}
	return s.Specific[key]
}

// Selector returns the row table, or nil.
func (s *Static) Selector() *Selector { return s.Table }

var _ Explanation = (*Static)(nil)
