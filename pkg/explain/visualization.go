package explain

// Kind tags a [Visualization] variant.
type Kind string

const (
	KindNone        Kind = "none"
	KindChart       Kind = "chart"
	KindMarkup      Kind = "markup"
	KindUnsupported Kind = "unsupported"
)

// Visualization is implemented only by [None], [Chart], [Markup] and
// [Unsupported].
type Visualization interface {
	Kind() Kind
	sealed()
}

// None is the absence of a visualization.
type None struct{}

// Chart is a chart description, typically a Plotly figure with "data" and
// "layout" keys. Figure must be encodable with encoding/json.
type Chart struct {
	Figure any
}

// Markup is raw HTML.
type Markup struct {
	HTML string
}

// Unsupported names a visualization type that cannot be rendered inline.
type Unsupported struct {
	Type string
}

func (None) Kind() Kind        { return KindNone }
func (Chart) Kind() Kind       { return KindChart }
func (Markup) Kind() Kind      { return KindMarkup }
func (Unsupported) Kind() Kind { return KindUnsupported }

func (None) sealed()        {}
func (Chart) sealed()       {}
func (Markup) sealed()      {}
func (Unsupported) sealed() {}

// KindOf returns v's kind, reporting [KindNone] for a nil v.
func KindOf(v Visualization) Kind {
	if v == nil {
		return KindNone
	}
	return v.Kind()
}
