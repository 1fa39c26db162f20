package inline

import (
	"bytes"
	"context"
	"encoding/json"
	"maps"
	"slices"

	"github.com/matzehuels/vizinline/pkg/explain"
)

// ErrorObjectName names objects built by [BuildErrorObject].
const ErrorObjectName = "Error"

// DashboardUnsupportedMessage replaces renders of several explanations.
const DashboardUnsupportedMessage = "Dashboard not yet supported in cloud environments."

// Object is the payload handed to the front-end bundle.
type Object struct {
	Name     string         `json:"name"`
	Overall  Frame          `json:"overall"`
	Specific []Frame        `json:"specific"`
	Selector SelectorObject `json:"selector"`
}

// SelectorObject is the serialized selector table. Data holds one record per
// row, keyed by column.
type SelectorObject struct {
	Columns []string         `json:"columns"`
	Data    []map[string]any `json:"data"`
}

// MarshalJSON writes every record with its keys in column order. Keys that
// are not columns follow in sorted order.
func (s SelectorObject) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	columns := s.Columns
	if columns == nil {
		columns = []string{}
	}
	cols, err := json.Marshal(columns)
	if err != nil {
		return nil, err
	}
	buf.WriteString(`{"columns":`)
	buf.Write(cols)
	buf.WriteString(`,"data":[`)
	for i, row := range s.Data {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeRecord(&buf, columns, row); err != nil {
			return nil, err
		}
	}
	buf.WriteString("]}")
	return buf.Bytes(), nil
}

func writeRecord(buf *bytes.Buffer, columns []string, row map[string]any) error {
	keys := make([]string, 0, len(row))
	seen := make(map[string]bool, len(row))
	for _, c := range columns {
		if _, ok := row[c]; ok && !seen[c] {
			keys = append(keys, c)
			seen[c] = true
		}
	}
	for _, k := range slices.Sorted(maps.Keys(row)) {
		if !seen[k] {
			keys = append(keys, k)
		}
	}

	buf.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return err
		}
		val, err := json.Marshal(row[k])
		if err != nil {
			return err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return nil
}

// emptySelector serializes as {"columns":[],"data":[]}.
func emptySelector() SelectorObject {
	return SelectorObject{Columns: []string{}, Data: []map[string]any{}}
}

// BuildErrorObject returns an object named "Error" whose overall frame shows
// msg, with no specific frames and an empty selector.
func BuildErrorObject(msg string) Object {
	return Object{
		Name:     ErrorObjectName,
		Overall:  BuildErrorFrame(msg),
		Specific: []Frame{},
		Selector: emptySelector(),
	}
}

// BuildObject converts e into the front-end payload. Specific frames are
// built for every selector row, in row order.
func (r *Renderer) BuildObject(ctx context.Context, e explain.Explanation) Object {
	obj := Object{
		Name:     e.Name(),
		Overall:  r.BuildFrame(ctx, e.Visualize(explain.OverallKey)),
		Specific: []Frame{},
		Selector: emptySelector(),
	}

	sel := e.Selector()
	if sel == nil {
		return obj
	}

	n := sel.Len()
	obj.Specific = make([]Frame, 0, n)
	for i := range n {
		obj.Specific = append(obj.Specific, r.BuildFrame(ctx, e.Visualize(i)))
	}
	if sel.Columns != nil {
		obj.Selector.Columns = sel.Columns
	}
	if sel.Rows != nil {
		obj.Selector.Data = sel.Rows
	}
	return obj
}
