package inline

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/vizinline/pkg/explain"
)

func TestBuildErrorObject(t *testing.T) {
	obj := BuildErrorObject("boom")

	assert.Equal(t, "Error", obj.Name)
	assert.Empty(t, obj.Specific)
	assert.Contains(t, decodeHTMLFrame(t, obj.Overall), "<h1>boom</h1>")

	data, err := json.Marshal(obj)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"specific":[]`)
	assert.Contains(t, string(data), `"selector":{"columns":[],"data":[]}`)
}

func TestBuildObjectWithoutSelector(t *testing.T) {
	r, _, _ := newTestRenderer(t)
	e := &explain.Static{
		ExplanationName: "Performance",
		Overall:         explain.Markup{HTML: "<p>auc</p>"},
		// Specific visualizations are ignored without a selector.
		Specific: []explain.Visualization{explain.Markup{HTML: "<p>0</p>"}},
	}

	obj := r.BuildObject(context.Background(), e)

	assert.Equal(t, "Performance", obj.Name)
	assert.Equal(t, "<p>auc</p>", decodeHTMLFrame(t, obj.Overall))
	assert.NotNil(t, obj.Specific)
	assert.Empty(t, obj.Specific)
	assert.Equal(t, emptySelector(), obj.Selector)
}

// countingExplanation records which keys were visualized.
type countingExplanation struct {
	explain.Static
	keys []int
}

func (c *countingExplanation) Visualize(key int) explain.Visualization {
	c.keys = append(c.keys, key)
	return c.Static.Visualize(key)
}

func TestBuildObjectWithSelector(t *testing.T) {
	r, _, _ := newTestRenderer(t)
	e := &countingExplanation{Static: explain.Static{
		ExplanationName: "Local Explanation",
		Overall:         explain.None{},
		Specific: []explain.Visualization{
			explain.Chart{Figure: map[string]any{"data": []any{}}},
			explain.Markup{HTML: "<p>row 1</p>"},
			explain.Unsupported{Type: "widget"},
		},
		Table: &explain.Selector{
			Columns: []string{"PredictedValue", "ActualValue"},
			Rows: []map[string]any{
				{"PredictedValue": 0.9, "ActualValue": 1},
				{"PredictedValue": 0.1, "ActualValue": 0},
				{"PredictedValue": 0.5, "ActualValue": 1},
			},
		},
	}}

	obj := r.BuildObject(context.Background(), e)

	assert.Equal(t, []int{explain.OverallKey, 0, 1, 2}, e.keys)
	assert.Equal(t, FrameNone, obj.Overall.Type)
	require.Len(t, obj.Specific, 3)
	assert.Equal(t, FramePlotly, obj.Specific[0].Type)
	assert.Equal(t, "<p>row 1</p>", decodeHTMLFrame(t, obj.Specific[1]))
	assert.Contains(t, decodeHTMLFrame(t, obj.Specific[2]), UnsupportedMessage)
	assert.Equal(t, []string{"PredictedValue", "ActualValue"}, obj.Selector.Columns)
	assert.Len(t, obj.Selector.Data, 3)

	data, err := json.Marshal(obj)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"data":[{"PredictedValue":0.9,"ActualValue":1}`)
}

func TestBuildObjectEmptySelector(t *testing.T) {
	r, _, _ := newTestRenderer(t)
	e := &explain.Static{ExplanationName: "x", Table: &explain.Selector{}}

	obj := r.BuildObject(context.Background(), e)

	data, err := json.Marshal(obj)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"specific":[]`)
	assert.Contains(t, string(data), `"selector":{"columns":[],"data":[]}`)
}

func TestSelectorRecordsFollowColumnOrder(t *testing.T) {
	sel := SelectorObject{
		Columns: []string{"Name", "Importance"},
		Data: []map[string]any{
			{"Importance": 1, "Name": "age"},
			{"Name": "income", "zeta": true, "Importance": 0.5, "alpha": "x"},
			{"Importance": 0},
		},
	}

	data, err := json.Marshal(sel)
	require.NoError(t, err)
	assert.Equal(t,
		`{"columns":["Name","Importance"],"data":[`+
			`{"Name":"age","Importance":1},`+
			`{"Name":"income","Importance":0.5,"alpha":"x","zeta":true},`+
			`{"Importance":0}]}`,
		string(data))

	var back SelectorObject
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, "income", back.Data[1]["Name"])
}

func TestSelectorObjectNilCollections(t *testing.T) {
	data, err := json.Marshal(SelectorObject{})
	require.NoError(t, err)
	assert.Equal(t, `{"columns":[],"data":[]}`, string(data))
}
