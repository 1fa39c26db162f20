package explain

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/vizinline/pkg/errors"
)

const yamlDoc = `
name: Global Term/Feature Importances
overall:
  kind: chart
  chart:
    data:
      - type: bar
        x: [0.4, 0.2]
        y: [age, income]
    layout:
      title: Importances
specific:
  - kind: markup
    markup: "<p>age</p>"
  - kind: unsupported
    type: dash.Component
selector:
  columns: [Name, Type]
  data:
    - Name: age
      Type: continuous
    - Name: income
      Type: continuous
`

const jsonDoc = `{
  "name": "Local Explanation",
  "overall": {"kind": "markup", "markup": "<b>hi</b>"}
}`

func TestDecodeYAML(t *testing.T) {
	s, err := Decode(strings.NewReader(yamlDoc), FormatYAML)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}

	if s.Name() != "Global Term/Feature Importances" {
		t.Errorf("Name() = %q", s.Name())
	}
	if k := KindOf(s.Visualize(OverallKey)); k != KindChart {
		t.Errorf("overall kind = %v, want %v", k, KindChart)
	}
	if got := s.Visualize(0); got != (Markup{HTML: "<p>age</p>"}) {
		t.Errorf("Visualize(0) = %#v", got)
	}
	if got := s.Visualize(1); got != (Unsupported{Type: "dash.Component"}) {
		t.Errorf("Visualize(1) = %#v", got)
	}

	sel := s.Selector()
	if sel.Len() != 2 {
		t.Fatalf("Selector().Len() = %d, want 2", sel.Len())
	}
	if sel.Columns[0] != "Name" || sel.Rows[1]["Name"] != "income" {
		t.Errorf("Selector() = %+v", sel)
	}

	// YAML-decoded charts must stay JSON-encodable.
	chart := s.Visualize(OverallKey).(Chart)
	if _, err := json.Marshal(chart.Figure); err != nil {
		t.Errorf("json.Marshal(chart) error: %v", err)
	}
}

func TestDecodeJSON(t *testing.T) {
	s, err := Decode(strings.NewReader(jsonDoc), FormatJSON)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if s.Name() != "Local Explanation" {
		t.Errorf("Name() = %q", s.Name())
	}
	if s.Selector() != nil {
		t.Errorf("Selector() = %+v, want nil", s.Selector())
	}
	if got := s.Visualize(OverallKey); got != (Markup{HTML: "<b>hi</b>"}) {
		t.Errorf("Visualize(-1) = %#v", got)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name   string
		doc    string
		format string
		code   errors.Code
	}{
		{"missing name", `{"overall": {"kind": "none"}}`, FormatJSON, errors.ErrCodeInvalidInput},
		{"unknown kind", `{"name": "x", "overall": {"kind": "pie"}}`, FormatJSON, errors.ErrCodeInvalidInput},
		{"chart without figure", `{"name": "x", "overall": {"kind": "chart"}}`, FormatJSON, errors.ErrCodeInvalidInput},
		{"row mismatch", "name: x\nselector:\n  columns: [a]\n  data:\n    - a: 1\n", FormatYAML, errors.ErrCodeInvalidInput},
		{"bad json", `{`, FormatJSON, errors.ErrCodeInvalidInput},
		{"unknown format", `{}`, "toml", errors.ErrCodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.doc), tt.format)
			if err == nil {
				t.Fatal("Decode() error = nil, want error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("Decode() error = %v, want code %v", err, tt.code)
			}
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{"ebm.json", FormatJSON, false},
		{"ebm.YAML", FormatYAML, false},
		{"dir/ebm.yml", FormatYAML, false},
		{"ebm.toml", "", true},
		{"ebm", "", true},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if (err != nil) != tt.wantErr {
			t.Errorf("FormatFromPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("FormatFromPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestLoadAll(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.yaml")
	b := filepath.Join(dir, "b.json")
	if err := os.WriteFile(a, []byte(yamlDoc), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(b, []byte(jsonDoc), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadAll([]string{a, b})
	if err != nil {
		t.Fatalf("LoadAll() error: %v", err)
	}
	if len(got) != 2 || got[1].Name() != "Local Explanation" {
		t.Errorf("LoadAll() = %v", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load() error = %v, want %v", err, errors.ErrCodeFileNotFound)
	}
}

func TestStaticVisualizeOutOfRange(t *testing.T) {
	s := &Static{ExplanationName: "x", Specific: []Visualization{Markup{HTML: "a"}, nil}}

	for _, key := range []int{-2, 1, 2, 99} {
		if k := KindOf(s.Visualize(key)); k != KindNone {
			t.Errorf("Visualize(%d) kind = %v, want none", key, k)
		}
	}
	if k := KindOf(s.Visualize(OverallKey)); k != KindNone {
		t.Errorf("Visualize(overall) kind = %v, want none", k)
	}
}

func TestSelectorLenNil(t *testing.T) {
	var s *Selector
	if s.Len() != 0 {
		t.Errorf("nil Selector Len() = %d, want 0", s.Len())
	}
}
