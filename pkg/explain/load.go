package explain

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/vizinline/pkg/errors"
)

// Document formats accepted by [Decode].
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// document is the on-disk shape of a [Static] explanation.
type document struct {
	Name     string       `json:"name" yaml:"name"`
	Overall  *vizDoc      `json:"overall" yaml:"overall"`
	Specific []*vizDoc    `json:"specific" yaml:"specific"`
	Selector *selectorDoc `json:"selector" yaml:"selector"`
}

type vizDoc struct {
	Kind   Kind   `json:"kind" yaml:"kind"`
	Chart  any    `json:"chart,omitempty" yaml:"chart,omitempty"`
	Markup string `json:"markup,omitempty" yaml:"markup,omitempty"`
	Type   string `json:"type,omitempty" yaml:"type,omitempty"`
}

type selectorDoc struct {
	Columns []string         `json:"columns" yaml:"columns"`
	Data    []map[string]any `json:"data" yaml:"data"`
}

// FormatFromPath infers the document format from a file extension.
func FormatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported explanation file %s (want .json, .yaml or .yml)", path)
}

// Load reads a static explanation from a JSON or YAML file.
func Load(path string) (*Static, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()

	s, err := Decode(f, format)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "load %s", path)
	}
	return s, nil
}

// LoadAll loads every path in order.
func LoadAll(paths []string) ([]Explanation, error) {
	out := make([]Explanation, 0, len(paths))
	for _, p := range paths {
		s, err := Load(p)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// Decode reads a static explanation document in the given format.
func Decode(r io.Reader, format string) (*Static, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var doc document
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&doc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode json")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode yaml")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown format %q", format)
	}
	return doc.static()
}

func (d *document) static() (*Static, error) {
	if d.Name == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "explanation name is required")
	}

	overall, err := d.Overall.visualization()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "overall")
	}

	s := &Static{ExplanationName: d.Name, Overall: overall}
	for i, v := range d.Specific {
		viz, err := v.visualization()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "specific[%d]", i)
		}
		s.Specific = append(s.Specific, viz)
	}

	if d.Selector != nil {
		if len(d.Selector.Data) != len(d.Specific) {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"selector has %d rows but %d specific visualizations", len(d.Selector.Data), len(d.Specific))
		}
		s.Table = &Selector{Columns: d.Selector.Columns, Rows: d.Selector.Data}
	}
	return s, nil
}

func (v *vizDoc) visualization() (Visualization, error) {
	if v == nil {
		return None{}, nil
	}
	switch v.Kind {
	case KindNone, "":
		return None{}, nil
	case KindChart:
		if v.Chart == nil {
			return nil, errors.New(errors.ErrCodeInvalidInput, "chart visualization has no chart")
		}
		return Chart{Figure: v.Chart}, nil
	case KindMarkup:
		return Markup{HTML: v.Markup}, nil
	case KindUnsupported:
		return Unsupported{Type: v.Type}, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidInput, "unknown visualization kind %q", v.Kind)
}
