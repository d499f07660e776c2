package ruleset

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/timeguard/pkg/constraint"
)

// Format is the encoding of a document.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatOf guesses the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// Document is the decoded form of a rule document.
type Document struct {
	Zone   string           `json:"zone,omitempty" yaml:"zone,omitempty"`
	Fields map[string]Field `json:"fields" yaml:"fields"`
}

// Field declares the type and rules of one record field.
type Field struct {
	Type  string `json:"type" yaml:"type"`
	Rules []Rule `json:"rules" yaml:"rules"`
}

// Rule is a constraint record whose values may be written as numbers.
type Rule struct {
	Name     string `json:"name" yaml:"name"`
	Values   Values `json:"values,omitempty" yaml:"values,omitempty"`
	Moment   string `json:"moment,omitempty" yaml:"moment,omitempty"`
	Duration string `json:"duration,omitempty" yaml:"duration,omitempty"`
	Zone     string `json:"zone,omitempty" yaml:"zone,omitempty"`
	Message  string `json:"message,omitempty" yaml:"message,omitempty"`
}

// Constraint converts the rule.
func (r Rule) Constraint() constraint.Constraint {
	return constraint.Constraint{
		Name:     r.Name,
		Values:   []string(r.Values),
		Moment:   r.Moment,
		Duration: r.Duration,
		ZoneID:   r.Zone,
		Message:  r.Message,
	}
}

// Values accepts a scalar or a list of strings and numbers.
type Values []string

func (v *Values) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	items, ok := raw.([]any)
	if !ok {
		items = []any{raw}
	}

	out := make(Values, 0, len(items))
	for _, item := range items {
		switch x := item.(type) {
		case string:
			out = append(out, x)
		case float64:
			out = append(out, strconv.FormatFloat(x, 'f', -1, 64))
		case nil:
		default:
			return fmt.Errorf("values: unsupported element %v", item)
		}
	}
	*v = out
	return nil
}

func (v *Values) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			*v = nil
			return nil
		}
		*v = Values{node.Value}
		return nil
	case yaml.SequenceNode:
		out := make(Values, 0, len(node.Content))
		for _, item := range node.Content {
			if item.Kind != yaml.ScalarNode {
				return fmt.Errorf("values: line %d: expected scalar", item.Line)
			}
			out = append(out, item.Value)
		}
		*v = out
		return nil
	default:
		return fmt.Errorf("values: line %d: expected scalar or list", node.Line)
	}
}

// ParseDocument decodes a rule document.
func ParseDocument(data []byte, format Format) (*Document, error) {
	var doc Document
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	case FormatJSON:
		err = json.Unmarshal(data, &doc)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, errors.Join(ErrFailedToParse, err)
	}
	if len(doc.Fields) == 0 {
		return nil, ErrNoFields
	}
	return &doc, nil
}

// LoadDocument reads and decodes a rule document, choosing the format from
// the file extension.
func LoadDocument(path string) (*Document, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToRead, err)
	}
	return ParseDocument(data, format)
}

// ReadRecord reads a record to validate from a YAML or JSON file.
func ReadRecord(path string) (map[string]any, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToRead, err)
	}
	return DecodeRecord(data, format)
}

// DecodeRecord decodes a record from YAML or JSON.
func DecodeRecord(data []byte, format Format) (map[string]any, error) {
	record := map[string]any{}
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &record)
	case FormatJSON:
		err = json.Unmarshal(data, &record)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, errors.Join(ErrFailedToParse, err)
	}
	return record, nil
}
