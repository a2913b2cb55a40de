package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// File is the content of a YAML defaults file.
//
// Example:
//
//	metrics: EXACT,PARTIAL
//	statistics:
//	  - skippingF1
//	  - f1
//	dataset: dev
//	sort: true
//	percentiles: [50, 90]
type File struct {
	Metrics     List      `json:"metrics,omitempty" yaml:"metrics,omitempty"`
	Statistics  List      `json:"statistics,omitempty" yaml:"statistics,omitempty"`
	Dataset     string    `json:"dataset,omitempty" yaml:"dataset,omitempty"`
	Sort        bool      `json:"sort,omitempty" yaml:"sort,omitempty"`
	Verbose     bool      `json:"verbose,omitempty" yaml:"verbose,omitempty"`
	Percentiles []float64 `json:"percentiles,omitempty" yaml:"percentiles,omitempty"`
	Format      string    `json:"format,omitempty" yaml:"format,omitempty"`
	InputFormat string    `json:"inputFormat,omitempty" yaml:"inputFormat,omitempty"`
	NoColor     bool      `json:"noColor,omitempty" yaml:"noColor,omitempty"`
}

// List is a list of names written either as a YAML sequence or as a
// comma-separated string.
type List []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *List) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*l = SplitList(value.Value)
		return nil
	case yaml.SequenceNode:
		var items []string
		if err := value.Decode(&items); err != nil {
			return err
		}
		*l = items
		return nil
	default:
		return fmt.Errorf("line %d: expected a string or a list of strings", value.Line)
	}
}

// fileSchema constrains the shape of a defaults file before it is decoded.
const fileSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": false,
  "definitions": {
    "list": {
      "oneOf": [
        {"type": "string", "minLength": 1},
        {"type": "array", "minItems": 1, "items": {"type": "string", "minLength": 1}}
      ]
    }
  },
  "properties": {
    "metrics": {"$ref": "#/definitions/list"},
    "statistics": {"$ref": "#/definitions/list"},
    "dataset": {"type": "string"},
    "sort": {"type": "boolean"},
    "verbose": {"type": "boolean"},
    "noColor": {"type": "boolean"},
    "format": {"enum": ["text", "json", "yaml", "yml"]},
    "inputFormat": {"enum": ["tsv", "jsonl"]},
    "percentiles": {
      "type": "array",
      "items": {"type": "number", "exclusiveMinimum": 0, "maximum": 100}
    }
  }
}`

var compiledSchema *jsonschema.Schema

func schema() (*jsonschema.Schema, error) {
	if compiledSchema != nil {
		return compiledSchema, nil
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("config.json", strings.NewReader(fileSchema)); err != nil {
		return nil, fmt.Errorf("invalid config schema: %w", err)
	}
	s, err := compiler.Compile("config.json")
	if err != nil {
		return nil, fmt.Errorf("invalid config schema: %w", err)
	}
	compiledSchema = s
	return s, nil
}

// LoadFile loads and validates a YAML defaults file
func LoadFile(path string) (*File, error) {
	// Check if file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	return ParseFile(data)
}

// ParseFile validates YAML content against the config schema and decodes it.
func ParseFile(data []byte) (*File, error) {
	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}
	if raw == nil {
		return &File{}, nil
	}

	// Round-trip through JSON so the validator sees plain JSON types
	doc, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}
	var generic interface{}
	if err := json.Unmarshal(doc, &generic); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	s, err := schema()
	if err != nil {
		return nil, err
	}
	if err := s.Validate(generic); err != nil {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}
	return &f, nil
}
