package flatfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Layout is the declarative YAML form of a Definition:
//
//	name: people
//	fields:
//	  - name: first_name
//	    width: 10
//	    filters: [trim]
//	  - name: gender
//	    width: 1
//	    default: null
//	  - pad: true
//	    width: 2
//
// Filters and formatters name operations resolved against the Definition's Host.
type Layout struct {
	Name   string        `yaml:"name,omitempty"`
	Fields []FieldLayout `yaml:"fields"`
}

// FieldLayout declares one field of a Layout.
type FieldLayout struct {
	Name       string    `yaml:"name,omitempty"`
	Width      int       `yaml:"width,omitempty"`
	Pad        bool      `yaml:"pad,omitempty"`
	Aggressive bool      `yaml:"aggressive,omitempty"`
	Default    yaml.Node `yaml:"default,omitempty"`
	Filters    []string  `yaml:"filters,omitempty"`
	Formatters []string  `yaml:"formatters,omitempty"`
}

// LoadLayout reads and parses a YAML layout file.
func LoadLayout(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout file %s: %w", path, err)
	}
	return ParseLayout(data)
}

// ParseLayout parses YAML data into a Layout.
func ParseLayout(data []byte) (*Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("failed to parse layout YAML: %w", err)
	}
	applyLayoutDefaults(&l)
	return &l, nil
}

func applyLayoutDefaults(l *Layout) {
	for i := range l.Fields {
		if l.Fields[i].Width == 0 {
			l.Fields[i].Width = DefaultWidth
		}
	}
}

// Definition declares every field of the layout on a new Definition built with opts.
func (l *Layout) Definition(opts ...Option) (*Definition, error) {
	d := New(opts...)
	for i, fl := range l.Fields {
		fieldOpts, err := fl.options()
		if err != nil {
			return nil, fmt.Errorf("layout field %d (%s): %w", i+1, fl.Name, err)
		}
		if fl.Pad {
			_, err = d.Pad(fl.Name, fieldOpts...)
		} else {
			_, err = d.Field(fl.Name, fieldOpts...)
		}
		if err != nil {
			return nil, fmt.Errorf("layout field %d (%s): %w", i+1, fl.Name, err)
		}
	}
	return d, nil
}

func (fl FieldLayout) options() ([]FieldOption, error) {
	opts := []FieldOption{Width(fl.Width)}
	for _, name := range fl.Filters {
		opts = append(opts, Filter(Named(name)))
	}
	for _, name := range fl.Formatters {
		opts = append(opts, Formatter(Named(name)))
	}
	if fl.Aggressive {
		opts = append(opts, Aggressive())
	}
	// A zero Node means the key was absent; "default: null" decodes to nil.
	if fl.Default.Kind != 0 {
		var v any
		if err := fl.Default.Decode(&v); err != nil {
			return nil, fmt.Errorf("default: %w", err)
		}
		opts = append(opts, Default(v))
	}
	return opts, nil
}
