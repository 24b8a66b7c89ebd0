package main

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/rowmend/rowmend/fuzzy"
	"github.com/rowmend/rowmend/heal"
	"github.com/rowmend/rowmend/schema"
)

// Config is the YAML pipeline description: the record schema, healing
// budgets and reference sets.
type Config struct {
	Delimiter     string              `yaml:"delimiter"`
	MaxMergeSpan  *int                `yaml:"max_merge_span"`
	MaxCandidates *int                `yaml:"max_candidates"`
	MinConfidence *float64            `yaml:"min_confidence"`
	Workers       int                 `yaml:"workers"`
	SkipHeader    bool                `yaml:"skip_header"`
	Fields        []FieldConfig       `yaml:"fields"`
	References    map[string][]string `yaml:"references"`
}

// FieldConfig describes one schema field. Type selects the validator:
// "identifier" (with prefix and optional exact digit count), "numeric",
// "pattern" (anchored regular expression), "nonempty" or "any".
type FieldConfig struct {
	Name    string `yaml:"name"`
	Type    string `yaml:"type"`
	Prefix  string `yaml:"prefix"`
	Digits  int    `yaml:"digits"`
	Pattern string `yaml:"pattern"`
}

// LoadConfig reads and parses a pipeline config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

// Schema builds the record schema from the field list.
func (c *Config) Schema() (schema.Schema, error) {
	specs := make([]schema.FieldSpec, 0, len(c.Fields))
	for _, f := range c.Fields {
		v, err := f.validator()
		if err != nil {
			return schema.Schema{}, err
		}
		specs = append(specs, schema.FieldSpec{Name: f.Name, Validate: v})
	}
	return schema.New(specs...)
}

func (f FieldConfig) validator() (schema.Validator, error) {
	switch f.Type {
	case "identifier":
		if f.Prefix == "" {
			return nil, fmt.Errorf("field %q: identifier requires a prefix", f.Name)
		}
		return schema.Identifier(f.Prefix, f.Digits), nil
	case "numeric":
		return schema.Numeric(), nil
	case "pattern":
		re, err := regexp.Compile(f.Pattern)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Name, err)
		}
		return schema.Pattern(re), nil
	case "nonempty":
		return schema.NonEmpty(), nil
	case "any", "":
		return schema.Any(), nil
	default:
		return nil, fmt.Errorf("field %q: unknown type %q", f.Name, f.Type)
	}
}

// Options builds healer options from the config, falling back to the
// package defaults for unset values.
func (c *Config) Options() (heal.Options, error) {
	opts := heal.DefaultOptions()
	if c.Delimiter != "" {
		runes := []rune(c.Delimiter)
		if len(runes) != 1 {
			return heal.Options{}, fmt.Errorf("delimiter must be a single character, got %q", c.Delimiter)
		}
		opts.Delimiter = runes[0]
	}
	if c.MaxMergeSpan != nil {
		opts.MaxMergeSpan = *c.MaxMergeSpan
	}
	if c.MaxCandidates != nil {
		opts.MaxCandidates = *c.MaxCandidates
	}
	if c.MinConfidence != nil {
		opts.MinConfidence = *c.MinConfidence
	}
	if c.Workers > 0 {
		opts.Workers = c.Workers
	}
	if len(c.References) > 0 {
		opts.References = fuzzy.NewReferenceSet(c.References)
	}
	return opts, nil
}
