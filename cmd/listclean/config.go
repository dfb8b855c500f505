package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
	yaml "gopkg.in/yaml.v3"

	"github.com/uadtools/listclean/pkg/migrate"
	"github.com/uadtools/listclean/pkg/transform/standardize"
	"github.com/uadtools/listclean/pkg/transform/strip"
	"github.com/uadtools/listclean/pkg/transform/validate"
	u "github.com/uadtools/listclean/pkg/uadlist"
)

// Config drives the migrate command. Without a config file (or with an
// empty step list) the canonical migration runs against the default
// paths.
type Config struct {
	Input  FileConfig   `json:"input" toml:"input" yaml:"input"`
	Output FileConfig   `json:"output" toml:"output" yaml:"output"`
	Steps  []StepConfig `json:"steps" toml:"steps" yaml:"steps"`
}

type FileConfig struct {
	Path string `json:"path" toml:"path" yaml:"path"`
}

// StepConfig holds exactly one configured step.
type StepConfig struct {
	Strip      *StripStep      `json:"strip,omitempty" toml:"strip,omitempty" yaml:"strip,omitempty"`
	MapField   *MapFieldStep   `json:"map_field,omitempty" toml:"map_field,omitempty" yaml:"map_field,omitempty"`
	ValidateIn *ValidateInStep `json:"validate_in,omitempty" toml:"validate_in,omitempty" yaml:"validate_in,omitempty"`
	Required   *RequiredStep   `json:"validate_required,omitempty" toml:"validate_required,omitempty" yaml:"validate_required,omitempty"`
}

type StripStep struct {
	Fields []string `json:"fields" toml:"fields" yaml:"fields"`
}

type MapFieldStep struct {
	Field string            `json:"field" toml:"field" yaml:"field"`
	Map   map[string]string `json:"map" toml:"map" yaml:"map"`
}

type ValidateInStep struct {
	Field  string   `json:"field" toml:"field" yaml:"field"`
	Values []string `json:"values" toml:"values" yaml:"values"`
}

type RequiredStep struct {
	Fields []string `json:"fields" toml:"fields" yaml:"fields"`
}

func defaultConfig() Config {
	var cfg Config
	cfg.Input.Path = migrate.DefaultInput
	cfg.Output.Path = migrate.DefaultOutput
	return cfg
}

// loadConfig decodes a config file by extension: .toml, .yaml/.yml, or
// JSON otherwise.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch filepath.Ext(path) {
	case ".toml":
		err = toml.Unmarshal(b, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &cfg)
	default:
		err = json.Unmarshal(b, &cfg)
	}
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if cfg.Input.Path == "" {
		cfg.Input.Path = migrate.DefaultInput
	}
	if cfg.Output.Path == "" {
		cfg.Output.Path = migrate.DefaultOutput
	}
	return cfg, nil
}

// pipeline builds the configured pipeline, or the canonical migration
// when no steps are configured.
func (c Config) pipeline() (*u.Pipeline, error) {
	if len(c.Steps) == 0 {
		return migrate.Pipeline(), nil
	}
	p := u.NewPipeline()
	for i, s := range c.Steps {
		switch {
		case s.Strip != nil:
			p.Add(&strip.Fields{Fields: s.Strip.Fields})
		case s.MapField != nil:
			p.Add(&standardize.MapField{Field: s.MapField.Field, Map: s.MapField.Map})
		case s.ValidateIn != nil:
			p.Add(validate.NewInSet(s.ValidateIn.Field, s.ValidateIn.Values))
		case s.Required != nil:
			p.Add(&validate.Required{Fields: s.Required.Fields})
		default:
			return nil, fmt.Errorf("step %d: no step configured", i)
		}
	}
	return p, nil
}
