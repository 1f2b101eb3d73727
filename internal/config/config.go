// Package config builds the Run Configuration from defaults and an optional
// YAML file. Command-line flags are layered on top by the caller.
package config

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/geomass/internal/logging"
	"github.com/aretw0/geomass/pkg/domain"
)

// Config is the Run Configuration. It is read-only once built.
type Config struct {
	Input       string         `yaml:"input" mapstructure:"input"`
	OutDir      string         `yaml:"outdir" mapstructure:"outdir"`
	Strict      bool           `yaml:"strict" mapstructure:"strict"`
	LogLevel    string         `yaml:"log" mapstructure:"log"`
	Masses      map[string]int `yaml:"masses,omitempty" mapstructure:"masses"`
	MetricsFile string         `yaml:"metrics_file,omitempty" mapstructure:"metrics_file"`
}

// Defaults returns the configuration used when nothing else is given:
// permissive mode, INFO logging, output in the working directory and the
// default element table.
func Defaults() Config {
	return Config{
		OutDir:   ".",
		LogLevel: "INFO",
	}
}

// Load reads a YAML file and overlays it on Defaults.
// Unknown keys are rejected so typos do not silently fall back to defaults.
func Load(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if len(raw) == 0 {
		return cfg, nil
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      &cfg,
	})
	if err != nil {
		return cfg, err
	}
	if err := dec.Decode(raw); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the fields that can be checked without touching the input.
func Validate(cfg Config) error {
	if cfg.OutDir == "" {
		return fmt.Errorf("outdir cannot be empty")
	}
	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return err
	}
	if _, err := cfg.MassTable(); err != nil {
		return err
	}
	return nil
}

// MassTable returns the configured element table, or the default table when
// no masses are configured.
func (c Config) MassTable() (domain.MassTable, error) {
	if len(c.Masses) == 0 {
		return domain.DefaultMassTable(), nil
	}
	return domain.NewMassTable(c.Masses)
}
