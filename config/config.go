package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Config holds run defaults. Empty fields leave the built-in
// default in place.
type Config struct {
	Root      string `yaml:"root"`
	Output    string `yaml:"output"`
	Algorithm string `yaml:"algorithm"`
}

// Load reads and strictly decodes the YAML file at path.
// Unknown keys are rejected.
func Load(path string) (Config, error) {
	const errCtx = "loading config"

	raw, err := os.ReadFile(path) //nolint:gosec // path from CLI flag
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", errCtx, err)
	}

	cfg, err := Parse(raw)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %s: %w", errCtx, path, err)
	}

	return cfg, nil
}

// Parse strictly decodes YAML config content. Empty content
// yields the zero Config.
func Parse(raw []byte) (Config, error) {
	const errCtx = "parsing config"

	var cfg Config

	if len(bytes.TrimSpace(raw)) == 0 {
		return cfg, nil
	}

	decoder := yaml.NewDecoder(
		bytes.NewReader(raw),
		yaml.DisallowUnknownField(),
	)

	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("%s: %w", errCtx, err)
	}

	return cfg, nil
}

// Merge returns cfg with every non-empty field of over applied
// on top.
func (cfg Config) Merge(over Config) Config {
	if over.Root != "" {
		cfg.Root = over.Root
	}

	if over.Output != "" {
		cfg.Output = over.Output
	}

	if over.Algorithm != "" {
		cfg.Algorithm = over.Algorithm
	}

	return cfg
}
