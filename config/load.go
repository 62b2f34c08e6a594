package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "HAIKYU_"

// Load builds a configuration from defaults, the optional file at path and
// HAIKYU_ environment overrides, then validates it. An empty path skips the
// file layer.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.readFile(path); err != nil {
			return cfg, err
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) readFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return c.DecodeJSON(bytes.NewReader(data))
	case ".yaml", ".yml":
		return c.DecodeYAML(bytes.NewReader(data))
	default:
		return fmt.Errorf("%w: unsupported config format %q", ErrInvalid, ext)
	}
}

// DecodeJSON overlays the JSON document in r onto c. Unknown keys are
// rejected.
func (c *Config) DecodeJSON(r io.Reader) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		return fmt.Errorf("%w: decode json: %w", ErrInvalid, err)
	}
	return nil
}

// DecodeYAML overlays the YAML document in r onto c. Unknown keys are
// rejected and an empty document leaves c unchanged.
func (c *Config) DecodeYAML(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: decode yaml: %w", ErrInvalid, err)
	}
	return nil
}

// ApplyEnv overlays HAIKYU_-prefixed environment variables onto c.
func (c *Config) ApplyEnv() error {
	return c.applyEnv(nil)
}

func (c *Config) applyEnv(environ map[string]string) error {
	opts := env.Options{Prefix: EnvPrefix}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(c, opts); err != nil {
		return fmt.Errorf("%w: parse env: %w", ErrInvalid, err)
	}
	return nil
}
