package instantiate

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk registry configuration.
//
//	defaultScope: com.app
//	aliases:
//	  LegacyWidget: com.app.Widget
type Config struct {
	// DefaultScope overrides the main module path as the scope used by
	// [Registry.Create].
	DefaultScope string `yaml:"defaultScope,omitempty"`

	// Aliases maps an extra identifier to a registered one.
	Aliases map[string]string `yaml:"aliases,omitempty"`
}

// LoadConfig decodes a YAML config. Unknown keys are rejected.
func LoadConfig(r io.Reader) (*Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadConfigFile reads the YAML config at path.
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := LoadConfig(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that no alias is empty or points at itself.
func (c *Config) Validate() error {
	c.DefaultScope = strings.TrimSpace(c.DefaultScope)
	for alias, target := range c.Aliases {
		if alias == "" || target == "" {
			return fmt.Errorf("%w: alias %q -> %q", ErrInvalidName, alias, target)
		}
		if alias == target {
			return fmt.Errorf("%w: alias %q points at itself", ErrInvalidName, alias)
		}
	}
	return nil
}
