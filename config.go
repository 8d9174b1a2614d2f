package marina

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the optional configuration file of the marina tool.
//
//	capacity: 120
//	duplicates: allow
//	strict_kinds: false
//	currency: USD
type Config struct {
	Capacity    *int   `yaml:"capacity,omitempty"`
	Duplicates  string `yaml:"duplicates,omitempty"`
	StrictKinds bool   `yaml:"strict_kinds,omitempty"`
	Currency    string `yaml:"currency,omitempty"`
}

// LoadConfig reads the configuration file at path. A missing file yields the
// default configuration.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %q: %w", path, err)
	}
	if _, err := cfg.Options(nil); err != nil {
		return cfg, fmt.Errorf("invalid config %q: %w", path, err)
	}
	return cfg, nil
}

// Options returns the registry options described by the configuration.
func (c Config) Options(logger *slog.Logger) (Options, error) {
	opts := DefaultOptions()
	opts.Logger = logger
	if c.Capacity != nil {
		if *c.Capacity < 0 {
			return opts, fmt.Errorf("negative capacity %d", *c.Capacity)
		}
		opts.Capacity = *c.Capacity
	}
	dup, err := ParseDuplicatePolicy(c.Duplicates)
	if err != nil {
		return opts, err
	}
	opts.Duplicates = dup
	opts.StrictKinds = c.StrictKinds
	return opts, nil
}

// CurrencyCode returns the configured display currency, DefaultCurrency if unset.
func (c Config) CurrencyCode() string {
	if c.Currency == "" {
		return DefaultCurrency
	}
	return c.Currency
}
