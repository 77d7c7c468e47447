// Package config loads the optional datebuilder CLI configuration file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	builderrors "git.home.luguber.info/inful/datebuilder/internal/errors"
)

// Output formats understood by the CLI.
const (
	FormatMillis  = "millis"
	FormatUnix    = "unix"
	FormatRFC3339 = "rfc3339"
)

// Config represents the tool configuration.
type Config struct {
	// Zone is the IANA zone name used to resolve calendar fields. Defaults to UTC.
	Zone   string       `yaml:"zone,omitempty"`
	Output OutputConfig `yaml:"output"`
}

// OutputConfig controls how built instants are printed.
type OutputConfig struct {
	Format string `yaml:"format,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load loads configuration from the specified file. A missing file is not an
// error: the CLI is fully usable with defaults. Environment variables in the
// form ${VAR} are expanded in the file content before unmarshalling.
func Load(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return Default(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, builderrors.WrapConfig(err, fmt.Sprintf("failed to read config file %s", configPath))
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, builderrors.WrapConfig(err, fmt.Sprintf("failed to parse config file %s", configPath))
	}

	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Zone == "" {
		cfg.Zone = "UTC"
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = FormatRFC3339
	}
}

// Validate checks the zone name and output format.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatMillis, FormatUnix, FormatRFC3339:
	default:
		return builderrors.NewConfig(fmt.Sprintf("unknown output format %q (want %s, %s or %s)",
			c.Output.Format, FormatMillis, FormatUnix, FormatRFC3339))
	}
	if _, err := time.LoadLocation(c.Zone); err != nil {
		return builderrors.WrapConfig(err, fmt.Sprintf("unknown time zone %q", c.Zone))
	}
	return nil
}

// Location resolves the configured zone. Validate must have passed.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Zone)
	if err != nil {
		return nil, builderrors.WrapConfig(err, fmt.Sprintf("unknown time zone %q", c.Zone))
	}
	return loc, nil
}

const defaultConfigTemplate = `# datebuilder configuration
# zone: IANA time zone used to resolve calendar fields (default UTC)
zone: UTC

output:
  # format: millis | unix | rfc3339
  format: rfc3339
`

// Init writes a default configuration file. Refuses to overwrite an existing
// file unless force is set.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return builderrors.NewConfig(fmt.Sprintf("configuration file %s already exists (use --force to overwrite)", configPath))
	}
	if err := os.WriteFile(configPath, []byte(defaultConfigTemplate), 0o644); err != nil {
		return builderrors.WrapConfig(err, fmt.Sprintf("failed to write config file %s", configPath))
	}
	return nil
}
