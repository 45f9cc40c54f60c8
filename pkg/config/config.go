// Package config loads linter configuration. Resolution of the names it
// carries (dialect, rules, templater) happens when the linter is built, so
// this package stays a plain data layer.
package config

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/nsxbet/sqlint/pkg/rules"
)

// DefaultFileName is the config file searched for when none is given.
const DefaultFileName = ".sqlint.yaml"

// Config represents the configuration for a lint run.
type Config struct {
	Dialect   string          `yaml:"dialect" json:"dialect"`
	Rules     []string        `yaml:"rules" json:"rules"`
	Templater TemplaterConfig `yaml:"templater" json:"templater"`
	Settings  rules.Settings  `yaml:"settings" json:"settings"`
	SQLExts   []string        `yaml:"sql_file_exts" json:"sql_file_exts"`
}

// TemplaterConfig selects the templater and carries its rendering context.
type TemplaterConfig struct {
	Name    string         `yaml:"name" json:"name"`
	Context map[string]any `yaml:"context" json:"context"`
}

// DefaultConfig returns the stock configuration: ansi dialect, every rule,
// raw templating.
func DefaultConfig() *Config {
	return &Config{
		Dialect:   "ansi",
		Templater: TemplaterConfig{Name: "raw"},
		Settings:  rules.DefaultSettings(),
		SQLExts:   []string{".sql"},
	}
}

// LoadFromFile loads configuration from a file and fills unset fields with
// defaults.
func LoadFromFile(filename string) (*Config, error) {
	slog.Debug("Loading config from file", "filename", filename)
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", filename)
	}

	config := &Config{Settings: rules.Settings{}}

	// Try YAML first, then JSON.
	if yamlErr := yaml.Unmarshal(data, config); yamlErr != nil {
		slog.Debug("YAML unmarshal failed, attempting JSON", "error", yamlErr)
		if jsonErr := json.Unmarshal(data, config); jsonErr != nil {
			return nil, errors.Wrapf(yamlErr, "parsing config %s", filename)
		}
	}

	config.normalize()
	slog.Debug("Loaded config", "dialect", config.Dialect, "rules_count", len(config.Rules))
	return config, nil
}

// Locate walks from dir towards the filesystem root looking for the
// default config file. It returns the empty string when there is none.
func Locate(dir string) string {
	for {
		candidate := filepath.Join(dir, DefaultFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// normalize fills unset fields with defaults and canonicalizes rule codes.
func (c *Config) normalize() {
	def := DefaultConfig()
	if c.Dialect == "" {
		c.Dialect = def.Dialect
	}
	if c.Templater.Name == "" {
		c.Templater.Name = def.Templater.Name
	}
	if c.Settings.TabSpaceSize == 0 {
		c.Settings.TabSpaceSize = def.Settings.TabSpaceSize
	}
	if c.Settings.IndentUnit == "" {
		c.Settings.IndentUnit = def.Settings.IndentUnit
	}
	if c.Settings.CapitalisationPolicy == "" {
		c.Settings.CapitalisationPolicy = def.Settings.CapitalisationPolicy
	}
	if c.Settings.MaxLineLength == 0 {
		c.Settings.MaxLineLength = def.Settings.MaxLineLength
	}
	if len(c.SQLExts) == 0 {
		c.SQLExts = def.SQLExts
	}
	for i, code := range c.Rules {
		c.Rules[i] = strings.ToUpper(strings.TrimSpace(code))
	}
}
