// Package config loads the on-disk analyzer configuration. It generalizes
// the teacher's yaml.v3 golden-fixture usage (analyzer/analyzer_test.go)
// from test-only (de)serialization into a production config format.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls an Analyzer run: the package root, URL resolution
// behavior, and how much the exporter/CLI report.
type Config struct {
	// PackageRoot is the file:// or http(s):// URL of the package root
	// passed to urlmodel.Resolver.
	PackageRoot string `yaml:"packageRoot"`
	// ComponentDir names the sibling directory out-of-package imports
	// redirect into; defaults to "bower_components" when empty.
	ComponentDir string `yaml:"componentDir,omitempty"`
	// Entry is the package-relative path to the analysis entry point.
	Entry string `yaml:"entry"`
	// IncludeExternal is read from the config file but not consulted by the
	// analyze command or the exporter: exported output includes every
	// reachable feature, including those of documents redirected into
	// ComponentDir, whatever its value.
	IncludeExternal bool `yaml:"includeExternal,omitempty"`
	// MaxWarnings caps how many warnings the CLI prints before truncating;
	// zero means unlimited.
	MaxWarnings int `yaml:"maxWarnings,omitempty"`
	// LogLevel is one of "debug", "info", "warning", "error". It is read
	// from the config file but not applied to any logger; the logger keeps
	// its own default level.
	LogLevel string `yaml:"logLevel,omitempty"`
}

// Load reads and parses a YAML config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if cfg.Entry == "" {
		return nil, fmt.Errorf("config: %s: entry is required", path)
	}
	if cfg.PackageRoot == "" {
		return nil, fmt.Errorf("config: %s: packageRoot is required", path)
	}
	return &cfg, nil
}
