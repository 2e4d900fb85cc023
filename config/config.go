// Package config holds the runtime settings of the nya command: the
// defaults, an optional YAML file and NYA_* environment overrides.
// Command-line flags are applied last by the caller.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/xyproto/env/v2"
	"gopkg.in/yaml.v3"
)

// Config is the runtime configuration
type Config struct {
	Strict       bool     `yaml:"strict"`
	Trace        bool     `yaml:"trace"`
	TraceFilters []string `yaml:"trace_filters"`
	MaxTicks     int64    `yaml:"max_ticks"` // zero or negative: unlimited
	MaxDepth     int      `yaml:"max_depth"` // negative: unlimited
	Quiet        bool     `yaml:"quiet"`     // hide runtime warnings
	History      string   `yaml:"history"`   // REPL history file, "" disables it
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		MaxTicks: 0,
		MaxDepth: 2000,
		History:  defaultHistory(),
	}
}

func defaultHistory() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home + string(os.PathSeparator) + ".nya_history"
}

// Load reads a YAML file over the defaults. Unknown keys are an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from NYA_* environment variables that are set
func (c *Config) ApplyEnv() {
	if env.Has("NYA_STRICT") {
		c.Strict = env.Bool("NYA_STRICT")
	}
	if env.Has("NYA_TRACE") {
		c.Trace = env.Bool("NYA_TRACE")
	}
	if filter := env.Str("NYA_TRACE_FILTER"); filter != "" {
		c.TraceFilters = SplitFilters(filter)
	}
	if env.Has("NYA_MAX_TICKS") {
		c.MaxTicks = int64(env.Int("NYA_MAX_TICKS", int(c.MaxTicks)))
	}
	if env.Has("NYA_MAX_DEPTH") {
		c.MaxDepth = env.Int("NYA_MAX_DEPTH", c.MaxDepth)
	}
	if env.Has("NYA_QUIET") {
		c.Quiet = env.Bool("NYA_QUIET")
	}
	if env.Has("NYA_HISTORY") {
		c.History = env.Str("NYA_HISTORY")
	}
}

// Validate rejects settings no run could use
func (c *Config) Validate() error {
	if c.MaxDepth == 0 {
		return fmt.Errorf("max_depth must not be zero")
	}
	for _, f := range c.TraceFilters {
		if strings.TrimSpace(f) == "" {
			return fmt.Errorf("empty trace filter")
		}
	}
	return nil
}

// SplitFilters splits a comma separated list of trace patterns
func SplitFilters(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
