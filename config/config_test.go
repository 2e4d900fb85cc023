package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nya.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Strict || cfg.Trace || cfg.Quiet {
		t.Errorf("flags should default to off: %+v", cfg)
	}
	if cfg.MaxDepth != 2000 || cfg.MaxTicks != 0 {
		t.Errorf("limits = %d/%d", cfg.MaxTicks, cfg.MaxDepth)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
strict: true
trace: true
trace_filters: ["fact", "$*"]
max_ticks: 5000
max_depth: 64
quiet: true
history: ""
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	want := &Config{
		Strict:       true,
		Trace:        true,
		TraceFilters: []string{"fact", "$*"},
		MaxTicks:     5000,
		MaxDepth:     64,
		Quiet:        true,
		History:      "",
	}
	if !reflect.DeepEqual(cfg, want) {
		t.Errorf("Load = %+v, want %+v", cfg, want)
	}
}

func TestLoadKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "strict: true\n"))
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Strict || cfg.MaxDepth != 2000 {
		t.Errorf("partial file lost defaults: %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"unknown key", "strikt: true\n", "parse"},
		{"bad type", "max_ticks: lots\n", "parse"},
		{"zero depth", "max_depth: 0\n", "max_depth"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want it to mention %q", err, tt.want)
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file should fail")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("NYA_STRICT", "true")
	t.Setenv("NYA_TRACE_FILTER", "f*, g")
	t.Setenv("NYA_MAX_TICKS", "77")
	t.Setenv("NYA_MAX_DEPTH", "12")
	t.Setenv("NYA_HISTORY", "/tmp/h")

	cfg := Default()
	cfg.ApplyEnv()
	if !cfg.Strict {
		t.Error("NYA_STRICT not applied")
	}
	if !reflect.DeepEqual(cfg.TraceFilters, []string{"f*", "g"}) {
		t.Errorf("filters = %v", cfg.TraceFilters)
	}
	if cfg.MaxTicks != 77 || cfg.MaxDepth != 12 {
		t.Errorf("limits = %d/%d", cfg.MaxTicks, cfg.MaxDepth)
	}
	if cfg.History != "/tmp/h" {
		t.Errorf("history = %q", cfg.History)
	}
	if cfg.Trace {
		t.Error("unset NYA_TRACE changed Trace")
	}
}

func TestSplitFilters(t *testing.T) {
	if got := SplitFilters(" a ,, b*,"); !reflect.DeepEqual(got, []string{"a", "b*"}) {
		t.Errorf("SplitFilters = %v", got)
	}
	if got := SplitFilters(""); got != nil {
		t.Errorf("SplitFilters(\"\") = %v", got)
	}
}
