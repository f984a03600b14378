package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `api:
  addr: ":9999"
  token: "secret"
store:
  backend: "sqlite"
  path: "/tmp/tasks.db"
planner:
  hours: 6
  start: "08:30"
  allow_split: false
  urgency_window_days: 14
metrics:
  sinks:
    - type: "nop"
  prometheus_addr: ":2112"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	checks := []struct {
		name string
		got  any
		want any
	}{
		{"api.addr", cfg.API.Addr, ":9999"},
		{"api.token", cfg.API.Token, "secret"},
		{"store.backend", cfg.Store.Backend, "sqlite"},
		{"store.path", cfg.Store.Path, "/tmp/tasks.db"},
		{"planner.hours", cfg.Planner.Hours, 6.0},
		{"planner.start", cfg.Planner.Start, "08:30"},
		{"planner.allow_split", cfg.Planner.AllowSplit, false},
		{"planner.urgency_window_days", cfg.Planner.UrgencyWindowDays, 14},
		{"metrics_sink", len(cfg.Metrics.Sinks) == 1 && cfg.Metrics.Sinks[0].Type == "nop", true},
		{"metrics.prometheus_addr", cfg.Metrics.PrometheusAddr, ":2112"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s mismatch: %v", c.name, c.got)
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("api: {}\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.API.Addr != ":8080" {
		t.Errorf("api.addr default: %s", cfg.API.Addr)
	}
	if cfg.Store.Backend != "json" || cfg.Store.Path != "tasks.json" {
		t.Errorf("store defaults: %+v", cfg.Store)
	}
	if cfg.Planner.Hours != 8 || cfg.Planner.Start != "09:00" || cfg.Planner.UrgencyWindowDays != 7 {
		t.Errorf("planner defaults: %+v", cfg.Planner)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("api:\n  addr: \":8080\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("PLANDAY_API__ADDR", ":7070")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.API.Addr != ":7070" {
		t.Errorf("env override not applied: %s", cfg.API.Addr)
	}
}

func TestLoadRejectsBadConfig(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(""), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for unsupported format")
	}

	path = filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("store:\n  backend: \"redis\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for unknown store backend")
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestStoreConfigDefaults(t *testing.T) {
	c := StoreConfig{Backend: "sqlite"}
	c.SetDefaults()
	if c.Path != "tasks.db" {
		t.Errorf("sqlite default path: %s", c.Path)
	}
	c = StoreConfig{}
	c.SetDefaults()
	if c.Backend != "json" || c.Path != "tasks.json" {
		t.Errorf("defaults: %+v", c)
	}
}
