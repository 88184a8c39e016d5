package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.MismatchDelay != time.Second {
		t.Errorf("mismatch-delay = %s, want 1s", cfg.MismatchDelay)
	}
	if cfg.TickInterval != time.Second {
		t.Errorf("tick-interval = %s, want 1s", cfg.TickInterval)
	}
	if cfg.Skin != "default" {
		t.Errorf("skin = %q", cfg.Skin)
	}
	if cfg.APIEnabled {
		t.Error("status API should be off by default")
	}
	if cfg.APIAddr != "127.0.0.1:3000" {
		t.Errorf("api-addr = %q", cfg.APIAddr)
	}
}

func TestLoadConfig_File(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	body := "mismatch-delay: 250ms\nskin: fruit\nseed: 42\napi-enabled: true\napi-port: 3100\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.MismatchDelay != 250*time.Millisecond {
		t.Errorf("mismatch-delay = %s", cfg.MismatchDelay)
	}
	if cfg.Skin != "fruit" || cfg.Seed != 42 {
		t.Errorf("skin/seed = %q/%d", cfg.Skin, cfg.Seed)
	}
	if !cfg.APIEnabled || cfg.APIAddr != "127.0.0.1:3100" {
		t.Errorf("api = %v %q", cfg.APIEnabled, cfg.APIAddr)
	}
	if cfg.ConfigDir != dir {
		t.Errorf("config dir = %q, want %q", cfg.ConfigDir, dir)
	}
	if cfg.ConfigPath != path {
		t.Errorf("config path = %q", cfg.ConfigPath)
	}
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("MEMORY_TICK_INTERVAL", "500ms")
	t.Setenv("MEMORY_PLAIN", "true")

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.TickInterval != 500*time.Millisecond {
		t.Errorf("tick-interval = %s", cfg.TickInterval)
	}
	if !cfg.Plain {
		t.Error("MEMORY_PLAIN not applied")
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "zero delay", body: "mismatch-delay: 0s\n"},
		{name: "negative tick", body: "tick-interval: -1s\n"},
		{name: "port", body: "api-port: 70000\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("HOME", t.TempDir())
			path := filepath.Join(t.TempDir(), "config.yml")
			if err := os.WriteFile(path, []byte(tt.body), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := loadConfig(path); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
