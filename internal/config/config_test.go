package config

import (
	"os"
	"path/filepath"
	"testing"

	"go.rowstore/internal/logger"
)

func TestLoadConfigDefaults(t *testing.T) {
	home := t.TempDir()

	cfg, err := LoadConfig(home, "")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Home != home {
		t.Errorf("Expected home %s, got %s", home, cfg.Home)
	}
	if cfg.LogDir != filepath.Join(home, "log") {
		t.Errorf("Unexpected log dir %s", cfg.LogDir)
	}
	if cfg.Prompt != "db > " {
		t.Errorf("Unexpected prompt %q", cfg.Prompt)
	}
	if cfg.SyncOnClose {
		t.Error("Sync on close should default to false")
	}
	if _, err := os.Stat(cfg.LogDir); err != nil {
		t.Errorf("Log dir not created: %v", err)
	}
}

func TestLoadConfigFromYAML(t *testing.T) {
	home := t.TempDir()
	logDir := filepath.Join(t.TempDir(), "logs")

	yml := "log_dir: " + logDir + "\nlog_level: debug\nprompt: \"rs> \"\nsync_on_close: true\n"
	if err := os.WriteFile(filepath.Join(home, "config.yaml"), []byte(yml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(home, "")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.LogDir != logDir || cfg.Prompt != "rs> " || !cfg.SyncOnClose {
		t.Fatalf("Config not applied: %+v", cfg)
	}
	level, err := cfg.Level()
	if err != nil || level != logger.DEBUG {
		t.Fatalf("Expected DEBUG, got %v (%v)", level, err)
	}
}

func TestLoadConfigHomeFromEnv(t *testing.T) {
	home := t.TempDir()
	t.Setenv("ROWSTORE_HOME", home)

	cfg, err := LoadConfig("", "")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Home != home {
		t.Fatalf("Expected home %s from env, got %s", home, cfg.Home)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	home := t.TempDir()

	if _, err := LoadConfig(home, filepath.Join(home, "missing.yaml")); err == nil {
		t.Fatal("Expected an error for a missing explicit config file")
	}

	bad := filepath.Join(home, "bad.yaml")
	if err := os.WriteFile(bad, []byte("log_level: loud\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(home, bad); err == nil {
		t.Fatal("Expected an error for an unknown log level")
	}
}

func TestLogPath(t *testing.T) {
	cfg := &Config{LogDir: "/var/log/rowstore"}

	if got := cfg.LogPath("data/users.db"); got != "/var/log/rowstore/users.log" {
		t.Fatalf("Unexpected log path %s", got)
	}
	if got := cfg.LogPath("plain"); got != "/var/log/rowstore/plain.log" {
		t.Fatalf("Unexpected log path %s", got)
	}
}
