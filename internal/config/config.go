package config

import (
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"go.rowstore/internal/logger"
)

type Config struct {
	Home        string `yaml:"home"`
	LogDir      string `yaml:"log_dir"`
	LogLevel    string `yaml:"log_level"`
	Prompt      string `yaml:"prompt"`
	SyncOnClose bool   `yaml:"sync_on_close"`
}

func LoadConfig(homeOverride, configOverride string) (*Config, error) {
	home, err := resolveHome(homeOverride)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Home:     home,
		LogDir:   filepath.Join(home, "log"),
		LogLevel: "info",
		Prompt:   "db > ",
	}

	cfgPath := configOverride
	if cfgPath == "" {
		cfgPath = filepath.Join(home, "config.yaml")
	}

	f, err := os.Open(cfgPath)
	if err == nil {
		defer f.Close()
		if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", cfgPath, err)
		}
	} else if configOverride != "" {
		// Only the default location is optional
		return nil, err
	}

	if _, err := cfg.Level(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(cfg.LogDir, 0o755); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) Level() (logger.Level, error) {
	return logger.ParseLevel(cfg.LogLevel)
}
