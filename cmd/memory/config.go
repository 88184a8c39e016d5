package main

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/tinytelemetry/memory/internal/model"

	"github.com/spf13/viper"
)

const (
	defaultMismatchDelay = model.DefaultMismatchDelay
	defaultTickInterval  = model.DefaultTickInterval
	defaultSkin          = model.DefaultSkin
	defaultBindHost      = "127.0.0.1"
	defaultAPIPort       = 3000
)

// appConfig is internal runtime configuration.
type appConfig struct {
	MismatchDelay time.Duration `mapstructure:"mismatch-delay"`
	TickInterval  time.Duration `mapstructure:"tick-interval"`
	Skin          string        `mapstructure:"skin"`
	Seed          uint64        `mapstructure:"seed"`
	Plain         bool          `mapstructure:"plain"`
	Verbose       bool          `mapstructure:"verbose"`
	APIEnabled    bool          `mapstructure:"api-enabled"`
	APIPort       int           `mapstructure:"api-port"`
	APIAddr       string        `mapstructure:"api-addr"`
	ConfigDir     string        `mapstructure:"-"`
	ConfigPath    string        `mapstructure:"-"` // not from config file
}

func loadConfig(configPath string) (appConfig, error) {
	var cfg appConfig

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}
	configDir := filepath.Join(home, ".config", "memory")

	v := viper.New()
	v.SetEnvPrefix("MEMORY")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("mismatch-delay", defaultMismatchDelay)
	v.SetDefault("tick-interval", defaultTickInterval)
	v.SetDefault("skin", defaultSkin)
	v.SetDefault("seed", 0)
	v.SetDefault("plain", false)
	v.SetDefault("verbose", false)
	v.SetDefault("api-enabled", false)
	v.SetDefault("api-port", defaultAPIPort)
	v.SetDefault("api-addr", "")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(configDir, "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	cfg.ConfigPath = v.ConfigFileUsed()
	cfg.ConfigDir = configDir
	if configPath != "" {
		cfg.ConfigDir = filepath.Dir(configPath)
	}

	if cfg.MismatchDelay <= 0 {
		return cfg, fmt.Errorf("invalid mismatch-delay: %s", cfg.MismatchDelay)
	}
	if cfg.TickInterval <= 0 {
		return cfg, fmt.Errorf("invalid tick-interval: %s", cfg.TickInterval)
	}
	if cfg.APIPort <= 0 || cfg.APIPort > 65535 {
		return cfg, fmt.Errorf("invalid api-port: %d", cfg.APIPort)
	}
	if cfg.APIAddr == "" {
		cfg.APIAddr = net.JoinHostPort(defaultBindHost, strconv.Itoa(cfg.APIPort))
	}

	return cfg, nil
}
