package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
)

const (
	defaultLocale   = "en"
	defaultLogLevel = "warn"
)

// PackConfig describes a locale pack read from disk. Relative paths are
// resolved against the config file directory.
type PackConfig struct {
	Code    string   `json:"code" toml:"code"`
	Name    string   `json:"name" toml:"name"`
	Rules   string   `json:"rules" toml:"rules"`
	Phrases []string `json:"phrases" toml:"phrases"`
}

type Config struct {
	Locale string `json:"locale" toml:"locale"`

	LogLevel string `json:"log_level" toml:"log_level"`

	Overrides map[string]string `json:"overrides" toml:"overrides"`

	Packs []PackConfig `json:"packs" toml:"packs"`

	dir string `json:"-" toml:"-"`
}

// Load reads the config at path. An empty path means
// $HOME/.config/timeago/config.toml; a missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(homeDir, ".config", "timeago", "config.toml")
	}

	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	if data != nil {
		err = toml.Unmarshal(data, &cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config toml: %w", err)
		}
	}

	cfg.dir = filepath.Dir(path)
	err = cfg.complete()
	if err != nil {
		return nil, fmt.Errorf("complete config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) complete() error {
	if c.Locale == "" {
		c.Locale = defaultLocale
	}

	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	if _, err := c.Level(); err != nil {
		return err
	}

	if c.Overrides == nil {
		c.Overrides = make(map[string]string)
	}

	for i := range c.Packs {
		pack := &c.Packs[i]
		if strings.TrimSpace(pack.Code) == "" {
			return fmt.Errorf("pack %d: code is required", i)
		}
		if pack.Rules == "" {
			return fmt.Errorf("pack %q: rules file is required", pack.Code)
		}
		if len(pack.Phrases) == 0 {
			return fmt.Errorf("pack %q: at least one phrases file is required", pack.Code)
		}

		pack.Rules = c.resolvePath(pack.Rules)
		for j, path := range pack.Phrases {
			pack.Phrases[j] = c.resolvePath(path)
		}
	}

	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (logrus.Level, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.WarnLevel, fmt.Errorf("parse log level: %w", err)
	}
	return level, nil
}

func (c *Config) resolvePath(path string) string {
	path = os.ExpandEnv(path)
	if filepath.IsAbs(path) || c.dir == "" {
		return path
	}
	return filepath.Join(c.dir, path)
}
