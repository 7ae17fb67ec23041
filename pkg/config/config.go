package config

import (
	"os"
	"strings"

	"github.com/anacrolix/log"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Stores StoresConfig `yaml:"stores"`
	Log    LogConfig    `yaml:"log"`
}

type StoresConfig struct {
	TreeDegree     int     `yaml:"tree_degree"`
	PathDegree     int     `yaml:"path_degree"`
	BloomCapacity  uint    `yaml:"bloom_capacity"`
	BloomFalseProb float64 `yaml:"bloom_false_prob"`
	DefaultKind    string  `yaml:"default_kind"` // tree, path or seq
}

type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warning, error
}

var levels = map[string]log.Level{
	"debug":   log.Debug,
	"info":    log.Info,
	"warning": log.Warning,
	"error":   log.Error,
}

func defaults() *Config {
	return &Config{
		Stores: StoresConfig{
			TreeDegree:     32,
			PathDegree:     64,
			BloomCapacity:  100000,
			BloomFalseProb: 0.01,
			DefaultKind:    "tree",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

func Load(configPath string) (*Config, error) {
	cfg := defaults()

	if configPath == "" {
		for _, p := range []string{"configs/ordmap.yaml", "ordmap.yaml"} {
			data, err := os.ReadFile(p)
			if err == nil {
				if err := yaml.Unmarshal(data, cfg); err != nil {
					return cfg, errors.Wrapf(err, "parsing %s", p)
				}
				applyDefaults(cfg)
				return cfg, nil
			}
		}
		return cfg, nil // no file found: use defaults
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return cfg, errors.Wrap(err, "reading config")
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing %s", configPath)
	}

	applyDefaults(cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	def := defaults()
	if cfg.Stores.TreeDegree < 2 {
		cfg.Stores.TreeDegree = def.Stores.TreeDegree
	}
	if cfg.Stores.PathDegree < 2 {
		cfg.Stores.PathDegree = def.Stores.PathDegree
	}
	if cfg.Stores.BloomCapacity == 0 {
		cfg.Stores.BloomCapacity = def.Stores.BloomCapacity
	}
	if cfg.Stores.BloomFalseProb <= 0 || cfg.Stores.BloomFalseProb >= 1 {
		cfg.Stores.BloomFalseProb = def.Stores.BloomFalseProb
	}
	cfg.Stores.DefaultKind = strings.ToLower(strings.TrimSpace(cfg.Stores.DefaultKind))
	if cfg.Stores.DefaultKind == "" {
		cfg.Stores.DefaultKind = def.Stores.DefaultKind
	}
	if _, ok := levels[strings.ToLower(cfg.Log.Level)]; !ok {
		cfg.Log.Level = def.Log.Level
	}
}

// LogLevel maps the configured level name to a logger filter level.
func (c *Config) LogLevel() log.Level {
	if l, ok := levels[strings.ToLower(c.Log.Level)]; ok {
		return l
	}
	return log.Info
}

// Logger returns the default logger filtered at the configured level.
func (c *Config) Logger() log.Logger {
	return log.Default.FilterLevel(c.LogLevel())
}
