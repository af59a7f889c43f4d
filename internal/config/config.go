// Package config loads ngmap settings from .ngmap/config.json and NGMAP_*
// environment variables.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// SchemaVersion is the only config version this build understands
	SchemaVersion = 1

	// Dir is the per-project settings directory
	Dir = ".ngmap"

	// EnvPrefix prefixes every environment override, e.g. NGMAP_ANALYSIS_MAXDEPTH
	EnvPrefix = "NGMAP"
)

// Output formats accepted by output.format
var Formats = []string{"text", "json", "yaml", "toml"}

// Config represents the complete ngmap configuration
type Config struct {
	Version int `json:"version" mapstructure:"version"`

	Analysis AnalysisConfig `json:"analysis" mapstructure:"analysis"`
	Output   OutputConfig   `json:"output" mapstructure:"output"`
	Logging  LoggingConfig  `json:"logging" mapstructure:"logging"`
	Cache    CacheConfig    `json:"cache" mapstructure:"cache"`
}

// AnalysisConfig controls which files are scanned
type AnalysisConfig struct {
	IncludeTests       bool     `json:"includeTests" mapstructure:"includeTests"`
	IncludeStyles      bool     `json:"includeStyles" mapstructure:"includeStyles"`
	IncludeNodeModules bool     `json:"includeNodeModules" mapstructure:"includeNodeModules"`
	MaxDepth           int      `json:"maxDepth" mapstructure:"maxDepth"`
	Ignore             []string `json:"ignore" mapstructure:"ignore"`
	MaxFileSizeBytes   int64    `json:"maxFileSizeBytes" mapstructure:"maxFileSizeBytes"`
	Concurrency        int      `json:"concurrency" mapstructure:"concurrency"`
}

// OutputConfig controls report rendering
type OutputConfig struct {
	Format string `json:"format" mapstructure:"format"`
	// Color is "auto", "always" or "never"
	Color string `json:"color" mapstructure:"color"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Format string `json:"format" mapstructure:"format"`
	Level  string `json:"level" mapstructure:"level"`
	File   string `json:"file" mapstructure:"file"`
}

// CacheConfig sizes in-process caches
type CacheConfig struct {
	PatternCacheSize int `json:"patternCacheSize" mapstructure:"patternCacheSize"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: SchemaVersion,
		Analysis: AnalysisConfig{
			IncludeTests:       false,
			IncludeStyles:      false,
			IncludeNodeModules: false,
			MaxDepth:           10,
			Ignore:             []string{"dist", "coverage"},
			MaxFileSizeBytes:   2000000,
			Concurrency:        8,
		},
		Output: OutputConfig{
			Format: "text",
			Color:  "auto",
		},
		Logging: LoggingConfig{
			Format: "human",
			Level:  "warn",
		},
		Cache: CacheConfig{
			PatternCacheSize: 128,
		},
	}
}

// Path returns the config file location for a project root
func Path(projectRoot string) string {
	return filepath.Join(projectRoot, Dir, "config.json")
}

// LoadConfig loads configuration from .ngmap/config.json, layering NGMAP_*
// environment variables over the file and the file over the defaults.
func LoadConfig(projectRoot string) (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(projectRoot, Dir))

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults registers every key so AutomaticEnv can see it during Unmarshal.
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("version", d.Version)

	v.SetDefault("analysis.includeTests", d.Analysis.IncludeTests)
	v.SetDefault("analysis.includeStyles", d.Analysis.IncludeStyles)
	v.SetDefault("analysis.includeNodeModules", d.Analysis.IncludeNodeModules)
	v.SetDefault("analysis.maxDepth", d.Analysis.MaxDepth)
	v.SetDefault("analysis.ignore", d.Analysis.Ignore)
	v.SetDefault("analysis.maxFileSizeBytes", d.Analysis.MaxFileSizeBytes)
	v.SetDefault("analysis.concurrency", d.Analysis.Concurrency)

	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("output.color", d.Output.Color)

	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.file", d.Logging.File)

	v.SetDefault("cache.patternCacheSize", d.Cache.PatternCacheSize)
}

// Save writes the configuration to .ngmap/config.json
func (c *Config) Save(projectRoot string) error {
	if err := os.MkdirAll(filepath.Join(projectRoot, Dir), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(Path(projectRoot), data, 0644)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Version != SchemaVersion {
		return &ConfigError{Field: "version", Message: fmt.Sprintf("unsupported config version %d", c.Version)}
	}
	if c.Analysis.MaxDepth < 0 {
		return &ConfigError{Field: "analysis.maxDepth", Message: "must not be negative"}
	}
	if c.Analysis.Concurrency < 1 {
		return &ConfigError{Field: "analysis.concurrency", Message: "must be at least 1"}
	}
	if c.Analysis.MaxFileSizeBytes < 0 {
		return &ConfigError{Field: "analysis.maxFileSizeBytes", Message: "must not be negative"}
	}
	if !ValidFormat(c.Output.Format) {
		return &ConfigError{Field: "output.format", Message: fmt.Sprintf("unknown format %q", c.Output.Format)}
	}
	switch c.Output.Color {
	case "auto", "always", "never":
	default:
		return &ConfigError{Field: "output.color", Message: fmt.Sprintf("unknown color mode %q", c.Output.Color)}
	}
	switch c.Logging.Format {
	case "human", "json":
	default:
		return &ConfigError{Field: "logging.format", Message: fmt.Sprintf("unknown log format %q", c.Logging.Format)}
	}
	if c.Cache.PatternCacheSize < 1 {
		return &ConfigError{Field: "cache.patternCacheSize", Message: "must be at least 1"}
	}
	return nil
}

// ValidFormat reports whether name is a supported output format
func ValidFormat(name string) bool {
	for _, f := range Formats {
		if f == name {
			return true
		}
	}
	return false
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
