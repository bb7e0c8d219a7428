// Package config provides configuration loading and validation for the algo
// command line tool.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

// Sort algorithm names.
const (
	AlgorithmQuick  = "quick"
	AlgorithmBubble = "bubble"
)

// Sentinel validation errors.
var (
	ErrInvalidCount        = errors.New("dataset count must be positive")
	ErrInvalidAlgorithm    = errors.New("unknown sort algorithm")
	ErrInvalidMemoryBudget = errors.New("invalid arena memory budget")
	ErrInvalidMaxNodes     = errors.New("arena max nodes must not be negative")
	ErrInvalidLogLevel     = errors.New("invalid log level")
)

var (
	algorithms = []string{AlgorithmQuick, AlgorithmBubble}
	logLevels  = []string{"debug", "info", "warn", "error"}
)

// Config holds all configuration for the algo tool.
type Config struct {
	Dataset   DatasetConfig   `mapstructure:"dataset"`
	Sort      SortConfig      `mapstructure:"sort"`
	Arena     ArenaConfig     `mapstructure:"arena"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// DatasetConfig controls how sample records are produced.
type DatasetConfig struct {
	Input string `mapstructure:"input"`
	Seed  uint64 `mapstructure:"seed"`
	Count int    `mapstructure:"count"`
}

// SortConfig selects the array sort.
type SortConfig struct {
	Algorithm string `mapstructure:"algorithm"`
}

// ArenaConfig bounds node storage of lists and trees.
type ArenaConfig struct {
	MemoryBudget string `mapstructure:"memory_budget"`
	MaxNodes     int    `mapstructure:"max_nodes"`
}

// LoggingConfig holds logging-specific configuration.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

// TelemetryConfig holds OTLP export settings.
type TelemetryConfig struct {
	ServiceName  string            `mapstructure:"service_name"`
	OTLPEndpoint string            `mapstructure:"otlp_endpoint"`
	OTLPHeaders  map[string]string `mapstructure:"otlp_headers"`
	OTLPInsecure bool              `mapstructure:"otlp_insecure"`
}

// LoadConfig loads configuration from file and environment variables.
// Without an explicit path, .algo.yaml is looked up in the working
// directory, ./config and $HOME; a missing file is not an error.
func LoadConfig(configPath string) (*Config, error) {
	viperCfg := viper.New()

	setDefaults(viperCfg)

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName(".algo")
		viperCfg.SetConfigType("yaml")
		viperCfg.AddConfigPath(".")
		viperCfg.AddConfigPath("./config")
		viperCfg.AddConfigPath("$HOME")
	}

	viperCfg.SetEnvPrefix("ALGO")
	viperCfg.AutomaticEnv()
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFoundErr) {
			return nil, fmt.Errorf("failed to read config file: %w", readErr)
		}
	}

	var config Config

	unmarshalErr := viperCfg.Unmarshal(&config)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", unmarshalErr)
	}

	validateErr := validateConfig(&config)
	if validateErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", validateErr)
	}

	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("dataset.count", DefaultDatasetCount)
	viperCfg.SetDefault("dataset.seed", DefaultDatasetSeed)
	viperCfg.SetDefault("dataset.input", "")

	viperCfg.SetDefault("sort.algorithm", DefaultSortAlgorithm)

	viperCfg.SetDefault("arena.memory_budget", DefaultArenaMemoryBudget)
	viperCfg.SetDefault("arena.max_nodes", DefaultArenaMaxNodes)

	viperCfg.SetDefault("logging.level", DefaultLogLevel)
	viperCfg.SetDefault("logging.json", DefaultLogJSON)

	viperCfg.SetDefault("telemetry.service_name", DefaultServiceName)
	viperCfg.SetDefault("telemetry.otlp_endpoint", DefaultOTLPEndpoint)
	viperCfg.SetDefault("telemetry.otlp_insecure", DefaultOTLPInsecure)
}

// Validate checks the configuration after flags have been applied.
func (c *Config) Validate() error {
	return validateConfig(c)
}

// validateConfig validates the configuration.
func validateConfig(config *Config) error {
	if config.Dataset.Count <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCount, config.Dataset.Count)
	}

	if !slices.Contains(algorithms, config.Sort.Algorithm) {
		return fmt.Errorf("%w: %q", ErrInvalidAlgorithm, config.Sort.Algorithm)
	}

	if config.Arena.MaxNodes < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidMaxNodes, config.Arena.MaxNodes)
	}

	if _, err := config.Arena.Budget(); err != nil {
		return err
	}

	if !slices.Contains(logLevels, strings.ToLower(config.Logging.Level)) {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, config.Logging.Level)
	}

	return nil
}
