package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// DefaultConfigFile is the YAML file consulted when present.
const DefaultConfigFile = "cct.yaml"

// Config represents the complete processor configuration
type Config struct {
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Paths   PathsConfig   `yaml:"paths" envconfig:"PATHS"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info"`
	Format   string `yaml:"format" envconfig:"FORMAT" default:"json"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"console"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/process.log"`
}

// PathsConfig contains the batch input/output locations. SnapshotPath is
// optional: when empty, the data snapshot digest is not produced and the
// rest of the batch is unaffected.
type PathsConfig struct {
	InputDir     string `yaml:"input_dir" envconfig:"INPUT_DIR" default:"data"`
	OutputDir    string `yaml:"output_dir" envconfig:"OUTPUT_DIR" default:"processed_data"`
	SnapshotPath string `yaml:"snapshot_path" envconfig:"SNAPSHOT_PATH"`
}

// Default returns the built-in configuration, used when loading fails.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "console",
			FilePath: "logs/process.log",
		},
		Paths: PathsConfig{
			InputDir:  "data",
			OutputDir: "processed_data",
		},
	}
}

// Load loads configuration from environment variables and the optional
// config file. Environment values take precedence.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigFile)
}

// LoadFrom is Load with an explicit config file path, for tests.
func LoadFrom(configFile string) (*Config, error) {
	var cfg Config

	if err := envconfig.Process("CCT", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if _, err := os.Stat(configFile); err == nil {
		fileCfg, err := loadFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		cfg = mergeConfigs(*fileCfg, cfg)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile loads configuration from a YAML file
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// mergeConfigs merges file config with env config (env takes precedence).
// envconfig fills defaults, so a field only falls back to the file value
// when the env side matches the default or is empty.
func mergeConfigs(fileConfig, envConfig Config) Config {
	if fileConfig.Logging.Level != "" && os.Getenv("CCT_LOGGING_LEVEL") == "" {
		envConfig.Logging.Level = fileConfig.Logging.Level
	}
	if fileConfig.Logging.Format != "" && os.Getenv("CCT_LOGGING_FORMAT") == "" {
		envConfig.Logging.Format = fileConfig.Logging.Format
	}
	if fileConfig.Logging.Output != "" && os.Getenv("CCT_LOGGING_OUTPUT") == "" {
		envConfig.Logging.Output = fileConfig.Logging.Output
	}
	if fileConfig.Logging.FilePath != "" && os.Getenv("CCT_LOGGING_FILE_PATH") == "" {
		envConfig.Logging.FilePath = fileConfig.Logging.FilePath
	}
	if fileConfig.Paths.InputDir != "" && os.Getenv("CCT_PATHS_INPUT_DIR") == "" {
		envConfig.Paths.InputDir = fileConfig.Paths.InputDir
	}
	if fileConfig.Paths.OutputDir != "" && os.Getenv("CCT_PATHS_OUTPUT_DIR") == "" {
		envConfig.Paths.OutputDir = fileConfig.Paths.OutputDir
	}
	if fileConfig.Paths.SnapshotPath != "" && os.Getenv("CCT_PATHS_SNAPSHOT_PATH") == "" {
		envConfig.Paths.SnapshotPath = fileConfig.Paths.SnapshotPath
	}
	return envConfig
}

// validate checks configuration values
func (c *Config) validate() error {
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid logging level: %s", c.Logging.Level)
	}

	switch strings.ToLower(c.Logging.Output) {
	case "console", "file", "both":
	default:
		return fmt.Errorf("invalid logging output: %s", c.Logging.Output)
	}

	if c.Paths.InputDir == "" {
		return fmt.Errorf("input directory must not be empty")
	}
	if c.Paths.OutputDir == "" {
		return fmt.Errorf("output directory must not be empty")
	}

	return nil
}
