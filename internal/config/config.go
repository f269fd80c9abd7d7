// Package config provides configuration loading and validation for the CLI
// and the HTTP adapter.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Environment variable names
const (
	EnvDataDir      = "CAREER_PLANNER_DATA_DIR"
	EnvStore        = "CAREER_PLANNER_STORE"
	EnvCatalog      = "CAREER_PLANNER_CATALOG"
	EnvPort         = "CAREER_PLANNER_PORT"
	EnvHost         = "CAREER_PLANNER_HOST"
	EnvResultsLimit = "CAREER_PLANNER_RESULTS_LIMIT"
	EnvLogLevel     = "LOG_LEVEL"
	EnvLogFormat    = "LOG_FORMAT"
)

// Config represents the planner configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults.
type Config struct {
	// Storage
	DataDir     string `json:"data_dir,omitempty"`                                     // Directory holding the profile store
	Store       string `json:"store,omitempty" validate:"omitempty,oneof=file sqlite"` // Storage backend
	CatalogPath string `json:"catalog_path,omitempty"`                                 // Catalog JSON file; empty uses the built-in catalog

	// HTTP adapter
	Host string `json:"host,omitempty" validate:"omitempty,ip|hostname"`
	Port int    `json:"port,omitempty" validate:"gte=0,lte=65535"`

	// Output
	ResultsLimit int    `json:"results_limit,omitempty" validate:"gte=0"` // Majors shown by default; 0 shows all
	LogLevel     string `json:"log_level,omitempty" validate:"omitempty,oneof=trace debug info warn error"`
	LogFormat    string `json:"log_format,omitempty" validate:"omitempty,oneof=pretty json"`
	Verbose      bool   `json:"verbose,omitempty"` // Print profile details alongside results
}

// Defaults returns the configuration used when nothing else is set
func Defaults() Config {
	return Config{
		DataDir:      "./data",
		Store:        "file",
		Host:         "127.0.0.1",
		Port:         8787,
		ResultsLimit: 8,
		LogLevel:     "info",
		LogFormat:    "pretty",
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv returns the configuration set through environment variables,
// loading a .env file from the working directory first if one exists.
// Unset or unparsable variables leave the field at its zero value.
func FromEnv() Config {
	_ = godotenv.Load() // .env is optional

	return Config{
		DataDir:      os.Getenv(EnvDataDir),
		Store:        os.Getenv(EnvStore),
		CatalogPath:  os.Getenv(EnvCatalog),
		Host:         os.Getenv(EnvHost),
		Port:         getEnvInt(EnvPort),
		ResultsLimit: getEnvInt(EnvResultsLimit),
		LogLevel:     os.Getenv(EnvLogLevel),
		LogFormat:    os.Getenv(EnvLogFormat),
	}
}

func getEnvInt(key string) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return 0
	}
	return n
}

// Resolve builds the effective configuration: environment over the config
// file at path (skipped when path is empty) over Defaults.
func Resolve(path string) (*Config, error) {
	file := &Config{}
	if path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}
		file = loaded
	}

	env := FromEnv()
	merged := env.MergeWithDefaults(file.MergeWithDefaults(Defaults()))
	merged.Verbose = file.Verbose

	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("config error: invalid %s %v (%s)", jsonName(fe.StructField()), fe.Value(), fe.Tag())
		}
		return fmt.Errorf("config error: %w", err)
	}

	// Validate file paths exist (if specified)
	if c.CatalogPath != "" {
		if _, err := os.Stat(c.CatalogPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: catalog file not found: %s", c.CatalogPath)
		}
	}

	return nil
}

func jsonName(field string) string {
	switch field {
	case "DataDir":
		return "data_dir"
	case "CatalogPath":
		return "catalog_path"
	case "ResultsLimit":
		return "results_limit"
	case "LogLevel":
		return "log_level"
	case "LogFormat":
		return "log_format"
	case "Store", "Host", "Port":
		return strings.ToLower(field)
	default:
		return field
	}
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to layer env over file over built-in defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.DataDir == "" {
		result.DataDir = defaults.DataDir
	}
	if result.Store == "" {
		result.Store = defaults.Store
	}
	if result.CatalogPath == "" {
		result.CatalogPath = defaults.CatalogPath
	}
	if result.Host == "" {
		result.Host = defaults.Host
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.LogFormat == "" {
		result.LogFormat = defaults.LogFormat
	}

	// Int fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.ResultsLimit == 0 {
		result.ResultsLimit = defaults.ResultsLimit
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// Addr returns the host:port the HTTP adapter listens on
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
