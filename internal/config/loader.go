package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Load resolves configuration from three sources in ascending priority:
//
//  1. Built-in defaults
//  2. An optional YAML file named by the CONFIG_FILE environment
//     variable (a missing file is only an error when the variable is
//     explicitly set)
//  3. Environment variables
//
// The resolved configuration is validated before being returned.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
		cfg.LoadedFrom = append(cfg.LoadedFrom, path)
	}

	loadEnvironment(cfg)
	cfg.LoadedFrom = append(cfg.LoadedFrom, "environment")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MustLoad is Load for program startup paths where a bad configuration
// should abort the process.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}
	return cfg
}

func defaultConfig() *Config {
	return &Config{
		TableName: "restaurants",
		AWS: AWS{
			Region: "eu-central-1",
		},
		Cache: Cache{
			Enabled:  true,
			MaxItems: 10000,
			MaxBytes: 64 * 1024 * 1024,
			TTL:      0,
		},
		LoadedFrom: []string{"defaults"},
	}
}

func loadFile(path string, cfg *Config) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open config file %s: %w", path, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// loadEnvironment overlays environment variables, the highest priority
// source.
func loadEnvironment(cfg *Config) {
	if val := os.Getenv("TABLE_NAME"); val != "" {
		cfg.TableName = val
	}
	if val := os.Getenv("AWS_REGION"); val != "" {
		cfg.AWS.Region = val
	}
	if val := os.Getenv("DYNAMODB_ENDPOINT"); val != "" {
		cfg.AWS.Endpoint = val
	}
	if val := os.Getenv("CACHE_ENABLED"); val != "" {
		cfg.Cache.Enabled = parseBool(val)
	}
	if val := os.Getenv("CACHE_MAX_ITEMS"); val != "" {
		if n := parseInt(val); n > 0 {
			cfg.Cache.MaxItems = n
		}
	}
	if val := os.Getenv("CACHE_MAX_BYTES"); val != "" {
		if n, err := strconv.ParseInt(val, 10, 64); err == nil && n > 0 {
			cfg.Cache.MaxBytes = n
		}
	}
	if val := os.Getenv("CACHE_TTL"); val != "" {
		if d, err := time.ParseDuration(val); err == nil && d >= 0 {
			cfg.Cache.TTL = d
		}
	}
}

func parseInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

func parseBool(s string) bool {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false
	}
	return b
}
