// Package config holds runtime configuration for the restaurant
// knowledge store.
package config

import (
	"fmt"
	"time"
)

// Config is the fully resolved application configuration.
type Config struct {
	TableName string `yaml:"table_name"`
	AWS       AWS    `yaml:"aws"`
	Cache     Cache  `yaml:"cache"`

	// LoadedFrom records the sources the configuration was built from,
	// in ascending priority order.
	LoadedFrom []string `yaml:"-"`
}

// AWS configures the DynamoDB client.
type AWS struct {
	Region string `yaml:"region"`
	// Endpoint overrides the service endpoint, e.g. a local
	// DynamoDB instance. Empty means the SDK default.
	Endpoint string `yaml:"endpoint"`
}

// Cache configures the in-process record cache.
type Cache struct {
	Enabled  bool  `yaml:"enabled"`
	MaxItems int   `yaml:"max_items"`
	MaxBytes int64 `yaml:"max_bytes"`
	// TTL of zero means cached records never expire.
	TTL time.Duration `yaml:"ttl"`
}

// Validate checks the resolved configuration for values the application
// cannot run with.
func (c *Config) Validate() error {
	if c.TableName == "" {
		return fmt.Errorf("config: table name must not be empty")
	}
	if c.Cache.Enabled && c.Cache.MaxItems <= 0 {
		return fmt.Errorf("config: cache.max_items must be positive when the cache is enabled, got %d", c.Cache.MaxItems)
	}
	if c.Cache.Enabled && c.Cache.MaxBytes <= 0 {
		return fmt.Errorf("config: cache.max_bytes must be positive when the cache is enabled, got %d", c.Cache.MaxBytes)
	}
	return nil
}
