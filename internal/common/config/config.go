// internal/common/config/config.go
package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Matching MatchingConfig `mapstructure:"matching"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// --- Core App/Infrastructure Config ---

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// StorageConfig controls how collections are keyed in the store.
type StorageConfig struct {
	Namespace string `mapstructure:"namespace"`
}

// MatchingConfig holds scorer settings. NoiseSeed of 0 means seed from the
// clock at startup.
type MatchingConfig struct {
	NoiseSeed int64 `mapstructure:"noise_seed"`
}

type MetricsConfig struct {
	ListenAddress string `mapstructure:"listen_address"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func validateConfig(cfg *Config) error {
	if cfg.Redis.Address == "" {
		return fmt.Errorf("redis.address is required")
	}
	if cfg.Storage.Namespace == "" {
		return fmt.Errorf("storage.namespace is required")
	}
	return nil
}
