/*
Package config
File: config.go
Description:
    Layered runtime configuration for the ledger.

    Sources, highest priority first:
    1. Environment variables with the EXOLOG_ prefix (a .env file is loaded first)
    2. The config file (exolog.yaml)
    3. Defaults
*/

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces every environment override, e.g. EXOLOG_JOURNAL_DIR.
const EnvPrefix = "EXOLOG"

// Config is the root configuration.
type Config struct {
	Journal JournalConfig `mapstructure:"journal"`
	Server  ServerConfig  `mapstructure:"server"`
	Logging LoggingConfig `mapstructure:"logging"`
	Data    DataConfig    `mapstructure:"data"`
}

// JournalConfig locates and follows the game journals.
type JournalConfig struct {
	// Directory holding Journal.*.log files
	Dir string `mapstructure:"dir" validate:"required"`

	// Keep following the directory after the initial read
	Watch bool `mapstructure:"watch"`

	// Only replay events after the last exploration data sale
	SinceLastSale bool `mapstructure:"since_last_sale"`
}

// ServerConfig holds the display API listener.
type ServerConfig struct {
	Address string `mapstructure:"address" validate:"required,hostname_port"`
}

// DataConfig points at replacement reference data. Empty paths use the embedded tables.
type DataConfig struct {
	TablesPath  string `mapstructure:"tables_path" validate:"omitempty,file"`
	SpeciesPath string `mapstructure:"species_path" validate:"omitempty,file"`

	// Embedded species roster used when SpeciesPath is empty
	SpeciesRoster string `mapstructure:"species_roster" validate:"oneof=core full"`
}

// Load reads configuration from the given file, or searches the default
// locations when configPath is empty. A missing file is not an error.
func Load(configPath string) (*Config, error) {
	// Load .env file if it exists (doesn't error if missing)
	_ = godotenv.Load()

	v := viper.New()
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("exolog")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "exolog"))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}
