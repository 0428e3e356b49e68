package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"bankops/internal/platform"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const envPrefix = "BANKOPS"

type Config struct {
	Logger      LoggerConfig      `mapstructure:"logger"`
	Transaction TransactionConfig `mapstructure:"transaction"`

	// File is the config file that was read, empty when none was found.
	File string `mapstructure:"-"`
}

type LoggerConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
}

type TransactionConfig struct {
	IDStrategy string `mapstructure:"idStrategy" validate:"oneof=time uuid"`
}

// Load reads config.yaml from the given locations. An entry ending in .yaml
// or .yml names a file that must exist; any other entry is a search
// directory. Without locations "." and "./internal/config" are searched.
// Environment variables such as BANKOPS_LOGGER_LEVEL override file values.
func Load(locations ...string) (*Config, error) {
	v := viper.New()

	v.SetDefault("logger.level", "info")
	v.SetDefault("transaction.idStrategy", platform.StrategyTime)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(locations) == 0 {
		locations = []string{".", "./internal/config"}
	}
	for _, loc := range locations {
		switch strings.ToLower(filepath.Ext(loc)) {
		case ".yaml", ".yml":
			v.SetConfigFile(loc)
		default:
			v.AddConfigPath(loc)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}
	}

	var config Config

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}
	config.File = v.ConfigFileUsed()

	if err := validator.New().Struct(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}
