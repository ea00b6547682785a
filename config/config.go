package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	LogLevel             int    `envconfig:"LOG_LEVEL" default:"0"`
	DefaultRecipientType string `envconfig:"DEFAULT_RECIPIENT_TYPE" default:"person"`
	DefaultCountryCode   string `envconfig:"DEFAULT_COUNTRY_CODE" default:""`
}

func Load() (Config, error) {
	var config Config
	err := envconfig.Process("QRTRANSFER", &config)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process config: %w", err)
	}

	return config, nil
}
