package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string  `env:"TTT_LOG_LEVEL" env-default:"info"`
	Console  Console `env-prefix:"TTT_"`
}

type Console struct {
	ClearScreen bool `env:"CLEAR_SCREEN" env-default:"true"`
	ShowTree    bool `env:"SHOW_TREE" env-default:"true"`
	ShowLevels  bool `env:"SHOW_LEVELS" env-default:"true"`
}

// Load - reads the configuration from the environment.
func Load() (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("unable to read environment: %w", err)
	}

	return config, nil
}

// MustLoad - like Load, panics on error.
func MustLoad() *Config {
	config, err := Load()
	if err != nil {
		panic(err)
	}

	return config
}
