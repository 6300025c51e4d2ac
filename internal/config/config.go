package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel    string `yaml:"log-level" env:"BINGO_LOG_LEVEL" env-default:"info"`
	DefaultSize int    `yaml:"default-size" env:"BINGO_DEFAULT_SIZE" env-default:"5"`
	Pool        Pool   `yaml:"pool"`
}

// Pool is the inclusive range the card numbers are drawn from.
type Pool struct {
	Min int `yaml:"min" env:"BINGO_POOL_MIN" env-default:"1"`
	Max int `yaml:"max" env:"BINGO_POOL_MAX" env-default:"100"`
}

// MustLoad - load all configurations in config.yml file, or from the environment when the file is absent.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

func (that *Pool) Size() int {
	return that.Max - that.Min + 1
}
