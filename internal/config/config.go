package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/apperror"
)

type Config struct {
	LogLevel string `yaml:"log-level" env-default:"info"`
	Window   Window `yaml:"window"`
}

type Window struct {
	Title     string `yaml:"title" env-default:"tic-tac-toe"`
	Width     int    `yaml:"width" env-default:"720"`
	Height    int    `yaml:"height" env-default:"720"`
	FrameRate int    `yaml:"frame-rate" env-default:"60"`
}

// Load - reads the config file at path. A missing file is not an error, defaults are used instead.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to apply config defaults: %w", err)
		}
	} else if err = cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// MustLoad - same as Load, panics on error.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func (that *Config) Validate() error {
	if that.Window.Width <= 0 || that.Window.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", apperror.ErrInvalidWindowSize, that.Window.Width, that.Window.Height)
	}

	if that.Window.FrameRate <= 0 {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidFrameRate, that.Window.FrameRate)
	}

	return nil
}
