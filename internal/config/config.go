package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"TTT_LOG_LEVEL" env-default:"info"`
	LogFile  string  `yaml:"log-file" env:"TTT_LOG_FILE" env-default:"tictactoe-client.log"`
	API      API     `yaml:"api"`
	Monitor  Monitor `yaml:"monitor"`
	Game     Game    `yaml:"game"`
}

type API struct {
	BaseURL string        `yaml:"base-url" env:"TTT_API_BASE_URL" env-default:"http://localhost:8000"`
	Timeout time.Duration `yaml:"timeout" env:"TTT_API_TIMEOUT" env-default:"10s"`
}

// Monitor - health polling, Interval 0 disables the loop and leaves retry to the player.
type Monitor struct {
	Interval time.Duration `yaml:"interval" env:"TTT_MONITOR_INTERVAL" env-default:"0s"`
}

// Game - preselected options of the setup screen.
type Game struct {
	Size       int    `yaml:"size" env:"TTT_GAME_SIZE" env-default:"3"`
	Difficulty string `yaml:"difficulty" env:"TTT_GAME_DIFFICULTY" env-default:"medium"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load - reads the config file, a missing file falls back to environment and defaults.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	default:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err = config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) validate() error {
	if that.API.BaseURL == "" {
		return ErrEmptyBaseURL
	}

	if that.API.Timeout <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidTimeout, that.API.Timeout)
	}

	if that.Game.Size != 3 && that.Game.Size != 4 {
		return fmt.Errorf("%w: %d", ErrInvalidGameSize, that.Game.Size)
	}

	return nil
}

var (
	ErrEmptyBaseURL    = errors.New("api base url is empty")
	ErrInvalidTimeout  = errors.New("api timeout must be positive")
	ErrInvalidGameSize = errors.New("game size must be 3 or 4")
)
