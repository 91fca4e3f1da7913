package config

import (
	"errors"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort string `yaml:"http-port" env:"HTTP_PORT" env-default:"8080"`
	Redis    Redis  `yaml:"redis"`
	Game     Game   `yaml:"game"`
}

type Redis struct {
	Enabled       bool   `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host          string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port          string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	ChannelPrefix string `yaml:"channel-prefix" env:"REDIS_CHANNEL_PREFIX" env-default:"drop_token"`
}

type Game struct {
	WinningLength  int `yaml:"winning-length" env:"GAME_WINNING_LENGTH" env-default:"4"`
	AllowedPlayers int `yaml:"allowed-players" env:"GAME_ALLOWED_PLAYERS" env-default:"2"`
	Rows           int `yaml:"rows" env:"GAME_ROWS" env-default:"4"`
	Columns        int `yaml:"columns" env:"GAME_COLUMNS" env-default:"4"`
	// DefaultName is kept for compatibility with existing config files.
	DefaultName string `yaml:"default-name" env:"GAME_DEFAULT_NAME" env-default:"Stranger"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load - reads the config file, applies env overrides and validates the result.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	switch {
	case that.Game.WinningLength < 1:
		return fmt.Errorf("%w: winning-length must be positive, got %d", ErrInvalidConfig, that.Game.WinningLength)
	case that.Game.AllowedPlayers < 2:
		return fmt.Errorf("%w: allowed-players must be at least 2, got %d", ErrInvalidConfig, that.Game.AllowedPlayers)
	case that.Game.Rows < 1 || that.Game.Columns < 1:
		return fmt.Errorf("%w: board must have positive dimensions, got %dx%d", ErrInvalidConfig, that.Game.Columns, that.Game.Rows)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
