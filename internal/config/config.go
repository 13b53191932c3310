package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/adrg/xdg"
	"github.com/ilyakaznacheev/cleanenv"
)

const (
	StorageMemory = "memory"
	StorageRedis  = "redis"

	localConfigFile = "config.yml"
	xdgConfigFile   = "tictactoe/config.yml"
)

var ErrUnknownStorage = errors.New("unknown storage driver")

type Config struct {
	LogLevel string  `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	LogFile  string  `yaml:"log-file" env:"TICTACTOE_LOG_FILE"`
	PlayerID string  `yaml:"player-id" env:"TICTACTOE_PLAYER_ID" env-default:"local"`
	HTTPPort string  `yaml:"http-port" env:"TICTACTOE_HTTP_PORT"`
	Storage  Storage `yaml:"storage"`
	Redis    Redis   `yaml:"redis"`
	Icons    Icons   `yaml:"icons"`
}

type Storage struct {
	Driver string `yaml:"driver" env:"TICTACTOE_STORAGE" env-default:"memory"`
}

type Redis struct {
	Host string `yaml:"host" env:"TICTACTOE_REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"TICTACTOE_REDIS_PORT" env-default:"6379"`
}

// Icons are the marks drawn for each side on the console board.
type Icons struct {
	Human     string `yaml:"human" env-default:"X"`
	Automated string `yaml:"automated" env-default:"O"`
}

// Load reads the config at path. An empty path falls back to ./config.yml,
// then to the XDG config file, then to environment variables and defaults only.
func Load(path string) (*Config, error) {
	config := &Config{}

	if path == "" {
		path = lookupPath()
	}

	if path == "" {
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read config from environment: %w", err)
		}
	} else if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file %s: %w", path, err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func lookupPath() string {
	if _, err := os.Stat(localConfigFile); err == nil {
		return localConfigFile
	}

	if path, err := xdg.SearchConfigFile(xdgConfigFile); err == nil {
		return path
	}

	return ""
}

func (that *Config) validate() error {
	switch that.Storage.Driver {
	case StorageMemory, StorageRedis:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStorage, that.Storage.Driver)
	}
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
