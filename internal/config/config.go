package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App      App
	HTTP     HTTP
	Probe    Probe
	Metrics  Metrics
	Dataset  Dataset
	Model    Model
	Postgres Postgres
	Redis    Redis
	Bot      Bot
}

type App struct {
	Name     string     `env:"APP_NAME" envDefault:"house-price"`
	Version  string     `env:"APP_VERSION" envDefault:"dev"`
	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
}

type HTTP struct {
	ListenAddress     string        `env:"HTTP_LISTEN_ADDRESS" envDefault:":8080"`
	ShutdownTimeout   time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" envDefault:"5s"`
	LogFieldMaxLen    int           `env:"HTTP_LOG_FIELD_MAX_LEN" envDefault:"2048"`
}

type Probe struct {
	ListenAddress string `env:"PROBE_LISTEN_ADDRESS" envDefault:":8081"`
}

type Metrics struct {
	ListenAddress string `env:"METRICS_LISTEN_ADDRESS" envDefault:":9090"`
}

// Bot — необязательный Telegram-бот для алертов о деградации на старте.
type Bot struct {
	Token  string `env:"BOT_TOKEN" json:"-"`
	ChatID int64  `env:"BOT_CHAT_ID"`
}

func (b Bot) Enabled() bool {
	return b.Token != "" && b.ChatID != 0
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	if err := config.validate(); err != nil {
		return Config{}, fmt.Errorf("config.validate: %w", err)
	}

	return config, nil
}

func (c Config) validate() error {
	switch c.Dataset.Source {
	case DatasetSourceCSV:
	case DatasetSourcePostgres:
		if c.Postgres.DSN == "" {
			return fmt.Errorf("PG_DSN is required for DATASET_SOURCE=%s", c.Dataset.Source)
		}
	default:
		return fmt.Errorf("unknown DATASET_SOURCE %q", c.Dataset.Source)
	}

	switch c.Model.Source {
	case ModelSourceFile:
	case ModelSourceRedis:
		if c.Redis.Address == "" {
			return fmt.Errorf("REDIS_ADDRESS is required for MODEL_SOURCE=%s", c.Model.Source)
		}
	case ModelSourceHTTP:
		if c.Model.URL == "" {
			return fmt.Errorf("MODEL_URL is required for MODEL_SOURCE=%s", c.Model.Source)
		}
	default:
		return fmt.Errorf("unknown MODEL_SOURCE %q", c.Model.Source)
	}

	return nil
}
