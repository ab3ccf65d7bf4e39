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
	Bot      Bot
	Session  Session
	Cache    Cache
	Redis    Redis
	Postgres Postgres
	SQLite   SQLite
}

type App struct {
	Name           string     `env:"APP_NAME" envDefault:"tg-dealshell"`
	Version        string     `env:"APP_VERSION" envDefault:"dev"`
	LogLevel       slog.Level `env:"LOG_LEVEL" envDefault:"info"`
	LogFieldMaxLen int        `env:"LOG_FIELD_MAX_LEN" envDefault:"4096"`
	// LogMasking включает маскирование реквизитов и initData в логах HTTP.
	LogMasking bool `env:"LOG_MASKING" envDefault:"true"`
}

type HTTP struct {
	ListenAddress       string        `env:"HTTP_LISTEN_ADDRESS" envDefault:":8080"`
	ProbeListenAddress  string        `env:"PROBE_LISTEN_ADDRESS" envDefault:":8081"`
	MetricListenAddress string        `env:"METRIC_LISTEN_ADDRESS" envDefault:":9090"`
	ShutdownTimeout     time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	ReadHeaderTimeout   time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" envDefault:"5s"`
	CORSAllowedOrigins  []string      `env:"CORS_ALLOWED_ORIGINS" envDefault:"https://web.telegram.org" envSeparator:","`
}

type Bot struct {
	Token    string `env:"BOT_TOKEN" json:"-"`
	Username string `env:"BOT_USERNAME" envDefault:"playerok_bot"`
	LinkHost string `env:"DEAL_LINK_HOST" envDefault:"t.me"`
	// ValidateInitData можно выключить только для локального запуска вне Telegram.
	ValidateInitData bool          `env:"INIT_DATA_VALIDATION" envDefault:"true"`
	InitDataMaxAge   time.Duration `env:"INIT_DATA_MAX_AGE" envDefault:"24h"`
}

type Session struct {
	TTL             time.Duration `env:"SESSION_TTL" envDefault:"30m"`
	CleanupInterval time.Duration `env:"SESSION_CLEANUP_INTERVAL" envDefault:"5m"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	if err := config.validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

func (c Config) validate() error {
	if c.Bot.ValidateInitData && c.Bot.Token == "" {
		return fmt.Errorf("BOT_TOKEN is required when INIT_DATA_VALIDATION is on: %w", ErrInvalidConfig)
	}

	if !c.Cache.Driver.Valid() {
		return fmt.Errorf("CACHE_DRIVER %q: %w", c.Cache.Driver, ErrInvalidConfig)
	}

	if c.Cache.Driver == CacheDriverPostgres && c.Postgres.DSN == "" {
		return fmt.Errorf("PG_DSN is required for the postgres cache driver: %w", ErrInvalidConfig)
	}

	return nil
}
