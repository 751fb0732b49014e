package config

import (
	"errors"
	"os"
	"time"

	env "github.com/caarlos0/env/v7"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort         int    `env:"HTTP_PORT" envDefault:"8080"`
	PostgresDSN      string `env:"POSTGRES_DSN"`
	PostgresMaxConns int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
	LogLevel         string `env:"LOG_LEVEL" envDefault:"info"`

	JWT       JWTConfig
	Bootstrap BootstrapConfig
	Proxy     ProxyConfig

	KafkaBrokers []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaTopic   string   `env:"KAFKA_SURVEY_EVENTS_TOPIC" envDefault:"survey.events"`
}

type JWTConfig struct {
	Secret string `env:"JWT_SECRET"`
	// Zero means sessions never expire on their own; they live until
	// an explicit sign-out.
	AccessTokenExpiry time.Duration `env:"JWT_ACCESS_TOKEN_EXPIRY" envDefault:"0"`
}

type BootstrapConfig struct {
	SuperAdminName     string `env:"BOOTSTRAP_SUPER_ADMIN_NAME"     envDefault:"Super Admin"`
	SuperAdminUsername string `env:"BOOTSTRAP_SUPER_ADMIN_USERNAME" envDefault:"superadmin"`
	SuperAdminEmail    string `env:"BOOTSTRAP_SUPER_ADMIN_EMAIL"    envDefault:"superadmin@gesa.local"`
}

type ProxyConfig struct {
	Timeout       time.Duration `env:"PROXY_TIMEOUT" envDefault:"30s"`
	RetryAttempts int           `env:"PROXY_RETRY_ATTEMPTS" envDefault:"0"`
	MaxBodyBytes  int64         `env:"PROXY_MAX_BODY_BYTES" envDefault:"52428800"`
}

func New(envPath string) (Config, error) {
	var c Config

	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	err = env.Parse(&c)
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
