package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type key string

const (
	KeyLogger  = key("logger")
	KeyMetrics = key("metrics")
	KeyUUID    = key("uuid")
)

type Config struct {
	Service  Service
	Platform Platform
	Logger   Logger
	Metrics  Metrics
	Postgres Postgres
	Redis    Redis
	Kafka    Kafka
	Auth     Auth
	Canaux   Canaux
	Internal Internal
	Web      Web
}

type Service struct {
	Name string `env:"SERVICE_NAME" env-default:"chats-service"`
	Port string `env:"SERVICE_PORT" env-default:"8083"`
}

type Platform struct {
	Env string `env:"ENV" env-default:"dev"`
}

type Logger struct {
	Host string `env:"LOGGER_SERVICE_HOST"`
	Port string `env:"LOGGER_SERVICE_PORT"`
}

type Metrics struct {
	Host string `env:"GRAFANA_HOST"`
	Port int    `env:"GRAFANA_PORT"`
}

type Postgres struct {
	User     string `env:"CHATS_SERVICE_POSTGRES_USER"`
	Password string `env:"CHATS_SERVICE_POSTGRES_PASSWORD"`
	Database string `env:"CHATS_SERVICE_POSTGRES_DB"`
	Host     string `env:"CHATS_SERVICE_POSTGRES_HOST"`
	Port     string `env:"CHATS_SERVICE_POSTGRES_PORT"`
}

type Redis struct {
	Host     string `env:"CHATS_SERVICE_REDIS_HOST"`
	Port     string `env:"CHATS_SERVICE_REDIS_PORT"`
	Password string `env:"CHATS_SERVICE_REDIS_PASSWORD"`
	DB       int    `env:"CHATS_SERVICE_REDIS_DB" env-default:"0"`
}

type Kafka struct {
	Host      string `env:"KAFKA_HOST"`
	Port      string `env:"KAFKA_PORT"`
	UserTopic string `env:"USER_TOPIC" env-default:"user_updates"`
}

// Auth is the account/session collaborator reachable over internal HTTP.
type Auth struct {
	BaseURL string        `env:"AUTH_SERVICE_URL"`
	Timeout time.Duration `env:"AUTH_SERVICE_TIMEOUT" env-default:"5s"`
}

// Canaux is the channel-metadata collaborator reachable over internal HTTP.
type Canaux struct {
	BaseURL string        `env:"CANAUX_SERVICE_URL"`
	Timeout time.Duration `env:"CANAUX_SERVICE_TIMEOUT" env-default:"5s"`
}

type Internal struct {
	// Secret signs the service token presented to collaborators.
	Secret string `env:"INTERNAL_SERVICE_SECRET"`
}

type Web struct {
	// Domain is the browser origin allowed to open realtime connections.
	Domain string `env:"DOMAINE_WEB"`
}

func MustLoad() *Config {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		log.Fatalf("failed to read env config: %v", err)
	}
	return cfg
}
