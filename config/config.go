package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Server   ServerConfig
	Logger   LoggerConfig
	Upstream UpstreamConfig
	Session  SessionConfig
	Redis    RedisConfig
	Postgres PostgresConfig
	Kafka    KafkaConfig
	I18n     I18nConfig
}

type ServerConfig struct {
	AppEnv   string
	HTTPPort string
	// CookieSecure controls the Secure attribute on the token and session
	// cookies. Enable whenever the service is reached over HTTPS.
	CookieSecure bool
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

// UpstreamConfig points at the external commerce API this service consumes.
type UpstreamConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

type SessionConfig struct {
	CookieName string
	// StateBackend selects the persistent key-value store: "redis",
	// "postgres" or "memory".
	StateBackend string
	// TokenCookieMaxAgeDays is the lifetime of the accessToken/refreshToken
	// cookies mirrored for server-rendered reads.
	TokenCookieMaxAgeDays int
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type PostgresConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int
	ConnMaxIdleTime int
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
	GroupID string
}

type I18nConfig struct {
	LocalesDir     string
	DefaultLocale  string
	SupportedLangs []string
}

func LoadEnv() *Config {
	// Basic config loading
	// In a real scenario, use structured config loader like viper or koanf
	return &Config{
		Server: ServerConfig{
			AppEnv:       getEnv("APP_ENV", "dev"),
			HTTPPort:     getEnv("HTTP_PORT", ":8084"),
			CookieSecure: getEnvBool("COOKIE_SECURE", false),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "debug"),
			Encoding:          getEnv("LOGGER_ENCODING", "console"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		Upstream: UpstreamConfig{
			BaseURL:        getEnv("UPSTREAM_BASE_URL", "http://localhost:8080/api/v1"),
			TimeoutSeconds: getEnvInt("UPSTREAM_TIMEOUT_SECONDS", 15),
		},
		Session: SessionConfig{
			CookieName:            getEnv("SESSION_COOKIE_NAME", "storefront_session"),
			StateBackend:          getEnv("SESSION_STATE_BACKEND", "redis"),
			TokenCookieMaxAgeDays: getEnvInt("TOKEN_COOKIE_MAX_AGE_DAYS", 7),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Postgres: PostgresConfig{
			Host:            getEnv("POSTGRES_HOST", "localhost"),
			Port:            getEnv("POSTGRES_PORT", "5433"),
			User:            getEnv("POSTGRES_USER", "omnipos"),
			Password:        getEnv("POSTGRES_PASSWORD", "omnipos"),
			DBName:          getEnv("POSTGRES_DB", "omnipos_storefront"),
			SSLMode:         getEnv("POSTGRES_SSLMODE", "disable"),
			MaxOpenConns:    getEnvInt("POSTGRES_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvInt("POSTGRES_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvInt("POSTGRES_CONN_MAX_LIFETIME", 300),
			ConnMaxIdleTime: getEnvInt("POSTGRES_CONN_MAX_IDLE_TIME", 60),
		},
		Kafka: KafkaConfig{
			Brokers: getEnvSlice("KAFKA_BROKERS", []string{"localhost:9092"}),
			Topic:   getEnv("KAFKA_TOPIC_STOCK", "inventory.stock"),
			GroupID: getEnv("KAFKA_GROUP_STOREFRONT", "storefront"),
		},
		I18n: I18nConfig{
			LocalesDir:     getEnv("I18N_LOCALES_DIR", "pkg/i18n/locales"),
			DefaultLocale:  getEnv("I18N_DEFAULT_LOCALE", "en"),
			SupportedLangs: getEnvSlice("I18N_SUPPORTED_LANGS", []string{"en", "id"}),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvSlice(key string, fallback []string) []string {
	if value, ok := os.LookupEnv(key); ok {
		return strings.Split(value, ",")
	}
	return fallback
}
