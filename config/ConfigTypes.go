package config

import "time"

type Config struct {
	Database        DatabaseConfig  `envPrefix:"DB_"`
	Server          ServerConfig    `envPrefix:"SERVER_"`
	Cache           CacheConfig     `envPrefix:"CACHE_"`
	Log             LogConfig       `envPrefix:"LOG_"`
	Telemetry       TelemetryConfig `envPrefix:"TRACING_"`
	Storage         string          `env:"STORAGE" envDefault:"postgres"`
	InstrumentsFile string          `env:"INSTRUMENTS_FILE"`
}

type DatabaseConfig struct {
	Host     string `env:"HOST" envDefault:"localhost"`
	Port     int    `env:"PORT" envDefault:"5432"`
	User     string `env:"USER" envDefault:"postgres"`
	Password string `env:"PASSWORD"`
	DBName   string `env:"NAME" envDefault:"trading_journal"`
	SSLMode  string `env:"SSLMODE" envDefault:"disable"`
}

type ServerConfig struct {
	Port       string `env:"PORT" envDefault:"8080"`
	CORSOrigin string `env:"CORS_ORIGIN" envDefault:"*"`
}

type CacheConfig struct {
	TTL     time.Duration `env:"TTL" envDefault:"60s"`
	MaxCost int64         `env:"MAX_COST" envDefault:"10000"`
}

type LogConfig struct {
	Level  string `env:"LEVEL" envDefault:"INFO"`
	Format string `env:"FORMAT" envDefault:"json"`
}

type TelemetryConfig struct {
	Enabled bool `env:"ENABLED" envDefault:"false"`
}

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)
