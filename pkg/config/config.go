package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = ""

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	DBDriverMemory = "memory"
	DBDriverSQLite = "sqlite"
)

type Config struct {
	App     AppConfig
	DB      DBConfig
	Media   MediaConfig
	Catalog CatalogConfig
	CORS    CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"DEALER_APP_ENV" default:"dev"`
	Port         string `envconfig:"DEALER_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"DEALER_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"DEALER_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// DBConfig selects the catalog backing. The in-memory store is canonical;
// sqlite is an opt-in durable backing behind the same repository contract.
type DBConfig struct {
	Driver       string `envconfig:"DEALER_DB_DRIVER" default:"memory"`
	SQLitePath   string `envconfig:"DEALER_DB_SQLITE_PATH" default:"dealership.db"`
	MaxOpenConns int    `envconfig:"DEALER_DB_MAX_OPEN_CONNS" default:"1"`
}

func (d DBConfig) validate() error {
	switch strings.ToLower(d.Driver) {
	case DBDriverMemory, DBDriverSQLite:
		return nil
	default:
		return fmt.Errorf("unsupported db driver %q", d.Driver)
	}
}

func (d DBConfig) IsMemory() bool {
	return strings.EqualFold(d.Driver, DBDriverMemory)
}

type MediaConfig struct {
	Dir            string `envconfig:"DEALER_MEDIA_DIR" default:"uploads"`
	PublicBasePath string `envconfig:"DEALER_MEDIA_PUBLIC_BASE_PATH" default:"/uploads"`
	MaxUploadBytes int64  `envconfig:"DEALER_MEDIA_MAX_UPLOAD_BYTES" default:"5242880"`
	MaxFiles       int    `envconfig:"DEALER_MEDIA_MAX_FILES" default:"10"`
}

type CatalogConfig struct {
	SeedSampleData bool `envconfig:"DEALER_CATALOG_SEED_SAMPLE_DATA" default:"true"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"DEALER_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
}
