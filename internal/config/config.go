package config

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	env_utils "github.com/tom-mcmillan/nwsl-api/internal/util/env"
	"github.com/tom-mcmillan/nwsl-api/internal/util/logger"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

var log = logger.GetLogger()

type EnvVariables struct {
	IsTesting bool

	EnvMode env_utils.EnvMode `env:"ENV_MODE" env-default:"development"`
	Port    string            `env:"PORT"     env-default:"8000"`

	// storage
	DBDialect       string `env:"DB_DIALECT"        env-default:"postgres"`
	DatabaseDsn     string `env:"DATABASE_DSN"`
	DBPath          string `env:"DB_PATH"           env-default:"nwsl.db"`
	DBMaxOpenConns  int    `env:"DB_MAX_OPEN_CONNS" env-default:"20"`
	DBMaxIdleConns  int    `env:"DB_MAX_IDLE_CONNS" env-default:"10"`
	StoreTimeoutSec int    `env:"STORE_TIMEOUT_SECONDS" env-default:"10"`

	// HTTP surface
	AllowedOriginsRaw string   `env:"ALLOWED_ORIGINS" env-default:"https://nwsldata.com,https://www.nwsldata.com,http://localhost:3000,http://localhost:8000"`
	AllowedOrigins    []string `env:"-"`

	// pagination
	DefaultPageSize int `env:"DEFAULT_PAGE_SIZE" env-default:"100"`
	MaxPageSize     int `env:"MAX_PAGE_SIZE"     env-default:"1000"`

	// api keys
	DemoApiKey       string `env:"DEMO_API_KEY"       env-default:"nwsl-demo-key-2024"`
	DefaultRateLimit int    `env:"DEFAULT_RATE_LIMIT" env-default:"1000"`
}

var (
	env  EnvVariables
	once sync.Once
)

func GetEnv() EnvVariables {
	once.Do(loadEnvVariables)
	return env
}

func loadEnvVariables() {
	cwd, err := os.Getwd()
	if err != nil {
		log.Warn("could not get current working directory", "error", err)
		cwd = "."
	}

	moduleRoot := cwd
	for {
		if _, err := os.Stat(filepath.Join(moduleRoot, "go.mod")); err == nil {
			break
		}

		parent := filepath.Dir(moduleRoot)
		if parent == moduleRoot {
			break
		}

		moduleRoot = parent
	}

	envPaths := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(moduleRoot, ".env"),
	}

	for _, path := range envPaths {
		if err := godotenv.Load(path); err == nil {
			log.Info("Loaded .env", "path", path)
			break
		}
	}

	if err := cleanenv.ReadEnv(&env); err != nil {
		log.Error("Configuration could not be loaded", "error", err)
		os.Exit(1)
	}

	for _, arg := range os.Args {
		if strings.Contains(arg, "test") {
			env.IsTesting = true
			break
		}
	}

	// Tests run against an in-memory store so no infrastructure is needed.
	// The shared cache keeps every pooled connection on the same database.
	if env.IsTesting {
		env.EnvMode = env_utils.EnvModeDevelopment
		env.DBDialect = "sqlite"
		env.DBPath = "file::memory:?cache=shared"
	}

	if env.EnvMode != env_utils.EnvModeDevelopment && env.EnvMode != env_utils.EnvModeProduction {
		log.Error("ENV_MODE is invalid", "mode", env.EnvMode)
		os.Exit(1)
	}

	switch env.DBDialect {
	case "postgres":
		if env.DatabaseDsn == "" {
			log.Error("DATABASE_DSN is required for the postgres dialect")
			os.Exit(1)
		}
	case "sqlite":
	default:
		log.Error("DB_DIALECT is invalid", "dialect", env.DBDialect)
		os.Exit(1)
	}

	env.AllowedOrigins = splitOrigins(env.AllowedOriginsRaw)

	if env.DefaultPageSize < 1 || env.DefaultPageSize > env.MaxPageSize {
		log.Error("DEFAULT_PAGE_SIZE must be between 1 and MAX_PAGE_SIZE",
			"defaultPageSize", env.DefaultPageSize,
			"maxPageSize", env.MaxPageSize)
		os.Exit(1)
	}

	log.Info("Environment variables loaded successfully!", "mode", env.EnvMode, "dialect", env.DBDialect)
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))

	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}

	return origins
}
