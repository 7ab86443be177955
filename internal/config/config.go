package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

const (
	defaultEnv        = EnvLocal
	defaultLogLevel   = "info"
	defaultRunAddress = ":8080"
	defaultDriver     = DriverSQLite
	defaultSQLitePath = "vaultkeeper.db"
	defaultMigrations = "migrations"
	defaultRedisAddr  = "localhost:6379"
	defaultNamespace  = "vault"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Env     string
	Server  server
	Logger  logger
	Storage Storage
	// StrictToggles makes toggle fields accept only true/"true".
	StrictToggles bool
}

type server struct {
	RunAddress string `env:"RUN_ADDRESS"`
}

type logger struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Storage selects and tunes the key-value backend.
type Storage struct {
	Driver      string `env:"STORAGE_DRIVER"`
	SQLitePath  string `env:"SQLITE_PATH"`
	DatabaseURI string `env:"DATABASE_URI"`
	Migrations  string `env:"MIGRATIONS_PATH"`
	Redis       Redis
	Namespace   string `env:"STORAGE_NAMESPACE"`
	// CacheTTL of zero disables the read-through cache.
	CacheTTL time.Duration `env:"CACHE_TTL_SECONDS"`
	// Passphrase, when set, encrypts every stored value.
	Passphrase string `env:"VAULT_PASSPHRASE"`
}

type Redis struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB"`
}

// MustLoad reads the configuration from .env and the environment and exits
// the process when it is invalid.
func MustLoad() *Config {
	cfg, err := Load("")
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	return cfg
}

// Load reads .env (when present), then the optional config file, then the
// environment; environment variables win.
func Load(configFile string) (*Config, error) {
	loadDotEnv()

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := &Config{
		Env:    v.GetString("app_env"),
		Server: server{RunAddress: v.GetString("run_address")},
		Logger: logger{LogLevel: v.GetString("log_level")},
		Storage: Storage{
			Driver:      v.GetString("storage_driver"),
			SQLitePath:  v.GetString("sqlite_path"),
			DatabaseURI: v.GetString("database_uri"),
			Migrations:  v.GetString("migrations_path"),
			Redis: Redis{
				Addr:     v.GetString("redis_addr"),
				Password: v.GetString("redis_password"),
				DB:       v.GetInt("redis_db"),
			},
			Namespace:  v.GetString("storage_namespace"),
			CacheTTL:   time.Duration(v.GetInt("cache_ttl_seconds")) * time.Second,
			Passphrase: v.GetString("vault_passphrase"),
		},
		StrictToggles: v.GetBool("strict_toggles"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadDotEnv() {
	for _, path := range []string{".env", "../.env"} {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			log.Printf("config: load %s: %v", path, err)
		}
		return
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_env", defaultEnv)
	v.SetDefault("log_level", defaultLogLevel)
	v.SetDefault("run_address", defaultRunAddress)
	v.SetDefault("storage_driver", defaultDriver)
	v.SetDefault("sqlite_path", defaultSQLitePath)
	v.SetDefault("migrations_path", defaultMigrations)
	v.SetDefault("redis_addr", defaultRedisAddr)
	v.SetDefault("redis_db", 0)
	v.SetDefault("storage_namespace", defaultNamespace)
	v.SetDefault("cache_ttl_seconds", 0)
	v.SetDefault("strict_toggles", false)
}

func (c *Config) validate() error {
	if c.Server.RunAddress == "" {
		return fmt.Errorf("%w: run_address must not be empty", ErrInvalidConfig)
	}
	if c.Storage.CacheTTL < 0 {
		return fmt.Errorf("%w: cache_ttl_seconds must not be negative", ErrInvalidConfig)
	}

	switch c.Storage.Driver {
	case DriverMemory:
	case DriverSQLite:
		if c.Storage.SQLitePath == "" {
			return fmt.Errorf("%w: sqlite_path is required for the sqlite driver", ErrInvalidConfig)
		}
	case DriverPostgres:
		if c.Storage.DatabaseURI == "" {
			return fmt.Errorf("%w: database_uri is required for the postgres driver", ErrInvalidConfig)
		}
	case DriverRedis:
		if c.Storage.Redis.Addr == "" {
			return fmt.Errorf("%w: redis_addr is required for the redis driver", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown storage driver %q", ErrInvalidConfig, c.Storage.Driver)
	}
	return nil
}

func (c *Config) IsProd() bool {
	return c.Env == EnvProd
}

func (c *Config) IsDev() bool {
	return c.Env == EnvDev
}

func (c *Config) IsLocal() bool {
	return c.Env == EnvLocal || c.Env == ""
}
