package config

import (
	"flag"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Storage backends understood by bootstrap.OpenKVStore.
const (
	BackendFS       = "fs"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
	BackendMemory   = "memory"
)

const (
	DefaultBaseURL    = "localhost:8081"
	DefaultSessionKey = "mintopia_user"
)

type Config struct {
	// Session storage
	StorageBackend string `env:"STORAGE_BACKEND"`
	StorageDir     string `env:"STORAGE_DIR"`
	ClientDBPath   string `env:"CLIENT_DB_PATH"`
	DatabaseDSN    string `env:"DATABASE_URI"`
	RedisAddr      string `env:"REDIS_ADDR"`
	RedisPassword  string `env:"REDIS_PASSWORD"`
	RedisDB        int    `env:"REDIS_DB"`
	SessionKey     string `env:"SESSION_KEY"`

	// UI bridge
	BaseURL string `env:"BASE_URL"`

	Debug   bool `env:"DEBUG"`
	Version bool `env:"-"` // show version and exit (flag only)
}

var hostPortRe = regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// flags переопределяют значения по умолчанию из env
	flag.StringVar(&cfg.StorageBackend, "storage", cfg.StorageBackend, "session storage backend: fs|sqlite|postgres|redis|memory")
	flag.StringVar(&cfg.StorageDir, "storage-dir", cfg.StorageDir, "directory for the fs backend")
	flag.StringVar(&cfg.ClientDBPath, "client-db", cfg.ClientDBPath, "path to client SQLite DB")
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "postgres connection string")
	flag.StringVar(&cfg.RedisAddr, "redis-addr", cfg.RedisAddr, "redis address host:port")
	flag.StringVar(&cfg.SessionKey, "session-key", cfg.SessionKey, "storage key of the session")
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "listen address of the UI bridge (host:port)")
	flag.BoolVar(&cfg.Debug, "debug", cfg.Debug, "verbose logging")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show version and exit")

	flag.Parse()

	cfg.applyDefaults()
	return cfg
}

func (cfg *Config) applyDefaults() {
	switch b := strings.ToLower(strings.TrimSpace(cfg.StorageBackend)); b {
	case BackendFS, BackendSQLite, BackendPostgres, BackendRedis, BackendMemory:
		cfg.StorageBackend = b
	default:
		cfg.StorageBackend = BackendFS
	}
	if cfg.SessionKey == "" {
		cfg.SessionKey = DefaultSessionKey
	}
	// BaseURL: только "address:port" (без схемы и пути), иначе default
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.RedisAddr == "" {
		cfg.RedisAddr = "localhost:6379"
	}
	if cfg.ClientDBPath == "" && cfg.StorageDir != "" {
		cfg.ClientDBPath = filepath.Join(cfg.StorageDir, "client.sqlite")
	}
}
