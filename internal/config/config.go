// Package config loads service settings from a TOML file and the environment
// and opens the configured storage backend.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"weighttrack/internal/adapter/badger"
	"weighttrack/internal/adapter/cache"
	"weighttrack/internal/adapter/memory"
	"weighttrack/internal/adapter/postgres"
	"weighttrack/internal/adapter/redis"
	"weighttrack/internal/domain"
)

// Storage backends.
const (
	BackendMemory   = "memory"
	BackendBadger   = "badger"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

type Config struct {
	Addr   string `toml:"addr"`
	WebDir string `toml:"web_dir"`
	// User scopes the storage keys.
	User string `toml:"user"`

	// storage
	Backend       string `toml:"backend"`
	DataDir       string `toml:"data_dir"`
	DatabaseURL   string `toml:"database_url"`
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
	CacheMB       int    `toml:"cache_mb"`

	// logging
	LogLevel    string `toml:"log_level"`
	LogFile     string `toml:"log_file"`
	LogToStdout bool   `toml:"log_to_stdout"`
	LogJSON     bool   `toml:"log_json"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Addr:      ":8080",
		WebDir:    "web",
		User:      domain.DefaultKeyPrefix,
		Backend:   BackendBadger,
		RedisAddr: "localhost:6379",
		LogLevel:  "info",
	}
}

// Load builds the configuration from the defaults, the TOML file at path
// (skipped when it does not exist) and the environment, in that order.
// A .env file in the working directory is loaded into the environment first.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debugf("no .env file loaded: %s", err)
	}

	cfg := Default()
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
			log.Debugf("config file %s not found, using defaults", path)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	c.Addr = env("ADDR", c.Addr)
	c.WebDir = env("WEB_DIR", c.WebDir)
	c.User = env("WEIGHTTRACK_USER", c.User)
	c.Backend = env("WEIGHTTRACK_BACKEND", c.Backend)
	c.DataDir = env("WEIGHTTRACK_DATA_DIR", c.DataDir)
	c.DatabaseURL = env("DATABASE_URL", c.DatabaseURL)
	c.RedisAddr = env("REDIS_ADDR", c.RedisAddr)
	c.RedisPassword = env("REDIS_PASSWORD", c.RedisPassword)
	c.LogLevel = env("LOG_LEVEL", c.LogLevel)
	c.LogFile = env("LOG_FILE", c.LogFile)

	var err error
	if c.RedisDB, err = envInt("REDIS_DB", c.RedisDB); err != nil {
		return err
	}
	if c.CacheMB, err = envInt("WEIGHTTRACK_CACHE_MB", c.CacheMB); err != nil {
		return err
	}
	return nil
}

// Keys returns the storage keys of the configured user.
func (c *Config) Keys() domain.Keys {
	return domain.KeysFor(c.User)
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to $XDG_DATA_HOME/weighttrack.
func (c *Config) GetDataDir() string {
	if c.DataDir != "" {
		return ExpandPath(c.DataDir)
	}
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "weighttrack")
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// Store is a key-value store that must be closed after use.
type Store interface {
	domain.KVStore
	io.Closer
}

// OpenStore opens the configured backend, wrapped in a read cache when
// CacheMB is positive.
func (c *Config) OpenStore() (Store, error) {
	var (
		s   Store
		err error
	)
	switch strings.ToLower(c.Backend) {
	case BackendMemory:
		s = memory.New()
	case BackendBadger, "":
		dir := c.GetDataDir()
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
		s, err = badger.Open(dir)
	case BackendPostgres:
		if c.DatabaseURL == "" {
			return nil, fmt.Errorf("database_url is required for the postgres backend")
		}
		s, err = postgres.Open(c.DatabaseURL)
	case BackendRedis:
		s, err = redis.Open(c.RedisAddr, c.RedisPassword, c.RedisDB)
	default:
		return nil, fmt.Errorf("unknown backend: %q", c.Backend)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", c.Backend, err)
	}

	if c.CacheMB > 0 {
		return &CachedStore{Store: cache.New(s, c.CacheMB, 0), closer: s}, nil
	}
	return s, nil
}

// CachedStore is a cached backend that closes the backend on Close.
type CachedStore struct {
	*cache.Store
	closer io.Closer
}

func (c *CachedStore) Close() error {
	return c.closer.Close()
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
