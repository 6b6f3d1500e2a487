package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Config is everything the binaries read from the environment.
type Config struct {
	AppPort        string
	DBDriver       string
	DBDSN          string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	JWTSecret      string
	PostsPerPage   int
	IndexCacheTTL  time.Duration
	ForbiddenWords []string
	MediaRoot      string
	LoginURL       string
}

// Cfg is filled by Init.
var Cfg *Config

// Init loads .env (when present) and the environment, exiting on bad config.
func Init() *Config {
	if err := godotenv.Load(); err != nil {
		Logger.Info("No .env file found, using system environment variables")
	}

	cfg, err := Load()
	if err != nil {
		Logger.Fatal("Invalid configuration", zap.Error(err))
	}
	Cfg = cfg
	return cfg
}

// Load reads the configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		AppPort:        getenv("APP_PORT", "8000"),
		DBDriver:       getenv("DB_DRIVER", "mysql"),
		DBDSN:          os.Getenv("DB_DSN"),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		ForbiddenWords: splitList(getenv("FORBIDDEN_WORDS", "блин")),
		MediaRoot:      getenv("MEDIA_ROOT", "media"),
		LoginURL:       getenv("LOGIN_URL", "/auth/login/"),
	}

	var errs []error
	if cfg.DBDSN == "" {
		errs = append(errs, errors.New("DB_DSN is not set"))
	}
	if cfg.RedisAddr == "" {
		errs = append(errs, errors.New("REDIS_ADDR is not set"))
	}
	if cfg.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is not set"))
	}
	switch cfg.DBDriver {
	case "mysql", "postgres", "sqlite":
	default:
		errs = append(errs, fmt.Errorf("DB_DRIVER %q is not supported", cfg.DBDriver))
	}

	var err error
	if cfg.RedisDB, err = getint("REDIS_DB", 0); err != nil {
		errs = append(errs, err)
	}
	if cfg.PostsPerPage, err = getint("POSTS_PER_PAGE", 10); err != nil {
		errs = append(errs, err)
	} else if cfg.PostsPerPage < 1 {
		errs = append(errs, errors.New("POSTS_PER_PAGE must be positive"))
	}

	ttl := getenv("INDEX_CACHE_TTL", "20s")
	if cfg.IndexCacheTTL, err = time.ParseDuration(ttl); err != nil {
		errs = append(errs, fmt.Errorf("INDEX_CACHE_TTL: %w", err))
	} else if cfg.IndexCacheTTL <= 0 {
		errs = append(errs, errors.New("INDEX_CACHE_TTL must be positive"))
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return cfg, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getint(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
