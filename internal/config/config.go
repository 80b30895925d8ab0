package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

const (
	DriverMySQL = "mysql"
	DriverMongo = "mongo"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Cache    CacheConfig
	Auth     AuthConfig
	App      AppConfig
}

type ServerConfig struct {
	Address string `env:"SERVER_ADDRESS" envDefault:":9090"`
	// ContextTimeout is in seconds, as CONTEXT_TIMEOUT always was
	ContextTimeout int `env:"CONTEXT_TIMEOUT" envDefault:"30"`
}

// RequestTimeout is the per-request context timeout.
func (s ServerConfig) RequestTimeout() time.Duration {
	return time.Duration(s.ContextTimeout) * time.Second
}

type DatabaseConfig struct {
	Driver        string        `env:"DATABASE_DRIVER" envDefault:"mysql"`
	Host          string        `env:"DATABASE_HOST" envDefault:"localhost"`
	Port          int           `env:"DATABASE_PORT" envDefault:"3306"`
	User          string        `env:"DATABASE_USER" envDefault:"root"`
	Pass          string        `env:"DATABASE_PASS"`
	Name          string        `env:"DATABASE_NAME" envDefault:"bloglist"`
	Location      string        `env:"DATABASE_LOC" envDefault:"UTC"`
	MongoURI      string        `env:"MONGODB_URI" envDefault:"mongodb://localhost:27017"`
	MongoDatabase string        `env:"MONGODB_DATABASE" envDefault:"bloglist"`
	MaxRetry      int           `env:"DB_MAX_RETRY" envDefault:"10"`
	RetryInterval time.Duration `env:"DB_RETRY_INTERVAL" envDefault:"2s"`
}

// DSN returns the go-sql-driver/mysql data source name.
func (d DatabaseConfig) DSN() string {
	val := url.Values{}
	// RowsAffected counts matched rows, an update to identical values is not a miss
	val.Add("clientFoundRows", "true")
	val.Add("parseTime", "1")
	val.Add("loc", d.Location)
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s", d.User, d.Pass, d.Host, d.Port, d.Name, val.Encode())
}

type CacheConfig struct {
	Host    string        `env:"CACHE_HOST" envDefault:"localhost"`
	Port    int           `env:"CACHE_PORT" envDefault:"6379"`
	Pass    string        `env:"CACHE_PASS"`
	DB      int           `env:"CACHE_DB" envDefault:"0"`
	ListTTL time.Duration `env:"CACHE_LIST_TTL" envDefault:"1m"`
	// BloomBitSize is the bit length of the blog id bloom filter
	BloomBitSize uint64 `env:"BLOOM_FILTER_SIZE" envDefault:"10000000"`
}

// Address returns the Redis address in host:port format
func (c CacheConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type AuthConfig struct {
	JWTSecret      string `env:"JWT_SECRET"`
	JWTExpireHours int    `env:"JWT_EXPIRE_HOURS" envDefault:"24"`
}

// TokenTTL is zero when tokens should never expire.
func (a AuthConfig) TokenTTL() time.Duration {
	return time.Duration(a.JWTExpireHours) * time.Hour
}

type AppConfig struct {
	LogLevel           string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat          string        `env:"LOG_FORMAT" envDefault:"text"`
	GinMode            string        `env:"GIN_MODE" envDefault:"release"`
	LikesFlushInterval time.Duration `env:"LIKES_FLUSH_INTERVAL" envDefault:"1s"`
	LikesBatchSize     int           `env:"LIKES_BATCH_SIZE" envDefault:"100"`
}

// Load reads an optional .env file, then parses the environment.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		// a missing .env is fine, the environment may already be set
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Validate performs validation on the configuration
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverMySQL:
		if c.Database.Host == "" {
			return fmt.Errorf("database host is required")
		}
		if c.Database.Name == "" {
			return fmt.Errorf("database name is required")
		}
	case DriverMongo:
		if c.Database.MongoURI == "" {
			return fmt.Errorf("mongodb uri is required")
		}
		if c.Database.MongoDatabase == "" {
			return fmt.Errorf("mongodb database is required")
		}
	default:
		return fmt.Errorf("invalid database driver: %s (must be %s or %s)", c.Database.Driver, DriverMySQL, DriverMongo)
	}
	if c.Database.MaxRetry < 1 {
		return fmt.Errorf("db max retry must be at least 1")
	}

	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("jwt secret is required")
	}
	if c.Auth.JWTExpireHours < 0 {
		return fmt.Errorf("invalid jwt expire hours: %d", c.Auth.JWTExpireHours)
	}

	if c.Server.ContextTimeout <= 0 {
		return fmt.Errorf("invalid context timeout: %d", c.Server.ContextTimeout)
	}
	if c.Cache.DB < 0 || c.Cache.DB > 15 {
		return fmt.Errorf("invalid cache database: %d (must be 0-15)", c.Cache.DB)
	}
	if c.Cache.BloomBitSize == 0 {
		return fmt.Errorf("bloom filter size must be positive")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.App.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.App.LogLevel)
	}
	if c.App.LogFormat != "text" && c.App.LogFormat != "json" {
		return fmt.Errorf("invalid log format: %s (must be text or json)", c.App.LogFormat)
	}
	return nil
}
