// Package config builds the application configuration once at startup.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultSecretKey is the placeholder secret shipped with the project.
const DefaultSecretKey = "your-secret-key-change-in-production"

// ServiceName is reported by the liveness probe and logs.
const ServiceName = "77 Cargo API"

// Config holds every setting the server, database and auth layers need.
type Config struct {
	Server struct {
		Port         int           `yaml:"port"`
		Mode         string        `yaml:"mode"`
		ReadTimeout  time.Duration `yaml:"read_timeout"`
		WriteTimeout time.Duration `yaml:"write_timeout"`
		IdleTimeout  time.Duration `yaml:"idle_timeout"`
		AllowOrigins []string      `yaml:"allow_origins"`
		MaxBodyBytes int64         `yaml:"max_body_bytes"`
	} `yaml:"server"`

	Database struct {
		URL             string        `yaml:"url"`
		MaxOpenConns    int           `yaml:"max_open_conns"`
		MaxIdleConns    int           `yaml:"max_idle_conns"`
		ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	} `yaml:"database"`

	Auth struct {
		SecretKey         string        `yaml:"secret_key"`
		AdminUsername     string        `yaml:"admin_username"`
		AdminPassword     string        `yaml:"admin_password"`
		AdminPasswordHash string        `yaml:"admin_password_hash"`
		TokenTTL          time.Duration `yaml:"token_ttl"`
	} `yaml:"auth"`

	API struct {
		DefaultPageSize int `yaml:"default_page_size"`
		MaxPageSize     int `yaml:"max_page_size"`
	} `yaml:"api"`

	RateLimit struct {
		RequestsPerSecond uint `yaml:"requests_per_second"`
	} `yaml:"rate_limit"`

	Redis struct {
		URL string `yaml:"url"`
	} `yaml:"redis"`

	Frontend struct {
		DistDir   string `yaml:"dist_dir"`
		SourceDir string `yaml:"source_dir"`
	} `yaml:"frontend"`

	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"logging"`
}

// Default returns a Config populated with built-in defaults only.
func Default() *Config {
	c := &Config{}

	c.Server.Port = 8000
	c.Server.Mode = "debug"
	c.Server.ReadTimeout = 10 * time.Second
	c.Server.WriteTimeout = 30 * time.Second
	c.Server.IdleTimeout = time.Minute
	c.Server.AllowOrigins = []string{"*"}
	c.Server.MaxBodyBytes = 1 << 20

	c.Database.URL = "sqlite+aiosqlite:///./77cargo.db"
	c.Database.MaxOpenConns = 25
	c.Database.MaxIdleConns = 5
	c.Database.ConnMaxLifetime = 30 * time.Minute

	c.Auth.SecretKey = DefaultSecretKey
	c.Auth.TokenTTL = time.Hour

	c.API.DefaultPageSize = 100
	c.API.MaxPageSize = 500

	c.RateLimit.RequestsPerSecond = 5

	c.Frontend.DistDir = "dist"
	c.Frontend.SourceDir = "frontend"

	c.Logging.Level = "info"
	c.Logging.Format = "json"

	return c
}

var envRef = regexp.MustCompile(`\$\{([^}]+)\}`)

// expandEnvVars replaces ${VAR} references with their environment value.
// Unknown variables are left untouched.
func expandEnvVars(s string) string {
	return envRef.ReplaceAllStringFunc(s, func(match string) string {
		if val, ok := os.LookupEnv(match[2 : len(match)-1]); ok {
			return val
		}
		return match
	})
}

// Load builds the configuration from defaults, an optional YAML file, the .env
// file and finally the process environment, in increasing precedence.
func Load(configPath string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	c := Default()

	if configPath == "" {
		configPath = os.Getenv("CONFIG_FILE")
	}
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal([]byte(expandEnvVars(string(data))), c); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	if err := c.loadFromEnv(); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) loadFromEnv() error {
	if v := os.Getenv("PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PORT is invalid: %w", err)
		}
		c.Server.Port = p
	}
	if v := os.Getenv("GIN_MODE"); v != "" {
		c.Server.Mode = v
	}
	if v := os.Getenv("ALLOW_ORIGIN"); v != "" {
		c.Server.AllowOrigins = splitList(v)
	}
	if v := os.Getenv("MAX_BODY_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("MAX_BODY_BYTES is invalid: %w", err)
		}
		c.Server.MaxBodyBytes = n
	}

	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.Database.URL = v
	}
	if v := os.Getenv("DB_MAX_OPEN_CONNS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("DB_MAX_OPEN_CONNS is invalid: %w", err)
		}
		c.Database.MaxOpenConns = n
	}
	if v := os.Getenv("DB_MAX_IDLE_CONNS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("DB_MAX_IDLE_CONNS is invalid: %w", err)
		}
		c.Database.MaxIdleConns = n
	}
	if v := os.Getenv("DB_CONN_MAX_LIFETIME"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("DB_CONN_MAX_LIFETIME is invalid: %w", err)
		}
		c.Database.ConnMaxLifetime = d
	}

	if v := os.Getenv("SECRET_KEY"); v != "" {
		c.Auth.SecretKey = v
	}
	if v := os.Getenv("ADMIN_USERNAME"); v != "" {
		c.Auth.AdminUsername = v
	}
	if v := os.Getenv("ADMIN_PASSWORD"); v != "" {
		c.Auth.AdminPassword = v
	}
	if v := os.Getenv("ADMIN_PASSWORD_HASH"); v != "" {
		c.Auth.AdminPasswordHash = v
	}
	if v := os.Getenv("TOKEN_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("TOKEN_TTL is invalid: %w", err)
		}
		c.Auth.TokenTTL = d
	}

	if v := os.Getenv("MAX_PAGE_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("MAX_PAGE_SIZE is invalid: %w", err)
		}
		c.API.MaxPageSize = n
	}

	// Invalid values fall back to the default.
	if v := os.Getenv("RATE_LIMIT_REQUESTS_PER_SECOND"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.RateLimit.RequestsPerSecond = uint(n)
		}
	}

	if v := os.Getenv("REDIS_URL"); v != "" {
		c.Redis.URL = v
	}

	if v := os.Getenv("FRONTEND_DIST_DIR"); v != "" {
		c.Frontend.DistDir = v
	}
	if v := os.Getenv("FRONTEND_SOURCE_DIR"); v != "" {
		c.Frontend.SourceDir = v
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	return nil
}

// Validate checks values that would otherwise fail later at runtime.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server port %d out of range", c.Server.Port)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("server mode %q must be debug, release or test", c.Server.Mode)
	}
	if c.Database.URL == "" {
		return fmt.Errorf("database url is empty")
	}
	if c.API.DefaultPageSize <= 0 {
		return fmt.Errorf("default page size must be positive")
	}
	if c.API.MaxPageSize < c.API.DefaultPageSize {
		return fmt.Errorf("max page size %d is below default page size %d", c.API.MaxPageSize, c.API.DefaultPageSize)
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("token ttl must be positive")
	}
	return nil
}

// AdminEnabled reports whether admin credentials are configured.
func (c *Config) AdminEnabled() bool {
	return c.Auth.AdminUsername != "" && (c.Auth.AdminPassword != "" || c.Auth.AdminPasswordHash != "")
}

// Addr is the listen address for http.Server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
