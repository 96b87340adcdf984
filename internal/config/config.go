package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port     string `mapstructure:"PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	StoreDriver string `mapstructure:"STORE_DRIVER"`
	MongoURI    string `mapstructure:"MONGO_URI"`
	DBUser      string `mapstructure:"DB_USER"`
	DBPassword  string `mapstructure:"DB_PASSWORD"`
	DBHost      string `mapstructure:"DB_HOST"`
	DBName      string `mapstructure:"DB_NAME"`

	JWTSecret string        `mapstructure:"JWT_SECRET"`
	TokenTTL  time.Duration `mapstructure:"TOKEN_TTL"`

	ClientOrigins    []string      `mapstructure:"CLIENT_ORIGINS"`
	RequestTimeout   time.Duration `mapstructure:"REQUEST_TIMEOUT"`
	DefaultPageLimit int64         `mapstructure:"DEFAULT_PAGE_LIMIT"`
	PopularLimit     int64         `mapstructure:"POPULAR_LIMIT"`
	RateLimitPerMin  int           `mapstructure:"RATE_LIMIT_PER_MIN"`
	TrustedProxies   []string      `mapstructure:"TRUSTED_PROXIES"`

	TokenDenylist bool   `mapstructure:"TOKEN_DENYLIST"`
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`
}

var defaults = map[string]interface{}{
	"PORT":               "5000",
	"ENV":                "development",
	"LOG_LEVEL":          "",
	"STORE_DRIVER":       "mongo",
	"MONGO_URI":          "",
	"DB_USER":            "",
	"DB_PASSWORD":        "",
	"DB_HOST":            "cluster0.mongodb.net",
	"DB_NAME":            "homeRepairStore",
	"JWT_SECRET":         "",
	"TOKEN_TTL":          "1h",
	"CLIENT_ORIGINS":     "http://localhost:5173",
	"REQUEST_TIMEOUT":    "5s",
	"DEFAULT_PAGE_LIMIT": 2,
	"POPULAR_LIMIT":      6,
	"RATE_LIMIT_PER_MIN": 200,
	"TRUSTED_PROXIES":    "",
	"TOKEN_DENYLIST":     false,
	"REDIS_ADDR":         "localhost:6379",
	"REDIS_PASSWORD":     "",
	"REDIS_DB":           0,
}

// Load reads the process environment into a Config. Call LoadDotEnv first
// to pick up a .env file.
func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.ClientOrigins = splitList(cfg.ClientOrigins)
	cfg.TrustedProxies = splitList(cfg.TrustedProxies)

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if strings.TrimSpace(c.JWTSecret) == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.TokenTTL <= 0 {
		return errors.New("TOKEN_TTL must be a positive duration")
	}
	if c.RequestTimeout <= 0 {
		return errors.New("REQUEST_TIMEOUT must be a positive duration")
	}
	if c.DefaultPageLimit < 1 {
		return errors.New("DEFAULT_PAGE_LIMIT must be at least 1")
	}
	if c.PopularLimit < 1 {
		return errors.New("POPULAR_LIMIT must be at least 1")
	}
	if len(c.ClientOrigins) == 0 {
		return errors.New("CLIENT_ORIGINS must list at least one origin")
	}
	for _, proxy := range c.TrustedProxies {
		if net.ParseIP(proxy) == nil {
			if _, _, err := net.ParseCIDR(proxy); err != nil {
				return fmt.Errorf("TRUSTED_PROXIES: %q is not an IP or CIDR", proxy)
			}
		}
	}
	switch c.StoreDriver {
	case "mongo":
		if c.MongoConnectionURI() == "" {
			return errors.New("MONGO_URI or DB_USER/DB_PASSWORD is required")
		}
	case "memory":
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}
	return nil
}

// MongoConnectionURI prefers MONGO_URI and otherwise builds an Atlas SRV URI.
func (c Config) MongoConnectionURI() string {
	if uri := strings.TrimSpace(c.MongoURI); uri != "" {
		return uri
	}
	if c.DBUser == "" || c.DBPassword == "" {
		return ""
	}
	return fmt.Sprintf(
		"mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority",
		url.QueryEscape(c.DBUser),
		url.QueryEscape(c.DBPassword),
		c.DBHost,
	)
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// splitList flattens comma separated entries and drops blanks.
func splitList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		for _, item := range strings.Split(value, ",") {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
	}
	return out
}
