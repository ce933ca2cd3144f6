package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration values.
type Config struct {
	Env            string `mapstructure:"app_env"`
	HTTPPort       string `mapstructure:"http_port"`
	DatabaseDSN    string `mapstructure:"database_dsn"`
	MetricsEnabled bool   `mapstructure:"metrics_enabled"`
	AllowedOrigins string `mapstructure:"cors_allowed_origins"`
}

const (
	defaultPort = "8080"
	// DefaultDSN is where the wardrobe database lives when nothing else is configured.
	DefaultDSN = "data/wardrobe_data.db"
)

// Load reads configuration from an optional .env file and an optional config
// file. Environment variables win over the file, the file wins over defaults.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("app_env", "dev")
	v.SetDefault("http_port", defaultPort)
	v.SetDefault("database_dsn", DefaultDSN)
	v.SetDefault("metrics_enabled", true)
	v.SetDefault("cors_allowed_origins", "*")
	v.AutomaticEnv()

	var c Config
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return c, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("decode config: %w", err)
	}

	// Validate that port is numeric.
	if _, err := strconv.Atoi(c.HTTPPort); err != nil {
		slog.Warn("invalid HTTP_PORT value, defaulting", "value", c.HTTPPort, "default", defaultPort)
		c.HTTPPort = defaultPort
	}
	if strings.TrimSpace(c.DatabaseDSN) == "" {
		return c, errors.New("database_dsn must not be empty")
	}
	return c, nil
}

// Origins splits the comma separated CORS origin list.
func (c Config) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.HTTPPort
}
