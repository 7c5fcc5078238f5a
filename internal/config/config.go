package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

// Config stores all configuration of the application.
// The values are read by viper from app.env or from environment variables.
type Config struct {
	DBSource      string `mapstructure:"DB_SOURCE"`
	ServerAddress string `mapstructure:"SERVER_ADDRESS"`
	GinMode       string `mapstructure:"GIN_MODE"`

	CacheDriver   string `mapstructure:"CACHE_DRIVER"`
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	RadarAPIKey  string        `mapstructure:"RADAR_API_KEY"`
	RadarBaseURL string        `mapstructure:"RADAR_BASE_URL"`
	RadarTimeout time.Duration `mapstructure:"RADAR_TIMEOUT"`

	LogLevel      string `mapstructure:"LOG_LEVEL"`
	LogFile       string `mapstructure:"LOG_FILE"`
	LogMaxSize    int    `mapstructure:"LOG_MAX_SIZE"`
	LogMaxBackups int    `mapstructure:"LOG_MAX_BACKUPS"`
	LogMaxAge     int    `mapstructure:"LOG_MAX_AGE"`
	LogCompress   bool   `mapstructure:"LOG_COMPRESS"`
}

var keys = []string{
	"DB_SOURCE", "SERVER_ADDRESS", "GIN_MODE",
	"CACHE_DRIVER", "REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB",
	"RADAR_API_KEY", "RADAR_BASE_URL", "RADAR_TIMEOUT",
	"LOG_LEVEL", "LOG_FILE", "LOG_MAX_SIZE", "LOG_MAX_BACKUPS", "LOG_MAX_AGE", "LOG_COMPRESS",
}

// LoadConfig reads the configuration with Load and validates it
func LoadConfig(path string) (Config, error) {
	config, err := Load(path)
	if err != nil {
		return config, err
	}
	return config, config.Validate()
}

// Load reads configuration from path/app.env if it exists and lets
// environment variables override it. No validation is performed.
func Load(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:8081")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("CACHE_DRIVER", DriverPostgres)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("RADAR_BASE_URL", "https://api.radar.io/v1")
	v.SetDefault("RADAR_TIMEOUT", 10*time.Second)
	v.SetDefault("LOG_LEVEL", "debug")
	v.SetDefault("LOG_MAX_SIZE", 100)
	v.SetDefault("LOG_MAX_BACKUPS", 3)
	v.SetDefault("LOG_MAX_AGE", 28)

	v.AutomaticEnv()
	// AutomaticEnv only covers keys viper already knows about
	for _, key := range keys {
		if err = v.BindEnv(key); err != nil {
			return config, fmt.Errorf("config: bind %s: %w", key, err)
		}
	}

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, fmt.Errorf("config: read app.env: %w", err)
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("config: unmarshal: %w", err)
	}

	return config, nil
}

// Validate checks that every setting required at startup is present
func (c Config) Validate() error {
	var missing []string

	switch c.CacheDriver {
	case DriverPostgres:
		if c.DBSource == "" {
			missing = append(missing, "DB_SOURCE")
		}
	case DriverRedis:
		if c.RedisAddr == "" {
			missing = append(missing, "REDIS_ADDR")
		}
	default:
		return fmt.Errorf("config: unknown CACHE_DRIVER %q", c.CacheDriver)
	}

	if c.RadarAPIKey == "" {
		missing = append(missing, "RADAR_API_KEY")
	}
	if c.ServerAddress == "" {
		missing = append(missing, "SERVER_ADDRESS")
	}

	if len(missing) > 0 {
		return fmt.Errorf("config: missing required settings: %s", strings.Join(missing, ", "))
	}
	return nil
}
