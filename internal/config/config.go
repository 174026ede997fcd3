// Package config loads application configuration from file and environment.
package config

import (
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Store     StoreConfig     `yaml:"store" mapstructure:"store"`
	Geocode   GeocodeConfig   `yaml:"geocode" mapstructure:"geocode"`
	Anthropic AnthropicConfig `yaml:"anthropic" mapstructure:"anthropic"`
	Directory DirectoryConfig `yaml:"directory" mapstructure:"directory"`
	Server    ServerConfig    `yaml:"server" mapstructure:"server"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// StoreConfig configures the database backend.
type StoreConfig struct {
	Driver      string `yaml:"driver" mapstructure:"driver"`
	DatabaseURL string `yaml:"database_url" mapstructure:"database_url"`
	MaxConns    int32  `yaml:"max_conns" mapstructure:"max_conns"`
	MinConns    int32  `yaml:"min_conns" mapstructure:"min_conns"`
}

// GeocodeConfig configures the geocoding provider chain.
type GeocodeConfig struct {
	UserAgent       string  `yaml:"user_agent" mapstructure:"user_agent"`
	TimeoutSecs     int     `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	MaxAttempts     int     `yaml:"max_attempts" mapstructure:"max_attempts"`
	NominatimRPS    float64 `yaml:"nominatim_rps" mapstructure:"nominatim_rps"`
	GoogleAPIKey    string  `yaml:"google_api_key" mapstructure:"google_api_key"`
	PhotonBaseURL   string  `yaml:"photon_base_url" mapstructure:"photon_base_url"`
	NominatimURL    string  `yaml:"nominatim_url" mapstructure:"nominatim_url"`
	LinkTimeoutSecs int     `yaml:"link_timeout_secs" mapstructure:"link_timeout_secs"`
}

// Timeout returns the per-request provider timeout.
func (g GeocodeConfig) Timeout() time.Duration {
	return time.Duration(g.TimeoutSecs) * time.Second
}

// LinkTimeout returns the timeout for map-link redirect expansion.
func (g GeocodeConfig) LinkTimeout() time.Duration {
	return time.Duration(g.LinkTimeoutSecs) * time.Second
}

// AnthropicConfig holds settings for the location-extraction assist.
type AnthropicConfig struct {
	Key       string `yaml:"key" mapstructure:"key"`
	Model     string `yaml:"model" mapstructure:"model"`
	MaxTokens int64  `yaml:"max_tokens" mapstructure:"max_tokens"`
}

// Enabled reports whether the assisted extraction path is configured.
func (a AnthropicConfig) Enabled() bool { return a.Key != "" }

// DirectoryConfig configures matching behavior.
type DirectoryConfig struct {
	RadiusKM     float64 `yaml:"radius_km" mapstructure:"radius_km"`
	MessageLimit int     `yaml:"message_limit" mapstructure:"message_limit"`
}

// ServerConfig configures the HTTP API server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("HALAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("store.driver", "postgres")
	v.SetDefault("store.max_conns", 10)
	v.SetDefault("store.min_conns", 1)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("server.port", 8080)
	v.SetDefault("geocode.user_agent", "halal-directory/1.0")
	v.SetDefault("geocode.timeout_secs", 30)
	v.SetDefault("geocode.max_attempts", 3)
	v.SetDefault("geocode.nominatim_rps", 0.9)
	v.SetDefault("geocode.nominatim_url", "https://nominatim.openstreetmap.org")
	v.SetDefault("geocode.photon_base_url", "https://photon.komoot.io")
	v.SetDefault("geocode.link_timeout_secs", 15)
	v.SetDefault("anthropic.model", "claude-haiku-4-5-20251001")
	v.SetDefault("anthropic.max_tokens", 64)
	v.SetDefault("directory.radius_km", 100)
	v.SetDefault("directory.message_limit", 4000)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
