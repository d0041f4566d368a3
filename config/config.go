package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig
	CORS       CORSConfig

	// Collaborator
	LLM      LLMConfig
	Analyzer AnalyzerConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port           int
	Mode           string
	TrustedProxies []string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// RateLimitConfig bounds how many analyses a single client may request.
type RateLimitConfig struct {
	Enabled         bool
	RequestsPerMin  int
	MaxTrackedPeers int
}

type CORSConfig struct {
	AllowedOrigins []string
}

// LLMConfig describes the single completion provider the analyzer calls.
type LLMConfig struct {
	Provider    string
	APIKey      string
	BaseURL     string
	Model       string
	Timeout     time.Duration
	Temperature float64
}

// AnalyzerConfig tunes the prompt sent for each analysis.
type AnalyzerConfig struct {
	// Timezone is the IANA zone used to tell the model the current time,
	// so relative phrases like "tomorrow 3pm" resolve correctly.
	Timezone string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.TrustedProxies = splitList(viper.GetString("http_server.trusted_proxies"))
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")
	cfg.RateLimit.MaxTrackedPeers = viper.GetInt("rate_limit.max_tracked_peers")

	cfg.CORS.AllowedOrigins = splitList(viper.GetString("cors.allowed_origins"))

	// LLM
	cfg.LLM.Provider = viper.GetString("llm.provider")
	cfg.LLM.APIKey = viper.GetString("llm.api_key")
	cfg.LLM.BaseURL = viper.GetString("llm.base_url")
	cfg.LLM.Model = viper.GetString("llm.model")
	cfg.LLM.Timeout = viper.GetDuration("llm.timeout")
	cfg.LLM.Temperature = viper.GetFloat64("llm.temperature")
	// The conventional OPENAI_API_KEY wins over the config file.
	if apiKey := viper.GetString("openai_api_key"); apiKey != "" {
		cfg.LLM.APIKey = apiKey
	}

	cfg.Analyzer.Timezone = viper.GetString("analyzer.timezone")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8000)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.trusted_proxies", "")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 60)
	viper.SetDefault("rate_limit.max_tracked_peers", 1000)

	viper.SetDefault("cors.allowed_origins", "*")

	// LLM defaults
	viper.SetDefault("llm.provider", "openai")
	// llm.model stays empty so each provider falls back to its own model.
	viper.SetDefault("llm.timeout", "60s")

	viper.SetDefault("analyzer.timezone", "UTC")
}

// validate rejects configuration the service cannot start with.
// A missing API key is not an error here; the analyzer reports it per request.
func validate(cfg *Config) error {
	if cfg.HTTPServer.Port <= 0 {
		return fmt.Errorf("http_server.port must be positive")
	}
	if cfg.RateLimit.Enabled && cfg.RateLimit.RequestsPerMin <= 0 {
		return fmt.Errorf("rate_limit.requests_per_min must be positive when rate limiting is enabled")
	}
	if cfg.LLM.Temperature < 0 {
		return fmt.Errorf("llm.temperature must not be negative")
	}
	if _, err := time.LoadLocation(cfg.Analyzer.Timezone); err != nil {
		return fmt.Errorf("analyzer.timezone: %w", err)
	}
	return nil
}

// splitList splits a comma-separated value since viper does not parse
// arrays from env seamlessly.
func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
