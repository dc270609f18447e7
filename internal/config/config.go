package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// PlaceholderKey is the sentinel credential shipped in example configs.
// A gateway configured with it (or with no key at all) runs in demo
// mode and never calls the completion API.
const PlaceholderKey = "your_api_key_here"

// Config holds the full application configuration.
type Config struct {
	Anthropic AnthropicConfig `mapstructure:"anthropic"`
	PageSpeed PageSpeedConfig `mapstructure:"pagespeed"`
	Scrape    ScrapeConfig    `mapstructure:"scrape"`
	Analyzer  AnalyzerConfig  `mapstructure:"analyzer"`
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
}

// AnthropicConfig holds completion API settings.
type AnthropicConfig struct {
	Key         string  `mapstructure:"key"`
	Model       string  `mapstructure:"model"`
	Temperature float64 `mapstructure:"temperature"`
	MaxTokens   int64   `mapstructure:"max_tokens"`
}

// PageSpeedConfig holds performance-scoring API settings. An empty Key
// disables the prober entirely.
type PageSpeedConfig struct {
	Key     string `mapstructure:"key"`
	BaseURL string `mapstructure:"base_url"`
}

// ScrapeConfig configures the content extractor.
type ScrapeConfig struct {
	TimeoutSecs  int    `mapstructure:"timeout_secs"`
	MaxBodyChars int    `mapstructure:"max_body_chars"`
	UserAgent    string `mapstructure:"user_agent"`
}

// AnalyzerConfig configures the per-competitor batch loop.
type AnalyzerConfig struct {
	Concurrency    int `mapstructure:"concurrency"`
	PerURLTimeoutS int `mapstructure:"per_url_timeout_secs"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Port       int  `mapstructure:"port"`
	EnableCORS bool `mapstructure:"enable_cors"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("COMPINTEL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Credentials have no default, so Unmarshal only sees them through
	// an explicit binding.
	for _, key := range []string{"anthropic.key", "pagespeed.key"} {
		if err := v.BindEnv(key); err != nil {
			return nil, eris.Wrap(err, "config: bind env")
		}
	}

	// Defaults
	v.SetDefault("anthropic.model", "claude-sonnet-4-5-20250929")
	v.SetDefault("anthropic.temperature", 0.7)
	v.SetDefault("anthropic.max_tokens", 4096)
	v.SetDefault("pagespeed.base_url", "https://www.googleapis.com")
	v.SetDefault("scrape.timeout_secs", 15)
	v.SetDefault("scrape.max_body_chars", 3000)
	v.SetDefault("scrape.user_agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")
	v.SetDefault("analyzer.concurrency", 3)
	v.SetDefault("analyzer.per_url_timeout_secs", 120)
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.enable_cors", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

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
