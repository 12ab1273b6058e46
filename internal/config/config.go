package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sells-group/reviewlead-cli/internal/score"
)

// Config holds the full application configuration.
type Config struct {
	Provider ProviderConfig `yaml:"provider" mapstructure:"provider"`
	Output   OutputConfig   `yaml:"output" mapstructure:"output"`
	Webhook  WebhookConfig  `yaml:"webhook" mapstructure:"webhook"`
	Scoring  ScoringConfig  `yaml:"scoring" mapstructure:"scoring"`
	Lexicon  LexiconConfig  `yaml:"lexicon" mapstructure:"lexicon"`
	Enrich   EnrichConfig   `yaml:"enrich" mapstructure:"enrich"`
	Server   ServerConfig   `yaml:"server" mapstructure:"server"`
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
}

// ProviderConfig holds scraping-provider API settings.
type ProviderConfig struct {
	Key           string  `yaml:"key" mapstructure:"key"`
	BaseURL       string  `yaml:"base_url" mapstructure:"base_url"`
	RatePerSecond float64 `yaml:"rate_per_second" mapstructure:"rate_per_second"`
}

// OutputConfig configures where run artifacts are written.
type OutputConfig struct {
	Dir      string `yaml:"dir" mapstructure:"dir"`
	TopCount int    `yaml:"top_count" mapstructure:"top_count"`
}

// WebhookConfig holds digest delivery settings. An empty URL disables
// delivery without being an error.
type WebhookConfig struct {
	URL string `yaml:"url" mapstructure:"url"`
}

// ScoringConfig carries the rubric weights.
type ScoringConfig struct {
	Weights score.Weights `yaml:"weights" mapstructure:"weights"`
}

// LexiconConfig points at optional YAML lexicon tables. Empty paths use
// the embedded defaults.
type LexiconConfig struct {
	SentimentPath string `yaml:"sentiment_path" mapstructure:"sentiment_path"`
	ComplaintPath string `yaml:"complaint_path" mapstructure:"complaint_path"`
}

// EnrichConfig configures the enrichment stage.
type EnrichConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// ServerConfig configures the leads API server.
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
	v.SetEnvPrefix("REVIEWLEAD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("provider.rate_per_second", 2.0)
	v.SetDefault("output.dir", "out")
	v.SetDefault("output.top_count", 5)
	v.SetDefault("scoring.weights.recent_negatives", 40)
	v.SetDefault("scoring.weights.low_response_rate", 30)
	v.SetDefault("scoring.weights.business_size", 20)
	v.SetDefault("scoring.weights.rating_decline", 10)
	v.SetDefault("enrich.workers", 4)
	v.SetDefault("server.port", 8080)
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
