// Package config defines configuration parsing and helpers.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Extractor strategy names accepted by EXTRACTOR_MODE.
const (
	ExtractorNLP     = "nlp"
	ExtractorKeyword = "keyword"
)

// Config holds all application configuration parsed from environment variables.
type Config struct {
	AppEnv string `env:"APP_ENV" envDefault:"dev"`
	Port   int    `env:"PORT" envDefault:"8080"`

	// MinTextLen / MaxTextLen bound both analysis inputs. The upper bound
	// also caps NLP tagging cost on pathological inputs.
	MinTextLen int `env:"MIN_TEXT_LEN" envDefault:"50"`
	MaxTextLen int `env:"MAX_TEXT_LEN" envDefault:"10000"`

	// RecommendationCap limits how many gap suggestions one analysis emits.
	RecommendationCap int `env:"RECOMMENDATION_CAP" envDefault:"5"`

	// ExtractorMode selects the extraction strategy at startup: "nlp" with
	// keyword fallback, or "keyword" to force degraded mode.
	ExtractorMode string `env:"EXTRACTOR_MODE" envDefault:"nlp"`

	CORSAllowOrigins string `env:"CORS_ALLOW_ORIGINS" envDefault:"*"`
	RateLimitPerMin  int    `env:"RATE_LIMIT_PER_MIN" envDefault:"30"`

	ServerShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"30s"`
	HTTPReadTimeout       time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"15s"`
	HTTPWriteTimeout      time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
	HTTPIdleTimeout       time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"60s"`

	OTLPEndpoint    string `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:""`
	OTELServiceName string `env:"OTEL_SERVICE_NAME" envDefault:"skill-sync-pro"`
}

// Load parses environment variables into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("op=config.Load: %w", err)
	}
	if cfg.MinTextLen <= 0 || cfg.MaxTextLen < cfg.MinTextLen {
		return Config{}, fmt.Errorf("op=config.Load: invalid text length bounds [%d,%d]", cfg.MinTextLen, cfg.MaxTextLen)
	}
	return cfg, nil
}

// IsDev reports whether the app is running in development mode.
func (c Config) IsDev() bool { return strings.ToLower(c.AppEnv) == "dev" }

// IsProd reports whether the app is running in production mode.
func (c Config) IsProd() bool { return strings.ToLower(c.AppEnv) == "prod" }

// IsTest reports whether the app is running in test mode.
func (c Config) IsTest() bool { return strings.ToLower(c.AppEnv) == "test" }
