package config

import (
	"fmt"
	"log/slog"
	"net/netip"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

var Module = fx.Module("config",
	fx.Provide(NewConfig),
)

// Config holds all website configuration
type Config struct {
	// Server settings
	Port        string `env:"WEBSITE_PORT" envDefault:"4002"`
	Address     string `env:"WEBSITE_ADDRESS" envDefault:""`
	Environment string `env:"ENVIRONMENT" envDefault:"local"`
	BaseURL     string `env:"SITE_BASE_URL" envDefault:"http://localhost:4002"`

	// Server timeouts
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"15s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Peers allowed to set X-Forwarded-For / X-Real-IP, as CIDR ranges
	// (e.g. "10.0.0.0/8,127.0.0.1/32"). Empty means no proxy is trusted.
	TrustedProxies []netip.Prefix `env:"TRUSTED_PROXIES" envSeparator:","`

	// Third-party embeds
	BookingURL    string `env:"BOOKING_URL" envDefault:"https://cal.com/northflow-digital-fb72jd"`
	ConvAIAgentID string `env:"CONVAI_AGENT_ID" envDefault:"agent_5701kfvcxy7wfyytbs8c9mbx0q8f"`

	Currency  CurrencyConfig
	Analytics AnalyticsConfig
}

// CurrencyConfig controls how estimator figures are rendered. Locale picks
// digit grouping only; Symbol is always a prefix.
type CurrencyConfig struct {
	Locale string `env:"CURRENCY_LOCALE" envDefault:"en-CA"`
	Symbol string `env:"CURRENCY_SYMBOL" envDefault:"$"`
}

// AnalyticsConfig holds event ingestion and forwarding settings
type AnalyticsConfig struct {
	RatePerMinute int           `env:"ANALYTICS_RATE_PER_MINUTE" envDefault:"120"`
	Burst         int           `env:"ANALYTICS_BURST" envDefault:"20"`
	LimiterIdle   time.Duration `env:"ANALYTICS_LIMITER_IDLE" envDefault:"10m"`

	// GA4 Measurement Protocol forwarding (disabled unless both are set)
	MeasurementID string        `env:"GA_MEASUREMENT_ID"`
	APISecret     string        `env:"GA_API_SECRET"`
	Endpoint      string        `env:"GA_ENDPOINT" envDefault:"https://www.google-analytics.com/mp/collect"`
	Timeout       time.Duration `env:"GA_TIMEOUT" envDefault:"3s"`
}

// ForwardingEnabled reports whether events should be sent to GA4
func (a *AnalyticsConfig) ForwardingEnabled() bool {
	return a.MeasurementID != "" && a.APISecret != ""
}

// ListenAddr returns the host:port the HTTP server binds to
func (c *Config) ListenAddr() string {
	port := strings.TrimPrefix(c.Port, ":")
	return c.Address + ":" + port
}

// IsProduction reports whether the site runs in production
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

// LoadDotEnv loads .env files if present (for local development).
// .env only fills variables that are unset; .env.local overrides both .env
// and the real environment.
func LoadDotEnv() {
	_ = godotenv.Load(".env")
	_ = godotenv.Overload(".env.local")
}

// Parse reads the configuration from the environment without logging
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// NewConfig loads configuration from environment variables
func NewConfig(log *slog.Logger) (*Config, error) {
	cfg, err := Parse()
	if err != nil {
		return nil, err
	}

	log.Info("configuration loaded",
		slog.String("environment", cfg.Environment),
		slog.String("addr", cfg.ListenAddr()),
		slog.String("currency_locale", cfg.Currency.Locale),
		slog.Int("trusted_proxies", len(cfg.TrustedProxies)),
		slog.Bool("ga_forwarding", cfg.Analytics.ForwardingEnabled()),
	)

	return cfg, nil
}
