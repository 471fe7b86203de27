package config

import (
	"net/netip"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "4002", cfg.Port)
	assert.Equal(t, "local", cfg.Environment)
	assert.Equal(t, "en-CA", cfg.Currency.Locale)
	assert.Equal(t, "$", cfg.Currency.Symbol)
	assert.Equal(t, 120, cfg.Analytics.RatePerMinute)
	assert.Equal(t, 20, cfg.Analytics.Burst)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "https://cal.com/northflow-digital-fb72jd", cfg.BookingURL)
	assert.False(t, cfg.Analytics.ForwardingEnabled())
	assert.Empty(t, cfg.TrustedProxies)
}

func TestParse_Overrides(t *testing.T) {
	t.Setenv("WEBSITE_PORT", "8080")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("CURRENCY_LOCALE", "en-US")
	t.Setenv("ANALYTICS_RATE_PER_MINUTE", "30")
	t.Setenv("GA_TIMEOUT", "750ms")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ListenAddr())
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "en-US", cfg.Currency.Locale)
	assert.Equal(t, 30, cfg.Analytics.RatePerMinute)
	assert.Equal(t, 750*time.Millisecond, cfg.Analytics.Timeout)
}

func TestParse_TrustedProxies(t *testing.T) {
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8,127.0.0.1/32")

	cfg, err := Parse()
	require.NoError(t, err)

	require.Len(t, cfg.TrustedProxies, 2)
	assert.Equal(t, netip.MustParsePrefix("10.0.0.0/8"), cfg.TrustedProxies[0])
	assert.True(t, cfg.TrustedProxies[1].Contains(netip.MustParseAddr("127.0.0.1")))
}

func TestParse_InvalidTrustedProxies(t *testing.T) {
	t.Setenv("TRUSTED_PROXIES", "not-a-cidr")

	_, err := Parse()
	assert.Error(t, err)
}

func TestLoadDotEnv_Precedence(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("NF_TEST_ONLY_DOTENV=dotenv\nNF_TEST_REAL=dotenv\nNF_TEST_LOCAL=dotenv\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.local"),
		[]byte("NF_TEST_LOCAL=local\n"), 0o600))
	t.Chdir(dir)

	// t.Setenv restores the variables that LoadDotEnv writes.
	t.Setenv("NF_TEST_ONLY_DOTENV", "")
	require.NoError(t, os.Unsetenv("NF_TEST_ONLY_DOTENV"))
	t.Setenv("NF_TEST_REAL", "real")
	t.Setenv("NF_TEST_LOCAL", "real")

	LoadDotEnv()

	assert.Equal(t, "dotenv", os.Getenv("NF_TEST_ONLY_DOTENV"))
	assert.Equal(t, "real", os.Getenv("NF_TEST_REAL"), ".env must not override the environment")
	assert.Equal(t, "local", os.Getenv("NF_TEST_LOCAL"), ".env.local overrides the environment")
}

func TestParse_InvalidDuration(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")

	_, err := Parse()
	assert.Error(t, err)
}

func TestConfig_ListenAddr(t *testing.T) {
	tests := []struct {
		name    string
		address string
		port    string
		want    string
	}{
		{"port only", "", "4002", ":4002"},
		{"port with colon", "", ":4002", ":4002"},
		{"address and port", "0.0.0.0", "80", "0.0.0.0:80"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Address: tt.address, Port: tt.port}
			assert.Equal(t, tt.want, cfg.ListenAddr())
		})
	}
}

func TestAnalyticsConfig_ForwardingEnabled(t *testing.T) {
	tests := []struct {
		name   string
		config AnalyticsConfig
		want   bool
	}{
		{"nothing set", AnalyticsConfig{}, false},
		{"id only", AnalyticsConfig{MeasurementID: "G-123"}, false},
		{"secret only", AnalyticsConfig{APISecret: "s3cret"}, false},
		{"both set", AnalyticsConfig{MeasurementID: "G-123", APISecret: "s3cret"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.config.ForwardingEnabled())
		})
	}
}
