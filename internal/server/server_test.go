package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"net/netip"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"

	"github.com/northflowteam-pixel/northflow-landing-page/internal/analytics"
	"github.com/northflowteam-pixel/northflow-landing-page/internal/config"
	"github.com/northflowteam-pixel/northflow-landing-page/internal/logger"
	"github.com/northflowteam-pixel/northflow-landing-page/internal/metrics"
)

func newTestConfig() *config.Config {
	return &config.Config{
		Address:         "127.0.0.1",
		Port:            "0",
		Environment:     "local",
		ReadTimeout:     5 * time.Second,
		WriteTimeout:    5 * time.Second,
		IdleTimeout:     5 * time.Second,
		ShutdownTimeout: 5 * time.Second,
	}
}

func TestRouter_NotFound(t *testing.T) {
	r := NewRouter(RouterParams{Config: newTestConfig(), Log: logger.Discard()})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var body map[string]map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "not_found", body["error"]["code"])
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	r := NewRouter(RouterParams{Config: newTestConfig(), Log: logger.Discard()})
	r.Get("/only-get", func(w http.ResponseWriter, r *http.Request) {})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/only-get", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Contains(t, rec.Body.String(), "method_not_allowed")
}

func TestRouter_RecoversPanics(t *testing.T) {
	r := NewRouter(RouterParams{Config: newTestConfig(), Log: logger.Discard()})
	r.Get("/boom", func(w http.ResponseWriter, r *http.Request) { panic("boom") })

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "internal_error")
}

func TestRouter_StaticFiles(t *testing.T) {
	r := NewRouter(RouterParams{Config: newTestConfig(), Log: logger.Discard()})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/js/calculator.js", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "weeksPerMonth")
}

func TestRouter_Compresses(t *testing.T) {
	r := NewRouter(RouterParams{Config: newTestConfig(), Log: logger.Discard()})

	req := httptest.NewRequest(http.MethodGet, "/static/styles.css", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
}

func TestRouter_RouteMetrics(t *testing.T) {
	r := NewRouter(RouterParams{Config: newTestConfig(), Log: logger.Discard()})
	r.Get("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	counter := metrics.HTTPRequests.WithLabelValues(http.MethodGet, "/items/{id}", "418")
	before := testutil.ToFloat64(counter)

	for _, id := range []string{"1", "2", "3"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items/"+id, nil))
	}

	assert.Equal(t, before+3, testutil.ToFloat64(counter))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "website_http_requests_total")
}

func TestTrustedRealIP(t *testing.T) {
	tests := []struct {
		name    string
		trusted []netip.Prefix
		peer    string
		header  string
		value   string
		want    string
	}{
		{"no proxies trusted", nil, "203.0.113.7:5555", "X-Forwarded-For", "198.51.100.9", "203.0.113.7:5555"},
		{"untrusted peer", []netip.Prefix{netip.MustParsePrefix("10.0.0.0/8")}, "203.0.113.7:5555", "X-Real-IP", "198.51.100.9", "203.0.113.7:5555"},
		{"trusted peer real ip", []netip.Prefix{netip.MustParsePrefix("10.0.0.0/8")}, "10.1.2.3:4000", "X-Real-IP", "198.51.100.9", "198.51.100.9"},
		{"trusted peer forwarded for", []netip.Prefix{netip.MustParsePrefix("10.0.0.0/8")}, "10.1.2.3:4000", "X-Forwarded-For", "198.51.100.9", "198.51.100.9"},
		{"unparsable peer", []netip.Prefix{netip.MustParsePrefix("10.0.0.0/8")}, "pipe", "X-Real-IP", "198.51.100.9", "pipe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := TrustedRealIP(tt.trusted)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				io.WriteString(w, r.RemoteAddr)
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.peer
			req.Header.Set(tt.header, tt.value)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Body.String())
		})
	}
}

func TestRouter_ForgedForwardedForIsRateLimited(t *testing.T) {
	tests := []struct {
		name        string
		trusted     []netip.Prefix
		peer        string
		wantLimited int
		wantEntries int
	}{
		{"direct client", nil, "203.0.113.7:5555", 3, 1},
		{"client outside trusted range", []netip.Prefix{netip.MustParsePrefix("10.0.0.0/8")}, "203.0.113.7:5555", 3, 1},
		{"trusted proxy", []netip.Prefix{netip.MustParsePrefix("10.0.0.0/8")}, "10.1.2.3:4000", 0, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newTestConfig()
			cfg.TrustedProxies = tt.trusted

			limiter := analytics.NewClientLimiter(60, 2, time.Minute)
			r := NewRouter(RouterParams{Config: cfg, Log: logger.Discard()})
			analytics.RegisterRoutes(r, analytics.NewHandler(analytics.NewService(logger.Discard()), limiter, logger.Discard()))

			limited := 0
			for i := range 5 {
				req := httptest.NewRequest(http.MethodPost, "/api/events", strings.NewReader(`{"name":"page_view"}`))
				req.RemoteAddr = tt.peer
				req.Header.Set("X-Forwarded-For", fmt.Sprintf("198.51.100.%d", i+1))
				rec := httptest.NewRecorder()
				r.ServeHTTP(rec, req)

				if rec.Code == http.StatusTooManyRequests {
					limited++
				} else {
					require.Equal(t, http.StatusAccepted, rec.Code)
				}
			}

			assert.Equal(t, tt.wantLimited, limited)
			assert.Equal(t, tt.wantEntries, limiter.Len())
		})
	}
}

func TestRequestLogger_SkipsQuietPaths(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	r := NewRouter(RouterParams{Config: newTestConfig(), Log: log})
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {})
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Empty(t, buf.String())

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/?job=900", nil))
	out := buf.String()
	assert.Contains(t, out, "msg=request")
	assert.Contains(t, out, "scope=http")
	assert.Contains(t, out, "status=200")
	assert.Contains(t, out, "uri=\"/?job=900\"")
}

func freePort(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()
	return fmt.Sprint(ln.Addr().(*net.TCPAddr).Port)
}

func TestStartServer_Lifecycle(t *testing.T) {
	cfg := newTestConfig()
	cfg.Port = freePort(t)

	r := NewRouter(RouterParams{Config: cfg, Log: logger.Discard()})
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { _, _ = io.WriteString(w, "OK") })

	lc := fxtest.NewLifecycle(t)
	StartServer(lc, r, cfg, logger.Discard())
	lc.RequireStart()

	resp, err := http.Get("http://" + cfg.ListenAddr() + "/healthz")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, "OK", strings.TrimSpace(string(body)))

	lc.RequireStop()

	_, err = http.Get("http://" + cfg.ListenAddr() + "/healthz")
	assert.Error(t, err)
}

func TestStartServer_PortInUse(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	cfg := newTestConfig()
	cfg.Port = fmt.Sprint(ln.Addr().(*net.TCPAddr).Port)

	lc := fxtest.NewLifecycle(t)
	StartServer(lc, NewRouter(RouterParams{Config: cfg, Log: logger.Discard()}), cfg, logger.Discard())
	assert.Error(t, lc.Start(t.Context()))
}
