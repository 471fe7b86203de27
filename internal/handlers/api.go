package handlers

import (
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/northflowteam-pixel/northflow-landing-page/internal/analytics"
	"github.com/northflowteam-pixel/northflow-landing-page/internal/apperror"
	"github.com/northflowteam-pixel/northflow-landing-page/internal/components"
	"github.com/northflowteam-pixel/northflow-landing-page/internal/estimator"
	"github.com/northflowteam-pixel/northflow-landing-page/internal/metrics"
	"github.com/northflowteam-pixel/northflow-landing-page/internal/version"
)

var sourcePattern = regexp.MustCompile(`^[a-z][a-z0-9_]{0,39}$`)

var bookingSources = func() map[string]bool {
	m := make(map[string]bool, len(components.BookingSources))
	for _, s := range components.BookingSources {
		m[s] = true
	}
	return m
}()

// sourceLabel bounds the booking metric to the page's own sections.
func sourceLabel(source string) string {
	if source == "unknown" || bookingSources[source] {
		return source
	}
	return analytics.OtherLabel
}

// Estimate handles GET /api/estimate?job=&calls=&rate=.
func (h *Handler) Estimate(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	session := estimator.ParseSession(query)

	metrics.Estimates.WithLabelValues(strconv.FormatBool(adjusted(query.Get, session))).Inc()
	apperror.WriteJSON(w, http.StatusOK, h.formatter.Report(session))
}

// adjusted reports whether any supplied value was changed by clamping or
// rounding.
func adjusted(get func(string) string, s *estimator.Session) bool {
	for _, f := range estimator.Fields() {
		v, ok := estimator.ParseValue(get(f.Key))
		if !ok {
			continue
		}
		if v != s.Value(f.Key) {
			return true
		}
	}
	return false
}

// Book handles GET /book?source=<section>: it records the click and sends
// the visitor on to the booking calendar. Clicks over the per-IP limit are
// redirected without being recorded.
func (h *Handler) Book(w http.ResponseWriter, r *http.Request) {
	source := r.URL.Query().Get("source")
	if !sourcePattern.MatchString(source) {
		source = "unknown"
	}

	if h.limiter.Allow(analytics.ClientIP(r)) {
		metrics.BookingClicks.WithLabelValues(sourceLabel(source)).Inc()
		h.track(r, analytics.EventBookingClick, analytics.Params{"source": source}, existingClientID(r))
	}

	w.Header().Set("Cache-Control", "no-store")
	http.Redirect(w, r, h.cfg.BookingURL, http.StatusFound)
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	apperror.WriteJSON(w, http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: version.Version,
		Uptime:  h.now().Sub(h.started).Truncate(time.Second).String(),
	})
}

func Healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
