package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/fx"

	"github.com/northflowteam-pixel/northflow-landing-page/internal/analytics"
	"github.com/northflowteam-pixel/northflow-landing-page/internal/config"
	"github.com/northflowteam-pixel/northflow-landing-page/internal/content"
	"github.com/northflowteam-pixel/northflow-landing-page/internal/estimator"
	"github.com/northflowteam-pixel/northflow-landing-page/internal/logger"
)

// ClientIDCookie holds the anonymous visitor id shared with analytics.js.
const ClientIDCookie = "nf_cid"

const clientIDMaxAge = 365 * 24 * time.Hour

// Params are the dependencies for the page handlers
type Params struct {
	fx.In

	Config    *config.Config
	Site      *content.Site
	Formatter *estimator.Formatter
	Analytics *analytics.Service
	Limiter   *analytics.ClientLimiter
	Log       *slog.Logger
}

// Handler serves the landing page and its small JSON surface
type Handler struct {
	cfg       *config.Config
	site      *content.Site
	formatter *estimator.Formatter
	analytics *analytics.Service
	limiter   *analytics.ClientLimiter
	log       *slog.Logger

	now     func() time.Time
	started time.Time
}

// NewHandler creates a new page handler
func NewHandler(p Params) *Handler {
	return &Handler{
		cfg:       p.Config,
		site:      p.Site,
		formatter: p.Formatter,
		analytics: p.Analytics,
		limiter:   p.Limiter,
		log:       p.Log.With(logger.Scope("handlers")),
		now:       time.Now,
		started:   time.Now(),
	}
}

// NewFormatter builds the currency formatter from config
func NewFormatter(cfg *config.Config) (*estimator.Formatter, error) {
	return estimator.NewFormatter(cfg.Currency.Locale, cfg.Currency.Symbol)
}

// clientID returns the visitor's anonymous id, issuing a cookie on first
// visit. The cookie is readable by analytics.js.
func (h *Handler) clientID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(ClientIDCookie); err == nil {
		if _, err := uuid.Parse(c.Value); err == nil {
			return c.Value
		}
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     ClientIDCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   int(clientIDMaxAge / time.Second),
		SameSite: http.SameSiteLaxMode,
		Secure:   h.cfg.IsProduction(),
	})
	return id
}

// existingClientID reads the visitor id without issuing one.
func existingClientID(r *http.Request) string {
	c, err := r.Cookie(ClientIDCookie)
	if err != nil {
		return ""
	}
	if _, err := uuid.Parse(c.Value); err != nil {
		return ""
	}
	return c.Value
}

// track reports a server-side event. Validation failures are programming
// errors here, so they are only logged.
func (h *Handler) track(r *http.Request, name string, params analytics.Params, clientID string) {
	_, err := h.analytics.Track(r.Context(), name, params,
		analytics.WithClientID(clientID),
		analytics.WithPage(r.URL.Path),
	)
	if err != nil {
		h.log.Warn("failed to track event", slog.String("name", name), logger.Error(err))
	}
}
