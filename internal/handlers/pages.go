package handlers

import (
	"net/http"
	"strings"

	"github.com/northflowteam-pixel/northflow-landing-page/internal/analytics"
	"github.com/northflowteam-pixel/northflow-landing-page/internal/components"
	"github.com/northflowteam-pixel/northflow-landing-page/internal/estimator"
	"github.com/northflowteam-pixel/northflow-landing-page/internal/logger"
	"github.com/northflowteam-pixel/northflow-landing-page/internal/metrics"
)

// LandingPage renders the page. job, calls and rate query parameters preset
// the calculator.
func (h *Handler) LandingPage(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	session := estimator.ParseSession(query)

	preset := "default"
	for _, f := range estimator.Fields() {
		if query.Has(f.Key) {
			preset = "custom"
			break
		}
	}

	cid := h.clientID(w, r)
	metrics.PageViews.WithLabelValues(preset).Inc()
	h.track(r, analytics.EventPageView, analytics.Params{"preset": preset}, cid)

	page := components.Landing(components.Page{
		Site:          h.site,
		Session:       session,
		Formatter:     h.formatter,
		ConvAIAgentID: h.cfg.ConvAIAgentID,
		CanonicalURL:  strings.TrimSuffix(h.cfg.BaseURL, "/") + "/",
		Now:           h.now(),
	})

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.Render(w); err != nil {
		h.log.Error("failed to render landing page", logger.Error(err))
	}
}
