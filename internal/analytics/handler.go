package analytics

import (
	"encoding/json"
	"log/slog"
	"net"
	"net/http"

	"github.com/northflowteam-pixel/northflow-landing-page/internal/apperror"
	"github.com/northflowteam-pixel/northflow-landing-page/internal/logger"
	"github.com/northflowteam-pixel/northflow-landing-page/internal/metrics"
)

const maxBodyBytes = 8 << 10

// Handler serves the browser-facing ingestion endpoint
type Handler struct {
	svc     *Service
	limiter *ClientLimiter
	log     *slog.Logger
}

// NewHandler creates a new analytics handler
func NewHandler(svc *Service, limiter *ClientLimiter, log *slog.Logger) *Handler {
	return &Handler{
		svc:     svc,
		limiter: limiter,
		log:     log.With(logger.Scope("analytics.handler")),
	}
}

// IngestRequest is the body the page's tracker posts.
type IngestRequest struct {
	Name     string `json:"name"`
	Params   Params `json:"params,omitempty"`
	ClientID string `json:"clientId,omitempty"`
	Page     string `json:"page,omitempty"`
}

// Ingest handles POST /api/events. The tracker uses navigator.sendBeacon,
// so the body is read as JSON regardless of Content-Type.
func (h *Handler) Ingest(w http.ResponseWriter, r *http.Request) {
	if !h.limiter.Allow(ClientIP(r)) {
		metrics.AnalyticsRejected.WithLabelValues("rate_limited").Inc()
		apperror.WriteError(w, h.log, apperror.ErrTooManyRequests)
		return
	}

	var req IngestRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		metrics.AnalyticsRejected.WithLabelValues("malformed").Inc()
		apperror.WriteError(w, h.log, apperror.NewBadRequest("request body must be a JSON event"))
		return
	}

	e, err := h.svc.Track(r.Context(), req.Name, req.Params,
		WithClientID(truncate(req.ClientID, 64)),
		WithPage(truncate(req.Page, 200)),
	)
	if err != nil {
		metrics.AnalyticsRejected.WithLabelValues("invalid").Inc()
		apperror.WriteError(w, h.log, err)
		return
	}

	apperror.WriteJSON(w, http.StatusAccepted, map[string]string{"id": e.ID})
}

// ClientIP returns the caller's address without the port. RemoteAddr only
// carries a forwarded address when the request came through a trusted proxy.
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
