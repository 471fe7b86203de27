package analytics

import (
	"log/slog"

	"github.com/northflowteam-pixel/northflow-landing-page/internal/logger"
	"github.com/northflowteam-pixel/northflow-landing-page/internal/metrics"
)

// LogSink writes each event as a structured log line.
func LogSink(log *slog.Logger) Subscriber {
	log = log.With(logger.Scope("analytics.events"))
	return func(e Event) {
		attrs := []any{
			slog.String("event_id", e.ID),
			slog.String("name", e.Name),
		}
		if e.Page != "" {
			attrs = append(attrs, slog.String("page", e.Page))
		}
		if e.ClientID != "" {
			attrs = append(attrs, slog.String("client_id", e.ClientID))
		}
		if len(e.Params) > 0 {
			attrs = append(attrs, slog.Any("params", map[string]any(e.Params)))
		}
		log.Info("analytics event", attrs...)
	}
}

// MetricsSink counts events by name.
func MetricsSink() Subscriber {
	return func(e Event) {
		metrics.AnalyticsEvents.WithLabelValues(MetricName(e.Name)).Inc()
	}
}
