package analytics

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-resty/resty/v2"

	"github.com/northflowteam-pixel/northflow-landing-page/internal/config"
	"github.com/northflowteam-pixel/northflow-landing-page/internal/logger"
	"github.com/northflowteam-pixel/northflow-landing-page/internal/metrics"
)

// Forwarder relays events to the GA4 Measurement Protocol. Failures are
// logged and dropped.
type Forwarder struct {
	client        *resty.Client
	log           *slog.Logger
	endpoint      string
	measurementID string
	apiSecret     string
}

type mpEvent struct {
	Name   string `json:"name"`
	Params Params `json:"params,omitempty"`
}

type mpPayload struct {
	ClientID string    `json:"client_id"`
	Events   []mpEvent `json:"events"`
}

// NewForwarder builds a forwarder from the analytics config
func NewForwarder(cfg config.AnalyticsConfig, log *slog.Logger) *Forwarder {
	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json")

	return &Forwarder{
		client:        client,
		log:           log.With(logger.Scope("analytics.forwarder")),
		endpoint:      cfg.Endpoint,
		measurementID: cfg.MeasurementID,
		apiSecret:     cfg.APISecret,
	}
}

// Send posts a single event.
func (f *Forwarder) Send(ctx context.Context, e Event) error {
	clientID := e.ClientID
	if clientID == "" {
		clientID = e.ID
	}

	payload := mpPayload{
		ClientID: clientID,
		Events:   []mpEvent{{Name: e.Name, Params: e.Params}},
	}

	resp, err := f.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"measurement_id": f.measurementID,
			"api_secret":     f.apiSecret,
		}).
		SetBody(payload).
		Post(f.endpoint)
	if err != nil {
		return fmt.Errorf("forward %s: %w", e.Name, err)
	}
	if resp.IsError() {
		return fmt.Errorf("forward %s: unexpected status %d", e.Name, resp.StatusCode())
	}
	return nil
}

// Subscriber adapts the forwarder to the bus.
func (f *Forwarder) Subscriber() Subscriber {
	return func(e Event) {
		if err := f.Send(context.Background(), e); err != nil {
			metrics.AnalyticsForwardFailures.Inc()
			f.log.Warn("failed to forward analytics event",
				slog.String("event_id", e.ID),
				logger.Error(err),
			)
		}
	}
}
