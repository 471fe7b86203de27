package analytics

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/northflowteam-pixel/northflow-landing-page/internal/config"
	"github.com/northflowteam-pixel/northflow-landing-page/internal/logger"
	"github.com/northflowteam-pixel/northflow-landing-page/internal/metrics"
)

func newTestForwarder(endpoint string) *Forwarder {
	return NewForwarder(config.AnalyticsConfig{
		MeasurementID: "G-TEST",
		APISecret:     "secret",
		Endpoint:      endpoint,
		Timeout:       time.Second,
	}, logger.Discard())
}

func TestForwarder_Send(t *testing.T) {
	var (
		gotQuery   map[string]string
		gotPayload mpPayload
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		gotQuery = map[string]string{
			"measurement_id": r.URL.Query().Get("measurement_id"),
			"api_secret":     r.URL.Query().Get("api_secret"),
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	err := newTestForwarder(srv.URL).Send(context.Background(), Event{
		ID:       "evt-1",
		Name:     "booking_click",
		Params:   Params{"source": "hero"},
		ClientID: "cid-1",
	})
	require.NoError(t, err)

	assert.Equal(t, "G-TEST", gotQuery["measurement_id"])
	assert.Equal(t, "secret", gotQuery["api_secret"])
	assert.Equal(t, "cid-1", gotPayload.ClientID)
	require.Len(t, gotPayload.Events, 1)
	assert.Equal(t, "booking_click", gotPayload.Events[0].Name)
	assert.Equal(t, "hero", gotPayload.Events[0].Params["source"])
}

func TestForwarder_FallsBackToEventID(t *testing.T) {
	var gotPayload mpPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotPayload)
	}))
	defer srv.Close()

	require.NoError(t, newTestForwarder(srv.URL).Send(context.Background(), Event{ID: "evt-2", Name: "page_view"}))
	assert.Equal(t, "evt-2", gotPayload.ClientID)
}

func TestForwarder_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	err := newTestForwarder(srv.URL).Send(context.Background(), Event{ID: "evt-3", Name: "page_view"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestForwarder_SubscriberCountsFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	before := testutil.ToFloat64(metrics.AnalyticsForwardFailures)
	newTestForwarder(srv.URL).Subscriber()(Event{ID: "evt-4", Name: "page_view"})
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.AnalyticsForwardFailures))
}
