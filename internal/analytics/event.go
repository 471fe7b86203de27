// Package analytics receives interaction events from the landing page and
// fans them out to sinks (logs, metrics, an optional GA4 forwarder).
// Reporting is fire-and-forget: nothing is acknowledged or retried.
package analytics

import (
	"fmt"
	"math"
	"regexp"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/northflowteam-pixel/northflow-landing-page/internal/apperror"
)

const (
	MaxNameLength   = 40
	MaxParams       = 25
	MaxStringLength = 100
)

// Well-known event names emitted by the site itself.
const (
	EventPageView         = "page_view"
	EventBookingClick     = "booking_click"
	EventCalculatorChange = "calculator_change"
	EventFAQOpen          = "faq_open"
	EventCTAClick         = "cta_click"
	EventSocialClick      = "social_click"
)

// OtherLabel replaces metric label values outside a known set.
const OtherLabel = "other"

var knownEvents = map[string]bool{
	EventPageView:         true,
	EventBookingClick:     true,
	EventCalculatorChange: true,
	EventFAQOpen:          true,
	EventCTAClick:         true,
	EventSocialClick:      true,
}

// MetricName returns name when the site emits it and OtherLabel otherwise.
// Event names come from clients and must not become label values unchecked.
func MetricName(name string) string {
	if knownEvents[name] {
		return name
	}
	return OtherLabel
}

var namePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// Params maps parameter names to string, number or bool values.
type Params map[string]any

// Event is one reported interaction.
type Event struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Params     Params    `json:"params,omitempty"`
	ClientID   string    `json:"clientId,omitempty"`
	Page       string    `json:"page,omitempty"`
	ReceivedAt time.Time `json:"receivedAt"`
}

// ValidateName checks an event or parameter name.
func ValidateName(field, name string) error {
	if name == "" {
		return apperror.NewValidation(field, fmt.Sprintf("%s is required", field))
	}
	if len(name) > MaxNameLength {
		return apperror.NewValidation(field, fmt.Sprintf("%s must be at most %d characters", field, MaxNameLength))
	}
	if !namePattern.MatchString(name) {
		return apperror.NewValidation(field, fmt.Sprintf("%s must match [a-z][a-z0-9_]*", field))
	}
	return nil
}

// NormalizeParams validates params and returns a cleaned copy: integers
// become float64 and strings are truncated to MaxStringLength runes.
func NormalizeParams(params Params) (Params, error) {
	if len(params) == 0 {
		return nil, nil
	}
	if len(params) > MaxParams {
		return nil, apperror.NewValidation("params", fmt.Sprintf("at most %d params are allowed", MaxParams))
	}

	out := make(Params, len(params))
	for key, value := range params {
		if err := ValidateName("params."+key, key); err != nil {
			return nil, err
		}

		switch v := value.(type) {
		case string:
			out[key] = truncate(v, MaxStringLength)
		case bool:
			out[key] = v
		case float64:
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, apperror.NewValidation("params."+key, "numbers must be finite")
			}
			out[key] = v
		case float32:
			out[key] = float64(v)
		case int:
			out[key] = float64(v)
		case int64:
			out[key] = float64(v)
		default:
			return nil, apperror.NewValidation("params."+key, "values must be strings, numbers or booleans")
		}
	}
	return out, nil
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max])
}

// NewEvent validates name and params and stamps the event.
func NewEvent(name string, params Params, now time.Time) (Event, error) {
	if err := ValidateName("name", name); err != nil {
		return Event{}, err
	}
	clean, err := NormalizeParams(params)
	if err != nil {
		return Event{}, err
	}
	return Event{
		ID:         uuid.NewString(),
		Name:       name,
		Params:     clean,
		ReceivedAt: now.UTC(),
	}, nil
}
