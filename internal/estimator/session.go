package estimator

import (
	"errors"
	"net/url"
	"strconv"
	"strings"
)

// Session holds the calculator state for one page view (or one terminal
// session). It is owned by a single goroutine and is not safe for
// concurrent use.
type Session struct {
	in  Inputs
	out Outputs
}

// NewSession starts a session at the default inputs.
func NewSession() *Session {
	return NewSessionWith(DefaultInputs())
}

// NewSessionWith starts a session at in, clamped.
func NewSessionWith(in Inputs) *Session {
	s := &Session{in: in.Clamped()}
	s.recompute()
	return s
}

func (s *Session) recompute() {
	s.out = Compute(s.in)
}

// Inputs returns the current inputs.
func (s *Session) Inputs() Inputs { return s.in }

// Outputs returns the outputs for the current inputs.
func (s *Session) Outputs() Outputs { return s.out }

// SetAverageJobValue clamps v into [100, 5000] and recomputes.
func (s *Session) SetAverageJobValue(v float64) {
	s.in.AverageJobValue = JobValueField.Clamp(v)
	s.recompute()
}

// SetMissedCallsPerWeek rounds v, clamps it into [1, 50] and recomputes.
func (s *Session) SetMissedCallsPerWeek(v float64) {
	s.in.MissedCallsPerWeek = int(MissedCallsField.Clamp(v))
	s.recompute()
}

// SetCloseRatePercent rounds v, clamps it into [10, 100] and recomputes.
func (s *Session) SetCloseRatePercent(v float64) {
	s.in.CloseRatePercent = int(CloseRateField.Clamp(v))
	s.recompute()
}

// Set updates the field identified by key. Unknown keys are ignored and
// reported as false.
func (s *Session) Set(key string, v float64) bool {
	switch key {
	case JobValueField.Key:
		s.SetAverageJobValue(v)
	case MissedCallsField.Key:
		s.SetMissedCallsPerWeek(v)
	case CloseRateField.Key:
		s.SetCloseRatePercent(v)
	default:
		return false
	}
	return true
}

// Value returns the current value of the field identified by key.
func (s *Session) Value(key string) float64 {
	switch key {
	case JobValueField.Key:
		return s.in.AverageJobValue
	case MissedCallsField.Key:
		return float64(s.in.MissedCallsPerWeek)
	case CloseRateField.Key:
		return float64(s.in.CloseRatePercent)
	}
	return 0
}

// Step moves the field identified by key by n steps (negative moves down).
func (s *Session) Step(key string, n int) {
	for _, f := range Fields() {
		if f.Key == key {
			s.Set(key, s.Value(key)+float64(n)*f.Step)
			return
		}
	}
}

// ParseInputs reads inputs from query parameters (job, calls, rate).
// Missing or malformed values keep their defaults; the rest are clamped.
func ParseInputs(values url.Values) Inputs {
	return ParseSession(values).Inputs()
}

// ParseSession builds a session from query parameters, see ParseInputs.
func ParseSession(values url.Values) *Session {
	s := NewSession()
	for _, f := range Fields() {
		if v, ok := ParseValue(values.Get(f.Key)); ok {
			s.Set(f.Key, v)
		}
	}
	return s
}

// ParseValue parses one query value. Overflowing numbers such as "1e400"
// come back as ±Inf so that clamping moves them to the nearest bound.
func ParseValue(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return v, true
}
