// Package estimator implements the revenue-loss calculator shown on the
// landing page: three bounded inputs, two derived currency figures.
package estimator

import (
	"math"

	"github.com/shopspring/decimal"
)

// WeeksPerMonth is the multiplier the calculator uses to turn weekly missed
// calls into a monthly figure.
const WeeksPerMonth = 4

// MonthsPerYear converts the monthly loss into the yearly loss.
const MonthsPerYear = 12

// Field describes one bounded numeric control.
type Field struct {
	Key     string
	Label   string
	Unit    string
	Min     float64
	Max     float64
	Step    float64
	Default float64
	Integer bool
}

var (
	JobValueField = Field{
		Key:     "job",
		Label:   "Average Job Value",
		Unit:    "$",
		Min:     100,
		Max:     5000,
		Step:    50,
		Default: 500,
	}

	MissedCallsField = Field{
		Key:     "calls",
		Label:   "Missed Calls Per Week",
		Unit:    "calls",
		Min:     1,
		Max:     50,
		Step:    1,
		Default: 5,
		Integer: true,
	}

	CloseRateField = Field{
		Key:     "rate",
		Label:   "Estimated Close Rate",
		Unit:    "%",
		Min:     10,
		Max:     100,
		Step:    5,
		Default: 30,
		Integer: true,
	}
)

// Fields lists the controls in display order.
func Fields() []Field {
	return []Field{JobValueField, MissedCallsField, CloseRateField}
}

// Clamp brings v into [Min, Max]. NaN maps to Min, infinities to the
// matching bound, and integer fields are rounded first.
func (f Field) Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return f.Min
	}
	if f.Integer {
		v = math.Round(v)
	}
	if v < f.Min {
		return f.Min
	}
	if v > f.Max {
		return f.Max
	}
	return v
}

// Inputs is the current slider triple.
type Inputs struct {
	AverageJobValue    float64 `json:"averageJobValue"`
	MissedCallsPerWeek int     `json:"missedCallsPerWeek"`
	CloseRatePercent   int     `json:"closeRatePercent"`
}

// DefaultInputs returns the values the page loads with.
func DefaultInputs() Inputs {
	return Inputs{
		AverageJobValue:    JobValueField.Default,
		MissedCallsPerWeek: int(MissedCallsField.Default),
		CloseRatePercent:   int(CloseRateField.Default),
	}
}

// Clamped returns a copy of in with every field inside its bounds.
func (in Inputs) Clamped() Inputs {
	return Inputs{
		AverageJobValue:    JobValueField.Clamp(in.AverageJobValue),
		MissedCallsPerWeek: int(MissedCallsField.Clamp(float64(in.MissedCallsPerWeek))),
		CloseRatePercent:   int(CloseRateField.Clamp(float64(in.CloseRatePercent))),
	}
}

// Outputs are derived from Inputs and never set directly.
type Outputs struct {
	MonthlyLoss decimal.Decimal
	YearlyLoss  decimal.Decimal
}

// Compute derives the monthly and yearly loss:
//
//	monthly = missedCalls × 4 × closeRate/100 × jobValue
//	yearly  = monthly × 12
//
// Inputs are clamped first, so the result is always finite and non-negative.
func Compute(in Inputs) Outputs {
	in = in.Clamped()

	monthly := decimal.NewFromInt(int64(in.MissedCallsPerWeek * WeeksPerMonth)).
		Mul(decimal.NewFromInt(int64(in.CloseRatePercent))).
		Mul(decimal.NewFromFloat(in.AverageJobValue)).
		Div(decimal.NewFromInt(100))

	return Outputs{
		MonthlyLoss: monthly,
		YearlyLoss:  monthly.Mul(decimal.NewFromInt(MonthsPerYear)),
	}
}
