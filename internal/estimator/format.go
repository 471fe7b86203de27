package estimator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders currency amounts with zero fractional digits, grouped
// for the configured locale. The symbol is always written before the digits,
// so locales that place it after the amount (fr-CA, de-DE) render as
// "$3 000" rather than "3 000 $". calculator.js follows the same rule.
type Formatter struct {
	tag     language.Tag
	printer *message.Printer
	symbol  string
}

// NewFormatter builds a formatter for a BCP 47 locale (e.g. "en-CA") and a
// currency symbol.
func NewFormatter(locale, symbol string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid currency locale %q: %w", locale, err)
	}
	return &Formatter{
		tag:     tag,
		printer: message.NewPrinter(tag),
		symbol:  symbol,
	}, nil
}

// DefaultFormatter renders en-CA grouping with a plain $ symbol.
func DefaultFormatter() *Formatter {
	f, _ := NewFormatter("en-CA", "$")
	return f
}

// Locale returns the BCP 47 tag the formatter groups digits for.
func (f *Formatter) Locale() string { return f.tag.String() }

// Symbol returns the currency symbol.
func (f *Formatter) Symbol() string { return f.symbol }

// Format rounds half away from zero and renders e.g. "$3,000".
func (f *Formatter) Format(amount decimal.Decimal) string {
	whole := amount.Round(0).IntPart()
	sign := ""
	if whole < 0 {
		sign = "-"
		whole = -whole
	}
	return sign + f.symbol + f.printer.Sprintf("%d", whole)
}

// Value renders a field value with its unit: "$500", "5 calls", "30%".
func (f *Formatter) Value(field Field, v float64) string {
	switch field.Unit {
	case "$":
		return f.Format(decimal.NewFromFloat(v))
	case "%":
		return formatNumber(v) + "%"
	case "":
		return formatNumber(v)
	}

	unit := field.Unit
	if v == 1 {
		unit = strings.TrimSuffix(unit, "s")
	}
	return formatNumber(v) + " " + unit
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Report is the presentation view of a session.
type Report struct {
	Inputs               Inputs  `json:"inputs"`
	MonthlyLoss          float64 `json:"monthlyLoss"`
	YearlyLoss           float64 `json:"yearlyLoss"`
	MonthlyLossFormatted string  `json:"monthlyLossFormatted"`
	YearlyLossFormatted  string  `json:"yearlyLossFormatted"`
}

// Report formats the session's current state.
func (f *Formatter) Report(s *Session) Report {
	out := s.Outputs()
	return Report{
		Inputs:               s.Inputs(),
		MonthlyLoss:          out.MonthlyLoss.InexactFloat64(),
		YearlyLoss:           out.YearlyLoss.InexactFloat64(),
		MonthlyLossFormatted: f.Format(out.MonthlyLoss),
		YearlyLossFormatted:  f.Format(out.YearlyLoss),
	}
}
