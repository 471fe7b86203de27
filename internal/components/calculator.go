package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/northflowteam-pixel/northflow-landing-page/internal/content"
	"github.com/northflowteam-pixel/northflow-landing-page/internal/estimator"
)

var fieldIcons = map[string]string{
	estimator.JobValueField.Key:    "lucide:dollar-sign",
	estimator.MissedCallsField.Key: "lucide:phone",
	estimator.CloseRateField.Key:   "lucide:trending-up",
}

// Calculator renders the revenue-loss estimator with the session's current
// figures. calculator.js takes over in the browser; without JS the sliders
// submit as a GET form and the server recomputes.
func Calculator(c content.Calculator, s *estimator.Session, f *estimator.Formatter) g.Node {
	out := s.Outputs()

	return Section(
		ID("calculator"),
		Class("py-24 bg-slate-950 relative border-t border-white/5"),
		Div(
			Class("max-w-7xl mx-auto px-6"),
			Div(
				reveal(0),
				Class("text-center mb-12"),
				Div(
					Class("inline-flex items-center gap-2 px-4 py-1.5 rounded-full border border-orange-500/50 bg-orange-500/10 mb-4"),
					Icon("lucide:calculator", "w-4 h-4 text-orange-500", ""),
					Span(Class("text-xs font-bold text-orange-400 uppercase tracking-widest"), g.Text(c.Badge)),
				),
				H2(
					Class("text-3xl md:text-4xl font-bold text-white mb-4"),
					g.Text(c.Title),
					Br(),
					Span(Class("text-orange-500"), g.Text(c.TitleAccent)),
				),
				P(Class("text-slate-400"), g.Text(c.Subtitle)),
			),

			Form(
				Method("get"),
				Action("/#calculator"),
				g.Attr("data-calculator", ""),
				g.Attr("data-locale", f.Locale()),
				g.Attr("data-symbol", f.Symbol()),
				g.Attr("data-weeks-per-month", strconv.Itoa(estimator.WeeksPerMonth)),
				g.Attr("data-months-per-year", strconv.Itoa(estimator.MonthsPerYear)),
				Class("grid lg:grid-cols-2 gap-12 bg-slate-900/50 rounded-3xl p-8 md:p-12 border border-white/10 backdrop-blur-sm"),

				Div(
					Class("space-y-10"),
					g.Group(g.Map(estimator.Fields(), func(field estimator.Field) g.Node {
						return slider(field, s.Value(field.Key), f)
					})),
					g.El("noscript",
						Button(
							Type("submit"),
							Class("w-full bg-orange-500 hover:bg-orange-600 text-white py-3 rounded-lg font-bold"),
							g.Text("Recalculate"),
						),
					),
				),

				Div(
					Class("flex flex-col justify-center gap-6"),
					Div(
						Class("bg-slate-950 border border-red-500/20 rounded-2xl p-8 relative overflow-hidden group hover:border-red-500/40 transition-all"),
						Div(Class("absolute inset-0 bg-red-500/5 blur-xl group-hover:bg-red-500/10 transition-all")),
						Div(
							Class("relative z-10 text-center"),
							P(Class("text-slate-400 font-medium mb-2 uppercase tracking-wide text-sm"), g.Text(c.MonthlyLabel)),
							P(
								Class("text-4xl md:text-5xl font-bold text-white mb-1"),
								g.Attr("data-output", "monthly"),
								g.Attr("aria-live", "polite"),
								g.Text(f.Format(out.MonthlyLoss)),
							),
							P(Class("text-red-400 text-sm font-medium"), g.Text(c.MonthlyCaption)),
						),
					),
					Div(
						Class("bg-gradient-to-br from-red-900/20 to-slate-900 border border-red-500/40 rounded-2xl p-8 relative overflow-hidden shadow-[0_0_40px_rgba(220,38,38,0.1)]"),
						Div(
							Class("relative z-10 text-center"),
							Div(
								Class("flex items-center justify-center gap-2 mb-2"),
								Icon("lucide:alert-triangle", "w-5 h-5 text-red-500 animate-pulse", ""),
								P(Class("text-red-300 font-bold uppercase tracking-wide text-sm"), g.Text(c.YearlyLabel)),
							),
							P(
								Class("text-5xl md:text-6xl font-extrabold text-white mb-2 text-glow-red tracking-tight"),
								g.Attr("data-output", "yearly"),
								g.Attr("aria-live", "polite"),
								g.Text(f.Format(out.YearlyLoss)),
							),
							P(Class("text-slate-400 text-sm"), g.Text(c.YearlyCaption)),
						),
					),
				),
			),
		),
	)
}

func slider(field estimator.Field, value float64, f *estimator.Formatter) g.Node {
	id := "calc-" + field.Key

	return Div(
		Class("calc-field"),
		Div(
			Class("flex justify-between text-white mb-4"),
			Label(
				g.Attr("for", id),
				Class("font-semibold flex items-center gap-2"),
				Icon(fieldIcons[field.Key], "w-4 h-4 text-orange-500", ""),
				g.Text(field.Label),
			),
			Span(
				Class("font-bold text-orange-400"),
				g.Attr("data-value-for", field.Key),
				g.Text(f.Value(field, value)),
			),
		),
		Input(
			ID(id),
			Type("range"),
			Name(field.Key),
			g.Attr("min", number(field.Min)),
			g.Attr("max", number(field.Max)),
			g.Attr("step", number(field.Step)),
			Value(number(value)),
			g.Attr("data-field", field.Key),
			g.Attr("data-unit", field.Unit),
			Class("w-full h-2 bg-slate-800 rounded-lg appearance-none cursor-pointer accent-orange-500"),
		),
		Div(
			Class("flex justify-between text-xs text-slate-500 mt-2"),
			Span(g.Text(f.Value(field, field.Min))),
			Span(g.Text(maxLabel(field, f))),
		),
	)
}

// maxLabel marks the open-ended money bound with a "+".
func maxLabel(field estimator.Field, f *estimator.Formatter) string {
	label := f.Value(field, field.Max)
	if field.Unit == "$" {
		label += "+"
	}
	return label
}

func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
