package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/northflowteam-pixel/northflow-landing-page/internal/content"
	"github.com/northflowteam-pixel/northflow-landing-page/internal/decay"
)

// DecayChart renders the response-time series as a CSS bar chart.
func DecayChart(d content.Decay) g.Node {
	bars := decay.Bars(d.Points)
	if len(bars) == 0 {
		return nil
	}

	first, last := d.Points[0], d.Points[len(d.Points)-1]

	return Section(
		ID("decay"),
		Class("py-24 bg-[#050b18] border-t border-white/5"),
		Div(
			Class("max-w-5xl mx-auto px-6"),
			Div(
				reveal(0),
				Class("text-center mb-12"),
				H2(Class("text-3xl md:text-4xl font-bold text-white mb-4"), g.Text(d.Title)),
				P(Class("text-slate-400"), g.Text(d.Subtitle)),
			),
			Div(
				reveal(100),
				Class("decay-chart flex items-end justify-between gap-3 md:gap-6 h-72 bg-slate-900/50 border border-white/10 rounded-3xl p-6 md:p-10"),
				g.Attr("role", "img"),
				g.Attr("aria-label", fmt.Sprintf("Conversion lift falls from %s at %s to %s at %s", liftLabel(first.Lift), first.Label, liftLabel(last.Lift), last.Label)),
				g.Group(g.Map(bars, decayBar)),
			),
			P(
				Class("mt-6 text-center text-sm text-slate-500"),
				g.Textf("Wait %s instead of %s and %.0f%% of the lift is gone.", last.Label, first.Label, decay.DropOff(d.Points)),
			),
		),
	)
}

func decayBar(b decay.Bar) g.Node {
	fill := "bg-slate-700"
	if b.Highlight {
		fill = "bg-gradient-to-t from-orange-600 to-orange-400 orange-glow"
	}

	return Div(
		Class("decay-bar flex-1 h-full flex flex-col items-center justify-end gap-2"),
		g.Attr("data-height", fmt.Sprint(b.HeightPercent)),
		Span(Class("text-xs md:text-sm font-bold text-white"), g.Text(liftLabel(b.Lift))),
		Div(
			Class("w-full rounded-t-lg "+fill),
			Style(fmt.Sprintf("height: %d%%", b.HeightPercent)),
		),
		Span(Class("text-[10px] md:text-xs text-slate-400 uppercase tracking-wide whitespace-nowrap"), g.Text(b.Label)),
	)
}

func liftLabel(lift float64) string {
	return fmt.Sprintf("+%.0f%%", lift)
}
