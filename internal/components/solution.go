package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/northflowteam-pixel/northflow-landing-page/internal/content"
)

func Solution(s content.Solution) g.Node {
	return Section(
		ID("solution"),
		Class("py-24 bg-[#050b18] relative overflow-hidden"),
		Div(Class("absolute top-1/2 left-0 -translate-y-1/2 w-[500px] h-[500px] bg-orange-600/5 blur-[120px] rounded-full pointer-events-none")),

		Div(
			Class("max-w-7xl mx-auto px-6 relative z-10"),
			Div(
				Class("grid lg:grid-cols-2 gap-16 items-center"),

				Div(
					reveal(0),
					Div(
						Class("inline-block px-3 py-1 mb-6 rounded-full bg-orange-500/10 border border-orange-500/30 text-orange-400 text-sm font-semibold tracking-wide"),
						g.Text(s.Eyebrow),
					),
					sectionTitle(s.Title, s.TitleAccent, "text-white"),
					P(Class("text-lg text-slate-400 mb-8 leading-relaxed"), g.Text(s.Body)),
					Div(
						Class("space-y-6"),
						g.Group(g.Map(s.Points, func(c content.Card) g.Node {
							return Div(
								Class("flex gap-4"),
								Div(
									Class("mt-1 w-6 h-6 rounded-full bg-orange-500/20 flex items-center justify-center shrink-0"),
									Icon("lucide:check-circle-2", "w-4 h-4 text-orange-500", ""),
								),
								Div(
									H4(Class("text-white font-bold text-lg"), g.Text(c.Title)),
									P(Class("text-slate-500 text-sm mt-1"), g.Text(c.Body)),
								),
							)
						})),
					),
				),

				Div(
					reveal(200),
					Class("relative"),
					Div(
						Class("relative bg-slate-900 border border-white/10 rounded-2xl p-8 shadow-2xl"),
						Div(Class("dot-texture absolute inset-0 opacity-10")),
						Div(
							Class("flow relative z-10 space-y-8"),
							g.Group(flowSteps(s.Flow)),
						),
					),
				),
			),
		),
	)
}

func flowSteps(steps []content.FlowStep) []g.Node {
	nodes := make([]g.Node, 0, len(steps)*2)
	for i, step := range steps {
		if i > 0 {
			nodes = append(nodes, Div(
				Class("flex justify-center -my-2"),
				Div(Class("h-8 w-0.5 bg-orange-500/50")),
			))
		}
		nodes = append(nodes, flowStep(step))
	}
	return nodes
}

func flowStep(step content.FlowStep) g.Node {
	if step.Kind == "action" {
		return Div(
			Class("flow-step bg-orange-500/10 border border-orange-500/30 rounded-xl p-4"),
			g.Attr("data-kind", step.Kind),
			Div(
				Class("flex items-center gap-3 mb-2"),
				Div(Class("w-2 h-2 rounded-full bg-orange-500 animate-pulse")),
				P(Class("text-orange-400 text-xs font-bold uppercase"), g.Text(step.Label)),
			),
			P(Class("text-white text-sm"), g.Text(step.Text)),
		)
	}

	icon, box := "lucide:phone", "bg-slate-800 border-white/5"
	iconClass := "w-5 h-5 text-red-400"
	if step.Kind == "outcome" {
		icon, box = "lucide:calendar", "bg-green-500/10 border-green-500/20"
		iconClass = "w-5 h-5 text-green-400"
	}

	return Div(
		Class("flow-step flex items-center justify-between"),
		g.Attr("data-kind", step.Kind),
		Div(
			Class("flex items-center gap-4"),
			Div(Class("w-10 h-10 rounded-lg flex items-center justify-center border "+box), Icon(icon, iconClass, "")),
			Div(
				P(Class("text-slate-400 text-xs uppercase font-bold"), g.Text(step.Label)),
				P(Class("text-white font-medium"), g.Text(step.Text)),
			),
		),
		g.If(step.Time != "", Span(Class("text-xs text-slate-500"), g.Text(step.Time))),
	)
}
