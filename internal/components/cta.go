package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/northflowteam-pixel/northflow-landing-page/internal/content"
)

func CTA(c content.CTA) g.Node {
	return Section(
		ID("audit"),
		Class("py-24 relative overflow-hidden bg-slate-950"),
		Div(Class("absolute inset-0 bg-gradient-to-t from-orange-900/20 to-slate-950 pointer-events-none")),

		Div(
			Class("max-w-7xl mx-auto px-6 relative z-10"),
			Div(
				Class("grid lg:grid-cols-2 gap-16 items-center"),

				Div(
					reveal(0),
					sectionTitle(c.Title, c.TitleAccent, "text-orange-500"),
					P(Class("text-lg text-slate-300 mb-8 leading-relaxed"), g.Text(c.Body)),
					Div(
						Class("bg-slate-900/50 backdrop-blur-sm border border-white/10 p-6 rounded-2xl mb-8"),
						H4(Class("text-white font-bold mb-4 border-b border-white/10 pb-2"), g.Text(c.CoverTitle)),
						Ul(
							Class("space-y-3"),
							g.Group(g.Map(c.Cover, func(item string) g.Node {
								return Li(
									Class("flex items-start gap-3 text-sm text-slate-300"),
									Icon("lucide:check-circle-2", "w-5 h-5 text-orange-400 shrink-0", ""),
									g.Text(item),
								)
							})),
						),
					),
				),

				Div(
					reveal(200),
					Div(
						Class("bg-slate-900/80 backdrop-blur-md border border-white/10 p-8 rounded-3xl shadow-2xl relative group hover:-translate-y-1 transition-all duration-300"),
						Div(
							Class("flex items-center gap-4 mb-8 relative z-10"),
							Div(
								Class("w-14 h-14 bg-orange-500 rounded-2xl flex items-center justify-center shrink-0 shadow-lg shadow-orange-500/20"),
								Icon("lucide:video", "w-7 h-7 text-white", ""),
							),
							Div(
								H4(Class("text-white font-bold text-xl"), g.Text(c.CallTitle)),
								P(
									Class("text-slate-400 flex items-center gap-2 mt-1"),
									Icon("lucide:clock", "w-4 h-4", ""),
									g.Text(c.CallLength),
								),
							),
						),
						A(
							Href(BookingHref(SourceCTA)),
							externalLink(),
							Class("relative z-10 w-full mb-4 bg-white hover:bg-orange-50 text-slate-950 py-4 rounded-xl font-bold text-lg transition-all shadow-lg hover:shadow-orange-500/20 hover:scale-[1.02] flex items-center justify-center gap-2"),
							Icon("lucide:calendar", "w-5 h-5", ""),
							g.Text(c.Button),
						),
						Div(
							Class("flex items-center justify-center gap-2 text-xs text-slate-500"),
							Div(Class("w-2 h-2 rounded-full bg-green-500 animate-pulse")),
							g.Text(c.Live),
						),
					),
				),
			),
		),
	)
}
