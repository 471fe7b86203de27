package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Ticker renders the capability marquee. The item list is emitted twice so
// the CSS animation can loop at -50%.
func Ticker(items []string) g.Node {
	row := func(hidden bool) g.Node {
		return Div(
			Class("flex gap-16 pr-16"),
			g.If(hidden, g.Attr("aria-hidden", "true")),
			g.Group(g.Map(items, func(item string) g.Node {
				return Div(
					Class("ticker-item flex items-center gap-2 text-slate-500 font-medium tracking-widest text-xs uppercase opacity-70"),
					Icon("lucide:sparkles", "w-3 h-3 text-orange-500/40", ""),
					g.Text(item),
				)
			})),
		)
	}

	return Div(
		ID("ticker"),
		Class("w-full bg-slate-950 border-y border-white/5 py-6 overflow-hidden relative z-20"),
		Div(Class("absolute inset-y-0 left-0 w-32 bg-gradient-to-r from-slate-950 to-transparent z-10 pointer-events-none")),
		Div(Class("absolute inset-y-0 right-0 w-32 bg-gradient-to-l from-slate-950 to-transparent z-10 pointer-events-none")),
		Div(
			Class("flex select-none"),
			Div(
				Class("ticker-track flex whitespace-nowrap flex-nowrap"),
				row(false),
				row(true),
			),
		),
	)
}
