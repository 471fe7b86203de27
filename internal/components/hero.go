package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/northflowteam-pixel/northflow-landing-page/internal/analytics"
	"github.com/northflowteam-pixel/northflow-landing-page/internal/content"
)

func Hero(h content.Hero) g.Node {
	return Section(
		ID("hero"),
		Class("relative min-h-screen flex items-center justify-center pt-20 overflow-hidden bg-slate-950"),

		Div(
			Class("absolute inset-0"),
			Div(Class("celestial-rain absolute inset-0 overflow-hidden pointer-events-none z-0"), g.Attr("data-celestial-rain", "")),
			Div(Class("absolute top-[-20%] left-1/2 -translate-x-1/2 w-[70%] h-[600px] bg-blue-900/20 blur-[120px] rounded-full pointer-events-none")),
			Div(Class("absolute top-[20%] right-[-10%] w-[400px] h-[400px] bg-orange-600/10 blur-[100px] rounded-full pointer-events-none")),
			Div(Class("absolute bottom-[-10%] left-[-10%] w-[500px] h-[500px] bg-purple-900/10 blur-[100px] rounded-full pointer-events-none")),
			Div(Class("grid-texture absolute inset-0 opacity-[0.03] pointer-events-none")),
		),

		Div(
			Class("relative max-w-5xl mx-auto px-6 text-center z-10 flex flex-col items-center"),

			Div(
				reveal(0),
				Class("inline-flex items-center gap-2 px-4 py-1.5 rounded-full border border-orange-500/50 bg-orange-500/10 mb-8 orange-glow"),
				Span(
					Class("relative flex h-2 w-2"),
					Span(Class("animate-ping absolute inline-flex h-full w-full rounded-full bg-orange-400 opacity-75")),
					Span(Class("relative inline-flex rounded-full h-2 w-2 bg-orange-500")),
				),
				Span(Class("text-xs font-bold text-orange-400 uppercase tracking-widest"), g.Text(h.Badge)),
			),

			H1(
				reveal(100),
				Class("text-5xl md:text-6xl lg:text-7xl font-extrabold text-white leading-[1.05] tracking-tight mb-6 drop-shadow-2xl"),
				g.Text(h.Headline),
				Br(),
				Span(
					Class("text-transparent bg-clip-text bg-gradient-to-r from-orange-400 via-orange-300 to-orange-500"),
					g.Text(h.HeadlineAccent),
				),
			),

			// SubheadlineHTML is rendered from trusted content at load time.
			P(
				reveal(200),
				Class("hero-sub text-lg md:text-xl text-slate-300 mb-10 max-w-3xl mx-auto leading-relaxed font-light"),
				g.Raw(h.SubheadlineHTML),
			),

			Div(
				reveal(300),
				Class("w-full"),
				Div(
					Class("flex flex-col sm:flex-row items-center justify-center gap-6 w-full"),
					A(
						Href(BookingHref(SourceHero)),
						externalLink(),
						Class("w-full sm:w-auto bg-white text-slate-950 px-8 py-4 rounded-lg font-bold text-lg hover:bg-orange-50 transition-all hover:scale-105 shadow-[0_0_40px_rgba(255,255,255,0.5)] flex items-center justify-center gap-2"),
						g.Text(h.PrimaryCTA),
						Icon("lucide:arrow-right", "w-5 h-5", ""),
					),
					A(
						Href("#calculator"),
						track(analytics.EventCTAClick, "target", "calculator", "source", "hero"),
						Class("w-full sm:w-auto px-8 py-4 rounded-lg font-bold text-lg text-white border border-white/20 hover:bg-white/5 transition-all flex items-center justify-center gap-2 group backdrop-blur-sm"),
						g.Text(h.SecondaryCTA),
						Icon("lucide:arrow-right", "w-4 h-4 text-slate-400 group-hover:text-white", ""),
					),
				),
				P(
					Class("mt-6 text-sm text-slate-500 flex items-center justify-center gap-2"),
					Icon("lucide:trending-up", "w-4 h-4 text-orange-500", ""),
					g.Text(h.Footnote),
				),
			),
		),
	)
}
