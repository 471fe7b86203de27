package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/northflowteam-pixel/northflow-landing-page/internal/content"
)

func Navbar(brand content.Brand, links []content.Link, ctaLabel string) g.Node {
	return Nav(
		ID("navbar"),
		g.Attr("data-at-top", "true"),
		Class("fixed w-full z-50 top-0 left-0 border-b border-white/5 bg-slate-950/80 backdrop-blur-md transition-shadow data-[at-top=false]:shadow-lg"),

		Div(
			Class("max-w-7xl mx-auto px-6 h-20 flex items-center justify-between"),

			A(Href("#"), Logo(brand.Name)),

			Div(
				Class("hidden md:flex items-center gap-8"),
				g.Group(g.Map(links, func(l content.Link) g.Node {
					return A(
						Href(l.Href),
						Class("text-slate-300 hover:text-white transition-colors text-sm font-medium"),
						g.Text(l.Label),
					)
				})),
				A(
					Href(BookingHref(SourceNavbar)),
					externalLink(),
					Class("bg-orange-500 hover:bg-orange-600 text-white px-5 py-2.5 rounded-lg font-semibold text-sm transition-all shadow-[0_0_20px_rgba(255,255,255,0.4)] hover:shadow-[0_0_35px_rgba(255,255,255,0.6)]"),
					g.Text(ctaLabel),
				),
			),

			Button(
				Type("button"),
				Class("md:hidden text-white"),
				g.Attr("data-mobile-menu-toggle", ""),
				g.Attr("aria-controls", "mobile-menu"),
				g.Attr("aria-expanded", "false"),
				g.Attr("aria-label", "Toggle menu"),
				Icon("lucide:menu", "w-6 h-6", ""),
			),
		),

		Div(
			ID("mobile-menu"),
			Class("hidden md:hidden absolute w-full bg-slate-950 border-b border-white/10 p-6 flex-col gap-4"),
			g.Group(g.Map(links, func(l content.Link) g.Node {
				return A(
					Href(l.Href),
					Class("text-slate-300 hover:text-orange-400"),
					g.Attr("data-mobile-menu-close", ""),
					g.Text(l.Label),
				)
			})),
			A(
				Href(BookingHref(SourceNavbarMobile)),
				externalLink(),
				Class("w-full bg-orange-500 text-white px-5 py-3 rounded-lg font-bold text-center block shadow-[0_0_20px_rgba(255,255,255,0.2)]"),
				g.Text(ctaLabel),
			),
		),
	)
}
