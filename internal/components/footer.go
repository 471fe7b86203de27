package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/northflowteam-pixel/northflow-landing-page/internal/analytics"
	"github.com/northflowteam-pixel/northflow-landing-page/internal/content"
)

func PageFooter(brand content.Brand, f content.Footer, year int) g.Node {
	return Footer(
		ID("footer"),
		Class("bg-[#020617] py-12 border-t border-white/5"),
		Div(
			Class("max-w-7xl mx-auto px-6 flex flex-col md:flex-row justify-between items-center gap-6"),

			Logo(brand.Name),

			Div(
				Class("flex flex-col md:flex-row items-center gap-6 md:gap-12"),
				g.Group(g.Map(f.Links, func(l content.Link) g.Node {
					return A(Href(l.Href), Class("text-slate-400 hover:text-white text-sm transition-colors"), g.Text(l.Label))
				})),
			),

			Div(
				Class("flex flex-col md:flex-row items-center gap-4"),
				Div(
					Class("flex items-center gap-2"),
					g.Group(g.Map(f.Social, func(s content.Social) g.Node {
						return A(
							Href(s.Href),
							externalLink(),
							track(analytics.EventSocialClick, "network", s.Label),
							Class("p-2 bg-slate-900 rounded-full text-slate-400 hover:text-white hover:bg-orange-500 transition-all border border-white/5"),
							g.Attr("aria-label", s.Label),
							Icon(s.Icon, "w-4 h-4", ""),
						)
					})),
				),
				Div(
					Class("text-slate-500 text-sm"),
					Span(g.Textf("© %d %s. %s", year, brand.Name, brand.MadeIn)),
				),
			),
		),
	)
}
