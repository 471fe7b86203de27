package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/northflowteam-pixel/northflow-landing-page/internal/content"
)

func Problem(p content.Problem) g.Node {
	cards := make([]g.Node, 0, len(p.Cards))
	for i, c := range p.Cards {
		cards = append(cards, Div(
			reveal((i+1)*100),
			Class("glass-card p-8 rounded-2xl group hover:border-red-500/40 hover:shadow-[0_0_40px_rgba(220,38,38,0.2)] transition-all duration-300"),
			IconBadge(c.Icon, "red"),
			H3(Class("text-xl font-bold text-white mb-3 group-hover:text-red-400 transition-all"), g.Text(c.Title)),
			P(Class("text-slate-400 leading-relaxed"), g.Text(c.Body)),
		))
	}

	return Section(
		ID("problem"),
		Class("py-24 bg-slate-950 relative"),
		Div(
			Class("max-w-7xl mx-auto px-6"),
			Div(
				reveal(0),
				Class("text-center mb-16"),
				sectionTitle(p.Title, p.TitleAccent, "text-orange-500"),
			),
			Div(Class("grid md:grid-cols-3 gap-8"), g.Group(cards)),
		),
	)
}
