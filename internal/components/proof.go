package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/northflowteam-pixel/northflow-landing-page/internal/content"
)

func Proof(p content.Proof) g.Node {
	stats := make([]g.Node, 0, len(p.Stats))
	for i, s := range p.Stats {
		stats = append(stats, Div(
			reveal(i*100),
			Class("stat bg-slate-900 border border-white/5 p-8 rounded-2xl"),
			Div(
				Class("flex items-start gap-4"),
				Div(Class("p-3 bg-"+s.Tone+"-500/10 rounded-lg"), Icon(s.Icon, "w-8 h-8 text-"+s.Tone+"-400", "")),
				Div(
					H3(Class("text-4xl font-bold text-white mb-2"), g.Text(s.Value)),
					P(Class("text-slate-400"), g.Text(s.Label)),
				),
			),
		))
	}

	quotes := make([]g.Node, 0, len(p.Testimonials))
	for i, t := range p.Testimonials {
		quotes = append(quotes, g.El("figure",
			reveal(200+i*100),
			Class("testimonial glass-card p-8 rounded-xl relative"),
			Div(Class("mb-4 flex text-orange-400"), g.Attr("aria-label", "5 out of 5 stars"), g.Text("★★★★★")),
			g.El("blockquote", Class("text-slate-300 italic mb-6 text-sm leading-relaxed"), g.Textf(`"%s"`, t.Quote)),
			g.El("figcaption",
				Class("flex items-center gap-3"),
				Div(
					Class("w-10 h-10 rounded-full bg-slate-700 flex items-center justify-center text-white font-bold text-sm"),
					g.Attr("aria-hidden", "true"),
					g.Text(t.Initial()),
				),
				Div(
					P(Class("text-white font-bold text-sm"), g.Text(t.Author)),
					P(Class("text-xs text-slate-500"), g.Textf("%s • %s", t.Role, t.Location)),
				),
			),
		))
	}

	return Section(
		ID("results"),
		Class("py-24 bg-[#050b18]"),
		Div(
			Class("max-w-7xl mx-auto px-6"),
			Div(
				reveal(0),
				Class("text-center mb-16"),
				H2(Class("text-3xl font-bold text-white mb-2"), g.Text(p.Title)),
				P(Class("text-slate-400"), g.Text(p.Subtitle)),
			),
			Div(Class("grid md:grid-cols-2 gap-8 mb-16"), g.Group(stats)),
			Div(Class("grid md:grid-cols-3 gap-6"), g.Group(quotes)),
		),
	)
}
