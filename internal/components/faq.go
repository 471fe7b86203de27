package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/northflowteam-pixel/northflow-landing-page/internal/analytics"
	"github.com/northflowteam-pixel/northflow-landing-page/internal/content"
)

func FAQ(f content.FAQ) g.Node {
	items := make([]g.Node, 0, len(f.Items))
	for i, item := range f.Items {
		items = append(items, Details(
			reveal(i*100),
			track(analytics.EventFAQOpen, "question", strconv.Itoa(i+1)),
			Class("faq-item group glass-card rounded-2xl p-6 open:border-orange-500/40"),
			Summary(
				Class("flex cursor-pointer list-none items-center justify-between gap-4 text-lg font-semibold text-white"),
				g.Text(item.Question),
				Icon("lucide:chevron-down", "w-5 h-5 text-orange-400 transition-transform group-open:rotate-180", ""),
			),
			// AnswerHTML is rendered from trusted content at load time.
			Div(
				Class("faq-answer mt-4 text-slate-400 leading-relaxed"),
				g.Raw(item.AnswerHTML),
			),
		))
	}

	return Section(
		ID("faq"),
		Class("py-24 bg-[#050b18] border-t border-white/5"),
		Div(
			Class("max-w-3xl mx-auto px-6"),
			H2(reveal(0), Class("text-3xl md:text-4xl font-bold text-white mb-12 text-center"), g.Text(f.Title)),
			Div(Class("space-y-4"), g.Group(items)),
		),
	)
}
