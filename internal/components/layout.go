package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const convaiWidgetSrc = "https://unpkg.com/@elevenlabs/convai-widget-embed"

type PageConfig struct {
	Title         string
	Description   string
	CanonicalURL  string
	OGImage       string
	ConvAIAgentID string
}

func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = "Northflow | Instant Lead Response for Canadian Service Businesses"
	}

	if config.Description == "" {
		config.Description = "Every missed call is a job for your competitor. Northflow answers every lead in under 60 seconds."
	}

	if config.OGImage == "" {
		config.OGImage = "/static/images/og-image.svg"
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Class("no-js"),
			Head(
				Meta(Charset("utf-8")),
				Script(g.Raw(`document.documentElement.classList.remove("no-js")`)),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),
				Meta(g.Attr("property", "og:image"), Content(config.OGImage)),
				g.If(config.CanonicalURL != "", Link(Rel("canonical"), Href(config.CanonicalURL))),

				Link(Rel("icon"), Href("/static/images/favicon.svg"), Type("image/svg+xml")),

				Script(Src("https://cdn.tailwindcss.com")),
				Link(Rel("stylesheet"), Href("/static/styles.css")),

				Script(Src("https://code.iconify.design/1/1.0.7/iconify.min.js")),
			),
			Body(
				Class("bg-slate-950 min-h-screen text-slate-50 antialiased selection:bg-orange-500/30 selection:text-white"),
				Main(g.Group(content)),

				g.If(config.ConvAIAgentID != "", g.El("elevenlabs-convai", g.Attr("agent-id", config.ConvAIAgentID))),
				g.If(config.ConvAIAgentID != "", Script(Src(convaiWidgetSrc), Async(), Type("text/javascript"))),

				Script(Type("module"), Src("/static/js/analytics.js")),
				Script(Type("module"), Src("/static/js/reveal.js")),
				Script(Type("module"), Src("/static/js/topbar-scroll.js")),
				Script(Type("module"), Src("/static/js/mobile-menu.js")),
				Script(Type("module"), Src("/static/js/calculator.js")),
			),
		),
	})
}
