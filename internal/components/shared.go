package components

import (
	"net/url"
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const logoSVG = `<svg width="40" height="40" viewBox="0 0 40 40" fill="none" xmlns="http://www.w3.org/2000/svg" class="relative z-10" aria-hidden="true">` +
	`<defs>` +
	`<linearGradient id="n-gradient-1" x1="0" y1="0" x2="40" y2="40" gradientUnits="userSpaceOnUse"><stop offset="0%" stop-color="#f97316"/><stop offset="100%" stop-color="#c2410c"/></linearGradient>` +
	`<linearGradient id="n-gradient-2" x1="40" y1="0" x2="0" y2="40" gradientUnits="userSpaceOnUse"><stop offset="0%" stop-color="#fb923c"/><stop offset="100%" stop-color="#ea580c"/></linearGradient>` +
	`</defs>` +
	`<path d="M10 8L10 32L16 30L16 10L10 8Z" fill="url(#n-gradient-1)"/>` +
	`<path d="M16 10L16 16L24 30L24 32L16 10Z" fill="url(#n-gradient-2)" opacity="0.9"/>` +
	`<path d="M24 8L24 32L30 30L30 10L24 8Z" fill="url(#n-gradient-1)"/>` +
	`</svg>`

// Sections that link to the booking calendar.
const (
	SourceNavbar       = "navbar"
	SourceNavbarMobile = "navbar_mobile"
	SourceHero         = "hero"
	SourceCTA          = "cta"
)

// BookingSources lists every source BookingHref is called with.
var BookingSources = []string{SourceNavbar, SourceNavbarMobile, SourceHero, SourceCTA}

// BookingHref routes an outbound booking link through the click tracker.
func BookingHref(source string) string {
	return "/book?source=" + url.QueryEscape(source)
}

func Logo(name string) g.Node {
	return Div(
		Class("flex items-center gap-3"),
		Div(
			Class("relative w-10 h-10 flex items-center justify-center group"),
			g.Raw(logoSVG),
			Div(Class("absolute inset-0 bg-orange-500/20 blur-xl rounded-full opacity-50 group-hover:opacity-100 transition-opacity duration-500")),
		),
		Span(
			Class("text-xl font-bold tracking-tight text-white"),
			g.Text(name),
		),
	)
}

// Icon renders an iconify icon. name is "set:icon" (e.g. "lucide:phone").
func Icon(name, class, ariaLabel string) g.Node {
	classes := "iconify inline-block"
	if class != "" {
		classes += " " + class
	}

	if ariaLabel != "" {
		return Span(
			Class(classes),
			g.Attr("data-icon", name),
			g.Attr("role", "img"),
			g.Attr("aria-label", ariaLabel),
		)
	}

	return Span(
		Class(classes),
		g.Attr("data-icon", name),
		g.Attr("aria-hidden", "true"),
	)
}

func IconBadge(name, tone string) g.Node {
	return Div(
		Class("bg-slate-900 w-14 h-14 rounded-xl flex items-center justify-center mb-6 border border-white/10 group-hover:border-"+tone+"-500/50 transition-colors"),
		Icon(name, "w-7 h-7 text-"+tone+"-500 group-hover:text-"+tone+"-400", ""),
	)
}

// reveal marks an element for the scroll-in animation. delay is in ms.
func reveal(delay int) g.Node {
	return g.Group([]g.Node{
		g.Attr("data-reveal", ""),
		g.If(delay > 0, g.Attr("data-reveal-delay", strconv.Itoa(delay))),
	})
}

// track reports a click (or a toggle, for <details>) as an analytics event.
// params become data-track-<key> attributes.
func track(event string, params ...string) g.Node {
	nodes := []g.Node{g.Attr("data-track", event)}
	for i := 0; i+1 < len(params); i += 2 {
		nodes = append(nodes, g.Attr("data-track-"+strings.ReplaceAll(params[i], "_", "-"), params[i+1]))
	}
	return g.Group(nodes)
}

func externalLink() g.Node {
	return g.Group([]g.Node{
		g.Attr("target", "_blank"),
		Rel("noopener noreferrer"),
	})
}

func sectionTitle(title, accent, accentClass string) g.Node {
	return H2(
		Class("text-3xl md:text-5xl font-bold text-white mb-6 leading-tight"),
		g.Text(title),
		Br(),
		Span(Class(accentClass), g.Text(accent)),
	)
}
