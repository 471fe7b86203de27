package components

import (
	"time"

	g "maragu.dev/gomponents"

	"github.com/northflowteam-pixel/northflow-landing-page/internal/content"
	"github.com/northflowteam-pixel/northflow-landing-page/internal/estimator"
)

// Page is everything the landing page needs for one render.
type Page struct {
	Site          *content.Site
	Session       *estimator.Session
	Formatter     *estimator.Formatter
	ConvAIAgentID string
	CanonicalURL  string
	Now           time.Time
}

// Landing composes the full landing page in section order.
func Landing(p Page) g.Node {
	site := p.Site

	return Layout(
		PageConfig{
			CanonicalURL:  p.CanonicalURL,
			ConvAIAgentID: p.ConvAIAgentID,
		},
		Navbar(site.Brand, site.Nav, site.Hero.PrimaryCTA),
		Hero(site.Hero),
		Ticker(site.Ticker),
		Problem(site.Problem),
		Solution(site.Solution),
		Proof(site.Proof),
		DecayChart(site.Decay),
		Calculator(site.Calculator, p.Session, p.Formatter),
		FAQ(site.FAQ),
		CTA(site.CTA),
		PageFooter(site.Brand, site.Footer, p.Now.Year()),
	)
}
