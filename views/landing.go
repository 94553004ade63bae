package views

import (
	"context"
	"io"
	"time"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// LandingNode builds the whole landing page. Sections render in a fixed
// order: header, hero, features, portfolio, pricing, contact, footer.
func LandingNode(ctx context.Context, p Page) g.Node {
	now := p.Now
	if now.IsZero() {
		now = time.Now()
	}
	meta := PageMeta{
		Title:       p.Site.Name + " — Conteúdo. Design. Resultados.",
		Description: p.Site.Description,
		URL:         p.CanonicalURL,
		OGType:      "website",
		JSONLD:      p.JSONLD,
		Lang:        p.Site.Lang,
		AssetBase:   p.AssetBase,
	}
	if p.Contact.Live() {
		meta.HTMXSrc = p.HTMXSrc
	}
	return Document(meta,
		siteHeader(p.Site),
		Main(
			heroSection(ctx, p),
			featuresSection(),
			portfolioSection(meta.AssetBase),
			pricingSection(),
			contactSection(p.Contact),
			siteFooter(p.Site, now),
		),
	)
}

// LandingPage adapts LandingNode to a templ.Component so the chart
// collaborator sees the request context.
func LandingPage(p Page) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return LandingNode(ctx, p).Render(w)
	})
}
