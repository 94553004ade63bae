package views

import (
	"time"

	"github.com/micmidia/landing/chart"
)

// SiteConfig holds the site-wide settings templates read.
type SiteConfig struct {
	Name        string // SITE_NAME  (default "MicMidia")
	URL         string // SITE_URL   (default "http://localhost:3000")
	Description string // SITE_DESCRIPTION
	Lang        string // BCP 47 tag of the copy, e.g. "pt-PT"
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head>.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website"
	JSONLD      string
	Lang        string
	AssetBase   string // prefix for stylesheet, favicon and scripts: "" or "/"
	HTMXSrc     string // htmx script URL; empty omits the script
}

// Page is everything the landing page render needs.
type Page struct {
	Site    SiteConfig
	Now     time.Time      // copyright year source; zero means time.Now()
	Chart   chart.Renderer // nil renders the hero without a chart
	Contact ContactForm
	HTMXSrc string // loaded only when the contact form is live

	CanonicalURL string // canonical + og:url
	JSONLD       string // structured data for the <head>
	// AssetBase prefixes stylesheet, favicon and thumbnail paths. Served
	// pages use "/" because the page can render under /contact/; the
	// static export leaves it empty so the build works from any directory.
	AssetBase string
}

// ContactForm is the state of the contact form for one render.
// An empty Action renders the form as a non-functional mock.
type ContactForm struct {
	Action    string
	CSRFToken string
	Values    ContactValues
	Errors    map[string]string // field name -> message
	Success   string
	Failure   string
}

// Live reports whether the form submits anywhere.
func (f ContactForm) Live() bool {
	return f.Action != ""
}

// ContactValues echoes submitted input back into the form.
type ContactValues struct {
	Name    string
	Email   string
	Message string
}

// Section ids double as in-page navigation anchors.
const (
	SectionFeatures  = "features"
	SectionPortfolio = "portfolio"
	SectionPricing   = "pricing"
	SectionContact   = "contact"
)

// NavLink is one entry of the header navigation.
type NavLink struct {
	Label   string
	Section string
}

// Href returns the in-page anchor for the link.
func (l NavLink) Href() string {
	return "#" + l.Section
}

// NavLinks returns the header navigation in display order.
func NavLinks() []NavLink {
	return []NavLink{
		{Label: "Serviços", Section: SectionFeatures},
		{Label: "Portfólio", Section: SectionPortfolio},
		{Label: "Preços", Section: SectionPricing},
		{Label: "Contacto", Section: SectionContact},
	}
}
