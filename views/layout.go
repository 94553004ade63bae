package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// htmxConfig lets htmx swap the contact form on validation (422) and rate
// limit (429) responses, which it otherwise treats as errors.
const htmxConfig = `{"responseHandling":[{"code":"204","swap":false},{"code":"[23]..","swap":true},{"code":"42[29]","swap":true},{"code":"[45]..","swap":false,"error":true}]}`

// Document wraps body in the shared HTML shell.
func Document(meta PageMeta, body ...g.Node) g.Node {
	lang := meta.Lang
	if lang == "" {
		lang = "pt-PT"
	}
	ogType := meta.OGType
	if ogType == "" {
		ogType = "website"
	}
	return Doctype(
		HTML(
			Lang(lang),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				TitleEl(g.Text(meta.Title)),
				g.If(meta.Description != "", Meta(Name("description"), Content(meta.Description))),
				g.If(meta.URL != "", Link(Rel("canonical"), Href(meta.URL))),
				Meta(g.Attr("property", "og:type"), Content(ogType)),
				Meta(g.Attr("property", "og:title"), Content(meta.Title)),
				g.If(meta.Description != "", Meta(g.Attr("property", "og:description"), Content(meta.Description))),
				g.If(meta.URL != "", Meta(g.Attr("property", "og:url"), Content(meta.URL))),
				Link(Rel("icon"), Type("image/svg+xml"), Href(meta.AssetBase+"favicon.svg")),
				Link(Rel("stylesheet"), Href(meta.AssetBase+"public/site.css")),
				g.If(meta.JSONLD != "", Script(Type("application/ld+json"), g.Raw(meta.JSONLD))),
				g.If(meta.HTMXSrc != "", g.Group([]g.Node{
					Meta(Name("htmx-config"), Content(htmxConfig)),
					Script(Src(meta.HTMXSrc), Defer()),
				})),
			),
			Body(
				Class("min-h-screen bg-gradient-to-b from-white via-slate-50 to-white text-slate-900"),
				g.Group(body),
			),
		),
	)
}

// card mirrors the bordered Card/CardContent pair used across every grid.
func card(class string, children ...g.Node) g.Node {
	return Div(
		Class("card "+class),
		Div(Class("card-content"), g.Group(children)),
	)
}

// container is the centred max-width wrapper every section uses.
func container(children ...g.Node) g.Node {
	return Div(Class("max-w-7xl mx-auto px-6"), g.Group(children))
}
