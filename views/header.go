package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func siteHeader(cfg SiteConfig) g.Node {
	return Header(
		Class("site-header sticky top-0 z-50 backdrop-blur-md bg-white/60 border-b border-slate-200"),
		Div(
			Class("max-w-7xl mx-auto px-6 py-4 flex items-center justify-between"),
			brand(cfg),
			Nav(
				Class("hidden md:flex items-center gap-6 text-sm"),
				Aria("label", "Principal"),
				navAnchors("hover:text-slate-700"),
				A(Href("#"+SectionPortfolio), Class("btn ml-2"), g.Text("Ver Demo")),
			),
			Div(
				Class("md:hidden"),
				Details(
					Class("mobile-menu"),
					Summary(
						Class("p-2 rounded-md border"),
						Role("button"),
						Aria("label", "menu"),
						iconMenu(),
					),
					Nav(
						Class("mobile-menu-panel flex flex-col gap-3 text-sm"),
						navAnchors(""),
					),
				),
			),
		),
	)
}

func brand(cfg SiteConfig) g.Node {
	return Div(
		Class("flex items-center gap-2"),
		Div(
			Class("w-10 h-10 rounded-lg bg-black text-white flex items-center justify-center font-bold"),
			g.Text("Mi"),
		),
		Div(
			H1(Class("text-lg font-extrabold leading-none"), g.Text(cfg.Name)),
			P(Class("text-xs text-slate-500 -mt-0.5"), g.Text("Conteúdo. Design. Resultados.")),
		),
	)
}

func navAnchors(class string) g.Node {
	return g.Map(NavLinks(), func(l NavLink) g.Node {
		return A(g.If(class != "", Class(class)), Href(l.Href()), g.Text(l.Label))
	})
}
