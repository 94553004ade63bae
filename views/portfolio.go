package views

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/micmidia/landing/content"
)

// ThumbnailPath is the page-relative path of a project's placeholder image.
func ThumbnailPath(n int) string {
	return fmt.Sprintf("portfolio/%d.png", n)
}

func portfolioSection(assetBase string) g.Node {
	return Section(
		ID(SectionPortfolio),
		Class("max-w-7xl mx-auto px-6 py-16"),
		H3(Class("text-3xl font-extrabold"), g.Text("Portfólio recente")),
		P(Class("mt-2 text-slate-600"), g.Text("Alguns projetos de destaque preparados para mostrar o que podemos construir para você.")),
		Div(
			Class("mt-8 grid grid-cols-1 sm:grid-cols-2 lg:grid-cols-3 gap-6"),
			g.Map(content.Projects(), func(p content.Project) g.Node {
				return projectCard(assetBase, p)
			}),
		),
	)
}

func projectCard(assetBase string, p content.Project) g.Node {
	label := fmt.Sprintf("Projeto %d", p.Number)
	return Div(
		Class("project-card hover-lift rounded-xl overflow-hidden shadow"),
		g.Attr("data-project", fmt.Sprint(p.Number)),
		Div(
			Class("h-44 bg-gradient-to-br from-slate-200 to-slate-100 flex items-center justify-center"),
			Img(
				Src(assetBase+ThumbnailPath(p.Number)),
				Alt(label),
				g.Attr("width", "640"),
				g.Attr("height", "352"),
				g.Attr("loading", "lazy"),
				g.Attr("decoding", "async"),
				Class("w-full h-full object-cover"),
			),
		),
		Div(
			Class("p-4"),
			H5(Class("font-semibold"), g.Text(p.Title)),
			P(Class("text-sm text-slate-500 mt-2"), g.Text(p.Description)),
		),
	)
}
