package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/micmidia/landing/content"
)

func featuresSection() g.Node {
	return Section(
		ID(SectionFeatures),
		Class("bg-slate-50 py-16"),
		container(
			H3(Class("text-3xl font-extrabold"), g.Text("O que fazemos de melhor")),
			P(Class("mt-2 text-slate-600"), g.Text("Soluções completas — desde design até deployment, com foco em resultados mensuráveis.")),
			Div(
				Class("mt-8 grid grid-cols-1 md:grid-cols-4 gap-6"),
				g.Map(content.Features(), featureCard),
			),
		),
	)
}

func featureCard(f content.Feature) g.Node {
	return card("p-6 feature-card",
		Div(Class("text-3xl"), Aria("hidden", "true"), g.Text(f.Icon)),
		H4(Class("mt-3 font-semibold"), g.Text(f.Title)),
		P(Class("mt-2 text-slate-500 text-sm"), g.Text(f.Description)),
	)
}
