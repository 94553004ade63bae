package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/micmidia/landing/content"
)

func pricingSection() g.Node {
	return Section(
		ID(SectionPricing),
		Class("bg-gradient-to-b from-white to-slate-50 py-16"),
		container(
			H3(Class("text-3xl font-extrabold"), g.Text("Planos pensados para crescer")),
			P(Class("mt-2 text-slate-600"), g.Text("Escolha o plano que encaixa no seu momento — todos com deploys via GitHub e suporte técnico.")),
			Div(
				Class("mt-8 grid grid-cols-1 md:grid-cols-3 gap-6"),
				g.Map(content.Tiers(), tierCard),
			),
		),
	)
}

func tierCard(t content.Tier) g.Node {
	class := "p-6 text-center pricing-tier"
	if t.Highlighted {
		class += " ring-2 ring-black"
	}
	return card(class,
		H4(Class("text-xl font-bold"), g.Text(t.Name)),
		P(Class("mt-2 text-slate-500"), g.Text(t.Tagline)),
		P(Class("price mt-4 text-3xl font-extrabold"), g.Text(t.Price)),
		Ul(
			Class("mt-4 text-left text-sm space-y-2"),
			g.Map(t.Features, func(f string) g.Node { return Li(g.Text(f)) }),
		),
		Div(
			Class("mt-6"),
			A(Href("#"+SectionContact), Class("btn"), g.Text(t.Action)),
		),
	)
}
