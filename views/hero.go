package views

import (
	"bytes"
	"context"
	"log/slog"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/micmidia/landing/chart"
	"github.com/micmidia/landing/content"
)

// VisitsSeries converts the metric samples into the series the chart
// collaborator consumes.
func VisitsSeries() []chart.Point {
	samples := content.Metrics()
	points := make([]chart.Point, len(samples))
	for i, s := range samples {
		points[i] = chart.Point{Label: s.Month, Value: s.Value}
	}
	return points
}

func heroSection(ctx context.Context, p Page) g.Node {
	return Section(
		Class("hero max-w-7xl mx-auto px-6 py-16 grid grid-cols-1 md:grid-cols-2 gap-10 items-center"),
		Div(
			Class("animate-slide-in-left"),
			H2(
				Class("text-4xl md:text-5xl font-extrabold leading-tight"),
				g.Textf("%s — Transformamos sua presença digital", p.Site.Name),
			),
			P(
				Class("mt-4 text-lg text-slate-600"),
				g.Text("Design que encanta, conteúdo que converte e deploys automáticos via GitHub. Ideal para empresas que querem crescer com credibilidade."),
			),
			Div(
				Class("mt-6 flex gap-3"),
				A(Href("#"+SectionContact), Class("btn"), g.Text("Iniciar Projeto")),
				A(Href("#"+SectionPortfolio), Class("btn btn-ghost"), g.Text("Ver Portfólio")),
			),
			Div(
				Class("mt-8 grid grid-cols-2 gap-4"),
				g.Map(content.Stats(), func(s content.Stat) g.Node {
					return card("p-4 stat-card",
						P(Class("text-sm text-slate-500"), g.Text(s.Label)),
						P(Class("text-2xl font-bold"), g.Text(s.Value)),
					)
				}),
			),
		),
		Div(
			Class("order-first md:order-last animate-slide-in-right"),
			Div(
				Class("chart-panel w-full rounded-2xl overflow-hidden shadow-lg bg-gradient-to-br from-slate-50 to-white p-6"),
				Div(
					Class("flex items-center justify-between mb-4"),
					Div(
						P(Class("text-sm text-slate-500"), g.Text("Visitas mensais")),
						H3(Class("text-2xl font-bold"), g.Text("68.4k")),
					),
					Div(
						Class("w-28 h-28 bg-gradient-to-tr from-black to-slate-700 text-white rounded-xl flex items-center justify-center"),
						g.Text("Logo"),
					),
				),
				chartSlot(ctx, p.Chart),
			),
		),
	)
}

// chartSlot renders the visits chart through the collaborator. The chart is
// buffered first so a failing collaborator leaves no partial markup; in that
// case, or with no collaborator at all, the slot is omitted and the panel
// renders without it.
func chartSlot(ctx context.Context, r chart.Renderer) g.Node {
	if r == nil {
		return nil
	}
	var buf bytes.Buffer
	err := r.RenderArea(ctx, &buf, VisitsSeries(), chart.Options{
		GradientID: "grad",
		Title:      "Visitas mensais",
		Unit:       "visitas",
	})
	if err != nil {
		slog.WarnContext(ctx, "chart unavailable, rendering hero without it", "error", err)
		return nil
	}
	return Div(Class("chart h-48"), g.Raw(buf.String()))
}
