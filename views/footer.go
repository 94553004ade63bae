package views

import (
	"fmt"
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Copyright returns the footer copyright line for the year of now.
func Copyright(name string, now time.Time) string {
	return fmt.Sprintf("© %d %s. Todos os direitos reservados.", now.Year(), name)
}

func siteFooter(cfg SiteConfig, now time.Time) g.Node {
	return Footer(
		Class("border-t border-slate-200 py-8"),
		Div(
			Class("max-w-7xl mx-auto px-6 flex flex-col md:flex-row items-center justify-between gap-4"),
			Div(
				P(Class("font-bold"), g.Text(cfg.Name)),
				P(Class("copyright text-sm text-slate-500"), g.Text(Copyright(cfg.Name, now))),
			),
			Div(
				Class("flex gap-4"),
				A(Class("text-sm hover:underline"), g.Text("Política de Privacidade")),
				A(Class("text-sm hover:underline"), g.Text("Termos")),
			),
		),
	)
}
