package views

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ErrorPage renders a minimal page for status codes the router produces
// itself. Assets resolve from the site root because the request path can be
// anything.
func ErrorPage(cfg SiteConfig, status int) templ.Component {
	title, body := "Algo correu mal", "Ocorreu um erro inesperado. Tente novamente dentro de instantes."
	switch status {
	case http.StatusNotFound:
		title, body = "Página não encontrada", "A página que procura não existe ou foi movida."
	case http.StatusTooManyRequests:
		title, body = "Demasiados pedidos", "Demasiadas mensagens. Tente novamente mais tarde."
	}
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return Document(PageMeta{
			Title:     title + " | " + cfg.Name,
			Lang:      cfg.Lang,
			AssetBase: "/",
		},
			siteHeaderMinimal(cfg),
			Main(
				Class("max-w-3xl mx-auto px-6 py-24 text-center error-page"),
				P(Class("text-sm text-slate-500 status"), g.Textf("%d", status)),
				H2(Class("text-3xl font-extrabold mt-2"), g.Text(title)),
				P(Class("mt-4 text-slate-600"), g.Text(body)),
				Div(Class("mt-8"), A(Href("/"), Class("btn"), g.Text("Voltar ao início"))),
			),
		).Render(w)
	})
}

func siteHeaderMinimal(cfg SiteConfig) g.Node {
	return Header(
		Class("site-header border-b border-slate-200"),
		Div(
			Class("max-w-7xl mx-auto px-6 py-4"),
			A(Href("/"), Class("no-underline"), brand(cfg)),
		),
	)
}
