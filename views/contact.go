package views

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/micmidia/landing/content"
)

// ContactFormID is the element id htmx swaps on submission.
const ContactFormID = "contact-form"

func contactSection(f ContactForm) g.Node {
	return Section(
		ID(SectionContact),
		Class("max-w-7xl mx-auto px-6 py-16"),
		Div(
			Class("grid grid-cols-1 md:grid-cols-2 gap-8 items-start"),
			Div(
				H3(Class("text-2xl font-extrabold"), g.Text("Fale connosco")),
				P(Class("mt-2 text-slate-600"), g.Text("Quer um orçamento ou tem dúvidas? Envie uma mensagem e respondemos em 24-48h úteis.")),
				ContactFormNode(f),
			),
			Div(
				H4(Class("font-semibold"), g.Text("Nossa localização")),
				P(Class("mt-2 text-sm text-slate-500"), g.Text("Luanda, Angola — Atendimento remoto e presencial mediante agendamento.")),
				Div(
					Class("mt-6 grid grid-cols-1 gap-4"),
					g.Map(content.ContactCards(), func(c content.ContactCard) g.Node {
						return card("p-4 contact-card",
							P(Class("text-sm text-slate-500"), g.Text(c.Label)),
							P(Class("font-semibold"), g.Text(c.Value)),
						)
					}),
				),
			),
		),
	)
}

// ContactFormNode renders the contact form on its own so htmx submissions
// can swap just the form. Without an Action the form is inert and its
// button does not submit.
func ContactFormNode(f ContactForm) g.Node {
	live := f.Live()
	return g.El("form",
		ID(ContactFormID),
		Class("mt-6 space-y-4"),
		g.If(live, g.Group([]g.Node{
			Method("post"),
			Action(f.Action),
			hx.Post(f.Action),
			hx.Target("#"+ContactFormID),
			hx.Swap("outerHTML"),
		})),
		g.If(!live, g.Attr("data-mock", "true")),
		g.If(f.Success != "", Div(Class("alert alert-success"), Role("status"), g.Text(f.Success))),
		g.If(f.Failure != "", Div(Class("alert alert-error"), Role("alert"), g.Text(f.Failure))),
		g.If(live && f.CSRFToken != "", Input(Type("hidden"), Name("_csrf"), Value(f.CSRFToken))),
		field(f, "name", "Nome",
			Input(Type("text"), ID("contact-name"), Name("name"), Class("input"), Placeholder("Seu nome"),
				g.Attr("autocomplete", "name"), Value(f.Values.Name)),
		),
		field(f, "email", "Email",
			Input(Type("email"), ID("contact-email"), Name("email"), Class("input"), Placeholder("email@exemplo.com"),
				g.Attr("autocomplete", "email"), Value(f.Values.Email)),
		),
		field(f, "message", "Mensagem",
			Textarea(ID("contact-message"), Name("message"), Class("w-full p-3 rounded-md border"), g.Attr("rows", "5"),
				Placeholder("O que deseja..."), g.Text(f.Values.Message)),
		),
		Div(
			Class("pt-2"),
			Button(
				g.If(live, Type("submit")),
				g.If(!live, Type("button")),
				Class("btn"),
				g.Text("Enviar"),
				iconSend(),
			),
		),
	)
}

func field(f ContactForm, name, label string, control g.Node) g.Node {
	msg := f.Errors[name]
	class := "field"
	if msg != "" {
		class += " field-invalid"
	}
	return Div(
		Class(class),
		g.El("label", g.Attr("for", "contact-"+name), Class("label"), g.Text(label)),
		control,
		g.If(msg != "", P(Class("field-error text-sm"), ID("contact-"+name+"-error"), g.Text(msg))),
	)
}
