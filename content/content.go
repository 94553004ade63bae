// Package content holds the fixed copy and sample datasets rendered on the
// landing page. Every dataset is built once at package initialisation and
// handed out as a copy, so callers can never mutate the shared values.
package content

import "fmt"

// Feature is one card in the "O que fazemos de melhor" grid.
type Feature struct {
	Title       string
	Description string
	Icon        string // emoji glyph
}

// MetricSample is one point of the decorative monthly visits series.
type MetricSample struct {
	Month string
	Value float64
}

// Stat is a headline number shown in the hero.
type Stat struct {
	Label string
	Value string
}

// Tier is a pricing plan.
type Tier struct {
	Name        string
	Tagline     string
	Price       string
	Features    []string
	Action      string
	Highlighted bool
}

// Project is a portfolio placeholder. It has no backing record; the number is
// all there is.
type Project struct {
	Number      int
	Title       string
	Description string
}

// ContactCard is a label/value pair in the contact section.
type ContactCard struct {
	Label string
	Value string
}

// ProjectCount is the size of the portfolio range 1..ProjectCount.
const ProjectCount = 6

const projectDescription = "Landing page + SEO + integração com Analytics e GitHub Actions."

var features = []Feature{
	{
		Title:       "Design Profissional",
		Description: "Layouts modernos, responsivo e focado em conversão para o seu público.",
		Icon:        "🎨",
	},
	{
		Title:       "Otimizado para SEO",
		Description: "Estrutura semântica, carregamento rápido e melhores práticas para buscadores.",
		Icon:        "🚀",
	},
	{
		Title:       "Integração GitHub",
		Description: "Workflows prontos para deploy automático (GitHub Actions).",
		Icon:        "⚙️",
	},
	{
		Title:       "Análises & Crescimento",
		Description: "Painel simples com métricas para acompanhar o desempenho do site.",
		Icon:        "📈",
	},
}

var metrics = []MetricSample{
	{Month: "Mai", Value: 120},
	{Month: "Jun", Value: 210},
	{Month: "Jul", Value: 320},
	{Month: "Ago", Value: 430},
	{Month: "Set", Value: 520},
	{Month: "Out", Value: 680},
}

var stats = []Stat{
	{Label: "Clientes satisfeitos", Value: "+134"},
	{Label: "Projetos entregues", Value: "+98"},
}

var tiers = []Tier{
	{
		Name:     "Starter",
		Tagline:  "Para quem está começando",
		Price:    "$199",
		Features: []string{"Landing page", "SEO básico", "1 mês de suporte"},
		Action:   "Contratar",
	},
	{
		Name:        "Business",
		Tagline:     "Para pequenas e médias empresas",
		Price:       "$499",
		Features:    []string{"Site multi-página", "SEO avançado", "Integração com CRM"},
		Action:      "Contratar",
		Highlighted: true,
	},
	{
		Name:     "Enterprise",
		Tagline:  "Soluções à medida e suporte dedicado",
		Price:    "Sob consulta",
		Features: []string{"Arquitetura personalizada", "Garantia de uptime", "Equipe dedicada"},
		Action:   "Solicitar proposta",
	},
}

var contactCards = []ContactCard{
	{Label: "Telefone", Value: "+244 9XX XXX XXX"},
	{Label: "Email", Value: "contact@micmidia.com"},
	{Label: "Horário", Value: "Seg — Sex, 09:00 — 18:00 (WAT)"},
}

var projects = buildProjects()

func buildProjects() []Project {
	out := make([]Project, 0, ProjectCount)
	for i := 1; i <= ProjectCount; i++ {
		out = append(out, Project{
			Number:      i,
			Title:       fmt.Sprintf("Projeto %d — Campanha digital", i),
			Description: projectDescription,
		})
	}
	return out
}

// Features returns the four feature records in display order.
func Features() []Feature {
	return append([]Feature(nil), features...)
}

// Metrics returns the six-month visits series, oldest first.
func Metrics() []MetricSample {
	return append([]MetricSample(nil), metrics...)
}

// Stats returns the hero metric cards.
func Stats() []Stat {
	return append([]Stat(nil), stats...)
}

// Tiers returns the pricing plans in display order. Feature slices are copied
// as well.
func Tiers() []Tier {
	out := make([]Tier, len(tiers))
	for i, t := range tiers {
		t.Features = append([]string(nil), t.Features...)
		out[i] = t
	}
	return out
}

// Projects returns the portfolio placeholders numbered 1..ProjectCount.
func Projects() []Project {
	return append([]Project(nil), projects...)
}

// ContactCards returns the static contact details.
func ContactCards() []ContactCard {
	return append([]ContactCard(nil), contactCards...)
}

// ValidProject reports whether n is inside the portfolio range.
func ValidProject(n int) bool {
	return n >= 1 && n <= ProjectCount
}
