package views

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/text/language"

	"github.com/micmidia/landing/chart"
)

var testSite = SiteConfig{
	Name:        "MicMidia",
	URL:         "https://micmidia.com",
	Description: "Agência digital em Luanda.",
	Lang:        "pt-PT",
}

func renderPage(t *testing.T, p Page) (string, *html.Node) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, LandingPage(p).Render(context.Background(), &buf))
	doc, err := html.Parse(strings.NewReader(buf.String()))
	require.NoError(t, err)
	return buf.String(), doc
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

func findAll(root *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && match(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return out
}

func byClass(root *html.Node, class string) []*html.Node {
	return findAll(root, func(n *html.Node) bool { return hasClass(n, class) })
}

func byTag(root *html.Node, tag string) []*html.Node {
	return findAll(root, func(n *html.Node) bool { return n.Data == tag })
}

func byID(root *html.Node, id string) *html.Node {
	found := findAll(root, func(n *html.Node) bool { return attr(n, "id") == id })
	if len(found) == 0 {
		return nil
	}
	return found[0]
}

func text(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(sb.String())
}

type recordingChart struct {
	calls  int
	points []chart.Point
	opts   chart.Options
}

func (r *recordingChart) RenderArea(_ context.Context, w io.Writer, points []chart.Point, opts chart.Options) error {
	r.calls++
	r.points = points
	r.opts = opts
	_, err := io.WriteString(w, `<svg class="chart-stub"></svg>`)
	return err
}

func TestLandingSectionsInOrder(t *testing.T) {
	_, doc := renderPage(t, Page{Site: testSite})

	mains := byTag(doc, "main")
	require.Len(t, mains, 1)
	var ids []string
	for _, s := range byTag(mains[0], "section") {
		if id := attr(s, "id"); id != "" {
			ids = append(ids, id)
		}
	}
	assert.Equal(t, []string{SectionFeatures, SectionPortfolio, SectionPricing, SectionContact}, ids)
	assert.Len(t, byTag(doc, "header"), 1)
	assert.Len(t, byTag(doc, "footer"), 1)
}

func TestLandingNavAnchorsResolve(t *testing.T) {
	_, doc := renderPage(t, Page{Site: testSite})

	for _, a := range byTag(doc, "a") {
		href := attr(a, "href")
		if !strings.HasPrefix(href, "#") {
			continue
		}
		assert.NotNil(t, byID(doc, strings.TrimPrefix(href, "#")), "anchor %s has no target", href)
	}
}

func TestLandingFeatures(t *testing.T) {
	_, doc := renderPage(t, Page{Site: testSite})

	cards := byClass(byID(doc, SectionFeatures), "feature-card")
	require.Len(t, cards, 4)
	var titles []string
	for _, c := range cards {
		h4 := byTag(c, "h4")
		require.Len(t, h4, 1)
		assert.Len(t, byTag(c, "p"), 1)
		titles = append(titles, text(h4[0]))
	}
	assert.Equal(t, []string{
		"Design Profissional",
		"Otimizado para SEO",
		"Integração GitHub",
		"Análises & Crescimento",
	}, titles)
}

func TestLandingPortfolio(t *testing.T) {
	_, doc := renderPage(t, Page{Site: testSite})

	cards := byClass(byID(doc, SectionPortfolio), "project-card")
	require.Len(t, cards, 6)
	for i, c := range cards {
		n := i + 1
		assert.Equal(t, ThumbnailPath(n), attr(byTag(c, "img")[0], "src"))
		assert.Equal(t, "Projeto "+strconv.Itoa(n), attr(byTag(c, "img")[0], "alt"))
		assert.Equal(t, "Projeto "+strconv.Itoa(n)+" — Campanha digital", text(byTag(c, "h5")[0]))
	}
}

func TestLandingPricing(t *testing.T) {
	_, doc := renderPage(t, Page{Site: testSite})

	tiers := byClass(byID(doc, SectionPricing), "pricing-tier")
	require.Len(t, tiers, 3)

	var prices []string
	var highlighted []int
	for i, tier := range tiers {
		prices = append(prices, text(byClass(tier, "price")[0]))
		if hasClass(tier, "ring-2") {
			highlighted = append(highlighted, i)
		}
		assert.Len(t, byTag(tier, "li"), 3)
	}
	assert.Equal(t, []string{"$199", "$499", "Sob consulta"}, prices)
	assert.Equal(t, []int{1}, highlighted, "only the middle tier is emphasised")
}

func TestLandingFooterYear(t *testing.T) {
	for _, tc := range []struct {
		now  time.Time
		want string
	}{
		{time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC), "© 2025 MicMidia. Todos os direitos reservados."},
		{time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), "© 2026 MicMidia. Todos os direitos reservados."},
	} {
		_, doc := renderPage(t, Page{Site: testSite, Now: tc.now})
		lines := byClass(doc, "copyright")
		require.Len(t, lines, 1)
		assert.Equal(t, tc.want, text(lines[0]))
	}
}

func TestLandingFooterDefaultsToCurrentYear(t *testing.T) {
	_, doc := renderPage(t, Page{Site: testSite})
	line := text(byClass(doc, "copyright")[0])
	year := time.Now().Year()
	assert.True(t,
		strings.Contains(line, strconv.Itoa(year)) || strings.Contains(line, strconv.Itoa(year-1)),
		"unexpected copyright %q", line)
}

func TestLandingChartReceivesSeries(t *testing.T) {
	rec := &recordingChart{}
	out, _ := renderPage(t, Page{Site: testSite, Chart: rec})

	require.Equal(t, 1, rec.calls)
	require.Len(t, rec.points, 6)
	assert.Equal(t, chart.Point{Label: "Mai", Value: 120}, rec.points[0])
	assert.Equal(t, chart.Point{Label: "Out", Value: 680}, rec.points[5])
	assert.Equal(t, "grad", rec.opts.GradientID)
	assert.Contains(t, out, `<svg class="chart-stub"></svg>`)
}

func TestLandingChartDegradesGracefully(t *testing.T) {
	failing := chart.RendererFunc(func(_ context.Context, w io.Writer, _ []chart.Point, _ chart.Options) error {
		_, _ = io.WriteString(w, "<svg partial")
		return errors.New("chart backend down")
	})

	for name, r := range map[string]chart.Renderer{"failing": failing, "absent": nil} {
		t.Run(name, func(t *testing.T) {
			out, doc := renderPage(t, Page{Site: testSite, Chart: r})
			assert.NotContains(t, out, "<svg partial")
			assert.Empty(t, byClass(doc, "chart"))
			assert.Contains(t, out, "Visitas mensais")
			assert.Contains(t, out, "68.4k")
			assert.Len(t, byClass(doc, "stat-card"), 2)
			assert.Len(t, byClass(doc, "project-card"), 6)
		})
	}
}

func TestLandingWithSVGChart(t *testing.T) {
	_, doc := renderPage(t, Page{Site: testSite, Chart: chart.NewSVGArea(language.EuropeanPortuguese)})
	assert.Len(t, byClass(doc, "chart-area"), 1)
}

func TestContactFormMock(t *testing.T) {
	_, doc := renderPage(t, Page{Site: testSite})

	form := byID(doc, ContactFormID)
	require.NotNil(t, form)
	assert.Empty(t, attr(form, "action"))
	assert.Empty(t, attr(form, "hx-post"))
	buttons := byTag(form, "button")
	require.Len(t, buttons, 1)
	assert.Equal(t, "button", attr(buttons[0], "type"))
	assert.Empty(t, findAll(form, func(n *html.Node) bool { return attr(n, "name") == "_csrf" }))
	assert.Empty(t, findAll(doc, func(n *html.Node) bool { return n.Data == "script" && attr(n, "src") != "" }))
}

func TestContactFormLive(t *testing.T) {
	_, doc := renderPage(t, Page{Site: testSite, Contact: ContactForm{
		Action:    "/contact/",
		CSRFToken: "tok",
		Values:    ContactValues{Name: "Ana", Email: "ana@", Message: "Olá"},
		Errors:    map[string]string{"email": "Email inválido."},
	}})

	form := byID(doc, ContactFormID)
	require.NotNil(t, form)
	assert.Equal(t, "post", attr(form, "method"))
	assert.Equal(t, "/contact/", attr(form, "action"))
	assert.Equal(t, "/contact/", attr(form, "hx-post"))
	assert.Equal(t, "#"+ContactFormID, attr(form, "hx-target"))
	assert.Equal(t, "submit", attr(byTag(form, "button")[0], "type"))

	csrf := findAll(form, func(n *html.Node) bool { return attr(n, "name") == "_csrf" })
	require.Len(t, csrf, 1)
	assert.Equal(t, "tok", attr(csrf[0], "value"))

	name := byID(doc, "contact-name")
	assert.Equal(t, "Ana", attr(name, "value"))
	assert.Equal(t, "Olá", text(byID(doc, "contact-message")))
	assert.Equal(t, "Email inválido.", text(byID(doc, "contact-email-error")))
	assert.Nil(t, byID(doc, "contact-name-error"))
}

func TestContactFormBanners(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ContactFormNode(ContactForm{Action: "/contact/", Success: "Mensagem enviada!"}).Render(&buf))
	assert.Contains(t, buf.String(), `role="status"`)
	assert.Contains(t, buf.String(), "Mensagem enviada!")
}

func TestErrorPage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ErrorPage(testSite, 404).Render(context.Background(), &buf))
	out := buf.String()
	assert.Contains(t, out, "Página não encontrada")
	assert.Contains(t, out, `href="/public/site.css"`)
}

func TestLandingHTMXOnlyWhenLive(t *testing.T) {
	const src = "https://unpkg.com/htmx.org@2.0.4"

	_, doc := renderPage(t, Page{Site: testSite, HTMXSrc: src})
	for _, s := range byTag(doc, "script") {
		assert.NotEqual(t, src, attr(s, "src"))
	}

	_, doc = renderPage(t, Page{Site: testSite, HTMXSrc: src, Contact: ContactForm{Action: "/contact/"}})
	var found bool
	for _, s := range byTag(doc, "script") {
		found = found || attr(s, "src") == src
	}
	assert.True(t, found)
}

func TestLandingHeadAndAssetBase(t *testing.T) {
	_, doc := renderPage(t, Page{
		Site:         testSite,
		CanonicalURL: "https://micmidia.com/",
		JSONLD:       `{"@type":"Organization"}`,
		AssetBase:    "/",
	})

	canonical := findAll(doc, func(n *html.Node) bool { return n.Data == "link" && attr(n, "rel") == "canonical" })
	require.Len(t, canonical, 1)
	assert.Equal(t, "https://micmidia.com/", attr(canonical[0], "href"))

	ld := findAll(doc, func(n *html.Node) bool { return n.Data == "script" && attr(n, "type") == "application/ld+json" })
	require.Len(t, ld, 1)
	assert.Equal(t, `{"@type":"Organization"}`, text(ld[0]))

	stylesheet := findAll(doc, func(n *html.Node) bool { return n.Data == "link" && attr(n, "rel") == "stylesheet" })
	require.Len(t, stylesheet, 1)
	assert.Equal(t, "/public/site.css", attr(stylesheet[0], "href"))
	assert.Equal(t, "/portfolio/1.png", attr(byTag(byID(doc, SectionPortfolio), "img")[0], "src"))
}
