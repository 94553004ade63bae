package chart

import (
	"context"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// headroom keeps the highest point off the top edge of the viewBox.
const headroom = 0.1

// SVGArea renders an inline, responsive SVG area chart with a monotone curve,
// a vertical gradient fill and one hover tooltip per point.
type SVGArea struct {
	// Locale is used to format tooltip numbers. Defaults to Portuguese.
	Locale language.Tag
}

// NewSVGArea returns an SVGArea formatting numbers for tag.
func NewSVGArea(tag language.Tag) *SVGArea {
	return &SVGArea{Locale: tag}
}

// RenderArea implements Renderer.
func (s *SVGArea) RenderArea(ctx context.Context, w io.Writer, points []Point, opts Options) error {
	if len(points) == 0 {
		return ErrNoData
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	opts.setDefaults()

	xs, ys := project(points, opts.Width, opts.Height)
	line := monotonePath(xs, ys)
	area := line + " L" + num(xs[len(xs)-1]) + "," + num(opts.Height) + " L" + num(xs[0]) + "," + num(opts.Height) + " Z"

	locale := s.Locale
	if locale == language.Und {
		locale = language.Portuguese
	}
	printer := message.NewPrinter(locale)

	svg := g.El("svg",
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		g.Attr("class", "chart-area"),
		g.Attr("viewBox", "0 0 "+num(opts.Width)+" "+num(opts.Height)),
		g.Attr("preserveAspectRatio", "none"),
		g.Attr("width", "100%"),
		g.Attr("height", "100%"),
		g.Attr("role", "img"),
		g.If(opts.Title != "", g.Attr("aria-label", opts.Title)),
		g.El("defs",
			g.El("linearGradient",
				g.Attr("id", opts.GradientID),
				g.Attr("x1", "0"), g.Attr("y1", "0"), g.Attr("x2", "0"), g.Attr("y2", "1"),
				g.El("stop", g.Attr("offset", "0%"), g.Attr("stop-color", opts.Stroke), g.Attr("stop-opacity", "0.3")),
				g.El("stop", g.Attr("offset", "100%"), g.Attr("stop-color", opts.Stroke), g.Attr("stop-opacity", "0")),
			),
		),
		g.El("path",
			g.Attr("class", "chart-area-fill"),
			g.Attr("d", area),
			g.Attr("fill", "url(#"+opts.GradientID+")"),
			g.Attr("fill-opacity", "1"),
			g.Attr("stroke", "none"),
		),
		g.El("path",
			g.Attr("class", "chart-area-line"),
			g.Attr("d", line),
			g.Attr("fill", "none"),
			g.Attr("stroke", opts.Stroke),
			g.Attr("stroke-width", num(opts.StrokeWidth)),
			g.Attr("vector-effect", "non-scaling-stroke"),
		),
		g.El("g",
			g.Attr("class", "chart-tooltips"),
			g.Group(tooltips(points, xs, ys, opts, printer)),
		),
	)
	return svg.Render(w)
}

// tooltips builds one hover target per point: a full-height transparent band
// carrying a <title>, plus the dot it highlights.
func tooltips(points []Point, xs, ys []float64, opts Options, p *message.Printer) []g.Node {
	band := opts.Width
	if len(points) > 1 {
		band = opts.Width / float64(len(points)-1)
	}
	nodes := make([]g.Node, 0, len(points))
	for i, pt := range points {
		label := p.Sprintf("%s: %v", pt.Label, pt.Value)
		if opts.Unit != "" {
			label += " " + opts.Unit
		}
		nodes = append(nodes, g.El("g",
			g.Attr("class", "chart-point"),
			g.El("rect",
				g.Attr("x", num(math.Max(0, xs[i]-band/2))),
				g.Attr("y", "0"),
				g.Attr("width", num(band)),
				g.Attr("height", num(opts.Height)),
				g.Attr("fill", "transparent"),
			),
			g.El("circle",
				g.Attr("cx", num(xs[i])),
				g.Attr("cy", num(ys[i])),
				g.Attr("r", "4"),
				g.Attr("fill", opts.Stroke),
			),
			g.El("title", g.Text(label)),
		))
	}
	return nodes
}

// project maps the series onto viewBox coordinates. Points are spread evenly
// along x; y runs from 0 at the bottom edge to max(values)+headroom at the top.
func project(points []Point, width, height float64) ([]float64, []float64) {
	maxV := 0.0
	for _, p := range points {
		maxV = math.Max(maxV, p.Value)
	}
	if maxV == 0 {
		maxV = 1
	}
	top := maxV * (1 + headroom)

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		if len(points) == 1 {
			xs[i] = width / 2
		} else {
			xs[i] = width * float64(i) / float64(len(points)-1)
		}
		v := math.Max(0, p.Value)
		ys[i] = height - v/top*height
	}
	return xs, ys
}

// monotonePath returns an SVG path through the points using monotone cubic
// interpolation along x, so the curve never overshoots between samples.
func monotonePath(xs, ys []float64) string {
	var b strings.Builder
	b.WriteString("M" + num(xs[0]) + "," + num(ys[0]))
	if len(xs) == 1 {
		return b.String()
	}
	t := monotoneTangents(xs, ys)
	for i := 0; i < len(xs)-1; i++ {
		dx := (xs[i+1] - xs[i]) / 3
		fmt.Fprintf(&b, " C%s,%s %s,%s %s,%s",
			num(xs[i]+dx), num(ys[i]+dx*t[i]),
			num(xs[i+1]-dx), num(ys[i+1]-dx*t[i+1]),
			num(xs[i+1]), num(ys[i+1]),
		)
	}
	return b.String()
}

// monotoneTangents computes Fritsch–Carlson style tangents, following the
// same rules as d3's curveMonotoneX.
func monotoneTangents(xs, ys []float64) []float64 {
	n := len(xs)
	t := make([]float64, n)
	if n < 2 {
		return t
	}
	if n == 2 {
		s := (ys[1] - ys[0]) / (xs[1] - xs[0])
		t[0], t[1] = s, s
		return t
	}
	for i := 1; i < n-1; i++ {
		h0 := xs[i] - xs[i-1]
		h1 := xs[i+1] - xs[i]
		s0 := (ys[i] - ys[i-1]) / h0
		s1 := (ys[i+1] - ys[i]) / h1
		p := (s0*h1 + s1*h0) / (h0 + h1)
		m := math.Min(math.Min(math.Abs(s0), math.Abs(s1)), 0.5*math.Abs(p))
		t[i] = (sign(s0) + sign(s1)) * m
	}
	h := xs[1] - xs[0]
	t[0] = (3*(ys[1]-ys[0])/h - t[1]) / 2
	h = xs[n-1] - xs[n-2]
	t[n-1] = (3*(ys[n-1]-ys[n-2])/h - t[n-2]) / 2
	return t
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

// num formats a coordinate with at most two decimals and no trailing zeros.
func num(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}
